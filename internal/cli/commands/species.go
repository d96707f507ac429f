package commands

import (
	"FishLog/internal/config"
	"FishLog/internal/species"
	"context"
	"fmt"
	"strings"
)

type speciesCmd struct{}

func (speciesCmd) Name() string        { return "species" }
func (speciesCmd) Description() string { return "Search the species table" }
func (speciesCmd) Usage() string {
	return "species [--category freshwater|saltwater|both] [query]"
}

func (speciesCmd) Run(_ context.Context, _ *config.Config, args []string) error {
	fs := newFlagSet("species")
	cat := fs.String("category", "all", "category filter")
	if err := fs.Parse(args); err != nil || fs.NArg() > 1 {
		return ErrUsage
	}
	switch species.Category(*cat) {
	case species.All, species.Freshwater, species.Saltwater, species.Both:
	default:
		return ErrUsage
	}

	reg := species.Default()
	list := reg.ByCategory(species.Category(*cat))
	if fs.NArg() == 1 {
		found := map[string]bool{}
		for _, s := range reg.Search(fs.Arg(0)) {
			found[s.ID] = true
		}
		filtered := list[:0]
		for _, s := range list {
			if found[s.ID] {
				filtered = append(filtered, s)
			}
		}
		list = filtered
	}

	if len(list) == 0 {
		fmt.Fprintln(Out, "No species found")
		return nil
	}
	for _, s := range list {
		line := fmt.Sprintf("- %-14s %-22s %-30s %s", s.ID, s.SwedishName, s.LatinName, s.Category)
		if s.MinSizeCm != nil {
			line += fmt.Sprintf("  min %d cm", *s.MinSizeCm)
		}
		fmt.Fprintln(Out, strings.TrimRight(line, " "))
	}
	return nil
}

func init() { RegisterCmd(speciesCmd{}) }
