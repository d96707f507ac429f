package commands

import (
	"FishLog/internal/config"
	"context"
	"fmt"
)

type statsCmd struct{}

func (statsCmd) Name() string        { return "stats" }
func (statsCmd) Description() string { return "Show catch statistics" }
func (statsCmd) Usage() string       { return "stats" }

func (statsCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	app, done, err := openApp(ctx, cfg)
	if err != nil {
		return err
	}
	defer done()

	app.Catches.Refresh(ctx)
	if msg := app.Catches.Err(); msg != "" {
		return errFromService(msg, "")
	}
	st := app.Catches.Stats()
	if st.TotalCatches == 0 {
		fmt.Fprintln(Out, "No catches yet")
		return nil
	}
	fmt.Fprintf(Out, "Catches:  %d\n", st.TotalCatches)
	fmt.Fprintf(Out, "Species:  %d\n", st.UniqueSpecies)
	fmt.Fprintf(Out, "Length:   %g cm\n", st.TotalLengthCm)
	fmt.Fprintf(Out, "Weight:   %.1f kg\n", st.TotalWeightKg())
	for _, sc := range st.BySpecies {
		name := sc.Species
		if n, ok := app.Species.Name(sc.Species); ok {
			name = n
		}
		fmt.Fprintf(Out, "  %-20s %d\n", name, sc.Count)
	}
	return nil
}

func init() { RegisterCmd(statsCmd{}) }
