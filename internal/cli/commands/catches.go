package commands

import (
	"FishLog/internal/cli/model"
	"FishLog/internal/cli/model/view"
	"FishLog/internal/config"
	"context"
	"fmt"
	"strconv"
)

type catchesCmd struct{}

func (catchesCmd) Name() string        { return "catches" }
func (catchesCmd) Description() string { return "List your catches, newest first" }
func (catchesCmd) Usage() string       { return "catches" }

func (catchesCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
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
	printCatches(app.Catches.Catches(), app.Species.Name, "No catches yet")
	return nil
}

type publicCmd struct{}

func (publicCmd) Name() string        { return "public" }
func (publicCmd) Description() string { return "List public catches of all users (remote only)" }
func (publicCmd) Usage() string       { return "public [limit]" }

func (publicCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) > 1 {
		return ErrUsage
	}
	limit := 0
	if len(args) == 1 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n <= 0 {
			return ErrUsage
		}
		limit = n
	}
	if !cfg.RemoteConfigured() {
		fmt.Fprintln(Out, "Public catches require the remote backend (--remote)")
		return nil
	}
	app, done, err := openApp(ctx, cfg)
	if err != nil {
		return err
	}
	defer done()

	app.Public.Refresh(ctx, limit)
	if msg := app.Public.Err(); msg != "" {
		return errFromService(msg, "")
	}
	printCatches(app.Public.Catches(), app.Species.Name, "No public catches")
	return nil
}

func printCatches(list []model.Catch, namer view.SpeciesNamer, empty string) {
	if len(list) == 0 {
		fmt.Fprintln(Out, empty)
		return
	}
	for _, c := range list {
		v := view.FromCatch(c, namer)
		fmt.Fprintf(Out, "- %s\n", v.Line())
		if v.Notes != "" {
			fmt.Fprintf(Out, "    %s\n", v.Notes)
		}
	}
	fmt.Fprintf(Out, "Total: %d\n", len(list))
}

func init() {
	RegisterCmd(catchesCmd{})
	RegisterCmd(publicCmd{})
}
