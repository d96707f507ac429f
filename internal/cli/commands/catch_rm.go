package commands

import (
	"FishLog/internal/config"
	"context"
	"fmt"
)

type catchRmCmd struct{}

func (catchRmCmd) Name() string        { return "catch-rm" }
func (catchRmCmd) Description() string { return "Delete a catch" }
func (catchRmCmd) Usage() string       { return "catch-rm <id>" }

func (catchRmCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
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
	if !app.Catches.Delete(ctx, args[0]) {
		return errFromService(app.Catches.Err(), "could not delete catch")
	}
	fmt.Fprintf(Out, "Deleted %s\n", args[0])
	return nil
}

func init() { RegisterCmd(catchRmCmd{}) }
