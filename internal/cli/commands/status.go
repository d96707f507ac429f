package commands

import (
	"FishLog/internal/cli/api"
	"FishLog/internal/config"
	"context"
	"fmt"
)

type statusCmd struct{}

func (statusCmd) Name() string        { return "status" }
func (statusCmd) Description() string { return "Show storage mode and session state" }
func (statusCmd) Usage() string       { return "status" }

func (statusCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	app, done, err := openApp(ctx, cfg)
	if err != nil {
		return err
	}
	defer done()

	mode := "local"
	if app.Catches.Remote() {
		mode = "remote"
	}
	fmt.Fprintf(Out, "Catches storage:    %s\n", mode)
	rampMode := "local"
	if app.BoatRamps.Remote() {
		rampMode = "remote"
	}
	fmt.Fprintf(Out, "Boat ramps storage: %s\n", rampMode)

	login, err := app.Auth.CurrentUser()
	if err != nil {
		fmt.Fprintln(Out, "User:               not logged in")
	} else {
		fmt.Fprintf(Out, "User:               %s\n", login)
	}

	if !cfg.RemoteConfigured() {
		return nil
	}
	fmt.Fprintf(Out, "Server:             %s\n", cfg.ServerURL)
	st, err := api.NewClient(cfg, app.Session.Token()).Status(ctx)
	if err != nil {
		return fmt.Errorf("server status: %w", err)
	}
	if st.Authenticated {
		fmt.Fprintf(Out, "Session:            valid (user %s)\n", st.UserID)
	} else {
		fmt.Fprintln(Out, "Session:            anonymous")
	}
	return nil
}

func init() { RegisterCmd(statusCmd{}) }
