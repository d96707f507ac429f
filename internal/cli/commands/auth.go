package commands

import (
	"FishLog/internal/cli/service"
	fsrepo "FishLog/internal/cli/repo/fs"
	"FishLog/internal/config"
	"context"
	"fmt"
)

func newAuthService(cfg *config.Config) service.AuthService {
	store := fsrepo.AuthFSStore{}
	return service.NewAuthService(cfg, store, store)
}

type registerCmd struct{}

func (registerCmd) Name() string        { return "register" }
func (registerCmd) Description() string { return "Create an account and store the session" }
func (registerCmd) Usage() string       { return "register <login> <password>" }

func (registerCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 2 {
		return ErrUsage
	}
	if err := newAuthService(cfg).Register(ctx, args[0], args[1]); err != nil {
		return err
	}
	fmt.Fprintf(Out, "Registered and logged in as %s\n", args[0])
	return nil
}

type loginCmd struct{}

func (loginCmd) Name() string        { return "login" }
func (loginCmd) Description() string { return "Login and store auth cookie" }
func (loginCmd) Usage() string       { return "login <login> <password>" }

func (loginCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 2 {
		return ErrUsage
	}
	if err := newAuthService(cfg).Login(ctx, args[0], args[1]); err != nil {
		return err
	}
	fmt.Fprintln(Out, "Logged in successfully")
	return nil
}

type logoutCmd struct{}

func (logoutCmd) Name() string        { return "logout" }
func (logoutCmd) Description() string { return "Forget the stored session" }
func (logoutCmd) Usage() string       { return "logout" }

func (logoutCmd) Run(_ context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	if err := newAuthService(cfg).Logout(); err != nil {
		return err
	}
	fmt.Fprintln(Out, "Logged out")
	return nil
}

func init() {
	RegisterCmd(registerCmd{})
	RegisterCmd(loginCmd{})
	RegisterCmd(logoutCmd{})
}
