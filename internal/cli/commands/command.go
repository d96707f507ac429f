package commands

import (
	"FishLog/internal/config"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
)

// ErrUsage is returned by a command when arguments are invalid and usage should be shown.
var ErrUsage = errors.New("usage")

// Command represents a CLI subcommand.
type Command interface {
	// Name returns the command name as typed by the user, e.g. "login".
	Name() string
	// Description is a short human-readable description shown in help.
	Description() string
	// Usage returns the exact usage string, e.g. "login <login> <password>".
	Usage() string
	// Run executes the command with provided args (without the command name).
	Run(ctx context.Context, cfg *config.Config, args []string) error
}

// registry holds available commands by name.
var registry = map[string]Command{}

// Out: общий writer для вывода CLI. По умолчанию os.Stdout, но в тестах может переназначаться.
var Out io.Writer = os.Stdout

// RegisterCmd adds a command to the registry. Should be called from init() of each command.
func RegisterCmd(cmd Command) {
	registry[cmd.Name()] = cmd
}

// Get returns a command by name.
func Get(name string) (Command, bool) {
	c, ok := registry[name]
	return c, ok
}

// List returns all registered commands sorted by name.
func List() []Command {
	list := make([]Command, 0, len(registry))
	for _, c := range registry {
		list = append(list, c)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name() < list[j].Name() })
	return list
}

// envHelp: переменные окружения, которые чаще всего нужны пользователю CLI.
var envHelp = [][2]string{
	{"USE_REMOTE", "true to keep catches and ramps on the server"},
	{"BASE_URL", "server address, host:port"},
	{"CLIENT_DB_PATH", "local database file (default ~/fishlog.db)"},
	{"OPENWEATHERMAP_API_KEY", "weather fallback when SMHI is unavailable"},
}

// FormatGlobalUsage builds a help text for all commands.
func FormatGlobalUsage() string {
	lines := []string{
		"FishLog CLI",
		"",
		"Usage:",
		"  fishlog [--remote] [--base-url <host:port>] <command> [args]",
		"",
		"Commands:",
	}
	for _, c := range List() {
		lines = append(lines, fmt.Sprintf("  %-44s %s", c.Usage(), c.Description()))
	}
	lines = append(lines, "", "Environment:")
	for _, e := range envHelp {
		lines = append(lines, fmt.Sprintf("  %-24s %s", e[0], e[1]))
	}
	return strings.Join(lines, "\n") + "\n"
}
