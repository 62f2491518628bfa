package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/tianxinyueming/idealyard/internal/cli/bootstrap"
	"github.com/tianxinyueming/idealyard/internal/cli/service"
	"github.com/tianxinyueming/idealyard/internal/config"
)

// ErrUsage is returned by a command when arguments are invalid and usage should be shown.
var ErrUsage = errors.New("usage")

// Command represents a CLI subcommand.
type Command interface {
	// Name returns the command name as typed by the user, e.g. "signin".
	Name() string
	// Description is a short human-readable description shown in help.
	Description() string
	// Usage returns the exact usage string, e.g. "signin <account> <password>".
	Usage() string
	// Run executes the command with provided args (without the command name).
	Run(ctx context.Context, cfg *config.Config, args []string) error
}

// registry holds available commands by name.
var registry = map[string]Command{}

// Out — общий writer для вывода CLI. По умолчанию os.Stdout, но в тестах может переназначаться.
var Out io.Writer = os.Stdout

// In — источник ответов на подтверждения. В тестах подменяется.
var In io.Reader = os.Stdin

var log = zap.NewNop().Sugar()

// SetLogger задаёт логгер для команд.
func SetLogger(l *zap.SugaredLogger) {
	if l != nil {
		log = l
	}
}

// newAuthService собирает сервис аутентификации; переменная, чтобы тесты могли подменить.
var newAuthService = func(cfg *config.Config) service.AuthService {
	home := func(w io.Writer) error {
		_, err := io.WriteString(w, FormatGlobalUsage())
		return err
	}
	return bootstrap.NewAuthService(cfg, In, Out, home, log)
}

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

// FormatGlobalUsage builds a help text for all commands.
func FormatGlobalUsage() string {
	lines := []string{
		"idealyard CLI",
		"",
		"Usage:",
		"  idealyard [--base-url <host:port>] [-y] <command> [args]",
		"",
		"Commands:",
	}
	for _, c := range List() {
		lines = append(lines, fmt.Sprintf("  %-42s %s", c.Usage(), c.Description()))
	}
	return strings.Join(lines, "\n") + "\n"
}
