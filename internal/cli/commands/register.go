package commands

import (
	"context"
	"fmt"

	"github.com/tianxinyueming/idealyard/internal/config"
)

type registerCmd struct{}

func (registerCmd) Name() string        { return "register" }
func (registerCmd) Description() string { return "Create an account" }
func (registerCmd) Usage() string       { return "register <account> <nickname> <password>" }

func (registerCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 3 {
		return ErrUsage
	}
	u, err := newAuthService(cfg).Register(ctx, args[0], args[1], args[2])
	if err != nil {
		return err
	}
	fmt.Fprintf(Out, "Registered %s (%s). Now run: signin %s <password>\n", u.Account, u.Nickname, u.Account)
	return nil
}

func init() { RegisterCmd(registerCmd{}) }
