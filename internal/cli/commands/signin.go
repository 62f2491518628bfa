package commands

import (
	"context"
	"fmt"

	"github.com/tianxinyueming/idealyard/internal/config"
)

type signinCmd struct{}

func (signinCmd) Name() string        { return "signin" }
func (signinCmd) Description() string { return "Sign in and store the auth token" }
func (signinCmd) Usage() string       { return "signin <account> <password>" }

func (signinCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 2 {
		return ErrUsage
	}
	data, err := newAuthService(cfg).SignIn(ctx, args[0], args[1])
	if err != nil {
		return err
	}
	fmt.Fprintf(Out, "Signed in as %s\n", data.Username)
	return nil
}

func init() { RegisterCmd(signinCmd{}) }
