package commands

import (
	"context"

	"github.com/tianxinyueming/idealyard/internal/config"
)

type signoutCmd struct{}

func (signoutCmd) Name() string        { return "signout" }
func (signoutCmd) Description() string { return "Forget the stored token (asks for confirmation, -y to skip)" }
func (signoutCmd) Usage() string       { return "signout" }

// Run never fails: a declined confirmation is a normal outcome.
func (signoutCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	newAuthService(cfg).SignOut(ctx)
	return nil
}

func init() { RegisterCmd(signoutCmd{}) }
