package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/tianxinyueming/idealyard/internal/cli/service"
	"github.com/tianxinyueming/idealyard/internal/config"
)

type whoamiCmd struct{}

func (whoamiCmd) Name() string        { return "whoami" }
func (whoamiCmd) Description() string { return "Show the signed-in user" }
func (whoamiCmd) Usage() string       { return "whoami" }

func (whoamiCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	svc := newAuthService(cfg)
	u, err := svc.CurrentUser(ctx)
	if errors.Is(err, service.ErrNotSignedIn) {
		if last := svc.LastAccount(); last != "" {
			fmt.Fprintf(Out, "Last signed in as %s. Run: signin %s <password>\n", last, last)
		}
		return err
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(Out, "Account:  %s\nNickname: %s\n", u.Account, u.Nickname)
	if u.Email != "" {
		fmt.Fprintf(Out, "Email:    %s\n", u.Email)
	}
	return nil
}

func init() { RegisterCmd(whoamiCmd{}) }
