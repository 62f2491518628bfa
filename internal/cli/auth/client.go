// Package auth turns the sign-in, sign-out, current-user and register operations into
// requests for the injected transport, and runs the sign-out confirmation flow.
package auth

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"github.com/tianxinyueming/idealyard/internal/cli/api"
	"github.com/tianxinyueming/idealyard/internal/dto"
)

// Пути сервера.
const (
	PathSignIn      = "/signin"
	PathCurrentUser = "/users/currentUser"
	PathRegister    = "/register"
	PathHome        = "/"
)

// Transport выполняет запрос к серверу.
type Transport interface {
	Do(ctx context.Context, req api.Request) (*api.Response, error)
}

// Kind — уровень важности подтверждения.
type Kind string

const (
	KindInfo    Kind = "info"
	KindWarning Kind = "warning"
)

// Prompt — то, что показывается пользователю перед действием.
type Prompt struct {
	Message string
	Title   string
	Kind    Kind
}

// Outcome — ответ пользователя на Prompt.
type Outcome int

const (
	Cancelled Outcome = iota
	Confirmed
)

func (o Outcome) String() string {
	if o == Confirmed {
		return "confirmed"
	}
	return "cancelled"
}

// Confirmer asks the user to confirm an action.
type Confirmer interface {
	Confirm(ctx context.Context, p Prompt) (Outcome, error)
}

// TokenRemover удаляет сохранённый токен.
type TokenRemover interface {
	RemoveToken() error
}

// Navigator switches the application to another location.
type Navigator interface {
	GoTo(path string) error
}

// SignOutPrompt is shown before the token is dropped.
var SignOutPrompt = Prompt{Message: "confirm sign-out?", Title: "notice", Kind: KindWarning}

// Deps — зависимости Client.
type Deps struct {
	Transport Transport
	Confirmer Confirmer
	Tokens    TokenRemover
	Navigator Navigator
	Logger    *zap.SugaredLogger
}

// Client has no state of its own and can be shared between goroutines.
type Client struct {
	transport Transport
	confirmer Confirmer
	tokens    TokenRemover
	nav       Navigator
	logger    *zap.SugaredLogger
}

// NewClient creates a Client from its collaborators.
func NewClient(d Deps) *Client {
	logger := d.Logger
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Client{
		transport: d.Transport,
		confirmer: d.Confirmer,
		tokens:    d.Tokens,
		nav:       d.Navigator,
		logger:    logger,
	}
}

// SignIn sends the credentials to /signin. The transport result is returned as is.
func (c *Client) SignIn(ctx context.Context, account, password string) (*api.Response, error) {
	return c.transport.Do(ctx, api.Request{
		Method: http.MethodPost,
		Path:   PathSignIn,
		Body:   dto.Credentials{Account: account, Password: password},
	})
}

// FetchCurrentUser запрашивает данные текущего пользователя.
func (c *Client) FetchCurrentUser(ctx context.Context) (*api.Response, error) {
	return c.transport.Do(ctx, api.Request{Method: http.MethodGet, Path: PathCurrentUser})
}

// Register sends a registration request. The transport result is returned as is.
func (c *Client) Register(ctx context.Context, account, nickname, password string) (*api.Response, error) {
	return c.transport.Do(ctx, api.Request{
		Method: http.MethodPost,
		Path:   PathRegister,
		Body:   dto.RegistrationRequest{Account: account, Nickname: nickname, Password: password},
	})
}

// SignOut asks for confirmation, then drops the token and goes home.
// Cancellation and a failing prompt are both a silent no-op. Removal and
// navigation failures are only logged; navigation runs even if removal failed.
func (c *Client) SignOut(ctx context.Context) {
	outcome, err := c.confirmer.Confirm(ctx, SignOutPrompt)
	if err != nil {
		c.logger.Debugw("sign-out prompt failed", "error", err)
		return
	}
	if outcome != Confirmed {
		return
	}

	if err := c.tokens.RemoveToken(); err != nil {
		c.logger.Warnw("remove token", "error", err)
	}
	if err := c.nav.GoTo(PathHome); err != nil {
		c.logger.Warnw("navigate home", "error", err)
	}
}
