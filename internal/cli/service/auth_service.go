package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/tianxinyueming/idealyard/internal/cli/api"
	"github.com/tianxinyueming/idealyard/internal/cli/auth"
	"github.com/tianxinyueming/idealyard/internal/cli/repo"
	"github.com/tianxinyueming/idealyard/internal/dto"
)

var (
	ErrEmptyAccount       = errors.New("account is required")
	ErrEmptyNickname      = errors.New("nickname is required")
	ErrEmptyPassword      = errors.New("password is required")
	ErrInvalidCredentials = errors.New("invalid account or password")
	ErrAccountTaken       = errors.New("account already in use")
	ErrNotSignedIn        = errors.New("not signed in")
	ErrUnconfirmed        = errors.New("account is not confirmed")
)

// AuthService описывает юзкейс-уровень аутентификации для CLI.
type AuthService interface {
	// SignIn входит на сервер и сохраняет токен.
	SignIn(ctx context.Context, account, password string) (*dto.SignInData, error)

	// Register создаёт учётную запись.
	Register(ctx context.Context, account, nickname, password string) (*dto.UserInfo, error)

	// CurrentUser возвращает пользователя, которому принадлежит сохранённый токен.
	CurrentUser(ctx context.Context) (*dto.UserInfo, error)

	// SignOut спрашивает подтверждение и очищает локальный токен.
	SignOut(ctx context.Context)

	// LastAccount возвращает аккаунт последнего входа или "".
	LastAccount() string
}

// RemoteAuthService validates input and interprets server answers around auth.Client,
// which itself stays a pure pass-through.
type RemoteAuthService struct {
	client *auth.Client
	tokens repo.TokenStore
	users  repo.UserContextStore
	logger *zap.SugaredLogger
}

var _ AuthService = (*RemoteAuthService)(nil)

func NewRemoteAuthService(client *auth.Client, tokens repo.TokenStore, users repo.UserContextStore, logger *zap.SugaredLogger) *RemoteAuthService {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &RemoteAuthService{client: client, tokens: tokens, users: users, logger: logger}
}

func (s *RemoteAuthService) SignIn(ctx context.Context, account, password string) (*dto.SignInData, error) {
	account = strings.TrimSpace(account)
	if account == "" {
		return nil, ErrEmptyAccount
	}
	if password == "" {
		return nil, ErrEmptyPassword
	}

	resp, err := s.client.SignIn(ctx, account, password)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode == http.StatusUnauthorized {
		return nil, ErrInvalidCredentials
	}
	if resp.StatusCode != http.StatusOK {
		return nil, serverError(resp)
	}
	data, err := api.PersistAuthFromResponse(resp, s.tokens)
	if err != nil {
		return nil, fmt.Errorf("saving auth: %w", err)
	}
	// логин нужен только для подсказки в whoami, ошибка не критична
	if err := s.users.SaveLogin(data.Username); err != nil {
		s.logger.Warnw("save last login", "error", err)
	}
	return data, nil
}

func (s *RemoteAuthService) Register(ctx context.Context, account, nickname, password string) (*dto.UserInfo, error) {
	account = strings.TrimSpace(account)
	nickname = strings.TrimSpace(nickname)
	switch {
	case account == "":
		return nil, ErrEmptyAccount
	case nickname == "":
		return nil, ErrEmptyNickname
	case password == "":
		return nil, ErrEmptyPassword
	}

	resp, err := s.client.Register(ctx, account, nickname, password)
	if err != nil {
		return nil, err
	}
	switch resp.StatusCode {
	case http.StatusOK:
		return decodeUser(resp)
	case http.StatusConflict:
		return nil, ErrAccountTaken
	default:
		return nil, serverError(resp)
	}
}

func (s *RemoteAuthService) CurrentUser(ctx context.Context) (*dto.UserInfo, error) {
	resp, err := s.client.FetchCurrentUser(ctx)
	if err != nil {
		return nil, err
	}
	switch resp.StatusCode {
	case http.StatusOK:
		return decodeUser(resp)
	case http.StatusUnauthorized:
		return nil, ErrNotSignedIn
	case http.StatusForbidden:
		return nil, ErrUnconfirmed
	default:
		return nil, serverError(resp)
	}
}

func (s *RemoteAuthService) SignOut(ctx context.Context) {
	s.client.SignOut(ctx)
}

func (s *RemoteAuthService) LastAccount() string {
	account, err := s.users.LoadLogin()
	if err != nil {
		return ""
	}
	return account
}

func decodeUser(resp *api.Response) (*dto.UserInfo, error) {
	env, err := api.DecodeEnvelope(resp)
	if err != nil {
		return nil, err
	}
	var u dto.UserInfo
	if err := env.DecodeData(&u); err != nil {
		return nil, fmt.Errorf("decode user: %w", err)
	}
	return &u, nil
}

// serverError берёт msg из конверта, иначе сырое тело.
func serverError(resp *api.Response) error {
	if env, err := api.DecodeEnvelope(resp); err == nil && env.Msg != "" {
		return fmt.Errorf("server error %d: %s", resp.StatusCode, env.Msg)
	}
	return fmt.Errorf("server error %d: %s", resp.StatusCode, strings.TrimSpace(string(resp.Body)))
}
