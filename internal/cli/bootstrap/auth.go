package bootstrap

import (
	"io"

	"go.uber.org/zap"

	"github.com/tianxinyueming/idealyard/internal/cli/api"
	"github.com/tianxinyueming/idealyard/internal/cli/auth"
	"github.com/tianxinyueming/idealyard/internal/cli/nav"
	"github.com/tianxinyueming/idealyard/internal/cli/prompt"
	fsrepo "github.com/tianxinyueming/idealyard/internal/cli/repo/fs"
	"github.com/tianxinyueming/idealyard/internal/cli/service"
	"github.com/tianxinyueming/idealyard/internal/config"
)

// NewAuthService собирает клиентский стек аутентификации: файловое хранилище токена,
// HTTP‑транспорт, подтверждение в терминале и роутер с домашней страницей home.
func NewAuthService(cfg *config.Config, in io.Reader, out io.Writer, home nav.Page, logger *zap.SugaredLogger) *service.RemoteAuthService {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	store := fsrepo.AuthFSStore{TokenFile: cfg.TokenFile}

	router := nav.NewRouter(out)
	router.Handle(auth.PathHome, home)

	client := auth.NewClient(auth.Deps{
		Transport: api.NewClient(cfg.ServerURL, store, logger.Named("api")),
		Confirmer: &prompt.Terminal{In: in, Out: out, AssumeYes: cfg.AssumeYes},
		Tokens:    store,
		Navigator: router,
		Logger:    logger.Named("auth"),
	})
	return service.NewRemoteAuthService(client, store, store, logger)
}
