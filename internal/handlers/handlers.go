package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/tianxinyueming/idealyard/internal/config"
	"github.com/tianxinyueming/idealyard/internal/dto"
	"github.com/tianxinyueming/idealyard/internal/metrics"
	"github.com/tianxinyueming/idealyard/internal/middleware"
	"github.com/tianxinyueming/idealyard/internal/service"
)

type Handler struct {
	Router chi.Router
}

// NewHandler разводящий для хендлеров
func NewHandler(
	userService *service.UserService,
	logger *zap.SugaredLogger,
	config *config.Config,
) *Handler {
	r := chi.NewRouter()

	r.Use(middleware.WithRequestID)
	r.Use(middleware.WithLogging)
	r.Use(middleware.WithGzip)
	r.Use(middleware.WithMetrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   config.AllowedOrigins(),
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Content-Type", "Authorization", dto.TokenHeader, middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	r.Use(middleware.WithAuth(config.AuthSecret))

	userHandler := NewUserHandler(userService, logger, config)

	// публичные ручки входа и регистрации ограничены по IP
	r.Group(func(r chi.Router) {
		r.Use(httprate.LimitByIP(config.AuthRateLimit, time.Minute))
		r.Post("/signin", userHandler.SignIn)
		r.Post("/register", userHandler.Register)
	})
	r.Get("/users/currentUser", userHandler.CurrentUser)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{}))

	return &Handler{Router: r}
}
