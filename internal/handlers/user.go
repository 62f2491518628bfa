package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/tianxinyueming/idealyard/internal/config"
	"github.com/tianxinyueming/idealyard/internal/dto"
	"github.com/tianxinyueming/idealyard/internal/metrics"
	"github.com/tianxinyueming/idealyard/internal/middleware"
	"github.com/tianxinyueming/idealyard/internal/model"
	"github.com/tianxinyueming/idealyard/internal/service"
)

// Тексты ошибок, которые ожидает фронтенд.
const (
	msgUnauthorized       = "UNAUTHORIZED"
	msgInvalidCredentials = "Invalid credentials"
	msgUnconfirmed        = "Unconfirmed account"
)

// UserHandler обслуживает вход, регистрацию и текущего пользователя.
type UserHandler struct {
	UserService *service.UserService
	Logger      *zap.SugaredLogger
	Config      *config.Config
}

func NewUserHandler(userService *service.UserService, logger *zap.SugaredLogger, cfg *config.Config) *UserHandler {
	return &UserHandler{UserService: userService, Logger: logger, Config: cfg}
}

func writeEnvelope(w http.ResponseWriter, status int, data any, msg string) {
	env := struct {
		Success bool   `json:"success"`
		Code    int    `json:"code"`
		Data    any    `json:"data"`
		Msg     string `json:"msg"`
	}{Success: status == http.StatusOK, Code: dto.CodeOK, Data: data, Msg: msg}
	if status != http.StatusOK {
		env.Code = dto.CodeFailed
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(env)
}

func userInfo(u *model.User) dto.UserInfo {
	info := dto.UserInfo{ID: u.ID, Account: u.Username, Nickname: u.Nickname}
	if u.Email != nil {
		info.Email = *u.Email
	}
	return info
}

// SignIn POST /signin: {account, password} или {authToken}.
func (h *UserHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	var req dto.Credentials
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		metrics.SignInsTotal.WithLabelValues("bad_request").Inc()
		writeEnvelope(w, http.StatusUnauthorized, nil, msgUnauthorized)
		return
	}

	user, err := h.authenticate(r, req)
	if err != nil {
		if !errors.Is(err, service.ErrInvalidCredentials) && !errors.Is(err, service.ErrUserNotFound) {
			h.Logger.Errorw("sign-in failed", "error", err)
		}
		metrics.SignInsTotal.WithLabelValues("rejected").Inc()
		writeEnvelope(w, http.StatusUnauthorized, nil, msgUnauthorized)
		return
	}

	token, err := middleware.IssueToken(user.ID, h.Config.AuthSecret, h.Config.TokenTTL)
	if err != nil {
		h.Logger.Errorw("issue token", "error", err)
		metrics.SignInsTotal.WithLabelValues("error").Inc()
		writeEnvelope(w, http.StatusInternalServerError, nil, "internal error")
		return
	}
	metrics.SignInsTotal.WithLabelValues("ok").Inc()
	writeEnvelope(w, http.StatusOK, dto.SignInData{Token: token, Username: user.Username}, "")
}

// authenticate: account из тела — логин или email; без него пробуем authToken.
func (h *UserHandler) authenticate(r *http.Request, req dto.Credentials) (*model.User, error) {
	if req.Account == "" && req.AuthToken != "" {
		id, err := middleware.ParseToken(req.AuthToken, h.Config.AuthSecret)
		if err != nil {
			return nil, service.ErrInvalidCredentials
		}
		return h.UserService.GetByID(r.Context(), id)
	}
	return h.UserService.Login(r.Context(), req.Account, req.Password)
}

// Register POST /register: {account, nickname, password}.
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegistrationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		metrics.RegistrationsTotal.WithLabelValues("bad_request").Inc()
		writeEnvelope(w, http.StatusBadRequest, nil, "invalid json")
		return
	}

	user, err := h.UserService.Register(r.Context(), req.Account, req.Nickname, req.Password)
	switch {
	case err == nil:
		metrics.RegistrationsTotal.WithLabelValues("ok").Inc()
		writeEnvelope(w, http.StatusOK, userInfo(user), "")
	case errors.Is(err, service.ErrEmptyField):
		metrics.RegistrationsTotal.WithLabelValues("bad_request").Inc()
		writeEnvelope(w, http.StatusBadRequest, nil, err.Error())
	case errors.Is(err, service.ErrLoginTaken):
		metrics.RegistrationsTotal.WithLabelValues("conflict").Inc()
		writeEnvelope(w, http.StatusConflict, nil, err.Error())
	default:
		h.Logger.Errorw("register failed", "error", err)
		metrics.RegistrationsTotal.WithLabelValues("error").Inc()
		writeEnvelope(w, http.StatusInternalServerError, nil, "internal error")
	}
}

// CurrentUser GET /users/currentUser — требует токен.
func (h *UserHandler) CurrentUser(w http.ResponseWriter, r *http.Request) {
	id, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		writeEnvelope(w, http.StatusUnauthorized, nil, msgInvalidCredentials)
		return
	}
	user, err := h.UserService.GetByID(r.Context(), id)
	if errors.Is(err, service.ErrUserNotFound) {
		writeEnvelope(w, http.StatusUnauthorized, nil, msgInvalidCredentials)
		return
	}
	if err != nil {
		h.Logger.Errorw("load current user", "user_id", id, "error", err)
		writeEnvelope(w, http.StatusInternalServerError, nil, "internal error")
		return
	}
	if !user.Confirmed {
		writeEnvelope(w, http.StatusForbidden, nil, msgUnconfirmed)
		return
	}
	writeEnvelope(w, http.StatusOK, userInfo(user), "")
}
