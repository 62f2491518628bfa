package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/tianxinyueming/idealyard/internal/model"
	"github.com/tianxinyueming/idealyard/internal/repo"
)

var (
	ErrLoginTaken         = errors.New("account already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrEmptyField         = errors.New("account, nickname and password are required")
)

// UserService — регистрация и проверка учётных данных.
type UserService struct {
	repo repo.UserRepository
}

func NewUserService(r repo.UserRepository) *UserService {
	return &UserService{repo: r}
}

// Register создаёт подтверждённого пользователя с bcrypt‑хешем пароля.
func (s *UserService) Register(ctx context.Context, account, nickname, password string) (*model.User, error) {
	account = strings.TrimSpace(account)
	nickname = strings.TrimSpace(nickname)
	if account == "" || nickname == "" || password == "" {
		return nil, ErrEmptyField
	}

	existing, err := s.repo.GetUserByLogin(ctx, account)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrLoginTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	u := &model.User{Username: account, Nickname: nickname, Password: string(hash), Confirmed: true}
	// аккаунт вида name@host считаем и почтой, чтобы по ней тоже можно было войти
	if strings.Contains(account, "@") {
		email := account
		u.Email = &email
	}
	// между проверкой и вставкой аккаунт мог занять параллельный запрос
	created, err := s.repo.CreateUser(ctx, u)
	if errors.Is(err, repo.ErrAlreadyExists) {
		return nil, ErrLoginTaken
	}
	if err != nil {
		return nil, err
	}
	return created, nil
}

// Login проверяет пару account/password; account — username или email.
func (s *UserService) Login(ctx context.Context, account, password string) (*model.User, error) {
	account = strings.TrimSpace(account)
	if account == "" {
		return nil, ErrInvalidCredentials
	}
	u, err := s.repo.GetUserByLogin(ctx, account)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}

// GetByID возвращает пользователя по id.
func (s *UserService) GetByID(ctx context.Context, id int64) (*model.User, error) {
	u, err := s.repo.GetUserByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrUserNotFound
	}
	return u, nil
}
