package repo

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/tianxinyueming/idealyard/internal/model"
)

// ErrAlreadyExists — пользователь с таким username или email уже есть.
var ErrAlreadyExists = errors.New("user already exists")

// UserRepository — доступ к пользователям для слоя сервиса.
type UserRepository interface {
	CreateUser(ctx context.Context, user *model.User) (*model.User, error)
	// GetUserByLogin ищет по username или email. Нет записи — (nil, nil).
	GetUserByLogin(ctx context.Context, login string) (*model.User, error)
	GetUserByID(ctx context.Context, id int64) (*model.User, error)
}

type userRepo struct {
	db *gorm.DB
}

// NewUserRepository создаёт реализацию репозитория пользователей на gorm.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepo{db: db}
}

// CreateUser вставляет пользователя. Нарушение уникальности отдаётся как ErrAlreadyExists.
func (r *userRepo) CreateUser(ctx context.Context, user *model.User) (*model.User, error) {
	err := r.db.WithContext(ctx).Create(user).Error
	if err == nil {
		return user, nil
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) || r.taken(ctx, user) {
		return nil, fmt.Errorf("%w: %v", ErrAlreadyExists, err)
	}
	return nil, err
}

// taken нужен там, где драйвер не переводит ошибку уникальности в gorm.ErrDuplicatedKey
// (modernc sqlite отдаёт свой тип ошибки).
func (r *userRepo) taken(ctx context.Context, user *model.User) bool {
	q := r.db.WithContext(ctx).Model(&model.User{}).Where("username = ?", user.Username)
	if user.Email != nil {
		q = q.Or("email = ?", *user.Email)
	}
	var n int64
	return q.Count(&n).Error == nil && n > 0
}

func (r *userRepo) GetUserByLogin(ctx context.Context, login string) (*model.User, error) {
	var u model.User
	err := r.db.WithContext(ctx).
		Where("username = ?", login).
		Or("email = ?", login).
		First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *userRepo) GetUserByID(ctx context.Context, id int64) (*model.User, error) {
	var u model.User
	err := r.db.WithContext(ctx).First(&u, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}
