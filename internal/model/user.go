package model

import "time"

// User — серверная модель пользователя.
type User struct {
	ID        int64   `gorm:"primaryKey;autoIncrement"`
	Username  string  `gorm:"uniqueIndex;not null"`
	Email     *string `gorm:"uniqueIndex"` // вход возможен и по email
	Nickname  string  `gorm:"not null"`
	Password  string  `gorm:"not null"` // bcrypt‑хеш
	Confirmed bool    `gorm:"not null"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
