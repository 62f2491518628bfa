// Package dto содержит структуры, которые ходят по сети между CLI и сервером.
package dto

import (
	"encoding/json"
	"errors"
)

// TokenHeader — заголовок, в котором клиент передаёт выданный токен.
const TokenHeader = "Oauth-Token"

// Credentials — тело запроса POST /signin.
// AuthToken позволяет повторно войти по ранее выданному токену без пароля.
type Credentials struct {
	Account   string `json:"account"`
	Password  string `json:"password"`
	AuthToken string `json:"authToken,omitempty"`
}

// RegistrationRequest — тело запроса POST /register.
type RegistrationRequest struct {
	Account  string `json:"account"`
	Nickname string `json:"nickname"`
	Password string `json:"password"`
}

// SignInData — полезная нагрузка успешного ответа /signin.
type SignInData struct {
	Token    string `json:"Oauth-Token"`
	Username string `json:"username"`
}

// UserInfo — публичное представление пользователя.
type UserInfo struct {
	ID       int64  `json:"id"`
	Account  string `json:"account"`
	Nickname string `json:"nickname"`
	Email    string `json:"email,omitempty"`
}

// Envelope — единый формат ответов сервера.
type Envelope struct {
	Success bool            `json:"success"`
	Code    int             `json:"code"`
	Data    json.RawMessage `json:"data"`
	Msg     string          `json:"msg"`
}

// Коды в поле Envelope.Code.
const (
	CodeOK     = 0
	CodeFailed = 1
)

// DecodeData разбирает Data в v.
func (e *Envelope) DecodeData(v any) error {
	if len(e.Data) == 0 || string(e.Data) == "null" {
		return errors.New("empty data in response")
	}
	return json.Unmarshal(e.Data, v)
}
