package repo

// UserContextStore хранит аккаунт последнего успешного входа, чтобы подсказать его после выхода.
type UserContextStore interface {
	SaveLogin(account string) error
	LoadLogin() (string, error)
}
