package repo

// UserContextStore абстракция для хранения контекста пользователя (логин и id владельца).
type UserContextStore interface {
	SaveLogin(login string) error
	LoadLogin() (string, error)
	SaveUserID(userID string) error
	LoadUserID() (string, error)
}
