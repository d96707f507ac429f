package fs

import (
	"FishLog/internal/cli/repo"
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// AppDirName: подкаталог приложения в пользовательском конфиг-каталоге.
const AppDirName = "FishLog"

// AuthFSStore: файловое хранилище токена и контекста пользователя для CLI.
type AuthFSStore struct{}

var (
	_ repo.TokenStore       = AuthFSStore{}
	_ repo.UserContextStore = AuthFSStore{}
)

func configDir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	p := filepath.Join(dir, AppDirName)
	if err := os.MkdirAll(p, 0o700); err != nil {
		return "", err
	}
	return p, nil
}

func filePath(name string) (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, name), nil
}

func tokenPath() (string, error)     { return filePath("auth_token") }
func lastLoginPath() (string, error) { return filePath("last_login") }
func userIDPath() (string, error)    { return filePath("user_id") }

func writeValue(p func() (string, error), v string) error {
	path, err := p()
	if err != nil {
		return err
	}
	return os.WriteFile(path, []byte(v), 0o600)
}

// readValue читает файл и обрезает завершающие переводы строки/пробелы.
func readValue(p func() (string, error), what string) (string, error) {
	path, err := p()
	if err != nil {
		return "", err
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	v := strings.TrimRight(string(b), "\r\n\t ")
	if v == "" {
		return "", errors.New("empty " + what + " file")
	}
	return v, nil
}

// Save сохраняет auth‑токен в файл.
func (AuthFSStore) Save(token string) error {
	return writeValue(tokenPath, token)
}

// Load читает auth‑токен из файла.
func (AuthFSStore) Load() (string, error) {
	return readValue(tokenPath, "token")
}

// Clear удаляет токен и id владельца (logout). Отсутствие файлов не ошибка.
func (AuthFSStore) Clear() error {
	for _, p := range []func() (string, error){tokenPath, userIDPath} {
		path, err := p()
		if err != nil {
			return err
		}
		if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
			return err
		}
	}
	return nil
}

// SaveLogin сохраняет логин пользователя в файл.
func (AuthFSStore) SaveLogin(login string) error {
	if login == "" {
		return errors.New("empty login")
	}
	return writeValue(lastLoginPath, login)
}

// LoadLogin читает логин пользователя из файла.
func (AuthFSStore) LoadLogin() (string, error) {
	return readValue(lastLoginPath, "login")
}

// SaveUserID сохраняет id владельца, выданный сервером.
func (AuthFSStore) SaveUserID(userID string) error {
	if userID == "" {
		return errors.New("empty user id")
	}
	return writeValue(userIDPath, userID)
}

// LoadUserID читает id владельца.
func (AuthFSStore) LoadUserID() (string, error) {
	return readValue(userIDPath, "user id")
}
