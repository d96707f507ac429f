package fs

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// setTempCfg перенастраивает пользовательский конфиг‑каталог в temp для изоляции тестов.
func setTempCfg(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	if runtime.GOOS == "windows" {
		t.Setenv("APPDATA", dir)
	} else {
		t.Setenv("XDG_CONFIG_HOME", dir)
	}
	return dir
}

func TestAuthFSStore_SaveLoad_Token_TrimsWhitespace(t *testing.T) {
	setTempCfg(t)
	st := AuthFSStore{}
	// Сохранение токена
	if err := st.Save("tok-123\n\n"); err != nil {
		t.Fatalf("save token: %v", err)
	}
	// Дозапишем вручную лишние пробелы в конец файла, чтобы проверить trim
	p, _ := tokenPath()
	f, _ := os.OpenFile(p, os.O_APPEND|os.O_WRONLY, 0o600)
	_, _ = f.WriteString("  \r\n")
	_ = f.Close()

	tok, err := st.Load()
	if err != nil {
		t.Fatalf("load token: %v", err)
	}
	if tok != "tok-123" {
		t.Fatalf("token not trimmed, got %q", tok)
	}
}

func TestAuthFSStore_Load_TokenMissingOrEmpty(t *testing.T) {
	setTempCfg(t)
	st := AuthFSStore{}
	// отсутствует файл
	if _, err := st.Load(); err == nil {
		t.Fatalf("expected error for missing token file")
	}
	// пустой файл
	p, _ := tokenPath()
	_ = os.MkdirAll(filepath.Dir(p), 0o700)
	_ = os.WriteFile(p, []byte(""), 0o600)
	if _, err := st.Load(); err == nil {
		t.Fatalf("expected error for empty token file")
	}
}

func TestAuthFSStore_SaveLoad_Login_And_Trimming(t *testing.T) {
	setTempCfg(t)
	st := AuthFSStore{}
	if err := st.SaveLogin("alice\n"); err != nil {
		t.Fatalf("save login: %v", err)
	}
	login, err := st.LoadLogin()
	if err != nil {
		t.Fatalf("load login: %v", err)
	}
	if login != "alice" {
		t.Fatalf("login not trimmed, got %q", login)
	}
}

func TestAuthFSStore_SaveLogin_EmptyError(t *testing.T) {
	setTempCfg(t)
	st := AuthFSStore{}
	if err := st.SaveLogin(""); err == nil {
		t.Fatalf("expected error for empty login")
	}
}

func TestAuthFSStore_UserID_SaveLoadClear(t *testing.T) {
	setTempCfg(t)
	st := AuthFSStore{}
	if err := st.SaveUserID(""); err == nil {
		t.Fatalf("expected error for empty user id")
	}
	if err := st.SaveUserID("0b6f-uid\n"); err != nil {
		t.Fatalf("save user id: %v", err)
	}
	if err := st.Save("tok"); err != nil {
		t.Fatalf("save token: %v", err)
	}
	uid, err := st.LoadUserID()
	if err != nil || uid != "0b6f-uid" {
		t.Fatalf("load user id: %q, %v", uid, err)
	}

	// Clear удаляет токен и id, но не логин
	_ = st.SaveLogin("alice")
	if err := st.Clear(); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if _, err := st.Load(); err == nil {
		t.Fatalf("token must be gone after Clear")
	}
	if _, err := st.LoadUserID(); err == nil {
		t.Fatalf("user id must be gone after Clear")
	}
	if login, _ := st.LoadLogin(); login != "alice" {
		t.Fatalf("login must survive Clear, got %q", login)
	}
	// повторный Clear: не ошибка
	if err := st.Clear(); err != nil {
		t.Fatalf("second clear: %v", err)
	}
}
