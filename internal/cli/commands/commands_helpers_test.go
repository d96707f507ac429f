package commands

import (
	"FishLog/internal/config"
	"path/filepath"
	"runtime"
	"testing"
)

// withTempConfig переопределяет пользовательские каталоги на время теста,
// чтобы артефакты (токен/логин/база) создавались в temp.
func withTempConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	if runtime.GOOS == "windows" {
		t.Setenv("APPDATA", dir)
	} else {
		t.Setenv("XDG_CONFIG_HOME", dir)
	}
	return dir
}

// localCfg: конфиг без удалённого бэкенда с базой во временном каталоге.
func localCfg(t *testing.T) *config.Config {
	t.Helper()
	dir := withTempConfig(t)
	return &config.Config{
		ClientDBPath: filepath.Join(dir, "db", "client.db"),
		ServerURL:    "http://127.0.0.1:1",
	}
}
