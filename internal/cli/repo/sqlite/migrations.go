package sqlite

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"sort"
)

//go:embed migrations/*.sql
var migrationFS embed.FS

// migrations возвращает имена SQL-файлов в порядке применения (по префиксу номера).
func migrations() ([]string, error) {
	names, err := fs.Glob(migrationFS, "migrations/*.sql")
	if err != nil {
		return nil, err
	}
	sort.Strings(names)
	return names, nil
}

// applyMigrations выполняет все миграции; каждая написана идемпотентно.
func applyMigrations(ctx context.Context, exec func(ctx context.Context, query string) error) error {
	names, err := migrations()
	if err != nil {
		return err
	}
	for _, name := range names {
		ddl, err := migrationFS.ReadFile(name)
		if err != nil {
			return err
		}
		if err := exec(ctx, string(ddl)); err != nil {
			return fmt.Errorf("migration %s: %w", name, err)
		}
	}
	return nil
}
