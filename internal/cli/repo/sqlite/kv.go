package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// KV: таблица ключ-значение в локальной БД SQLite.
type KV struct {
	db *sql.DB
}

// Open открывает (и создаёт при необходимости) файл БД и применяет миграции.
func Open(ctx context.Context, path string) (*KV, error) {
	if path == "" {
		return nil, errors.New("empty client db path")
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, err
		}
	}
	db, err := sql.Open("sqlite", "file:"+path+"?mode=rwc&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, err
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	kv := &KV{db: db}
	if err := kv.Migrate(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return kv, nil
}

// Close закрывает соединение с БД.
func (k *KV) Close() error {
	if k == nil || k.db == nil {
		return nil
	}
	return k.db.Close()
}

// Migrate гарантирует наличие необходимых таблиц.
func (k *KV) Migrate(ctx context.Context) error {
	return applyMigrations(ctx, func(ctx context.Context, query string) error {
		_, err := k.db.ExecContext(ctx, query)
		return err
	})
}

// Get возвращает значение по ключу; ok=false, если ключа нет.
func (k *KV) Get(ctx context.Context, key string) (value string, ok bool, err error) {
	err = k.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

// Put записывает значение одной UPSERT-операцией.
func (k *KV) Put(ctx context.Context, key, value string) error {
	_, err := k.db.ExecContext(ctx, `INSERT INTO kv(key, value, updated_at) VALUES(?, ?, ?)
        ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value, time.Now().Unix(),
	)
	return err
}
