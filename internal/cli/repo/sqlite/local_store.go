package sqlite

import (
	"FishLog/internal/cli/repo"
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"
)

// Ключи слотов локального хранилища.
const (
	CatchesKey   = "fiskeapp_catches"
	BoatRampsKey = "fiskeapp_boat_ramps"
)

// LocalStore хранит коллекцию T как JSON в одном слоте KV.
type LocalStore[T any] struct {
	kv     *KV
	key    string
	logger *zap.SugaredLogger
}

// NewLocalStore создаёт слот key поверх kv.
func NewLocalStore[T any](kv *KV, key string, logger *zap.SugaredLogger) *LocalStore[T] {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &LocalStore[T]{kv: kv, key: key, logger: logger}
}

var _ repo.LocalStore[struct{}] = (*LocalStore[struct{}])(nil)

// Load возвращает сохранённую коллекцию. Отсутствующий слот, ошибка чтения
// или неразбираемые данные дают пустую коллекцию.
func (s *LocalStore[T]) Load(ctx context.Context) []T {
	raw, ok, err := s.kv.Get(ctx, s.key)
	if err != nil {
		s.logger.Warnw("local store: read failed", "key", s.key, "error", err)
		return []T{}
	}
	if !ok {
		return []T{}
	}
	var items []T
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		s.logger.Warnw("local store: corrupt payload, treating as empty", "key", s.key, "error", err)
		return []T{}
	}
	if items == nil {
		return []T{}
	}
	return items
}

// Save сериализует коллекцию и перезаписывает слот.
func (s *LocalStore[T]) Save(ctx context.Context, items []T) error {
	if items == nil {
		items = []T{}
	}
	b, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode %s: %w", s.key, err)
	}
	if err := s.kv.Put(ctx, s.key, string(b)); err != nil {
		return fmt.Errorf("save %s: %w", s.key, err)
	}
	return nil
}
