package repo

import (
	"FishLog/internal/cli/model"
	"context"
)

// LocalStore: слот локального хранилища с JSON-коллекцией одного типа.
type LocalStore[T any] interface {
	// Load возвращает сохранённую коллекцию; пустую, если слота нет или данные не читаются.
	Load(ctx context.Context) []T

	// Save перезаписывает коллекцию целиком.
	Save(ctx context.Context, items []T) error
}

// CatchTable: удалённая таблица уловов, операции ограничены владельцем.
type CatchTable interface {
	List(ctx context.Context, ownerID string) ([]model.CatchRow, error)
	ListPublic(ctx context.Context, limit int) ([]model.CatchRow, error)
	Insert(ctx context.Context, row model.CatchRow) (*model.CatchRow, error)
	Update(ctx context.Context, id, ownerID string, patch model.CatchPatchRow) (*model.CatchRow, error)
	Delete(ctx context.Context, id, ownerID string) error
}

// BoatRampTable: удалённая таблица спусков.
type BoatRampTable interface {
	List(ctx context.Context) ([]model.BoatRampRow, error)
	Insert(ctx context.Context, row model.BoatRampRow) (*model.BoatRampRow, error)
}

// PhotoUploader загружает фото и возвращает постоянный URL.
type PhotoUploader interface {
	Upload(ctx context.Context, photo model.Photo, ownerID string) (string, error)
}

// Session: текущий владелец и признак настроенного удалённого бэкенда.
type Session interface {
	OwnerID() (string, bool)
	RemoteConfigured() bool
}
