package repo

import (
	"FishLog/internal/model"
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PhotoRepository минимальный контракт хранения фотографий уловов.
type PhotoRepository interface {
	// CreateIfAbsent пытается создать запись. Если путь уже занят: ничего не делает.
	// Возвращает created=true если запись была создана в этой операции.
	CreateIfAbsent(ctx context.Context, p *model.Photo) (created bool, err error)

	// Get возвращает фото по пути; gorm.ErrRecordNotFound, если его нет.
	Get(ctx context.Context, path string) (*model.Photo, error)
}

type photoRepo struct {
	db *gorm.DB
}

// NewPhotoRepository создаёт реализацию репозитория для фото.
func NewPhotoRepository(db *gorm.DB) PhotoRepository {
	return &photoRepo{db: db}
}

func (r *photoRepo) CreateIfAbsent(ctx context.Context, p *model.Photo) (bool, error) {
	tx := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "path"}},
		DoNothing: true,
	}).Create(p)
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}

func (r *photoRepo) Get(ctx context.Context, path string) (*model.Photo, error) {
	var p model.Photo
	if err := r.db.WithContext(ctx).Where("path = ?", path).Take(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}
