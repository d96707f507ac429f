package repo

import (
	"FishLog/internal/model"
	"context"

	"gorm.io/gorm"
)

// BoatRampRepository: только добавление и чтение: записи не редактируются и не удаляются.
type BoatRampRepository interface {
	// List возвращает все спуски, новые первыми.
	List(ctx context.Context) ([]model.BoatRamp, error)

	// Create вставляет новый спуск.
	Create(ctx context.Context, r *model.BoatRamp) error
}

type boatRampRepo struct {
	db *gorm.DB
}

// NewBoatRampRepository создаёт реализацию репозитория спусков для лодок.
func NewBoatRampRepository(db *gorm.DB) BoatRampRepository {
	return &boatRampRepo{db: db}
}

func (r *boatRampRepo) List(ctx context.Context) ([]model.BoatRamp, error) {
	var out []model.BoatRamp
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&out).Error
	return out, err
}

func (r *boatRampRepo) Create(ctx context.Context, br *model.BoatRamp) error {
	return r.db.WithContext(ctx).Create(br).Error
}
