package repo

import (
	"FishLog/internal/model"
	"context"

	"gorm.io/gorm"
)

// CatchRepository определяет контракт доступа к таблице catches.
// Все изменяющие операции ограничены владельцем записи.
type CatchRepository interface {
	// ListByOwner возвращает уловы владельца, отсортированные по caught_at DESC.
	ListByOwner(ctx context.Context, userID string) ([]model.Catch, error)

	// ListPublic возвращает публичные уловы всех пользователей (caught_at DESC).
	ListPublic(ctx context.Context, limit int) ([]model.Catch, error)

	// GetByID ищет улов по id в пределах владельца.
	GetByID(ctx context.Context, userID, id string) (*model.Catch, error)

	// Create вставляет новый улов.
	Create(ctx context.Context, c *model.Catch) error

	// UpdateOwned обновляет столбцы строки с совпадающими id и user_id
	// и возвращает обновлённую строку. gorm.ErrRecordNotFound, если строки нет.
	UpdateOwned(ctx context.Context, userID, id string, updates map[string]any) (*model.Catch, error)

	// DeleteOwned удаляет строку с совпадающими id и user_id.
	DeleteOwned(ctx context.Context, userID, id string) error
}

type catchRepo struct {
	db *gorm.DB
}

// NewCatchRepository создаёт реализацию репозитория для уловов.
func NewCatchRepository(db *gorm.DB) CatchRepository {
	return &catchRepo{db: db}
}

func (r *catchRepo) ListByOwner(ctx context.Context, userID string) ([]model.Catch, error) {
	var out []model.Catch
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("caught_at DESC").
		Find(&out).Error
	return out, err
}

func (r *catchRepo) ListPublic(ctx context.Context, limit int) ([]model.Catch, error) {
	if limit <= 0 {
		limit = 100
	}
	var out []model.Catch
	err := r.db.WithContext(ctx).
		Where("is_public = ?", true).
		Order("caught_at DESC").
		Limit(limit).
		Find(&out).Error
	return out, err
}

func (r *catchRepo) GetByID(ctx context.Context, userID, id string) (*model.Catch, error) {
	var c model.Catch
	if err := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).Take(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *catchRepo) Create(ctx context.Context, c *model.Catch) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *catchRepo) UpdateOwned(ctx context.Context, userID, id string, updates map[string]any) (*model.Catch, error) {
	var out *model.Catch
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&model.Catch{}).
			Where("id = ? AND user_id = ?", id, userID).
			Updates(updates)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		var c model.Catch
		if err := tx.Where("id = ? AND user_id = ?", id, userID).Take(&c).Error; err != nil {
			return err
		}
		out = &c
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *catchRepo) DeleteOwned(ctx context.Context, userID, id string) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.Catch{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
