package service

import (
	"FishLog/internal/model"
	"FishLog/internal/repo"
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"
)

var (
	ErrForbidden    = errors.New("forbidden")
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
)

const defaultPublicLimit = 100

// CatchService инкапсулирует правила доступа к уловам:
// каждая операция ограничена владельцем, совпадающим с вызывающим пользователем.
type CatchService struct {
	repo repo.CatchRepository
}

func NewCatchService(r repo.CatchRepository) *CatchService {
	return &CatchService{repo: r}
}

// List возвращает уловы владельца. Запрашивать можно только свои.
func (s *CatchService) List(ctx context.Context, callerID, ownerID string) ([]model.Catch, error) {
	if ownerID == "" {
		ownerID = callerID
	}
	if ownerID != callerID {
		return nil, ErrForbidden
	}
	return s.repo.ListByOwner(ctx, ownerID)
}

// ListPublic возвращает публичную ленту уловов.
func (s *CatchService) ListPublic(ctx context.Context, limit int) ([]model.Catch, error) {
	if limit <= 0 || limit > 500 {
		limit = defaultPublicLimit
	}
	return s.repo.ListPublic(ctx, limit)
}

// Create сохраняет улов. Пустой user_id заполняется вызывающим; чужой: ErrForbidden.
func (s *CatchService) Create(ctx context.Context, callerID string, c *model.Catch) (*model.Catch, error) {
	if c == nil || strings.TrimSpace(c.ID) == "" || strings.TrimSpace(c.Species) == "" || c.CaughtAt.IsZero() {
		return nil, ErrInvalidInput
	}
	if c.UserID == "" {
		c.UserID = callerID
	}
	if c.UserID != callerID {
		return nil, ErrForbidden
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now().UTC()
	}
	c.CaughtAt = c.CaughtAt.UTC()
	c.CreatedAt = c.CreatedAt.UTC()
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// Update заменяет изменяемые поля строки, совпадающей по id и владельцу.
func (s *CatchService) Update(ctx context.Context, callerID, ownerID, id string, patch model.CatchPatch) (*model.Catch, error) {
	if ownerID != callerID {
		return nil, ErrForbidden
	}
	if strings.TrimSpace(patch.Species) == "" || patch.CaughtAt.IsZero() {
		return nil, ErrInvalidInput
	}
	patch.CaughtAt = patch.CaughtAt.UTC()
	c, err := s.repo.UpdateOwned(ctx, ownerID, id, patch.Columns())
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return c, err
}

// Delete удаляет строку, совпадающую по id и владельцу.
func (s *CatchService) Delete(ctx context.Context, callerID, ownerID, id string) error {
	if ownerID != callerID {
		return ErrForbidden
	}
	err := s.repo.DeleteOwned(ctx, ownerID, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
