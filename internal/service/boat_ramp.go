package service

import (
	"FishLog/internal/model"
	"FishLog/internal/repo"
	"context"
	"strings"
	"time"
)

// BoatRampService: общий справочник спусков для лодок: читать могут все,
// добавлять только авторизованные пользователи.
type BoatRampService struct {
	repo repo.BoatRampRepository
}

func NewBoatRampService(r repo.BoatRampRepository) *BoatRampService {
	return &BoatRampService{repo: r}
}

func (s *BoatRampService) List(ctx context.Context) ([]model.BoatRamp, error) {
	return s.repo.List(ctx)
}

// Create добавляет спуск. Флаг verified клиент выставить не может.
func (s *BoatRampService) Create(ctx context.Context, callerID string, r *model.BoatRamp) (*model.BoatRamp, error) {
	if r == nil || strings.TrimSpace(r.ID) == "" || strings.TrimSpace(r.Name) == "" || strings.TrimSpace(r.WaterName) == "" {
		return nil, ErrInvalidInput
	}
	if r.Latitude < -90 || r.Latitude > 90 || r.Longitude < -180 || r.Longitude > 180 {
		return nil, ErrInvalidInput
	}
	if r.AddedByUserID == "" {
		r.AddedByUserID = callerID
	}
	if r.AddedByUserID != callerID {
		return nil, ErrForbidden
	}
	r.Verified = false
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now().UTC()
	}
	r.CreatedAt = r.CreatedAt.UTC()
	if err := s.repo.Create(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}
