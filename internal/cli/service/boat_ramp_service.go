package service

import (
	"FishLog/internal/cli/mapper"
	"FishLog/internal/cli/model"
	"FishLog/internal/cli/repo"
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"go.uber.org/zap"
)

// BoatRampService: репозиторий спусков. Remote выбирается, если бэкенд
// настроен; вход для чтения не нужен. Запись без владельца при настроенном
// Remote уходит в локальное хранилище.
type BoatRampService struct {
	session repo.Session
	local   repo.LocalStore[model.BoatRamp]
	remote  repo.BoatRampTable
	logger  *zap.SugaredLogger

	useRemote bool
	now       func() time.Time
	newID     func() string

	mu      sync.Mutex
	ramps   []model.BoatRamp
	err     string
	pending int
	seq     uint64
}

func NewBoatRampService(
	session repo.Session,
	local repo.LocalStore[model.BoatRamp],
	remote repo.BoatRampTable,
	logger *zap.SugaredLogger,
) *BoatRampService {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &BoatRampService{
		session:   session,
		local:     local,
		remote:    remote,
		logger:    logger,
		useRemote: remote != nil && session.RemoteConfigured(),
		now:       time.Now,
		newID:     uuid.NewString,
		ramps:     []model.BoatRamp{},
	}
}

func (s *BoatRampService) Remote() bool { return s.useRemote }

func (s *BoatRampService) BoatRamps() []model.BoatRamp {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.BoatRamp, len(s.ramps))
	copy(out, s.ramps)
	return out
}

func (s *BoatRampService) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pending > 0
}

func (s *BoatRampService) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

func (s *BoatRampService) Refresh(ctx context.Context) {
	s.mu.Lock()
	s.err = ""
	s.pending++
	s.seq++
	my := s.seq
	s.mu.Unlock()

	list, err := s.load(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending--
	if my != s.seq {
		return
	}
	if err != nil {
		s.err = fmt.Sprintf("could not load boat ramps: %v", err)
		s.logger.Warnw("boat ramps refresh failed", "error", err)
		return
	}
	s.ramps = list
}

func (s *BoatRampService) load(ctx context.Context) ([]model.BoatRamp, error) {
	if !s.useRemote {
		return s.local.Load(ctx), nil
	}
	rows, err := s.remote.List(ctx)
	if err != nil {
		return nil, err
	}
	list := make([]model.BoatRamp, 0, len(rows))
	for _, r := range rows {
		list = append(list, mapper.BoatRampFromRow(r))
	}
	return list, nil
}

// Add сохраняет новый спуск (Verified всегда false) и добавляет его в начало коллекции.
func (s *BoatRampService) Add(ctx context.Context, form model.BoatRampForm) (*model.BoatRamp, bool) {
	s.mu.Lock()
	s.err = ""
	s.pending++
	s.mu.Unlock()

	saved, err := s.add(ctx, form)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending--
	if err != nil {
		s.err = fmt.Sprintf("could not save boat ramp: %v", err)
		s.logger.Warnw("add boat ramp failed", "error", err)
		return nil, false
	}
	s.ramps = append([]model.BoatRamp{*saved}, s.ramps...)
	return saved, true
}

func (s *BoatRampService) add(ctx context.Context, form model.BoatRampForm) (*model.BoatRamp, error) {
	owner, authed := s.session.OwnerID()
	r := model.BoatRamp{
		ID:            s.newID(),
		Name:          form.Name,
		Latitude:      form.Latitude,
		Longitude:     form.Longitude,
		WaterName:     form.WaterName,
		Description:   optString(form.Description),
		Parking:       form.Parking,
		Fee:           form.Fee,
		AddedByUserID: model.LocalOwner,
		Verified:      false,
		CreatedAt:     s.now().UTC(),
	}
	if authed {
		r.AddedByUserID = owner
	}

	if s.useRemote && authed {
		row, err := s.remote.Insert(ctx, mapper.BoatRampToRow(r))
		if err != nil {
			return nil, err
		}
		saved := mapper.BoatRampFromRow(*row)
		return &saved, nil
	}

	if s.useRemote {
		s.logger.Warnw("remote backend configured but no owner signed in, boat ramp saved locally", "id", r.ID)
	}
	// локальный слот содержит только локальные записи
	stored := s.local.Load(ctx)
	next := append([]model.BoatRamp{r}, stored...)
	if err := s.local.Save(ctx, next); err != nil {
		return nil, err
	}
	return &r, nil
}

// RampDistance: спуск и расстояние до него в метрах.
type RampDistance struct {
	Ramp     model.BoatRamp
	Distance float64
}

// Nearest сортирует текущий снимок по расстоянию до точки; limit <= 0 без ограничения.
func (s *BoatRampService) Nearest(lat, lon float64, limit int) []RampDistance {
	from := orb.Point{lon, lat}
	ramps := s.BoatRamps()
	out := make([]RampDistance, 0, len(ramps))
	for _, r := range ramps {
		out = append(out, RampDistance{
			Ramp:     r,
			Distance: geo.DistanceHaversine(from, orb.Point{r.Longitude, r.Latitude}),
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Distance < out[j].Distance })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}
