package service

import (
	"FishLog/internal/cli/mapper"
	"FishLog/internal/cli/model"
	"FishLog/internal/cli/repo"
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrCatchNotFound: id отсутствует в текущей коллекции в памяти.
var ErrCatchNotFound = errors.New("catch not found")

// CatchService: репозиторий уловов. Бэкенд (Remote или Local) выбирается
// один раз в конструкторе: Remote, если он настроен и владелец вошёл.
// Ошибки не пробрасываются наружу: результат nil/false, текст доступен в Err().
type CatchService struct {
	session repo.Session
	local   repo.LocalStore[model.Catch]
	remote  repo.CatchTable
	photos  repo.PhotoUploader
	logger  *zap.SugaredLogger

	useRemote bool
	now       func() time.Time
	newID     func() string

	mu      sync.Mutex
	catches []model.Catch
	err     string
	pending int
	seq     uint64
}

func NewCatchService(
	session repo.Session,
	local repo.LocalStore[model.Catch],
	remote repo.CatchTable,
	photos repo.PhotoUploader,
	logger *zap.SugaredLogger,
) *CatchService {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	_, authed := session.OwnerID()
	return &CatchService{
		session:   session,
		local:     local,
		remote:    remote,
		photos:    photos,
		logger:    logger,
		useRemote: remote != nil && session.RemoteConfigured() && authed,
		now:       time.Now,
		newID:     uuid.NewString,
		catches:   []model.Catch{},
	}
}

// Remote сообщает, работает ли репозиторий с удалённым бэкендом.
func (s *CatchService) Remote() bool { return s.useRemote }

// Catches возвращает копию текущей коллекции (новые сверху).
func (s *CatchService) Catches() []model.Catch {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Catch, len(s.catches))
	copy(out, s.catches)
	return out
}

func (s *CatchService) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pending > 0
}

// Err возвращает текст ошибки последней операции или "".
func (s *CatchService) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// begin очищает ошибку в начале каждой операции.
func (s *CatchService) begin() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = ""
	s.pending++
}

// beginRefresh дополнительно выдаёт номер запроса Refresh.
func (s *CatchService) beginRefresh() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = ""
	s.pending++
	s.seq++
	return s.seq
}

func (s *CatchService) finish(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending--
	if msg != "" {
		s.err = msg
	}
}

// Refresh перечитывает коллекцию из активного бэкенда. Результат Refresh,
// после которого стартовал более поздний Refresh, отбрасывается.
func (s *CatchService) Refresh(ctx context.Context) {
	my := s.beginRefresh()

	list, err := s.load(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending--
	if my != s.seq {
		s.logger.Debugw("stale catches refresh discarded", "seq", my, "current", s.seq)
		return
	}
	if err != nil {
		s.err = fmt.Sprintf("could not load catches: %v", err)
		s.logger.Warnw("catches refresh failed", "error", err)
		return
	}
	s.catches = list
}

func (s *CatchService) load(ctx context.Context) ([]model.Catch, error) {
	if !s.useRemote {
		list := s.local.Load(ctx)
		// слот хранит порядок записи; показываем новые по времени поимки
		sort.SliceStable(list, func(i, j int) bool { return list[i].CaughtAt.After(list[j].CaughtAt) })
		return list, nil
	}
	owner, ok := s.session.OwnerID()
	if !ok {
		return []model.Catch{}, nil
	}
	rows, err := s.remote.List(ctx, owner)
	if err != nil {
		return nil, err
	}
	list := make([]model.Catch, 0, len(rows))
	for _, r := range rows {
		list = append(list, mapper.CatchFromRow(r))
	}
	return list, nil
}

// Add сохраняет новый улов и добавляет его в начало коллекции.
// Неудачная загрузка фото не мешает сохранению: PhotoURL остаётся nil.
func (s *CatchService) Add(ctx context.Context, form model.CatchForm, weather *model.WeatherSnapshot) (*model.Catch, bool) {
	s.begin()
	saved, err := s.add(ctx, form, weather)
	if err != nil {
		s.logger.Warnw("add catch failed", "error", err)
		s.finish(fmt.Sprintf("could not save catch: %v", err))
		return nil, false
	}
	s.finish("")
	return saved, true
}

func (s *CatchService) add(ctx context.Context, form model.CatchForm, weather *model.WeatherSnapshot) (*model.Catch, error) {
	owner, authed := s.session.OwnerID()
	if s.useRemote && !authed {
		return nil, ErrNotAuthenticated
	}

	c := model.Catch{
		ID:        s.newID(),
		OwnerID:   model.LocalOwner,
		CreatedAt: s.now().UTC(),
	}
	if authed {
		c.OwnerID = owner
	}
	applyForm(&c, form, weather)
	if form.Photo != nil && authed {
		c.PhotoURL = s.uploadPhoto(ctx, *form.Photo, owner)
	}

	if s.useRemote {
		row, err := s.remote.Insert(ctx, mapper.CatchToRow(c))
		if err != nil {
			return nil, err
		}
		c = mapper.CatchFromRow(*row)
		s.mu.Lock()
		s.catches = prepend(s.catches, c)
		s.mu.Unlock()
		return &c, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	next := prepend(s.catches, c)
	if err := s.local.Save(ctx, next); err != nil {
		return nil, err
	}
	s.catches = next
	return &c, nil
}

// Update заменяет изменяемые поля улова. id, владелец и CreatedAt сохраняются;
// фото сохраняется, если не загружено новое.
func (s *CatchService) Update(ctx context.Context, id string, form model.CatchForm, weather *model.WeatherSnapshot) (*model.Catch, bool) {
	s.begin()
	saved, err := s.update(ctx, id, form, weather)
	if err != nil {
		s.logger.Warnw("update catch failed", "id", id, "error", err)
		msg := fmt.Sprintf("could not update catch: %v", err)
		if errors.Is(err, ErrCatchNotFound) {
			msg = ErrCatchNotFound.Error()
		}
		s.finish(msg)
		return nil, false
	}
	s.finish("")
	return saved, true
}

func (s *CatchService) update(ctx context.Context, id string, form model.CatchForm, weather *model.WeatherSnapshot) (*model.Catch, error) {
	existing, ok := s.find(id)
	if !ok {
		return nil, ErrCatchNotFound
	}
	owner, authed := s.session.OwnerID()
	if s.useRemote && !authed {
		return nil, ErrNotAuthenticated
	}

	c := existing
	applyForm(&c, form, weather)
	c.PhotoURL = existing.PhotoURL
	if form.Photo != nil && authed {
		if url := s.uploadPhoto(ctx, *form.Photo, owner); url != nil {
			c.PhotoURL = url
		}
	}

	if s.useRemote {
		row, err := s.remote.Update(ctx, id, owner, mapper.CatchPatch(c))
		if err != nil {
			return nil, err
		}
		c = mapper.CatchFromRow(*row)
		s.mu.Lock()
		s.catches = replace(s.catches, c)
		s.mu.Unlock()
		return &c, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	next := replace(s.catches, c)
	if err := s.local.Save(ctx, next); err != nil {
		return nil, err
	}
	s.catches = next
	return &c, nil
}

// Delete удаляет улов по id. Неизвестный id даёт false, коллекция не меняется.
func (s *CatchService) Delete(ctx context.Context, id string) bool {
	s.begin()
	if err := s.delete(ctx, id); err != nil {
		s.logger.Warnw("delete catch failed", "id", id, "error", err)
		msg := fmt.Sprintf("could not delete catch: %v", err)
		if errors.Is(err, ErrCatchNotFound) {
			msg = ErrCatchNotFound.Error()
		}
		s.finish(msg)
		return false
	}
	s.finish("")
	return true
}

func (s *CatchService) delete(ctx context.Context, id string) error {
	if _, ok := s.find(id); !ok {
		return ErrCatchNotFound
	}

	if s.useRemote {
		owner, authed := s.session.OwnerID()
		if !authed {
			return ErrNotAuthenticated
		}
		if err := s.remote.Delete(ctx, id, owner); err != nil {
			return err
		}
		s.mu.Lock()
		s.catches = without(s.catches, id)
		s.mu.Unlock()
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	next := without(s.catches, id)
	if err := s.local.Save(ctx, next); err != nil {
		return err
	}
	s.catches = next
	return nil
}

func (s *CatchService) find(id string) (model.Catch, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.catches {
		if c.ID == id {
			return c, true
		}
	}
	return model.Catch{}, false
}

func (s *CatchService) uploadPhoto(ctx context.Context, photo model.Photo, owner string) *string {
	if s.photos == nil {
		return nil
	}
	url, err := s.photos.Upload(ctx, photo, owner)
	if err != nil || url == "" {
		s.logger.Warnw("photo upload failed, saving catch without photo", "owner", owner, "error", err)
		return nil
	}
	return &url
}

// applyForm переносит поля формы и снимок погоды в улов.
// Пустые waterName/notes становятся nil, отсутствующая погода обнуляет снимок.
func applyForm(c *model.Catch, f model.CatchForm, w *model.WeatherSnapshot) {
	c.Species = f.Species
	c.LengthCm = f.LengthCm
	c.WeightGrams = f.WeightGrams
	c.CaughtAt = f.CaughtAt
	c.Latitude = f.Latitude
	c.Longitude = f.Longitude
	c.WaterName = optString(f.WaterName)
	c.Notes = optString(f.Notes)
	c.IsPublic = f.IsPublic

	c.WeatherTemp, c.WeatherWind, c.WeatherConditions, c.WeatherPressure = nil, nil, nil, nil
	if w != nil {
		temp, wind, cond, pres := w.Temp, w.Wind, w.Conditions, w.Pressure
		c.WeatherTemp = &temp
		c.WeatherWind = &wind
		c.WeatherConditions = &cond
		c.WeatherPressure = &pres
	}
}

func optString(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}

func prepend(list []model.Catch, c model.Catch) []model.Catch {
	out := make([]model.Catch, 0, len(list)+1)
	out = append(out, c)
	return append(out, list...)
}

func replace(list []model.Catch, c model.Catch) []model.Catch {
	out := make([]model.Catch, len(list))
	for i, x := range list {
		if x.ID == c.ID {
			out[i] = c
		} else {
			out[i] = x
		}
	}
	return out
}

func without(list []model.Catch, id string) []model.Catch {
	out := make([]model.Catch, 0, len(list))
	for _, x := range list {
		if x.ID != id {
			out = append(out, x)
		}
	}
	return out
}
