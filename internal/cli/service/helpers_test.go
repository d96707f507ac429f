package service

import (
	"FishLog/internal/cli/api"
	"FishLog/internal/cli/model"
	"FishLog/internal/cli/repo"
	"FishLog/internal/cli/repo/sqlite"
	"FishLog/internal/config"
	"FishLog/internal/handlers"
	"FishLog/internal/middleware"
	srvrepo "FishLog/internal/repo"
	srvservice "FishLog/internal/service"
	"context"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testSecret = "test-secret"

// fakeSession: управляемая сессия: владелец и флаг удалённого бэкенда.
type fakeSession struct {
	owner  string
	remote bool
}

func (s *fakeSession) OwnerID() (string, bool) { return s.owner, s.owner != "" }
func (s *fakeSession) RemoteConfigured() bool  { return s.remote }

var _ repo.Session = (*fakeSession)(nil)

type mockCatchTable struct{ mock.Mock }

func (m *mockCatchTable) List(ctx context.Context, ownerID string) ([]model.CatchRow, error) {
	args := m.Called(ctx, ownerID)
	if v, ok := args.Get(0).([]model.CatchRow); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCatchTable) ListPublic(ctx context.Context, limit int) ([]model.CatchRow, error) {
	args := m.Called(ctx, limit)
	if v, ok := args.Get(0).([]model.CatchRow); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCatchTable) Insert(ctx context.Context, row model.CatchRow) (*model.CatchRow, error) {
	args := m.Called(ctx, row)
	if fn, ok := args.Get(0).(func(context.Context, model.CatchRow) *model.CatchRow); ok {
		return fn(ctx, row), args.Error(1)
	}
	if v, ok := args.Get(0).(*model.CatchRow); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCatchTable) Update(ctx context.Context, id, ownerID string, patch model.CatchPatchRow) (*model.CatchRow, error) {
	args := m.Called(ctx, id, ownerID, patch)
	if fn, ok := args.Get(0).(func(context.Context, string, string, model.CatchPatchRow) *model.CatchRow); ok {
		return fn(ctx, id, ownerID, patch), args.Error(1)
	}
	if v, ok := args.Get(0).(*model.CatchRow); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCatchTable) Delete(ctx context.Context, id, ownerID string) error {
	args := m.Called(ctx, id, ownerID)
	return args.Error(0)
}

var _ repo.CatchTable = (*mockCatchTable)(nil)

type mockPhotoUploader struct{ mock.Mock }

func (m *mockPhotoUploader) Upload(ctx context.Context, photo model.Photo, ownerID string) (string, error) {
	args := m.Called(ctx, photo, ownerID)
	return args.String(0), args.Error(1)
}

var _ repo.PhotoUploader = (*mockPhotoUploader)(nil)

// memStore: LocalStore в памяти с управляемой ошибкой записи.
type memStore[T any] struct {
	items   []T
	saveErr error
	saves   int
}

func (m *memStore[T]) Load(context.Context) []T {
	out := make([]T, len(m.items))
	copy(out, m.items)
	return out
}

func (m *memStore[T]) Save(_ context.Context, items []T) error {
	m.saves++
	if m.saveErr != nil {
		return m.saveErr
	}
	m.items = append([]T(nil), items...)
	return nil
}

// openKV открывает файловую клиентскую базу во временном каталоге.
func openKV(t *testing.T, dir string) *sqlite.KV {
	t.Helper()
	kv, err := sqlite.Open(context.Background(), filepath.Join(dir, "client.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = kv.Close() })
	return kv
}

// remoteStack поднимает настоящий сервер FishLog поверх in-memory SQLite.
type remoteStack struct {
	srv *httptest.Server
	cfg *config.Config
}

func newRemoteStack(t *testing.T) *remoteStack {
	t.Helper()
	db, err := srvrepo.InitDB("file:" + uuid.NewString() + "?mode=memory&cache=shared")
	require.NoError(t, err)
	h := handlers.NewHandler(
		srvservice.NewUserService(srvrepo.NewUserRepository(db)),
		srvservice.NewCatchService(srvrepo.NewCatchRepository(db)),
		srvservice.NewBoatRampService(srvrepo.NewBoatRampRepository(db)),
		srvservice.NewPhotoService(srvrepo.NewPhotoRepository(db), 1024*1024),
		zap.NewNop().Sugar(), &config.Config{AuthSecret: testSecret, PhotoMaxSizeMB: 1},
	)
	srv := httptest.NewServer(h.Router)
	t.Cleanup(srv.Close)
	return &remoteStack{srv: srv, cfg: &config.Config{ServerURL: srv.URL, UseRemote: true, HTTPTimeout: 5 * time.Second}}
}

func (s *remoteStack) client(t *testing.T, userID string) *api.Client {
	t.Helper()
	tok, err := middleware.BuildToken(userID, testSecret)
	require.NoError(t, err)
	return api.NewClient(s.cfg, tok)
}

func fptr(v float64) *float64 { return &v }

func gaddaForm() model.CatchForm {
	return model.CatchForm{
		Species:     "gadda",
		LengthCm:    fptr(62),
		WeightGrams: fptr(3200),
		CaughtAt:    time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
		WaterName:   "Vänern",
		Notes:       "",
		IsPublic:    true,
	}
}

func fixedClock(ts time.Time) func() time.Time { return func() time.Time { return ts } }
