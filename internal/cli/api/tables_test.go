package api

import (
	"FishLog/internal/cli/mapper"
	"FishLog/internal/cli/model"
	"FishLog/internal/config"
	"FishLog/internal/handlers"
	"FishLog/internal/middleware"
	"FishLog/internal/repo"
	"FishLog/internal/service"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// stack поднимает настоящий сервер FishLog поверх in-memory SQLite.
type stack struct {
	srv *httptest.Server
	cfg *config.Config
}

func newStack(t *testing.T) *stack {
	t.Helper()
	db, err := repo.InitDB("file:" + uuid.NewString() + "?mode=memory&cache=shared")
	require.NoError(t, err)
	scfg := &config.Config{AuthSecret: "test-secret", PhotoMaxSizeMB: 1}
	logger := zap.NewNop().Sugar()
	h := handlers.NewHandler(
		service.NewUserService(repo.NewUserRepository(db)),
		service.NewCatchService(repo.NewCatchRepository(db)),
		service.NewBoatRampService(repo.NewBoatRampRepository(db)),
		service.NewPhotoService(repo.NewPhotoRepository(db), 1024*1024),
		logger, scfg,
	)
	srv := httptest.NewServer(h.Router)
	t.Cleanup(srv.Close)
	return &stack{srv: srv, cfg: &config.Config{ServerURL: srv.URL, HTTPTimeout: 5 * time.Second}}
}

func (s *stack) client(t *testing.T, userID string) *Client {
	t.Helper()
	if userID == "" {
		return NewClient(s.cfg, "")
	}
	tok, err := middleware.BuildToken(userID, "test-secret")
	require.NoError(t, err)
	return NewClient(s.cfg, tok)
}

func mkRow(id, owner string, caught time.Time) model.CatchRow {
	return mapper.CatchToRow(model.Catch{
		ID: id, OwnerID: owner, Species: "gadda", CaughtAt: caught, IsPublic: true,
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	})
}

func TestCatchTable_InsertListOrder(t *testing.T) {
	s := newStack(t)
	ctx := context.Background()
	tbl := NewCatchTable(s.client(t, "alice"))
	base := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	in := mkRow("c1", "alice", base)
	out, err := tbl.Insert(ctx, in)
	require.NoError(t, err)
	assert.Equal(t, in, *out)

	_, err = tbl.Insert(ctx, mkRow("c2", "alice", base.Add(2*time.Hour)))
	require.NoError(t, err)
	_, err = tbl.Insert(ctx, mkRow("c3", "alice", base.Add(time.Hour)))
	require.NoError(t, err)

	rows, err := tbl.List(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"c2", "c3", "c1"}, []string{rows[0].ID, rows[1].ID, rows[2].ID})
}

// Удаление и обновление не затрагивают строки другого владельца даже при известном id.
func TestCatchTable_OwnerIsolation(t *testing.T) {
	s := newStack(t)
	ctx := context.Background()
	alice := NewCatchTable(s.client(t, "alice"))
	bob := NewCatchTable(s.client(t, "bob"))
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	_, err := bob.Insert(ctx, mkRow("shared-id", "bob", now))
	require.NoError(t, err)

	err = alice.Delete(ctx, "shared-id", "alice")
	assert.True(t, errors.Is(err, ErrNotFound), "got %v", err)

	_, err = alice.Update(ctx, "shared-id", "alice", mapper.CatchPatch(model.Catch{Species: "lax", CaughtAt: now}))
	assert.True(t, errors.Is(err, ErrNotFound), "got %v", err)

	// подмена owner_id на чужой отклоняется сервером
	err = alice.Delete(ctx, "shared-id", "bob")
	var se *StatusError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, http.StatusForbidden, se.Code)

	rows, err := bob.List(ctx, "bob")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "gadda", rows[0].Species)
}

func TestCatchTable_UpdateAndPublic(t *testing.T) {
	s := newStack(t)
	ctx := context.Background()
	tbl := NewCatchTable(s.client(t, "alice"))
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	row := mkRow("c1", "alice", now)
	_, err := tbl.Insert(ctx, row)
	require.NoError(t, err)

	c := mapper.CatchFromRow(row)
	c.Species = "abborre"
	c.IsPublic = false
	upd, err := tbl.Update(ctx, "c1", "alice", mapper.CatchPatch(c))
	require.NoError(t, err)
	assert.Equal(t, "abborre", upd.Species)
	assert.Equal(t, row.CreatedAt, upd.CreatedAt)

	anon := NewCatchTable(s.client(t, ""))
	pub, err := anon.ListPublic(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, pub)

	_, err = anon.List(ctx, "alice")
	var se *StatusError
	require.True(t, errors.As(err, &se))
	assert.True(t, se.Unauthorized())
}

func TestBoatRampTable_InsertList(t *testing.T) {
	s := newStack(t)
	ctx := context.Background()
	tbl := NewBoatRampTable(s.client(t, "alice"))

	in := mapper.BoatRampToRow(model.BoatRamp{
		ID: "r1", Name: "Hamnen", Latitude: 58.9, Longitude: 13.5, WaterName: "Vänern",
		AddedByUserID: "alice", CreatedAt: time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
	})
	out, err := tbl.Insert(ctx, in)
	require.NoError(t, err)
	assert.Equal(t, in, *out)

	rows, err := NewBoatRampTable(s.client(t, "")).List(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Hamnen", rows[0].Name)
}

func TestPhotoUploader_Upload(t *testing.T) {
	s := newStack(t)
	ctx := context.Background()
	up := NewPhotoUploader(s.client(t, "alice"))

	u, err := up.Upload(ctx, model.Photo{FileName: "gadda.jpg", ContentType: "image/jpeg", Data: []byte{0xff, 0xd8}}, "alice")
	require.NoError(t, err)
	assert.Contains(t, u, "/api/photos/alice/")

	resp, err := http.Get(u)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// без токена загрузка не выполняется
	_, err = NewPhotoUploader(s.client(t, "")).Upload(ctx, model.Photo{Data: []byte{1}}, "alice")
	assert.Error(t, err)
}

func TestClient_Status(t *testing.T) {
	s := newStack(t)
	st, err := s.client(t, "alice").Status(context.Background())
	require.NoError(t, err)
	assert.True(t, st.Authenticated)
	assert.Equal(t, "alice", st.UserID)

	st, err = s.client(t, "").Status(context.Background())
	require.NoError(t, err)
	assert.False(t, st.Authenticated)
}

func TestClient_SchemaErrorFromServer(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"id":"r1","name":"x"}]`))
	}))
	defer ts.Close()
	tbl := NewBoatRampTable(NewClient(&config.Config{ServerURL: ts.URL}, ""))
	_, err := tbl.List(context.Background())
	var se *SchemaError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, "latitude", se.Column)
}
