package handlers_test

import (
	"FishLog/internal/config"
	"FishLog/internal/handlers"
	"FishLog/internal/middleware"
	"FishLog/internal/repo"
	"FishLog/internal/service"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// newStackRouter собирает роутер поверх in-memory SQLite.
func newStackRouter(t *testing.T) (http.Handler, *config.Config) {
	t.Helper()
	cfg := &config.Config{AuthSecret: "test-secret", PhotoMaxSizeMB: 1}
	logger := zap.NewNop().Sugar()

	db, err := repo.InitDB("file:" + uuid.NewString() + "?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("init db: %v", err)
	}
	userSvc := service.NewUserService(repo.NewUserRepository(db))
	catchSvc := service.NewCatchService(repo.NewCatchRepository(db))
	rampSvc := service.NewBoatRampService(repo.NewBoatRampRepository(db))
	photoSvc := service.NewPhotoService(repo.NewPhotoRepository(db), int64(cfg.PhotoMaxSizeMB)*1024*1024)

	h := handlers.NewHandler(userSvc, catchSvc, rampSvc, photoSvc, logger, cfg)
	return h.Router, cfg
}

func addAuthCookie(t *testing.T, req *http.Request, userID string, secret string) {
	t.Helper()
	rr := httptest.NewRecorder()
	_ = middleware.SetLoginCookie(rr, userID, secret)
	for _, c := range rr.Result().Cookies() {
		req.AddCookie(c)
	}
}
