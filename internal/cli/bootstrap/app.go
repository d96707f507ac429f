package bootstrap

import (
	"FishLog/internal/cli/api"
	"FishLog/internal/cli/model"
	fsrepo "FishLog/internal/cli/repo/fs"
	reposqlite "FishLog/internal/cli/repo/sqlite"
	"FishLog/internal/cli/service"
	"FishLog/internal/config"
	"FishLog/internal/osm"
	"FishLog/internal/species"
	"FishLog/internal/weather"
	"context"
	"fmt"

	"go.uber.org/zap"
)

// App: собранные зависимости CLI на одну сессию.
type App struct {
	Config    *config.Config
	Session   *service.Session
	Auth      service.AuthService
	Catches   *service.CatchService
	BoatRamps *service.BoatRampService
	Public    *service.PublicFeed
	Weather   *weather.Provider
	OSM       *osm.Client
	Species   *species.Registry
}

// Open открывает локальную базу, выполняет миграции и собирает сервисы.
// Возвращает (app, cleanup, error); cleanup закрывает соединение с БД.
func Open(ctx context.Context, cfg *config.Config, logger *zap.SugaredLogger) (*App, func() error, error) {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	kv, err := reposqlite.Open(ctx, cfg.ClientDBPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open client db: %w", err)
	}

	store := fsrepo.AuthFSStore{}
	sess := service.NewSession(cfg, store, store)
	client := api.NewClient(cfg, sess.Token())

	app := &App{
		Config:  cfg,
		Session: sess,
		Auth:    service.NewAuthService(cfg, store, store),
		Catches: service.NewCatchService(
			sess,
			reposqlite.NewLocalStore[model.Catch](kv, reposqlite.CatchesKey, logger),
			api.NewCatchTable(client),
			api.NewPhotoUploader(client),
			logger,
		),
		BoatRamps: service.NewBoatRampService(
			sess,
			reposqlite.NewLocalStore[model.BoatRamp](kv, reposqlite.BoatRampsKey, logger),
			api.NewBoatRampTable(client),
			logger,
		),
		Public:  service.NewPublicFeed(sess, api.NewCatchTable(client)),
		Weather: weather.NewProvider(cfg, logger),
		OSM:     osm.NewClient(cfg, logger),
		Species: species.Default(),
	}

	closed := false
	cleanup := func() error {
		if closed {
			return nil
		}
		closed = true
		return kv.Close()
	}
	return app, cleanup, nil
}
