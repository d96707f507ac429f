package handlers

import (
	"FishLog/internal/config"
	"FishLog/internal/middleware"
	"FishLog/internal/service"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type Handler struct {
	Router chi.Router
}

// NewHandler разводящий для хендлеров
func NewHandler(
	userService *service.UserService,
	catchService *service.CatchService,
	boatRampService *service.BoatRampService,
	photoService *service.PhotoService,
	logger *zap.SugaredLogger,
	config *config.Config,
) *Handler {
	r := chi.NewRouter()

	r.Use(middleware.WithGzip)
	r.Use(middleware.WithLogging(logger))
	r.Use(middleware.WithAuth(config.AuthSecret))

	// Handlers
	userHandler := NewUserHandler(userService, logger, config)
	catchHandler := NewCatchHandler(catchService, logger)
	boatRampHandler := NewBoatRampHandler(boatRampService, logger)
	photoHandler := NewPhotoHandler(photoService, logger, config)

	// User routes
	r.Post("/api/user/register", userHandler.Register)
	r.Post("/api/user/login", userHandler.Login)
	r.Get("/api/user/status", userHandler.Status)

	// Catches
	r.Get("/api/catches", catchHandler.List)
	r.Get("/api/catches/public", catchHandler.ListPublic)
	r.Post("/api/catches", catchHandler.Create)
	r.Patch("/api/catches/{id}", catchHandler.Update)
	r.Delete("/api/catches/{id}", catchHandler.Delete)

	// Boat ramps
	r.Get("/api/boat-ramps", boatRampHandler.List)
	r.Post("/api/boat-ramps", boatRampHandler.Create)

	// Photos
	r.Post("/api/photos", photoHandler.Upload)
	r.Get("/api/photos/{owner}/{name}", photoHandler.Get)

	return &Handler{Router: r}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// requireUser возвращает user_id или отвечает 401.
func requireUser(w http.ResponseWriter, r *http.Request) (string, bool) {
	uid, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
	}
	return uid, ok
}

// writeServiceError переводит ошибки сервисов в HTTP-статусы.
func writeServiceError(w http.ResponseWriter, logger *zap.SugaredLogger, op string, err error) {
	switch {
	case errors.Is(err, service.ErrForbidden):
		http.Error(w, "forbidden", http.StatusForbidden)
	case errors.Is(err, service.ErrNotFound):
		http.Error(w, "not found", http.StatusNotFound)
	case errors.Is(err, service.ErrInvalidInput), errors.Is(err, service.ErrUnsupportedFormat):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, service.ErrPhotoTooLarge):
		http.Error(w, "payload too large", http.StatusRequestEntityTooLarge)
	default:
		logger.Errorw(op+": service error", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
