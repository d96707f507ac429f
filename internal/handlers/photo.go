package handlers

import (
	"FishLog/internal/config"
	"FishLog/internal/service"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// PhotoHandler загрузка и выдача фотографий уловов.
type PhotoHandler struct {
	PhotoService *service.PhotoService
	Logger       *zap.SugaredLogger
	Config       *config.Config
}

func NewPhotoHandler(s *service.PhotoService, logger *zap.SugaredLogger, cfg *config.Config) *PhotoHandler {
	return &PhotoHandler{PhotoService: s, Logger: logger, Config: cfg}
}

// Upload POST /api/photos, multipart-поле "file". Отвечает {"url": ...}.
func (h *PhotoHandler) Upload(w http.ResponseWriter, r *http.Request) {
	uid, ok := requireUser(w, r)
	if !ok {
		return
	}

	// Лимит общего тела запроса
	maxPhoto := int64(h.Config.PhotoMaxSizeMB) * 1024 * 1024
	r.Body = http.MaxBytesReader(w, r.Body, maxPhoto+1*1024*1024)

	if err := r.ParseMultipartForm(10 << 20); err != nil {
		h.Logger.Warnw("UploadPhoto: invalid multipart form", "error", err)
		http.Error(w, "invalid multipart form", http.StatusBadRequest)
		return
	}
	file, hdr, err := r.FormFile("file")
	if err != nil {
		h.Logger.Warnw("UploadPhoto: missing file", "error", err)
		http.Error(w, "missing file", http.StatusBadRequest)
		return
	}
	defer file.Close()
	data, err := io.ReadAll(file)
	if err != nil {
		h.Logger.Warnw("UploadPhoto: failed to read file", "error", err)
		http.Error(w, "failed to read file", http.StatusBadRequest)
		return
	}

	p, err := h.PhotoService.Upload(r.Context(), uid, hdr.Filename, hdr.Header.Get("Content-Type"), data)
	if err != nil {
		writeServiceError(w, h.Logger, "UploadPhoto", err)
		return
	}
	h.Logger.Infow("photo uploaded", "user_id", uid, "path", p, "size", len(data))
	writeJSON(w, http.StatusCreated, map[string]string{"url": publicPhotoURL(r, p)})
}

// Get GET /api/photos/{owner}/{name}
func (h *PhotoHandler) Get(w http.ResponseWriter, r *http.Request) {
	p := chi.URLParam(r, "owner") + "/" + chi.URLParam(r, "name")
	ph, err := h.PhotoService.Get(r.Context(), p)
	if err != nil {
		writeServiceError(w, h.Logger, "GetPhoto", err)
		return
	}
	w.Header().Set("Content-Type", ph.ContentType)
	w.Header().Set("Content-Length", strconv.Itoa(len(ph.Data)))
	w.Header().Set("Cache-Control", "public, max-age=31536000, immutable")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(ph.Data)
}

func publicPhotoURL(r *http.Request, p string) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	return scheme + "://" + r.Host + "/api/photos/" + p
}
