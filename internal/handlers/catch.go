package handlers

import (
	"FishLog/internal/service"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// CatchHandler: CRUD уловов с проверкой владельца.
type CatchHandler struct {
	CatchService *service.CatchService
	Logger       *zap.SugaredLogger
}

func NewCatchHandler(catchService *service.CatchService, logger *zap.SugaredLogger) *CatchHandler {
	return &CatchHandler{CatchService: catchService, Logger: logger}
}

// List GET /api/catches?owner_id=
func (h *CatchHandler) List(w http.ResponseWriter, r *http.Request) {
	uid, ok := requireUser(w, r)
	if !ok {
		return
	}
	items, err := h.CatchService.List(r.Context(), uid, r.URL.Query().Get("owner_id"))
	if err != nil {
		writeServiceError(w, h.Logger, "ListCatches", err)
		return
	}
	rows := make([]CatchRow, 0, len(items))
	for i := range items {
		rows = append(rows, catchRowFromModel(&items[i]))
	}
	writeJSON(w, http.StatusOK, rows)
}

// ListPublic GET /api/catches/public?limit=
func (h *CatchHandler) ListPublic(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	items, err := h.CatchService.ListPublic(r.Context(), limit)
	if err != nil {
		writeServiceError(w, h.Logger, "ListPublicCatches", err)
		return
	}
	rows := make([]CatchRow, 0, len(items))
	for i := range items {
		rows = append(rows, catchRowFromModel(&items[i]))
	}
	writeJSON(w, http.StatusOK, rows)
}

// Create POST /api/catches
func (h *CatchHandler) Create(w http.ResponseWriter, r *http.Request) {
	uid, ok := requireUser(w, r)
	if !ok {
		return
	}
	var row CatchRow
	if err := json.NewDecoder(r.Body).Decode(&row); err != nil {
		h.Logger.Warnw("CreateCatch: invalid request body", "error", err)
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	c, err := h.CatchService.Create(r.Context(), uid, row.toModel())
	if err != nil {
		writeServiceError(w, h.Logger, "CreateCatch", err)
		return
	}
	writeJSON(w, http.StatusCreated, catchRowFromModel(c))
}

// Update PATCH /api/catches/{id}?owner_id=
func (h *CatchHandler) Update(w http.ResponseWriter, r *http.Request) {
	uid, ok := requireUser(w, r)
	if !ok {
		return
	}
	var patch CatchPatchRow
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		h.Logger.Warnw("UpdateCatch: invalid request body", "error", err)
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	id := chi.URLParam(r, "id")
	c, err := h.CatchService.Update(r.Context(), uid, r.URL.Query().Get("owner_id"), id, patch.toModel())
	if err != nil {
		writeServiceError(w, h.Logger, "UpdateCatch", err)
		return
	}
	writeJSON(w, http.StatusOK, catchRowFromModel(c))
}

// Delete DELETE /api/catches/{id}?owner_id=
func (h *CatchHandler) Delete(w http.ResponseWriter, r *http.Request) {
	uid, ok := requireUser(w, r)
	if !ok {
		return
	}
	id := chi.URLParam(r, "id")
	if err := h.CatchService.Delete(r.Context(), uid, r.URL.Query().Get("owner_id"), id); err != nil {
		writeServiceError(w, h.Logger, "DeleteCatch", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
