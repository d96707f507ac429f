package handlers

import (
	"FishLog/internal/service"
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

// BoatRampHandler: справочник спусков: чтение без авторизации, добавление с ней.
type BoatRampHandler struct {
	BoatRampService *service.BoatRampService
	Logger          *zap.SugaredLogger
}

func NewBoatRampHandler(s *service.BoatRampService, logger *zap.SugaredLogger) *BoatRampHandler {
	return &BoatRampHandler{BoatRampService: s, Logger: logger}
}

// List GET /api/boat-ramps
func (h *BoatRampHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.BoatRampService.List(r.Context())
	if err != nil {
		writeServiceError(w, h.Logger, "ListBoatRamps", err)
		return
	}
	rows := make([]BoatRampRow, 0, len(items))
	for i := range items {
		rows = append(rows, boatRampRowFromModel(&items[i]))
	}
	writeJSON(w, http.StatusOK, rows)
}

// Create POST /api/boat-ramps
func (h *BoatRampHandler) Create(w http.ResponseWriter, r *http.Request) {
	uid, ok := requireUser(w, r)
	if !ok {
		return
	}
	var row BoatRampRow
	if err := json.NewDecoder(r.Body).Decode(&row); err != nil {
		h.Logger.Warnw("CreateBoatRamp: invalid request body", "error", err)
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	br, err := h.BoatRampService.Create(r.Context(), uid, row.toModel())
	if err != nil {
		writeServiceError(w, h.Logger, "CreateBoatRamp", err)
		return
	}
	writeJSON(w, http.StatusCreated, boatRampRowFromModel(br))
}
