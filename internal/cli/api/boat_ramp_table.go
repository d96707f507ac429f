package api

import (
	"FishLog/internal/cli/model"
	"FishLog/internal/cli/repo"
	"context"
	"net/http"
)

const boatRampsTable = "boat_ramps"

// BoatRampTable: удалённая таблица boat_ramps.
type BoatRampTable struct {
	c *Client
}

func NewBoatRampTable(c *Client) *BoatRampTable {
	return &BoatRampTable{c: c}
}

var _ repo.BoatRampTable = (*BoatRampTable)(nil)

// List возвращает все спуски, created_at DESC.
func (t *BoatRampTable) List(ctx context.Context) ([]model.BoatRampRow, error) {
	data, err := t.c.do(ctx, http.MethodGet, "/api/boat-ramps", nil)
	if err != nil {
		return nil, err
	}
	return decodeRows[model.BoatRampRow](boatRampsTable, data, boatRampColumns)
}

// Insert добавляет спуск и возвращает сохранённую строку.
func (t *BoatRampTable) Insert(ctx context.Context, row model.BoatRampRow) (*model.BoatRampRow, error) {
	data, err := t.c.do(ctx, http.MethodPost, "/api/boat-ramps", row)
	if err != nil {
		return nil, err
	}
	var out model.BoatRampRow
	if err := decodeRow(boatRampsTable, -1, data, boatRampColumns, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
