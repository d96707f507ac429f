package api

import (
	"FishLog/internal/cli/model"
	"FishLog/internal/cli/repo"
	"context"
	"net/http"
	"net/url"
	"strconv"
)

const catchesTable = "catches"

// CatchTable: удалённая таблица catches.
type CatchTable struct {
	c *Client
}

func NewCatchTable(c *Client) *CatchTable {
	return &CatchTable{c: c}
}

var _ repo.CatchTable = (*CatchTable)(nil)

// List возвращает строки владельца, caught_at DESC.
func (t *CatchTable) List(ctx context.Context, ownerID string) ([]model.CatchRow, error) {
	data, err := t.c.do(ctx, http.MethodGet, "/api/catches?owner_id="+url.QueryEscape(ownerID), nil)
	if err != nil {
		return nil, err
	}
	return decodeRows[model.CatchRow](catchesTable, data, catchColumns)
}

// ListPublic возвращает публичные уловы всех пользователей.
func (t *CatchTable) ListPublic(ctx context.Context, limit int) ([]model.CatchRow, error) {
	path := "/api/catches/public"
	if limit > 0 {
		path += "?limit=" + strconv.Itoa(limit)
	}
	data, err := t.c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	return decodeRows[model.CatchRow](catchesTable, data, catchColumns)
}

// Insert вставляет строку и возвращает её в виде, сохранённом сервером.
func (t *CatchTable) Insert(ctx context.Context, row model.CatchRow) (*model.CatchRow, error) {
	data, err := t.c.do(ctx, http.MethodPost, "/api/catches", row)
	if err != nil {
		return nil, err
	}
	var out model.CatchRow
	if err := decodeRow(catchesTable, -1, data, catchColumns, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update обновляет строку, совпадающую по id и владельцу.
func (t *CatchTable) Update(ctx context.Context, id, ownerID string, patch model.CatchPatchRow) (*model.CatchRow, error) {
	path := "/api/catches/" + url.PathEscape(id) + "?owner_id=" + url.QueryEscape(ownerID)
	data, err := t.c.do(ctx, http.MethodPatch, path, patch)
	if err != nil {
		return nil, err
	}
	var out model.CatchRow
	if err := decodeRow(catchesTable, -1, data, catchColumns, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete удаляет строку, совпадающую по id и владельцу.
func (t *CatchTable) Delete(ctx context.Context, id, ownerID string) error {
	path := "/api/catches/" + url.PathEscape(id) + "?owner_id=" + url.QueryEscape(ownerID)
	_, err := t.c.do(ctx, http.MethodDelete, path, nil)
	return err
}
