package api

import (
	"bytes"
	"encoding/json"
	"time"
)

type columnKind int

const (
	kindString columnKind = iota
	kindNumber
	kindBool
	kindTime
)

type column struct {
	name     string
	kind     columnKind
	nullable bool
}

var catchColumns = []column{
	{"id", kindString, false},
	{"user_id", kindString, false},
	{"species", kindString, false},
	{"length_cm", kindNumber, true},
	{"weight_grams", kindNumber, true},
	{"caught_at", kindTime, false},
	{"latitude", kindNumber, true},
	{"longitude", kindNumber, true},
	{"photo_url", kindString, true},
	{"weather_temp", kindNumber, true},
	{"weather_wind", kindNumber, true},
	{"weather_conditions", kindString, true},
	{"weather_pressure", kindNumber, true},
	{"water_name", kindString, true},
	{"notes", kindString, true},
	{"is_public", kindBool, false},
	{"created_at", kindTime, false},
}

var boatRampColumns = []column{
	{"id", kindString, false},
	{"name", kindString, false},
	{"latitude", kindNumber, false},
	{"longitude", kindNumber, false},
	{"water_name", kindString, false},
	{"description", kindString, true},
	{"parking", kindBool, false},
	{"fee", kindBool, false},
	{"added_by_user_id", kindString, false},
	{"verified", kindBool, false},
	{"created_at", kindTime, false},
}

var null = []byte("null")

// decodeRow проверяет строку по схеме и декодирует её в out.
// Отсутствующий nullable-столбец трактуется как null.
func decodeRow(table string, index int, raw json.RawMessage, cols []column, out any) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil || fields == nil {
		return &SchemaError{Table: table, Index: index, Reason: "row is not a JSON object"}
	}
	for _, c := range cols {
		v, ok := fields[c.name]
		if !ok || bytes.Equal(bytes.TrimSpace(v), null) {
			if c.nullable {
				continue
			}
			return &SchemaError{Table: table, Index: index, Column: c.name, Reason: "required column is missing or null"}
		}
		if reason := checkKind(v, c.kind); reason != "" {
			return &SchemaError{Table: table, Index: index, Column: c.name, Reason: reason}
		}
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return &SchemaError{Table: table, Index: index, Reason: err.Error()}
	}
	return nil
}

func checkKind(v json.RawMessage, kind columnKind) string {
	switch kind {
	case kindString:
		var s string
		if json.Unmarshal(v, &s) != nil {
			return "expected string"
		}
	case kindNumber:
		var f float64
		if json.Unmarshal(v, &f) != nil {
			return "expected number"
		}
	case kindBool:
		var b bool
		if json.Unmarshal(v, &b) != nil {
			return "expected boolean"
		}
	case kindTime:
		var s string
		if json.Unmarshal(v, &s) != nil {
			return "expected timestamp string"
		}
		if _, err := time.Parse(time.RFC3339Nano, s); err != nil {
			return "expected RFC 3339 timestamp"
		}
	}
	return ""
}

// decodeRows проверяет JSON-массив строк.
func decodeRows[T any](table string, body []byte, cols []column) ([]T, error) {
	var raws []json.RawMessage
	if err := json.Unmarshal(body, &raws); err != nil {
		return nil, &SchemaError{Table: table, Index: -1, Reason: "response is not a JSON array"}
	}
	out := make([]T, 0, len(raws))
	for i, raw := range raws {
		var row T
		if err := decodeRow(table, i, raw, cols, &row); err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	return out, nil
}
