package view

import (
	"FishLog/internal/cli/model"
	"strings"
	"testing"
	"time"
)

func f(v float64) *float64 { return &v }
func s(v string) *string   { return &v }

func TestFromCatch_FullLine(t *testing.T) {
	c := model.Catch{
		ID:                "c1",
		Species:           "gadda",
		LengthCm:          f(62),
		WeightGrams:       f(3200),
		CaughtAt:          time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
		WaterName:         s("Vänern"),
		WeatherConditions: s("Klart"),
		WeatherTemp:       f(14.2),
		IsPublic:          true,
	}
	v := FromCatch(c, func(id string) (string, bool) {
		if id == "gadda" {
			return "Gädda", true
		}
		return "", false
	})
	if v.Species != "Gädda" {
		t.Fatalf("species name expected, got %q", v.Species)
	}
	if v.Size != "62 cm, 3200 g" {
		t.Fatalf("size: %q", v.Size)
	}
	line := v.Line()
	for _, want := range []string{"c1", "2024-05-01 10:00", "Vänern", "Klart, 14°C", "(public)"} {
		if !strings.Contains(line, want) {
			t.Fatalf("line %q must contain %q", line, want)
		}
	}
}

func TestFromCatch_MinimalPrivate(t *testing.T) {
	v := FromCatch(model.Catch{ID: "x", Species: "okand"}, nil)
	if v.Species != "okand" || v.Visibility != "private" || v.HasPhoto {
		t.Fatalf("unexpected view: %+v", v)
	}
	if v.Size != "" || v.Place != "" || v.Weather != "" {
		t.Fatalf("optional parts must be empty: %+v", v)
	}
}
