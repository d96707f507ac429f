package view

import (
	"FishLog/internal/cli/model"
	"fmt"
	"strings"
)

// CatchView: DTO для отображения улова в CLI.
type CatchView struct {
	ID         string
	Species    string // отображаемое имя вида (шведское), либо id
	Size       string // "62 cm, 3200 g"
	CaughtAt   string
	Place      string // водоём и/или координаты
	Weather    string
	Visibility string
	HasPhoto   bool
	Notes      string
}

// SpeciesNamer возвращает отображаемое имя вида по id.
type SpeciesNamer func(id string) (string, bool)

// FromCatch собирает представление улова. namer может быть nil.
func FromCatch(c model.Catch, namer SpeciesNamer) CatchView {
	v := CatchView{
		ID:         c.ID,
		Species:    c.Species,
		CaughtAt:   c.CaughtAt.Format("2006-01-02 15:04"),
		HasPhoto:   c.PhotoURL != nil,
		Visibility: "private",
	}
	if namer != nil {
		if name, ok := namer(c.Species); ok {
			v.Species = name
		}
	}
	if c.IsPublic {
		v.Visibility = "public"
	}

	var size []string
	if c.LengthCm != nil {
		size = append(size, fmt.Sprintf("%g cm", *c.LengthCm))
	}
	if c.WeightGrams != nil {
		size = append(size, fmt.Sprintf("%g g", *c.WeightGrams))
	}
	v.Size = strings.Join(size, ", ")

	var place []string
	if c.WaterName != nil && *c.WaterName != "" {
		place = append(place, *c.WaterName)
	}
	if c.HasLocation() {
		place = append(place, fmt.Sprintf("(%.5f, %.5f)", *c.Latitude, *c.Longitude))
	}
	v.Place = strings.Join(place, " ")

	var w []string
	if c.WeatherConditions != nil && *c.WeatherConditions != "" {
		w = append(w, *c.WeatherConditions)
	}
	if c.WeatherTemp != nil {
		w = append(w, fmt.Sprintf("%.0f°C", *c.WeatherTemp))
	}
	if c.WeatherWind != nil {
		w = append(w, fmt.Sprintf("%.0f m/s", *c.WeatherWind))
	}
	if c.WeatherPressure != nil {
		w = append(w, fmt.Sprintf("%.0f hPa", *c.WeatherPressure))
	}
	v.Weather = strings.Join(w, ", ")

	if c.Notes != nil {
		v.Notes = *c.Notes
	}
	return v
}

// Line: однострочное представление для списков.
func (v CatchView) Line() string {
	parts := []string{v.CaughtAt, v.Species}
	if v.Size != "" {
		parts = append(parts, v.Size)
	}
	if v.Place != "" {
		parts = append(parts, v.Place)
	}
	if v.Weather != "" {
		parts = append(parts, "["+v.Weather+"]")
	}
	if v.HasPhoto {
		parts = append(parts, "photo")
	}
	return fmt.Sprintf("%s  %s  (%s)", v.ID, strings.Join(parts, "  "), v.Visibility)
}
