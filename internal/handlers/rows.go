package handlers

import (
	"FishLog/internal/model"
	"time"
)

// CatchRow: JSON-представление строки catches.
type CatchRow struct {
	ID                string    `json:"id"`
	UserID            string    `json:"user_id"`
	Species           string    `json:"species"`
	LengthCm          *float64  `json:"length_cm"`
	WeightGrams       *float64  `json:"weight_grams"`
	CaughtAt          time.Time `json:"caught_at"`
	Latitude          *float64  `json:"latitude"`
	Longitude         *float64  `json:"longitude"`
	PhotoURL          *string   `json:"photo_url"`
	WeatherTemp       *float64  `json:"weather_temp"`
	WeatherWind       *float64  `json:"weather_wind"`
	WeatherConditions *string   `json:"weather_conditions"`
	WeatherPressure   *float64  `json:"weather_pressure"`
	WaterName         *string   `json:"water_name"`
	Notes             *string   `json:"notes"`
	IsPublic          bool      `json:"is_public"`
	CreatedAt         time.Time `json:"created_at"`
}

// CatchPatchRow: тело PATCH: только изменяемые столбцы.
type CatchPatchRow struct {
	Species           string    `json:"species"`
	LengthCm          *float64  `json:"length_cm"`
	WeightGrams       *float64  `json:"weight_grams"`
	CaughtAt          time.Time `json:"caught_at"`
	Latitude          *float64  `json:"latitude"`
	Longitude         *float64  `json:"longitude"`
	PhotoURL          *string   `json:"photo_url"`
	WeatherTemp       *float64  `json:"weather_temp"`
	WeatherWind       *float64  `json:"weather_wind"`
	WeatherConditions *string   `json:"weather_conditions"`
	WeatherPressure   *float64  `json:"weather_pressure"`
	WaterName         *string   `json:"water_name"`
	Notes             *string   `json:"notes"`
	IsPublic          bool      `json:"is_public"`
}

// BoatRampRow: JSON-представление строки boat_ramps.
type BoatRampRow struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Latitude      float64   `json:"latitude"`
	Longitude     float64   `json:"longitude"`
	WaterName     string    `json:"water_name"`
	Description   *string   `json:"description"`
	Parking       bool      `json:"parking"`
	Fee           bool      `json:"fee"`
	AddedByUserID string    `json:"added_by_user_id"`
	Verified      bool      `json:"verified"`
	CreatedAt     time.Time `json:"created_at"`
}

func catchRowFromModel(c *model.Catch) CatchRow {
	return CatchRow{
		ID:                c.ID,
		UserID:            c.UserID,
		Species:           c.Species,
		LengthCm:          c.LengthCm,
		WeightGrams:       c.WeightGrams,
		CaughtAt:          c.CaughtAt.UTC(),
		Latitude:          c.Latitude,
		Longitude:         c.Longitude,
		PhotoURL:          c.PhotoURL,
		WeatherTemp:       c.WeatherTemp,
		WeatherWind:       c.WeatherWind,
		WeatherConditions: c.WeatherConditions,
		WeatherPressure:   c.WeatherPressure,
		WaterName:         c.WaterName,
		Notes:             c.Notes,
		IsPublic:          c.IsPublic,
		CreatedAt:         c.CreatedAt.UTC(),
	}
}

func (r CatchRow) toModel() *model.Catch {
	return &model.Catch{
		ID:                r.ID,
		UserID:            r.UserID,
		Species:           r.Species,
		LengthCm:          r.LengthCm,
		WeightGrams:       r.WeightGrams,
		CaughtAt:          r.CaughtAt,
		Latitude:          r.Latitude,
		Longitude:         r.Longitude,
		PhotoURL:          r.PhotoURL,
		WeatherTemp:       r.WeatherTemp,
		WeatherWind:       r.WeatherWind,
		WeatherConditions: r.WeatherConditions,
		WeatherPressure:   r.WeatherPressure,
		WaterName:         r.WaterName,
		Notes:             r.Notes,
		IsPublic:          r.IsPublic,
		CreatedAt:         r.CreatedAt,
	}
}

func (p CatchPatchRow) toModel() model.CatchPatch {
	return model.CatchPatch{
		Species:           p.Species,
		LengthCm:          p.LengthCm,
		WeightGrams:       p.WeightGrams,
		CaughtAt:          p.CaughtAt,
		Latitude:          p.Latitude,
		Longitude:         p.Longitude,
		PhotoURL:          p.PhotoURL,
		WeatherTemp:       p.WeatherTemp,
		WeatherWind:       p.WeatherWind,
		WeatherConditions: p.WeatherConditions,
		WeatherPressure:   p.WeatherPressure,
		WaterName:         p.WaterName,
		Notes:             p.Notes,
		IsPublic:          p.IsPublic,
	}
}

func boatRampRowFromModel(b *model.BoatRamp) BoatRampRow {
	return BoatRampRow{
		ID:            b.ID,
		Name:          b.Name,
		Latitude:      b.Latitude,
		Longitude:     b.Longitude,
		WaterName:     b.WaterName,
		Description:   b.Description,
		Parking:       b.Parking,
		Fee:           b.Fee,
		AddedByUserID: b.AddedByUserID,
		Verified:      b.Verified,
		CreatedAt:     b.CreatedAt.UTC(),
	}
}

func (r BoatRampRow) toModel() *model.BoatRamp {
	return &model.BoatRamp{
		ID:            r.ID,
		Name:          r.Name,
		Latitude:      r.Latitude,
		Longitude:     r.Longitude,
		WaterName:     r.WaterName,
		Description:   r.Description,
		Parking:       r.Parking,
		Fee:           r.Fee,
		AddedByUserID: r.AddedByUserID,
		Verified:      r.Verified,
		CreatedAt:     r.CreatedAt,
	}
}
