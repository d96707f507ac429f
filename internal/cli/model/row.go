package model

import "time"

// CatchRow: строка таблицы catches в формате удалённого API (snake_case).
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

// CatchPatchRow: частичная строка для обновления: без id, user_id и created_at.
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

// BoatRampRow: строка таблицы boat_ramps.
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
