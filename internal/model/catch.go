package model

import "time"

// Catch: серверная строка таблицы catches.
type Catch struct {
	ID     string `gorm:"primaryKey;type:varchar(36)"`
	UserID string `gorm:"not null;index:idx_catches_owner_caught,priority:1"` // ссылка на users.id

	Species     string   `gorm:"not null"`
	LengthCm    *float64 `gorm:"column:length_cm"`
	WeightGrams *float64 `gorm:"column:weight_grams"`

	CaughtAt  time.Time `gorm:"not null;index:idx_catches_owner_caught,priority:2"`
	Latitude  *float64
	Longitude *float64
	PhotoURL  *string `gorm:"column:photo_url"`

	WeatherTemp       *float64
	WeatherWind       *float64
	WeatherConditions *string
	WeatherPressure   *float64

	WaterName *string
	Notes     *string
	IsPublic  bool `gorm:"not null;index"`

	// CreatedAt задаётся клиентом и не меняется при обновлении.
	CreatedAt time.Time `gorm:"not null"`
}

// CatchPatch: изменяемые поля улова, приходящие в PATCH.
type CatchPatch struct {
	Species           string
	LengthCm          *float64
	WeightGrams       *float64
	CaughtAt          time.Time
	Latitude          *float64
	Longitude         *float64
	PhotoURL          *string
	WeatherTemp       *float64
	WeatherWind       *float64
	WeatherConditions *string
	WeatherPressure   *float64
	WaterName         *string
	Notes             *string
	IsPublic          bool
}

// Columns возвращает карту столбцов для UPDATE. Nil-значения тоже попадают в карту,
// чтобы обновление заменяло все изменяемые поля.
func (p CatchPatch) Columns() map[string]any {
	return map[string]any{
		"species":            p.Species,
		"length_cm":          p.LengthCm,
		"weight_grams":       p.WeightGrams,
		"caught_at":          p.CaughtAt,
		"latitude":           p.Latitude,
		"longitude":          p.Longitude,
		"photo_url":          p.PhotoURL,
		"weather_temp":       p.WeatherTemp,
		"weather_wind":       p.WeatherWind,
		"weather_conditions": p.WeatherConditions,
		"weather_pressure":   p.WeatherPressure,
		"water_name":         p.WaterName,
		"notes":              p.Notes,
		"is_public":          p.IsPublic,
	}
}
