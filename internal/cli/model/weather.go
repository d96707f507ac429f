package model

// WeatherSnapshot: погода на момент сохранения улова. Репозиторий хранит её как есть.
type WeatherSnapshot struct {
	Temp       float64
	Wind       float64
	Conditions string
	Pressure   float64
}
