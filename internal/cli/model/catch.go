package model

import "time"

// LocalOwner: владелец записей, созданных без учётной записи.
const LocalOwner = "local"

// Catch: улов в памяти клиента и в локальном хранилище.
type Catch struct {
	ID          string    `json:"id"`
	OwnerID     string    `json:"ownerId"`
	Species     string    `json:"species"`
	LengthCm    *float64  `json:"lengthCm"`
	WeightGrams *float64  `json:"weightGrams"`
	CaughtAt    time.Time `json:"caughtAt"`
	Latitude    *float64  `json:"latitude"`
	Longitude   *float64  `json:"longitude"`
	PhotoURL    *string   `json:"photoUrl"`

	WeatherTemp       *float64 `json:"weatherTemp"`
	WeatherWind       *float64 `json:"weatherWind"`
	WeatherConditions *string  `json:"weatherConditions"`
	WeatherPressure   *float64 `json:"weatherPressure"`

	WaterName *string `json:"waterName"`
	Notes     *string `json:"notes"`
	IsPublic  bool    `json:"isPublic"`

	// CreatedAt: время клиента при создании, не меняется при обновлении.
	CreatedAt time.Time `json:"createdAt"`
}

// HasLocation сообщает, заданы ли обе координаты.
func (c Catch) HasLocation() bool {
	return c.Latitude != nil && c.Longitude != nil
}

// CatchForm: данные формы добавления/редактирования улова.
// Обязательные поля (Species, CaughtAt) проверяются до вызова репозитория.
type CatchForm struct {
	Species     string
	LengthCm    *float64
	WeightGrams *float64
	CaughtAt    time.Time
	Latitude    *float64
	Longitude   *float64
	WaterName   string
	Notes       string
	IsPublic    bool

	// Photo: путь к локальному файлу изображения или nil.
	Photo *Photo
}

// Photo: локальный файл фотографии для загрузки.
type Photo struct {
	FileName    string
	ContentType string
	Data        []byte
}
