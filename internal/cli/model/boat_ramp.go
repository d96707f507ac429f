package model

import "time"

// BoatRamp: спуск для лодок. Записи только добавляются.
type BoatRamp struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Latitude      float64   `json:"latitude"`
	Longitude     float64   `json:"longitude"`
	WaterName     string    `json:"waterName"`
	Description   *string   `json:"description"`
	Parking       bool      `json:"parking"`
	Fee           bool      `json:"fee"`
	AddedByUserID string    `json:"addedByUserId"`
	Verified      bool      `json:"verified"`
	CreatedAt     time.Time `json:"createdAt"`
}

// BoatRampForm: данные формы добавления спуска.
type BoatRampForm struct {
	Name        string
	Latitude    float64
	Longitude   float64
	WaterName   string
	Description string
	Parking     bool
	Fee         bool
}
