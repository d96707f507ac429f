package model

import "time"

// BoatRamp: серверная строка таблицы boat_ramps.
type BoatRamp struct {
	ID            string  `gorm:"primaryKey;type:varchar(36)"`
	Name          string  `gorm:"not null"`
	Latitude      float64 `gorm:"not null"`
	Longitude     float64 `gorm:"not null"`
	WaterName     string  `gorm:"not null"`
	Description   *string
	Parking       bool      `gorm:"not null;default:false"`
	Fee           bool      `gorm:"not null;default:false"`
	AddedByUserID string    `gorm:"not null;index"`
	Verified      bool      `gorm:"not null;default:false"` // выставляется модерацией вне этого сервиса
	CreatedAt     time.Time `gorm:"not null;index"`
}
