package model

import "time"

// Photo: загруженное изображение улова. Path имеет вид "<owner>/<unix-ms>.<ext>".
type Photo struct {
	Path        string `gorm:"primaryKey"`
	UserID      string `gorm:"not null;index"`
	ContentType string `gorm:"not null"`
	Data        []byte `gorm:"not null"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
}
