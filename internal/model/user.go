package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User: учётная запись владельца уловов.
type User struct {
	ID        string    `gorm:"primaryKey;type:varchar(36)"`
	Login     string    `gorm:"uniqueIndex;not null"`
	Password  string    `gorm:"not null"` // bcrypt-хеш
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

// BeforeCreate выдаёт идентификатор, если он не задан.
func (u *User) BeforeCreate(_ *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}
