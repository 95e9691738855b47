package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	ID            uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"deleted_at"`
	Name          string         `gorm:"not null" json:"name"`
	Email         string         `gorm:"unique;not null" json:"email"`
	Password      *string        `json:"-"` // nil for Google-only accounts
	GoogleID      *string        `gorm:"unique" json:"-"`
	Provider      string         `json:"provider"`
	WeightKg      *float64       `json:"weight_kg"`
	HeightCm      *float64       `json:"height_cm"`
	Sex           *string        `json:"sex"`
	Age           *int           `json:"age"`
	Newsletter    bool           `gorm:"default:false" json:"newsletter"`
	RefreshTokens []RefreshToken `json:"-" gorm:"foreignKey:UserID"`
}
