package models

import (
	"time"

	"gorm.io/gorm"
)

type RefreshToken struct {
	gorm.Model
	UserID         uint      `json:"userId" gorm:"not null;index"`
	User           User      `json:"-" gorm:"foreignKey:UserID"`
	Token          string    `json:"token" gorm:"not null"`
	ExpirationDate time.Time `json:"expiry" gorm:"not null"`
}
