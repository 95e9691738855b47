package models

import "time"

// Blob is a JSON document keyed by name. Profile state that the web client
// kept in localStorage (gamification profile, image history, weekly
// challenge, custom activities) lives here, one row per key.
type Blob struct {
	Key       string    `gorm:"primaryKey" json:"key"`
	Value     []byte    `gorm:"type:jsonb" json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}
