package model

import "time"

// Setting is one opaque local-store entry (token, cached user, theme).
type Setting struct {
	Key       string    `json:"key" gorm:"primaryKey"`
	Value     string    `json:"value" gorm:"not null"`
	UpdatedAt time.Time `json:"updated_at" gorm:"not null"`
}
