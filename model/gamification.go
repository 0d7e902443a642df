package model

import (
	"encoding/json"
	"time"
)

// GamificationRecord is the single per-install progression row. The whole
// record is rewritten on every mutation; last writer wins.
type GamificationRecord struct {
	ID                string          `json:"id" gorm:"primaryKey"`
	TotalXP           int             `json:"total_xp" gorm:"not null"`
	CurrentLevel      int             `json:"current_level" gorm:"not null"`
	CurrentStreak     int             `json:"current_streak" gorm:"not null"`
	LongestStreak     int             `json:"longest_streak" gorm:"not null"`
	LastActivityDate  string          `json:"last_activity_date"` // YYYY-MM-DD, empty before first activity
	TotalStudyMinutes int             `json:"total_study_minutes" gorm:"not null"`
	CompletedRoadmaps int             `json:"completed_roadmaps" gorm:"not null"`
	Achievements      json.RawMessage `json:"achievements" gorm:"not null"`
	CreatedAt         time.Time       `json:"created_at" gorm:"not null"`
	UpdatedAt         time.Time       `json:"updated_at" gorm:"not null"`
}

// Achievement is one catalog entry with its unlock state, serialized into the
// record's Achievements column. IsUnlocked only ever transitions false->true
// and UnlockedAt is set exactly once.
type Achievement struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Icon        string     `json:"icon"`
	IsUnlocked  bool       `json:"is_unlocked"`
	UnlockedAt  *time.Time `json:"unlocked_at,omitempty"`
}
