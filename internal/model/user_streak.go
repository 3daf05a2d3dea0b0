package model

import (
	"time"
)

// UserStreak tracks the consecutive-day count of correctly solved daily
// questions. LastStreakDate is a UTC date string (YYYY-MM-DD). Version backs
// the optimistic-concurrency write in the streak ledger; the row is only ever
// advanced or held, never deleted.
type UserStreak struct {
	UserID         string    `gorm:"primarykey" json:"user_id"`
	StreakCount    int       `json:"streak_count"`
	LastStreakDate string    `json:"last_streak_date"`
	Version        int64     `json:"-" gorm:"not null;default:0"`
	UpdatedAt      time.Time `json:"updated_at"`
}
