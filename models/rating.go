package models

import (
	"time"
)

// Rating holds one star score per (tour, author). The unique index backs the
// upsert semantics: rating the same tour again overwrites the score.
type Rating struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	TourID    uint      `gorm:"not null;index;uniqueIndex:idx_tour_rater" json:"tour_id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_tour_rater" json:"user_id"`
	User      User      `json:"user" gorm:"foreignKey:UserID"`
	Score     int       `gorm:"not null" json:"score"` // 1 to 5
}
