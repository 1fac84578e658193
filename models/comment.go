package models

import (
	"time"
)

type Comment struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	TourID    uint      `gorm:"not null;index" json:"tour_id"`
	UserID    uint      `gorm:"not null" json:"user_id"`
	User      User      `json:"user" gorm:"foreignKey:UserID"`
	Content   string    `gorm:"not null;type:text" json:"content"`
}
