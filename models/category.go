package models

import (
	"time"
)

type Category struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Name      string    `gorm:"unique;not null" json:"name"`
	Image     string    `json:"image"`
}
