package models

import (
	"time"
)

const (
	RoleUser      = "user"
	RoleModerator = "moderator"
	RoleAdmin     = "admin"
)

type User struct {
	ID         uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
	FirstName  string    `gorm:"not null" json:"first_name"`
	LastName   string    `gorm:"not null" json:"last_name"`
	Email      string    `gorm:"unique;not null" json:"email"`
	Password   string    `gorm:"not null" json:"-"` // Don't expose password in JSON
	Avatar     string    `json:"avatar"`
	Bio        string    `json:"bio"`
	Country    string    `json:"country"`
	Role       string    `gorm:"not null;default:'user';type:varchar(20)" json:"role"` // "user", "moderator" or "admin"
	IsDeleted  bool      `gorm:"default:false" json:"is_deleted"`
	Tours      []Tour    `json:"tours,omitempty" gorm:"foreignKey:PublisherID"`
	SavedTours []Tour    `json:"saved_tours,omitempty" gorm:"many2many:saved_tours"`
}

// PublicUser is the identity shape embedded in tour and ticket responses.
type PublicUser struct {
	ID        uint   `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Avatar    string `json:"avatar"`
}

func (u *User) Public() PublicUser {
	return PublicUser{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Avatar:    u.Avatar,
	}
}
