package models

import (
	"time"

	"github.com/lib/pq"
)

const (
	TourStatusPending  = "pending"
	TourStatusApproved = "approved"
	TourStatusRejected = "rejected"
)

// Tour is the aggregate root. Comments and ratings belong exclusively to
// their tour and are only ever mutated through the tour services.
type Tour struct {
	ID          uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	Name        string         `gorm:"not null" json:"name"`
	Description string         `gorm:"not null;type:text" json:"description"`
	Images      pq.StringArray `gorm:"type:text[]" json:"images"`
	Videos      pq.StringArray `gorm:"type:text[]" json:"videos"`
	Location    string         `gorm:"not null" json:"location"`
	Latitude    *float64       `gorm:"type:decimal(10,8)" json:"latitude,omitempty"`
	Longitude   *float64       `gorm:"type:decimal(11,8)" json:"longitude,omitempty"`
	CategoryID  uint           `gorm:"not null" json:"category_id"`
	Category    Category       `json:"category" gorm:"foreignKey:CategoryID"`
	PublisherID uint           `gorm:"not null" json:"publisher_id"`
	Publisher   User           `json:"publisher" gorm:"foreignKey:PublisherID"`
	Status      string         `gorm:"not null;default:'pending';type:varchar(20)" json:"status"` // "pending", "approved" or "rejected"
	IsDeleted   bool           `gorm:"not null;default:false" json:"is_deleted"`
	Comments    []Comment      `json:"comments" gorm:"foreignKey:TourID"`
	Ratings     []Rating       `json:"ratings" gorm:"foreignKey:TourID"`
}
