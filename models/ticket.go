package models

import (
	"time"
)

const (
	TicketStatusOpen       = "open"
	TicketStatusInProgress = "in_progress"
	TicketStatusClosed     = "closed"
)

// Ticket is a support conversation owned by its opener. Messages are
// append-only and never addressable outside their ticket.
type Ticket struct {
	ID          uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
	UserID      uint            `gorm:"not null;index" json:"user_id"`
	User        User            `json:"user" gorm:"foreignKey:UserID"`
	Reason      string          `gorm:"not null" json:"reason"`
	Description string          `gorm:"not null;type:text" json:"description"`
	Status      string          `gorm:"not null;default:'open';type:varchar(20)" json:"status"` // "open", "in_progress" or "closed"
	Messages    []TicketMessage `json:"messages" gorm:"foreignKey:TicketID"`
}

type TicketMessage struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	TicketID  uint      `gorm:"not null;index" json:"ticket_id"`
	SenderID  uint      `gorm:"not null" json:"sender_id"`
	Sender    User      `json:"sender" gorm:"foreignKey:SenderID"`
	Message   string    `gorm:"not null;type:text" json:"message"`
}
