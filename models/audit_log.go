package models

import (
	"time"
)

// Audit action tags written by the moderation and admin flows.
const (
	AuditApproveTour    = "approve_tour"
	AuditRejectTour     = "reject_tour"
	AuditDeleteTour     = "delete_tour"
	AuditRestoreTour    = "restore_tour"
	AuditDeleteUser     = "delete_user"
	AuditUpdateUserRole = "update_user_role"
)

// AuditLogEntry is append-only; entries are never updated or removed.
type AuditLogEntry struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UserID    uint      `gorm:"not null" json:"user_id"`
	User      User      `json:"user" gorm:"foreignKey:UserID"`
	Action    string    `gorm:"not null;type:varchar(50)" json:"action"`
	Details   string    `gorm:"type:text" json:"details"`
}
