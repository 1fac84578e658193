package repository

import (
	"github.com/roamly/api-go/models"
	"gorm.io/gorm"
)

type AuditRepo interface {
	Create(entry *models.AuditLogEntry) error
	List() ([]models.AuditLogEntry, error)
}

type DBAuditRepo struct {
	db *gorm.DB
}

func NewAuditRepo(db *gorm.DB) *DBAuditRepo {
	return &DBAuditRepo{db: db}
}

func (r *DBAuditRepo) Create(entry *models.AuditLogEntry) error {
	return r.db.Create(entry).Error
}

func (r *DBAuditRepo) List() ([]models.AuditLogEntry, error) {
	var entries []models.AuditLogEntry
	err := r.db.Preload("User").Order("created_at DESC").Find(&entries).Error
	return entries, err
}
