package repository

import (
	"github.com/roamly/api-go/models"
	"gorm.io/gorm"
)

type TicketRepo interface {
	Create(ticket *models.Ticket) error
	GetByID(id uint) (models.Ticket, error)
	Save(ticket *models.Ticket) error
	ListByUser(userID uint) ([]models.Ticket, error)
	ListAll() ([]models.Ticket, error)
	AddMessage(message *models.TicketMessage) error
}

type DBTicketRepo struct {
	db *gorm.DB
}

func NewTicketRepo(db *gorm.DB) *DBTicketRepo {
	return &DBTicketRepo{db: db}
}

func (r *DBTicketRepo) preloaded() *gorm.DB {
	return r.db.
		Preload("User").
		Preload("Messages", func(db *gorm.DB) *gorm.DB {
			return db.Order("ticket_messages.created_at ASC")
		}).
		Preload("Messages.Sender")
}

func (r *DBTicketRepo) Create(ticket *models.Ticket) error {
	return r.db.Create(ticket).Error
}

func (r *DBTicketRepo) GetByID(id uint) (models.Ticket, error) {
	var ticket models.Ticket
	err := r.preloaded().First(&ticket, id).Error
	return ticket, translate(err)
}

func (r *DBTicketRepo) Save(ticket *models.Ticket) error {
	return r.db.Omit("User", "Messages").Save(ticket).Error
}

func (r *DBTicketRepo) ListByUser(userID uint) ([]models.Ticket, error) {
	var tickets []models.Ticket
	err := r.preloaded().
		Where("user_id = ?", userID).
		Order("updated_at DESC").
		Find(&tickets).Error
	return tickets, err
}

func (r *DBTicketRepo) ListAll() ([]models.Ticket, error) {
	var tickets []models.Ticket
	err := r.preloaded().Order("updated_at DESC").Find(&tickets).Error
	return tickets, err
}

func (r *DBTicketRepo) AddMessage(message *models.TicketMessage) error {
	if err := r.db.Create(message).Error; err != nil {
		return err
	}
	return r.db.Preload("Sender").First(message, message.ID).Error
}
