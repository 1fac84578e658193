package repository

import (
	"errors"

	"gorm.io/gorm"
)

// ErrNotFound keeps storage-level 404s consistent between the gorm
// implementations and the in-memory fakes used in tests.
var ErrNotFound = errors.New("record not found")

type Repos struct {
	Tours      TourRepo
	Categories CategoryRepo
	Tickets    TicketRepo
	Audit      AuditRepo
	Users      UserRepo
}

func NewRepos(db *gorm.DB) *Repos {
	return &Repos{
		Tours:      NewTourRepo(db),
		Categories: NewCategoryRepo(db),
		Tickets:    NewTicketRepo(db),
		Audit:      NewAuditRepo(db),
		Users:      NewUserRepo(db),
	}
}

func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
