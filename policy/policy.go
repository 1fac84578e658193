package policy

import (
	"github.com/roamly/api-go/models"
)

// Action names every permission-gated operation in the engine. Role checks
// live here and nowhere else; services ask CanPerform instead of comparing
// role strings inline.
type Action string

const (
	ActionCreateTour   Action = "tour.create"
	ActionUpdateTour   Action = "tour.update"
	ActionApproveTour  Action = "tour.approve"
	ActionRejectTour   Action = "tour.reject"
	ActionDeleteTour   Action = "tour.delete"
	ActionRestoreTour  Action = "tour.restore"
	ActionListAllTours Action = "tour.list_all"

	ActionEditChild Action = "tour.edit_child" // comments and ratings

	ActionCreateCategory Action = "category.create"
	ActionDeleteCategory Action = "category.delete"

	ActionCreateTicket Action = "ticket.create"
	ActionReadTicket   Action = "ticket.read"
	ActionReplyTicket  Action = "ticket.reply"
	ActionCloseTicket  Action = "ticket.close"
	ActionListTickets  Action = "ticket.list_all"

	ActionReadAuditLog Action = "audit.read"
	ActionManageUsers  Action = "user.manage"
)

// Actor is the authenticated identity resolved by the auth middleware.
type Actor struct {
	UserID uint
	Role   string
}

func (a Actor) IsStaff() bool {
	return a.Role == models.RoleModerator || a.Role == models.RoleAdmin
}

func (a Actor) IsAdmin() bool {
	return a.Role == models.RoleAdmin
}

// CanPerform reports whether actor may run action against a resource owned
// by resourceOwner (zero when ownership is irrelevant). Staff short-circuits
// ownership for the moderation and ticket oversight actions only; soft
// delete/restore and user management stay admin-only.
func CanPerform(actor Actor, action Action, resourceOwner uint) bool {
	if actor.UserID == 0 {
		return false
	}

	switch action {
	case ActionCreateTour, ActionCreateTicket:
		return true

	case ActionUpdateTour, ActionEditChild:
		return actor.UserID == resourceOwner

	case ActionApproveTour, ActionRejectTour, ActionListAllTours:
		return actor.IsStaff()

	case ActionDeleteTour, ActionRestoreTour:
		return actor.IsAdmin()

	case ActionCreateCategory, ActionDeleteCategory:
		return actor.IsAdmin()

	case ActionReadTicket, ActionReplyTicket:
		return actor.UserID == resourceOwner || actor.IsStaff()

	case ActionCloseTicket, ActionListTickets:
		return actor.IsStaff()

	case ActionReadAuditLog, ActionManageUsers:
		return actor.IsAdmin()
	}

	return false
}
