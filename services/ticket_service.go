package services

import (
	"errors"

	"github.com/roamly/api-go/apperrors"
	"github.com/roamly/api-go/models"
	"github.com/roamly/api-go/policy"
	"github.com/roamly/api-go/repository"
)

// TicketService owns the support-ticket conversation thread. Messages are
// append-only children of their ticket; only the opener or staff may read,
// reply or transition status.
type TicketService struct {
	Repos *repository.Repos
}

func NewTicketService(repos *repository.Repos) *TicketService {
	return &TicketService{Repos: repos}
}

func (s *TicketService) Create(actor policy.Actor, reason, description string) (models.Ticket, error) {
	if !policy.CanPerform(actor, policy.ActionCreateTicket, 0) {
		return models.Ticket{}, apperrors.Forbidden("not allowed to create tickets")
	}
	if reason == "" || description == "" {
		return models.Ticket{}, apperrors.Validation("reason and description are required")
	}

	ticket := models.Ticket{
		UserID:      actor.UserID,
		Reason:      reason,
		Description: description,
		Status:      models.TicketStatusOpen,
	}
	if err := s.Repos.Tickets.Create(&ticket); err != nil {
		return models.Ticket{}, apperrors.Storage("failed to create ticket", err)
	}
	return s.get(ticket.ID)
}

func (s *TicketService) GetByID(actor policy.Actor, ticketID uint) (models.Ticket, error) {
	ticket, err := s.get(ticketID)
	if err != nil {
		return models.Ticket{}, err
	}
	if !policy.CanPerform(actor, policy.ActionReadTicket, ticket.UserID) {
		return models.Ticket{}, apperrors.Forbidden("not allowed to read this ticket")
	}
	return ticket, nil
}

func (s *TicketService) ListByUser(actor policy.Actor, userID uint) ([]models.Ticket, error) {
	if !policy.CanPerform(actor, policy.ActionReadTicket, userID) {
		return nil, apperrors.Forbidden("not allowed to read these tickets")
	}
	tickets, err := s.Repos.Tickets.ListByUser(userID)
	if err != nil {
		return nil, apperrors.Storage("failed to fetch tickets", err)
	}
	if tickets == nil {
		tickets = []models.Ticket{}
	}
	return tickets, nil
}

func (s *TicketService) ListAll(actor policy.Actor) ([]models.Ticket, error) {
	if !policy.CanPerform(actor, policy.ActionListTickets, 0) {
		return nil, apperrors.Forbidden("moderator or admin role required")
	}
	tickets, err := s.Repos.Tickets.ListAll()
	if err != nil {
		return nil, apperrors.Storage("failed to fetch tickets", err)
	}
	if tickets == nil {
		tickets = []models.Ticket{}
	}
	return tickets, nil
}

// AppendMessage adds a message to the thread. Closed tickets reject new
// messages; a staff reply to an open ticket marks it in_progress.
func (s *TicketService) AppendMessage(actor policy.Actor, ticketID uint, text string) (models.Ticket, error) {
	if text == "" {
		return models.Ticket{}, apperrors.Validation("message cannot be empty")
	}
	ticket, err := s.get(ticketID)
	if err != nil {
		return models.Ticket{}, err
	}
	if !policy.CanPerform(actor, policy.ActionReplyTicket, ticket.UserID) {
		return models.Ticket{}, apperrors.Forbidden("not allowed to reply to this ticket")
	}
	if ticket.Status == models.TicketStatusClosed {
		return models.Ticket{}, apperrors.Validation("ticket is closed")
	}

	message := models.TicketMessage{
		TicketID: ticketID,
		SenderID: actor.UserID,
		Message:  text,
	}
	if err := s.Repos.Tickets.AddMessage(&message); err != nil {
		return models.Ticket{}, apperrors.Storage("failed to send message", err)
	}

	if ticket.Status == models.TicketStatusOpen && actor.IsStaff() && actor.UserID != ticket.UserID {
		ticket.Status = models.TicketStatusInProgress
	}
	if err := s.Repos.Tickets.Save(&ticket); err != nil {
		return models.Ticket{}, apperrors.Storage("failed to update ticket", err)
	}
	return s.get(ticketID)
}

func (s *TicketService) Close(actor policy.Actor, ticketID uint) (models.Ticket, error) {
	return s.setStatus(actor, ticketID, models.TicketStatusClosed)
}

func (s *TicketService) Reopen(actor policy.Actor, ticketID uint) (models.Ticket, error) {
	return s.setStatus(actor, ticketID, models.TicketStatusOpen)
}

func (s *TicketService) setStatus(actor policy.Actor, ticketID uint, status string) (models.Ticket, error) {
	if !policy.CanPerform(actor, policy.ActionCloseTicket, 0) {
		return models.Ticket{}, apperrors.Forbidden("moderator or admin role required")
	}
	ticket, err := s.get(ticketID)
	if err != nil {
		return models.Ticket{}, err
	}

	ticket.Status = status
	if err := s.Repos.Tickets.Save(&ticket); err != nil {
		return models.Ticket{}, apperrors.Storage("failed to update ticket", err)
	}
	return s.get(ticketID)
}

func (s *TicketService) get(ticketID uint) (models.Ticket, error) {
	ticket, err := s.Repos.Tickets.GetByID(ticketID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return models.Ticket{}, apperrors.NotFound("ticket not found")
		}
		return models.Ticket{}, apperrors.Storage("failed to load ticket", err)
	}
	return ticket, nil
}
