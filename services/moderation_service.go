package services

import (
	"errors"
	"fmt"
	"log"

	"github.com/roamly/api-go/apperrors"
	"github.com/roamly/api-go/models"
	"github.com/roamly/api-go/policy"
	"github.com/roamly/api-go/repository"
)

// ModerationService drives the tour lifecycle (pending -> approved/rejected,
// soft delete / restore) and the admin-side user operations. Every action
// appends an audit entry. The audit write is best-effort: a failure there is
// logged but does not roll back the transition, matching the accepted
// durability gap of the original system.
type ModerationService struct {
	Repos  *repository.Repos
	Logger *log.Logger
}

func NewModerationService(repos *repository.Repos, logger *log.Logger) *ModerationService {
	return &ModerationService{Repos: repos, Logger: logger}
}

func (s *ModerationService) Approve(actor policy.Actor, tourID uint) (models.Tour, error) {
	return s.transition(actor, tourID, policy.ActionApproveTour, models.TourStatusApproved)
}

func (s *ModerationService) Reject(actor policy.Actor, tourID uint) (models.Tour, error) {
	return s.transition(actor, tourID, policy.ActionRejectTour, models.TourStatusRejected)
}

func (s *ModerationService) transition(actor policy.Actor, tourID uint, action policy.Action, status string) (models.Tour, error) {
	if !policy.CanPerform(actor, action, 0) {
		return models.Tour{}, apperrors.Forbidden("moderator or admin role required")
	}
	tour, err := s.getTour(tourID)
	if err != nil {
		return models.Tour{}, err
	}

	tour.Status = status
	if err := s.Repos.Tours.Save(&tour); err != nil {
		return models.Tour{}, apperrors.Storage("failed to update tour status", err)
	}

	tag := models.AuditApproveTour
	if status == models.TourStatusRejected {
		tag = models.AuditRejectTour
	}
	s.audit(actor, tag, fmt.Sprintf("Tour %s: %s by %s %s",
		status, tour.Name, tour.Publisher.FirstName, tour.Publisher.LastName))
	return tour, nil
}

// SoftDelete hides the tour without destroying it; Restore brings it back.
// Both are admin-only, stricter than approve/reject.
func (s *ModerationService) SoftDelete(actor policy.Actor, tourID uint) (models.Tour, error) {
	return s.setDeleted(actor, tourID, true)
}

func (s *ModerationService) Restore(actor policy.Actor, tourID uint) (models.Tour, error) {
	return s.setDeleted(actor, tourID, false)
}

func (s *ModerationService) setDeleted(actor policy.Actor, tourID uint, deleted bool) (models.Tour, error) {
	action := policy.ActionDeleteTour
	if !deleted {
		action = policy.ActionRestoreTour
	}
	if !policy.CanPerform(actor, action, 0) {
		return models.Tour{}, apperrors.Forbidden("admin role required")
	}
	tour, err := s.getTour(tourID)
	if err != nil {
		return models.Tour{}, err
	}

	tour.IsDeleted = deleted
	if err := s.Repos.Tours.Save(&tour); err != nil {
		return models.Tour{}, apperrors.Storage("failed to update tour", err)
	}

	if deleted {
		s.audit(actor, models.AuditDeleteTour, fmt.Sprintf("Tour deleted: %s", tour.Name))
	} else {
		s.audit(actor, models.AuditRestoreTour, fmt.Sprintf("Tour restored: %s", tour.Name))
	}
	return tour, nil
}

// ListForStaff returns every non-deleted tour regardless of status so the
// moderation queue can show pending and rejected submissions. Admins also see
// deleted tours for the restore workflow.
func (s *ModerationService) ListForStaff(actor policy.Actor) ([]models.Tour, error) {
	if !policy.CanPerform(actor, policy.ActionListAllTours, 0) {
		return nil, apperrors.Forbidden("moderator or admin role required")
	}
	var (
		tours []models.Tour
		err   error
	)
	if actor.IsAdmin() {
		tours, err = s.Repos.Tours.ListAll()
	} else {
		tours, err = s.Repos.Tours.ListNotDeleted()
	}
	if err != nil {
		return nil, apperrors.Storage("failed to fetch tours", err)
	}
	if tours == nil {
		tours = []models.Tour{}
	}
	return tours, nil
}

func (s *ModerationService) ListAuditLogs(actor policy.Actor) ([]models.AuditLogEntry, error) {
	if !policy.CanPerform(actor, policy.ActionReadAuditLog, 0) {
		return nil, apperrors.Forbidden("admin role required")
	}
	entries, err := s.Repos.Audit.List()
	if err != nil {
		return nil, apperrors.Storage("failed to fetch audit log", err)
	}
	if entries == nil {
		entries = []models.AuditLogEntry{}
	}
	return entries, nil
}

func (s *ModerationService) ListUsers(actor policy.Actor) ([]models.User, error) {
	if !policy.CanPerform(actor, policy.ActionManageUsers, 0) {
		return nil, apperrors.Forbidden("admin role required")
	}
	users, err := s.Repos.Users.List()
	if err != nil {
		return nil, apperrors.Storage("failed to fetch users", err)
	}
	if users == nil {
		users = []models.User{}
	}
	return users, nil
}

func (s *ModerationService) SoftDeleteUser(actor policy.Actor, userID uint) (models.User, error) {
	if !policy.CanPerform(actor, policy.ActionManageUsers, 0) {
		return models.User{}, apperrors.Forbidden("admin role required")
	}
	user, err := s.getUser(userID)
	if err != nil {
		return models.User{}, err
	}

	user.IsDeleted = true
	if err := s.Repos.Users.Save(&user); err != nil {
		return models.User{}, apperrors.Storage("failed to update user", err)
	}
	s.audit(actor, models.AuditDeleteUser, fmt.Sprintf("User deleted: %s", user.Email))
	return user, nil
}

func (s *ModerationService) UpdateUserRole(actor policy.Actor, userID uint, role string) (models.User, error) {
	if !policy.CanPerform(actor, policy.ActionManageUsers, 0) {
		return models.User{}, apperrors.Forbidden("admin role required")
	}
	if role != models.RoleUser && role != models.RoleModerator && role != models.RoleAdmin {
		return models.User{}, apperrors.Validation("unknown role")
	}
	user, err := s.getUser(userID)
	if err != nil {
		return models.User{}, err
	}

	user.Role = role
	if err := s.Repos.Users.Save(&user); err != nil {
		return models.User{}, apperrors.Storage("failed to update user", err)
	}
	s.audit(actor, models.AuditUpdateUserRole, fmt.Sprintf("User role updated: %s to role %s", user.Email, role))
	return user, nil
}

func (s *ModerationService) audit(actor policy.Actor, action, details string) {
	entry := models.AuditLogEntry{
		UserID:  actor.UserID,
		Action:  action,
		Details: details,
	}
	if err := s.Repos.Audit.Create(&entry); err != nil && s.Logger != nil {
		s.Logger.Printf("audit log write failed (action=%s): %v", action, err)
	}
}

func (s *ModerationService) getTour(tourID uint) (models.Tour, error) {
	tour, err := s.Repos.Tours.GetByID(tourID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return models.Tour{}, apperrors.NotFound("tour not found")
		}
		return models.Tour{}, apperrors.Storage("failed to load tour", err)
	}
	return tour, nil
}

func (s *ModerationService) getUser(userID uint) (models.User, error) {
	user, err := s.Repos.Users.GetByID(userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return models.User{}, apperrors.NotFound("user not found")
		}
		return models.User{}, apperrors.Storage("failed to load user", err)
	}
	return user, nil
}
