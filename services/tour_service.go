package services

import (
	"errors"

	"github.com/roamly/api-go/apperrors"
	"github.com/roamly/api-go/models"
	"github.com/roamly/api-go/policy"
	"github.com/roamly/api-go/repository"
)

// TourService owns the tour aggregate: the tour record itself plus its
// embedded comments and ratings. Children are only reachable through these
// methods so the author-match invariant has a single enforcement point.
type TourService struct {
	Repos *repository.Repos
}

func NewTourService(repos *repository.Repos) *TourService {
	return &TourService{Repos: repos}
}

type CreateTourInput struct {
	Name        string
	Description string
	Images      []string
	Videos      []string
	Location    string
	Latitude    *float64
	Longitude   *float64
	CategoryID  uint
}

// UpdateTourCommand whitelists the mutable tour fields. Nil means "leave
// unchanged"; status and ownership are never client-settable.
type UpdateTourCommand struct {
	Name        *string
	Description *string
	Images      []string
	Videos      []string
	Location    *string
	Latitude    *float64
	Longitude   *float64
	CategoryID  *uint
}

func (s *TourService) Create(actor policy.Actor, input CreateTourInput) (models.Tour, error) {
	if !policy.CanPerform(actor, policy.ActionCreateTour, 0) {
		return models.Tour{}, apperrors.Forbidden("not allowed to create tours")
	}
	if input.Name == "" || input.Description == "" || input.Location == "" || input.CategoryID == 0 {
		return models.Tour{}, apperrors.Validation("all required fields must be filled")
	}
	if _, err := s.Repos.Categories.GetByID(input.CategoryID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return models.Tour{}, apperrors.NotFound("category not found")
		}
		return models.Tour{}, apperrors.Storage("failed to load category", err)
	}

	tour := models.Tour{
		Name:        input.Name,
		Description: input.Description,
		Images:      input.Images,
		Videos:      input.Videos,
		Location:    input.Location,
		Latitude:    input.Latitude,
		Longitude:   input.Longitude,
		CategoryID:  input.CategoryID,
		PublisherID: actor.UserID,
		Status:      models.TourStatusPending,
		IsDeleted:   false,
	}
	if err := s.Repos.Tours.Create(&tour); err != nil {
		return models.Tour{}, apperrors.Storage("failed to create tour", err)
	}
	return s.get(tour.ID)
}

// Update overwrites the provided fields and always drops the tour back to
// pending so edits go through review again.
func (s *TourService) Update(actor policy.Actor, tourID uint, cmd UpdateTourCommand) (models.Tour, error) {
	tour, err := s.get(tourID)
	if err != nil {
		return models.Tour{}, err
	}
	if !policy.CanPerform(actor, policy.ActionUpdateTour, tour.PublisherID) {
		return models.Tour{}, apperrors.Forbidden("only the publisher may edit this tour")
	}

	if cmd.Name != nil {
		tour.Name = *cmd.Name
	}
	if cmd.Description != nil {
		tour.Description = *cmd.Description
	}
	if cmd.Images != nil {
		tour.Images = cmd.Images
	}
	if cmd.Videos != nil {
		tour.Videos = cmd.Videos
	}
	if cmd.Location != nil {
		tour.Location = *cmd.Location
	}
	if cmd.Latitude != nil {
		tour.Latitude = cmd.Latitude
	}
	if cmd.Longitude != nil {
		tour.Longitude = cmd.Longitude
	}
	if cmd.CategoryID != nil {
		if _, err := s.Repos.Categories.GetByID(*cmd.CategoryID); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return models.Tour{}, apperrors.NotFound("category not found")
			}
			return models.Tour{}, apperrors.Storage("failed to load category", err)
		}
		tour.CategoryID = *cmd.CategoryID
	}

	tour.Status = models.TourStatusPending
	if err := s.Repos.Tours.Save(&tour); err != nil {
		return models.Tour{}, apperrors.Storage("failed to update tour", err)
	}
	return s.get(tourID)
}

// GetByID returns the tour when it is publicly visible (approved and not
// deleted). The publisher and staff still see pending, rejected and deleted
// tours; everyone else gets a not-found so hidden tours stay hidden.
func (s *TourService) GetByID(actor policy.Actor, tourID uint) (models.Tour, error) {
	tour, err := s.get(tourID)
	if err != nil {
		return models.Tour{}, err
	}
	if tour.Status == models.TourStatusApproved && !tour.IsDeleted {
		return tour, nil
	}
	if (actor.UserID != 0 && actor.UserID == tour.PublisherID) || actor.IsStaff() {
		return tour, nil
	}
	return models.Tour{}, apperrors.NotFound("tour not found")
}

func (s *TourService) AddComment(actor policy.Actor, tourID uint, content string) (models.Comment, error) {
	if content == "" {
		return models.Comment{}, apperrors.Validation("comment content is required")
	}
	if _, err := s.get(tourID); err != nil {
		return models.Comment{}, err
	}

	comment := models.Comment{
		TourID:  tourID,
		UserID:  actor.UserID,
		Content: content,
	}
	if err := s.Repos.Tours.AddComment(&comment); err != nil {
		return models.Comment{}, apperrors.Storage("failed to add comment", err)
	}
	// Only the created child goes back to the caller, not the whole tour.
	return comment, nil
}

func (s *TourService) EditComment(actor policy.Actor, tourID, commentID uint, content string) (models.Comment, error) {
	if content == "" {
		return models.Comment{}, apperrors.Validation("comment content is required")
	}
	comment, err := s.getComment(tourID, commentID)
	if err != nil {
		return models.Comment{}, err
	}
	if !policy.CanPerform(actor, policy.ActionEditChild, comment.UserID) {
		return models.Comment{}, apperrors.Forbidden("only the author may edit this comment")
	}

	comment.Content = content
	if err := s.Repos.Tours.SaveComment(&comment); err != nil {
		return models.Comment{}, apperrors.Storage("failed to update comment", err)
	}
	return comment, nil
}

func (s *TourService) DeleteComment(actor policy.Actor, tourID, commentID uint) error {
	comment, err := s.getComment(tourID, commentID)
	if err != nil {
		return err
	}
	if !policy.CanPerform(actor, policy.ActionEditChild, comment.UserID) {
		return apperrors.Forbidden("only the author may delete this comment")
	}
	if err := s.Repos.Tours.DeleteComment(&comment); err != nil {
		return apperrors.Storage("failed to delete comment", err)
	}
	return nil
}

// UpsertRating records actor's score for the tour. A second rating from the
// same author overwrites the first; the ratings list never holds two entries
// for one author.
func (s *TourService) UpsertRating(actor policy.Actor, tourID uint, score int) (models.Rating, bool, error) {
	if score < 1 || score > 5 {
		return models.Rating{}, false, apperrors.Validation("score must be an integer between 1 and 5")
	}
	if _, err := s.get(tourID); err != nil {
		return models.Rating{}, false, err
	}

	existing, err := s.Repos.Tours.GetRatingByAuthor(tourID, actor.UserID)
	switch {
	case err == nil:
		existing.Score = score
		if err := s.Repos.Tours.SaveRating(&existing); err != nil {
			return models.Rating{}, false, apperrors.Storage("failed to update rating", err)
		}
		return existing, false, nil
	case errors.Is(err, repository.ErrNotFound):
		rating := models.Rating{
			TourID: tourID,
			UserID: actor.UserID,
			Score:  score,
		}
		if err := s.Repos.Tours.AddRating(&rating); err != nil {
			return models.Rating{}, false, apperrors.Storage("failed to add rating", err)
		}
		return rating, true, nil
	default:
		return models.Rating{}, false, apperrors.Storage("failed to load rating", err)
	}
}

func (s *TourService) EditRating(actor policy.Actor, tourID, ratingID uint, score int) (models.Rating, error) {
	if score < 1 || score > 5 {
		return models.Rating{}, apperrors.Validation("score must be an integer between 1 and 5")
	}
	rating, err := s.getRating(tourID, ratingID)
	if err != nil {
		return models.Rating{}, err
	}
	if !policy.CanPerform(actor, policy.ActionEditChild, rating.UserID) {
		return models.Rating{}, apperrors.Forbidden("only the author may edit this rating")
	}

	rating.Score = score
	if err := s.Repos.Tours.SaveRating(&rating); err != nil {
		return models.Rating{}, apperrors.Storage("failed to update rating", err)
	}
	return rating, nil
}

func (s *TourService) DeleteRating(actor policy.Actor, tourID, ratingID uint) error {
	rating, err := s.getRating(tourID, ratingID)
	if err != nil {
		return err
	}
	if !policy.CanPerform(actor, policy.ActionEditChild, rating.UserID) {
		return apperrors.Forbidden("only the author may delete this rating")
	}
	if err := s.Repos.Tours.DeleteRating(&rating); err != nil {
		return apperrors.Storage("failed to delete rating", err)
	}
	return nil
}

// ToggleSave adds the tour to actor's saved list, or removes it when already
// saved. Returns true when the tour ended up saved.
func (s *TourService) ToggleSave(actor policy.Actor, tourID uint) (bool, error) {
	if _, err := s.get(tourID); err != nil {
		return false, err
	}
	saved, err := s.Repos.Users.IsTourSaved(actor.UserID, tourID)
	if err != nil {
		return false, apperrors.Storage("failed to load saved tours", err)
	}
	if saved {
		if err := s.Repos.Users.UnsaveTour(actor.UserID, tourID); err != nil {
			return false, apperrors.Storage("failed to unsave tour", err)
		}
		return false, nil
	}
	if err := s.Repos.Users.SaveTour(actor.UserID, tourID); err != nil {
		return false, apperrors.Storage("failed to save tour", err)
	}
	return true, nil
}

func (s *TourService) ListSaved(actor policy.Actor) ([]models.Tour, error) {
	tours, err := s.Repos.Users.ListSavedTours(actor.UserID)
	if err != nil {
		return nil, apperrors.Storage("failed to fetch saved tours", err)
	}
	if tours == nil {
		tours = []models.Tour{}
	}
	return tours, nil
}

func (s *TourService) get(tourID uint) (models.Tour, error) {
	tour, err := s.Repos.Tours.GetByID(tourID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return models.Tour{}, apperrors.NotFound("tour not found")
		}
		return models.Tour{}, apperrors.Storage("failed to load tour", err)
	}
	return tour, nil
}

func (s *TourService) getComment(tourID, commentID uint) (models.Comment, error) {
	if _, err := s.get(tourID); err != nil {
		return models.Comment{}, err
	}
	comment, err := s.Repos.Tours.GetComment(tourID, commentID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return models.Comment{}, apperrors.NotFound("comment not found")
		}
		return models.Comment{}, apperrors.Storage("failed to load comment", err)
	}
	return comment, nil
}

func (s *TourService) getRating(tourID, ratingID uint) (models.Rating, error) {
	if _, err := s.get(tourID); err != nil {
		return models.Rating{}, err
	}
	rating, err := s.Repos.Tours.GetRating(tourID, ratingID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return models.Rating{}, apperrors.NotFound("rating not found")
		}
		return models.Rating{}, apperrors.Storage("failed to load rating", err)
	}
	return rating, nil
}
