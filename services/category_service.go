package services

import (
	"errors"

	"github.com/roamly/api-go/apperrors"
	"github.com/roamly/api-go/models"
	"github.com/roamly/api-go/policy"
	"github.com/roamly/api-go/repository"
)

type CategoryService struct {
	Repos *repository.Repos
}

func NewCategoryService(repos *repository.Repos) *CategoryService {
	return &CategoryService{Repos: repos}
}

func (s *CategoryService) Create(actor policy.Actor, name, image string) (models.Category, error) {
	if !policy.CanPerform(actor, policy.ActionCreateCategory, 0) {
		return models.Category{}, apperrors.Forbidden("admin role required")
	}
	if name == "" {
		return models.Category{}, apperrors.Validation("category name is required")
	}

	category := models.Category{Name: name, Image: image}
	if err := s.Repos.Categories.Create(&category); err != nil {
		return models.Category{}, apperrors.Storage("failed to create category", err)
	}
	return category, nil
}

func (s *CategoryService) List() ([]models.Category, error) {
	categories, err := s.Repos.Categories.List()
	if err != nil {
		return nil, apperrors.Storage("failed to fetch categories", err)
	}
	if categories == nil {
		categories = []models.Category{}
	}
	return categories, nil
}

// Delete removes the category row. Tours referencing it are left alone;
// discovery joins skip tours whose category is gone.
func (s *CategoryService) Delete(actor policy.Actor, categoryID uint) error {
	if !policy.CanPerform(actor, policy.ActionDeleteCategory, 0) {
		return apperrors.Forbidden("admin role required")
	}
	if err := s.Repos.Categories.Delete(categoryID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperrors.NotFound("category not found")
		}
		return apperrors.Storage("failed to delete category", err)
	}
	return nil
}
