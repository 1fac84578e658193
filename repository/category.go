package repository

import (
	"github.com/roamly/api-go/models"
	"gorm.io/gorm"
)

type CategoryRepo interface {
	Create(category *models.Category) error
	GetByID(id uint) (models.Category, error)
	List() ([]models.Category, error)
	Delete(id uint) error
}

type DBCategoryRepo struct {
	db *gorm.DB
}

func NewCategoryRepo(db *gorm.DB) *DBCategoryRepo {
	return &DBCategoryRepo{db: db}
}

func (r *DBCategoryRepo) Create(category *models.Category) error {
	return r.db.Create(category).Error
}

func (r *DBCategoryRepo) GetByID(id uint) (models.Category, error) {
	var category models.Category
	err := r.db.First(&category, id).Error
	return category, translate(err)
}

func (r *DBCategoryRepo) List() ([]models.Category, error) {
	var categories []models.Category
	err := r.db.Order("name ASC").Find(&categories).Error
	return categories, err
}

func (r *DBCategoryRepo) Delete(id uint) error {
	result := r.db.Delete(&models.Category{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
