package repository

import (
	"github.com/roamly/api-go/models"
	"gorm.io/gorm"
)

type UserRepo interface {
	Create(user *models.User) error
	GetByID(id uint) (models.User, error)
	GetByEmail(email string) (models.User, error)
	Save(user *models.User) error
	List() ([]models.User, error)

	IsTourSaved(userID, tourID uint) (bool, error)
	SaveTour(userID, tourID uint) error
	UnsaveTour(userID, tourID uint) error
	ListSavedTours(userID uint) ([]models.Tour, error)
}

type DBUserRepo struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) *DBUserRepo {
	return &DBUserRepo{db: db}
}

func (r *DBUserRepo) Create(user *models.User) error {
	return r.db.Create(user).Error
}

func (r *DBUserRepo) GetByID(id uint) (models.User, error) {
	var user models.User
	err := r.db.First(&user, id).Error
	return user, translate(err)
}

func (r *DBUserRepo) GetByEmail(email string) (models.User, error) {
	var user models.User
	err := r.db.Where("email = ?", email).First(&user).Error
	return user, translate(err)
}

func (r *DBUserRepo) Save(user *models.User) error {
	return r.db.Omit("Tours", "SavedTours").Save(user).Error
}

func (r *DBUserRepo) List() ([]models.User, error) {
	var users []models.User
	err := r.db.Order("created_at DESC").Find(&users).Error
	return users, err
}

func (r *DBUserRepo) IsTourSaved(userID, tourID uint) (bool, error) {
	var count int64
	err := r.db.Table("saved_tours").
		Where("user_id = ? AND tour_id = ?", userID, tourID).
		Count(&count).Error
	return count > 0, err
}

func (r *DBUserRepo) SaveTour(userID, tourID uint) error {
	return r.db.Model(&models.User{ID: userID}).
		Association("SavedTours").
		Append(&models.Tour{ID: tourID})
}

func (r *DBUserRepo) UnsaveTour(userID, tourID uint) error {
	return r.db.Model(&models.User{ID: userID}).
		Association("SavedTours").
		Delete(&models.Tour{ID: tourID})
}

func (r *DBUserRepo) ListSavedTours(userID uint) ([]models.Tour, error) {
	var tours []models.Tour
	err := r.db.
		Joins("JOIN saved_tours ON saved_tours.tour_id = tours.id").
		Where("saved_tours.user_id = ? AND tours.is_deleted = ? AND tours.status = ?",
			userID, false, models.TourStatusApproved).
		Preload("Category").
		Preload("Publisher").
		Preload("Comments.User").
		Preload("Ratings.User").
		Order("tours.created_at DESC").
		Find(&tours).Error
	return tours, err
}
