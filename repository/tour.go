package repository

import (
	"github.com/roamly/api-go/models"
	"gorm.io/gorm"
)

type TourRepo interface {
	Create(tour *models.Tour) error
	GetByID(id uint) (models.Tour, error)
	Save(tour *models.Tour) error

	// ListPublic returns approved, not-deleted tours newest first with
	// category, publisher and children preloaded.
	ListPublic() ([]models.Tour, error)
	ListNotDeleted() ([]models.Tour, error)
	ListAll() ([]models.Tour, error)
	ListByPublisher(userID uint) ([]models.Tour, error)
	ListByCategory(categoryID uint) ([]models.Tour, error)

	AddComment(comment *models.Comment) error
	GetComment(tourID, commentID uint) (models.Comment, error)
	SaveComment(comment *models.Comment) error
	DeleteComment(comment *models.Comment) error

	AddRating(rating *models.Rating) error
	GetRating(tourID, ratingID uint) (models.Rating, error)
	GetRatingByAuthor(tourID, userID uint) (models.Rating, error)
	SaveRating(rating *models.Rating) error
	DeleteRating(rating *models.Rating) error
}

type DBTourRepo struct {
	db *gorm.DB
}

func NewTourRepo(db *gorm.DB) *DBTourRepo {
	return &DBTourRepo{db: db}
}

func (r *DBTourRepo) preloaded() *gorm.DB {
	return r.db.
		Preload("Category").
		Preload("Publisher").
		Preload("Comments", func(db *gorm.DB) *gorm.DB {
			return db.Order("comments.created_at ASC")
		}).
		Preload("Comments.User").
		Preload("Ratings", func(db *gorm.DB) *gorm.DB {
			return db.Order("ratings.created_at ASC")
		}).
		Preload("Ratings.User")
}

func (r *DBTourRepo) Create(tour *models.Tour) error {
	return r.db.Create(tour).Error
}

func (r *DBTourRepo) GetByID(id uint) (models.Tour, error) {
	var tour models.Tour
	err := r.preloaded().First(&tour, id).Error
	return tour, translate(err)
}

func (r *DBTourRepo) Save(tour *models.Tour) error {
	return r.db.Omit("Category", "Publisher", "Comments", "Ratings").Save(tour).Error
}

func (r *DBTourRepo) ListPublic() ([]models.Tour, error) {
	var tours []models.Tour
	err := r.preloaded().
		Where("is_deleted = ? AND status = ?", false, models.TourStatusApproved).
		Order("created_at DESC").
		Find(&tours).Error
	return tours, err
}

func (r *DBTourRepo) ListNotDeleted() ([]models.Tour, error) {
	var tours []models.Tour
	err := r.preloaded().
		Where("is_deleted = ?", false).
		Order("created_at DESC").
		Find(&tours).Error
	return tours, err
}

func (r *DBTourRepo) ListAll() ([]models.Tour, error) {
	var tours []models.Tour
	err := r.preloaded().Order("created_at DESC").Find(&tours).Error
	return tours, err
}

func (r *DBTourRepo) ListByPublisher(userID uint) ([]models.Tour, error) {
	var tours []models.Tour
	err := r.preloaded().
		Where("publisher_id = ? AND is_deleted = ? AND status = ?", userID, false, models.TourStatusApproved).
		Order("created_at DESC").
		Find(&tours).Error
	return tours, err
}

func (r *DBTourRepo) ListByCategory(categoryID uint) ([]models.Tour, error) {
	var tours []models.Tour
	err := r.preloaded().
		Where("category_id = ? AND is_deleted = ? AND status = ?", categoryID, false, models.TourStatusApproved).
		Order("created_at DESC").
		Find(&tours).Error
	return tours, err
}

func (r *DBTourRepo) AddComment(comment *models.Comment) error {
	if err := r.db.Create(comment).Error; err != nil {
		return err
	}
	return r.db.Preload("User").First(comment, comment.ID).Error
}

func (r *DBTourRepo) GetComment(tourID, commentID uint) (models.Comment, error) {
	var comment models.Comment
	err := r.db.Preload("User").
		Where("tour_id = ?", tourID).
		First(&comment, commentID).Error
	return comment, translate(err)
}

func (r *DBTourRepo) SaveComment(comment *models.Comment) error {
	return r.db.Omit("User").Save(comment).Error
}

func (r *DBTourRepo) DeleteComment(comment *models.Comment) error {
	return r.db.Delete(comment).Error
}

func (r *DBTourRepo) AddRating(rating *models.Rating) error {
	if err := r.db.Create(rating).Error; err != nil {
		return err
	}
	return r.db.Preload("User").First(rating, rating.ID).Error
}

func (r *DBTourRepo) GetRating(tourID, ratingID uint) (models.Rating, error) {
	var rating models.Rating
	err := r.db.Preload("User").
		Where("tour_id = ?", tourID).
		First(&rating, ratingID).Error
	return rating, translate(err)
}

func (r *DBTourRepo) GetRatingByAuthor(tourID, userID uint) (models.Rating, error) {
	var rating models.Rating
	err := r.db.Preload("User").
		Where("tour_id = ? AND user_id = ?", tourID, userID).
		First(&rating).Error
	return rating, translate(err)
}

func (r *DBTourRepo) SaveRating(rating *models.Rating) error {
	return r.db.Omit("User").Save(rating).Error
}

func (r *DBTourRepo) DeleteRating(rating *models.Rating) error {
	return r.db.Delete(rating).Error
}
