package repositories

import (
	"database/sql"

	"popcornhour/models"

	"gorm.io/gorm"
)

type RatingRepository interface {
	Create(rating *models.Rating) error
	AverageScore(movieID uint) (*float64, error)
	CountByMovie(movieID uint) (int64, error)
	GetByUser(userID uint) ([]models.Rating, error)
	DeleteByUser(userID uint) error
}

type ratingRepository struct {
	db *gorm.DB
}

func NewRatingRepository(db *gorm.DB) RatingRepository {
	return &ratingRepository{db: db}
}

func (r *ratingRepository) Create(rating *models.Rating) error {
	return r.db.Omit("User", "Movie").Create(rating).Error
}

// AverageScore aggregates over every rating row of the movie. It returns nil,
// not zero, when the movie has no ratings.
func (r *ratingRepository) AverageScore(movieID uint) (*float64, error) {
	var avg sql.NullFloat64
	err := r.db.Model(&models.Rating{}).
		Select("AVG(score)").
		Where("movie_id = ?", movieID).
		Row().Scan(&avg)
	if err != nil {
		return nil, err
	}
	if !avg.Valid {
		return nil, nil
	}
	return &avg.Float64, nil
}

func (r *ratingRepository) CountByMovie(movieID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Rating{}).Where("movie_id = ?", movieID).Count(&count).Error
	return count, err
}

func (r *ratingRepository) GetByUser(userID uint) ([]models.Rating, error) {
	var ratings []models.Rating
	err := r.db.Where("user_id = ?", userID).
		Preload("Movie").
		Order("created_at desc").
		Find(&ratings).Error
	return ratings, err
}

func (r *ratingRepository) DeleteByUser(userID uint) error {
	return r.db.Where("user_id = ?", userID).Delete(&models.Rating{}).Error
}
