package repositories

import (
	"popcornhour/models"

	"gorm.io/gorm"
)

type CommentRepository interface {
	Create(comment *models.Comment) error
	GetByMovie(movieID uint) ([]models.Comment, error)
	GetByUser(userID uint) ([]models.Comment, error)
	DeleteByUser(userID uint) error
}

type commentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(comment *models.Comment) error {
	return r.db.Omit("User", "Movie").Create(comment).Error
}

// GetByMovie returns the movie's comments newest first, with their authors.
func (r *commentRepository) GetByMovie(movieID uint) ([]models.Comment, error) {
	var comments []models.Comment
	err := r.db.Where("movie_id = ?", movieID).
		Preload("User").
		Order("created_at desc").Order("id desc").
		Find(&comments).Error
	return comments, err
}

func (r *commentRepository) GetByUser(userID uint) ([]models.Comment, error) {
	var comments []models.Comment
	err := r.db.Where("user_id = ?", userID).
		Preload("Movie").
		Order("created_at desc").Order("id desc").
		Find(&comments).Error
	return comments, err
}

func (r *commentRepository) DeleteByUser(userID uint) error {
	return r.db.Where("user_id = ?", userID).Delete(&models.Comment{}).Error
}
