package repositories

import (
	"popcornhour/models"

	"gorm.io/gorm"
)

type MovieRepository interface {
	Create(movie *models.Movie) error
	GetByID(id uint) (*models.Movie, error)
	GetList(params models.MovieListParams) ([]models.Movie, int64, error)
	Update(movie *models.Movie) error
	Delete(id uint) error
}

type movieRepository struct {
	db *gorm.DB
}

func NewMovieRepository(db *gorm.DB) MovieRepository {
	return &movieRepository{db: db}
}

func (r *movieRepository) Create(movie *models.Movie) error {
	return r.db.Create(movie).Error
}

func (r *movieRepository) GetByID(id uint) (*models.Movie, error) {
	var movie models.Movie
	if err := r.db.First(&movie, id).Error; err != nil {
		return nil, err
	}
	return &movie, nil
}

func (r *movieRepository) GetList(params models.MovieListParams) ([]models.Movie, int64, error) {
	var movies []models.Movie
	var total int64

	if err := r.db.Model(&models.Movie{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Normalize()
	offset := (params.Page - 1) * params.Limit
	err := r.db.Order("title asc").Order("id asc").
		Offset(offset).Limit(params.Limit).
		Find(&movies).Error

	return movies, total, err
}

func (r *movieRepository) Update(movie *models.Movie) error {
	return r.db.Save(movie).Error
}

// Delete removes only the movie row. Remaining ratings or comments make the
// foreign key reject it with gorm.ErrForeignKeyViolated.
func (r *movieRepository) Delete(id uint) error {
	result := r.db.Delete(&models.Movie{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
