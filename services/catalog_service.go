package services

import (
	"errors"
	"strings"
	"unicode/utf8"

	"popcornhour/models"
	"popcornhour/repositories"

	"gorm.io/gorm"
)

type CatalogService interface {
	ListMovies(params models.MovieListParams) ([]models.Movie, int64, error)
	GetMovie(id uint) (*models.Movie, error)
	GetMovieDetails(id uint) (*models.MovieDetails, error)
	AddMovie(actor *models.Identity, req models.MovieRequest) (*models.Movie, error)
	EditMovie(actor *models.Identity, id uint, req models.MovieRequest) (*models.Movie, error)
	DeleteMovie(actor *models.Identity, id uint) error
	RateMovie(actor *models.Identity, movieID uint, score int) (*models.Rating, error)
	CommentMovie(actor *models.Identity, movieID uint, text string) (*models.Comment, error)
	Dashboard(actor *models.Identity) (*models.Dashboard, error)
}

type catalogService struct {
	movieRepo   repositories.MovieRepository
	ratingRepo  repositories.RatingRepository
	commentRepo repositories.CommentRepository
}

func NewCatalogService(
	movieRepo repositories.MovieRepository,
	ratingRepo repositories.RatingRepository,
	commentRepo repositories.CommentRepository,
) CatalogService {
	return &catalogService{
		movieRepo:   movieRepo,
		ratingRepo:  ratingRepo,
		commentRepo: commentRepo,
	}
}

const movieNotFound = "movie not found"

func (s *catalogService) ListMovies(params models.MovieListParams) ([]models.Movie, int64, error) {
	movies, total, err := s.movieRepo.GetList(params)
	if err != nil {
		return nil, 0, translateError(err, "")
	}
	return movies, total, nil
}

func (s *catalogService) GetMovie(id uint) (*models.Movie, error) {
	movie, err := s.movieRepo.GetByID(id)
	if err != nil {
		return nil, translateError(err, movieNotFound)
	}
	return movie, nil
}

// GetMovieDetails recomputes the average score on every call.
func (s *catalogService) GetMovieDetails(id uint) (*models.MovieDetails, error) {
	movie, err := s.movieRepo.GetByID(id)
	if err != nil {
		return nil, translateError(err, movieNotFound)
	}

	avg, err := s.ratingRepo.AverageScore(id)
	if err != nil {
		return nil, translateError(err, "")
	}
	count, err := s.ratingRepo.CountByMovie(id)
	if err != nil {
		return nil, translateError(err, "")
	}
	comments, err := s.commentRepo.GetByMovie(id)
	if err != nil {
		return nil, translateError(err, "")
	}

	return &models.MovieDetails{
		Movie:        *movie,
		Comments:     comments,
		AverageScore: avg,
		RatingCount:  count,
	}, nil
}

func (s *catalogService) AddMovie(actor *models.Identity, req models.MovieRequest) (*models.Movie, error) {
	if err := RequireModerator(actor); err != nil {
		return nil, err
	}

	movie := &models.Movie{}
	applyMovieRequest(movie, req)
	if err := s.movieRepo.Create(movie); err != nil {
		return nil, translateError(err, "")
	}
	return movie, nil
}

func (s *catalogService) EditMovie(actor *models.Identity, id uint, req models.MovieRequest) (*models.Movie, error) {
	if err := RequireModerator(actor); err != nil {
		return nil, err
	}

	movie, err := s.movieRepo.GetByID(id)
	if err != nil {
		return nil, translateError(err, movieNotFound)
	}

	applyMovieRequest(movie, req)
	if err := s.movieRepo.Update(movie); err != nil {
		return nil, translateError(err, movieNotFound)
	}
	return movie, nil
}

// DeleteMovie does not cascade. A movie that still has ratings or comments is
// kept and ErrMovieReferenced is returned.
func (s *catalogService) DeleteMovie(actor *models.Identity, id uint) error {
	if err := RequireModerator(actor); err != nil {
		return err
	}

	err := s.movieRepo.Delete(id)
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return models.ErrMovieReferenced
	}
	return translateError(err, movieNotFound)
}

func (s *catalogService) RateMovie(actor *models.Identity, movieID uint, score int) (*models.Rating, error) {
	if err := RequireAuthenticated(actor); err != nil {
		return nil, err
	}
	if score < 1 || score > 5 {
		return nil, models.ErrInvalidScore
	}
	if _, err := s.movieRepo.GetByID(movieID); err != nil {
		return nil, translateError(err, movieNotFound)
	}

	rating := &models.Rating{
		UserID:  actor.UserID,
		MovieID: movieID,
		Score:   score,
	}
	if err := s.ratingRepo.Create(rating); err != nil {
		return nil, translateError(err, movieNotFound)
	}
	return rating, nil
}

func (s *catalogService) CommentMovie(actor *models.Identity, movieID uint, text string) (*models.Comment, error) {
	if err := RequireAuthenticated(actor); err != nil {
		return nil, err
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, models.ErrEmptyComment
	}
	if utf8.RuneCountInString(text) > models.MaxCommentLength {
		return nil, models.ErrCommentTooLong
	}
	if _, err := s.movieRepo.GetByID(movieID); err != nil {
		return nil, translateError(err, movieNotFound)
	}

	comment := &models.Comment{
		UserID:  actor.UserID,
		MovieID: movieID,
		Text:    text,
	}
	if err := s.commentRepo.Create(comment); err != nil {
		return nil, translateError(err, movieNotFound)
	}
	return comment, nil
}

func (s *catalogService) Dashboard(actor *models.Identity) (*models.Dashboard, error) {
	if err := RequireAuthenticated(actor); err != nil {
		return nil, err
	}

	ratings, err := s.ratingRepo.GetByUser(actor.UserID)
	if err != nil {
		return nil, translateError(err, "")
	}
	comments, err := s.commentRepo.GetByUser(actor.UserID)
	if err != nil {
		return nil, translateError(err, "")
	}
	return &models.Dashboard{Ratings: ratings, Comments: comments}, nil
}

func applyMovieRequest(movie *models.Movie, req models.MovieRequest) {
	movie.Title = strings.TrimSpace(req.Title)
	movie.Synopsis = strings.TrimSpace(req.Synopsis)
	movie.Year = req.Year
	movie.Duration = req.Duration
	movie.Genre = strings.TrimSpace(req.Genre)
	movie.CoverImage = strings.TrimSpace(req.CoverImage)
}
