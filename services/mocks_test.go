package services

import (
	"popcornhour/models"
	"popcornhour/repositories"

	"github.com/stretchr/testify/mock"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(id uint) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) List() ([]models.User, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockUserRepository) UpdateRole(id uint, role models.UserRole) error {
	args := m.Called(id, role)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

type MockMovieRepository struct {
	mock.Mock
}

func (m *MockMovieRepository) Create(movie *models.Movie) error {
	args := m.Called(movie)
	return args.Error(0)
}

func (m *MockMovieRepository) GetByID(id uint) (*models.Movie, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Movie), args.Error(1)
}

func (m *MockMovieRepository) GetList(params models.MovieListParams) ([]models.Movie, int64, error) {
	args := m.Called(params)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]models.Movie), args.Get(1).(int64), args.Error(2)
}

func (m *MockMovieRepository) Update(movie *models.Movie) error {
	args := m.Called(movie)
	return args.Error(0)
}

func (m *MockMovieRepository) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

type MockRatingRepository struct {
	mock.Mock
}

func (m *MockRatingRepository) Create(rating *models.Rating) error {
	args := m.Called(rating)
	return args.Error(0)
}

func (m *MockRatingRepository) AverageScore(movieID uint) (*float64, error) {
	args := m.Called(movieID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*float64), args.Error(1)
}

func (m *MockRatingRepository) CountByMovie(movieID uint) (int64, error) {
	args := m.Called(movieID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRatingRepository) GetByUser(userID uint) ([]models.Rating, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Rating), args.Error(1)
}

func (m *MockRatingRepository) DeleteByUser(userID uint) error {
	args := m.Called(userID)
	return args.Error(0)
}

type MockCommentRepository struct {
	mock.Mock
}

func (m *MockCommentRepository) Create(comment *models.Comment) error {
	args := m.Called(comment)
	return args.Error(0)
}

func (m *MockCommentRepository) GetByMovie(movieID uint) ([]models.Comment, error) {
	args := m.Called(movieID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Comment), args.Error(1)
}

func (m *MockCommentRepository) GetByUser(userID uint) ([]models.Comment, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Comment), args.Error(1)
}

func (m *MockCommentRepository) DeleteByUser(userID uint) error {
	args := m.Called(userID)
	return args.Error(0)
}

// MockUnitOfWork runs fn directly against the mock repositories; it does not
// model rollback.
type MockUnitOfWork struct {
	Repos repositories.Repositories
	Calls int
}

func (u *MockUnitOfWork) Do(fn func(repos repositories.Repositories) error) error {
	u.Calls++
	return fn(u.Repos)
}
