package services

import (
	"strings"
	"testing"

	"popcornhour/models"
	"popcornhour/repositories"
	"popcornhour/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type catalogMocks struct {
	movies   *MockMovieRepository
	ratings  *MockRatingRepository
	comments *MockCommentRepository
}

func newMockedCatalog() (CatalogService, catalogMocks) {
	m := catalogMocks{
		movies:   new(MockMovieRepository),
		ratings:  new(MockRatingRepository),
		comments: new(MockCommentRepository),
	}
	return NewCatalogService(m.movies, m.ratings, m.comments), m
}

var viewer = &models.Identity{UserID: 2, Email: "viewer@example.com", Name: "Viewer", Role: models.RoleStandard}

func TestGetMovieDetails_NotFound(t *testing.T) {
	catalog, m := newMockedCatalog()
	m.movies.On("GetByID", uint(404)).Return(nil, gorm.ErrRecordNotFound)

	_, err := catalog.GetMovieDetails(404)

	var notFound models.ErrorNotFound
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "movie not found", notFound.Message)

	_, err = catalog.GetMovie(404)
	require.ErrorAs(t, err, &notFound)
}

func TestGetMovieDetails_AverageOverAllRows(t *testing.T) {
	db := testutil.NewTestDB(t)
	repos := repositories.NewRepositories(db)
	catalog := NewCatalogService(repos.Movies, repos.Ratings, repos.Comments)
	user := testutil.CreateUser(t, db, "Rater", "rater@example.com", models.RoleStandard)
	movie := testutil.CreateMovie(t, db, "Jaws")
	actor := &models.Identity{UserID: user.ID, Role: models.RoleStandard}

	details, err := catalog.GetMovieDetails(movie.ID)
	require.NoError(t, err)
	assert.Nil(t, details.AverageScore)
	assert.Zero(t, details.RatingCount)

	// Same user twice: both rows count.
	_, err = catalog.RateMovie(actor, movie.ID, 3)
	require.NoError(t, err)
	_, err = catalog.RateMovie(actor, movie.ID, 5)
	require.NoError(t, err)
	_, err = catalog.CommentMovie(actor, movie.ID, "  shark!  ")
	require.NoError(t, err)

	details, err = catalog.GetMovieDetails(movie.ID)
	require.NoError(t, err)
	require.NotNil(t, details.AverageScore)
	assert.InDelta(t, 4.0, *details.AverageScore, 1e-9)
	assert.Equal(t, int64(2), details.RatingCount)
	require.Len(t, details.Comments, 1)
	assert.Equal(t, "shark!", details.Comments[0].Text)
	require.NotNil(t, details.Comments[0].User)
	assert.Equal(t, "Rater", details.Comments[0].User.Name)
}

func TestRateMovie_Validation(t *testing.T) {
	catalog, m := newMockedCatalog()

	_, err := catalog.RateMovie(nil, 1, 4)
	assert.ErrorIs(t, err, models.ErrLoginRequired)

	_, err = catalog.RateMovie(viewer, 1, 6)
	assert.ErrorIs(t, err, models.ErrInvalidScore)

	m.movies.On("GetByID", uint(77)).Return(nil, gorm.ErrRecordNotFound)
	_, err = catalog.RateMovie(viewer, 77, 4)
	var notFound models.ErrorNotFound
	assert.ErrorAs(t, err, &notFound)

	m.ratings.AssertNotCalled(t, "Create", mock.Anything)
}

func TestCommentMovie_Validation(t *testing.T) {
	catalog, m := newMockedCatalog()

	_, err := catalog.CommentMovie(nil, 1, "hi")
	assert.ErrorIs(t, err, models.ErrLoginRequired)

	_, err = catalog.CommentMovie(viewer, 1, "   ")
	assert.ErrorIs(t, err, models.ErrEmptyComment)

	_, err = catalog.CommentMovie(viewer, 1, strings.Repeat("é", models.MaxCommentLength+1))
	assert.ErrorIs(t, err, models.ErrCommentTooLong)

	m.movies.On("GetByID", uint(1)).Return(&models.Movie{ID: 1}, nil)
	m.comments.On("Create", mock.AnythingOfType("*models.Comment")).Return(nil)

	comment, err := catalog.CommentMovie(viewer, 1, "great")
	require.NoError(t, err)
	assert.Equal(t, viewer.UserID, comment.UserID)
	assert.Equal(t, uint(1), comment.MovieID)
}

func TestMovieManagement_RequiresModerator(t *testing.T) {
	catalog, m := newMockedCatalog()
	req := models.MovieRequest{Title: "Up", Year: 2009, Duration: 96}

	_, err := catalog.AddMovie(viewer, req)
	assert.ErrorIs(t, err, models.ErrForbidden)
	_, err = catalog.EditMovie(nil, 1, req)
	assert.ErrorIs(t, err, models.ErrForbidden)
	assert.ErrorIs(t, catalog.DeleteMovie(viewer, 1), models.ErrForbidden)

	m.movies.AssertNotCalled(t, "Create", mock.Anything)
	m.movies.AssertNotCalled(t, "Delete", mock.Anything)
}

func TestAddAndEditMovie(t *testing.T) {
	catalog, m := newMockedCatalog()
	m.movies.On("Create", mock.AnythingOfType("*models.Movie")).Return(nil)

	movie, err := catalog.AddMovie(moderator, models.MovieRequest{Title: " Up ", Year: 2009, Duration: 96, Genre: "Animation"})
	require.NoError(t, err)
	assert.Equal(t, "Up", movie.Title)

	existing := &models.Movie{ID: 9, Title: "Old"}
	m.movies.On("GetByID", uint(9)).Return(existing, nil)
	m.movies.On("Update", existing).Return(nil)

	edited, err := catalog.EditMovie(moderator, 9, models.MovieRequest{Title: "New", Year: 2001, Duration: 90})
	require.NoError(t, err)
	assert.Equal(t, "New", edited.Title)
	assert.Equal(t, 2001, edited.Year)

	m.movies.On("GetByID", uint(10)).Return(nil, gorm.ErrRecordNotFound)
	_, err = catalog.EditMovie(moderator, 10, models.MovieRequest{Title: "X", Year: 2001, Duration: 90})
	var notFound models.ErrorNotFound
	assert.ErrorAs(t, err, &notFound)
}

func TestDeleteMovie_NoCascade(t *testing.T) {
	catalog, m := newMockedCatalog()
	m.movies.On("Delete", uint(5)).Return(gorm.ErrForeignKeyViolated)
	m.movies.On("Delete", uint(6)).Return(gorm.ErrRecordNotFound)
	m.movies.On("Delete", uint(7)).Return(nil)

	assert.ErrorIs(t, catalog.DeleteMovie(moderator, 5), models.ErrMovieReferenced)
	var notFound models.ErrorNotFound
	assert.ErrorAs(t, catalog.DeleteMovie(moderator, 6), &notFound)
	assert.NoError(t, catalog.DeleteMovie(moderator, 7))

	m.ratings.AssertNotCalled(t, "DeleteByUser", mock.Anything)
}

func TestDashboard(t *testing.T) {
	catalog, m := newMockedCatalog()

	_, err := catalog.Dashboard(nil)
	assert.ErrorIs(t, err, models.ErrLoginRequired)

	m.ratings.On("GetByUser", viewer.UserID).Return([]models.Rating{{ID: 1, Score: 4}}, nil)
	m.comments.On("GetByUser", viewer.UserID).Return([]models.Comment{}, nil)

	dashboard, err := catalog.Dashboard(viewer)
	require.NoError(t, err)
	assert.Len(t, dashboard.Ratings, 1)
	assert.Empty(t, dashboard.Comments)
}
