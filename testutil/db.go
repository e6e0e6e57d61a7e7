// Package testutil provides an isolated in-memory database for tests.
package testutil

import (
	"fmt"
	"testing"

	"popcornhour/config"
	"popcornhour/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// NewTestConfig returns a config pointing at a fresh in-memory SQLite database.
// Foreign keys are switched on by config.DSN, as in production.
func NewTestConfig() *config.Config {
	return &config.Config{
		DBDriver:             "sqlite",
		DBName:               fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString()),
		DBMaxOpenConns:       1,
		SecretKey:            []byte("test-secret"),
		JWTExpiration:        config.DefaultJWTExpiration,
		ModeratorEmailDomain: "@admin.com",
		LoginRatePerMinute:   6000,
		LoginBurst:           1000,
		GinMode:              "test",
	}
}

func NewTestDB(t testing.TB) *gorm.DB {
	t.Helper()
	db, err := config.InitDB(NewTestConfig())
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func CreateUser(t testing.TB, db *gorm.DB, name, email string, role models.UserRole) *models.User {
	t.Helper()
	user := &models.User{Name: name, Email: email, Password: "00", Role: role}
	require.NoError(t, db.Create(user).Error)
	return user
}

func CreateMovie(t testing.TB, db *gorm.DB, title string) *models.Movie {
	t.Helper()
	movie := &models.Movie{Title: title, Year: 1999, Duration: 120, Genre: "Drama"}
	require.NoError(t, db.Create(movie).Error)
	return movie
}

func Count(t testing.TB, db *gorm.DB, model any, where string, args ...any) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(model).Where(where, args...).Count(&n).Error)
	return n
}
