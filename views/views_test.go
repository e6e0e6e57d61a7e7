package views

import (
	"bytes"
	"testing"
	"time"

	"popcornhour/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatScore(t *testing.T) {
	assert.Equal(t, "No ratings yet", formatScore(nil))
	avg := 4.0
	assert.Equal(t, "4.0 / 5", formatScore(&avg))
	avg = 3.666
	assert.Equal(t, "3.7 / 5", formatScore(&avg))
}

func render(t *testing.T, name string, data map[string]interface{}) string {
	tmpl, err := Templates()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, tmpl.ExecuteTemplate(&buf, name, data))
	return buf.String()
}

func TestMoviePageWithoutRatings(t *testing.T) {
	out := render(t, "movie.html", map[string]interface{}{
		"Identity": (*models.Identity)(nil),
		"Details": &models.MovieDetails{
			Movie: models.Movie{ID: 4, Title: "Alien", Year: 1979, Duration: 117},
		},
	})

	assert.Contains(t, out, "Alien (1979)")
	assert.Contains(t, out, "No ratings yet")
	assert.Contains(t, out, "Log in</a> to rate")
	assert.NotContains(t, out, `action="/rate/4"`)
}

func TestMoviePageForMember(t *testing.T) {
	avg := 4.5
	out := render(t, "movie.html", map[string]interface{}{
		"Identity": &models.Identity{UserID: 1, Name: "Ana", Role: models.RoleStandard},
		"Flashes":  []string{"Thanks for rating"},
		"Details": &models.MovieDetails{
			Movie:        models.Movie{ID: 4, Title: "Alien", Year: 1979},
			AverageScore: &avg,
			RatingCount:  2,
			Comments: []models.Comment{
				{Text: "<b>classic</b>", User: &models.User{Name: "Bo"}, CreatedAt: time.Now()},
			},
		},
	})

	assert.Contains(t, out, "4.5 / 5 (2 ratings)")
	assert.Contains(t, out, `action="/rate/4"`)
	assert.Contains(t, out, "Thanks for rating")
	assert.Contains(t, out, "&lt;b&gt;classic&lt;/b&gt;")
	assert.NotContains(t, out, `href="/admin"`)
}

func TestAdminPageHidesSelfDelete(t *testing.T) {
	out := render(t, "admin.html", map[string]interface{}{
		"Identity": &models.Identity{UserID: 1, Name: "Root", Role: models.RoleModerator},
		"Users": []models.User{
			{ID: 1, Name: "Root", Email: "root@admin.com", Role: models.RoleModerator},
			{ID: 2, Name: "Ana", Email: "ana@example.com", Role: models.RoleStandard},
		},
	})

	assert.Contains(t, out, `action="/admin/demote/1"`)
	assert.Contains(t, out, `action="/admin/promote/2"`)
	assert.Contains(t, out, `action="/admin/delete_user/2"`)
	assert.NotContains(t, out, `action="/admin/delete_user/1"`)
}

func TestErrorPageRetryLink(t *testing.T) {
	out := render(t, "error.html", map[string]interface{}{
		"Status":   500,
		"Message":  "storage error: disk full",
		"RetryURL": "/admin",
	})

	assert.Contains(t, out, "storage error: disk full")
	assert.Contains(t, out, `href="/admin">Try again`)
}
