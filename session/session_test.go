package session

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"popcornhour/models"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(sessions.Sessions(Name, NewStore([]byte("test-secret"), false)))

	r.GET("/login", func(c *gin.Context) {
		_ = SetIdentity(c, &models.Identity{UserID: 3, Email: "ana@example.com", Name: "Ana", Role: models.RoleModerator})
		AddFlash(c, "welcome back")
		c.Status(http.StatusNoContent)
	})
	r.GET("/whoami", func(c *gin.Context) {
		identity := GetIdentity(c)
		if identity == nil {
			c.String(http.StatusOK, "anonymous")
			return
		}
		c.String(http.StatusOK, identity.Email+"|"+string(identity.Role)+"|"+strings.Join(Flashes(c), ","))
	})
	r.GET("/logout", func(c *gin.Context) {
		_ = Clear(c)
		c.Status(http.StatusNoContent)
	})
	return r
}

func do(r *gin.Engine, path string, cookies []*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// latest returns the cookie a browser would keep when a response saves the
// session more than once.
func latest(t *testing.T, w *httptest.ResponseRecorder) *http.Cookie {
	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)
	return cookies[len(cookies)-1]
}

func TestIdentityRoundTrip(t *testing.T) {
	r := newRouter()

	assert.Equal(t, "anonymous", do(r, "/whoami", nil).Body.String())

	cookie := latest(t, do(r, "/login", nil))
	assert.Equal(t, Name, cookie.Name)
	assert.True(t, cookie.HttpOnly)

	assert.Equal(t, "ana@example.com|moderator|welcome back", do(r, "/whoami", []*http.Cookie{cookie}).Body.String())
}

func TestClearExpiresCookie(t *testing.T) {
	r := newRouter()
	cookie := latest(t, do(r, "/login", nil))

	expired := latest(t, do(r, "/logout", []*http.Cookie{cookie}))
	assert.True(t, expired.MaxAge < 0)

	assert.Equal(t, "anonymous", do(r, "/whoami", []*http.Cookie{expired}).Body.String())
}

func TestTamperedCookieIsAnonymous(t *testing.T) {
	r := newRouter()
	forged := *latest(t, do(r, "/login", nil))
	forged.Value = forged.Value[:len(forged.Value)-4] + "AAAA"

	assert.Equal(t, "anonymous", do(r, "/whoami", []*http.Cookie{&forged}).Body.String())
}
