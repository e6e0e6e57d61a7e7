package session

import (
	"encoding/gob"
	"net/http"

	"popcornhour/models"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

// Name is the cookie holding the signed session.
const Name = "popcornhour_session"

const loginIdentity = "LOGIN_IDENTITY"

func init() {
	gob.Register(models.Identity{})
}

// NewStore returns a cookie store signed with secret.
func NewStore(secret []byte, secure bool) sessions.Store {
	store := cookie.NewStore(secret)
	store.Options(sessions.Options{
		Path:     "/",
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
	return store
}

func SetIdentity(c *gin.Context, identity *models.Identity) error {
	s := sessions.Default(c)
	s.Set(loginIdentity, *identity)
	return s.Save()
}

func GetIdentity(c *gin.Context) *models.Identity {
	s := sessions.Default(c)
	if obj := s.Get(loginIdentity); obj != nil {
		if identity, ok := obj.(models.Identity); ok {
			return &identity
		}
	}
	return nil
}

// Clear drops every session value and expires the cookie.
func Clear(c *gin.Context) error {
	s := sessions.Default(c)
	s.Clear()
	s.Options(sessions.Options{
		Path:   "/",
		MaxAge: -1,
	})
	return s.Save()
}

// AddFlash queues a one-shot message for the next rendered page.
func AddFlash(c *gin.Context, message string) {
	s := sessions.Default(c)
	s.AddFlash(message)
	_ = s.Save()
}

// Flashes pops the queued messages.
func Flashes(c *gin.Context) []string {
	s := sessions.Default(c)
	raw := s.Flashes()
	if len(raw) == 0 {
		return nil
	}
	_ = s.Save()

	messages := make([]string, 0, len(raw))
	for _, f := range raw {
		if msg, ok := f.(string); ok {
			messages = append(messages, msg)
		}
	}
	return messages
}
