package middleware

import (
	"net/http"
	"strings"

	"popcornhour/helper"
	"popcornhour/models"
	"popcornhour/services"
	"popcornhour/session"

	"github.com/gin-gonic/gin"
)

var HTTPHelper = helper.NewHTTPHelper()

const identityKey = "identity"

// LoadIdentity copies the session identity, if any, onto the request context.
func LoadIdentity() gin.HandlerFunc {
	return func(c *gin.Context) {
		if identity := session.GetIdentity(c); identity != nil {
			c.Set(identityKey, identity)
		}
		c.Next()
	}
}

// CurrentIdentity returns the identity of this request or nil when anonymous.
func CurrentIdentity(c *gin.Context) *models.Identity {
	if v, ok := c.Get(identityKey); ok {
		if identity, ok := v.(*models.Identity); ok {
			return identity
		}
	}
	return nil
}

// RequireLogin sends anonymous visitors to the login page.
func RequireLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if CurrentIdentity(c) == nil {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireModerator answers 403 for everyone without the moderator role,
// anonymous visitors included.
func RequireModerator() gin.HandlerFunc {
	return func(c *gin.Context) {
		identity := CurrentIdentity(c)
		if err := services.RequireModerator(identity); err != nil {
			c.HTML(http.StatusForbidden, "error.html", gin.H{
				"Title":    "Forbidden",
				"Identity": identity,
				"Status":   http.StatusForbidden,
				"Message":  err.Error(),
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

// BearerAuth authenticates JSON API calls from an Authorization header.
func BearerAuth(tokens *services.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			HTTPHelper.SendUnauthorizedError(c, "Authorization header required", HTTPHelper.EmptyJsonMap())
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			HTTPHelper.SendUnauthorizedError(c, "Bearer token required", HTTPHelper.EmptyJsonMap())
			c.Abort()
			return
		}

		identity, err := tokens.Parse(strings.TrimSpace(parts[1]))
		if err != nil {
			HTTPHelper.SendUnauthorizedError(c, err.Error(), HTTPHelper.EmptyJsonMap())
			c.Abort()
			return
		}

		c.Set(identityKey, identity)
		c.Next()
	}
}

// RequireRole guards JSON routes by effective role.
func RequireRole(roles ...models.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity := CurrentIdentity(c)
		if identity == nil {
			HTTPHelper.SendUnauthorizedError(c, models.ErrLoginRequired.Error(), HTTPHelper.EmptyJsonMap())
			c.Abort()
			return
		}

		for _, role := range roles {
			if identity.Role == role {
				c.Next()
				return
			}
		}

		HTTPHelper.SendForbiddenError(c, "Insufficient permissions", HTTPHelper.EmptyJsonMap())
		c.Abort()
	}
}
