package handlers

import (
	"net/http"
	"strconv"

	"popcornhour/helper"
	"popcornhour/logger"
	"popcornhour/middleware"
	"popcornhour/session"

	"github.com/gin-gonic/gin"
	"gopkg.in/go-playground/validator.v9"
)

// render fills in the values every page expects and writes the template.
func render(c *gin.Context, status int, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	data["Identity"] = middleware.CurrentIdentity(c)
	data["Flashes"] = session.Flashes(c)
	if _, ok := data["Errors"]; !ok {
		data["Errors"] = map[string][]string{}
	}
	c.HTML(status, name, data)
}

// renderError shows err on the error page. retryURL, when set, is offered as a
// "try again" link.
func renderError(c *gin.Context, h *helper.HTTPHelper, err error, retryURL string) {
	status := h.GetStatusCode(err)
	if status >= http.StatusInternalServerError {
		logger.Errorf("[%s] %s %s: %v", middleware.GetRequestID(c), c.Request.Method, c.Request.URL.Path, err)
	}
	render(c, status, "error.html", gin.H{
		"Title":    http.StatusText(status),
		"Status":   status,
		"Message":  err.Error(),
		"RetryURL": retryURL,
	})
}

// validationErrors converts a bind or validate failure into field messages.
func validationErrors(h *helper.HTTPHelper, err error) map[string][]string {
	if verrs, ok := err.(validator.ValidationErrors); ok {
		return h.ValidationMessages(verrs)
	}
	return map[string][]string{"form": {err.Error()}}
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

func redirectWithFlash(c *gin.Context, location, message string) {
	if message != "" {
		session.AddFlash(c, message)
	}
	c.Redirect(http.StatusFound, location)
}
