package handlers

import (
	"errors"
	"net/http"

	"popcornhour/helper"
	"popcornhour/models"
	"popcornhour/services"
	"popcornhour/session"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService services.AuthService
	Helper      *helper.HTTPHelper
}

func NewAuthHandler(authService services.AuthService, h *helper.HTTPHelper) *AuthHandler {
	return &AuthHandler{authService: authService, Helper: h}
}

func (h *AuthHandler) LoginPage(c *gin.Context) {
	render(c, http.StatusOK, "login.html", gin.H{"Title": "Log in"})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		h.loginFailed(c, http.StatusBadRequest, req.Email, err.Error())
		return
	}
	if err := h.Helper.Validate.Struct(req); err != nil {
		// Same message for every credential problem.
		h.loginFailed(c, http.StatusUnauthorized, req.Email, models.ErrInvalidCredentials.Error())
		return
	}

	identity, err := h.authService.Login(req)
	if err != nil {
		var unauthorized models.ErrorUnauthorized
		if errors.As(err, &unauthorized) {
			h.loginFailed(c, http.StatusUnauthorized, req.Email, err.Error())
			return
		}
		renderError(c, h.Helper, err, "/login")
		return
	}

	if err := session.SetIdentity(c, identity); err != nil {
		renderError(c, h.Helper, models.ErrorInternalServer{Err: err}, "/login")
		return
	}
	redirectWithFlash(c, "/", "Welcome back, "+identity.Name+"!")
}

func (h *AuthHandler) loginFailed(c *gin.Context, status int, email, message string) {
	render(c, status, "login.html", gin.H{
		"Title": "Log in",
		"Email": email,
		"Error": message,
	})
}

// LoginRateLimited is the onLimited handler for the login form.
func (h *AuthHandler) LoginRateLimited(c *gin.Context) {
	h.loginFailed(c, http.StatusTooManyRequests, c.PostForm("email"), "Too many login attempts, please wait a minute.")
}

func (h *AuthHandler) SignupPage(c *gin.Context) {
	render(c, http.StatusOK, "signup.html", gin.H{
		"Title": "Sign up",
		"Form":  models.SignupRequest{},
	})
}

func (h *AuthHandler) Signup(c *gin.Context) {
	var req models.SignupRequest
	if err := c.ShouldBind(&req); err != nil {
		h.signupFailed(c, http.StatusBadRequest, req, "", validationErrors(h.Helper, err))
		return
	}
	if err := h.Helper.Validate.Struct(req); err != nil {
		h.signupFailed(c, http.StatusBadRequest, req, "", validationErrors(h.Helper, err))
		return
	}

	if _, err := h.authService.Register(req); err != nil {
		status := h.Helper.GetStatusCode(err)
		if status >= http.StatusInternalServerError {
			renderError(c, h.Helper, err, "/signup")
			return
		}
		h.signupFailed(c, status, req, err.Error(), nil)
		return
	}

	redirectWithFlash(c, "/login", "Account created, you can log in now.")
}

func (h *AuthHandler) signupFailed(c *gin.Context, status int, req models.SignupRequest, message string, fieldErrors map[string][]string) {
	req.Password, req.ConfirmPassword = "", ""
	if fieldErrors == nil {
		fieldErrors = map[string][]string{}
	}
	render(c, status, "signup.html", gin.H{
		"Title":  "Sign up",
		"Form":   req,
		"Error":  message,
		"Errors": fieldErrors,
	})
}

// Logout works from any state.
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := session.Clear(c); err != nil {
		renderError(c, h.Helper, models.ErrorInternalServer{Err: err}, "/logout")
		return
	}
	c.Redirect(http.StatusFound, "/")
}
