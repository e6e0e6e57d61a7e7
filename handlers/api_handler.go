package handlers

import (
	"net/http"

	"popcornhour/helper"
	"popcornhour/logger"
	"popcornhour/middleware"
	"popcornhour/models"
	"popcornhour/services"

	"github.com/gin-gonic/gin"
	"gopkg.in/go-playground/validator.v9"
)

// APIHandler serves the JSON surface under /api/v1.
type APIHandler struct {
	authService services.AuthService
	catalog     services.CatalogService
	tokens      *services.TokenManager
	Helper      *helper.HTTPHelper
}

func NewAPIHandler(authService services.AuthService, catalog services.CatalogService, tokens *services.TokenManager, h *helper.HTTPHelper) *APIHandler {
	return &APIHandler{authService: authService, catalog: catalog, tokens: tokens, Helper: h}
}

// bind decodes the JSON body into req and validates it. It writes the error
// response itself and reports false when the request cannot proceed.
func (h *APIHandler) bind(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		h.Helper.SendBadRequest(c, "Error ", err.Error())
		return false
	}
	if err := h.Helper.Validate.Struct(req); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok {
			h.Helper.SendValidationError(c, verrs)
			return false
		}
		h.Helper.SendBadRequest(c, "Error ", err.Error())
		return false
	}
	return true
}

func (h *APIHandler) fail(c *gin.Context, err error) {
	if h.Helper.GetStatusCode(err) >= http.StatusInternalServerError {
		logger.Errorf("[%s] %s %s: %v", middleware.GetRequestID(c), c.Request.Method, c.Request.URL.Path, err)
	}
	h.Helper.SendAppError(c, err)
}

func (h *APIHandler) Register(c *gin.Context) {
	var req models.SignupRequest
	if !h.bind(c, &req) {
		return
	}

	user, err := h.authService.Register(req)
	if err != nil {
		h.fail(c, err)
		return
	}

	h.Helper.SendCreated(c, "Register success", user)
}

func (h *APIHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, "Error ", err.Error())
		return
	}

	identity, err := h.authService.Login(req)
	if err != nil {
		h.fail(c, err)
		return
	}

	token, err := h.tokens.Generate(identity)
	if err != nil {
		h.fail(c, models.ErrorInternalServer{Err: err})
		return
	}

	h.Helper.SendSuccess(c, "Login success", models.AuthResponse{Token: token, Identity: *identity})
}

func (h *APIHandler) GetProfile(c *gin.Context) {
	identity := middleware.CurrentIdentity(c)
	if identity == nil {
		h.Helper.SendUnauthorizedError(c, "User not found in context", h.Helper.EmptyJsonMap())
		return
	}

	user, err := h.authService.GetUserByID(identity.UserID)
	if err != nil {
		h.fail(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Profile loaded", gin.H{
		"user":           user,
		"effective_role": identity.Role,
	})
}

func (h *APIHandler) GetMovies(c *gin.Context) {
	var params models.MovieListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		h.Helper.SendBadRequest(c, "Error ", err.Error())
		return
	}
	params.Normalize()

	movies, total, err := h.catalog.ListMovies(params)
	if err != nil {
		h.fail(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Movies loaded", gin.H{
		"movies": movies,
		"paging": h.Helper.GeneratePaging(c, params.Limit, params.Page, int(total)),
	})
}

func (h *APIHandler) GetMovie(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		h.Helper.SendNotFoundError(c, "movie not found", h.Helper.EmptyJsonMap())
		return
	}

	details, err := h.catalog.GetMovieDetails(id)
	if err != nil {
		h.fail(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Movie loaded", details)
}

func (h *APIHandler) CreateMovie(c *gin.Context) {
	var req models.MovieRequest
	if !h.bind(c, &req) {
		return
	}

	movie, err := h.catalog.AddMovie(middleware.CurrentIdentity(c), req)
	if err != nil {
		h.fail(c, err)
		return
	}

	h.Helper.SendCreated(c, "Movie created", movie)
}

func (h *APIHandler) RateMovie(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		h.Helper.SendNotFoundError(c, "movie not found", h.Helper.EmptyJsonMap())
		return
	}
	var req models.RateRequest
	if !h.bind(c, &req) {
		return
	}

	rating, err := h.catalog.RateMovie(middleware.CurrentIdentity(c), id, req.Score)
	if err != nil {
		h.fail(c, err)
		return
	}

	h.Helper.SendCreated(c, "Rating saved", rating)
}

func (h *APIHandler) CommentMovie(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		h.Helper.SendNotFoundError(c, "movie not found", h.Helper.EmptyJsonMap())
		return
	}
	var req models.CommentRequest
	if !h.bind(c, &req) {
		return
	}

	comment, err := h.catalog.CommentMovie(middleware.CurrentIdentity(c), id, req.Text)
	if err != nil {
		h.fail(c, err)
		return
	}

	h.Helper.SendCreated(c, "Comment saved", comment)
}
