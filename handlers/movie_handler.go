package handlers

import (
	"net/http"
	"strconv"

	"popcornhour/helper"
	"popcornhour/middleware"
	"popcornhour/models"
	"popcornhour/services"

	"github.com/gin-gonic/gin"
)

type MovieHandler struct {
	catalog services.CatalogService
	Helper  *helper.HTTPHelper
}

func NewMovieHandler(catalog services.CatalogService, h *helper.HTTPHelper) *MovieHandler {
	return &MovieHandler{catalog: catalog, Helper: h}
}

func movieURL(id uint) string {
	return "/movie/" + strconv.FormatUint(uint64(id), 10)
}

func (h *MovieHandler) Index(c *gin.Context) {
	var params models.MovieListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		params = models.MovieListParams{}
	}
	params.Normalize()

	movies, total, err := h.catalog.ListMovies(params)
	if err != nil {
		renderError(c, h.Helper, err, "/")
		return
	}

	nextPage := 0
	if int64(params.Page*params.Limit) < total {
		nextPage = params.Page + 1
	}
	render(c, http.StatusOK, "index.html", gin.H{
		"Movies":   movies,
		"NextPage": nextPage,
	})
}

func (h *MovieHandler) Show(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		renderError(c, h.Helper, models.ErrorNotFound{Message: "movie not found"}, "")
		return
	}

	details, err := h.catalog.GetMovieDetails(id)
	if err != nil {
		renderError(c, h.Helper, err, "")
		return
	}
	render(c, http.StatusOK, "movie.html", gin.H{
		"Title":   details.Movie.Title,
		"Details": details,
	})
}

func (h *MovieHandler) Dashboard(c *gin.Context) {
	dashboard, err := h.catalog.Dashboard(middleware.CurrentIdentity(c))
	if err != nil {
		renderError(c, h.Helper, err, "/dashboard")
		return
	}
	render(c, http.StatusOK, "dashboard.html", gin.H{
		"Title":     "Dashboard",
		"Dashboard": dashboard,
	})
}

func (h *MovieHandler) Rate(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		renderError(c, h.Helper, models.ErrorNotFound{Message: "movie not found"}, "")
		return
	}

	var req models.RateRequest
	if err := c.ShouldBind(&req); err != nil {
		redirectWithFlash(c, movieURL(id), models.ErrInvalidScore.Error())
		return
	}

	_, err := h.catalog.RateMovie(middleware.CurrentIdentity(c), id, req.Score)
	if err != nil {
		h.interactionFailed(c, id, err)
		return
	}
	redirectWithFlash(c, movieURL(id), "Thanks for rating!")
}

func (h *MovieHandler) Comment(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		renderError(c, h.Helper, models.ErrorNotFound{Message: "movie not found"}, "")
		return
	}

	var req models.CommentRequest
	if err := c.ShouldBind(&req); err != nil {
		redirectWithFlash(c, movieURL(id), "Your comment could not be read, please try again.")
		return
	}

	_, err := h.catalog.CommentMovie(middleware.CurrentIdentity(c), id, req.Text)
	if err != nil {
		h.interactionFailed(c, id, err)
		return
	}
	redirectWithFlash(c, movieURL(id), "Comment posted.")
}

// interactionFailed sends validation problems back to the movie page as a
// flash and shows everything else on the error page.
func (h *MovieHandler) interactionFailed(c *gin.Context, id uint, err error) {
	if h.Helper.GetStatusCode(err) == http.StatusBadRequest {
		redirectWithFlash(c, movieURL(id), err.Error())
		return
	}
	renderError(c, h.Helper, err, movieURL(id))
}

func (h *MovieHandler) AddMoviePage(c *gin.Context) {
	h.renderForm(c, http.StatusOK, "Add movie", "/add_movie", models.MovieRequest{}, nil)
}

func (h *MovieHandler) AddMovie(c *gin.Context) {
	req, fieldErrors := h.bindMovie(c)
	if fieldErrors != nil {
		h.renderForm(c, http.StatusBadRequest, "Add movie", "/add_movie", req, fieldErrors)
		return
	}

	movie, err := h.catalog.AddMovie(middleware.CurrentIdentity(c), req)
	if err != nil {
		renderError(c, h.Helper, err, "/add_movie")
		return
	}
	redirectWithFlash(c, movieURL(movie.ID), "Movie added.")
}

func (h *MovieHandler) EditMoviePage(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		renderError(c, h.Helper, models.ErrorNotFound{Message: "movie not found"}, "/admin")
		return
	}

	movie, err := h.catalog.GetMovie(id)
	if err != nil {
		renderError(c, h.Helper, err, "/admin")
		return
	}
	form := models.MovieRequest{
		Title:      movie.Title,
		Synopsis:   movie.Synopsis,
		Year:       movie.Year,
		Duration:   movie.Duration,
		Genre:      movie.Genre,
		CoverImage: movie.CoverImage,
	}
	h.renderForm(c, http.StatusOK, "Edit movie", c.Request.URL.Path, form, nil)
}

func (h *MovieHandler) EditMovie(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		renderError(c, h.Helper, models.ErrorNotFound{Message: "movie not found"}, "/admin")
		return
	}

	req, fieldErrors := h.bindMovie(c)
	if fieldErrors != nil {
		h.renderForm(c, http.StatusBadRequest, "Edit movie", c.Request.URL.Path, req, fieldErrors)
		return
	}

	movie, err := h.catalog.EditMovie(middleware.CurrentIdentity(c), id, req)
	if err != nil {
		renderError(c, h.Helper, err, c.Request.URL.Path)
		return
	}
	redirectWithFlash(c, movieURL(movie.ID), "Movie updated.")
}

func (h *MovieHandler) DeleteMovie(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		renderError(c, h.Helper, models.ErrorNotFound{Message: "movie not found"}, "/admin")
		return
	}

	if err := h.catalog.DeleteMovie(middleware.CurrentIdentity(c), id); err != nil {
		renderError(c, h.Helper, err, "/admin")
		return
	}
	redirectWithFlash(c, "/admin", "Movie deleted.")
}

func (h *MovieHandler) bindMovie(c *gin.Context) (models.MovieRequest, map[string][]string) {
	var req models.MovieRequest
	if err := c.ShouldBind(&req); err != nil {
		return req, validationErrors(h.Helper, err)
	}
	if err := h.Helper.Validate.Struct(req); err != nil {
		return req, validationErrors(h.Helper, err)
	}
	return req, nil
}

func (h *MovieHandler) renderForm(c *gin.Context, status int, title, action string, form models.MovieRequest, fieldErrors map[string][]string) {
	if fieldErrors == nil {
		fieldErrors = map[string][]string{}
	}
	render(c, status, "movie_form.html", gin.H{
		"Title":  title,
		"Action": action,
		"Form":   form,
		"Errors": fieldErrors,
	})
}
