package handlers

import (
	"net/http"

	"popcornhour/helper"
	"popcornhour/middleware"
	"popcornhour/models"
	"popcornhour/services"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	admin   services.AdminService
	catalog services.CatalogService
	Helper  *helper.HTTPHelper
}

func NewAdminHandler(admin services.AdminService, catalog services.CatalogService, h *helper.HTTPHelper) *AdminHandler {
	return &AdminHandler{admin: admin, catalog: catalog, Helper: h}
}

func (h *AdminHandler) Index(c *gin.Context) {
	users, err := h.admin.ListUsers(middleware.CurrentIdentity(c))
	if err != nil {
		renderError(c, h.Helper, err, "/admin")
		return
	}
	movies, _, err := h.catalog.ListMovies(models.MovieListParams{Page: 1, Limit: models.MaxPageSize})
	if err != nil {
		renderError(c, h.Helper, err, "/admin")
		return
	}

	render(c, http.StatusOK, "admin.html", gin.H{
		"Title":  "Administration",
		"Users":  users,
		"Movies": movies,
	})
}

func (h *AdminHandler) Promote(c *gin.Context) {
	h.changeUser(c, h.admin.PromoteUser, "User promoted to moderator.")
}

func (h *AdminHandler) Demote(c *gin.Context) {
	h.changeUser(c, h.admin.DemoteUser, "User demoted to standard.")
}

// DeleteUser removes the account with all of its ratings and comments. A
// storage failure leaves everything in place and offers a retry link.
func (h *AdminHandler) DeleteUser(c *gin.Context) {
	h.changeUser(c, h.admin.DeleteUser, "User deleted.")
}

func (h *AdminHandler) changeUser(c *gin.Context, op func(*models.Identity, uint) error, done string) {
	id, ok := parseID(c)
	if !ok {
		renderError(c, h.Helper, models.ErrorNotFound{Message: "user not found"}, "/admin")
		return
	}

	if err := op(middleware.CurrentIdentity(c), id); err != nil {
		renderError(c, h.Helper, err, "/admin")
		return
	}
	redirectWithFlash(c, "/admin", done)
}
