package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sydoni/sydoni-drive/internal/utils"
	"github.com/sydoni/sydoni-drive/services/universities"
)

// UniversityHandler handles HTTP requests for the university directory
type UniversityHandler struct {
	directory universities.Directory
}

// NewUniversityHandler creates a new university HTTP handler
func NewUniversityHandler(directory universities.Directory) *UniversityHandler {
	return &UniversityHandler{directory: directory}
}

// RegisterRoutes registers the university API routes
func (h *UniversityHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/universities", h.List)
}

// List returns every registered university
func (h *UniversityHandler) List(c echo.Context) error {
	all, err := h.directory.List(c.Request().Context())
	if err != nil {
		return utils.InternalServerErrorResponse(c, "Failed to list universities: "+err.Error())
	}
	return utils.SuccessResponse(c, http.StatusOK, "Universities", all)
}
