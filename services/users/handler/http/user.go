package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sydoni/sydoni-drive/internal/pkg/models"
	"github.com/sydoni/sydoni-drive/internal/utils"
	"github.com/sydoni/sydoni-drive/services/users"
)

// UserHandler handles HTTP requests for user operations
type UserHandler struct {
	userUC users.UserUC
}

// NewUserHandler creates a new user HTTP handler
func NewUserHandler(userUC users.UserUC) *UserHandler {
	return &UserHandler{userUC: userUC}
}

// RegisterRoutes registers the user API routes
func (h *UserHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/users", h.Register)
	e.POST("/users/login", h.Login)
	e.GET("/users", h.ListUsers)
	e.GET("/users/:email", h.GetUser)
	e.PUT("/users/:email/role", h.UpdateRole)
}

// Register handles the user registration request
func (h *UserHandler) Register(c echo.Context) error {
	var user models.User
	if err := c.Bind(&user); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}
	if user.Email == "" {
		return utils.BadRequestResponse(c, "email is required")
	}

	if err := h.userUC.Register(c.Request().Context(), &user); err != nil {
		switch {
		case errors.Is(err, users.ErrEmailTaken):
			return utils.ConflictResponse(c, err.Error())
		case errors.Is(err, users.ErrInvalidRole), errors.Is(err, users.ErrDriverInfo):
			return utils.BadRequestResponse(c, err.Error())
		default:
			return utils.InternalServerErrorResponse(c, "Failed to register user: "+err.Error())
		}
	}
	return utils.SuccessResponse(c, http.StatusCreated, "User registered successfully", user)
}

type loginRequest struct {
	Email string `json:"email"`
}

// Login handles the login request. No password is verified; email is the sole
// identity key.
func (h *UserHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	user, err := h.userUC.Login(c.Request().Context(), req.Email)
	if err != nil {
		if errors.Is(err, users.ErrUserNotFound) {
			return utils.NotFoundResponse(c, "Incorrect email")
		}
		return utils.InternalServerErrorResponse(c, "Failed to log in: "+err.Error())
	}
	return utils.SuccessResponse(c, http.StatusOK, "Login successful", user)
}

// GetUser retrieves a user profile
func (h *UserHandler) GetUser(c echo.Context) error {
	email := c.Param("email")

	user, err := h.userUC.GetByEmail(c.Request().Context(), email)
	if err != nil {
		if errors.Is(err, users.ErrUserNotFound) {
			return utils.NotFoundResponse(c, err.Error())
		}
		return utils.InternalServerErrorResponse(c, "Failed to load user: "+err.Error())
	}
	return utils.SuccessResponse(c, http.StatusOK, "User profile", user)
}

type updateRoleRequest struct {
	Role models.UserRole `json:"role"`
}

// UpdateRole switches a user's role
func (h *UserHandler) UpdateRole(c echo.Context) error {
	email := c.Param("email")

	var req updateRoleRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	if err := h.userUC.UpdateRole(c.Request().Context(), email, req.Role); err != nil {
		switch {
		case errors.Is(err, users.ErrUserNotFound):
			return utils.NotFoundResponse(c, err.Error())
		case errors.Is(err, users.ErrInvalidRole):
			return utils.BadRequestResponse(c, err.Error())
		default:
			return utils.InternalServerErrorResponse(c, "Failed to update role: "+err.Error())
		}
	}
	return utils.SuccessResponse(c, http.StatusOK, "Role updated successfully", nil)
}

// ListUsers returns every registered user
func (h *UserHandler) ListUsers(c echo.Context) error {
	all, err := h.userUC.ListUsers(c.Request().Context())
	if err != nil {
		return utils.InternalServerErrorResponse(c, "Failed to list users: "+err.Error())
	}
	return utils.SuccessResponse(c, http.StatusOK, "Registered users", all)
}
