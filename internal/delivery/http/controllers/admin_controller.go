package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"aihub/internal/delivery/http/helpers"
	"aihub/internal/domain"
)

type AdminController struct {
	Logger      *slog.Logger
	Stats       domain.AdminService
	AuthService domain.AuthService
}

func NewAdminController(logger *slog.Logger, stats domain.AdminService, auth domain.AuthService) *AdminController {
	return &AdminController{Logger: logger, Stats: stats, AuthService: auth}
}

// DashboardStats godoc
// @Summary Get dashboard statistics (admin)
// @Description Returns entity counts for the admin dashboard: contacts (total and unread), subscribers, events, registrations, users, and collaborations (total and unread).
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} helpers.APIResponse "data contains the counts"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /admin/stats [get]
func (c *AdminController) DashboardStats(w http.ResponseWriter, r *http.Request) {
	stats, err := c.Stats.DashboardStats(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, stats)
}

// ListUsers godoc
// @Summary List users (admin)
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} helpers.APIResponse "data is an array of users"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /admin/users [get]
func (c *AdminController) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := c.AuthService.ListUsers(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	if users == nil {
		users = []*domain.User{}
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, users)
}

// UpdateUserRole godoc
// @Summary Update a user's role (admin)
// @Description Sets the user's role to admin or member.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID (UUID)"
// @Param role query string true "New role (admin or member)"
// @Success 200 {object} helpers.APIResponse "data contains the updated user"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /admin/users/{id}/role [patch]
func (c *AdminController) UpdateUserRole(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	role := r.URL.Query().Get("role")
	if id == "" || role == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing id or role")
		return
	}
	user, err := c.AuthService.UpdateUserRole(r.Context(), id, role)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "role must be admin or member")
			return
		}
		if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrUserNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "user not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, user)
}
