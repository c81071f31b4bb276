package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"aihub/internal/delivery/http/helpers"
	"aihub/internal/domain"
)

type TeamController struct {
	Logger  *slog.Logger
	Service domain.TeamService
}

func NewTeamController(logger *slog.Logger, svc domain.TeamService) *TeamController {
	return &TeamController{Logger: logger, Service: svc}
}

// List godoc
// @Summary List team members
// @Description Returns the public team page entries, core members first.
// @Tags team
// @Produce json
// @Success 200 {object} helpers.APIResponse "data is an array of team members"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /team [get]
func (c *TeamController) List(w http.ResponseWriter, r *http.Request) {
	members, err := c.Service.List(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	if members == nil {
		members = []*domain.TeamMember{}
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, members)
}

// GetByKey godoc
// @Summary Get a team member by key
// @Tags team
// @Produce json
// @Param memberKey path string true "Stable member key"
// @Success 200 {object} helpers.APIResponse "data contains the team member"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /team/{memberKey} [get]
func (c *TeamController) GetByKey(w http.ResponseWriter, r *http.Request) {
	key := r.PathValue("memberKey")
	if key == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing memberKey")
		return
	}
	member, err := c.Service.GetByKey(r.Context(), key)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "team member not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, member)
}
