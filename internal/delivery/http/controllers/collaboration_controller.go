package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"aihub/internal/delivery/http/helpers"
	"aihub/internal/domain"
)

// CollaborationRequestBody is the request body for POST /collaborations.
type CollaborationRequestBody struct {
	Type         string `json:"type"`
	Name         string `json:"name"`
	Organization string `json:"organization"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Title        string `json:"title"`
	Description  string `json:"description"`
}

// Validate implements Validator.
func (c CollaborationRequestBody) Validate() []string {
	var errs []string
	if strings.TrimSpace(c.Type) == "" {
		errs = append(errs, "type is required")
	}
	if strings.TrimSpace(c.Name) == "" {
		errs = append(errs, "name is required")
	}
	if strings.TrimSpace(c.Organization) == "" {
		errs = append(errs, "organization is required")
	}
	email := strings.TrimSpace(strings.ToLower(c.Email))
	if email == "" {
		errs = append(errs, "email is required")
	} else if !emailRegex.MatchString(email) {
		errs = append(errs, "invalid email format")
	}
	if strings.TrimSpace(c.Title) == "" {
		errs = append(errs, "title is required")
	}
	if strings.TrimSpace(c.Description) == "" {
		errs = append(errs, "description is required")
	}
	return errs
}

type CollaborationController struct {
	Logger  *slog.Logger
	Service domain.CollaborationService
}

func NewCollaborationController(logger *slog.Logger, svc domain.CollaborationService) *CollaborationController {
	return &CollaborationController{Logger: logger, Service: svc}
}

// Submit godoc
// @Summary Submit a collaboration request
// @Description Stores a partnership proposal for admin review.
// @Tags collaborations
// @Accept json
// @Produce json
// @Param body body CollaborationRequestBody true "Collaboration proposal"
// @Success 201 {object} helpers.APIResponse "data contains the stored request"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 429 {object} helpers.APIResponse "error.code: too_many_requests"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /collaborations [post]
func (c *CollaborationController) Submit(w http.ResponseWriter, r *http.Request) {
	var req CollaborationRequestBody
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	proposal := &domain.CollaborationRequest{
		Type:         strings.TrimSpace(req.Type),
		Name:         strings.TrimSpace(req.Name),
		Organization: strings.TrimSpace(req.Organization),
		Email:        strings.TrimSpace(strings.ToLower(req.Email)),
		Phone:        strings.TrimSpace(req.Phone),
		Title:        strings.TrimSpace(req.Title),
		Description:  strings.TrimSpace(req.Description),
	}
	stored, err := c.Service.Submit(r.Context(), proposal)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, stored)
}

// AdminList godoc
// @Summary List collaboration requests (admin)
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} helpers.APIResponse "data is an array of requests"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /admin/collaborations [get]
func (c *CollaborationController) AdminList(w http.ResponseWriter, r *http.Request) {
	reqs, err := c.Service.List(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	if reqs == nil {
		reqs = []*domain.CollaborationRequest{}
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, reqs)
}

// MarkRead godoc
// @Summary Mark a collaboration request as read (admin)
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Request ID (UUID)"
// @Success 200 {object} helpers.APIResponse "data contains the updated request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /admin/collaborations/{id}/read [patch]
func (c *CollaborationController) MarkRead(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing id")
		return
	}
	req, err := c.Service.MarkRead(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "collaboration request not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, req)
}

// Delete godoc
// @Summary Delete a collaboration request (admin)
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Request ID (UUID)"
// @Success 200 {object} helpers.APIResponse "data contains status"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /admin/collaborations/{id} [delete]
func (c *CollaborationController) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing id")
		return
	}
	if err := c.Service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "collaboration request not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, DeleteResponse{Status: "deleted"})
}
