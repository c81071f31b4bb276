package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"aihub/internal/delivery/http/helpers"
	"aihub/internal/domain"
)

// ContactRequest is the request body for POST /contact.
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// Validate implements Validator.
func (c ContactRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(c.Name) == "" {
		errs = append(errs, "name is required")
	}
	email := strings.TrimSpace(strings.ToLower(c.Email))
	if email == "" {
		errs = append(errs, "email is required")
	} else if !emailRegex.MatchString(email) {
		errs = append(errs, "invalid email format")
	}
	if strings.TrimSpace(c.Message) == "" {
		errs = append(errs, "message is required")
	}
	return errs
}

type ContactController struct {
	Logger  *slog.Logger
	Service domain.ContactService
}

func NewContactController(logger *slog.Logger, svc domain.ContactService) *ContactController {
	return &ContactController{Logger: logger, Service: svc}
}

// Submit godoc
// @Summary Submit a contact message
// @Description Stores the message and notifies the site operators by email. The notification is best-effort; a mail failure does not fail the request.
// @Tags contact
// @Accept json
// @Produce json
// @Param body body ContactRequest true "Contact message"
// @Success 201 {object} helpers.APIResponse "data contains the stored message"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 429 {object} helpers.APIResponse "error.code: too_many_requests"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /contact [post]
func (c *ContactController) Submit(w http.ResponseWriter, r *http.Request) {
	var req ContactRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	msg := &domain.ContactMessage{
		Name:    strings.TrimSpace(req.Name),
		Email:   strings.TrimSpace(strings.ToLower(req.Email)),
		Subject: strings.TrimSpace(req.Subject),
		Message: strings.TrimSpace(req.Message),
	}
	stored, err := c.Service.Submit(r.Context(), msg)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, stored)
}

// AdminList godoc
// @Summary List contact messages (admin)
// @Description Returns contact messages, newest first. Pass unread=true to only return unread messages.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param unread query bool false "Only unread messages"
// @Success 200 {object} helpers.APIResponse "data is an array of messages"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /admin/contacts [get]
func (c *ContactController) AdminList(w http.ResponseWriter, r *http.Request) {
	unreadOnly := r.URL.Query().Get("unread") == "true"
	msgs, err := c.Service.List(r.Context(), unreadOnly)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	if msgs == nil {
		msgs = []*domain.ContactMessage{}
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, msgs)
}

// MarkRead godoc
// @Summary Mark a contact message as read (admin)
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Message ID (UUID)"
// @Success 200 {object} helpers.APIResponse "data contains the updated message"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /admin/contacts/{id}/read [patch]
func (c *ContactController) MarkRead(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing id")
		return
	}
	msg, err := c.Service.MarkRead(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "message not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, msg)
}

// Delete godoc
// @Summary Delete a contact message (admin)
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Message ID (UUID)"
// @Success 200 {object} helpers.APIResponse "data contains status"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /admin/contacts/{id} [delete]
func (c *ContactController) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing id")
		return
	}
	if err := c.Service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "message not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, DeleteResponse{Status: "deleted"})
}
