package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"aihub/internal/delivery/http/helpers"
	"aihub/internal/domain"
)

// SubscribeRequest is the request body for POST /newsletter/subscribe.
type SubscribeRequest struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// Validate implements Validator.
func (s SubscribeRequest) Validate() []string {
	var errs []string
	email := strings.TrimSpace(strings.ToLower(s.Email))
	if email == "" {
		errs = append(errs, "email is required")
	} else if !emailRegex.MatchString(email) {
		errs = append(errs, "invalid email format")
	}
	return errs
}

type NewsletterController struct {
	Logger  *slog.Logger
	Service domain.NewsletterService
}

func NewNewsletterController(logger *slog.Logger, svc domain.NewsletterService) *NewsletterController {
	return &NewsletterController{Logger: logger, Service: svc}
}

// Subscribe godoc
// @Summary Subscribe to the newsletter
// @Description Adds the email to the newsletter. A previously unsubscribed email is reactivated; an active subscription fails with 409.
// @Tags newsletter
// @Accept json
// @Produce json
// @Param body body SubscribeRequest true "Subscription data"
// @Success 201 {object} helpers.APIResponse "data contains the subscriber"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict (already subscribed)"
// @Failure 429 {object} helpers.APIResponse "error.code: too_many_requests"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /newsletter/subscribe [post]
func (c *NewsletterController) Subscribe(w http.ResponseWriter, r *http.Request) {
	var req SubscribeRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	sub, err := c.Service.Subscribe(r.Context(), strings.TrimSpace(strings.ToLower(req.Email)), strings.TrimSpace(req.Name))
	if err != nil {
		if errors.Is(err, domain.ErrAlreadySubscribed) {
			helpers.WriteJSONError(w, http.StatusConflict, helpers.ErrCodeConflict, "this email is already subscribed")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, sub)
}

// AdminList godoc
// @Summary List newsletter subscribers (admin)
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} helpers.APIResponse "data is an array of subscribers"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /admin/newsletter [get]
func (c *NewsletterController) AdminList(w http.ResponseWriter, r *http.Request) {
	subs, err := c.Service.List(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	if subs == nil {
		subs = []*domain.NewsletterSubscriber{}
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, subs)
}

// Delete godoc
// @Summary Delete a newsletter subscriber (admin)
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Subscriber ID (UUID)"
// @Success 200 {object} helpers.APIResponse "data contains status"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /admin/newsletter/{id} [delete]
func (c *NewsletterController) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing id")
		return
	}
	if err := c.Service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "subscriber not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, DeleteResponse{Status: "deleted"})
}
