package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"regexp"
	"strings"

	"aihub/internal/delivery/http/helpers"
	"aihub/internal/domain"
)

// emailRegex matches a simple email format (local@domain with at least one dot in domain).
var emailRegex = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// RegisterRequest is the request body for POST /events/{eventID}/registrations.
type RegisterRequest struct {
	FullName         string `json:"fullName"`
	Email            string `json:"email"`
	Phone            string `json:"phone"`
	Organization     string `json:"organization"`
	Role             string `json:"role"`
	OrganizationType string `json:"organizationType"`
	Suggestions      string `json:"suggestions"`
}

// Validate implements Validator.
func (r RegisterRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(r.FullName) == "" {
		errs = append(errs, "fullName is required")
	}
	email := strings.TrimSpace(strings.ToLower(r.Email))
	if email == "" {
		errs = append(errs, "email is required")
	} else if !emailRegex.MatchString(email) {
		errs = append(errs, "invalid email format")
	}
	if strings.TrimSpace(r.Organization) == "" {
		errs = append(errs, "organization is required")
	}
	if r.OrganizationType == "" {
		errs = append(errs, "organizationType is required")
	} else if !domain.ValidOrganizationType(r.OrganizationType) {
		errs = append(errs, "organizationType must be one of university, tech_company, government_other")
	}
	return errs
}

// RegistrationSuccessResponse is the success response envelope for POST /events/{eventID}/registrations (201).
type RegistrationSuccessResponse struct {
	Data  *domain.Registration `json:"data"`
	Error *helpers.APIError    `json:"error"`
}

// RegistrationCountResponse is the data payload for GET /events/{eventID}/registrations/count (200).
type RegistrationCountResponse struct {
	Count int `json:"count"`
}

type RegistrationController struct {
	Logger  *slog.Logger
	Service domain.RegistrationService
}

func NewRegistrationController(logger *slog.Logger, svc domain.RegistrationService) *RegistrationController {
	return &RegistrationController{Logger: logger, Service: svc}
}

// Register godoc
// @Summary Register for an event
// @Description Registers an applicant for the event. Fails when the event is closed, the deadline has passed, the email is already registered, or the event is fully booked. A previously cancelled registration for the same email is reactivated.
// @Tags registrations
// @Accept json
// @Produce json
// @Param eventID path string true "Event ID (UUID)"
// @Param body body RegisterRequest true "Applicant data"
// @Success 201 {object} controllers.RegistrationSuccessResponse "data contains the registration"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request (closed, deadline passed, already registered, or fully booked)"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 429 {object} helpers.APIResponse "error.code: too_many_requests"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID}/registrations [post]
func (c *RegistrationController) Register(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	if eventID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing eventID")
		return
	}
	var req RegisterRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	applicant := domain.Applicant{
		FullName:         strings.TrimSpace(req.FullName),
		Email:            strings.TrimSpace(strings.ToLower(req.Email)),
		Phone:            strings.TrimSpace(req.Phone),
		Organization:     strings.TrimSpace(req.Organization),
		Role:             strings.TrimSpace(req.Role),
		OrganizationType: req.OrganizationType,
		Suggestions:      strings.TrimSpace(req.Suggestions),
	}
	reg, err := c.Service.Register(r.Context(), eventID, applicant)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "event not found")
		case errors.Is(err, domain.ErrRegistrationClosed):
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "registration is closed for this event")
		case errors.Is(err, domain.ErrDeadlinePassed):
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "registration deadline has passed")
		case errors.Is(err, domain.ErrAlreadyRegistered):
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "this email is already registered for the event")
		case errors.Is(err, domain.ErrFullyBooked):
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "the event is fully booked")
		default:
			c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
			helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		}
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, reg)
}

// Check godoc
// @Summary Check a registration by email
// @Description Reports whether the email is registered for the event and, if so, the registration status.
// @Tags registrations
// @Produce json
// @Param eventID path string true "Event ID (UUID)"
// @Param email query string true "Email to check"
// @Success 200 {object} helpers.APIResponse "data contains registered and status"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID}/registrations/check [get]
func (c *RegistrationController) Check(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	email := strings.TrimSpace(strings.ToLower(r.URL.Query().Get("email")))
	if eventID == "" || email == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing eventID or email")
		return
	}
	check, err := c.Service.Check(r.Context(), eventID, email)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, check)
}

// Count godoc
// @Summary Count confirmed registrations
// @Description Returns the number of confirmed registrations for the event.
// @Tags registrations
// @Produce json
// @Param eventID path string true "Event ID (UUID)"
// @Success 200 {object} helpers.APIResponse "data contains count"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID}/registrations/count [get]
func (c *RegistrationController) Count(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	if eventID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing eventID")
		return
	}
	count, err := c.Service.CountConfirmed(r.Context(), eventID)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, RegistrationCountResponse{Count: count})
}

// AdminListByEvent godoc
// @Summary List registrations for an event (admin)
// @Description Returns all registrations for the event, newest first.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID (UUID)"
// @Success 200 {object} helpers.APIResponse "data is an array of registrations"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /admin/events/{eventID}/registrations [get]
func (c *RegistrationController) AdminListByEvent(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	if eventID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing eventID")
		return
	}
	regs, err := c.Service.ListByEvent(r.Context(), eventID)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	if regs == nil {
		regs = []*domain.Registration{}
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, regs)
}

// UpdateStatus godoc
// @Summary Update a registration's status (admin)
// @Description Sets the registration status to pending, confirmed, or cancelled.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Registration ID (UUID)"
// @Param status query string true "New status (pending, confirmed, cancelled)"
// @Success 200 {object} controllers.RegistrationSuccessResponse "data contains the updated registration"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /admin/registrations/{id}/status [patch]
func (c *RegistrationController) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	status := r.URL.Query().Get("status")
	if id == "" || status == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing id or status")
		return
	}
	reg, err := c.Service.UpdateStatus(r.Context(), id, status)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
			return
		}
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "registration not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, reg)
}

// Delete godoc
// @Summary Delete a registration (admin)
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Registration ID (UUID)"
// @Success 200 {object} helpers.APIResponse "data contains status"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /admin/registrations/{id} [delete]
func (c *RegistrationController) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing id")
		return
	}
	if err := c.Service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "registration not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, DeleteResponse{Status: "deleted"})
}
