package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"regexp"
	"strconv"
	"strings"

	"aihub/internal/delivery/http/helpers"
	"aihub/internal/domain"
)

// slugRegex matches lowercase URL slugs (letters, digits, hyphens).
var slugRegex = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// dateRegex matches a YYYY-MM-DD calendar date.
var dateRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// clockRegex matches an HH:MM time of day.
var clockRegex = regexp.MustCompile(`^\d{2}:\d{2}$`)

// AgendaItemRequest is one agenda entry in an event create/update body.
// Sort order follows array position.
type AgendaItemRequest struct {
	Title       domain.Bilingual  `json:"title"`
	Description *domain.Bilingual `json:"description"`
	TimeSlot    string            `json:"timeSlot"`
}

// EventRequest is the request body for POST /admin/events and PUT /admin/events/{id}.
type EventRequest struct {
	Slug                 string              `json:"slug"`
	Title                domain.Bilingual    `json:"title"`
	Type                 string              `json:"type"`
	Subtitle             *domain.Bilingual   `json:"subtitle"`
	Description          domain.Bilingual    `json:"description"`
	TargetAudience       *domain.Bilingual   `json:"targetAudience"`
	Date                 string              `json:"date"`
	StartTime            string              `json:"startTime"`
	EndTime              string              `json:"endTime"`
	Venue                domain.Venue        `json:"venue"`
	RegistrationDeadline string              `json:"registrationDeadline"`
	RegistrationURL      string              `json:"registrationUrl"`
	QRCodeURL            string              `json:"qrCodeUrl"`
	BannerImage          string              `json:"bannerImage"`
	Status               string              `json:"status"`
	MaxAttendees         *int                `json:"maxAttendees"`
	IsFeatured           bool                `json:"isFeatured"`
	Agenda               []AgendaItemRequest `json:"agenda"`
}

// Validate implements Validator.
func (e EventRequest) Validate() []string {
	var errs []string
	if e.Slug == "" {
		errs = append(errs, "slug is required")
	} else if !slugRegex.MatchString(e.Slug) {
		errs = append(errs, "slug must contain only lowercase letters, digits, and hyphens")
	}
	if e.Title.Vi == "" && e.Title.En == "" {
		errs = append(errs, "title is required in at least one language")
	}
	if e.Type == "" {
		errs = append(errs, "type is required")
	} else if !domain.ValidEventType(e.Type) {
		errs = append(errs, "type must be one of conference, workshop, forum, symposium, seminar")
	}
	if e.Date == "" {
		errs = append(errs, "date is required")
	} else if !dateRegex.MatchString(e.Date) {
		errs = append(errs, "date must be in YYYY-MM-DD format")
	}
	if e.StartTime != "" && !clockRegex.MatchString(e.StartTime) {
		errs = append(errs, "startTime must be in HH:MM format")
	}
	if e.EndTime != "" && !clockRegex.MatchString(e.EndTime) {
		errs = append(errs, "endTime must be in HH:MM format")
	}
	if e.RegistrationDeadline != "" && !dateRegex.MatchString(e.RegistrationDeadline) {
		errs = append(errs, "registrationDeadline must be in YYYY-MM-DD format")
	}
	if e.Status != "" && !domain.ValidEventStatus(e.Status) {
		errs = append(errs, "status must be one of draft, published, upcoming, past, cancelled")
	}
	if e.MaxAttendees != nil && *e.MaxAttendees < 1 {
		errs = append(errs, "maxAttendees must be positive")
	}
	for i, item := range e.Agenda {
		if item.Title.Vi == "" && item.Title.En == "" {
			errs = append(errs, "agenda["+strconv.Itoa(i)+"].title is required in at least one language")
		}
	}
	return errs
}

// toDomain converts the request into a domain event. Agenda sort order is
// assigned from array position.
func (e EventRequest) toDomain() *domain.Event {
	status := e.Status
	if status == "" {
		status = domain.EventStatusDraft
	}
	event := &domain.Event{
		Slug:                 e.Slug,
		Title:                e.Title,
		Type:                 e.Type,
		Subtitle:             e.Subtitle,
		Description:          e.Description,
		TargetAudience:       e.TargetAudience,
		Date:                 e.Date,
		StartTime:            e.StartTime,
		EndTime:              e.EndTime,
		Venue:                e.Venue,
		RegistrationDeadline: e.RegistrationDeadline,
		RegistrationURL:      e.RegistrationURL,
		QRCodeURL:            e.QRCodeURL,
		BannerImage:          e.BannerImage,
		Status:               status,
		MaxAttendees:         e.MaxAttendees,
		IsFeatured:           e.IsFeatured,
	}
	for i, item := range e.Agenda {
		event.Agenda = append(event.Agenda, domain.AgendaItem{
			SortOrder:   i,
			Title:       item.Title,
			Description: item.Description,
			TimeSlot:    item.TimeSlot,
		})
	}
	return event
}

// ListEventsSuccessResponse is the success response envelope for GET /events (200).
type ListEventsSuccessResponse struct {
	Data  []*domain.Event   `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// GetEventSuccessResponse is the success response envelope for GET /events/{slug} (200).
type GetEventSuccessResponse struct {
	Data  *domain.Event     `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// SeedEventsResponse is the data payload for POST /events/seed (200).
type SeedEventsResponse struct {
	Created []string `json:"created"`
}

// DeleteResponse is the data payload for delete endpoints.
type DeleteResponse struct {
	Status string `json:"status"`
}

type EventController struct {
	Logger  *slog.Logger
	Service domain.EventService
}

func NewEventController(logger *slog.Logger, svc domain.EventService) *EventController {
	return &EventController{Logger: logger, Service: svc}
}

// List godoc
// @Summary List events
// @Description Returns events with time-resolved status. Filters: status (stored status, "all" or empty for no filter; "upcoming" selects the time-aware upcoming listing), featured=true (featured published/upcoming events, default limit 3), upcoming=true (published/upcoming events from today onward, soonest first, default limit 10), limit.
// @Tags events
// @Produce json
// @Param status query string false "Status filter (draft, published, upcoming, past, cancelled, all)"
// @Param featured query bool false "Only featured published/upcoming events"
// @Param upcoming query bool false "Only published/upcoming events dated today or later"
// @Param limit query int false "Maximum number of events"
// @Success 200 {object} controllers.ListEventsSuccessResponse "data is an array of events"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events [get]
func (c *EventController) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := domain.EventFilter{
		Status:       strings.TrimSpace(q.Get("status")),
		FeaturedOnly: q.Get("featured") == "true",
		UpcomingOnly: q.Get("upcoming") == "true",
	}
	if filter.Status != "" && filter.Status != "all" && !domain.ValidEventStatus(filter.Status) {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "invalid status filter")
		return
	}
	// status=upcoming means "what is coming up", not the stored status value:
	// published and upcoming events dated today or later, soonest first.
	if filter.Status == domain.EventStatusUpcoming {
		filter.Status = ""
		filter.UpcomingOnly = true
	}
	if s := q.Get("limit"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v < 1 {
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "limit must be a positive integer")
			return
		}
		filter.Limit = v
	}
	if filter.Limit == 0 {
		if filter.UpcomingOnly {
			filter.Limit = 10
		} else if filter.FeaturedOnly {
			filter.Limit = 3
		}
	}
	events, err := c.Service.List(r.Context(), filter)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	if events == nil {
		events = []*domain.Event{}
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, events)
}

// GetBySlug godoc
// @Summary Get an event by slug
// @Description Returns a single event with its agenda and time-resolved status.
// @Tags events
// @Produce json
// @Param slug path string true "Event slug"
// @Success 200 {object} controllers.GetEventSuccessResponse "data contains the event"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{slug} [get]
func (c *EventController) GetBySlug(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")
	if slug == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing slug")
		return
	}
	event, err := c.Service.GetBySlug(r.Context(), slug)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "event not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, event)
}

// Seed godoc
// @Summary Seed canonical events
// @Description Inserts the two canonical consortium events when they are absent. Idempotent: events that already exist are skipped.
// @Tags events
// @Produce json
// @Success 200 {object} helpers.APIResponse "data contains the IDs of created events"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/seed [post]
func (c *EventController) Seed(w http.ResponseWriter, r *http.Request) {
	created, err := c.Service.SeedIfEmpty(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	if created == nil {
		created = []string{}
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, SeedEventsResponse{Created: created})
}

// AdminList godoc
// @Summary List all events (admin)
// @Description Returns all events including drafts, with time-resolved status.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} controllers.ListEventsSuccessResponse "data is an array of events"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /admin/events [get]
func (c *EventController) AdminList(w http.ResponseWriter, r *http.Request) {
	events, err := c.Service.List(r.Context(), domain.EventFilter{Status: "all"})
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	if events == nil {
		events = []*domain.Event{}
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, events)
}

// AdminGet godoc
// @Summary Get an event by ID (admin)
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event ID (UUID)"
// @Success 200 {object} controllers.GetEventSuccessResponse "data contains the event"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /admin/events/{id} [get]
func (c *EventController) AdminGet(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing id")
		return
	}
	event, err := c.Service.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "event not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, event)
}

// Create godoc
// @Summary Create an event (admin)
// @Description Creates an event with its agenda. Slug must be unique; status defaults to draft when omitted.
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body EventRequest true "Event data"
// @Success 201 {object} controllers.GetEventSuccessResponse "data contains the created event"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict (slug taken)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /admin/events [post]
func (c *EventController) Create(w http.ResponseWriter, r *http.Request) {
	var req EventRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	event, err := c.Service.Create(r.Context(), req.toDomain())
	if err != nil {
		if errors.Is(err, domain.ErrSlugTaken) || errors.Is(err, domain.ErrConflict) {
			helpers.WriteJSONError(w, http.StatusConflict, helpers.ErrCodeConflict, "an event with that slug already exists")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, event)
}

// Update godoc
// @Summary Update an event (admin)
// @Description Replaces the event's content and agenda. The agenda is replaced wholesale with the submitted items.
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event ID (UUID)"
// @Param body body EventRequest true "Event data"
// @Success 200 {object} controllers.GetEventSuccessResponse "data contains the updated event"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict (slug taken)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /admin/events/{id} [put]
func (c *EventController) Update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing id")
		return
	}
	var req EventRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	event := req.toDomain()
	event.ID = id
	updated, err := c.Service.Update(r.Context(), event)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "event not found")
			return
		}
		if errors.Is(err, domain.ErrSlugTaken) || errors.Is(err, domain.ErrConflict) {
			helpers.WriteJSONError(w, http.StatusConflict, helpers.ErrCodeConflict, "an event with that slug already exists")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, updated)
}

// Delete godoc
// @Summary Delete an event (admin)
// @Description Deletes an event. Agenda items cascade; registrations are kept.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event ID (UUID)"
// @Success 200 {object} helpers.APIResponse "data contains status"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /admin/events/{id} [delete]
func (c *EventController) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing id")
		return
	}
	if err := c.Service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "event not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, DeleteResponse{Status: "deleted"})
}
