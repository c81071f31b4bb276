package domain

import (
	"context"
	"time"
)

// Bilingual is a fixed Vietnamese/English string pair. The site serves
// exactly these two locales, so no generic localization map is used.
type Bilingual struct {
	Vi string `json:"vi"`
	En string `json:"en"`
}

// Event type values.
const (
	EventTypeConference = "conference"
	EventTypeWorkshop   = "workshop"
	EventTypeForum      = "forum"
	EventTypeSymposium  = "symposium"
	EventTypeSeminar    = "seminar"
)

// ValidEventType reports whether t is a known event type.
func ValidEventType(t string) bool {
	switch t {
	case EventTypeConference, EventTypeWorkshop, EventTypeForum, EventTypeSymposium, EventTypeSeminar:
		return true
	}
	return false
}

// Stored event status values. Draft, cancelled, and past are manual
// overrides; published and upcoming are subject to time-based resolution.
const (
	EventStatusDraft     = "draft"
	EventStatusPublished = "published"
	EventStatusUpcoming  = "upcoming"
	EventStatusPast      = "past"
	EventStatusCancelled = "cancelled"
)

// ValidEventStatus reports whether s is a known stored status.
func ValidEventStatus(s string) bool {
	switch s {
	case EventStatusDraft, EventStatusPublished, EventStatusUpcoming, EventStatusPast, EventStatusCancelled:
		return true
	}
	return false
}

// Venue describes where an event takes place.
type Venue struct {
	Name          Bilingual `json:"name"`
	Address       string    `json:"address"`
	City          string    `json:"city"`
	GoogleMapsURL string    `json:"googleMapsUrl,omitempty"`
}

// AgendaItem is one ordered session entry of an event. Items are owned by
// the event and replaced wholesale on update.
type AgendaItem struct {
	ID          string     `json:"id"`
	EventID     string     `json:"-"`
	SortOrder   int        `json:"sortOrder"`
	Title       Bilingual  `json:"title"`
	Description *Bilingual `json:"description,omitempty"`
	TimeSlot    string     `json:"timeSlot,omitempty"`
	CreatedAt   time.Time  `json:"-"`
}

// Event is a consortium event with bilingual content and an ordered agenda.
// Date is a calendar date (YYYY-MM-DD); StartTime and EndTime are local
// times of day (HH:MM) with no timezone.
// swagger:model Event
type Event struct {
	ID                   string       `json:"id"`
	Slug                 string       `json:"slug"`
	Title                Bilingual    `json:"title"`
	Type                 string       `json:"type"`
	Subtitle             *Bilingual   `json:"subtitle,omitempty"`
	Description          Bilingual    `json:"description"`
	TargetAudience       *Bilingual   `json:"targetAudience,omitempty"`
	Date                 string       `json:"date"`
	StartTime            string       `json:"startTime"`
	EndTime              string       `json:"endTime"`
	Venue                Venue        `json:"venue"`
	RegistrationDeadline string       `json:"registrationDeadline,omitempty"`
	RegistrationURL      string       `json:"registrationUrl,omitempty"`
	QRCodeURL            string       `json:"qrCodeUrl,omitempty"`
	BannerImage          string       `json:"bannerImage,omitempty"`
	Status               string       `json:"status"`
	MaxAttendees         *int         `json:"maxAttendees,omitempty"`
	IsFeatured           bool         `json:"isFeatured"`
	Agenda               []AgendaItem `json:"agenda"`
	CreatedAt            time.Time    `json:"createdAt"`
	UpdatedAt            time.Time    `json:"updatedAt"`
}

// EventFilter narrows event listings.
type EventFilter struct {
	// Status filters on stored status when set ("all" and "" mean no filter).
	Status string
	// FeaturedOnly keeps only featured events in published/upcoming state.
	FeaturedOnly bool
	// UpcomingOnly keeps published/upcoming events dated today or later,
	// ordered by date ascending instead of descending.
	UpcomingOnly bool
	Limit        int
}

// EventRepository defines storage operations for events and their agendas.
// Slug uniqueness is enforced by the service, not the store.
type EventRepository interface {
	Create(ctx context.Context, event *Event) error
	GetByID(ctx context.Context, id string) (*Event, error)
	GetBySlug(ctx context.Context, slug string) (*Event, error)
	List(ctx context.Context, filter EventFilter) ([]*Event, error)
	Update(ctx context.Context, event *Event) error
	// ReplaceAgenda deletes all agenda rows for the event and inserts items.
	ReplaceAgenda(ctx context.Context, eventID string, items []AgendaItem) error
	// Delete removes the event; agenda rows cascade.
	Delete(ctx context.Context, id string) error
	CountAll(ctx context.Context) (int, error)
}

// EventService defines public reads and admin mutations for events.
type EventService interface {
	List(ctx context.Context, filter EventFilter) ([]*Event, error)
	GetBySlug(ctx context.Context, slug string) (*Event, error)
	GetByID(ctx context.Context, id string) (*Event, error)
	Create(ctx context.Context, event *Event) (*Event, error)
	Update(ctx context.Context, event *Event) (*Event, error)
	Delete(ctx context.Context, id string) error
	// SeedIfEmpty inserts the canonical seed events when they are absent.
	// Returns the IDs of events it created.
	SeedIfEmpty(ctx context.Context) ([]string, error)
}
