package domain

import (
	"context"
	"time"
)

// Registration status values. New registrations are created confirmed;
// pending exists in the enum for admin-driven workflows.
const (
	RegistrationStatusPending   = "pending"
	RegistrationStatusConfirmed = "confirmed"
	RegistrationStatusCancelled = "cancelled"
)

// ValidRegistrationStatus reports whether s is a known registration status.
func ValidRegistrationStatus(s string) bool {
	switch s {
	case RegistrationStatusPending, RegistrationStatusConfirmed, RegistrationStatusCancelled:
		return true
	}
	return false
}

// Organization type values accepted on registration.
const (
	OrgTypeUniversity      = "university"
	OrgTypeTechCompany     = "tech_company"
	OrgTypeGovernmentOther = "government_other"
)

// ValidOrganizationType reports whether t is a known organization type.
func ValidOrganizationType(t string) bool {
	switch t {
	case OrgTypeUniversity, OrgTypeTechCompany, OrgTypeGovernmentOther:
		return true
	}
	return false
}

// Registration is one applicant's registration for an event. At most one
// non-cancelled registration may exist per (event, email) pair; the check
// is an application-level lookup, not a database constraint.
// swagger:model Registration
type Registration struct {
	ID               string    `json:"id"`
	EventID          string    `json:"eventId"`
	FullName         string    `json:"fullName"`
	Email            string    `json:"email"`
	Phone            string    `json:"phone,omitempty"`
	Organization     string    `json:"organization"`
	Role             string    `json:"role,omitempty"`
	OrganizationType string    `json:"organizationType"`
	Suggestions      string    `json:"suggestions,omitempty"`
	Status           string    `json:"status"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// Applicant carries the fields submitted on a registration attempt.
type Applicant struct {
	FullName         string
	Email            string
	Phone            string
	Organization     string
	Role             string
	OrganizationType string
	Suggestions      string
}

// RegistrationCheck is the result of a registration lookup by email.
type RegistrationCheck struct {
	Registered bool   `json:"registered"`
	Status     string `json:"status,omitempty"`
}

// RegistrationRepository defines storage operations for registrations.
type RegistrationRepository interface {
	Create(ctx context.Context, reg *Registration) error
	GetByID(ctx context.Context, id string) (*Registration, error)
	// GetByEventAndEmail matches the email exactly; callers lowercase it.
	GetByEventAndEmail(ctx context.Context, eventID, email string) (*Registration, error)
	ListByEvent(ctx context.Context, eventID string) ([]*Registration, error)
	CountConfirmed(ctx context.Context, eventID string) (int, error)
	Update(ctx context.Context, reg *Registration) error
	Delete(ctx context.Context, id string) error
	CountAll(ctx context.Context) (int, error)
}

// RegistrationPolicy configures the eligibility gate.
type RegistrationPolicy struct {
	// UseEffectiveStatus gates eligibility on the time-resolved status
	// instead of the stored one. Off by default: an event whose stored
	// status is still published stays open past its end time.
	UseEffectiveStatus bool
	// AllowReactivationOverCapacity lets a cancelled registration be
	// reactivated without re-checking capacity. On by default.
	AllowReactivationOverCapacity bool
}

// DefaultRegistrationPolicy reproduces the original site's behavior.
func DefaultRegistrationPolicy() RegistrationPolicy {
	return RegistrationPolicy{
		UseEffectiveStatus:            false,
		AllowReactivationOverCapacity: true,
	}
}

// RegistrationService runs the eligibility gate and owns admin mutations
// on registrations.
type RegistrationService interface {
	// Register validates the applicant against event state and existing
	// registrations, then persists. A previously cancelled registration
	// for the same (event, email) pair is reactivated in place.
	Register(ctx context.Context, eventID string, applicant Applicant) (*Registration, error)
	Check(ctx context.Context, eventID, email string) (*RegistrationCheck, error)
	CountConfirmed(ctx context.Context, eventID string) (int, error)
	ListByEvent(ctx context.Context, eventID string) ([]*Registration, error)
	UpdateStatus(ctx context.Context, id, status string) (*Registration, error)
	Delete(ctx context.Context, id string) error
}
