package domain

import "errors"

// Sentinel errors shared across repositories and services.
var (
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrForbidden    = errors.New("forbidden")
	ErrInvalidInput = errors.New("invalid input")
)

// Sentinel errors for user and auth operations.
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// Sentinel errors for the registration eligibility gate. The registration
// service returns the first violation; controllers map each to a 4xx.
var (
	ErrRegistrationClosed = errors.New("registration is closed for this event")
	ErrDeadlinePassed     = errors.New("registration deadline has passed")
	ErrAlreadyRegistered  = errors.New("already registered for this event")
	ErrFullyBooked        = errors.New("this event is fully booked")
)

// ErrAlreadySubscribed is returned when an active newsletter subscription
// already exists for the email.
var ErrAlreadySubscribed = errors.New("email is already subscribed")

// ErrSlugTaken is returned when an event slug is already in use.
var ErrSlugTaken = errors.New("an event with this slug already exists")
