package domain

import (
	"context"
	"time"
)

// NewsletterSubscriber is an email subscribed to the newsletter. A
// subscriber is unique per email; unsubscribing flips IsActive instead of
// deleting the row so a later subscribe reactivates it.
// swagger:model NewsletterSubscriber
type NewsletterSubscriber struct {
	ID             string     `json:"id"`
	Email          string     `json:"email"`
	Name           string     `json:"name,omitempty"`
	IsActive       bool       `json:"isActive"`
	SubscribedAt   time.Time  `json:"subscribedAt"`
	UnsubscribedAt *time.Time `json:"unsubscribedAt,omitempty"`
}

// NewsletterRepository defines storage operations for subscribers.
type NewsletterRepository interface {
	Create(ctx context.Context, sub *NewsletterSubscriber) error
	GetByEmail(ctx context.Context, email string) (*NewsletterSubscriber, error)
	List(ctx context.Context) ([]*NewsletterSubscriber, error)
	Update(ctx context.Context, sub *NewsletterSubscriber) error
	Delete(ctx context.Context, id string) error
	CountActive(ctx context.Context) (int, error)
}

// NewsletterService handles subscription and admin management.
type NewsletterService interface {
	// Subscribe adds the email or reactivates an inactive subscription.
	// An active duplicate fails with ErrAlreadySubscribed.
	Subscribe(ctx context.Context, email, name string) (*NewsletterSubscriber, error)
	List(ctx context.Context) ([]*NewsletterSubscriber, error)
	Delete(ctx context.Context, id string) error
}
