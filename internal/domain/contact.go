package domain

import (
	"context"
	"time"
)

// ContactMessage is a message submitted through the public contact form.
// swagger:model ContactMessage
type ContactMessage struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject,omitempty"`
	Message   string    `json:"message"`
	IsRead    bool      `json:"isRead"`
	CreatedAt time.Time `json:"createdAt"`
}

// ContactRepository defines storage operations for contact messages.
type ContactRepository interface {
	Create(ctx context.Context, msg *ContactMessage) error
	GetByID(ctx context.Context, id string) (*ContactMessage, error)
	List(ctx context.Context, unreadOnly bool) ([]*ContactMessage, error)
	MarkRead(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
	CountAll(ctx context.Context) (int, error)
	CountUnread(ctx context.Context) (int, error)
}

// ContactService persists contact messages and sends a best-effort
// notification email. Notification failures never surface to the caller.
type ContactService interface {
	Submit(ctx context.Context, msg *ContactMessage) (*ContactMessage, error)
	List(ctx context.Context, unreadOnly bool) ([]*ContactMessage, error)
	MarkRead(ctx context.Context, id string) (*ContactMessage, error)
	Delete(ctx context.Context, id string) error
}
