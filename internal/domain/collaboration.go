package domain

import (
	"context"
	"time"
)

// CollaborationRequest is a partnership proposal submitted through the
// public collaboration form.
// swagger:model CollaborationRequest
type CollaborationRequest struct {
	ID           string    `json:"id"`
	Type         string    `json:"type"`
	Name         string    `json:"name"`
	Organization string    `json:"organization"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone,omitempty"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	IsRead       bool      `json:"isRead"`
	CreatedAt    time.Time `json:"createdAt"`
}

// CollaborationRepository defines storage operations for requests.
type CollaborationRepository interface {
	Create(ctx context.Context, req *CollaborationRequest) error
	GetByID(ctx context.Context, id string) (*CollaborationRequest, error)
	List(ctx context.Context) ([]*CollaborationRequest, error)
	MarkRead(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
	CountAll(ctx context.Context) (int, error)
	CountUnread(ctx context.Context) (int, error)
}

// CollaborationService handles intake and admin management of requests.
type CollaborationService interface {
	Submit(ctx context.Context, req *CollaborationRequest) (*CollaborationRequest, error)
	List(ctx context.Context) ([]*CollaborationRequest, error)
	MarkRead(ctx context.Context, id string) (*CollaborationRequest, error)
	Delete(ctx context.Context, id string) error
}
