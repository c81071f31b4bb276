package domain

import (
	"context"
	"time"
)

// TeamMember is a public team page entry, looked up by its stable MemberKey.
// swagger:model TeamMember
type TeamMember struct {
	ID           string    `json:"id"`
	MemberKey    string    `json:"memberKey"`
	Name         string    `json:"name"`
	Email        string    `json:"email,omitempty"`
	Image        string    `json:"image,omitempty"`
	Organization string    `json:"organization,omitempty"`
	RoleTitle    string    `json:"roleTitle,omitempty"`
	Bio          string    `json:"bio,omitempty"`
	IsCoreMember bool      `json:"isCoreMember"`
	ExecRole     string    `json:"execRole,omitempty"`
	SortOrder    int       `json:"sortOrder"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// TeamRepository defines storage operations for team members. List orders
// core members first, then sort order, then name.
type TeamRepository interface {
	List(ctx context.Context) ([]*TeamMember, error)
	GetByKey(ctx context.Context, memberKey string) (*TeamMember, error)
}

// TeamService exposes the public team reads.
type TeamService interface {
	List(ctx context.Context) ([]*TeamMember, error)
	GetByKey(ctx context.Context, memberKey string) (*TeamMember, error)
}
