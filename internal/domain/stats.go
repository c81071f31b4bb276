package domain

import "context"

// ContactStats groups contact message counts for the dashboard.
type ContactStats struct {
	Total  int `json:"total"`
	Unread int `json:"unread"`
}

// CollaborationStats groups collaboration request counts for the dashboard.
type CollaborationStats struct {
	Total  int `json:"total"`
	Unread int `json:"unread"`
}

// DashboardStats is the admin dashboard summary.
// swagger:model DashboardStats
type DashboardStats struct {
	Contacts       ContactStats       `json:"contacts"`
	Subscribers    int                `json:"subscribers"`
	Events         int                `json:"events"`
	Registrations  int                `json:"registrations"`
	Users          int                `json:"users"`
	Collaborations CollaborationStats `json:"collaborations"`
}

// AdminService aggregates cross-entity reads for the dashboard.
type AdminService interface {
	DashboardStats(ctx context.Context) (*DashboardStats, error)
}
