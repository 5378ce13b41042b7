package model

import "time"

// Visit is one recorded page view on a public route.
type Visit struct {
	ID        string    `json:"id"`
	Path      string    `json:"path"`
	CreatedAt time.Time `json:"created_at"`
}

// DashboardStats aggregates the counters shown on the admin dashboard.
type DashboardStats struct {
	Projects       int `json:"projects"`
	Messages       int `json:"messages"`
	UnreadMessages int `json:"unread_messages"`
	Visits         int `json:"visits"`
}
