package dto

import "time"

type DashboardResponse struct {
	User           User             `json:"user"`
	ActiveRoadmaps []RoadmapSummary `json:"active_roadmaps" validate:"dive"`
	RecentPosts    []Post           `json:"recent_posts" validate:"dive"`
}

type ProfileResponse struct {
	ID        string    `json:"id" validate:"required"`
	Name      string    `json:"name"`
	Email     string    `json:"email,omitempty"`
	Bio       string    `json:"bio,omitempty"`
	IsPremium bool      `json:"is_premium"`
	JoinedAt  time.Time `json:"joined_at"`
	Roadmaps  int       `json:"roadmaps"`
}
