package dto

import "time"

type CreateRoadmapRequest struct {
	Skill       string            `json:"skill" validate:"required"`
	SkillLevel  string            `json:"skill_level" validate:"omitempty,oneof=beginner intermediate advanced"`
	WeeklyHours int               `json:"weekly_hours" validate:"omitempty,min=1,max=80"`
	Answers     map[string]string `json:"assessment_answers,omitempty"`
}

func (r CreateRoadmapRequest) Validate() error {
	return GetValidator().Struct(r)
}

type RoadmapStep struct {
	ID          string `json:"id" validate:"required"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Order       int    `json:"order"`
	IsCompleted bool   `json:"is_completed"`
}

type RoadmapMilestone struct {
	ID    string        `json:"id" validate:"required"`
	Title string        `json:"title"`
	Order int           `json:"order"`
	Steps []RoadmapStep `json:"steps" validate:"dive"`
}

type Roadmap struct {
	ID         string             `json:"id" validate:"required"`
	Skill      string             `json:"skill"`
	Title      string             `json:"title"`
	Milestones []RoadmapMilestone `json:"milestones" validate:"dive"`
	CreatedAt  time.Time          `json:"created_at"`
}

type RoadmapProgress struct {
	RoadmapID       string  `json:"roadmap_id" validate:"required"`
	CompletedSteps  int     `json:"completed_steps"`
	TotalSteps      int     `json:"total_steps"`
	PercentComplete float64 `json:"percent_complete"`
}

type RoadmapSummary struct {
	ID              string  `json:"id" validate:"required"`
	Skill           string  `json:"skill"`
	Title           string  `json:"title"`
	PercentComplete float64 `json:"percent_complete"`
}

type RoadmapListResponse struct {
	Roadmaps []RoadmapSummary `json:"roadmaps" validate:"dive"`
}
