package dto

type SuggestSkillsRequest struct {
	Query string `json:"query" validate:"required,min=2"`
}

func (r SuggestSkillsRequest) Validate() error {
	return GetValidator().Struct(r)
}

type SkillSuggestion struct {
	Name        string `json:"name" validate:"required"`
	Category    string `json:"category"`
	Description string `json:"description"`
}

type SuggestSkillsResponse struct {
	Suggestions []SkillSuggestion `json:"suggestions" validate:"dive"`
}

type AssessmentRequest struct {
	Skill string `json:"skill" validate:"required"`
}

func (r AssessmentRequest) Validate() error {
	return GetValidator().Struct(r)
}

type AssessmentQuestion struct {
	ID      string   `json:"id" validate:"required"`
	Prompt  string   `json:"prompt" validate:"required"`
	Options []string `json:"options"`
}

type AssessmentResponse struct {
	Skill     string               `json:"skill"`
	Questions []AssessmentQuestion `json:"questions" validate:"required,dive"`
}
