package services

import (
	goContext "context"

	"github.com/alphabatem/common/context"

	"github.com/pathwise-app/pathwise_client/dto"
)

// SkillService covers the AI-backed skill endpoints: normalization
// suggestions and assessment question generation.
type SkillService struct {
	context.DefaultService

	apiSvc *ApiClientService
}

const SKILL_SVC = "skill_svc"

func (svc SkillService) Id() string {
	return SKILL_SVC
}

func (svc *SkillService) Start() error {
	svc.apiSvc = svc.Service(API_CLIENT_SVC).(*ApiClientService)
	return nil
}

func (svc *SkillService) Suggest(ctx goContext.Context, query string) (*dto.SuggestSkillsResponse, error) {
	req := dto.SuggestSkillsRequest{Query: query}
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	var resp dto.SuggestSkillsResponse
	if err := svc.apiSvc.Post(ctx, "/api/skills/suggest", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (svc *SkillService) Assessment(ctx goContext.Context, skill string) (*dto.AssessmentResponse, error) {
	req := dto.AssessmentRequest{Skill: skill}
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	var resp dto.AssessmentResponse
	if err := svc.apiSvc.Post(ctx, "/api/skills/assessment", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
