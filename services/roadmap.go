package services

import (
	goContext "context"
	"fmt"

	"github.com/alphabatem/common/context"
	log "github.com/sirupsen/logrus"

	"github.com/pathwise-app/pathwise_client/dto"
	"github.com/pathwise-app/pathwise_client/model"
	"github.com/pathwise-app/pathwise_client/shared"
)

// RoadmapService wraps roadmap generation, retrieval and step toggles, and
// feeds completions into the gamification engine: a completed step awards XP
// and counts as today's activity; a roadmap reaching 100% grants a bonus.
type RoadmapService struct {
	context.DefaultService

	apiSvc          *ApiClientService
	gamificationSvc *GamificationService
}

const ROADMAP_SVC = "roadmap_svc"

func (svc RoadmapService) Id() string {
	return ROADMAP_SVC
}

func (svc *RoadmapService) Start() error {
	svc.apiSvc = svc.Service(API_CLIENT_SVC).(*ApiClientService)
	svc.gamificationSvc = svc.Service(GAMIFICATION_SVC).(*GamificationService)
	return nil
}

func (svc *RoadmapService) Create(ctx goContext.Context, req dto.CreateRoadmapRequest) (*dto.Roadmap, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	var roadmap dto.Roadmap
	if err := svc.apiSvc.Post(ctx, "/api/roadmap/create", req, &roadmap); err != nil {
		return nil, err
	}
	return &roadmap, nil
}

func (svc *RoadmapService) Get(ctx goContext.Context, roadmapID string) (*dto.Roadmap, error) {
	var roadmap dto.Roadmap
	if err := svc.apiSvc.Get(ctx, "/api/roadmap/"+roadmapID, &roadmap); err != nil {
		return nil, err
	}
	return &roadmap, nil
}

func (svc *RoadmapService) Progress(ctx goContext.Context, roadmapID string) (*dto.RoadmapProgress, error) {
	var progress dto.RoadmapProgress
	if err := svc.apiSvc.Get(ctx, "/api/roadmap/"+roadmapID+"/progress", &progress); err != nil {
		return nil, err
	}
	return &progress, nil
}

// StepResult bundles the server-side progress with the local progression
// side effects of a step toggle.
type StepResult struct {
	Progress         *dto.RoadmapProgress `json:"progress"`
	XP               *XPResult            `json:"xp,omitempty"`
	Activity         *ActivityResult      `json:"activity,omitempty"`
	RoadmapCompleted bool                 `json:"roadmap_completed"`
	Unlocked         []model.Achievement  `json:"unlocked,omitempty"`
}

func (svc *RoadmapService) CompleteStep(ctx goContext.Context, roadmapID, stepID string) (*StepResult, error) {
	progress, err := svc.toggleStep(ctx, roadmapID, stepID, "complete")
	if err != nil {
		return nil, err
	}

	result := &StepResult{Progress: progress}

	// The server call succeeded; local bookkeeping failures are logged, not
	// surfaced, so the completion is never reported as lost.
	xp, err := svc.gamificationSvc.AddXP(shared.XPStepCompleted, "step completed")
	if err != nil {
		log.WithError(err).Warn("Failed to award step XP")
	} else {
		result.XP = xp
		result.Unlocked = append(result.Unlocked, xp.Unlocked...)
	}

	activity, err := svc.gamificationSvc.RecordActivity()
	if err != nil {
		log.WithError(err).Warn("Failed to record activity")
	} else {
		result.Activity = activity
		result.Unlocked = append(result.Unlocked, activity.Unlocked...)
	}

	if progress.PercentComplete >= 100 {
		result.RoadmapCompleted = true

		unlocked, err := svc.gamificationSvc.CompleteRoadmap()
		if err != nil {
			log.WithError(err).Warn("Failed to record roadmap completion")
		} else {
			result.Unlocked = append(result.Unlocked, unlocked...)
		}

		bonus, err := svc.gamificationSvc.AddXP(shared.XPRoadmapCompleted, "roadmap completed")
		if err != nil {
			log.WithError(err).Warn("Failed to award roadmap bonus XP")
		} else {
			result.Unlocked = append(result.Unlocked, bonus.Unlocked...)
		}
	}

	return result, nil
}

// UncompleteStep reverts a step on the server. XP already awarded stays;
// total XP never decreases.
func (svc *RoadmapService) UncompleteStep(ctx goContext.Context, roadmapID, stepID string) (*dto.RoadmapProgress, error) {
	return svc.toggleStep(ctx, roadmapID, stepID, "uncomplete")
}

func (svc *RoadmapService) toggleStep(ctx goContext.Context, roadmapID, stepID, action string) (*dto.RoadmapProgress, error) {
	path := fmt.Sprintf("/api/roadmap/%s/step/%s/%s", roadmapID, stepID, action)

	var progress dto.RoadmapProgress
	if err := svc.apiSvc.Put(ctx, path, nil, &progress); err != nil {
		return nil, err
	}
	return &progress, nil
}
