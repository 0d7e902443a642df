package services

import (
	goContext "context"

	"github.com/alphabatem/common/context"

	"github.com/pathwise-app/pathwise_client/dto"
)

// UserService covers the aggregate read endpoints.
type UserService struct {
	context.DefaultService

	apiSvc *ApiClientService
}

const USER_SVC = "user_svc"

func (svc UserService) Id() string {
	return USER_SVC
}

func (svc *UserService) Start() error {
	svc.apiSvc = svc.Service(API_CLIENT_SVC).(*ApiClientService)
	return nil
}

func (svc *UserService) Dashboard(ctx goContext.Context) (*dto.DashboardResponse, error) {
	var dashboard dto.DashboardResponse
	if err := svc.apiSvc.Get(ctx, "/api/user/dashboard", &dashboard); err != nil {
		return nil, err
	}
	return &dashboard, nil
}

func (svc *UserService) MyRoadmaps(ctx goContext.Context) (*dto.RoadmapListResponse, error) {
	var list dto.RoadmapListResponse
	if err := svc.apiSvc.Get(ctx, "/api/user/roadmaps", &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// Profile returns the caller's profile when userID is empty, someone else's
// otherwise.
func (svc *UserService) Profile(ctx goContext.Context, userID string) (*dto.ProfileResponse, error) {
	path := "/api/user/profile"
	if userID != "" {
		path += "/" + userID
	}

	var profile dto.ProfileResponse
	if err := svc.apiSvc.Get(ctx, path, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}
