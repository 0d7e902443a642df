package services

import (
	goContext "context"

	"github.com/alphabatem/common/context"

	"github.com/pathwise-app/pathwise_client/dto"
)

// NotificationService wraps notification preferences, push-token
// registration and delivery history. Scheduling and delivery are entirely
// server-side.
type NotificationService struct {
	context.DefaultService

	apiSvc *ApiClientService
}

const NOTIFICATION_SVC = "notification_svc"

func (svc NotificationService) Id() string {
	return NOTIFICATION_SVC
}

func (svc *NotificationService) Start() error {
	svc.apiSvc = svc.Service(API_CLIENT_SVC).(*ApiClientService)
	return nil
}

func (svc *NotificationService) Preferences(ctx goContext.Context) (*dto.NotificationPreferences, error) {
	var prefs dto.NotificationPreferences
	if err := svc.apiSvc.Get(ctx, "/api/notifications/preferences", &prefs); err != nil {
		return nil, err
	}
	return &prefs, nil
}

func (svc *NotificationService) UpdatePreferences(ctx goContext.Context, prefs dto.NotificationPreferences) (*dto.NotificationPreferences, error) {
	if err := validateRequest(prefs); err != nil {
		return nil, err
	}

	var updated dto.NotificationPreferences
	if err := svc.apiSvc.Post(ctx, "/api/notifications/preferences", prefs, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (svc *NotificationService) RegisterPushToken(ctx goContext.Context, token, platform string) error {
	req := dto.PushTokenRequest{Token: token, Platform: platform}
	if err := validateRequest(req); err != nil {
		return err
	}

	return svc.apiSvc.Post(ctx, "/api/notifications/push-token", req, nil)
}

func (svc *NotificationService) History(ctx goContext.Context) (*dto.NotificationHistoryResponse, error) {
	var history dto.NotificationHistoryResponse
	if err := svc.apiSvc.Get(ctx, "/api/notifications/history", &history); err != nil {
		return nil, err
	}
	return &history, nil
}
