package services

import (
	goContext "context"

	"github.com/alphabatem/common/context"
	log "github.com/sirupsen/logrus"

	"github.com/pathwise-app/pathwise_client/dto"
)

// PremiumService submits purchase receipts. Entitlement validation happens
// server-side; the client only refreshes its cached user afterward.
type PremiumService struct {
	context.DefaultService

	apiSvc   *ApiClientService
	tokenSvc *TokenService
}

const PREMIUM_SVC = "premium_svc"

func (svc PremiumService) Id() string {
	return PREMIUM_SVC
}

func (svc *PremiumService) Start() error {
	svc.apiSvc = svc.Service(API_CLIENT_SVC).(*ApiClientService)
	svc.tokenSvc = svc.Service(TOKEN_SVC).(*TokenService)
	return nil
}

func (svc *PremiumService) Purchase(ctx goContext.Context, req dto.PurchaseRequest) (*dto.PurchaseResponse, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	var resp dto.PurchaseResponse
	if err := svc.apiSvc.Post(ctx, "/api/premium/purchase", req, &resp); err != nil {
		return nil, err
	}

	if resp.Active {
		if user := svc.tokenSvc.User(); user != nil {
			user.IsPremium = true
			if err := svc.tokenSvc.SetUser(user); err != nil {
				log.WithError(err).Warn("Failed to update cached user after purchase")
			}
		}
	}

	return &resp, nil
}
