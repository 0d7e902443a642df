package services

import (
	goContext "context"

	"github.com/alphabatem/common/context"
	log "github.com/sirupsen/logrus"

	"github.com/pathwise-app/pathwise_client/dto"
)

// AuthService wraps the session endpoints. Storing the token and cached user
// on successful login/register is a documented side effect of this layer,
// not of the API client.
type AuthService struct {
	context.DefaultService

	apiSvc   *ApiClientService
	tokenSvc *TokenService
}

const AUTH_SVC = "auth_svc"

func (svc AuthService) Id() string {
	return AUTH_SVC
}

func (svc *AuthService) Start() error {
	svc.apiSvc = svc.Service(API_CLIENT_SVC).(*ApiClientService)
	svc.tokenSvc = svc.Service(TOKEN_SVC).(*TokenService)
	return nil
}

func (svc *AuthService) Login(ctx goContext.Context, req dto.LoginRequest) (*dto.AuthResponse, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	var resp dto.AuthResponse
	if err := svc.apiSvc.Post(ctx, loginEndpoint, req, &resp); err != nil {
		return nil, err
	}

	svc.storeSession(&resp)
	return &resp, nil
}

func (svc *AuthService) Register(ctx goContext.Context, req dto.RegisterRequest) (*dto.AuthResponse, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	var resp dto.AuthResponse
	if err := svc.apiSvc.Post(ctx, "/api/auth/register", req, &resp); err != nil {
		return nil, err
	}

	svc.storeSession(&resp)
	return &resp, nil
}

// Logout tears the local session down. There is no server call to make.
func (svc *AuthService) Logout() error {
	return svc.tokenSvc.Clear()
}

// Me refreshes the cached user from the server.
func (svc *AuthService) Me(ctx goContext.Context) (*dto.User, error) {
	var user dto.User
	if err := svc.apiSvc.Get(ctx, "/api/auth/me", &user); err != nil {
		return nil, err
	}

	if err := svc.tokenSvc.SetUser(&user); err != nil {
		log.WithError(err).Warn("Failed to refresh cached user")
	}
	return &user, nil
}

func (svc *AuthService) storeSession(resp *dto.AuthResponse) {
	if err := svc.tokenSvc.SetToken(resp.Token); err != nil {
		log.WithError(err).Error("Failed to persist session token")
	}
	if err := svc.tokenSvc.SetUser(&resp.User); err != nil {
		log.WithError(err).Warn("Failed to cache user")
	}
}
