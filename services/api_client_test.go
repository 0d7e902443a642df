package services

import (
	goContext "context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pathwise-app/pathwise_client/dto"
	"github.com/pathwise-app/pathwise_client/shared"
)

type memSettings struct {
	values map[string]string
}

func newMemSettings() *memSettings {
	return &memSettings{values: map[string]string{}}
}

func (s *memSettings) GetSetting(key string) (string, error) {
	return s.values[key], nil
}

func (s *memSettings) SetSetting(key, value string) error {
	s.values[key] = value
	return nil
}

func (s *memSettings) DeleteSetting(keys ...string) error {
	for _, key := range keys {
		delete(s.values, key)
	}
	return nil
}

func newTestClient(t *testing.T, handler http.Handler) (*ApiClientService, *TokenService) {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	tokenSvc := &TokenService{store: newMemSettings()}
	api := &ApiClientService{
		tokenSvc:   tokenSvc,
		httpClient: srv.Client(),
		baseURL:    srv.URL,
	}
	return api, tokenSvc
}

func TestRequestSendsBearerToken(t *testing.T) {
	var gotAuth string
	api, tokenSvc := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"status":"ok"}`))
	}))

	if err := api.Get(goContext.Background(), "/api/health", nil); err != nil {
		t.Fatalf("Get: %v", err)
	}
	if gotAuth != "" {
		t.Fatalf("no session yet, got Authorization %q", gotAuth)
	}

	if err := tokenSvc.SetToken("abc123"); err != nil {
		t.Fatalf("SetToken: %v", err)
	}
	if err := api.Get(goContext.Background(), "/api/health", nil); err != nil {
		t.Fatalf("Get: %v", err)
	}
	if gotAuth != "Bearer abc123" {
		t.Fatalf("got Authorization %q", gotAuth)
	}
}

func TestHealthDecodesResponse(t *testing.T) {
	api, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/health" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Write([]byte(`{"status":"healthy"}`))
	}))

	health, err := api.Health(goContext.Background())
	if err != nil {
		t.Fatalf("Health: %v", err)
	}
	if health.Status != "healthy" {
		t.Fatalf("status=%q", health.Status)
	}
}

func TestUnauthorizedClearsSession(t *testing.T) {
	api, tokenSvc := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))

	if err := tokenSvc.SetToken("stale"); err != nil {
		t.Fatalf("SetToken: %v", err)
	}

	err := api.Get(goContext.Background(), "/api/user/dashboard", nil)
	if !shared.IsSessionExpired(err) {
		t.Fatalf("expected session_expired, got %v", err)
	}
	if tokenSvc.IsAuthenticated() {
		t.Fatal("token survived a 401")
	}
}

func TestUnauthorizedOnLoginKeepsSession(t *testing.T) {
	api, tokenSvc := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))

	if err := tokenSvc.SetToken("existing"); err != nil {
		t.Fatalf("SetToken: %v", err)
	}

	err := api.Post(goContext.Background(), "/api/auth/login", map[string]string{"email": "a@b.c"}, nil)
	if !shared.IsInvalidCredentials(err) {
		t.Fatalf("expected invalid_credentials, got %v", err)
	}
	if !tokenSvc.IsAuthenticated() {
		t.Fatal("a failed login must not tear down the existing session")
	}
}

func TestErrorDetailPropagates(t *testing.T) {
	api, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"detail":"Skill is required"}`))
	}))

	err := api.Post(goContext.Background(), "/api/roadmap", map[string]string{}, nil)
	appErr, ok := shared.GetAppError(err)
	if !ok {
		t.Fatalf("expected AppError, got %v", err)
	}
	if appErr.Code != shared.ErrCodeAPI || appErr.StatusCode != http.StatusBadRequest {
		t.Fatalf("code=%s status=%d", appErr.Code, appErr.StatusCode)
	}
	if appErr.Message != "Skill is required" {
		t.Fatalf("message=%q", appErr.Message)
	}
}

func TestErrorDetailFallback(t *testing.T) {
	api, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("upstream blew up"))
	}))

	err := api.Get(goContext.Background(), "/api/community/posts", nil)
	appErr, ok := shared.GetAppError(err)
	if !ok {
		t.Fatalf("expected AppError, got %v", err)
	}
	if appErr.Message != "HTTP error, status 500" {
		t.Fatalf("message=%q", appErr.Message)
	}
}

func TestNetworkErrorClassified(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	api := &ApiClientService{
		tokenSvc:   &TokenService{store: newMemSettings()},
		httpClient: &http.Client{},
		baseURL:    srv.URL,
	}

	err := api.Get(goContext.Background(), "/api/health", nil)
	if !shared.IsNetworkError(err) {
		t.Fatalf("expected network error, got %v", err)
	}
}

func TestMalformedBodyIsDecodeError(t *testing.T) {
	api, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":`))
	}))

	var health dto.HealthResponse
	err := api.Get(goContext.Background(), "/api/health", &health)
	if !shared.HasCode(err, shared.ErrCodeDecode) {
		t.Fatalf("expected decode error, got %v", err)
	}
}

func TestResponseSchemaValidation(t *testing.T) {
	api, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Missing token and user id, both required on the wire type.
		w.Write([]byte(`{"token":"","user":{"id":""}}`))
	}))

	var auth dto.AuthResponse
	err := api.Post(goContext.Background(), "/api/auth/register", map[string]string{}, &auth)
	if !shared.HasCode(err, shared.ErrCodeDecode) {
		t.Fatalf("expected decode error on invalid payload, got %v", err)
	}
}

func TestMetricRouteMasksIDs(t *testing.T) {
	cases := []struct {
		path string
		want string
	}{
		{"/api/health", "/api/health"},
		{"/api/auth/login", "/api/auth/login"},
		{"/api/roadmap/rm_9f2/progress", "/api/roadmap/:id/progress"},
		{"/api/roadmap/rm_9f2/step/st_41/complete", "/api/roadmap/:id/step/:id/complete"},
		{"/api/community/posts/p123/like", "/api/community/posts/:id/like"},
		{"/api/user/profile/u456", "/api/user/profile/:id"},
	}

	for _, tc := range cases {
		if got := metricRoute(tc.path); got != tc.want {
			t.Errorf("metricRoute(%q)=%q, want %q", tc.path, got, tc.want)
		}
	}
}

func TestNonStructTargetSkipsValidation(t *testing.T) {
	api, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"foo":"bar"}`))
	}))

	var out map[string]interface{}
	if err := api.Get(goContext.Background(), "/api/anything", &out); err != nil {
		t.Fatalf("Get: %v", err)
	}
	if out["foo"] != "bar" {
		t.Fatalf("out=%v", out)
	}
}
