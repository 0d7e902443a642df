package services

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/alphabatem/common/context"
	"github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/pathwise-app/pathwise_client/dto"
	"github.com/pathwise-app/pathwise_client/shared"

	goContext "context"
)

const (
	headerAuthorization = "Authorization"
	headerContentType   = "Content-Type"
	headerUserAgent     = "User-Agent"
	contentTypeJSON     = "application/json"
	clientUserAgent     = "pathwise-go/1.0.0"

	loginEndpoint = "/api/auth/login"

	defaultBaseURL = "http://localhost:8000"
	defaultTimeout = 30 * time.Second
)

// ApiClientService is the single path to the backend. It attaches the bearer
// token when one is present, classifies every failure into the shared error
// taxonomy, and validates decoded responses before handing them back. It
// never retries and never recovers; callers decide what to do with errors.
type ApiClientService struct {
	context.DefaultService

	tokenSvc   *TokenService
	httpClient *http.Client
	baseURL    string
}

const API_CLIENT_SVC = "api_client_svc"

func (svc ApiClientService) Id() string {
	return API_CLIENT_SVC
}

func (svc *ApiClientService) Configure(ctx *context.Context) error {
	svc.baseURL = os.Getenv("PATHWISE_API_URL")
	if svc.baseURL == "" {
		svc.baseURL = defaultBaseURL
	}

	timeout := defaultTimeout
	if raw := os.Getenv("PATHWISE_API_TIMEOUT_SECONDS"); raw != "" {
		if secs, err := strconv.Atoi(raw); err == nil && secs > 0 {
			timeout = time.Duration(secs) * time.Second
		}
	}

	svc.httpClient = &http.Client{
		Timeout:   timeout,
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}

	return svc.DefaultService.Configure(ctx)
}

func (svc *ApiClientService) Start() error {
	svc.tokenSvc = svc.Service(TOKEN_SVC).(*TokenService)
	return nil
}

func (svc *ApiClientService) BaseURL() string {
	return svc.baseURL
}

// Request performs one API call. A nil out discards the response body.
func (svc *ApiClientService) Request(ctx goContext.Context, method, path string, body, out interface{}) error {
	reqURL, err := url.JoinPath(svc.baseURL, path)
	if err != nil {
		return shared.NewInternalError(err, "Failed to build request URL")
	}

	var bodyReader io.Reader
	if body != nil {
		raw, err := sonic.Marshal(body)
		if err != nil {
			return shared.NewInternalError(err, "Failed to serialize request body")
		}
		bodyReader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, bodyReader)
	if err != nil {
		return shared.NewInternalError(err, "Failed to build request")
	}

	req.Header.Set(headerContentType, contentTypeJSON)
	req.Header.Set(headerUserAgent, clientUserAgent)
	if token := svc.tokenSvc.Token(); token != "" {
		req.Header.Set(headerAuthorization, "Bearer "+token)
	}

	endpoint := metricRoute(path)
	start := time.Now()
	resp, err := svc.httpClient.Do(req)
	if err != nil {
		recordAPIRequest(method, endpoint, "error", time.Since(start))
		return shared.NewNetworkError(err, "Could not reach the Pathwise API")
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		recordAPIRequest(method, endpoint, "error", time.Since(start))
		return shared.NewNetworkError(err, "Connection lost while reading response")
	}
	recordAPIRequest(method, endpoint, strconv.Itoa(resp.StatusCode), time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return svc.classifyError(path, resp.StatusCode, respBody)
	}

	if out != nil && len(respBody) > 0 {
		if err := sonic.Unmarshal(respBody, out); err != nil {
			return shared.NewDecodeError(err, "Malformed response from server")
		}
		if err := validateResponse(out); err != nil {
			return err
		}
	}

	return nil
}

func (svc *ApiClientService) Get(ctx goContext.Context, path string, out interface{}) error {
	return svc.Request(ctx, http.MethodGet, path, nil, out)
}

func (svc *ApiClientService) Post(ctx goContext.Context, path string, body, out interface{}) error {
	return svc.Request(ctx, http.MethodPost, path, body, out)
}

func (svc *ApiClientService) Put(ctx goContext.Context, path string, body, out interface{}) error {
	return svc.Request(ctx, http.MethodPut, path, body, out)
}

// Health probes GET /api/health.
func (svc *ApiClientService) Health(ctx goContext.Context) (*dto.HealthResponse, error) {
	var health dto.HealthResponse
	if err := svc.Get(ctx, "/api/health", &health); err != nil {
		return nil, err
	}
	return &health, nil
}

// classifyError maps a non-2xx response into the error taxonomy. A 401 on
// anything but the login endpoint tears the local session down before the
// error is returned; on the login endpoint it just means bad credentials.
func (svc *ApiClientService) classifyError(path string, statusCode int, body []byte) error {
	if statusCode == http.StatusUnauthorized {
		if path == loginEndpoint {
			return shared.NewInvalidCredentialsError("Invalid email or password")
		}

		if err := svc.tokenSvc.Clear(); err != nil {
			log.WithError(err).Warn("Failed to clear session after 401")
		}
		return shared.NewSessionExpiredError("Session expired, please log in again")
	}

	return shared.NewAPIError(statusCode, errorDetail(statusCode, body))
}

// errorDetail extracts the server-provided detail message, falling back to a
// generic status line when the body is not the expected shape.
func errorDetail(statusCode int, body []byte) string {
	var payload dto.ErrorResponse
	if err := sonic.Unmarshal(body, &payload); err == nil && payload.Detail != "" {
		return payload.Detail
	}
	return fmt.Sprintf("HTTP error, status %d", statusCode)
}

// routeWords are the fixed path segments of the API surface beyond the
// /api/<area> prefix. Anything else in that position is an ID.
var routeWords = map[string]struct{}{
	"login": {}, "register": {}, "me": {},
	"suggest": {}, "assessment": {},
	"create": {}, "progress": {}, "step": {}, "complete": {}, "uncomplete": {},
	"dashboard": {}, "roadmaps": {}, "profile": {},
	"posts": {}, "replies": {}, "like": {},
	"preferences": {}, "push-token": {}, "history": {},
	"purchase": {},
}

// metricRoute collapses a request path to its route shape so roadmap, step
// and post IDs never become metric label values. The label set stays bounded
// by the API surface.
func metricRoute(path string) string {
	segments := strings.Split(strings.Trim(path, "/"), "/")
	for i := 2; i < len(segments); i++ {
		if _, ok := routeWords[segments[i]]; !ok {
			segments[i] = ":id"
		}
	}
	return "/" + strings.Join(segments, "/")
}

// validateRequest runs client-side validation on an outbound payload. The
// wrapped field errors survive for the command layer to render per field.
func validateRequest(req dto.Validator) error {
	if err := req.Validate(); err != nil {
		return shared.NewBadRequestError(err, "Validation failed")
	}
	return nil
}

// validateResponse runs schema validation on a decoded response. Non-struct
// targets (maps, slices) are passed through untouched.
func validateResponse(out interface{}) error {
	err := dto.GetValidator().Struct(out)
	if err == nil {
		return nil
	}
	if _, ok := err.(*validator.InvalidValidationError); ok {
		return nil
	}
	return shared.NewDecodeError(err, "Response failed schema validation")
}
