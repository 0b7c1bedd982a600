package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/nmorozova/lovebird/internal/client/models"
	"github.com/nmorozova/lovebird/internal/logging"
)

const (
	pathRegister  = "/auth/register"
	pathLogin     = "/auth/login"
	pathRefresh   = "/auth/refresh"
	pathProfile   = "/users/me"
	pathUsers     = "/users/"
	pathInterests = "/user-interests/"
)

// HTTPClient is the concrete Client backed by net/http.
//
// The Authorization header is process-wide mutable state with a single
// writer (the session manager); a lock keeps it consistent for readers
// issuing requests.
type HTTPClient struct {
	baseURL string
	http    *http.Client
	log     logging.Logger

	mu         sync.RWMutex
	authHeader string
}

// NewHTTPClient constructs a client bound to baseURL. Every round trip is
// bounded by timeout.
func NewHTTPClient(baseURL string, timeout time.Duration, log logging.Logger) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		log:     log.With("component", "api"),
	}
}

// SetAuthHeader sets the default Authorization header for all subsequent
// requests. An empty token removes the header.
func (c *HTTPClient) SetAuthHeader(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if token == "" {
		c.authHeader = ""
		return
	}
	c.authHeader = "Bearer " + token
}

func (c *HTTPClient) currentAuthHeader() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.authHeader
}

func (c *HTTPClient) newRequest(ctx context.Context, method, path, contentType string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if h := c.currentAuthHeader(); h != "" {
		req.Header.Set("Authorization", h)
	}
	return req, nil
}

// do executes req and decodes a 2xx JSON body into out (skipped when out is
// nil). Non-2xx responses become *APIError; transport failures wrap
// ErrUnavailable.
func (c *HTTPClient) do(req *http.Request, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.decodeError(resp)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding %s %s response: %w", req.Method, req.URL.Path, err)
	}
	return nil
}

// errorBody covers the error envelopes the backend is known to produce.
type errorBody struct {
	Detail    string        `json:"detail"`
	Message   string        `json:"message"`
	ErrorType string        `json:"error_type"`
	Details   []FieldDetail `json:"details"`
}

func (c *HTTPClient) decodeError(resp *http.Response) error {
	apiErr := &APIError{Status: resp.StatusCode}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if err != nil {
		return apiErr
	}

	var eb errorBody
	if json.Unmarshal(body, &eb) == nil {
		apiErr.Message = eb.Detail
		if apiErr.Message == "" {
			apiErr.Message = eb.Message
		}
		apiErr.ErrorType = eb.ErrorType
		apiErr.Details = eb.Details
	}

	c.log.Debug(resp.Request.Context(), "server rejected request",
		"method", resp.Request.Method, "path", resp.Request.URL.Path, "status", resp.StatusCode)
	return apiErr
}

func (c *HTTPClient) postJSON(ctx context.Context, path string, in, out any) error {
	payload, err := json.Marshal(in)
	if err != nil {
		return err
	}
	req, err := c.newRequest(ctx, http.MethodPost, path, "application/json", bytes.NewReader(payload))
	if err != nil {
		return err
	}
	return c.do(req, out)
}

// Register creates a new account and returns the issued token pair.
func (c *HTTPClient) Register(ctx context.Context, r RegisterRequest) (*TokenPair, error) {
	var pair TokenPair
	if err := c.postJSON(ctx, pathRegister, r, &pair); err != nil {
		return nil, err
	}
	return &pair, nil
}

// Login authenticates with a form-encoded body, per the backend's contract.
func (c *HTTPClient) Login(ctx context.Context, username, password string) (*TokenPair, error) {
	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)

	req, err := c.newRequest(ctx, http.MethodPost, pathLogin,
		"application/x-www-form-urlencoded", strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}

	var pair TokenPair
	if err := c.do(req, &pair); err != nil {
		return nil, err
	}
	return &pair, nil
}

// Refresh exchanges a refresh token for a new access token. The refresh
// token itself is not rotated by this endpoint.
func (c *HTTPClient) Refresh(ctx context.Context, refreshToken string) (string, error) {
	in := struct {
		RefreshToken string `json:"refresh_token"`
	}{RefreshToken: refreshToken}

	var out struct {
		AccessToken string `json:"access_token"`
	}
	if err := c.postJSON(ctx, pathRefresh, in, &out); err != nil {
		return "", err
	}
	return out.AccessToken, nil
}

// FetchProfile returns the authenticated user's profile.
func (c *HTTPClient) FetchProfile(ctx context.Context) (*models.UserProfile, error) {
	req, err := c.newRequest(ctx, http.MethodGet, pathProfile, "", nil)
	if err != nil {
		return nil, err
	}
	var profile models.UserProfile
	if err := c.do(req, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// UpdateProfile applies a partial profile change and returns the result.
func (c *HTTPClient) UpdateProfile(ctx context.Context, update models.ProfileUpdate) (*models.UserProfile, error) {
	payload, err := json.Marshal(update)
	if err != nil {
		return nil, err
	}
	req, err := c.newRequest(ctx, http.MethodPut, pathProfile, "application/json", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	var profile models.UserProfile
	if err := c.do(req, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// FetchInterests returns the catalog of selectable interests by category.
func (c *HTTPClient) FetchInterests(ctx context.Context) (map[string][]string, error) {
	req, err := c.newRequest(ctx, http.MethodGet, pathInterests, "", nil)
	if err != nil {
		return nil, err
	}
	var out struct {
		Interests map[string][]string `json:"interests"`
	}
	if err := c.do(req, &out); err != nil {
		return nil, err
	}
	return out.Interests, nil
}

// SaveInterests replaces the user's selected interests.
func (c *HTTPClient) SaveInterests(ctx context.Context, interests []string) error {
	payload, err := json.Marshal(struct {
		Interests []string `json:"interests"`
	}{Interests: interests})
	if err != nil {
		return err
	}
	req, err := c.newRequest(ctx, http.MethodPut, pathInterests, "application/json", bytes.NewReader(payload))
	if err != nil {
		return err
	}
	return c.do(req, nil)
}

// ListUsers returns profiles for the browse screen.
func (c *HTTPClient) ListUsers(ctx context.Context) ([]models.UserProfile, error) {
	req, err := c.newRequest(ctx, http.MethodGet, pathUsers, "", nil)
	if err != nil {
		return nil, err
	}
	var users []models.UserProfile
	if err := c.do(req, &users); err != nil {
		return nil, err
	}
	return users, nil
}
