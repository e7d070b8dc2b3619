package adapter

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-login-server/internal/logger"
	"github.com/MKhiriev/go-login-server/internal/service"
	"github.com/MKhiriev/go-login-server/internal/utils"
	"github.com/MKhiriev/go-login-server/models"
)

const defaultRequestTimeout = 15 * time.Second

// HTTPClientConfig configures [NewHTTPClient].
type HTTPClientConfig struct {
	// BaseURL is the server address. A missing scheme defaults to http.
	BaseURL string
	// RequestTimeout bounds every request. Zero selects 15s.
	RequestTimeout time.Duration
}

type httpClient struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPClient constructs a REST implementation of [Client].
//
// Returns ErrInvalidBaseURL if cfg.BaseURL is empty or cannot be parsed.
func NewHTTPClient(cfg HTTPClientConfig, logger *logger.Logger) (Client, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidBaseURL, err)
	}

	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}

	return &httpClient{
		client: utils.NewHTTPClient(baseURL, timeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (c *httpClient) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = strings.TrimSpace(token)
}

func (c *httpClient) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// Register implements [Client] via POST /api/users.
func (c *httpClient) Register(ctx context.Context, username, password, email string) (models.User, error) {
	var user models.User

	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(models.RegisterRequest{Username: username, Password: password, Email: email}).
		SetResult(&user).
		Post("/api/users")
	if err != nil {
		return models.User{}, transportError("register", err)
	}
	if err = mapHTTPError(resp, service.ErrInvalidCredentials); err != nil {
		return models.User{}, err
	}

	c.logger.Debug().Str("func", "httpClient.Register").Int64("user_id", user.UserID).Msg("user registered")
	return user, nil
}

// Login implements [Client] via POST /api/sessions.
func (c *httpClient) Login(ctx context.Context, username, password string) (models.SessionToken, error) {
	var token models.SessionToken

	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(models.LoginRequest{Username: username, Password: password}).
		SetResult(&token).
		Post("/api/sessions")
	if err != nil {
		return models.SessionToken{}, transportError("login", err)
	}
	if err = mapHTTPError(resp, service.ErrInvalidCredentials); err != nil {
		return models.SessionToken{}, err
	}
	if token.SignedString == "" {
		return models.SessionToken{}, fmt.Errorf("%w: login answered without a token", ErrUnexpectedResponse)
	}

	c.SetToken(token.SignedString)
	return token, nil
}

// Logout implements [Client] via DELETE /api/sessions.
func (c *httpClient) Logout(ctx context.Context) error {
	req, err := c.authedRequest(ctx)
	if err != nil {
		return err
	}

	resp, err := req.Delete("/api/sessions")
	if err != nil {
		return transportError("logout", err)
	}
	if err = mapHTTPError(resp, service.ErrInvalidToken); err != nil {
		return err
	}

	c.SetToken("")
	return nil
}

// GetProfile implements [Client] via GET /api/users/{id}.
func (c *httpClient) GetProfile(ctx context.Context, id int64) (models.User, error) {
	req, err := c.authedRequest(ctx)
	if err != nil {
		return models.User{}, err
	}

	var user models.User
	resp, err := req.SetResult(&user).Get(userPath(id))
	if err != nil {
		return models.User{}, transportError("get profile", err)
	}
	if err = mapHTTPError(resp, service.ErrInvalidToken); err != nil {
		return models.User{}, err
	}

	return user, nil
}

// UpdateProfile implements [Client] via PATCH /api/users/{id}.
func (c *httpClient) UpdateProfile(ctx context.Context, id int64, email string) (models.User, error) {
	req, err := c.authedRequest(ctx)
	if err != nil {
		return models.User{}, err
	}

	var user models.User
	resp, err := req.
		SetBody(models.UpdateEmailRequest{Email: email}).
		SetResult(&user).
		Patch(userPath(id))
	if err != nil {
		return models.User{}, transportError("update profile", err)
	}
	if err = mapHTTPError(resp, service.ErrInvalidToken); err != nil {
		return models.User{}, err
	}

	return user, nil
}

// DeleteAccount implements [Client] via DELETE /api/users/{id}. A 404
// answer means the record was already gone and is reported as false.
func (c *httpClient) DeleteAccount(ctx context.Context, id int64) (bool, error) {
	req, err := c.authedRequest(ctx)
	if err != nil {
		return false, err
	}

	resp, err := req.Delete(userPath(id))
	if err != nil {
		return false, transportError("delete account", err)
	}
	if resp.StatusCode() == http.StatusNotFound {
		return false, nil
	}
	if err = mapHTTPError(resp, service.ErrInvalidToken); err != nil {
		return false, err
	}

	c.SetToken("")
	return true, nil
}

// Version implements [Client] via GET /api/version.
func (c *httpClient) Version(ctx context.Context) (string, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		Get("/api/version")
	if err != nil {
		return "", transportError("version", err)
	}
	if err = mapHTTPError(resp, service.ErrInvalidToken); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}

func (c *httpClient) authedRequest(ctx context.Context) (*resty.Request, error) {
	token := c.Token()
	if token == "" {
		return nil, ErrNoToken
	}

	return c.client.R().
		SetContext(ctx).
		SetAuthToken(token), nil
}

func userPath(id int64) string {
	return "/api/users/" + strconv.FormatInt(id, 10)
}
