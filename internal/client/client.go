package client

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync"
	"time"
)

// F5Client defines the interface for talking to a BIG-IP management API.
type F5Client interface {
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	GetPools(ctx context.Context) ([]PoolInfo, error)
	GetPoolMembers(ctx context.Context, pool string) ([]MemberInfo, error)
	GetVirtualServers(ctx context.Context) ([]VirtualInfo, error)
	GetSystemLogs(ctx context.Context) ([]string, error)
	Host() string
}

// ClientConfig holds configuration for DefaultClient.
type ClientConfig struct {
	Host               string // appliance host or host:port, no scheme
	Username           string
	Password           string
	InsecureSkipVerify bool
	RequestTimeout     time.Duration
}

// DefaultClient implements F5Client using the standard net/http package and
// iControl REST token authentication (X-F5-Auth-Token).
type DefaultClient struct {
	http   *http.Client
	config ClientConfig

	mu    sync.Mutex
	token string
}

// NewDefaultClient constructs a DefaultClient from the given config.
// It configures TLS skip-verify and request timeout from the config.
// Returns an error if Host or Username is empty.
func NewDefaultClient(cfg ClientConfig) (*DefaultClient, error) {
	if cfg.Host == "" {
		return nil, fmt.Errorf("Host is required")
	}
	if cfg.Username == "" {
		return nil, fmt.Errorf("Username is required")
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = 10 * time.Second
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.TLSClientConfig = &tls.Config{
		InsecureSkipVerify: cfg.InsecureSkipVerify, //nolint:gosec
	}

	return &DefaultClient{
		http: &http.Client{
			Timeout:   cfg.RequestTimeout,
			Transport: transport,
		},
		config: cfg,
	}, nil
}

// Host returns the configured appliance host.
func (c *DefaultClient) Host() string {
	return c.config.Host
}

// Login authenticates against /mgmt/shared/authn/login and stores the
// returned session token for subsequent requests.
func (c *DefaultClient) Login(ctx context.Context) error {
	payload, err := json.Marshal(loginRequest{
		Username:          c.config.Username,
		Password:          c.config.Password,
		LoginProviderName: "tmos",
	})
	if err != nil {
		return fmt.Errorf("Login encode: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL()+endpointLogin, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("Login: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	body, err := c.do(req)
	if err != nil {
		return fmt.Errorf("Login: %w", err)
	}

	var result loginResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return fmt.Errorf("Login decode: %w", err)
	}
	if result.Token.Token == "" {
		return fmt.Errorf("Login: no token in response")
	}

	c.mu.Lock()
	c.token = result.Token.Token
	c.mu.Unlock()
	return nil
}

// Logout deletes the current session token on the appliance, releasing the
// authentication session. A client with no token is a no-op.
func (c *DefaultClient) Logout(ctx context.Context) error {
	c.mu.Lock()
	token := c.token
	c.token = ""
	c.mu.Unlock()
	if token == "" {
		return nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodDelete,
		c.baseURL()+endpointTokens+"/"+url.PathEscape(token), nil)
	if err != nil {
		return fmt.Errorf("Logout: create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(authTokenHeader, token)

	if _, err := c.do(req); err != nil {
		return fmt.Errorf("Logout: %w", err)
	}
	return nil
}

// doGet performs a GET request to the given path (relative to the mgmt base
// URL) with the session token attached. On a 401 the token has expired; one
// re-login is attempted before the request is retried.
func (c *DefaultClient) doGet(ctx context.Context, path string) ([]byte, error) {
	body, status, err := c.doGetOnce(ctx, path)
	if status == http.StatusUnauthorized {
		if err := c.Login(ctx); err != nil {
			return nil, fmt.Errorf("renew token: %w", err)
		}
		body, _, err = c.doGetOnce(ctx, path)
		return body, err
	}
	return body, err
}

func (c *DefaultClient) doGetOnce(ctx context.Context, path string) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL()+path, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	c.mu.Lock()
	token := c.token
	c.mu.Unlock()
	if token != "" {
		req.Header.Set(authTokenHeader, token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("read body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, resp.StatusCode,
			fmt.Errorf("unexpected status %d: %s", resp.StatusCode, truncate(body, 200))
	}
	return body, resp.StatusCode, nil
}

// do executes a fully-formed request and returns the body on 2xx.
func (c *DefaultClient) do(req *http.Request) ([]byte, error) {
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status %d: %s", resp.StatusCode, truncate(body, 200))
	}
	return body, nil
}

func (c *DefaultClient) baseURL() string {
	return "https://" + c.config.Host
}

const (
	authTokenHeader = "X-F5-Auth-Token"

	// 32 MB — well above any real iControl REST response.
	maxResponseBytes = 32 * 1024 * 1024
)

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
