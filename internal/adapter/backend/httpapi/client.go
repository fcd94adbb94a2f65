// Package httpapi implements the remote ledger backend ports over its HTTP
// API. Callable functions live under /functions/{name}, documents under
// /documents/{path}. Every request carries an HS256 session token and a
// correlation ID.
package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"lightning-wallet-daemon/pkg/apperror"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const tokenIssuer = "walletd"

// tokenRenewalMargin renews the session token this long before expiry.
const tokenRenewalMargin = 30 * time.Second

// Client talks to the ledger backend. It implements ports.FunctionCaller,
// ports.DocumentStore and ports.AuthSession.
type Client struct {
	baseURL     string
	httpClient  *http.Client
	secret      []byte
	userID      string
	tokenExpiry time.Duration
	log         zerolog.Logger

	mu       sync.Mutex
	token    string
	tokenEOL time.Time
}

// Config configures the backend client. EmulatorHost, when set, overrides
// BaseURL for local development against a backend emulator.
type Config struct {
	BaseURL      string
	AuthSecret   string
	UserID       string
	TokenExpiry  time.Duration
	EmulatorHost string
	Timeout      time.Duration
}

// NewClient creates a backend client.
func NewClient(cfg Config, log zerolog.Logger) *Client {
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if cfg.EmulatorHost != "" {
		baseURL = "http://" + cfg.EmulatorHost
		log.Info().Str("host", cfg.EmulatorHost).Msg("using backend emulator")
	}
	return &Client{
		baseURL:     baseURL,
		httpClient:  &http.Client{Timeout: cfg.Timeout},
		secret:      []byte(cfg.AuthSecret),
		userID:      cfg.UserID,
		tokenExpiry: cfg.TokenExpiry,
		log:         log,
	}
}

// UserID identifies the backend user this daemon acts for.
func (c *Client) UserID(_ context.Context) (string, error) {
	if c.userID == "" {
		return "", apperror.ErrConfig("backend user id is not configured")
	}
	return c.userID, nil
}

// sessionToken returns a signed token, reusing the cached one until close
// to expiry.
func (c *Client) sessionToken() (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	if c.token != "" && now.Before(c.tokenEOL.Add(-tokenRenewalMargin)) {
		return c.token, nil
	}

	expiresAt := now.Add(c.tokenExpiry)
	claims := jwt.MapClaims{
		"uid": c.userID,
		"iat": now.Unix(),
		"exp": expiresAt.Unix(),
		"iss": tokenIssuer,
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("signing session token: %w", err)
	}

	c.token = token
	c.tokenEOL = expiresAt
	return token, nil
}

// do performs one authenticated request and returns the response body.
func (c *Client) do(ctx context.Context, method, path string, body any) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encoding request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, err
	}

	token, err := c.sessionToken()
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("X-Request-Id", uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return nil, fmt.Errorf("backend returned %d: %s", resp.StatusCode, strings.TrimSpace(string(data)))
	}
	return data, nil
}

// callFunction invokes one callable function and decodes the reply.
func (c *Client) callFunction(ctx context.Context, name string, args, out any) error {
	data, err := c.do(ctx, http.MethodPost, "/functions/"+name, args)
	if err != nil {
		return apperror.ErrBackendCall(name, err)
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return apperror.ErrBackendCall(name, fmt.Errorf("decoding reply: %w", err))
	}
	return nil
}

// GetDocument reads a backend document into out.
func (c *Client) GetDocument(ctx context.Context, path string, out any) error {
	data, err := c.do(ctx, http.MethodGet, "/documents/"+path, nil)
	if err != nil {
		return apperror.ErrDocumentRead(path, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return apperror.ErrDocumentRead(path, fmt.Errorf("decoding document: %w", err))
	}
	return nil
}

// SetDocument writes fields to a backend document. With merge set, fields
// not named are left untouched.
func (c *Client) SetDocument(ctx context.Context, path string, fields map[string]any, merge bool) error {
	body := struct {
		Fields map[string]any `json:"fields"`
		Merge  bool           `json:"merge"`
	}{fields, merge}
	if _, err := c.do(ctx, http.MethodPut, "/documents/"+path, body); err != nil {
		return apperror.ErrDocumentWrite(path, err)
	}
	return nil
}
