package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/bnema/omp-cli/internal/domain"
	"github.com/bnema/omp-cli/internal/ports"
	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

const (
	DefaultBaseURL   = "http://localhost:8000/api"
	DefaultTimeout   = 30 * time.Second
	maxResponseBytes = 4 << 20
	requestIDHeader  = "X-Request-ID"
)

type Config struct {
	BaseURL string
	Timeout time.Duration
	// RatePerSecond <= 0 disables client-side throttling.
	RatePerSecond float64
	Burst         int
}

// Client is the typed gateway to the REST backend. Every call reads the
// bearer token from the token store so a login or logout is picked up at once.
type Client struct {
	baseURL    string
	timeout    time.Duration
	httpClient *http.Client
	tokens     ports.TokenStore
	limiter    *rate.Limiter
	logger     *slog.Logger
	requestID  func() string
}

var (
	_ ports.AuthAPI     = (*Client)(nil)
	_ ports.ChatAPI     = (*Client)(nil)
	_ ports.WorkshopAPI = (*Client)(nil)
	_ ports.PaymentsAPI = (*Client)(nil)
)

func NewClient(cfg Config, tokens ports.TokenStore, httpClient *http.Client, logger *slog.Logger) (*Client, error) {
	baseURL := strings.TrimSpace(cfg.BaseURL)
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse api base url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, fmt.Errorf("api base url %q must use http or https", baseURL)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if logger == nil {
		logger = slog.Default()
	}

	var limiter *rate.Limiter
	if cfg.RatePerSecond > 0 {
		burst := cfg.Burst
		if burst <= 0 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(cfg.RatePerSecond), burst)
	}

	return &Client{
		baseURL:    strings.TrimRight(parsed.String(), "/"),
		timeout:    timeout,
		httpClient: httpClient,
		tokens:     tokens,
		limiter:    limiter,
		logger:     logger.With("component", "api"),
		requestID:  uuid.NewString,
	}, nil
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	op := method + " " + path

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return &domain.NetworkError{Op: op, Err: err}
		}
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s request: %w", op, err)
		}
		reader = bytes.NewReader(payload)
	}

	requestCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(requestCtx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("create %s request: %w", op, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	requestID := c.requestID()
	req.Header.Set(requestIDHeader, requestID)
	c.authorize(ctx, req)

	started := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Debug("request failed", "op", op, "request_id", requestID, "error", err)
		return &domain.NetworkError{Op: op, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	c.logger.Debug("request completed",
		"op", op,
		"request_id", requestID,
		"status", resp.StatusCode,
		"duration", time.Since(started),
	)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return decodeRemoteError(resp)
	}
	if out == nil {
		return nil
	}

	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(out); err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			return &domain.NetworkError{Op: op, Err: err}
		}
		return fmt.Errorf("decode %s response: %w", op, err)
	}

	return nil
}

func (c *Client) authorize(ctx context.Context, req *http.Request) {
	if c.tokens == nil {
		return
	}

	token, err := c.tokens.Load(ctx)
	if err != nil {
		if !errors.Is(err, domain.ErrTokenNotFound) {
			c.logger.Warn("access token unavailable, sending request without it", "error", err)
		}
		return
	}

	req.Header.Set("Authorization", "Bearer "+token)
}

type errorBody struct {
	Detail  json.RawMessage `json:"detail"`
	Error   string          `json:"error"`
	Message string          `json:"message"`
}

func decodeRemoteError(resp *http.Response) error {
	remote := &domain.RemoteError{Status: resp.StatusCode}

	data, _ := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	var body errorBody
	if err := json.Unmarshal(data, &body); err == nil {
		remote.Message = detailMessage(body.Detail)
		if remote.Message == "" {
			remote.Message = body.Error
		}
		if remote.Message == "" {
			remote.Message = body.Message
		}
	}
	if remote.Message == "" {
		remote.Message = defaultRemoteMessage(resp.StatusCode)
	}

	return remote
}

// detailMessage accepts both a plain string and the list form used for
// request validation failures.
func detailMessage(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}

	var text string
	if err := json.Unmarshal(raw, &text); err == nil {
		return text
	}

	var items []struct {
		Msg string `json:"msg"`
	}
	if err := json.Unmarshal(raw, &items); err == nil {
		messages := make([]string, 0, len(items))
		for _, item := range items {
			if item.Msg != "" {
				messages = append(messages, item.Msg)
			}
		}
		return strings.Join(messages, "; ")
	}

	return ""
}

func defaultRemoteMessage(status int) string {
	switch status {
	case http.StatusUnauthorized, http.StatusForbidden:
		return "your session has expired, please sign in again"
	case http.StatusNotFound:
		return "the requested resource was not found"
	default:
		if text := http.StatusText(status); text != "" {
			return "server error: " + strings.ToLower(text)
		}
		return fmt.Sprintf("server error: status %d", status)
	}
}
