package facebook

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/bnema/omp-cli/internal/domain"
)

const (
	DefaultGraphURL    = "https://graph.facebook.com/v18.0"
	maxGraphBodyBytes  = 1 << 20
	defaultGraphTimout = 15 * time.Second
)

// GraphClient turns a Facebook user access token into the profile the backend
// needs for social sign-in.
type GraphClient struct {
	BaseURL    string
	HTTPClient *http.Client
	Timeout    time.Duration
}

type meResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type graphErrorResponse struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

func (g GraphClient) Profile(ctx context.Context, accessToken string) (domain.FacebookProfile, error) {
	accessToken = strings.TrimSpace(accessToken)
	if accessToken == "" {
		return domain.FacebookProfile{}, domain.NewValidationError("facebook access token", "is required")
	}

	base := strings.TrimRight(g.BaseURL, "/")
	if base == "" {
		base = DefaultGraphURL
	}
	values := url.Values{}
	values.Set("fields", "id,name,email")
	values.Set("access_token", accessToken)
	endpoint := base + "/me?" + values.Encode()

	timeout := g.Timeout
	if timeout <= 0 {
		timeout = defaultGraphTimout
	}
	requestCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(requestCtx, http.MethodGet, endpoint, nil)
	if err != nil {
		return domain.FacebookProfile{}, fmt.Errorf("create graph request: %w", err)
	}

	client := g.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return domain.FacebookProfile{}, &domain.NetworkError{Op: "GET graph /me", Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	body := io.LimitReader(resp.Body, maxGraphBodyBytes)
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		var graphErr graphErrorResponse
		_ = json.NewDecoder(body).Decode(&graphErr)
		message := graphErr.Error.Message
		if message == "" {
			message = fmt.Sprintf("facebook graph returned status %d", resp.StatusCode)
		}
		return domain.FacebookProfile{}, &domain.RemoteError{Status: resp.StatusCode, Message: message}
	}

	var me meResponse
	if err := json.NewDecoder(body).Decode(&me); err != nil {
		return domain.FacebookProfile{}, fmt.Errorf("decode graph profile: %w", err)
	}
	if me.ID == "" {
		return domain.FacebookProfile{}, errors.New("graph profile is missing the user id")
	}

	return domain.FacebookProfile{
		FacebookID:  me.ID,
		AccessToken: accessToken,
		Email:       me.Email,
		FullName:    me.Name,
	}, nil
}
