package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/bnema/omp-cli/internal/domain"
	"github.com/bnema/omp-cli/internal/ports/mocks"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, router http.Handler, tokens *mocks.MockTokenStore) *Client {
	t.Helper()

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	client, err := NewClient(Config{BaseURL: server.URL + "/api", Timeout: 2 * time.Second}, tokens, server.Client(), nil)
	require.NoError(t, err)
	client.requestID = func() string { return "req-1" }

	return client
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func TestNewClientRejectsBadBaseURL(t *testing.T) {
	_, err := NewClient(Config{BaseURL: "ftp://example.com"}, nil, nil, nil)
	assert.ErrorContains(t, err, "must use http or https")

	client, err := NewClient(Config{}, nil, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultBaseURL, client.BaseURL())
}

func TestClientLoginSendsCredentialsWithoutToken(t *testing.T) {
	tokens := mocks.NewMockTokenStore(t)
	tokens.EXPECT().Load(mock.Anything).Return("", domain.ErrTokenNotFound).Once()

	router := chi.NewRouter()
	router.Post("/api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "req-1", r.Header.Get("X-Request-ID"))

		var body map[string]string
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, map[string]string{"email": "ana@example.com", "password": "pw"}, body)

		writeJSON(w, http.StatusOK, map[string]string{"access_token": "tok", "token_type": "bearer"})
	})

	client := newTestClient(t, router, tokens)
	token, err := client.Login(context.Background(), domain.Credentials{Email: "ana@example.com", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, domain.AccessToken{Value: "tok", TokenType: "bearer"}, token)
}

func TestClientMeAttachesBearerAndDecodesNaiveTimestamps(t *testing.T) {
	tokens := mocks.NewMockTokenStore(t)
	tokens.EXPECT().Load(mock.Anything).Return("tok", nil).Once()

	router := chi.NewRouter()
	router.Get("/api/auth/me", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		writeJSON(w, http.StatusOK, map[string]string{
			"id":         "u1",
			"email":      "ana@example.com",
			"full_name":  "Ana",
			"role":       "user",
			"created_at": "2026-01-02T03:04:05.123456",
		})
	})

	identity, err := newTestClient(t, router, tokens).Me(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.Identity{
		ID:        "u1",
		Email:     "ana@example.com",
		FullName:  "Ana",
		Role:      "user",
		CreatedAt: time.Date(2026, 1, 2, 3, 4, 5, 123456000, time.UTC),
	}, identity)
}

func TestClientRemoteErrors(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		wantMessage string
		wantUnauth  bool
	}{
		{name: "detail string", status: 401, body: `{"detail":"Could not validate credentials"}`, wantMessage: "Could not validate credentials", wantUnauth: true},
		{name: "detail list", status: 422, body: `{"detail":[{"msg":"field required"},{"msg":"value is not a valid email address"}]}`, wantMessage: "field required; value is not a valid email address"},
		{name: "error field", status: 400, body: `{"error":"bad input"}`, wantMessage: "bad input"},
		{name: "forbidden without body", status: 403, body: ``, wantMessage: "your session has expired, please sign in again", wantUnauth: true},
		{name: "server error html", status: 502, body: `<html>bad gateway</html>`, wantMessage: "server error: bad gateway"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tokens := mocks.NewMockTokenStore(t)
			tokens.EXPECT().Load(mock.Anything).Return("tok", nil).Once()

			router := chi.NewRouter()
			router.Get("/api/workshops", func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			})

			_, err := newTestClient(t, router, tokens).ListWorkshops(context.Background())
			var remote *domain.RemoteError
			require.ErrorAs(t, err, &remote)
			assert.Equal(t, tc.status, remote.Status)
			assert.Equal(t, tc.wantMessage, remote.Message)
			assert.Equal(t, tc.wantUnauth, errors.Is(err, domain.ErrUnauthenticated))
		})
	}
}

func TestClientNetworkErrorWhenServerUnreachable(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	baseURL := server.URL + "/api"
	server.Close()

	client, err := NewClient(Config{BaseURL: baseURL, Timeout: time.Second}, nil, nil, nil)
	require.NoError(t, err)

	_, err = client.ListConversations(context.Background())
	var network *domain.NetworkError
	require.ErrorAs(t, err, &network)
	assert.Equal(t, "GET /conversations", network.Op)
}

func TestClientTimeoutIsNetworkError(t *testing.T) {
	release := make(chan struct{})
	router := chi.NewRouter()
	router.Get("/api/health", func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	})

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)
	t.Cleanup(func() { close(release) })

	client, err := NewClient(Config{BaseURL: server.URL + "/api", Timeout: 50 * time.Millisecond}, nil, server.Client(), nil)
	require.NoError(t, err)

	_, err = client.Health(context.Background())
	var network *domain.NetworkError
	require.ErrorAs(t, err, &network)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestClientChatRoundTrip(t *testing.T) {
	tokens := mocks.NewMockTokenStore(t)
	tokens.EXPECT().Load(mock.Anything).Return("tok", nil).Twice()

	router := chi.NewRouter()
	router.Post("/api/ai/chat", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "sermon_coach", body["assistant_type"])
		assert.Equal(t, "ayuda", body["content"])
		writeJSON(w, http.StatusOK, map[string]string{"response": "claro"})
	})
	router.Get("/api/conversations", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, []map[string]any{{
			"id":             "c1",
			"user_id":        "u1",
			"assistant_type": "sermon_coach",
			"created_at":     "2026-01-02T03:04:05Z",
			"messages": []map[string]string{
				{"role": "user", "content": "ayuda", "timestamp": "2026-01-02T03:04:05"},
				{"role": "assistant", "content": "claro", "timestamp": "2026-01-02T03:04:06"},
			},
		}})
	})

	client := newTestClient(t, router, tokens)

	reply, err := client.SendChat(context.Background(), domain.AssistantSermonCoach, "ayuda")
	require.NoError(t, err)
	assert.Equal(t, "claro", reply.Content)

	conversations, err := client.ListConversations(context.Background())
	require.NoError(t, err)
	require.Len(t, conversations, 1)
	assert.Equal(t, domain.AssistantSermonCoach, conversations[0].AssistantType)
	require.Len(t, conversations[0].Messages, 2)
	assert.Equal(t, domain.RoleAssistant, conversations[0].Messages[1].Role)
	assert.Equal(t, time.Date(2026, 1, 2, 3, 4, 6, 0, time.UTC), conversations[0].Messages[1].Timestamp)
}

func TestClientGetWorkshopEscapesID(t *testing.T) {
	tokens := mocks.NewMockTokenStore(t)
	tokens.EXPECT().Load(mock.Anything).Return("tok", nil).Once()

	router := chi.NewRouter()
	router.Get("/api/workshops/{id}", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "w 1", chi.URLParam(r, "id"))
		writeJSON(w, http.StatusOK, map[string]any{
			"id": "w 1", "title": "Fundamentos", "description": "d", "content": "<p>c</p>",
			"order": 1, "duration_minutes": 45, "category": "fundamentals", "resources": []string{"Biblia"},
		})
	})

	workshop, err := newTestClient(t, router, tokens).GetWorkshop(context.Background(), "w 1")
	require.NoError(t, err)
	assert.Equal(t, domain.Workshop{
		ID: "w 1", Order: 1, Title: "Fundamentos", Description: "d", Content: "<p>c</p>",
		DurationMinutes: 45, Category: domain.CategoryFundamentals, Resources: []string{"Biblia"},
	}, workshop)
}

func TestClientPaymentsEndpoints(t *testing.T) {
	tokens := mocks.NewMockTokenStore(t)
	tokens.EXPECT().Load(mock.Anything).Return("tok", nil)

	router := chi.NewRouter()
	router.Route("/api/payments", func(r chi.Router) {
		r.Post("/stripe/create-intent", func(w http.ResponseWriter, r *http.Request) {
			var body map[string]any
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.InDelta(t, 42.5, body["amount"], 0.001)
			assert.Equal(t, "USD", body["currency"])
			assert.Equal(t, "Ana", body["donor_name"])
			assert.NotContains(t, body, "donor_email")
			writeJSON(w, http.StatusOK, map[string]string{"client_secret": "pi_1_secret", "payment_intent_id": "pi_1", "donation_id": "d1"})
		})
		r.Post("/stripe/confirm", func(w http.ResponseWriter, r *http.Request) {
			var body map[string]string
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, map[string]string{"payment_id": "pi_1", "payment_method": "stripe", "status": "succeeded"}, body)
			writeJSON(w, http.StatusOK, map[string]any{"success": true, "status": "succeeded", "message": "ok"})
		})
		r.Post("/paypal/create-order", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, map[string]string{"order_id": "O1", "approval_url": "https://paypal.example/approve?token=O1", "donation_id": "d2"})
		})
		r.Post("/paypal/capture-order", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, map[string]any{"success": true, "status": "completed", "message": "ok"})
		})
		r.Get("/donations", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, []map[string]any{{
				"id": "d1", "amount": 42.5, "currency": "USD", "payment_method": "stripe",
				"status": "completed", "message": "", "created_at": "2026-01-02T03:04:05", "completed_at": nil,
			}})
		})
		r.Get("/donation/{id}", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusNotFound, map[string]string{"detail": "Donation not found"})
		})
	})

	client := newTestClient(t, router, tokens)
	ctx := context.Background()
	intent := domain.DonationIntent{ID: "a1", Amount: domain.Money(4250), Donor: domain.Donor{Name: "Ana"}, Provider: domain.ProviderStripe}

	stripeIntent, err := client.CreateStripeIntent(ctx, intent)
	require.NoError(t, err)
	assert.Equal(t, domain.StripeIntent{ClientSecret: "pi_1_secret", PaymentIntentID: "pi_1", DonationID: "d1"}, stripeIntent)

	result, err := client.ConfirmStripePayment(ctx, domain.PaymentConfirmation{PaymentID: "pi_1", Provider: domain.ProviderStripe, Status: "succeeded"})
	require.NoError(t, err)
	assert.True(t, result.Success)

	order, err := client.CreatePaypalOrder(ctx, intent)
	require.NoError(t, err)
	assert.Equal(t, "O1", order.OrderID)

	captured, err := client.CapturePaypalOrder(ctx, domain.PaymentConfirmation{PaymentID: "O1", Provider: domain.ProviderPaypal, Status: "approved"})
	require.NoError(t, err)
	assert.Equal(t, "completed", captured.Status)

	donations, err := client.ListDonations(ctx)
	require.NoError(t, err)
	require.Len(t, donations, 1)
	assert.Equal(t, domain.Money(4250), donations[0].Amount)
	assert.True(t, donations[0].CompletedAt.IsZero())

	_, err = client.GetDonation(ctx, "missing")
	var remote *domain.RemoteError
	require.ErrorAs(t, err, &remote)
	assert.Equal(t, "Donation not found", remote.Message)
}

func TestClientThrottlesRequests(t *testing.T) {
	var hits atomic.Int32
	router := chi.NewRouter()
	router.Get("/api/health", func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		writeJSON(w, http.StatusOK, map[string]string{"status": "healthy", "timestamp": "2026-01-02T03:04:05"})
	})

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	client, err := NewClient(Config{BaseURL: server.URL + "/api", RatePerSecond: 0.001, Burst: 1}, nil, server.Client(), nil)
	require.NoError(t, err)

	status, err := client.Health(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "healthy", status.Status)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err = client.Health(ctx)
	var network *domain.NetworkError
	require.ErrorAs(t, err, &network)
	assert.Equal(t, int32(1), hits.Load())
}
