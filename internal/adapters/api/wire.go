package api

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/bnema/omp-cli/internal/domain"
)

var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
}

// wireTime accepts RFC 3339 timestamps and the zone-less UTC form the backend
// emits for naive datetimes.
type wireTime struct {
	time.Time
}

func (t *wireTime) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		t.Time = time.Time{}
		return nil
	}

	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("decode timestamp: %w", err)
	}
	raw = strings.TrimSpace(raw)
	if raw == "" {
		t.Time = time.Time{}
		return nil
	}

	for _, layout := range timeLayouts {
		parsed, err := time.ParseInLocation(layout, raw, time.UTC)
		if err == nil {
			t.Time = parsed
			return nil
		}
	}

	return fmt.Errorf("decode timestamp %q: unsupported format", raw)
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

func (r tokenResponse) toDomain() domain.AccessToken {
	return domain.AccessToken{Value: r.AccessToken, TokenType: r.TokenType}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
}

type facebookLoginRequest struct {
	FacebookID  string `json:"facebook_id"`
	AccessToken string `json:"access_token"`
	Email       string `json:"email,omitempty"`
	FullName    string `json:"full_name,omitempty"`
}

type userResponse struct {
	ID        string   `json:"id"`
	Email     string   `json:"email"`
	FullName  string   `json:"full_name"`
	Role      string   `json:"role"`
	CreatedAt wireTime `json:"created_at"`
}

func (r userResponse) toDomain() domain.Identity {
	return domain.Identity{
		ID:        domain.UserID(r.ID),
		Email:     r.Email,
		FullName:  r.FullName,
		Role:      r.Role,
		CreatedAt: r.CreatedAt.Time,
	}
}

type chatRequest struct {
	AssistantType string `json:"assistant_type"`
	Content       string `json:"content"`
}

type chatResponse struct {
	Response string `json:"response"`
}

type messageResponse struct {
	Role      string   `json:"role"`
	Content   string   `json:"content"`
	Timestamp wireTime `json:"timestamp"`
}

type conversationResponse struct {
	ID            string            `json:"id"`
	AssistantType string            `json:"assistant_type"`
	Messages      []messageResponse `json:"messages"`
	CreatedAt     wireTime          `json:"created_at"`
}

func (r conversationResponse) toDomain() domain.Conversation {
	messages := make([]domain.Message, 0, len(r.Messages))
	for _, m := range r.Messages {
		messages = append(messages, domain.Message{
			Role:      domain.Role(m.Role),
			Content:   m.Content,
			Timestamp: m.Timestamp.Time,
		})
	}

	return domain.Conversation{
		ID:            domain.ConversationID(r.ID),
		AssistantType: domain.AssistantType(r.AssistantType),
		Messages:      messages,
		CreatedAt:     r.CreatedAt.Time,
	}
}

type workshopResponse struct {
	ID              string   `json:"id"`
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	Content         string   `json:"content"`
	Order           int      `json:"order"`
	DurationMinutes int      `json:"duration_minutes"`
	Category        string   `json:"category"`
	Resources       []string `json:"resources"`
}

func (r workshopResponse) toDomain() domain.Workshop {
	return domain.Workshop{
		ID:              domain.WorkshopID(r.ID),
		Order:           r.Order,
		Title:           r.Title,
		Description:     r.Description,
		Content:         r.Content,
		DurationMinutes: r.DurationMinutes,
		Category:        domain.Category(r.Category),
		Resources:       r.Resources,
	}
}

type paymentRequest struct {
	Amount     float64 `json:"amount"`
	Currency   string  `json:"currency"`
	DonorName  string  `json:"donor_name,omitempty"`
	DonorEmail string  `json:"donor_email,omitempty"`
	Message    string  `json:"message,omitempty"`
}

func newPaymentRequest(intent domain.DonationIntent) paymentRequest {
	return paymentRequest{
		Amount:     intent.Amount.Float(),
		Currency:   domain.Currency,
		DonorName:  strings.TrimSpace(intent.Donor.Name),
		DonorEmail: strings.TrimSpace(intent.Donor.Email),
		Message:    strings.TrimSpace(intent.Donor.Message),
	}
}

type stripeIntentResponse struct {
	ClientSecret    string `json:"client_secret"`
	PaymentIntentID string `json:"payment_intent_id"`
	DonationID      string `json:"donation_id"`
}

type paypalOrderResponse struct {
	OrderID     string `json:"order_id"`
	ApprovalURL string `json:"approval_url"`
	DonationID  string `json:"donation_id"`
}

type confirmationRequest struct {
	PaymentID     string `json:"payment_id"`
	PaymentMethod string `json:"payment_method"`
	Status        string `json:"status"`
}

type paymentResultResponse struct {
	Success bool   `json:"success"`
	Status  string `json:"status"`
	Message string `json:"message"`
}

type donationResponse struct {
	ID            string   `json:"id"`
	Amount        float64  `json:"amount"`
	Currency      string   `json:"currency"`
	PaymentMethod string   `json:"payment_method"`
	Status        string   `json:"status"`
	DonorName     string   `json:"donor_name"`
	Message       string   `json:"message"`
	CreatedAt     wireTime `json:"created_at"`
	CompletedAt   wireTime `json:"completed_at"`
}

func (r donationResponse) toDomain() domain.Donation {
	return domain.Donation{
		ID:            r.ID,
		Amount:        domain.Money(math.Round(r.Amount * 100)),
		Currency:      r.Currency,
		PaymentMethod: domain.Provider(r.PaymentMethod),
		Status:        domain.DonationStatus(r.Status),
		DonorName:     r.DonorName,
		Message:       r.Message,
		CreatedAt:     r.CreatedAt.Time,
		CompletedAt:   r.CompletedAt.Time,
	}
}

// HealthStatus is the backend liveness report.
type HealthStatus struct {
	Status    string
	Timestamp time.Time
}

type healthResponse struct {
	Status    string   `json:"status"`
	Timestamp wireTime `json:"timestamp"`
}
