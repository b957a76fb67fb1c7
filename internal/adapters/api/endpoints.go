package api

import (
	"context"
	"errors"
	"net/http"
	"net/url"

	"github.com/bnema/omp-cli/internal/domain"
)

func (c *Client) Login(ctx context.Context, creds domain.Credentials) (domain.AccessToken, error) {
	var resp tokenResponse
	if err := c.do(ctx, http.MethodPost, "/auth/login", loginRequest{Email: creds.Email, Password: creds.Password}, &resp); err != nil {
		return domain.AccessToken{}, err
	}
	return resp.toDomain(), nil
}

func (c *Client) Register(ctx context.Context, reg domain.Registration) (domain.AccessToken, error) {
	body := registerRequest{Email: reg.Email, Password: reg.Password, FullName: reg.FullName}

	var resp tokenResponse
	if err := c.do(ctx, http.MethodPost, "/auth/register", body, &resp); err != nil {
		return domain.AccessToken{}, err
	}
	return resp.toDomain(), nil
}

func (c *Client) LoginWithFacebook(ctx context.Context, profile domain.FacebookProfile) (domain.AccessToken, error) {
	body := facebookLoginRequest{
		FacebookID:  profile.FacebookID,
		AccessToken: profile.AccessToken,
		Email:       profile.Email,
		FullName:    profile.FullName,
	}

	var resp tokenResponse
	if err := c.do(ctx, http.MethodPost, "/auth/facebook", body, &resp); err != nil {
		return domain.AccessToken{}, err
	}
	return resp.toDomain(), nil
}

func (c *Client) Me(ctx context.Context) (domain.Identity, error) {
	var resp userResponse
	if err := c.do(ctx, http.MethodGet, "/auth/me", nil, &resp); err != nil {
		return domain.Identity{}, err
	}
	return resp.toDomain(), nil
}

func (c *Client) SendChat(ctx context.Context, assistant domain.AssistantType, content string) (domain.ChatReply, error) {
	body := chatRequest{AssistantType: string(assistant), Content: content}

	var resp chatResponse
	if err := c.do(ctx, http.MethodPost, "/ai/chat", body, &resp); err != nil {
		return domain.ChatReply{}, err
	}
	return domain.ChatReply{Content: resp.Response}, nil
}

func (c *Client) ListConversations(ctx context.Context) ([]domain.Conversation, error) {
	var resp []conversationResponse
	if err := c.do(ctx, http.MethodGet, "/conversations", nil, &resp); err != nil {
		return nil, err
	}

	conversations := make([]domain.Conversation, 0, len(resp))
	for _, conv := range resp {
		conversations = append(conversations, conv.toDomain())
	}
	return conversations, nil
}

func (c *Client) ListWorkshops(ctx context.Context) ([]domain.Workshop, error) {
	var resp []workshopResponse
	if err := c.do(ctx, http.MethodGet, "/workshops", nil, &resp); err != nil {
		return nil, err
	}

	workshops := make([]domain.Workshop, 0, len(resp))
	for _, w := range resp {
		workshops = append(workshops, w.toDomain())
	}
	return workshops, nil
}

func (c *Client) GetWorkshop(ctx context.Context, id domain.WorkshopID) (domain.Workshop, error) {
	if id == "" {
		return domain.Workshop{}, domain.NewValidationError("workshop", "id is required")
	}

	var resp workshopResponse
	if err := c.do(ctx, http.MethodGet, "/workshops/"+url.PathEscape(string(id)), nil, &resp); err != nil {
		return domain.Workshop{}, err
	}
	return resp.toDomain(), nil
}

func (c *Client) CreateStripeIntent(ctx context.Context, intent domain.DonationIntent) (domain.StripeIntent, error) {
	var resp stripeIntentResponse
	if err := c.do(ctx, http.MethodPost, "/payments/stripe/create-intent", newPaymentRequest(intent), &resp); err != nil {
		return domain.StripeIntent{}, err
	}
	if resp.ClientSecret == "" || resp.PaymentIntentID == "" {
		return domain.StripeIntent{}, errors.New("create stripe intent: response missing client secret or intent id")
	}

	return domain.StripeIntent{
		ClientSecret:    resp.ClientSecret,
		PaymentIntentID: resp.PaymentIntentID,
		DonationID:      resp.DonationID,
	}, nil
}

func (c *Client) ConfirmStripePayment(ctx context.Context, confirmation domain.PaymentConfirmation) (domain.PaymentResult, error) {
	return c.settle(ctx, "/payments/stripe/confirm", confirmation)
}

func (c *Client) CreatePaypalOrder(ctx context.Context, intent domain.DonationIntent) (domain.PaypalOrder, error) {
	var resp paypalOrderResponse
	if err := c.do(ctx, http.MethodPost, "/payments/paypal/create-order", newPaymentRequest(intent), &resp); err != nil {
		return domain.PaypalOrder{}, err
	}
	if resp.OrderID == "" || resp.ApprovalURL == "" {
		return domain.PaypalOrder{}, errors.New("create paypal order: response missing order id or approval url")
	}

	return domain.PaypalOrder{
		OrderID:     resp.OrderID,
		ApprovalURL: resp.ApprovalURL,
		DonationID:  resp.DonationID,
	}, nil
}

func (c *Client) CapturePaypalOrder(ctx context.Context, confirmation domain.PaymentConfirmation) (domain.PaymentResult, error) {
	return c.settle(ctx, "/payments/paypal/capture-order", confirmation)
}

func (c *Client) ListDonations(ctx context.Context) ([]domain.Donation, error) {
	var resp []donationResponse
	if err := c.do(ctx, http.MethodGet, "/payments/donations", nil, &resp); err != nil {
		return nil, err
	}

	donations := make([]domain.Donation, 0, len(resp))
	for _, d := range resp {
		donations = append(donations, d.toDomain())
	}
	return donations, nil
}

func (c *Client) GetDonation(ctx context.Context, id string) (domain.Donation, error) {
	if id == "" {
		return domain.Donation{}, domain.NewValidationError("donation", "id is required")
	}

	var resp donationResponse
	if err := c.do(ctx, http.MethodGet, "/payments/donation/"+url.PathEscape(id), nil, &resp); err != nil {
		return domain.Donation{}, err
	}
	return resp.toDomain(), nil
}

func (c *Client) Health(ctx context.Context) (HealthStatus, error) {
	var resp healthResponse
	if err := c.do(ctx, http.MethodGet, "/health", nil, &resp); err != nil {
		return HealthStatus{}, err
	}
	return HealthStatus{Status: resp.Status, Timestamp: resp.Timestamp.Time}, nil
}

func (c *Client) settle(ctx context.Context, path string, confirmation domain.PaymentConfirmation) (domain.PaymentResult, error) {
	body := confirmationRequest{
		PaymentID:     confirmation.PaymentID,
		PaymentMethod: string(confirmation.Provider),
		Status:        confirmation.Status,
	}

	var resp paymentResultResponse
	if err := c.do(ctx, http.MethodPost, path, body, &resp); err != nil {
		return domain.PaymentResult{}, err
	}

	return domain.PaymentResult{Success: resp.Success, Status: resp.Status, Message: resp.Message}, nil
}
