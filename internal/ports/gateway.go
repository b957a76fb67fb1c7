package ports

import (
	"context"

	"github.com/bnema/omp-cli/internal/domain"
)

type AuthAPI interface {
	Login(ctx context.Context, creds domain.Credentials) (domain.AccessToken, error)
	Register(ctx context.Context, reg domain.Registration) (domain.AccessToken, error)
	LoginWithFacebook(ctx context.Context, profile domain.FacebookProfile) (domain.AccessToken, error)
	Me(ctx context.Context) (domain.Identity, error)
}

type ChatAPI interface {
	SendChat(ctx context.Context, assistant domain.AssistantType, content string) (domain.ChatReply, error)
	ListConversations(ctx context.Context) ([]domain.Conversation, error)
}

type WorkshopAPI interface {
	ListWorkshops(ctx context.Context) ([]domain.Workshop, error)
	GetWorkshop(ctx context.Context, id domain.WorkshopID) (domain.Workshop, error)
}

type PaymentsAPI interface {
	CreateStripeIntent(ctx context.Context, intent domain.DonationIntent) (domain.StripeIntent, error)
	ConfirmStripePayment(ctx context.Context, confirmation domain.PaymentConfirmation) (domain.PaymentResult, error)
	CreatePaypalOrder(ctx context.Context, intent domain.DonationIntent) (domain.PaypalOrder, error)
	CapturePaypalOrder(ctx context.Context, confirmation domain.PaymentConfirmation) (domain.PaymentResult, error)
	ListDonations(ctx context.Context) ([]domain.Donation, error)
	GetDonation(ctx context.Context, id string) (domain.Donation, error)
}
