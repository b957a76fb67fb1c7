package ports

import (
	"context"

	"github.com/bnema/omp-cli/internal/domain"
)

// CardConfirmer runs the provider-hosted card confirmation for a payment intent.
type CardConfirmer interface {
	ConfirmCardPayment(ctx context.Context, intent domain.StripeIntent, donor domain.Donor) (domain.CardConfirmation, error)
}

// PaypalApprover waits for the buyer to approve an order on PayPal.
type PaypalApprover interface {
	ApproveOrder(ctx context.Context, order domain.PaypalOrder) (domain.PaypalApproval, error)
}
