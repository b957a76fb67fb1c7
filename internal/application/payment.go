package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/bnema/omp-cli/internal/domain"
	"github.com/bnema/omp-cli/internal/ports"
	"github.com/google/uuid"
)

const stripeSucceeded = "succeeded"

type PaymentState int

const (
	PaymentIdle PaymentState = iota
	PaymentAmountSelected
	PaymentProviderSelected
	PaymentSubmitting
	PaymentSucceeded
	PaymentFailed
)

func (s PaymentState) String() string {
	switch s {
	case PaymentIdle:
		return "idle"
	case PaymentAmountSelected:
		return "amount_selected"
	case PaymentProviderSelected:
		return "provider_selected"
	case PaymentSubmitting:
		return "submitting"
	case PaymentSucceeded:
		return "succeeded"
	case PaymentFailed:
		return "failed"
	default:
		return fmt.Sprintf("PaymentState(%d)", int(s))
	}
}

// Receipt describes a completed donation.
type Receipt struct {
	AttemptID  string
	DonationID string
	PaymentID  string
	Provider   domain.Provider
	Amount     domain.Money
	Status     string
	Message    string
}

// PaymentController drives a single donation form through its states.
type PaymentController struct {
	payments ports.PaymentsAPI
	card     ports.CardConfirmer
	paypal   ports.PaypalApprover
	newID    func() string
	logger   *slog.Logger

	mu         sync.Mutex
	amount     domain.Money
	donor      domain.Donor
	provider   domain.Provider
	submitting bool
	failure    error
}

func NewPaymentController(payments ports.PaymentsAPI, card ports.CardConfirmer, paypal ports.PaypalApprover, logger *slog.Logger) *PaymentController {
	if logger == nil {
		logger = slog.Default()
	}

	return &PaymentController{
		payments: payments,
		card:     card,
		paypal:   paypal,
		newID:    uuid.NewString,
		logger:   logger.With("component", "payment"),
	}
}

// State is derived from the current fields rather than stored.
func (c *PaymentController) State() PaymentState {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.settleLocked()
}

func (c *PaymentController) Amount() domain.Money {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.amount
}

func (c *PaymentController) Provider() domain.Provider {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.provider
}

// LastError is the failure that put the controller in PaymentFailed.
func (c *PaymentController) LastError() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.failure
}

// SelectAmount replaces the amount with the parsed custom value. An invalid
// value clears the amount so nothing can be submitted.
func (c *PaymentController) SelectAmount(raw string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.submitting {
		return domain.ErrBusy
	}
	c.failure = nil

	amount, err := domain.ParseAmount(raw)
	if err != nil {
		c.amount = 0
		return err
	}

	c.amount = amount
	return nil
}

func (c *PaymentController) SelectPreset(dollars int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.submitting {
		return domain.ErrBusy
	}
	c.failure = nil

	if !slices.Contains(domain.PresetAmounts, dollars) {
		c.amount = 0
		return domain.NewValidationError("amount", fmt.Sprintf("$%d is not a preset amount", dollars))
	}

	c.amount = domain.Dollars(dollars)
	return nil
}

func (c *PaymentController) SetDonor(donor domain.Donor) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.submitting {
		return domain.ErrBusy
	}
	if err := donor.Validate(); err != nil {
		return err
	}

	c.failure = nil
	c.donor = donor
	return nil
}

func (c *PaymentController) SelectProvider(provider domain.Provider) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.submitting {
		return domain.ErrBusy
	}
	if _, err := domain.ParseProvider(string(provider)); err != nil {
		return err
	}

	c.failure = nil
	c.provider = provider
	return nil
}

// Submit runs the provider flow for the selected amount. On success the form
// resets to idle; on failure the fields are kept for a retry.
func (c *PaymentController) Submit(ctx context.Context) (Receipt, error) {
	c.mu.Lock()
	if c.submitting {
		c.mu.Unlock()
		return Receipt{}, domain.ErrBusy
	}
	if c.amount <= 0 {
		c.mu.Unlock()
		return Receipt{}, domain.NewValidationError("amount", "select an amount first")
	}
	if c.provider == "" {
		c.mu.Unlock()
		return Receipt{}, domain.NewValidationError("provider", "select a payment method first")
	}

	intent := domain.DonationIntent{
		ID:       c.newID(),
		Amount:   c.amount,
		Donor:    c.donor,
		Provider: c.provider,
	}
	sub, err := newSubmission(intent, c)
	if err != nil {
		c.mu.Unlock()
		return Receipt{}, err
	}
	c.submitting = true
	c.failure = nil
	c.mu.Unlock()

	logger := c.logger.With("attempt_id", intent.ID, "provider", intent.Provider, "amount", intent.Amount.String())
	logger.Info("donation submitted")

	receipt, err := sub.run(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()

	c.submitting = false
	if err != nil {
		c.failure = err
		logger.Warn("donation failed", "error", err)
		return Receipt{}, err
	}

	c.amount = 0
	c.donor = domain.Donor{}
	c.provider = ""
	logger.Info("donation completed", "donation_id", receipt.DonationID)
	return receipt, nil
}

func (c *PaymentController) ListDonations(ctx context.Context) ([]domain.Donation, error) {
	donations, err := c.payments.ListDonations(ctx)
	if err != nil {
		return nil, fmt.Errorf("list donations: %w", err)
	}
	return donations, nil
}

func (c *PaymentController) GetDonation(ctx context.Context, id string) (domain.Donation, error) {
	donation, err := c.payments.GetDonation(ctx, id)
	if err != nil {
		return domain.Donation{}, fmt.Errorf("get donation %s: %w", id, err)
	}
	return donation, nil
}

func (c *PaymentController) settleLocked() PaymentState {
	switch {
	case c.submitting:
		return PaymentSubmitting
	case c.failure != nil:
		return PaymentFailed
	case c.amount <= 0:
		return PaymentIdle
	case c.provider == "":
		return PaymentAmountSelected
	default:
		return PaymentProviderSelected
	}
}

// submission is one provider-specific way to settle a DonationIntent.
type submission interface {
	run(ctx context.Context) (Receipt, error)
}

func newSubmission(intent domain.DonationIntent, c *PaymentController) (submission, error) {
	switch intent.Provider {
	case domain.ProviderStripe:
		if c.card == nil {
			return nil, errors.New("card payments are not configured")
		}
		return stripeSubmission{intent: intent, payments: c.payments, card: c.card}, nil
	case domain.ProviderPaypal:
		if c.paypal == nil {
			return nil, errors.New("paypal payments are not configured")
		}
		return paypalSubmission{intent: intent, payments: c.payments, approver: c.paypal}, nil
	default:
		return nil, domain.NewValidationError("provider", fmt.Sprintf("unsupported payment provider %q", intent.Provider))
	}
}

type stripeSubmission struct {
	intent   domain.DonationIntent
	payments ports.PaymentsAPI
	card     ports.CardConfirmer
}

func (s stripeSubmission) run(ctx context.Context) (Receipt, error) {
	created, err := s.payments.CreateStripeIntent(ctx, s.intent)
	if err != nil {
		return Receipt{}, paymentFailure(domain.ProviderStripe, "create payment intent", err)
	}

	confirmed, err := s.card.ConfirmCardPayment(ctx, created, s.intent.Donor)
	if err != nil {
		return Receipt{}, paymentFailure(domain.ProviderStripe, "confirm card payment", err)
	}
	if confirmed.Status != stripeSucceeded {
		return Receipt{}, &domain.PaymentError{
			Provider: domain.ProviderStripe,
			Message:  fmt.Sprintf("card payment ended with status %q", confirmed.Status),
		}
	}

	paymentID := confirmed.PaymentIntentID
	if paymentID == "" {
		paymentID = created.PaymentIntentID
	}
	result, err := s.payments.ConfirmStripePayment(ctx, domain.PaymentConfirmation{
		PaymentID: paymentID,
		Provider:  domain.ProviderStripe,
		Status:    confirmed.Status,
	})
	if err != nil {
		return Receipt{}, paymentFailure(domain.ProviderStripe, "record payment", err)
	}
	if !result.Success || result.Status != stripeSucceeded {
		return Receipt{}, &domain.PaymentError{Provider: domain.ProviderStripe, Message: result.Message}
	}

	return Receipt{
		AttemptID:  s.intent.ID,
		DonationID: created.DonationID,
		PaymentID:  paymentID,
		Provider:   domain.ProviderStripe,
		Amount:     s.intent.Amount,
		Status:     result.Status,
		Message:    result.Message,
	}, nil
}

type paypalSubmission struct {
	intent   domain.DonationIntent
	payments ports.PaymentsAPI
	approver ports.PaypalApprover
}

func (s paypalSubmission) run(ctx context.Context) (Receipt, error) {
	order, err := s.payments.CreatePaypalOrder(ctx, s.intent)
	if err != nil {
		return Receipt{}, paymentFailure(domain.ProviderPaypal, "create order", err)
	}

	approval, err := s.approver.ApproveOrder(ctx, order)
	if err != nil {
		return Receipt{}, paymentFailure(domain.ProviderPaypal, "approve order", err)
	}

	orderID := approval.OrderID
	if orderID == "" {
		orderID = order.OrderID
	}
	result, err := s.payments.CapturePaypalOrder(ctx, domain.PaymentConfirmation{
		PaymentID: orderID,
		Provider:  domain.ProviderPaypal,
		Status:    "approved",
	})
	if err != nil {
		return Receipt{}, paymentFailure(domain.ProviderPaypal, "capture order", err)
	}
	if !result.Success {
		return Receipt{}, &domain.PaymentError{Provider: domain.ProviderPaypal, Message: result.Message}
	}

	return Receipt{
		AttemptID:  s.intent.ID,
		DonationID: order.DonationID,
		PaymentID:  orderID,
		Provider:   domain.ProviderPaypal,
		Amount:     s.intent.Amount,
		Status:     result.Status,
		Message:    result.Message,
	}, nil
}

func paymentFailure(provider domain.Provider, step string, err error) error {
	return &domain.PaymentError{
		Provider: provider,
		Message:  domain.UserMessage(err),
		Err:      fmt.Errorf("%s: %w", step, err),
	}
}
