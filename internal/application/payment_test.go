package application

import (
	"context"
	"errors"
	"testing"

	"github.com/bnema/omp-cli/internal/domain"
	"github.com/bnema/omp-cli/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type paymentFixture struct {
	controller *PaymentController
	payments   *mocks.MockPaymentsAPI
	card       *mocks.MockCardConfirmer
	paypal     *mocks.MockPaypalApprover
}

func newPaymentFixture(t *testing.T) paymentFixture {
	t.Helper()

	f := paymentFixture{
		payments: mocks.NewMockPaymentsAPI(t),
		card:     mocks.NewMockCardConfirmer(t),
		paypal:   mocks.NewMockPaypalApprover(t),
	}
	f.controller = NewPaymentController(f.payments, f.card, f.paypal, nil)
	f.controller.newID = func() string { return "attempt-1" }

	return f
}

func TestPaymentAmountSelectionReplaces(t *testing.T) {
	f := newPaymentFixture(t)
	assert.Equal(t, PaymentIdle, f.controller.State())

	require.NoError(t, f.controller.SelectPreset(25))
	require.NoError(t, f.controller.SelectPreset(100))
	assert.Equal(t, domain.Dollars(100), f.controller.Amount())
	assert.Equal(t, PaymentAmountSelected, f.controller.State())

	require.NoError(t, f.controller.SelectAmount("$42.50"))
	assert.Equal(t, domain.Money(4250), f.controller.Amount())
}

func TestPaymentInvalidAmountBlocksSubmission(t *testing.T) {
	f := newPaymentFixture(t)

	require.NoError(t, f.controller.SelectPreset(50))
	require.NoError(t, f.controller.SelectProvider(domain.ProviderStripe))

	err := f.controller.SelectAmount("abc")
	var validation *domain.ValidationError
	require.ErrorAs(t, err, &validation)
	assert.Equal(t, domain.Money(0), f.controller.Amount())
	assert.Equal(t, PaymentIdle, f.controller.State())

	_, err = f.controller.Submit(context.Background())
	assert.ErrorAs(t, err, &validation)
}

func TestPaymentSelectPresetRejectsUnknownPreset(t *testing.T) {
	f := newPaymentFixture(t)

	err := f.controller.SelectPreset(30)
	var validation *domain.ValidationError
	assert.ErrorAs(t, err, &validation)
}

func TestPaymentSubmitRequiresProvider(t *testing.T) {
	f := newPaymentFixture(t)
	require.NoError(t, f.controller.SelectPreset(25))

	_, err := f.controller.Submit(context.Background())
	var validation *domain.ValidationError
	require.ErrorAs(t, err, &validation)
	assert.Equal(t, "provider", validation.Field)
}

func TestPaymentStripeSuccessResetsToIdle(t *testing.T) {
	f := newPaymentFixture(t)
	donor := domain.Donor{Name: "Ana", Email: "ana@example.com", Message: "Bendiciones"}
	intent := domain.DonationIntent{ID: "attempt-1", Amount: domain.Dollars(100), Donor: donor, Provider: domain.ProviderStripe}
	created := domain.StripeIntent{ClientSecret: "pi_1_secret", PaymentIntentID: "pi_1", DonationID: "don-1"}

	f.payments.EXPECT().CreateStripeIntent(mockAnyContext(), intent).Return(created, nil).Once()
	f.card.EXPECT().ConfirmCardPayment(mockAnyContext(), created, donor).
		Return(domain.CardConfirmation{PaymentIntentID: "pi_1", Status: "succeeded"}, nil).Once()
	f.payments.EXPECT().ConfirmStripePayment(mockAnyContext(), domain.PaymentConfirmation{
		PaymentID: "pi_1", Provider: domain.ProviderStripe, Status: "succeeded",
	}).Return(domain.PaymentResult{Success: true, Status: "succeeded", Message: "¡Donación procesada exitosamente!"}, nil).Once()

	require.NoError(t, f.controller.SelectPreset(25))
	require.NoError(t, f.controller.SelectPreset(100))
	require.NoError(t, f.controller.SetDonor(donor))
	require.NoError(t, f.controller.SelectProvider(domain.ProviderStripe))
	assert.Equal(t, PaymentProviderSelected, f.controller.State())

	receipt, err := f.controller.Submit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Receipt{
		AttemptID:  "attempt-1",
		DonationID: "don-1",
		PaymentID:  "pi_1",
		Provider:   domain.ProviderStripe,
		Amount:     domain.Dollars(100),
		Status:     "succeeded",
		Message:    "¡Donación procesada exitosamente!",
	}, receipt)

	assert.Equal(t, PaymentIdle, f.controller.State())
	assert.Equal(t, domain.Money(0), f.controller.Amount())
	assert.Equal(t, domain.Provider(""), f.controller.Provider())
}

func TestPaymentStripeCardDeclinedFailsAndKeepsFields(t *testing.T) {
	f := newPaymentFixture(t)
	declined := &domain.PaymentError{Provider: domain.ProviderStripe, Message: "Your card was declined."}

	f.payments.EXPECT().CreateStripeIntent(mockAnyContext(), mock.Anything).
		Return(domain.StripeIntent{PaymentIntentID: "pi_1"}, nil).Once()
	f.card.EXPECT().ConfirmCardPayment(mockAnyContext(), mock.Anything, mock.Anything).
		Return(domain.CardConfirmation{}, declined).Once()

	require.NoError(t, f.controller.SelectPreset(50))
	require.NoError(t, f.controller.SelectProvider(domain.ProviderStripe))

	_, err := f.controller.Submit(context.Background())
	var paymentErr *domain.PaymentError
	require.ErrorAs(t, err, &paymentErr)
	assert.Equal(t, "Your card was declined.", domain.UserMessage(err))

	assert.Equal(t, PaymentFailed, f.controller.State())
	assert.Equal(t, domain.Dollars(50), f.controller.Amount())
	assert.Equal(t, domain.ProviderStripe, f.controller.Provider())
	assert.Equal(t, err, f.controller.LastError())

	require.NoError(t, f.controller.SelectPreset(25))
	assert.Equal(t, PaymentProviderSelected, f.controller.State())
}

func TestPaymentStripeUnsuccessfulConfirmation(t *testing.T) {
	f := newPaymentFixture(t)

	f.payments.EXPECT().CreateStripeIntent(mockAnyContext(), mock.Anything).
		Return(domain.StripeIntent{PaymentIntentID: "pi_1"}, nil).Once()
	f.card.EXPECT().ConfirmCardPayment(mockAnyContext(), mock.Anything, mock.Anything).
		Return(domain.CardConfirmation{PaymentIntentID: "pi_1", Status: "succeeded"}, nil).Once()
	f.payments.EXPECT().ConfirmStripePayment(mockAnyContext(), mock.Anything).
		Return(domain.PaymentResult{Success: true, Status: "requires_payment_method", Message: "Error en el pago"}, nil).Once()

	require.NoError(t, f.controller.SelectPreset(25))
	require.NoError(t, f.controller.SelectProvider(domain.ProviderStripe))

	_, err := f.controller.Submit(context.Background())
	require.Error(t, err)
	assert.Equal(t, "Error en el pago", domain.UserMessage(err))
	assert.Equal(t, PaymentFailed, f.controller.State())
}

func TestPaymentStripeIncompleteCardStepSkipsConfirmEndpoint(t *testing.T) {
	f := newPaymentFixture(t)

	f.payments.EXPECT().CreateStripeIntent(mockAnyContext(), mock.Anything).
		Return(domain.StripeIntent{PaymentIntentID: "pi_1"}, nil).Once()
	f.card.EXPECT().ConfirmCardPayment(mockAnyContext(), mock.Anything, mock.Anything).
		Return(domain.CardConfirmation{PaymentIntentID: "pi_1", Status: "requires_action"}, nil).Once()

	require.NoError(t, f.controller.SelectPreset(25))
	require.NoError(t, f.controller.SelectProvider(domain.ProviderStripe))

	_, err := f.controller.Submit(context.Background())
	require.Error(t, err)
	assert.Contains(t, domain.UserMessage(err), "requires_action")
}

func TestPaymentPaypalSuccess(t *testing.T) {
	f := newPaymentFixture(t)
	order := domain.PaypalOrder{OrderID: "ORDER-1", ApprovalURL: "https://paypal.example/approve", DonationID: "don-2"}

	f.payments.EXPECT().CreatePaypalOrder(mockAnyContext(), domain.DonationIntent{
		ID: "attempt-1", Amount: domain.Dollars(250), Provider: domain.ProviderPaypal,
	}).Return(order, nil).Once()
	f.paypal.EXPECT().ApproveOrder(mockAnyContext(), order).
		Return(domain.PaypalApproval{OrderID: "ORDER-1", PayerID: "PAYER-9"}, nil).Once()
	f.payments.EXPECT().CapturePaypalOrder(mockAnyContext(), domain.PaymentConfirmation{
		PaymentID: "ORDER-1", Provider: domain.ProviderPaypal, Status: "approved",
	}).Return(domain.PaymentResult{Success: true, Status: "completed", Message: "¡Donación procesada exitosamente con PayPal!"}, nil).Once()

	require.NoError(t, f.controller.SelectPreset(250))
	require.NoError(t, f.controller.SelectProvider(domain.ProviderPaypal))

	receipt, err := f.controller.Submit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "don-2", receipt.DonationID)
	assert.Equal(t, "completed", receipt.Status)
	assert.Equal(t, PaymentIdle, f.controller.State())
}

func TestPaymentPaypalCreateFailureCarriesServerMessage(t *testing.T) {
	f := newPaymentFixture(t)

	f.payments.EXPECT().CreatePaypalOrder(mockAnyContext(), mock.Anything).
		Return(domain.PaypalOrder{}, &domain.RemoteError{Status: 500, Message: "PayPal error: PayPal order creation failed"}).Once()

	require.NoError(t, f.controller.SelectAmount("10"))
	require.NoError(t, f.controller.SelectProvider(domain.ProviderPaypal))

	_, err := f.controller.Submit(context.Background())
	var paymentErr *domain.PaymentError
	require.ErrorAs(t, err, &paymentErr)
	assert.Equal(t, domain.ProviderPaypal, paymentErr.Provider)
	assert.Equal(t, "PayPal error: PayPal order creation failed", paymentErr.Message)

	var remote *domain.RemoteError
	assert.ErrorAs(t, err, &remote)
}

func TestPaymentSubmitWhileSubmittingIsBusy(t *testing.T) {
	f := newPaymentFixture(t)
	entered := make(chan struct{})
	release := make(chan struct{})

	f.payments.EXPECT().CreatePaypalOrder(mockAnyContext(), mock.Anything).
		RunAndReturn(func(context.Context, domain.DonationIntent) (domain.PaypalOrder, error) {
			close(entered)
			<-release
			return domain.PaypalOrder{}, errors.New("cancelled")
		}).Once()

	require.NoError(t, f.controller.SelectPreset(25))
	require.NoError(t, f.controller.SelectProvider(domain.ProviderPaypal))

	done := make(chan error, 1)
	go func() {
		_, err := f.controller.Submit(context.Background())
		done <- err
	}()
	<-entered

	assert.Equal(t, PaymentSubmitting, f.controller.State())
	_, err := f.controller.Submit(context.Background())
	assert.ErrorIs(t, err, domain.ErrBusy)
	assert.ErrorIs(t, f.controller.SelectPreset(50), domain.ErrBusy)

	close(release)
	require.Error(t, <-done)
	assert.Equal(t, PaymentFailed, f.controller.State())
}

func TestPaymentListDonations(t *testing.T) {
	f := newPaymentFixture(t)
	want := []domain.Donation{{ID: "don-1", Amount: domain.Dollars(25), Status: domain.DonationCompleted}}

	f.payments.EXPECT().ListDonations(mockAnyContext()).Return(want, nil).Once()

	got, err := f.controller.ListDonations(context.Background())
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestPaymentStateString(t *testing.T) {
	assert.Equal(t, "provider_selected", PaymentProviderSelected.String())
	assert.Equal(t, "failed", PaymentFailed.String())
}
