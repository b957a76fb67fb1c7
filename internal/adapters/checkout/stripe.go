package checkout

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"time"

	"github.com/bnema/omp-cli/internal/domain"
	"github.com/bnema/omp-cli/internal/ports"
)

const (
	stripeReturnPath       = "/donations/stripe/return"
	DefaultCheckoutTimeout = 10 * time.Minute
)

// StripeConfirmer hands the card step to a hosted checkout page and waits for
// the provider to redirect back to a loopback listener.
type StripeConfirmer struct {
	// CheckoutURL is the page that collects the card for a client secret.
	CheckoutURL string
	ListenAddr  string
	Timeout     time.Duration
	Out         io.Writer
}

var _ ports.CardConfirmer = StripeConfirmer{}

func (s StripeConfirmer) ConfirmCardPayment(ctx context.Context, intent domain.StripeIntent, donor domain.Donor) (domain.CardConfirmation, error) {
	if s.CheckoutURL == "" {
		return domain.CardConfirmation{}, errors.New("stripe checkout url is not configured")
	}
	if intent.ClientSecret == "" || intent.PaymentIntentID == "" {
		return domain.CardConfirmation{}, errors.New("payment intent is incomplete")
	}

	state, err := newState()
	if err != nil {
		return domain.CardConfirmation{}, fmt.Errorf("generate checkout state: %w", err)
	}

	server, err := startCallbackServer(s.ListenAddr, route{
		path: stripeReturnPath,
		validate: func(q url.Values) error {
			if q.Get("state") != state {
				return ErrStateMismatch
			}
			if got := q.Get("payment_intent"); got != intent.PaymentIntentID {
				return fmt.Errorf("unexpected payment intent %q", got)
			}
			if q.Get("redirect_status") == "" {
				return errors.New("missing redirect status")
			}
			return nil
		},
	})
	if err != nil {
		return domain.CardConfirmation{}, fmt.Errorf("start checkout callback: %w", err)
	}

	returnURL := server.URL(stripeReturnPath) + "?state=" + url.QueryEscape(state)
	checkoutURL, err := buildStripeCheckoutURL(s.CheckoutURL, intent, donor, returnURL)
	if err != nil {
		_ = server.Close()
		return domain.CardConfirmation{}, err
	}

	if s.Out != nil {
		_, _ = fmt.Fprintf(s.Out, "Open this URL to enter your card details:\n%s\n", checkoutURL)
	}

	query, err := server.wait(ctx, s.timeout())
	if err != nil {
		return domain.CardConfirmation{}, err
	}

	return domain.CardConfirmation{
		PaymentIntentID: query.Get("payment_intent"),
		Status:          query.Get("redirect_status"),
	}, nil
}

func (s StripeConfirmer) timeout() time.Duration {
	if s.Timeout <= 0 {
		return DefaultCheckoutTimeout
	}
	return s.Timeout
}

func buildStripeCheckoutURL(base string, intent domain.StripeIntent, donor domain.Donor, returnURL string) (string, error) {
	parsed, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("parse stripe checkout url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", errors.New("stripe checkout url must use http or https")
	}

	q := parsed.Query()
	q.Set("client_secret", intent.ClientSecret)
	q.Set("payment_intent", intent.PaymentIntentID)
	q.Set("return_url", returnURL)
	if donor.Name != "" {
		q.Set("name", donor.Name)
	}
	if donor.Email != "" {
		q.Set("email", donor.Email)
	}
	parsed.RawQuery = q.Encode()

	return parsed.String(), nil
}
