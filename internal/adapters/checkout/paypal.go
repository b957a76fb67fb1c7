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
	// The backend registers these return URLs with PayPal.
	DefaultPaypalListenAddr = "127.0.0.1:3000"
	paypalSuccessPath       = "/donations/success"
	paypalCancelPath        = "/donations/cancel"
)

// PaypalApprover sends the buyer to the PayPal approval page and waits for the
// redirect to the success or cancel URL.
type PaypalApprover struct {
	ListenAddr string
	Timeout    time.Duration
	Out        io.Writer
}

var _ ports.PaypalApprover = PaypalApprover{}

func (p PaypalApprover) ApproveOrder(ctx context.Context, order domain.PaypalOrder) (domain.PaypalApproval, error) {
	if order.OrderID == "" || order.ApprovalURL == "" {
		return domain.PaypalApproval{}, errors.New("paypal order is incomplete")
	}

	listenAddr := p.ListenAddr
	if listenAddr == "" {
		listenAddr = DefaultPaypalListenAddr
	}

	server, err := startCallbackServer(listenAddr,
		route{
			path: paypalSuccessPath,
			validate: func(q url.Values) error {
				if got := q.Get("token"); got != order.OrderID {
					return fmt.Errorf("unexpected paypal order %q", got)
				}
				if q.Get("PayerID") == "" {
					return errors.New("missing payer id")
				}
				return nil
			},
		},
		route{
			path: paypalCancelPath,
			validate: func(url.Values) error {
				return ErrCancelled
			},
		},
	)
	if err != nil {
		return domain.PaypalApproval{}, fmt.Errorf("start paypal callback: %w", err)
	}

	if p.Out != nil {
		_, _ = fmt.Fprintf(p.Out, "Open this URL to approve the payment with PayPal:\n%s\n", order.ApprovalURL)
	}

	timeout := p.Timeout
	if timeout <= 0 {
		timeout = DefaultCheckoutTimeout
	}

	query, err := server.wait(ctx, timeout)
	if err != nil {
		return domain.PaypalApproval{}, err
	}

	return domain.PaypalApproval{
		OrderID: query.Get("token"),
		PayerID: query.Get("PayerID"),
	}, nil
}
