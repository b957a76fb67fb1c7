package domain

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

const Currency = "USD"

// PresetAmounts are the one-click donation amounts in dollars.
var PresetAmounts = []int{25, 50, 100, 250, 500}

// Money is an amount in US cents.
type Money int64

func Dollars(d int) Money {
	return Money(int64(d) * 100)
}

// ParseAmount accepts "25", "25.5", "$1,000.00". Non-numeric or non-positive
// values are rejected.
func ParseAmount(raw string) (Money, error) {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.TrimPrefix(cleaned, "$")
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	cleaned = strings.TrimSpace(cleaned)
	if cleaned == "" {
		return 0, NewValidationError("amount", "is required")
	}

	value, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, NewValidationError("amount", fmt.Sprintf("%q is not a number", raw))
	}

	cents := math.Round(value * 100)
	if cents <= 0 {
		return 0, NewValidationError("amount", "must be greater than zero")
	}
	if cents > math.MaxInt64/2 {
		return 0, NewValidationError("amount", "is too large")
	}

	return Money(cents), nil
}

func (m Money) Float() float64 {
	return float64(m) / 100
}

func (m Money) String() string {
	if m%100 == 0 {
		return fmt.Sprintf("$%d", int64(m)/100)
	}
	return fmt.Sprintf("$%.2f", m.Float())
}

type Provider string

const (
	ProviderStripe Provider = "stripe"
	ProviderPaypal Provider = "paypal"
)

func ParseProvider(raw string) (Provider, error) {
	p := Provider(strings.ToLower(strings.TrimSpace(raw)))
	switch p {
	case ProviderStripe, ProviderPaypal:
		return p, nil
	default:
		return "", NewValidationError("provider", fmt.Sprintf("unsupported payment provider %q", raw))
	}
}

type Donor struct {
	Name    string
	Email   string
	Message string
}

func (d Donor) Validate() error {
	if strings.TrimSpace(d.Email) == "" {
		return nil
	}
	return validateEmail(d.Email)
}

// DonationIntent is one submission attempt; it is discarded once terminal.
type DonationIntent struct {
	ID       string
	Amount   Money
	Donor    Donor
	Provider Provider
}

type DonationStatus string

const (
	DonationPending   DonationStatus = "pending"
	DonationCompleted DonationStatus = "completed"
	DonationFailed    DonationStatus = "failed"
)

type Donation struct {
	ID            string
	Amount        Money
	Currency      string
	PaymentMethod Provider
	Status        DonationStatus
	DonorName     string
	Message       string
	CreatedAt     time.Time
	CompletedAt   time.Time
}

type StripeIntent struct {
	ClientSecret    string
	PaymentIntentID string
	DonationID      string
}

type PaypalOrder struct {
	OrderID     string
	ApprovalURL string
	DonationID  string
}

type PaymentConfirmation struct {
	PaymentID string
	Provider  Provider
	Status    string
}

type PaymentResult struct {
	Success bool
	Status  string
	Message string
}

// CardConfirmation is the outcome of the hosted card step.
type CardConfirmation struct {
	PaymentIntentID string
	Status          string
}

// PaypalApproval is the outcome of the buyer approval step.
type PaypalApproval struct {
	OrderID string
	PayerID string
}
