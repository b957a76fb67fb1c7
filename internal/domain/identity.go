package domain

import (
	"net/mail"
	"strings"
	"time"
)

type UserID string

type Identity struct {
	ID        UserID
	Email     string
	FullName  string
	Role      string
	CreatedAt time.Time
}

type AccessToken struct {
	Value     string
	TokenType string
}

type Credentials struct {
	Email    string
	Password string
}

func (c Credentials) Validate() error {
	if err := validateEmail(c.Email); err != nil {
		return err
	}
	if c.Password == "" {
		return NewValidationError("password", "is required")
	}
	return nil
}

type Registration struct {
	Credentials
	FullName string
}

func (r Registration) Validate() error {
	if err := r.Credentials.Validate(); err != nil {
		return err
	}
	if strings.TrimSpace(r.FullName) == "" {
		return NewValidationError("full name", "is required")
	}
	return nil
}

// FacebookProfile is what the backend needs to sign a user in with Facebook.
type FacebookProfile struct {
	FacebookID  string
	AccessToken string
	Email       string
	FullName    string
}

func (p FacebookProfile) Validate() error {
	if strings.TrimSpace(p.FacebookID) == "" {
		return NewValidationError("facebook id", "is required")
	}
	if strings.TrimSpace(p.AccessToken) == "" {
		return NewValidationError("facebook access token", "is required")
	}
	return nil
}

func validateEmail(raw string) error {
	email := strings.TrimSpace(raw)
	if email == "" {
		return NewValidationError("email", "is required")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return NewValidationError("email", "is not a valid address")
	}
	return nil
}
