package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCredentialsValidate(t *testing.T) {
	tests := []struct {
		name    string
		creds   Credentials
		wantErr string
	}{
		{name: "valid", creds: Credentials{Email: "ana@example.com", Password: "s3cret"}},
		{name: "missing email", creds: Credentials{Password: "x"}, wantErr: "email: is required"},
		{name: "malformed email", creds: Credentials{Email: "ana", Password: "x"}, wantErr: "email: is not a valid address"},
		{name: "missing password", creds: Credentials{Email: "ana@example.com"}, wantErr: "password: is required"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.creds.Validate()
			if tc.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.EqualError(t, err, tc.wantErr)
		})
	}
}

func TestRegistrationValidateRequiresFullName(t *testing.T) {
	reg := Registration{Credentials: Credentials{Email: "ana@example.com", Password: "x"}, FullName: "  "}
	assert.EqualError(t, reg.Validate(), "full name: is required")

	reg.FullName = "Ana Pérez"
	assert.NoError(t, reg.Validate())
}

func TestFacebookProfileValidate(t *testing.T) {
	assert.EqualError(t, FacebookProfile{AccessToken: "t"}.Validate(), "facebook id: is required")
	assert.EqualError(t, FacebookProfile{FacebookID: "1"}.Validate(), "facebook access token: is required")
	assert.NoError(t, FacebookProfile{FacebookID: "1", AccessToken: "t"}.Validate())
}
