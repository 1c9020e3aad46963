package auth

import (
	"testing"

	"github.com/shindakun/ethicstraining/internal/config"
	"github.com/shindakun/ethicstraining/internal/models"
)

func newTestAuthenticator() *Authenticator {
	return NewAuthenticator(config.Default().Auth)
}

func TestAuthenticate(t *testing.T) {
	a := newTestAuthenticator()

	tests := []struct {
		name string
		req  models.LoginRequest
		want OutcomeKind
	}{
		{"wrong password", models.LoginRequest{Username: "admin", Password: "wrong"}, OutcomeInvalidCredentials},
		{"wrong username", models.LoginRequest{Username: "root", Password: "demo123"}, OutcomeInvalidCredentials},
		{"empty pair", models.LoginRequest{}, OutcomeInvalidCredentials},
		{"case sensitive username", models.LoginRequest{Username: "Admin", Password: "demo123"}, OutcomeInvalidCredentials},
		{"wrong pair with valid code", models.LoginRequest{Username: "admin", Password: "nope", MFACode: "123456"}, OutcomeInvalidCredentials},
		{"valid pair without code", models.LoginRequest{Username: "admin", Password: "demo123"}, OutcomeMFARequired},
		{"valid pair with wrong code", models.LoginRequest{Username: "admin", Password: "demo123", MFACode: "000000"}, OutcomeInvalidMFA},
		{"valid pair with valid code", models.LoginRequest{Username: "admin", Password: "demo123", MFACode: "123456"}, OutcomeSuccess},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := a.Authenticate(tt.req)
			if got.Kind != tt.want {
				t.Fatalf("Expected %s, got %s", tt.want, got.Kind)
			}
			if tt.want != OutcomeSuccess && got.Token != "" {
				t.Errorf("Expected no token for %s, got %q", got.Kind, got.Token)
			}
		})
	}
}

func TestAuthenticateSuccessCarriesIdentity(t *testing.T) {
	cfg := config.Default().Auth
	a := NewAuthenticator(cfg)

	got := a.Authenticate(models.LoginRequest{Username: "admin", Password: "demo123", MFACode: "123456"})
	if got.Token != cfg.Token {
		t.Errorf("Expected token %q, got %q", cfg.Token, got.Token)
	}
	if got.User == nil || got.User.Username != "admin" || got.User.Email != cfg.User.Email {
		t.Errorf("Unexpected user: %+v", got.User)
	}
	if got.Err() != nil {
		t.Errorf("Expected nil error for success, got %v", got.Err())
	}
}

func TestAuthenticateInjectedCredentials(t *testing.T) {
	cfg := config.Default().Auth
	cfg.Username = "trainer"
	cfg.Password = "ethics!"
	cfg.MFACode = "999999"
	a := NewAuthenticator(cfg)

	if got := a.Authenticate(models.LoginRequest{Username: "admin", Password: "demo123", MFACode: "123456"}); got.Kind != OutcomeInvalidCredentials {
		t.Errorf("Built-in demo pair should be rejected, got %s", got.Kind)
	}
	if got := a.Authenticate(models.LoginRequest{Username: "trainer", Password: "ethics!", MFACode: "999999"}); got.Kind != OutcomeSuccess {
		t.Errorf("Configured pair should succeed, got %s", got.Kind)
	}
}

func TestAuthenticateIsIdempotent(t *testing.T) {
	a := newTestAuthenticator()
	req := models.LoginRequest{Username: "admin", Password: "wrong"}

	first := a.Authenticate(req)
	for i := 0; i < 10; i++ {
		if got := a.Authenticate(req); got != first {
			t.Fatalf("Attempt %d differed: %+v vs %+v", i, got, first)
		}
	}
}

func TestOutcomeResponseRoundTrip(t *testing.T) {
	a := newTestAuthenticator()
	reqs := []models.LoginRequest{
		{Username: "admin", Password: "wrong"},
		{Username: "admin", Password: "demo123"},
		{Username: "admin", Password: "demo123", MFACode: "111111"},
		{Username: "admin", Password: "demo123", MFACode: "123456"},
	}

	for _, req := range reqs {
		want := a.Authenticate(req)
		got, ok := OutcomeFromResponse(want.Response())
		if !ok {
			t.Fatalf("OutcomeFromResponse rejected %s response", want.Kind)
		}
		if got.Kind != want.Kind || got.Token != want.Token {
			t.Errorf("Round trip mismatch: want %+v, got %+v", want, got)
		}
	}

	if _, ok := OutcomeFromResponse(models.LoginResponse{Success: true}); ok {
		t.Error("Success without token should not map to an outcome")
	}
}

func TestInvalidMFAMessageDiffers(t *testing.T) {
	creds := Outcome{Kind: OutcomeInvalidCredentials}.Response()
	mfa := Outcome{Kind: OutcomeInvalidMFA}.Response()
	if creds.Message == mfa.Message {
		t.Errorf("Expected distinct messages, both were %q", creds.Message)
	}
	if creds.Message != "Invalid credentials" {
		t.Errorf("Unexpected credentials message %q", creds.Message)
	}
}
