package auth

import (
	"crypto/subtle"

	"github.com/shindakun/ethicstraining/internal/config"
	"github.com/shindakun/ethicstraining/internal/models"
)

// Authenticator checks login submissions against the single demo identity.
// It holds no mutable state and is safe for concurrent use.
type Authenticator struct {
	username string
	password string
	mfaCode  string
	token    string
	user     models.User
}

// NewAuthenticator creates an authenticator from the auth section of the config
func NewAuthenticator(cfg config.AuthConfig) *Authenticator {
	return &Authenticator{
		username: cfg.Username,
		password: cfg.Password,
		mfaCode:  cfg.MFACode,
		token:    cfg.Token,
		user: models.User{
			ID:       cfg.User.ID,
			Username: cfg.Username,
			Name:     cfg.User.Name,
			Email:    cfg.User.Email,
			Role:     cfg.User.Role,
		},
	}
}

// Authenticate evaluates one submission. An empty MFA code means the
// second factor was not supplied.
func (a *Authenticator) Authenticate(req models.LoginRequest) Outcome {
	// evaluate both halves so a wrong username costs the same as a wrong password
	userOK := equal(req.Username, a.username)
	passOK := equal(req.Password, a.password)
	if !userOK || !passOK {
		return Outcome{Kind: OutcomeInvalidCredentials}
	}

	if !req.HasMFACode() {
		return Outcome{Kind: OutcomeMFARequired}
	}

	if !equal(req.MFACode, a.mfaCode) {
		return Outcome{Kind: OutcomeInvalidMFA}
	}

	user := a.user
	return Outcome{Kind: OutcomeSuccess, Token: a.token, User: &user}
}

func equal(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
