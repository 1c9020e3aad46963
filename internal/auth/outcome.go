package auth

import (
	"errors"

	"github.com/shindakun/ethicstraining/internal/models"
)

var (
	// ErrInvalidCredentials is reported when the username/password pair does not match
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInvalidMFA is reported when the pair matches but the MFA code does not
	ErrInvalidMFA = errors.New("invalid MFA code")
)

// OutcomeKind tags the result of a single login submission
type OutcomeKind int

const (
	OutcomeInvalidCredentials OutcomeKind = iota
	OutcomeMFARequired
	OutcomeSuccess
	OutcomeInvalidMFA
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeMFARequired:
		return "mfa_required"
	case OutcomeSuccess:
		return "success"
	case OutcomeInvalidMFA:
		return "invalid_mfa"
	default:
		return "invalid_credentials"
	}
}

// Outcome is the result of one login submission. Token and User are set
// only when Kind is OutcomeSuccess.
type Outcome struct {
	Kind  OutcomeKind
	Token string
	User  *models.User
}

// Err returns the authentication error for failed outcomes, nil otherwise
func (o Outcome) Err() error {
	switch o.Kind {
	case OutcomeInvalidCredentials:
		return ErrInvalidCredentials
	case OutcomeInvalidMFA:
		return ErrInvalidMFA
	}
	return nil
}

// Response renders the outcome as the wire response
func (o Outcome) Response() models.LoginResponse {
	switch o.Kind {
	case OutcomeSuccess:
		return models.LoginResponse{Success: true, Token: o.Token, User: o.User}
	case OutcomeMFARequired:
		return models.LoginResponse{MFARequired: true, Message: "MFA code required"}
	case OutcomeInvalidMFA:
		return models.LoginResponse{Message: "Invalid MFA code", Code: models.CodeInvalidMFA}
	default:
		return models.LoginResponse{Message: "Invalid credentials", Code: models.CodeInvalidCredentials}
	}
}

// OutcomeFromResponse is the inverse of Response, used by clients. ok is
// false when the body matches none of the four shapes.
func OutcomeFromResponse(resp models.LoginResponse) (Outcome, bool) {
	switch {
	case resp.Success && resp.Token != "":
		return Outcome{Kind: OutcomeSuccess, Token: resp.Token, User: resp.User}, true
	case resp.Success:
		return Outcome{}, false
	case resp.MFARequired:
		return Outcome{Kind: OutcomeMFARequired}, true
	case resp.Code == models.CodeInvalidMFA:
		return Outcome{Kind: OutcomeInvalidMFA}, true
	default:
		return Outcome{Kind: OutcomeInvalidCredentials}, true
	}
}
