package models

// LoginRequest is the body of POST /api/auth/login
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	MFACode  string `json:"mfaCode,omitempty"` // 6 digits, only sent in the MFA round
}

// HasMFACode reports whether the request carries a second-factor code
func (r *LoginRequest) HasMFACode() bool {
	return r.MFACode != ""
}

// MFACodeLength is the number of digits in an MFA code
const MFACodeLength = 6

// IsMFACode reports whether s is a 6-digit numeric code
func IsMFACode(s string) bool {
	if len(s) != MFACodeLength {
		return false
	}
	for _, ch := range s {
		if ch < '0' || ch > '9' {
			return false
		}
	}
	return true
}

// LoginResponse is the body returned by the login endpoint for every outcome
type LoginResponse struct {
	Success     bool   `json:"success"`
	Token       string `json:"token,omitempty"`
	User        *User  `json:"user,omitempty"`
	MFARequired bool   `json:"mfaRequired,omitempty"`
	Message     string `json:"message,omitempty"`
	Code        string `json:"code,omitempty"` // machine-readable failure reason
}

// Failure codes carried in LoginResponse.Code
const (
	CodeInvalidCredentials = "invalid_credentials"
	CodeInvalidMFA         = "invalid_mfa"
)

// User is the identity returned after a successful login
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

// AdminUser is a row of the admin portal's user table
type AdminUser struct {
	User
	Status    string `json:"status"`
	LastLogin string `json:"lastLogin,omitempty"`
	Completed int    `json:"modulesCompleted"`
}
