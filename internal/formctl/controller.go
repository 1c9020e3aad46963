// Package formctl implements the two-phase login form: credentials first,
// then an MFA code when the server asks for one.
//
// The form is always in exactly one Phase. The MFA input exists only in
// AwaitingMfa (or while an MFA submission is in flight), so a visible MFA
// field during the credentials phase cannot be represented.
package formctl

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"github.com/shindakun/ethicstraining/internal/auth"
	"github.com/shindakun/ethicstraining/internal/models"
)

// Phase is the form's position in the login sequence
type Phase int

const (
	AwaitingCredentials Phase = iota
	AwaitingMfa
	Submitting
	Failed
	Authenticated // terminal; the caller navigates away
)

func (p Phase) String() string {
	switch p {
	case AwaitingCredentials:
		return "awaiting_credentials"
	case AwaitingMfa:
		return "awaiting_mfa"
	case Submitting:
		return "submitting"
	case Failed:
		return "failed"
	case Authenticated:
		return "authenticated"
	}
	return "unknown"
}

// Field names used as FieldErrors keys
const (
	FieldUsername = "username"
	FieldPassword = "password"
	FieldMFACode  = "mfaCode"
	FieldGeneral  = "general"
)

// User-visible messages
const (
	MsgUsernameRequired   = "Username is required"
	MsgPasswordRequired   = "Password is required"
	MsgMFARequired        = "MFA code is required"
	MsgMFAFormat          = "MFA code must be 6 digits"
	MsgInvalidCredentials = "Invalid credentials"
	MsgInvalidMFA         = "Invalid MFA code"
	MsgTransportFailure   = "Unable to sign in. Please try again."
)

var (
	// ErrSubmitInProgress is returned while a submission is awaiting its response
	ErrSubmitInProgress = errors.New("a submission is already in progress")
	// ErrAuthenticated is returned once the form has completed
	ErrAuthenticated = errors.New("login already completed")
	// ErrMFANotRequested is returned when an MFA code is entered outside the MFA phase
	ErrMFANotRequested = errors.New("MFA code not requested")
)

// FieldErrors maps a field name to its message
type FieldErrors map[string]string

func (fe FieldErrors) clone() FieldErrors {
	out := make(FieldErrors, len(fe))
	for k, v := range fe {
		out[k] = v
	}
	return out
}

// ValidationError is returned when a submission is blocked before any network call
type ValidationError struct {
	Fields FieldErrors
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		names = append(names, k)
	}
	sort.Strings(names)
	return "validation failed: " + strings.Join(names, ", ")
}

// Submitter sends one login request. Authentication failures are reported
// through the Outcome; a non-nil error means the request itself failed.
type Submitter interface {
	Login(ctx context.Context, req models.LoginRequest) (auth.Outcome, error)
}

// SubmitterFunc adapts a function to Submitter
type SubmitterFunc func(ctx context.Context, req models.LoginRequest) (auth.Outcome, error)

// Login calls f
func (f SubmitterFunc) Login(ctx context.Context, req models.LoginRequest) (auth.Outcome, error) {
	return f(ctx, req)
}

// Action tells the view what to do after a submission settles
type Action int

const (
	ActionShowErrors Action = iota // stay on the form and render Errors
	ActionShowMFA                  // reveal the MFA input
	ActionNavigate                 // leave the form for the authenticated area
)

// Session is what the form hands to the authenticated area
type Session struct {
	Token string
	User  *models.User
}

// Result is the outcome of one submission from the view's point of view
type Result struct {
	Action  Action
	Errors  FieldErrors
	Session *Session // set only for ActionNavigate
}

// Controller owns the login form state. It is safe for concurrent use; the
// view may read state while a submission runs in another goroutine.
type Controller struct {
	mu       sync.Mutex
	phase    Phase
	resume   Phase // phase to return to when a submission settles
	username string
	password string
	mfaCode  string
	errors   FieldErrors
	session  *Session
}

// New creates a controller in AwaitingCredentials
func New() *Controller {
	return &Controller{
		phase:  AwaitingCredentials,
		errors: FieldErrors{},
	}
}

// Phase returns the current phase
func (c *Controller) Phase() Phase {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.phase
}

// MFAVisible reports whether the view should render the MFA input
func (c *Controller) MFAVisible() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.phase == AwaitingMfa || (c.phase == Submitting && c.resume == AwaitingMfa)
}

// Errors returns a copy of the current field errors
func (c *Controller) Errors() FieldErrors {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.errors.clone()
}

// Values returns the current field values
func (c *Controller) Values() (username, password, mfaCode string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.username, c.password, c.mfaCode
}

// Session returns the session after ActionNavigate, nil before
func (c *Controller) Session() *Session {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.session
}

// SetUsername updates the username. Changing it while awaiting MFA
// returns the form to the credentials phase.
func (c *Controller) SetUsername(v string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.editable(); err != nil {
		return err
	}
	if v != c.username {
		c.username = v
		c.credentialsChanged()
	}
	return nil
}

// SetPassword updates the password with the same phase rule as SetUsername
func (c *Controller) SetPassword(v string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.editable(); err != nil {
		return err
	}
	if v != c.password {
		c.password = v
		c.credentialsChanged()
	}
	return nil
}

// SetMFACode updates the MFA code; only accepted in AwaitingMfa
func (c *Controller) SetMFACode(v string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.editable(); err != nil {
		return err
	}
	if c.phase != AwaitingMfa {
		return ErrMFANotRequested
	}
	c.mfaCode = v
	return nil
}

func (c *Controller) editable() error {
	switch c.phase {
	case Submitting:
		return ErrSubmitInProgress
	case Authenticated:
		return ErrAuthenticated
	}
	return nil
}

// credentialsChanged drops the MFA round; the code was requested for the old pair
func (c *Controller) credentialsChanged() {
	if c.phase == AwaitingMfa {
		c.phase = AwaitingCredentials
		c.mfaCode = ""
		c.errors = FieldErrors{}
	}
}

// Cancel leaves the MFA phase. The MFA code and password are cleared and
// the username is kept. It returns false outside AwaitingMfa.
func (c *Controller) Cancel() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.phase != AwaitingMfa {
		return false
	}
	c.phase = AwaitingCredentials
	c.password = ""
	c.mfaCode = ""
	c.errors = FieldErrors{}
	return true
}

// Reset returns the form to its freshly mounted state
func (c *Controller) Reset() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.phase == Submitting {
		return ErrSubmitInProgress
	}
	c.phase = AwaitingCredentials
	c.resume = AwaitingCredentials
	c.username, c.password, c.mfaCode = "", "", ""
	c.errors = FieldErrors{}
	c.session = nil
	return nil
}

// Begin validates the form and, if valid, moves it to Submitting and
// returns the request to send. Field errors are cleared first.
func (c *Controller) Begin() (models.LoginRequest, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.editable(); err != nil {
		return models.LoginRequest{}, err
	}

	c.errors = c.validate()
	if len(c.errors) > 0 {
		return models.LoginRequest{}, &ValidationError{Fields: c.errors.clone()}
	}

	req := models.LoginRequest{Username: c.username, Password: c.password}
	if c.phase == AwaitingMfa {
		req.MFACode = strings.TrimSpace(c.mfaCode)
	}

	c.resume = c.phase
	c.phase = Submitting
	return req, nil
}

func (c *Controller) validate() FieldErrors {
	errs := FieldErrors{}
	if strings.TrimSpace(c.username) == "" {
		errs[FieldUsername] = MsgUsernameRequired
	}
	if c.password == "" {
		errs[FieldPassword] = MsgPasswordRequired
	}
	if c.phase == AwaitingMfa {
		code := strings.TrimSpace(c.mfaCode)
		switch {
		case code == "":
			errs[FieldMFACode] = MsgMFARequired
		case !models.IsMFACode(code):
			errs[FieldMFACode] = MsgMFAFormat
		}
	}
	return errs
}

// Complete applies the response of the submission started by Begin. err is
// a transport failure; authentication failures arrive in outcome.
func (c *Controller) Complete(outcome auth.Outcome, err error) Result {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.phase != Submitting {
		// nothing in flight (e.g. Reset raced the response)
		return Result{Action: ActionShowErrors, Errors: c.errors.clone()}
	}
	from := c.resume

	if err != nil {
		c.phase = from
		c.errors = FieldErrors{FieldGeneral: MsgTransportFailure}
		return Result{Action: ActionShowErrors, Errors: c.errors.clone()}
	}

	switch outcome.Kind {
	case auth.OutcomeMFARequired:
		if from != AwaitingMfa {
			c.phase = AwaitingMfa
			c.mfaCode = ""
			c.errors = FieldErrors{}
			return Result{Action: ActionShowMFA, Errors: FieldErrors{}}
		}
	case auth.OutcomeSuccess:
		if outcome.Token != "" {
			c.phase = Authenticated
			c.session = &Session{Token: outcome.Token, User: outcome.User}
			c.password = ""
			c.mfaCode = ""
			c.errors = FieldErrors{}
			return Result{Action: ActionNavigate, Errors: FieldErrors{}, Session: c.session}
		}
	}

	if from == AwaitingMfa {
		c.phase = AwaitingMfa
		c.errors = FieldErrors{FieldGeneral: MsgInvalidMFA}
	} else {
		c.phase = Failed
		c.errors = FieldErrors{FieldGeneral: MsgInvalidCredentials}
	}
	return Result{Action: ActionShowErrors, Errors: c.errors.clone()}
}

// Submit runs one full submission: validate, send exactly one request, and
// apply the response. A *ValidationError is returned alongside the Result
// when the request was blocked locally.
func (c *Controller) Submit(ctx context.Context, s Submitter) (Result, error) {
	req, err := c.Begin()
	if err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			return Result{Action: ActionShowErrors, Errors: verr.Fields.clone()}, err
		}
		return Result{}, err
	}

	outcome, err := s.Login(ctx, req)
	return c.Complete(outcome, err), nil
}
