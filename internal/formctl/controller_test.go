package formctl

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shindakun/ethicstraining/internal/auth"
	"github.com/shindakun/ethicstraining/internal/config"
	"github.com/shindakun/ethicstraining/internal/models"
)

// recorder is a Submitter backed by the real demo authenticator
type recorder struct {
	mu    sync.Mutex
	calls []models.LoginRequest
	auth  *auth.Authenticator
	err   error
}

func newRecorder() *recorder {
	return &recorder{auth: auth.NewAuthenticator(config.Default().Auth)}
}

func (r *recorder) Login(_ context.Context, req models.LoginRequest) (auth.Outcome, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, req)
	if r.err != nil {
		return auth.Outcome{}, r.err
	}
	return r.auth.Authenticate(req), nil
}

func (r *recorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.calls)
}

func fill(t *testing.T, c *Controller, username, password string) {
	t.Helper()
	require.NoError(t, c.SetUsername(username))
	require.NoError(t, c.SetPassword(password))
}

func TestInitialState(t *testing.T) {
	c := New()
	assert.Equal(t, AwaitingCredentials, c.Phase())
	assert.False(t, c.MFAVisible())
	assert.Empty(t, c.Errors())
	assert.Nil(t, c.Session())
}

func TestValidationBlocksSubmission(t *testing.T) {
	tests := []struct {
		name     string
		username string
		password string
		want     FieldErrors
	}{
		{"empty username", "", "demo123", FieldErrors{FieldUsername: MsgUsernameRequired}},
		{"blank username", "   ", "demo123", FieldErrors{FieldUsername: MsgUsernameRequired}},
		{"empty password", "admin", "", FieldErrors{FieldPassword: MsgPasswordRequired}},
		{"both empty", "", "", FieldErrors{FieldUsername: MsgUsernameRequired, FieldPassword: MsgPasswordRequired}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := newRecorder()
			c := New()
			fill(t, c, tt.username, tt.password)

			res, err := c.Submit(context.Background(), rec)
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.want, verr.Fields)
			assert.Equal(t, tt.want, res.Errors)
			assert.Equal(t, ActionShowErrors, res.Action)
			assert.Equal(t, 0, rec.count(), "no network call expected")
			assert.Equal(t, AwaitingCredentials, c.Phase())
		})
	}
}

func TestFullLoginFlow(t *testing.T) {
	rec := newRecorder()
	c := New()
	ctx := context.Background()

	fill(t, c, "admin", "demo123")
	res, err := c.Submit(ctx, rec)
	require.NoError(t, err)
	assert.Equal(t, ActionShowMFA, res.Action)
	assert.Empty(t, res.Errors)
	assert.Equal(t, AwaitingMfa, c.Phase())
	assert.True(t, c.MFAVisible())
	assert.Equal(t, "", rec.calls[0].MFACode)

	require.NoError(t, c.SetMFACode("123456"))
	res, err = c.Submit(ctx, rec)
	require.NoError(t, err)
	assert.Equal(t, ActionNavigate, res.Action)
	require.NotNil(t, res.Session)
	assert.Equal(t, config.Default().Auth.Token, res.Session.Token)
	assert.Equal(t, Authenticated, c.Phase())
	assert.Equal(t, 2, rec.count())
	assert.Equal(t, "123456", rec.calls[1].MFACode)

	// state is discarded after navigation
	_, password, code := c.Values()
	assert.Empty(t, password)
	assert.Empty(t, code)

	_, err = c.Submit(ctx, rec)
	assert.ErrorIs(t, err, ErrAuthenticated)
	assert.Equal(t, 2, rec.count())
}

func TestInvalidCredentialsThenRetry(t *testing.T) {
	rec := newRecorder()
	c := New()
	ctx := context.Background()

	fill(t, c, "admin", "wrong")
	res, err := c.Submit(ctx, rec)
	require.NoError(t, err)
	assert.Equal(t, ActionShowErrors, res.Action)
	assert.Equal(t, FieldErrors{FieldGeneral: MsgInvalidCredentials}, res.Errors)
	assert.Equal(t, Failed, c.Phase())
	assert.False(t, c.MFAVisible())

	// identical resubmission, identical result
	again, err := c.Submit(ctx, rec)
	require.NoError(t, err)
	assert.Equal(t, res, again)

	require.NoError(t, c.SetPassword("demo123"))
	res, err = c.Submit(ctx, rec)
	require.NoError(t, err)
	assert.Equal(t, ActionShowMFA, res.Action)
	assert.Empty(t, c.Errors(), "errors are cleared at the start of each attempt")
}

func TestInvalidMFAStaysInMFAPhase(t *testing.T) {
	rec := newRecorder()
	c := New()
	ctx := context.Background()

	fill(t, c, "admin", "demo123")
	_, err := c.Submit(ctx, rec)
	require.NoError(t, err)

	require.NoError(t, c.SetMFACode("000000"))
	res, err := c.Submit(ctx, rec)
	require.NoError(t, err)
	assert.Equal(t, FieldErrors{FieldGeneral: MsgInvalidMFA}, res.Errors)
	assert.Equal(t, AwaitingMfa, c.Phase())

	require.NoError(t, c.SetMFACode("123456"))
	res, err = c.Submit(ctx, rec)
	require.NoError(t, err)
	assert.Equal(t, ActionNavigate, res.Action)
}

func TestMFAValidation(t *testing.T) {
	rec := newRecorder()
	c := New()
	ctx := context.Background()

	fill(t, c, "admin", "demo123")
	_, err := c.Submit(ctx, rec)
	require.NoError(t, err)
	calls := rec.count()

	res, err := c.Submit(ctx, rec)
	require.Error(t, err)
	assert.Equal(t, FieldErrors{FieldMFACode: MsgMFARequired}, res.Errors)

	require.NoError(t, c.SetMFACode("12ab"))
	res, err = c.Submit(ctx, rec)
	require.Error(t, err)
	assert.Equal(t, FieldErrors{FieldMFACode: MsgMFAFormat}, res.Errors)

	assert.Equal(t, calls, rec.count())
	assert.Equal(t, AwaitingMfa, c.Phase())
}

func TestMFACodeRejectedOutsideMFAPhase(t *testing.T) {
	c := New()
	assert.ErrorIs(t, c.SetMFACode("123456"), ErrMFANotRequested)
	_, _, code := c.Values()
	assert.Empty(t, code)
}

func TestChangingCredentialsResetsPhase(t *testing.T) {
	for _, field := range []string{FieldUsername, FieldPassword} {
		t.Run(field, func(t *testing.T) {
			rec := newRecorder()
			c := New()
			fill(t, c, "admin", "demo123")
			_, err := c.Submit(context.Background(), rec)
			require.NoError(t, err)
			require.NoError(t, c.SetMFACode("123456"))

			if field == FieldUsername {
				require.NoError(t, c.SetUsername("someone-else"))
			} else {
				require.NoError(t, c.SetPassword("other"))
			}

			assert.Equal(t, AwaitingCredentials, c.Phase())
			assert.False(t, c.MFAVisible())
			_, _, code := c.Values()
			assert.Empty(t, code)
		})
	}

	t.Run("same value keeps the phase", func(t *testing.T) {
		c := New()
		fill(t, c, "admin", "demo123")
		_, err := c.Submit(context.Background(), newRecorder())
		require.NoError(t, err)
		require.NoError(t, c.SetUsername("admin"))
		assert.Equal(t, AwaitingMfa, c.Phase())
	})
}

func TestCancel(t *testing.T) {
	c := New()
	assert.False(t, c.Cancel(), "nothing to cancel in phase 1")

	fill(t, c, "admin", "demo123")
	_, err := c.Submit(context.Background(), newRecorder())
	require.NoError(t, err)
	require.NoError(t, c.SetMFACode("12"))

	assert.True(t, c.Cancel())
	assert.Equal(t, AwaitingCredentials, c.Phase())
	username, password, code := c.Values()
	assert.Equal(t, "admin", username)
	assert.Empty(t, password)
	assert.Empty(t, code)
	assert.Empty(t, c.Errors())
}

func TestTransportFailureKeepsPhase(t *testing.T) {
	rec := newRecorder()
	c := New()
	ctx := context.Background()

	fill(t, c, "admin", "demo123")
	_, err := c.Submit(ctx, rec)
	require.NoError(t, err)
	require.NoError(t, c.SetMFACode("123456"))

	rec.err = errors.New("connection refused")
	res, err := c.Submit(ctx, rec)
	require.NoError(t, err)
	assert.Equal(t, FieldErrors{FieldGeneral: MsgTransportFailure}, res.Errors)
	assert.Equal(t, AwaitingMfa, c.Phase())

	rec.err = nil
	res, err = c.Submit(ctx, rec)
	require.NoError(t, err)
	assert.Equal(t, ActionNavigate, res.Action)
}

func TestTransportFailureInFirstPhase(t *testing.T) {
	rec := newRecorder()
	rec.err = errors.New("no route to host")
	c := New()
	fill(t, c, "admin", "demo123")

	_, err := c.Submit(context.Background(), rec)
	require.NoError(t, err)
	assert.Equal(t, AwaitingCredentials, c.Phase())
	assert.Equal(t, MsgTransportFailure, c.Errors()[FieldGeneral])
}

func TestSingleSubmissionInFlight(t *testing.T) {
	c := New()
	fill(t, c, "admin", "demo123")

	req, err := c.Begin()
	require.NoError(t, err)
	assert.Equal(t, "admin", req.Username)
	assert.Equal(t, Submitting, c.Phase())

	_, err = c.Begin()
	assert.ErrorIs(t, err, ErrSubmitInProgress)
	assert.ErrorIs(t, c.SetUsername("x"), ErrSubmitInProgress)
	assert.ErrorIs(t, c.Reset(), ErrSubmitInProgress)

	res := c.Complete(auth.Outcome{Kind: auth.OutcomeMFARequired}, nil)
	assert.Equal(t, ActionShowMFA, res.Action)
}

func TestMFARequiredDuringMFAPhaseIsAFailure(t *testing.T) {
	c := New()
	fill(t, c, "admin", "demo123")
	_, err := c.Begin()
	require.NoError(t, err)
	c.Complete(auth.Outcome{Kind: auth.OutcomeMFARequired}, nil)

	require.NoError(t, c.SetMFACode("123456"))
	_, err = c.Begin()
	require.NoError(t, err)
	res := c.Complete(auth.Outcome{Kind: auth.OutcomeMFARequired}, nil)

	assert.Equal(t, ActionShowErrors, res.Action)
	assert.Equal(t, MsgInvalidMFA, res.Errors[FieldGeneral])
	assert.Equal(t, AwaitingMfa, c.Phase())
}

func TestSuccessWithoutTokenIsAFailure(t *testing.T) {
	c := New()
	fill(t, c, "admin", "demo123")
	_, err := c.Begin()
	require.NoError(t, err)

	res := c.Complete(auth.Outcome{Kind: auth.OutcomeSuccess}, nil)
	assert.Equal(t, ActionShowErrors, res.Action)
	assert.Equal(t, Failed, c.Phase())
}

func TestCompleteWithoutBegin(t *testing.T) {
	c := New()
	res := c.Complete(auth.Outcome{Kind: auth.OutcomeSuccess, Token: "t"}, nil)
	assert.Equal(t, ActionShowErrors, res.Action)
	assert.Equal(t, AwaitingCredentials, c.Phase())
}

func TestReset(t *testing.T) {
	c := New()
	fill(t, c, "admin", "wrong")
	_, err := c.Submit(context.Background(), newRecorder())
	require.NoError(t, err)
	require.Equal(t, Failed, c.Phase())

	require.NoError(t, c.Reset())
	assert.Equal(t, AwaitingCredentials, c.Phase())
	assert.Empty(t, c.Errors())
	username, password, _ := c.Values()
	assert.Empty(t, username)
	assert.Empty(t, password)
}

func TestWithLatency(t *testing.T) {
	rec := newRecorder()
	slow := WithLatency(rec, 20*time.Millisecond)

	start := time.Now()
	out, err := slow.Login(context.Background(), models.LoginRequest{Username: "admin", Password: "demo123"})
	require.NoError(t, err)
	assert.Equal(t, auth.OutcomeMFARequired, out.Kind)
	assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = slow.Login(ctx, models.LoginRequest{})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, rec.count())

	assert.Equal(t, Submitter(rec), WithLatency(rec, 0))
}

func TestPhaseString(t *testing.T) {
	assert.Equal(t, "awaiting_mfa", AwaitingMfa.String())
	assert.Equal(t, "unknown", Phase(42).String())
}
