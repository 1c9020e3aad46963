package formctl

import (
	"context"
	"time"

	"github.com/shindakun/ethicstraining/internal/auth"
	"github.com/shindakun/ethicstraining/internal/models"
)

// WithLatency delays every submission by d before handing it to s. It only
// simulates a slow network for demos and does not change the outcome.
func WithLatency(s Submitter, d time.Duration) Submitter {
	if d <= 0 {
		return s
	}
	return SubmitterFunc(func(ctx context.Context, req models.LoginRequest) (auth.Outcome, error) {
		timer := time.NewTimer(d)
		defer timer.Stop()

		select {
		case <-ctx.Done():
			return auth.Outcome{}, ctx.Err()
		case <-timer.C:
		}
		return s.Login(ctx, req)
	})
}
