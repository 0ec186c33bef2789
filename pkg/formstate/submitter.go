package formstate

import (
	"context"
	"time"

	"github.com/goliatone/go-profileform/pkg/model"
)

// DefaultSubmitDelay is the simulated submission latency.
const DefaultSubmitDelay = 3 * time.Second

// Submitter delivers a validated snapshot.
type Submitter interface {
	Submit(ctx context.Context, snapshot model.Snapshot) error
}

// SubmitterFunc adapts a function to Submitter.
type SubmitterFunc func(ctx context.Context, snapshot model.Snapshot) error

// Submit calls f.
func (f SubmitterFunc) Submit(ctx context.Context, snapshot model.Snapshot) error {
	return f(ctx, snapshot)
}

// DelaySubmitter stands in for a real backend: it waits for Delay and always
// succeeds. Cancellation is not observed; once started the wait runs to the
// end.
type DelaySubmitter struct {
	Delay time.Duration
	// After defaults to time.After and exists so tests can control the clock.
	After func(time.Duration) <-chan time.Time
}

// NewDelaySubmitter returns a submitter waiting delay. Non-positive values
// fall back to DefaultSubmitDelay.
func NewDelaySubmitter(delay time.Duration) *DelaySubmitter {
	if delay <= 0 {
		delay = DefaultSubmitDelay
	}
	return &DelaySubmitter{Delay: delay}
}

// Submit waits for the configured delay.
func (d *DelaySubmitter) Submit(_ context.Context, _ model.Snapshot) error {
	after := d.After
	if after == nil {
		after = time.After
	}
	<-after(d.Delay)
	return nil
}
