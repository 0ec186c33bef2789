package formstate

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/goliatone/go-profileform/pkg/model"
	"github.com/goliatone/go-profileform/pkg/validation"
)

// SubmittedFunc observes published snapshots.
type SubmittedFunc func(Notice, model.Snapshot)

// Option configures a Session.
type Option func(*Session)

// WithSubmitter overrides the default DelaySubmitter.
func WithSubmitter(submitter Submitter) Option {
	return func(s *Session) {
		if submitter != nil {
			s.submitter = submitter
		}
	}
}

// WithClock overrides time.Now for validation and snapshot timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Session) {
		if now != nil {
			s.now = now
		}
	}
}

// WithLogger attaches a logger. Defaults to a no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// OnSubmitted registers a callback fired after a snapshot is published. It
// runs on the submitter goroutine, outside the session lock.
func OnSubmitted(fn SubmittedFunc) Option {
	return func(s *Session) {
		if fn != nil {
			s.onSubmitted = append(s.onSubmitted, fn)
		}
	}
}

// Session owns a State shared between goroutines. Updates are serialised by a
// mutex; Submit never blocks on the submitter.
type Session struct {
	mu          sync.Mutex
	state       State
	submitter   Submitter
	now         func() time.Time
	logger      *zap.Logger
	onSubmitted []SubmittedFunc
	inflight    sync.WaitGroup
}

// NewSession returns a session holding an empty form.
func NewSession(options ...Option) *Session {
	s := &Session{
		state:     New(),
		submitter: NewDelaySubmitter(DefaultSubmitDelay),
		now:       time.Now,
		logger:    zap.NewNop(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(s)
	}
	return s
}

// State returns the current state value.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// SetField applies SetField to the owned state.
func (s *Session) SetField(name, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	next, err := SetField(s.state, name, value)
	if err != nil {
		return err
	}
	s.state = next
	return nil
}

// AddTag applies AddTag to the owned state.
func (s *Session) AddTag(text string) Effect {
	s.mu.Lock()
	defer s.mu.Unlock()
	next, effect := AddTag(s.state, text)
	s.state = next
	return effect
}

// RemoveTag applies RemoveTag to the owned state.
func (s *Session) RemoveTag(index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	next, err := RemoveTag(s.state, index)
	if err != nil {
		return err
	}
	s.state = next
	return nil
}

// Submit validates the form and, when valid, hands the staged snapshot to the
// submitter on a new goroutine. The returned result reflects validation only.
func (s *Session) Submit(ctx context.Context) (validation.Result, error) {
	s.mu.Lock()
	next, result, err := BeginSubmit(s.state, s.now())
	if err != nil {
		s.mu.Unlock()
		return result, err
	}
	s.state = next
	staged, ok := next.Staged()
	if !ok {
		s.mu.Unlock()
		s.logger.Debug("submit rejected by validation", zap.Int("issues", len(result.Issues)))
		return result, nil
	}
	s.inflight.Add(1)
	s.mu.Unlock()

	s.logger.Debug("submit scheduled")
	go s.deliver(context.WithoutCancel(ctx), staged)
	return result, nil
}

// Wait blocks until no submission is in flight.
func (s *Session) Wait() {
	s.inflight.Wait()
}

func (s *Session) deliver(ctx context.Context, staged model.Snapshot) {
	defer s.inflight.Done()

	err := s.submitter.Submit(ctx, staged)

	s.mu.Lock()
	if err != nil {
		s.state = FailSubmit(s.state, err)
		s.mu.Unlock()
		s.logger.Warn("submit failed", zap.Error(err))
		return
	}
	next, notice, completeErr := CompleteSubmit(s.state)
	if completeErr != nil {
		s.mu.Unlock()
		s.logger.Error("complete submit", zap.Error(completeErr))
		return
	}
	s.state = next
	snapshot, _ := next.Snapshot()
	callbacks := append([]SubmittedFunc(nil), s.onSubmitted...)
	s.mu.Unlock()

	s.logger.Info("form submitted", zap.Time("submitted_at", snapshot.SubmittedAt()))
	for _, fn := range callbacks {
		fn(notice, snapshot)
	}
}
