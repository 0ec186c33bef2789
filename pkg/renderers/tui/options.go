package tui

import (
	"time"

	"go.uber.org/zap"

	"github.com/goliatone/go-profileform/pkg/formstate"
	"github.com/goliatone/go-profileform/pkg/present"
)

// Option configures the terminal model.
type Option func(*Model)

// WithSubmitter replaces the default DelaySubmitter.
func WithSubmitter(submitter formstate.Submitter) Option {
	return func(m *Model) {
		if submitter != nil {
			m.submitter = submitter
		}
	}
}

// WithPresenter sets the summary presenter.
func WithPresenter(presenter *present.Presenter) Option {
	return func(m *Model) {
		if presenter != nil {
			m.presenter = presenter
		}
	}
}

// WithClock overrides the time source used for date validation.
func WithClock(now func() time.Time) Option {
	return func(m *Model) {
		if now != nil {
			m.now = now
		}
	}
}

// WithLogger sets the logger. The terminal owns stdout, so callers usually
// pass a file logger or leave the default no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(m *Model) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// WithStyles overrides the default styles.
func WithStyles(styles Styles) Option {
	return func(m *Model) {
		m.styles = styles
	}
}

// WithTitle overrides the heading.
func WithTitle(title string) Option {
	return func(m *Model) {
		if title != "" {
			m.title = title
		}
	}
}
