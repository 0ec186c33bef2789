package prompt

import (
	"io"
	"time"

	"go.uber.org/zap"

	"github.com/goliatone/go-profileform/pkg/formstate"
	"github.com/goliatone/go-profileform/pkg/present"
	"github.com/goliatone/go-profileform/pkg/render"
)

// Theme captures optional message prefixes applied to Info output.
type Theme struct {
	InfoPrefix  string
	ErrorPrefix string
}

// Option configures the prompt session.
type Option func(*Session)

// WithPromptDriver overrides the survey driver.
func WithPromptDriver(driver PromptDriver) Option {
	return func(s *Session) {
		if driver != nil {
			s.driver = driver
		}
	}
}

// WithOutput sets where the default driver prints informational lines.
func WithOutput(out io.Writer) Option {
	return func(s *Session) {
		if out != nil {
			s.out = out
		}
	}
}

// WithSubmitter replaces the default DelaySubmitter.
func WithSubmitter(submitter formstate.Submitter) Option {
	return func(s *Session) {
		if submitter != nil {
			s.submitter = submitter
		}
	}
}

// WithPresenter sets the summary presenter.
func WithPresenter(presenter *present.Presenter) Option {
	return func(s *Session) {
		if presenter != nil {
			s.presenter = presenter
		}
	}
}

// WithRegistry sets the renderers the summary format is looked up in.
func WithRegistry(registry *render.Registry) Option {
	return func(s *Session) {
		if registry != nil {
			s.registry = registry
		}
	}
}

// WithOutputFormat selects the summary renderer by name. Defaults to "text".
func WithOutputFormat(format string) Option {
	return func(s *Session) {
		if format != "" {
			s.format = format
		}
	}
}

// WithClock overrides time.Now.
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

// WithTheme applies optional message prefixes.
func WithTheme(theme Theme) Option {
	return func(s *Session) {
		s.theme = theme
	}
}
