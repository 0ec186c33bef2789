package web

import (
	"io/fs"
	"os"
	"time"

	theme "github.com/goliatone/go-theme"
	"go.uber.org/zap"

	"github.com/goliatone/go-profileform/pkg/formstate"
	"github.com/goliatone/go-profileform/pkg/present"
	"github.com/goliatone/go-profileform/pkg/render"
	rendertemplate "github.com/goliatone/go-profileform/pkg/render/template"
)

type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
	submitter        formstate.Submitter
	presenter        *present.Presenter
	registry         *render.Registry
	manifest         *theme.Manifest
	variant          string
	title            string
	sessionTTL       time.Duration
	now              func() time.Time
	logger           *zap.Logger
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// WithSubmitter replaces the default three second DelaySubmitter. The same
// submitter serves every browser session and the JSON API.
func WithSubmitter(submitter formstate.Submitter) Option {
	return func(cfg *config) {
		if submitter != nil {
			cfg.submitter = submitter
		}
	}
}

// WithPresenter sets the summary presenter.
func WithPresenter(presenter *present.Presenter) Option {
	return func(cfg *config) {
		if presenter != nil {
			cfg.presenter = presenter
		}
	}
}

// WithRegistry sets the summary renderers used by /summary. The html renderer
// is added when missing.
func WithRegistry(registry *render.Registry) Option {
	return func(cfg *config) {
		if registry != nil {
			cfg.registry = registry
		}
	}
}

// WithTheme selects a manifest and variant. A nil manifest keeps the built-in
// palette.
func WithTheme(manifest *theme.Manifest, variant string) Option {
	return func(cfg *config) {
		if manifest != nil {
			cfg.manifest = manifest
		}
		cfg.variant = variant
	}
}

// WithTitle overrides the page heading.
func WithTitle(title string) Option {
	return func(cfg *config) {
		if title != "" {
			cfg.title = title
		}
	}
}

// WithSessionTTL bounds how long idle browser sessions are kept.
func WithSessionTTL(ttl time.Duration) Option {
	return func(cfg *config) {
		if ttl > 0 {
			cfg.sessionTTL = ttl
		}
	}
}

// WithClock overrides time.Now.
func WithClock(now func() time.Time) Option {
	return func(cfg *config) {
		if now != nil {
			cfg.now = now
		}
	}
}

// WithLogger attaches a logger. Defaults to a no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(cfg *config) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}
