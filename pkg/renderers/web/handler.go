package web

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	theme "github.com/goliatone/go-theme"
	"go.uber.org/zap"

	"github.com/goliatone/go-profileform/pkg/formstate"
	"github.com/goliatone/go-profileform/pkg/model"
	"github.com/goliatone/go-profileform/pkg/openapi"
	"github.com/goliatone/go-profileform/pkg/present"
	"github.com/goliatone/go-profileform/pkg/render"
	rendertemplate "github.com/goliatone/go-profileform/pkg/render/template"
	gotemplate "github.com/goliatone/go-profileform/pkg/render/template/gotemplate"
)

// Form actions posted by the page buttons. ActionDefault belongs to the
// first button in the form, which browsers press on Enter.
const (
	ActionDefault   = "enter"
	ActionAddTag    = "add-tag"
	ActionRemoveTag = "remove-tag:"
	ActionSubmit    = "submit"
)

// DefaultTitle is the page heading.
const DefaultTitle = "Basic Details Form"

// Handler serves the profile form over HTTP: the HTML page with its form
// actions, the submitted summary, the JSON submission API and its OpenAPI
// document.
type Handler struct {
	mux       *http.ServeMux
	templates rendertemplate.TemplateRenderer
	sessions  *sessionStore
	submitter formstate.Submitter
	presenter *present.Presenter
	registry  *render.Registry
	theme     *theme.RendererConfig
	form      model.FormModel
	document  []byte
	title     string
	now       func() time.Time
	logger    *zap.Logger
}

// New constructs the handler applying any provided options.
func New(options ...Option) (*Handler, error) {
	cfg := config{templateFS: TemplatesFS()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}
	if cfg.submitter == nil {
		cfg.submitter = formstate.NewDelaySubmitter(formstate.DefaultSubmitDelay)
	}
	if cfg.presenter == nil {
		cfg.presenter = present.New()
	}
	if cfg.registry == nil {
		cfg.registry = render.NewDefaultRegistry()
	}
	if cfg.manifest == nil {
		cfg.manifest = DefaultManifest()
	}
	if cfg.title == "" {
		cfg.title = DefaultTitle
	}
	if cfg.now == nil {
		cfg.now = time.Now
	}
	if cfg.logger == nil {
		cfg.logger = zap.NewNop()
	}

	templates := cfg.templateRenderer
	if templates == nil {
		engine, err := gotemplate.New(
			gotemplate.WithFS(cfg.templateFS),
			gotemplate.WithExtension(".tmpl"),
		)
		if err != nil {
			return nil, fmt.Errorf("web: configure template renderer: %w", err)
		}
		templates = engine
	}

	themeCfg, err := ResolveTheme(cfg.manifest, cfg.variant)
	if err != nil {
		return nil, err
	}

	if !cfg.registry.Has("html") {
		if err := cfg.registry.Register(NewSummaryRenderer(templates, partialName(themeCfg, summaryTemplate))); err != nil {
			return nil, fmt.Errorf("web: register html renderer: %w", err)
		}
	}

	form := model.ProfileForm()
	doc, err := openapi.Build(context.Background(), form)
	if err != nil {
		return nil, fmt.Errorf("web: build api document: %w", err)
	}

	h := &Handler{
		mux:       http.NewServeMux(),
		templates: templates,
		submitter: cfg.submitter,
		presenter: cfg.presenter,
		registry:  cfg.registry,
		theme:     themeCfg,
		form:      form,
		document:  doc.Raw(),
		title:     cfg.title,
		now:       cfg.now,
		logger:    cfg.logger,
	}
	h.sessions = newSessionStore(cfg.sessionTTL, cfg.now, h.newForm)
	h.routes()
	return h, nil
}

func (h *Handler) routes() {
	h.mux.HandleFunc("GET /{$}", h.handlePage)
	h.mux.HandleFunc("POST /{$}", h.handleAction)
	h.mux.HandleFunc("GET /summary", h.handleSummary)
	h.mux.HandleFunc("POST "+openapi.SubmissionsPath, h.handleSubmitAPI)
	h.mux.HandleFunc("GET "+openapi.DocumentPath, h.handleDocument)
	h.mux.HandleFunc("GET /healthz", h.handleHealth)
	h.mux.Handle("GET /assets/", http.StripPrefix("/assets/", http.FileServerFS(AssetsFS())))
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	started := h.now()
	rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
	h.mux.ServeHTTP(rec, r)
	h.logger.Debug("request",
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
		zap.Int("status", rec.status),
		zap.Duration("elapsed", h.now().Sub(started)),
	)
}

// Wait blocks until every scheduled browser submission has completed.
func (h *Handler) Wait() {
	h.sessions.wait()
}

func (h *Handler) newForm(id string) *formstate.Session {
	return formstate.NewSession(
		formstate.WithSubmitter(h.submitter),
		formstate.WithClock(h.now),
		formstate.WithLogger(h.logger.With(zap.String("session", id))),
	)
}

// session returns the browser session named by the request cookie, creating
// one and setting the cookie when absent or expired.
func (h *Handler) session(w http.ResponseWriter, r *http.Request) *browserSession {
	if cookie, err := r.Cookie(SessionCookieName); err == nil {
		if entry, ok := h.sessions.get(cookie.Value); ok {
			return entry
		}
	}
	entry := h.sessions.create()
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    entry.id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	h.logger.Debug("session created", zap.String("session", entry.id))
	return entry
}

func (h *Handler) handlePage(w http.ResponseWriter, r *http.Request) {
	entry := h.session(w, r)
	view := h.pageView(r.Context(), entry)

	body, err := h.templates.RenderTemplate(partialName(h.theme, pageTemplate), view)
	if err != nil {
		h.logger.Error("render page", zap.Error(err))
		http.Error(w, "failed to render page", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	_, _ = w.Write([]byte(body))
}

func (h *Handler) handleAction(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "malformed form body", http.StatusBadRequest)
		return
	}
	entry := h.session(w, r)
	if !entry.validToken(r.PostForm.Get(render.CSRFFieldName)) {
		h.logger.Warn("csrf token mismatch", zap.String("session", entry.id))
		http.Error(w, "invalid form token", http.StatusForbidden)
		return
	}

	action, index, err := parseAction(r.PostForm.Get("action"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if action == ActionRemoveTag {
		if count := len(entry.form.State().Tags()); index >= count {
			http.Error(w, fmt.Sprintf("%v: %d (have %d)", formstate.ErrTagIndex, index, count), http.StatusBadRequest)
			return
		}
	}

	for _, field := range h.form.Fields() {
		values, ok := r.PostForm[field.Name]
		if !ok || len(values) == 0 {
			continue
		}
		if err := entry.form.SetField(field.Name, sanitizeInput(values[0])); err != nil {
			h.logger.Error("set field", zap.String("field", field.Name), zap.Error(err))
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
	}

	switch action {
	case ActionAddTag:
		h.addTag(entry)
	case ActionRemoveTag:
		if err := entry.form.RemoveTag(index); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
	case ActionDefault:
		// Enter in a text field: commit typed tag text, otherwise submit.
		if strings.TrimSpace(entry.form.State().Pending()) != "" {
			h.addTag(entry)
			break
		}
		if !h.submit(w, r, entry) {
			return
		}
	case ActionSubmit:
		if !h.submit(w, r, entry) {
			return
		}
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// parseAction splits the posted action into its kind and, for tag removal,
// the index. A missing action is treated as ActionDefault.
func parseAction(raw string) (string, int, error) {
	action := strings.TrimSpace(raw)
	switch {
	case action == "" || action == ActionDefault:
		return ActionDefault, 0, nil
	case action == ActionAddTag || action == ActionSubmit:
		return action, 0, nil
	case strings.HasPrefix(action, ActionRemoveTag):
		index, err := strconv.Atoi(strings.TrimPrefix(action, ActionRemoveTag))
		if err != nil || index < 0 {
			return "", 0, fmt.Errorf("malformed tag index in %q", action)
		}
		return ActionRemoveTag, index, nil
	default:
		return "", 0, fmt.Errorf("unknown action %q", action)
	}
}

func (h *Handler) addTag(entry *browserSession) {
	if effect := entry.form.AddTag(entry.form.State().Pending()); effect.FocusTagInput {
		entry.focusTags.Store(true)
	}
}

// submit reports false when it has already written an error response.
func (h *Handler) submit(w http.ResponseWriter, r *http.Request, entry *browserSession) bool {
	result, err := entry.form.Submit(r.Context())
	switch {
	case errors.Is(err, formstate.ErrSubmitInProgress):
		h.logger.Debug("submit ignored while busy", zap.String("session", entry.id))
	case err != nil:
		h.logger.Error("submit", zap.Error(err))
		http.Error(w, "submit failed", http.StatusInternalServerError)
		return false
	case !result.Valid:
		h.logger.Debug("submit rejected", zap.String("session", entry.id), zap.Int("issues", len(result.Issues)))
	}
	return true
}

func (h *Handler) handleSummary(w http.ResponseWriter, r *http.Request) {
	entry := h.session(w, r)
	snapshot, ok := entry.form.State().Snapshot()
	if !ok {
		http.Error(w, "no submission yet", http.StatusNotFound)
		return
	}

	renderer, err := h.registry.Lookup(r.URL.Query().Get("format"), "html")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	body, err := renderer.Render(r.Context(), h.presenter.Present(snapshot), render.RenderOptions{})
	if err != nil {
		h.logger.Error("render summary", zap.String("renderer", renderer.Name()), zap.Error(err))
		http.Error(w, "failed to render summary", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", renderer.ContentType())
	_, _ = w.Write(body)
}

func (h *Handler) handleDocument(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(h.document)
}

func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}
