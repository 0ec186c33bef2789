package prompt

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/goliatone/go-profileform/pkg/formstate"
	"github.com/goliatone/go-profileform/pkg/model"
	"github.com/goliatone/go-profileform/pkg/present"
	"github.com/goliatone/go-profileform/pkg/render"
	"github.com/goliatone/go-profileform/pkg/validation"
)

// Session asks for every field in order, then submits and returns the
// rendered summary. Prompts re-ask until the field rule passes.
type Session struct {
	driver    PromptDriver
	out       io.Writer
	submitter formstate.Submitter
	presenter *present.Presenter
	registry  *render.Registry
	format    string
	form      model.FormModel
	now       func() time.Time
	logger    *zap.Logger
	theme     Theme
}

// New constructs a prompt session with defaults (survey driver, text output).
func New(options ...Option) *Session {
	s := &Session{
		submitter: formstate.NewDelaySubmitter(formstate.DefaultSubmitDelay),
		presenter: present.New(),
		registry:  render.NewDefaultRegistry(),
		format:    "text",
		form:      model.ProfileForm(),
		now:       time.Now,
		logger:    zap.NewNop(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(s)
	}
	if s.driver == nil {
		s.driver = newSurveyDriver(s.output())
	}
	return s
}

// Run drives one complete fill-in and submission.
func (s *Session) Run(ctx context.Context) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("prompt: context is required")
	}
	renderer, err := s.registry.Lookup(s.format, "text")
	if err != nil {
		return nil, fmt.Errorf("prompt: %w", err)
	}

	form := formstate.NewSession(
		formstate.WithSubmitter(s.submitter),
		formstate.WithClock(s.now),
		formstate.WithLogger(s.logger),
	)

	for _, field := range s.form.Fields() {
		if err := s.promptField(ctx, form, field); err != nil {
			return nil, err
		}
	}

	for {
		result, err := form.Submit(ctx)
		if err != nil {
			return nil, err
		}
		if result.Valid {
			break
		}
		// Re-ask whatever failed at submit time.
		for _, issue := range result.Issues {
			field, ok := s.form.Field(issue.Field)
			if !ok {
				continue
			}
			s.fail(ctx, field.Label+": "+issue.Message)
			if err := s.promptField(ctx, form, field); err != nil {
				return nil, err
			}
		}
	}

	s.info(ctx, "Submitting...")
	form.Wait()

	state := form.State()
	snapshot, ok := state.Snapshot()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSubmitFailed, state.FormError())
	}
	notice := formstate.SubmittedNotice
	s.info(ctx, notice.Title+": "+notice.Description)

	out, err := renderer.Render(ctx, s.presenter.Present(snapshot), render.RenderOptions{})
	if err != nil {
		return nil, fmt.Errorf("prompt: render summary: %w", err)
	}
	return out, nil
}

func (s *Session) promptField(ctx context.Context, form *formstate.Session, field model.Field) error {
	switch field.Type {
	case model.FieldTypeSelect:
		return s.promptSelect(ctx, form, field)
	case model.FieldTypeTags:
		return s.promptTags(ctx, form, field)
	default:
		return s.promptText(ctx, form, field)
	}
}

func (s *Session) promptText(ctx context.Context, form *formstate.Session, field model.Field) error {
	message := field.Label
	if field.Prefix != "" {
		message = fmt.Sprintf("%s (%s)", field.Label, field.Prefix)
	}
	rule := s.rule(field.Name)

	for {
		response, err := s.driver.Input(ctx, InputConfig{
			Message:   message,
			Default:   currentValue(form.State(), field.Name),
			Help:      field.Placeholder,
			Validator: rule,
		})
		if err != nil {
			return err
		}
		if err := rule(response); err != nil {
			s.fail(ctx, err.Error())
			continue
		}
		return form.SetField(field.Name, response)
	}
}

func (s *Session) promptSelect(ctx context.Context, form *formstate.Session, field model.Field) error {
	labels := make([]string, 0, len(field.Options))
	current := currentValue(form.State(), field.Name)
	defaultIndex := -1
	for i, opt := range field.Options {
		labels = append(labels, opt.Label)
		if opt.Value == current {
			defaultIndex = i
		}
	}

	for {
		idx, err := s.driver.Select(ctx, SelectConfig{
			Message:      field.Label,
			Options:      labels,
			DefaultIndex: defaultIndex,
			Help:         field.Placeholder,
		})
		if err != nil {
			return err
		}
		if idx < 0 || idx >= len(field.Options) {
			s.fail(ctx, message(validation.Gender(model.GenderUnset)))
			continue
		}
		return form.SetField(field.Name, field.Options[idx].Value)
	}
}

func (s *Session) promptTags(ctx context.Context, form *formstate.Session, field model.Field) error {
	for {
		text, err := s.driver.Input(ctx, InputConfig{
			Message: field.Label,
			Help:    "Enter one entry at a time; leave empty to finish.",
		})
		if err != nil {
			return err
		}
		if strings.TrimSpace(text) != "" {
			form.AddTag(text)
			continue
		}

		tags := form.State().Tags()
		if err := validation.TechStack(tags, ""); err != nil {
			s.fail(ctx, message(err))
			continue
		}

		remove, err := s.driver.Confirm(ctx, ConfirmConfig{
			Message: fmt.Sprintf("%s: %s. Remove an entry?", field.Label, strings.Join(tags, ", ")),
		})
		if err != nil {
			return err
		}
		if !remove {
			return nil
		}

		idx, err := s.driver.Select(ctx, SelectConfig{
			Message: "Remove which entry?",
			Options: tags,
		})
		if err != nil {
			return err
		}
		if err := form.RemoveTag(idx); err != nil {
			s.logger.Debug("remove tag", zap.Int("index", idx), zap.Error(err))
			s.fail(ctx, "No such entry")
		}
	}
}

// rule returns the check for a text field with the bare message as error
// text, which is what survey shows inline.
func (s *Session) rule(name string) func(string) error {
	var check func(string) error
	switch name {
	case model.FieldFirstName:
		check = validation.FirstName
	case model.FieldLastName:
		check = validation.LastName
	case model.FieldEmail:
		check = validation.Email
	case model.FieldPhoneNumber:
		check = validation.PhoneNumber
	case model.FieldDateOfBirth:
		check = func(value string) error { return validation.DateOfBirth(value, s.now()) }
	default:
		return func(string) error { return nil }
	}
	return func(value string) error {
		if err := check(value); err != nil {
			return errors.New(message(err))
		}
		return nil
	}
}

func (s *Session) info(ctx context.Context, msg string) {
	_ = s.driver.Info(ctx, s.theme.InfoPrefix+msg)
}

func (s *Session) fail(ctx context.Context, msg string) {
	_ = s.driver.Info(ctx, s.theme.ErrorPrefix+msg)
}

func (s *Session) output() io.Writer {
	if s.out != nil {
		return s.out
	}
	return os.Stdout
}

func message(err error) string {
	var fieldErr *validation.FieldError
	if errors.As(err, &fieldErr) {
		return fieldErr.Message
	}
	if err == nil {
		return ""
	}
	return err.Error()
}

func currentValue(state formstate.State, name string) string {
	values := state.Values()
	switch name {
	case model.FieldFirstName:
		return values.FirstName
	case model.FieldLastName:
		return values.LastName
	case model.FieldGender:
		return string(values.Gender)
	case model.FieldDateOfBirth:
		return values.DateOfBirth
	case model.FieldEmail:
		return values.Email
	case model.FieldPhoneNumber:
		return values.PhoneNumber
	default:
		return ""
	}
}
