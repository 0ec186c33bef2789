package formstate

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/goliatone/go-profileform/pkg/model"
	"github.com/goliatone/go-profileform/pkg/validation"
)

// Phase is the submission lifecycle position.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseValidating
	PhaseSubmitting
	PhaseSubmitted
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseValidating:
		return "validating"
	case PhaseSubmitting:
		return "submitting"
	case PhaseSubmitted:
		return "submitted"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// Effect reports UI side effects requested by an update.
type Effect struct {
	// FocusTagInput asks the front end to move focus back to the tag entry.
	FocusTagInput bool
}

// Notice is the transient success notification shown after submission.
type Notice struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// SubmittedNotice is emitted by CompleteSubmit.
var SubmittedNotice = Notice{
	Title:       "Form Submitted",
	Description: "You have successfully filled your form.",
}

// State is the complete form state. The zero value is an empty, idle form.
type State struct {
	values    model.Record
	pending   string
	dirty     map[string]bool
	errors    map[string]string
	formError string
	phase     Phase
	staged    model.Snapshot
	snapshot  model.Snapshot
}

// New returns an empty form.
func New() State {
	return State{}
}

// Values returns a copy of the current field values. TechStack holds the
// committed tags only.
func (s State) Values() model.Record {
	return s.values.Clone()
}

// Tags returns a copy of the committed tags.
func (s State) Tags() []string {
	return append([]string(nil), s.values.TechStack...)
}

// Pending returns the uncommitted tag input.
func (s State) Pending() string {
	return s.pending
}

// Dirty reports whether the field was edited since the form was created.
func (s State) Dirty(field string) bool {
	return s.dirty[field]
}

// Error returns the message currently attached to field.
func (s State) Error(field string) string {
	return s.errors[field]
}

// Errors returns a copy of the per-field messages.
func (s State) Errors() map[string]string {
	return cloneStrings(s.errors)
}

// FormError returns the form-level message left by a failed submission.
func (s State) FormError() string {
	return s.formError
}

// Phase reports the submission phase.
func (s State) Phase() Phase {
	return s.phase
}

// Submitting reports whether a submission is in flight.
func (s State) Submitting() bool {
	return s.phase == PhaseSubmitting
}

// Snapshot returns the last published snapshot.
func (s State) Snapshot() (model.Snapshot, bool) {
	return s.snapshot, !s.snapshot.IsZero()
}

// Staged returns the snapshot awaiting the submitter while Submitting.
func (s State) Staged() (model.Snapshot, bool) {
	if s.phase != PhaseSubmitting {
		return model.Snapshot{}, false
	}
	return s.staged, true
}

// SetField updates one field without validating it. Writing FieldTechStack
// replaces the pending tag input.
func SetField(s State, name, value string) (State, error) {
	next := s.clone()
	switch name {
	case model.FieldFirstName:
		next.values.FirstName = value
	case model.FieldLastName:
		next.values.LastName = value
	case model.FieldGender:
		next.values.Gender = model.ParseGender(value)
	case model.FieldDateOfBirth:
		next.values.DateOfBirth = value
	case model.FieldTechStack:
		next.pending = value
	case model.FieldEmail:
		next.values.Email = value
	case model.FieldPhoneNumber:
		next.values.PhoneNumber = value
	default:
		return s, fmt.Errorf("%w: %q", ErrUnknownField, name)
	}
	if next.dirty == nil {
		next.dirty = make(map[string]bool)
	}
	next.dirty[name] = true
	return next, nil
}

// AddTag commits trimmed text to the tech stack, clears the pending input and
// re-runs the tech stack rule. Blank text is ignored.
func AddTag(s State, text string) (State, Effect) {
	tag := strings.TrimSpace(text)
	if tag == "" {
		return s, Effect{}
	}
	next := s.clone()
	next.values.TechStack = append(next.values.TechStack, tag)
	next.pending = ""
	if next.dirty == nil {
		next.dirty = make(map[string]bool)
	}
	next.dirty[model.FieldTechStack] = true
	next.revalidateTags()
	return next, Effect{FocusTagInput: true}
}

// RemoveTag deletes the committed tag at index and shifts the remainder left.
// Indices outside [0, len) return ErrTagIndex and leave s unchanged.
func RemoveTag(s State, index int) (State, error) {
	if index < 0 || index >= len(s.values.TechStack) {
		return s, fmt.Errorf("%w: %d (have %d)", ErrTagIndex, index, len(s.values.TechStack))
	}
	next := s.clone()
	tags := next.values.TechStack
	next.values.TechStack = append(tags[:index:index], tags[index+1:]...)
	next.revalidateTags()
	return next, nil
}

// BeginSubmit validates the form. Invalid forms return to Idle with their
// messages attached. Valid forms move to Submitting with a staged snapshot of
// the values and committed tags.
func BeginSubmit(s State, now time.Time) (State, validation.Result, error) {
	if s.phase == PhaseSubmitting {
		return s, validation.Result{}, ErrSubmitInProgress
	}

	next := s.clone()
	next.phase = PhaseValidating
	next.formError = ""

	result := validation.ValidateRecord(next.values, next.pending, now)
	next.errors = result.Messages()
	if !result.Valid {
		next.phase = PhaseIdle
		return next, result, nil
	}

	next.staged = model.NewSnapshot(next.values, now)
	next.phase = PhaseSubmitting
	return next, result, nil
}

// CompleteSubmit publishes the staged snapshot.
func CompleteSubmit(s State) (State, Notice, error) {
	if s.phase != PhaseSubmitting {
		return s, Notice{}, ErrNotSubmitting
	}
	next := s.clone()
	next.snapshot = next.staged
	next.staged = model.Snapshot{}
	next.phase = PhaseSubmitted
	return next, SubmittedNotice, nil
}

// FailSubmit abandons the staged snapshot and records err as a form-level
// message. It is a no-op outside Submitting.
func FailSubmit(s State, err error) State {
	if s.phase != PhaseSubmitting {
		return s
	}
	next := s.clone()
	next.staged = model.Snapshot{}
	next.phase = PhaseIdle
	if err != nil {
		next.formError = err.Error()
	}
	return next
}

func (s *State) revalidateTags() {
	err := validation.TechStack(s.values.TechStack, s.pending)
	if err == nil {
		delete(s.errors, model.FieldTechStack)
		return
	}
	if s.errors == nil {
		s.errors = make(map[string]string)
	}
	var fieldErr *validation.FieldError
	if errors.As(err, &fieldErr) {
		s.errors[model.FieldTechStack] = fieldErr.Message
	}
}

func (s State) clone() State {
	out := s
	out.values = s.values.Clone()
	out.dirty = cloneBools(s.dirty)
	out.errors = cloneStrings(s.errors)
	return out
}

func cloneStrings(src map[string]string) map[string]string {
	if len(src) == 0 {
		return nil
	}
	out := make(map[string]string, len(src))
	for k, v := range src {
		out[k] = v
	}
	return out
}

func cloneBools(src map[string]bool) map[string]bool {
	if len(src) == 0 {
		return nil
	}
	out := make(map[string]bool, len(src))
	for k, v := range src {
		out[k] = v
	}
	return out
}
