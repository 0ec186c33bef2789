// Package present turns a submitted snapshot into labelled display strings.
package present

import (
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/goliatone/go-profileform/pkg/model"
)

const (
	// DefaultPlaceholder replaces empty values.
	DefaultPlaceholder = "Not provided"
	// DefaultDateLayout renders dates as dd/Mon/yyyy.
	DefaultDateLayout = "02/Jan/2006"
)

// Entry is one labelled line of the summary.
type Entry struct {
	Field string `json:"field"`
	Label string `json:"label"`
	Value string `json:"value"`
}

// Summary is the ordered presenter output.
type Summary []Entry

// Text renders "Label: Value" lines.
func (s Summary) Text() string {
	var b strings.Builder
	for _, entry := range s {
		fmt.Fprintf(&b, "%s: %s\n", entry.Label, entry.Value)
	}
	return b.String()
}

// Map returns label -> value.
func (s Summary) Map() map[string]string {
	out := make(map[string]string, len(s))
	for _, entry := range s {
		out[entry.Label] = entry.Value
	}
	return out
}

// Value returns the formatted value for field.
func (s Summary) Value(field string) (string, bool) {
	for _, entry := range s {
		if entry.Field == field {
			return entry.Value, true
		}
	}
	return "", false
}

// Option configures a Presenter.
type Option func(*Presenter)

// WithPlaceholder overrides the text used for empty values.
func WithPlaceholder(text string) Option {
	return func(p *Presenter) {
		if strings.TrimSpace(text) != "" {
			p.placeholder = text
		}
	}
}

// WithDateLayout overrides the display layout for dates (Go reference time).
func WithDateLayout(layout string) Option {
	return func(p *Presenter) {
		if strings.TrimSpace(layout) != "" {
			p.dateLayout = layout
		}
	}
}

// WithLogger receives date fallback diagnostics.
func WithLogger(logger *zap.Logger) Option {
	return func(p *Presenter) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// Presenter formats snapshots. It holds no mutable state.
type Presenter struct {
	placeholder string
	dateLayout  string
	logger      *zap.Logger
}

// New returns a presenter with the default placeholder and date layout.
func New(options ...Option) *Presenter {
	p := &Presenter{
		placeholder: DefaultPlaceholder,
		dateLayout:  DefaultDateLayout,
		logger:      zap.NewNop(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(p)
	}
	return p
}

// Placeholder reports the text used for empty values.
func (p *Presenter) Placeholder() string {
	return p.placeholder
}

// Present formats snap in display order.
func (p *Presenter) Present(snap model.Snapshot) Summary {
	rec := snap.Record()
	return Summary{
		{Field: model.FieldFirstName, Label: "First Name", Value: p.text(rec.FirstName)},
		{Field: model.FieldLastName, Label: "Last Name", Value: p.text(rec.LastName)},
		{Field: model.FieldGender, Label: "Gender", Value: p.text(rec.Gender.Label())},
		{Field: model.FieldDateOfBirth, Label: "Date Of Birth", Value: p.date(rec.DateOfBirth)},
		{Field: model.FieldTechStack, Label: "Tech Stack", Value: p.text(strings.Join(rec.TechStack, ", "))},
		{Field: model.FieldPhoneNumber, Label: "Phone Number", Value: p.text(rec.PhoneNumber)},
		{Field: model.FieldEmail, Label: "Email", Value: p.text(rec.Email)},
	}
}

// FormatDate converts an ISO date to the presenter's display layout.
func (p *Presenter) FormatDate(iso string) (string, error) {
	parsed, err := time.Parse(model.DateLayout, strings.TrimSpace(iso))
	if err != nil {
		return "", fmt.Errorf("present: parse date %q: %w", iso, err)
	}
	return parsed.Format(p.dateLayout), nil
}

// ParseDisplayDate converts a display date back to ISO form.
func (p *Presenter) ParseDisplayDate(display string) (string, error) {
	parsed, err := time.Parse(p.dateLayout, strings.TrimSpace(display))
	if err != nil {
		return "", fmt.Errorf("present: parse display date %q: %w", display, err)
	}
	return parsed.Format(model.DateLayout), nil
}

func (p *Presenter) text(value string) string {
	if strings.TrimSpace(value) == "" {
		return p.placeholder
	}
	return value
}

func (p *Presenter) date(iso string) string {
	if strings.TrimSpace(iso) == "" {
		return p.placeholder
	}
	formatted, err := p.FormatDate(iso)
	if err != nil {
		p.logger.Debug("date of birth fallback", zap.String("value", iso), zap.Error(err))
		return p.placeholder
	}
	return formatted
}
