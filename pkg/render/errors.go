package render

import (
	"strings"

	"github.com/goliatone/go-profileform/pkg/model"
	"github.com/goliatone/go-profileform/pkg/validation"
)

// ErrorMapping splits validation feedback into inline field messages and
// form-level messages.
type ErrorMapping struct {
	Fields map[string][]string `json:"fields,omitempty"`
	Form   []string            `json:"form,omitempty"`
}

// FieldMessage returns the first message attached to field.
func (m ErrorMapping) FieldMessage(field string) string {
	if messages := m.Fields[field]; len(messages) > 0 {
		return messages[0]
	}
	return ""
}

// Empty reports whether the mapping carries no messages.
func (m ErrorMapping) Empty() bool {
	return len(m.Fields) == 0 && len(m.Form) == 0
}

// MergeFormErrors concatenates form-level messages, trimming whitespace and
// dropping duplicates while preserving order.
func MergeFormErrors(existing []string, extras ...string) []string {
	combined := make([]string, 0, len(existing)+len(extras))
	combined = append(combined, existing...)
	combined = append(combined, extras...)
	return normalizeMessages(combined)
}

// MapIssues groups issues by field. Issues naming a field outside form, or a
// form-level key, land in Form so the message is still shown.
func MapIssues(form model.FormModel, issues []validation.Issue, formErrors ...string) ErrorMapping {
	mapping := ErrorMapping{
		Fields: make(map[string][]string),
	}

	known := make(map[string]struct{})
	for _, field := range form.Fields() {
		known[field.Name] = struct{}{}
	}

	for _, issue := range issues {
		message := strings.TrimSpace(issue.Message)
		if message == "" {
			continue
		}
		field := strings.TrimSpace(issue.Field)
		if _, ok := known[field]; !ok || isFormLevelKey(field) {
			mapping.Form = append(mapping.Form, message)
			continue
		}
		mapping.Fields[field] = normalizeMessages(append(mapping.Fields[field], message))
	}

	if len(mapping.Fields) == 0 {
		mapping.Fields = nil
	}
	mapping.Form = MergeFormErrors(mapping.Form, formErrors...)
	return mapping
}

// MapMessages adapts a field -> message map, as kept by the form state.
func MapMessages(form model.FormModel, messages map[string]string, formErrors ...string) ErrorMapping {
	issues := make([]validation.Issue, 0, len(messages))
	for _, field := range form.Fields() {
		if msg, ok := messages[field.Name]; ok {
			issues = append(issues, validation.Issue{Field: field.Name, Message: msg})
		}
	}
	return MapIssues(form, issues, formErrors...)
}

func normalizeMessages(messages []string) []string {
	if len(messages) == 0 {
		return nil
	}

	out := make([]string, 0, len(messages))
	seen := make(map[string]struct{}, len(messages))

	for _, message := range messages {
		trimmed := strings.TrimSpace(message)
		if trimmed == "" {
			continue
		}
		if _, exists := seen[trimmed]; exists {
			continue
		}
		seen[trimmed] = struct{}{}
		out = append(out, trimmed)
	}

	if len(out) == 0 {
		return nil
	}
	return out
}

func isFormLevelKey(key string) bool {
	switch strings.ToLower(strings.TrimSpace(key)) {
	case "", ".", "/", "#", "$", "form", "__all__", "non_field_errors":
		return true
	default:
		return false
	}
}
