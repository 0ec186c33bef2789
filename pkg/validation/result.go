package validation

import (
	"errors"
	"time"

	"github.com/goliatone/go-profileform/pkg/model"
)

// Issue is a failed rule keyed by field name.
type Issue struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Result captures the outcome of validating a whole record.
type Result struct {
	Valid  bool    `json:"valid"`
	Issues []Issue `json:"issues,omitempty"`
}

// Messages returns field -> message for the failed rules.
func (r Result) Messages() map[string]string {
	if len(r.Issues) == 0 {
		return nil
	}
	out := make(map[string]string, len(r.Issues))
	for _, issue := range r.Issues {
		out[issue.Field] = issue.Message
	}
	return out
}

// ValidateRecord runs every rule against rec. pending is the uncommitted tag
// input which counts towards the tech stack rule only. Issues follow the form
// catalogue order.
func ValidateRecord(rec model.Record, pending string, now time.Time) Result {
	checks := map[string]error{
		model.FieldFirstName:   FirstName(rec.FirstName),
		model.FieldLastName:    LastName(rec.LastName),
		model.FieldEmail:       Email(rec.Email),
		model.FieldPhoneNumber: PhoneNumber(rec.PhoneNumber),
		model.FieldGender:      Gender(rec.Gender),
		model.FieldDateOfBirth: DateOfBirth(rec.DateOfBirth, now),
		model.FieldTechStack:   TechStack(rec.TechStack, pending),
	}

	result := Result{Valid: true}
	for _, field := range model.ProfileForm().Fields() {
		err := checks[field.Name]
		if err == nil {
			continue
		}
		result.Valid = false
		result.Issues = append(result.Issues, issueFromError(field.Name, err))
	}
	return result
}

func issueFromError(field string, err error) Issue {
	var fieldErr *FieldError
	if errors.As(err, &fieldErr) {
		return Issue{Field: fieldErr.Field, Message: fieldErr.Message}
	}
	return Issue{Field: field, Message: err.Error()}
}
