package validation

import (
	"regexp"
	"strings"
	"time"

	"github.com/goliatone/go-profileform/pkg/model"
)

// Pattern sources, exported for schema descriptions of the record.
const (
	NamePattern  = `^[A-Za-z]+$`
	EmailPattern = `(?i)^[A-Z0-9._%+-]+@[A-Z0-9.-]+\.[A-Z]{2,}$`
	PhonePattern = `^(\+91[\-\s]?)?[0]?(91)?[6789]\d{9}$`
)

var (
	namePattern  = regexp.MustCompile(NamePattern)
	emailPattern = regexp.MustCompile(EmailPattern)
	phonePattern = regexp.MustCompile(PhonePattern)
)

// FieldError is the single validation error kind. Required and malformed
// failures differ only by message.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return e.Field + ": " + e.Message
}

func fail(field, message string) error {
	return &FieldError{Field: field, Message: message}
}

func blank(value string) bool {
	return strings.TrimSpace(value) == ""
}

// FirstName checks the first name rule.
func FirstName(value string) error {
	return name(model.FieldFirstName, "First name is required", value)
}

// LastName checks the last name rule.
func LastName(value string) error {
	return name(model.FieldLastName, "Last name is required", value)
}

func name(field, required, value string) error {
	if blank(value) {
		return fail(field, required)
	}
	if !namePattern.MatchString(value) {
		return fail(field, "Name is incorrect")
	}
	return nil
}

// Email checks the address against a local@domain.tld pattern.
func Email(value string) error {
	if blank(value) {
		return fail(model.FieldEmail, "Email is required")
	}
	if !emailPattern.MatchString(value) {
		return fail(model.FieldEmail, "Invalid email address")
	}
	return nil
}

// PhoneNumber accepts ten digits starting 6-9 with an optional +91, 91 or 0
// prefix.
func PhoneNumber(value string) error {
	if blank(value) {
		return fail(model.FieldPhoneNumber, "Phone number is required")
	}
	if !phonePattern.MatchString(value) {
		return fail(model.FieldPhoneNumber, "Invalid phone number")
	}
	return nil
}

// Gender requires one of the enumerated options.
func Gender(value model.Gender) error {
	if !value.Valid() {
		return fail(model.FieldGender, "Please select a gender")
	}
	return nil
}

// DateOfBirth requires an ISO date whose calendar day, taken at midnight in
// now's location, is not after now.
func DateOfBirth(value string, now time.Time) error {
	if blank(value) {
		return fail(model.FieldDateOfBirth, "Date of Birth is required")
	}
	parsed, err := time.ParseInLocation(model.DateLayout, strings.TrimSpace(value), now.Location())
	if err != nil {
		return fail(model.FieldDateOfBirth, "Invalid date")
	}
	if parsed.After(now) {
		return fail(model.FieldDateOfBirth, "Invalid date")
	}
	return nil
}

// TechStack passes when at least one tag is committed or the pending input
// holds text that has not been added yet.
func TechStack(committed []string, pending string) error {
	if len(committed) > 0 || !blank(pending) {
		return nil
	}
	return fail(model.FieldTechStack, "At least one tech stack is required")
}
