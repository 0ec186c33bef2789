package model

import (
	"strings"
	"time"
)

// Field names used as keys for values, errors and dirty tracking.
const (
	FieldFirstName   = "firstName"
	FieldLastName    = "lastName"
	FieldGender      = "gender"
	FieldDateOfBirth = "dateOfBirth"
	FieldTechStack   = "techStack"
	FieldEmail       = "email"
	FieldPhoneNumber = "phoneNumber"
)

// DateLayout is the ISO layout used for stored dates of birth.
const DateLayout = "2006-01-02"

// Gender is the enumerated gender option. The zero value means unset.
type Gender string

const (
	GenderUnset  Gender = ""
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

// Genders lists the selectable options in display order.
func Genders() []Gender {
	return []Gender{GenderMale, GenderFemale, GenderOther}
}

// Label returns the human label for the option, or an empty string when the
// value is unset or unknown.
func (g Gender) Label() string {
	switch g {
	case GenderMale:
		return "Male"
	case GenderFemale:
		return "Female"
	case GenderOther:
		return "Other"
	default:
		return ""
	}
}

// Valid reports whether g is one of the enumerated options.
func (g Gender) Valid() bool {
	return g.Label() != ""
}

// ParseGender accepts either the option code or its label, case-insensitively.
// Unknown input yields GenderUnset.
func ParseGender(raw string) Gender {
	trimmed := strings.ToLower(strings.TrimSpace(raw))
	for _, g := range Genders() {
		if trimmed == string(g) || trimmed == strings.ToLower(g.Label()) {
			return g
		}
	}
	return GenderUnset
}

// Record holds the profile form values.
type Record struct {
	FirstName   string   `json:"firstName"`
	LastName    string   `json:"lastName"`
	Gender      Gender   `json:"gender"`
	DateOfBirth string   `json:"dateOfBirth"`
	TechStack   []string `json:"techStack"`
	Email       string   `json:"email"`
	PhoneNumber string   `json:"phoneNumber"`
}

// Clone returns a deep copy of the record.
func (r Record) Clone() Record {
	out := r
	if r.TechStack != nil {
		out.TechStack = append([]string(nil), r.TechStack...)
	}
	return out
}

// Snapshot is the immutable copy of a record taken at successful submission.
// Fields are unexported so holders cannot mutate the frozen values.
type Snapshot struct {
	record      Record
	submittedAt time.Time
}

// NewSnapshot freezes rec. The tech stack slice is copied.
func NewSnapshot(rec Record, submittedAt time.Time) Snapshot {
	return Snapshot{
		record:      rec.Clone(),
		submittedAt: submittedAt,
	}
}

// Record returns a copy of the frozen values.
func (s Snapshot) Record() Record {
	return s.record.Clone()
}

// SubmittedAt reports when the submission was accepted.
func (s Snapshot) SubmittedAt() time.Time {
	return s.submittedAt
}

// IsZero reports whether the snapshot was never populated.
func (s Snapshot) IsZero() bool {
	return s.submittedAt.IsZero()
}
