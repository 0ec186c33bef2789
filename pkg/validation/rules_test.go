package validation_test

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-profileform/pkg/model"
	"github.com/goliatone/go-profileform/pkg/validation"
)

func messageOf(t *testing.T, err error) string {
	t.Helper()
	if err == nil {
		return ""
	}
	var fieldErr *validation.FieldError
	if !errors.As(err, &fieldErr) {
		t.Fatalf("expected *FieldError, got %T", err)
	}
	return fieldErr.Message
}

func TestNameRules(t *testing.T) {
	cases := []struct {
		value string
		want  string
	}{
		{"Asha", ""},
		{"rao", ""},
		{"", "First name is required"},
		{"   ", "First name is required"},
		{"Asha1", "Name is incorrect"},
		{"A-sha", "Name is incorrect"},
		{"Asha Rao", "Name is incorrect"},
		{"Åsa", "Name is incorrect"},
		{"42", "Name is incorrect"},
		{"#!", "Name is incorrect"},
	}
	for _, tc := range cases {
		if got := messageOf(t, validation.FirstName(tc.value)); got != tc.want {
			t.Errorf("FirstName(%q) = %q, want %q", tc.value, got, tc.want)
		}
	}

	if got := messageOf(t, validation.LastName("")); got != "Last name is required" {
		t.Fatalf("LastName empty message = %q", got)
	}
	if got := messageOf(t, validation.LastName("R4o")); got != "Name is incorrect" {
		t.Fatalf("LastName digit message = %q", got)
	}
}

func TestNameRejectsDigitsAndSymbols(t *testing.T) {
	for _, r := range "0123456789!@#$%^&*()_+-=[]{};:'\",.<>/?\\|`~ " {
		value := "Asha" + string(r)
		if validation.FirstName(value) == nil {
			t.Errorf("FirstName(%q) accepted", value)
		}
		if validation.LastName(string(r)+"Rao") == nil {
			t.Errorf("LastName(%q) accepted", string(r)+"Rao")
		}
	}
}

func TestEmailRule(t *testing.T) {
	cases := map[string]string{
		"a@b.com":             "",
		"First.Last+x@Ex.ORG": "",
		"":                    "Email is required",
		"a@b":                 "Invalid email address",
		"a@b.c":               "Invalid email address",
		"no-at-sign.com":      "Invalid email address",
		"a b@c.com":           "Invalid email address",
	}
	for value, want := range cases {
		if got := messageOf(t, validation.Email(value)); got != want {
			t.Errorf("Email(%q) = %q, want %q", value, got, want)
		}
	}
}

func TestPhoneRule(t *testing.T) {
	cases := map[string]string{
		"9876543210":      "",
		"6000000000":      "",
		"+919876543210":   "",
		"+91 9876543210":  "",
		"+91-9876543210":  "",
		"09876543210":     "",
		"919876543210":    "",
		"":                "Phone number is required",
		"5876543210":      "Invalid phone number",
		"987654321":       "Invalid phone number",
		"98765432101":     "Invalid phone number",
		"98765-43210":     "Invalid phone number",
		"+1 9876543210":   "Invalid phone number",
		"abcdefghij":      "Invalid phone number",
	}
	for value, want := range cases {
		if got := messageOf(t, validation.PhoneNumber(value)); got != want {
			t.Errorf("PhoneNumber(%q) = %q, want %q", value, got, want)
		}
	}
}

func TestGenderRule(t *testing.T) {
	for _, g := range model.Genders() {
		if err := validation.Gender(g); err != nil {
			t.Errorf("Gender(%q) unexpected error %v", g, err)
		}
	}
	for _, g := range []model.Gender{model.GenderUnset, "unknown", "Male"} {
		if got := messageOf(t, validation.Gender(g)); got != "Please select a gender" {
			t.Errorf("Gender(%q) = %q", g, got)
		}
	}
}

func TestDateOfBirthRule(t *testing.T) {
	now := time.Date(2024, time.March, 10, 15, 30, 0, 0, time.UTC)

	accepted := []string{"2024-03-10", "2024-03-09", "1990-05-21", "1900-01-01"}
	for _, value := range accepted {
		if err := validation.DateOfBirth(value, now); err != nil {
			t.Errorf("DateOfBirth(%q) unexpected error %v", value, err)
		}
	}

	rejected := map[string]string{
		"":           "Date of Birth is required",
		"2024-03-11": "Invalid date",
		"2030-01-01": "Invalid date",
		"21/05/1990": "Invalid date",
		"1990-13-01": "Invalid date",
		"yesterday":  "Invalid date",
	}
	for value, want := range rejected {
		if got := messageOf(t, validation.DateOfBirth(value, now)); got != want {
			t.Errorf("DateOfBirth(%q) = %q, want %q", value, got, want)
		}
	}
}

func TestDateOfBirthBoundaryAroundNow(t *testing.T) {
	now := time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC)
	for offset := -5; offset <= 5; offset++ {
		day := now.AddDate(0, 0, offset)
		err := validation.DateOfBirth(day.Format(model.DateLayout), now)
		if offset > 0 && err == nil {
			t.Errorf("future date %s accepted", day.Format(model.DateLayout))
		}
		if offset <= 0 && err != nil {
			t.Errorf("past date %s rejected: %v", day.Format(model.DateLayout), err)
		}
	}
}

func TestTechStackRule(t *testing.T) {
	if got := messageOf(t, validation.TechStack(nil, "")); got != "At least one tech stack is required" {
		t.Fatalf("empty tech stack message = %q", got)
	}
	if got := messageOf(t, validation.TechStack(nil, "   ")); got == "" {
		t.Fatalf("expected whitespace pending input to fail")
	}
	if err := validation.TechStack([]string{"Go"}, ""); err != nil {
		t.Fatalf("committed tag: unexpected error %v", err)
	}
	if err := validation.TechStack(nil, "Rust"); err != nil {
		t.Fatalf("pending input: unexpected error %v", err)
	}
}

func TestValidateRecord(t *testing.T) {
	now := time.Date(2024, time.March, 10, 12, 0, 0, 0, time.UTC)

	valid := model.Record{
		FirstName:   "Asha",
		LastName:    "Rao",
		Gender:      model.GenderFemale,
		DateOfBirth: "1990-05-21",
		TechStack:   []string{"Go", "Rust"},
		Email:       "a@b.com",
		PhoneNumber: "9876543210",
	}
	if result := validation.ValidateRecord(valid, "", now); !result.Valid || len(result.Issues) != 0 {
		t.Fatalf("expected valid record, got %+v", result)
	}

	result := validation.ValidateRecord(model.Record{FirstName: "Asha9"}, "", now)
	if result.Valid {
		t.Fatalf("expected invalid result")
	}
	want := []validation.Issue{
		{Field: model.FieldFirstName, Message: "Name is incorrect"},
		{Field: model.FieldLastName, Message: "Last name is required"},
		{Field: model.FieldEmail, Message: "Email is required"},
		{Field: model.FieldPhoneNumber, Message: "Phone number is required"},
		{Field: model.FieldGender, Message: "Please select a gender"},
		{Field: model.FieldDateOfBirth, Message: "Date of Birth is required"},
		{Field: model.FieldTechStack, Message: "At least one tech stack is required"},
	}
	if diff := cmp.Diff(want, result.Issues); diff != "" {
		t.Fatalf("issues mismatch (-want +got):\n%s", diff)
	}
	if got := result.Messages()[model.FieldGender]; got != "Please select a gender" {
		t.Fatalf("Messages gender = %q", got)
	}
}
