package model_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-profileform/pkg/model"
	"github.com/goliatone/go-profileform/pkg/testsupport"
)

func TestProfileFormMatchesGolden(t *testing.T) {
	path := filepath.Join("testdata", "profile_form.golden.json")
	form := model.ProfileForm()
	if testsupport.WriteGolden(t, path, form) {
		return
	}

	want := testsupport.MustLoadFormModel(t, path)
	if diff := testsupport.CompareGolden(want, form); diff != "" {
		t.Fatalf("form catalogue mismatch (-want +got):\n%s", diff)
	}
}

func TestFormLookup(t *testing.T) {
	form := model.ProfileForm()

	var names []string
	for _, field := range form.Fields() {
		names = append(names, field.Name)
	}
	want := []string{
		model.FieldFirstName,
		model.FieldLastName,
		model.FieldEmail,
		model.FieldPhoneNumber,
		model.FieldGender,
		model.FieldDateOfBirth,
		model.FieldTechStack,
	}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Fatalf("field order mismatch (-want +got):\n%s", diff)
	}

	phone, ok := form.Field(model.FieldPhoneNumber)
	if !ok || phone.Prefix != "+91" {
		t.Fatalf("phone field = %+v, ok=%v", phone, ok)
	}
	if _, ok := form.Field("nickname"); ok {
		t.Fatalf("unexpected field nickname")
	}
}

func TestParseGender(t *testing.T) {
	cases := map[string]model.Gender{
		"male":    model.GenderMale,
		" Female": model.GenderFemale,
		"OTHER":   model.GenderOther,
		"":        model.GenderUnset,
		"unknown": model.GenderUnset,
	}
	for raw, want := range cases {
		if got := model.ParseGender(raw); got != want {
			t.Errorf("ParseGender(%q) = %q, want %q", raw, got, want)
		}
	}
	if model.GenderUnset.Valid() {
		t.Fatalf("unset gender reported valid")
	}
}

func TestSnapshotIsIsolatedFromRecord(t *testing.T) {
	rec := model.Record{FirstName: "Asha", TechStack: []string{"Go"}}
	snap := model.NewSnapshot(rec, time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC))

	rec.TechStack[0] = "Rust"
	got := snap.Record()
	got.TechStack = append(got.TechStack, "Zig")

	if diff := cmp.Diff([]string{"Go"}, snap.Record().TechStack); diff != "" {
		t.Fatalf("snapshot tags changed (-want +got):\n%s", diff)
	}
	if snap.IsZero() {
		t.Fatalf("populated snapshot reported zero")
	}
	if !(model.Snapshot{}).IsZero() {
		t.Fatalf("zero snapshot not reported zero")
	}
}
