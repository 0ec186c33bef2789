package present_test

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/goliatone/go-profileform/pkg/model"
	"github.com/goliatone/go-profileform/pkg/present"
)

func snapshotOf(rec model.Record) model.Snapshot {
	return model.NewSnapshot(rec, time.Date(2024, time.March, 10, 12, 0, 0, 0, time.UTC))
}

func TestPresentFullRecord(t *testing.T) {
	summary := present.New().Present(snapshotOf(model.Record{
		FirstName:   "Asha",
		LastName:    "Rao",
		Gender:      model.GenderFemale,
		DateOfBirth: "1990-05-21",
		TechStack:   []string{"Go", "Rust"},
		Email:       "a@b.com",
		PhoneNumber: "9876543210",
	}))

	want := "First Name: Asha\n" +
		"Last Name: Rao\n" +
		"Gender: Female\n" +
		"Date Of Birth: 21/May/1990\n" +
		"Tech Stack: Go, Rust\n" +
		"Phone Number: 9876543210\n" +
		"Email: a@b.com\n"
	if diff := cmp.Diff(want, summary.Text()); diff != "" {
		t.Fatalf("summary mismatch (-want +got):\n%s", diff)
	}
	if got, _ := summary.Value(model.FieldDateOfBirth); got != "21/May/1990" {
		t.Fatalf("date = %q", got)
	}
}

func TestPresentPlaceholders(t *testing.T) {
	summary := present.New().Present(snapshotOf(model.Record{}))
	for _, entry := range summary {
		if entry.Value != present.DefaultPlaceholder {
			t.Errorf("%s = %q, want placeholder", entry.Label, entry.Value)
		}
	}
}

func TestPresentInvalidDateFallsBackAndLogs(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	p := present.New(present.WithPlaceholder("n/a"), present.WithLogger(zap.New(core)))

	summary := p.Present(snapshotOf(model.Record{DateOfBirth: "21-05-1990"}))
	if got := summary.Map()["Date Of Birth"]; got != "n/a" {
		t.Fatalf("date = %q, want placeholder", got)
	}
	if logs.FilterMessage("date of birth fallback").Len() != 1 {
		t.Fatalf("expected one fallback diagnostic, got %d entries", logs.Len())
	}
}

func TestPresentCustomDateLayout(t *testing.T) {
	p := present.New(present.WithDateLayout("Jan 2, 2006"))
	got, err := p.FormatDate("1990-05-21")
	if err != nil {
		t.Fatalf("format: %v", err)
	}
	if got != "May 21, 1990" {
		t.Fatalf("formatted = %q", got)
	}
}

func TestDateRoundTrip(t *testing.T) {
	p := present.New()
	start := time.Date(1950, time.January, 1, 0, 0, 0, 0, time.UTC)
	for day := 0; day < 365*70; day += 37 {
		iso := start.AddDate(0, 0, day).Format(model.DateLayout)
		display, err := p.FormatDate(iso)
		if err != nil {
			t.Fatalf("format %s: %v", iso, err)
		}
		back, err := p.ParseDisplayDate(display)
		if err != nil {
			t.Fatalf("parse %s: %v", display, err)
		}
		if back != iso {
			t.Fatalf("round trip %s -> %s -> %s", iso, display, back)
		}
	}
}
