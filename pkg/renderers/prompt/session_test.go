package prompt

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-profileform/pkg/formstate"
	"github.com/goliatone/go-profileform/pkg/model"
)

type stubDriver struct {
	inputs       []string
	selectIdx    []int
	confirm      []bool
	infoMessages []string
	messages     []string
	inputPos     int
	selectPos    int
	confirmPos   int
}

func (s *stubDriver) Input(_ context.Context, cfg InputConfig) (string, error) {
	if s.inputPos >= len(s.inputs) {
		return "", errors.New("no input scripted")
	}
	val := s.inputs[s.inputPos]
	s.inputPos++
	s.messages = append(s.messages, cfg.Message)
	return val, nil
}

func (s *stubDriver) Confirm(_ context.Context, _ ConfirmConfig) (bool, error) {
	if s.confirmPos >= len(s.confirm) {
		return false, errors.New("no confirm scripted")
	}
	val := s.confirm[s.confirmPos]
	s.confirmPos++
	return val, nil
}

func (s *stubDriver) Select(_ context.Context, _ SelectConfig) (int, error) {
	if s.selectPos >= len(s.selectIdx) {
		return -1, errors.New("no select scripted")
	}
	val := s.selectIdx[s.selectPos]
	s.selectPos++
	return val, nil
}

func (s *stubDriver) Info(_ context.Context, msg string) error {
	s.infoMessages = append(s.infoMessages, msg)
	return nil
}

func fixedNow() time.Time {
	return time.Date(2024, time.March, 10, 12, 0, 0, 0, time.UTC)
}

func instant() formstate.Submitter {
	return formstate.SubmitterFunc(func(context.Context, model.Snapshot) error { return nil })
}

func TestRunCollectsAndSubmits(t *testing.T) {
	driver := &stubDriver{
		inputs:    []string{"Asha", "Rao", "bad", "a@b.com", "9876543210", "2030-01-01", "1990-05-21", "Go", "Rust", ""},
		selectIdx: []int{1},
		confirm:   []bool{false},
	}
	session := New(WithPromptDriver(driver), WithSubmitter(instant()), WithClock(fixedNow))

	out, err := session.Run(context.Background())
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	got := string(out)
	for _, want := range []string{
		"First Name: Asha",
		"Gender: Female",
		"Date Of Birth: 21/May/1990",
		"Tech Stack: Go, Rust",
		"Email: a@b.com",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}

	wantInfo := []string{
		"Invalid email address",
		"Invalid date",
		"Submitting...",
		"Form Submitted: You have successfully filled your form.",
	}
	if diff := cmp.Diff(wantInfo, driver.infoMessages); diff != "" {
		t.Fatalf("info messages mismatch (-want +got):\n%s", diff)
	}
	if driver.messages[4] != "Phone Number (+91)" {
		t.Fatalf("phone prompt = %q", driver.messages[4])
	}
}

func TestRunRequiresTechStackAndRemovesEntries(t *testing.T) {
	driver := &stubDriver{
		inputs:    []string{"Asha", "Rao", "a@b.com", "9876543210", "1990-05-21", "", "Go", "Rust", "", ""},
		selectIdx: []int{0, 0},
		confirm:   []bool{true, false},
	}
	session := New(
		WithPromptDriver(driver),
		WithSubmitter(instant()),
		WithClock(fixedNow),
		WithOutputFormat("json"),
		WithTheme(Theme{ErrorPrefix: "! "}),
	)

	out, err := session.Run(context.Background())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(string(out), `"value":"Rust"`) || strings.Contains(string(out), `"Go, Rust"`) {
		t.Fatalf("json output = %s", out)
	}
	if !strings.Contains(string(out), `"value":"Male"`) {
		t.Fatalf("expected gender Male in %s", out)
	}
	if driver.infoMessages[0] != "! At least one tech stack is required" {
		t.Fatalf("first message = %q", driver.infoMessages[0])
	}
}

func TestRunReportsSubmitFailure(t *testing.T) {
	driver := &stubDriver{
		inputs:    []string{"Asha", "Rao", "a@b.com", "9876543210", "1990-05-21", "Go", ""},
		selectIdx: []int{2},
		confirm:   []bool{false},
	}
	boom := errors.New("backend unavailable")
	session := New(
		WithPromptDriver(driver),
		WithClock(fixedNow),
		WithSubmitter(formstate.SubmitterFunc(func(context.Context, model.Snapshot) error { return boom })),
	)

	_, err := session.Run(context.Background())
	if !errors.Is(err, ErrSubmitFailed) {
		t.Fatalf("expected ErrSubmitFailed, got %v", err)
	}
	if !strings.Contains(err.Error(), "backend unavailable") {
		t.Fatalf("error should carry submitter message: %v", err)
	}
}

func TestRunPropagatesDriverErrors(t *testing.T) {
	driver := &stubDriver{inputs: []string{"Asha"}}
	session := New(WithPromptDriver(driver), WithSubmitter(instant()))
	if _, err := session.Run(context.Background()); err == nil {
		t.Fatalf("expected error when the driver runs out of input")
	}

	if _, err := New(WithPromptDriver(&stubDriver{}), WithOutputFormat("yaml")).Run(context.Background()); err == nil {
		t.Fatalf("expected error for unknown output format")
	}
}
