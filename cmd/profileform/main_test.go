package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/goliatone/go-profileform/pkg/openapi"
)

func TestSchemaCommandPrintsDocument(t *testing.T) {
	cmd := newRootCmd(&app{})
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"schema", "--server", "http://localhost:8080"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}

	doc, err := openapi.Load(context.Background(), out.Bytes())
	if err != nil {
		t.Fatalf("load printed document: %v", err)
	}
	if doc.Paths.Value(openapi.SubmissionsPath) == nil {
		t.Fatalf("document missing %s", openapi.SubmissionsPath)
	}
	if len(doc.Servers) != 1 || doc.Servers[0].URL != "http://localhost:8080" {
		t.Fatalf("unexpected servers: %+v", doc.Servers)
	}
}

func TestSetupAppliesConfigAndDelayFlag(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profileform.yaml")
	if err := os.WriteFile(path, []byte("placeholder: \"-\"\nsubmit_delay: 2s\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	a := &app{}
	cmd := newRootCmd(a)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"schema", "--config", path, "--delay", "250ms"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if a.cfg.Placeholder != "-" {
		t.Fatalf("placeholder = %q", a.cfg.Placeholder)
	}
	if a.cfg.SubmitDelay != 250*time.Millisecond {
		t.Fatalf("delay flag not applied: %s", a.cfg.SubmitDelay)
	}
	if got := a.presenter().Placeholder(); got != "-" {
		t.Fatalf("presenter placeholder = %q", got)
	}
}

func TestRootRejectsInvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("log_level: loud\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cmd := newRootCmd(&app{})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"schema", "--config", path})

	err := cmd.Execute()
	if err == nil || !strings.Contains(err.Error(), "log_level") {
		t.Fatalf("expected log_level error, got %v", err)
	}
}

func TestRootRejectsNegativeDelay(t *testing.T) {
	cmd := newRootCmd(&app{})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"schema", "--delay=-1s"})

	if err := cmd.Execute(); err == nil {
		t.Fatalf("expected negative delay to be rejected")
	}
}
