package render_test

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-profileform/pkg/model"
	"github.com/goliatone/go-profileform/pkg/present"
	"github.com/goliatone/go-profileform/pkg/render"
)

func sampleSummary() present.Summary {
	snap := model.NewSnapshot(model.Record{
		FirstName:   "Asha",
		LastName:    "Rao",
		Gender:      model.GenderFemale,
		DateOfBirth: "1990-05-21",
		TechStack:   []string{"Go", "Rust"},
		Email:       "a@b.com",
		PhoneNumber: "9876543210",
	}, time.Now())
	return present.New().Present(snap)
}

func TestDefaultRegistry(t *testing.T) {
	registry := render.NewDefaultRegistry()
	if diff := cmp.Diff([]string{"json", "text"}, registry.List()); diff != "" {
		t.Fatalf("renderers mismatch (-want +got):\n%s", diff)
	}
	if err := registry.Register(render.TextRenderer{}); err == nil {
		t.Fatalf("expected duplicate registration error")
	}
	if _, err := registry.Get("yaml"); err == nil {
		t.Fatalf("expected missing renderer error")
	}
	r, err := registry.Lookup("", "text")
	if err != nil || r.Name() != "text" {
		t.Fatalf("lookup fallback: %v %v", r, err)
	}
	if r, err := registry.Lookup(" JSON ", "text"); err != nil || r.Name() != "json" {
		t.Fatalf("lookup json: %v %v", r, err)
	}
}

func TestTextRenderer(t *testing.T) {
	out, err := render.TextRenderer{}.Render(context.Background(), sampleSummary(), render.RenderOptions{Notice: "Form Submitted"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	text := string(out)
	for _, want := range []string{"Form Submitted\n", "Form Data\n---------\n", "Date Of Birth: 21/May/1990\n", "Tech Stack: Go, Rust\n", "Gender: Female\n"} {
		if !strings.Contains(text, want) {
			t.Errorf("output missing %q:\n%s", want, text)
		}
	}
}

func TestJSONRenderer(t *testing.T) {
	out, err := render.JSONRenderer{}.Render(context.Background(), sampleSummary(), render.RenderOptions{Title: "Summary"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	var payload struct {
		Title   string          `json:"title"`
		Entries []present.Entry `json:"entries"`
	}
	if err := json.Unmarshal(out, &payload); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if payload.Title != "Summary" || len(payload.Entries) != 7 {
		t.Fatalf("unexpected payload: %+v", payload)
	}
	if payload.Entries[4].Value != "Go, Rust" {
		t.Fatalf("tech stack entry = %+v", payload.Entries[4])
	}
}

func TestRenderersRespectCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := (render.TextRenderer{}).Render(ctx, nil, render.RenderOptions{}); err == nil {
		t.Fatalf("expected context error")
	}
}
