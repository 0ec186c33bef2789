package render

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/goliatone/go-profileform/pkg/present"
)

// TextRenderer emits "Label: Value" lines under a heading.
type TextRenderer struct{}

// Name implements Renderer.
func (TextRenderer) Name() string { return "text" }

// ContentType implements Renderer.
func (TextRenderer) ContentType() string { return "text/plain; charset=utf-8" }

// Render implements Renderer.
func (TextRenderer) Render(ctx context.Context, summary present.Summary, options RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var b strings.Builder
	if options.Notice != "" {
		fmt.Fprintf(&b, "%s\n\n", options.Notice)
	}
	title := options.title()
	fmt.Fprintf(&b, "%s\n%s\n", title, strings.Repeat("-", len(title)))
	b.WriteString(summary.Text())
	return []byte(b.String()), nil
}

// JSONRenderer emits {"title":..., "entries":[...]}.
type JSONRenderer struct{}

// Name implements Renderer.
func (JSONRenderer) Name() string { return "json" }

// ContentType implements Renderer.
func (JSONRenderer) ContentType() string { return "application/json" }

// Render implements Renderer.
func (JSONRenderer) Render(ctx context.Context, summary present.Summary, options RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	entries := summary
	if entries == nil {
		entries = present.Summary{}
	}
	payload := struct {
		Title   string          `json:"title"`
		Notice  string          `json:"notice,omitempty"`
		Entries present.Summary `json:"entries"`
	}{
		Title:   options.title(),
		Notice:  options.Notice,
		Entries: entries,
	}
	out, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("render: encode json: %w", err)
	}
	return out, nil
}
