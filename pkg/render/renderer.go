package render

import (
	"context"

	"github.com/goliatone/go-profileform/pkg/present"
)

// Renderer converts a presented summary into bytes (plain text, JSON, HTML).
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, summary present.Summary, options RenderOptions) ([]byte, error)
}
