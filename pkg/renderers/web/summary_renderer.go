package web

import (
	"context"
	"fmt"

	"github.com/goliatone/go-profileform/pkg/present"
	"github.com/goliatone/go-profileform/pkg/render"
	rendertemplate "github.com/goliatone/go-profileform/pkg/render/template"
)

// SummaryRenderer renders a summary as an HTML fragment through the summary
// template. It is registered as "html".
type SummaryRenderer struct {
	templates rendertemplate.TemplateRenderer
	template  string
}

var _ render.Renderer = (*SummaryRenderer)(nil)

// NewSummaryRenderer renders through templates using the named template.
func NewSummaryRenderer(templates rendertemplate.TemplateRenderer, template string) *SummaryRenderer {
	if template == "" {
		template = summaryTemplate
	}
	return &SummaryRenderer{templates: templates, template: template}
}

func (r *SummaryRenderer) Name() string {
	return "html"
}

func (r *SummaryRenderer) ContentType() string {
	return "text/html; charset=utf-8"
}

func (r *SummaryRenderer) Render(ctx context.Context, summary present.Summary, options render.RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r.templates == nil {
		return nil, fmt.Errorf("web: template renderer is nil")
	}
	result, err := r.templates.RenderTemplate(r.template, summaryContext(summary, options))
	if err != nil {
		return nil, fmt.Errorf("web: render summary: %w", err)
	}
	return []byte(result), nil
}

func summaryContext(summary present.Summary, options render.RenderOptions) map[string]any {
	title := options.Title
	if title == "" {
		title = render.DefaultTitle
	}
	if summary == nil {
		summary = present.Summary{}
	}
	return map[string]any{
		"summaryTitle":  title,
		"summaryNotice": options.Notice,
		"summary":       summary,
	}
}
