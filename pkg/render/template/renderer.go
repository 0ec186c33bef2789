package template

import (
	"io"
)

// TemplateRenderer renders named templates or inline template content with a
// data context. Output is returned and, when writers are supplied, copied to
// each of them.
type TemplateRenderer interface {
	Render(name string, data any, out ...io.Writer) (string, error)
	RenderTemplate(name string, data any, out ...io.Writer) (string, error)
	RenderString(templateContent string, data any, out ...io.Writer) (string, error)
	GlobalContext(data any) error
}
