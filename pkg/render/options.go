package render

// RenderOptions carry per-request data renderers may use without touching the
// summary itself.
type RenderOptions struct {
	// Title overrides the summary heading. Defaults to "Form Data".
	Title string
	// Notice is shown above the summary when set, typically the success toast.
	Notice string
}

// DefaultTitle is the summary heading used when RenderOptions.Title is empty.
const DefaultTitle = "Form Data"

func (o RenderOptions) title() string {
	if o.Title == "" {
		return DefaultTitle
	}
	return o.Title
}
