package openapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-profileform/pkg/model"
	"github.com/goliatone/go-profileform/pkg/validation"
)

// Paths served by the JSON API.
const (
	SubmissionsPath = "/api/submissions"
	DocumentPath    = "/openapi.json"
)

const (
	recordSchema  = "ProfileRecord"
	summarySchema = "Summary"
	issuesSchema  = "ValidationIssues"

	// Go regexp accepts the (?i) flag but JSON schema patterns are ECMA
	// flavoured, so the schema spells the case folding out.
	emailSchemaPattern = `^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`
)

// Option tweaks document metadata.
type Option func(*config)

type config struct {
	title   string
	version string
	server  string
}

// WithTitle overrides the info title.
func WithTitle(title string) Option {
	return func(c *config) {
		if title != "" {
			c.title = title
		}
	}
}

// WithVersion overrides the info version.
func WithVersion(version string) Option {
	return func(c *config) {
		if version != "" {
			c.version = version
		}
	}
}

// WithServer adds a server URL entry.
func WithServer(url string) Option {
	return func(c *config) {
		c.server = url
	}
}

// Document wraps the built kin-openapi document together with its JSON form.
type Document struct {
	spec *openapi3.T
	raw  []byte
}

// Spec returns the underlying kin-openapi document.
func (d Document) Spec() *openapi3.T {
	return d.spec
}

// Raw returns a defensive copy of the JSON payload.
func (d Document) Raw() []byte {
	return append([]byte(nil), d.raw...)
}

// Build describes the submission API for form. The result is validated before
// it is returned.
func Build(ctx context.Context, form model.FormModel, options ...Option) (Document, error) {
	cfg := config{title: "Profile Form API", version: "1.0.0"}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	if len(form.Fields()) == 0 {
		return Document{}, errors.New("openapi: form has no fields")
	}

	record := recordSchemaFor(form)
	summary := openapi3.NewObjectSchema().
		WithProperty("title", openapi3.NewStringSchema()).
		WithProperty("notice", openapi3.NewStringSchema()).
		WithProperty("entries", openapi3.NewArraySchema().WithItems(
			openapi3.NewObjectSchema().
				WithProperty("field", openapi3.NewStringSchema()).
				WithProperty("label", openapi3.NewStringSchema()).
				WithProperty("value", openapi3.NewStringSchema()),
		))
	issues := openapi3.NewObjectSchema().
		WithProperty("issues", openapi3.NewArraySchema().WithItems(
			openapi3.NewObjectSchema().
				WithProperty("field", openapi3.NewStringSchema()).
				WithProperty("message", openapi3.NewStringSchema()),
		))
	issues.Required = []string{"issues"}

	responses := openapi3.NewResponses(
		openapi3.WithStatus(201, &openapi3.ResponseRef{Value: openapi3.NewResponse().
			WithDescription("Submission accepted; the formatted summary.").
			WithContent(openapi3.NewContentWithJSONSchemaRef(componentRef(summarySchema, summary)))}),
		openapi3.WithStatus(400, &openapi3.ResponseRef{Value: openapi3.NewResponse().
			WithDescription("Malformed JSON body.")}),
		openapi3.WithStatus(422, &openapi3.ResponseRef{Value: openapi3.NewResponse().
			WithDescription("Validation failed; one issue per invalid field.").
			WithContent(openapi3.NewContentWithJSONSchemaRef(componentRef(issuesSchema, issues)))}),
	)

	submit := &openapi3.Operation{
		OperationID: "submitProfile",
		Summary:     "Validate and submit a profile record",
		Description: "Runs the field rules, waits for the simulated submission and returns the formatted summary.",
		Tags:        []string{"profile"},
		RequestBody: &openapi3.RequestBodyRef{Value: openapi3.NewRequestBody().
			WithRequired(true).
			WithContent(openapi3.NewContentWithJSONSchemaRef(componentRef(recordSchema, record)))},
		Responses: responses,
	}

	spec := &openapi3.T{
		OpenAPI: "3.0.3",
		Info: &openapi3.Info{
			Title:   cfg.title,
			Version: cfg.version,
		},
		Paths: openapi3.NewPaths(openapi3.WithPath(SubmissionsPath, &openapi3.PathItem{Post: submit})),
		Components: &openapi3.Components{
			Schemas: openapi3.Schemas{
				recordSchema:  openapi3.NewSchemaRef("", record),
				summarySchema: openapi3.NewSchemaRef("", summary),
				issuesSchema:  openapi3.NewSchemaRef("", issues),
			},
		},
	}
	if cfg.server != "" {
		spec.Servers = openapi3.Servers{{URL: cfg.server}}
	}

	if err := spec.Validate(ctx, openapi3.DisableExamplesValidation()); err != nil {
		return Document{}, fmt.Errorf("openapi: validate: %w", err)
	}

	raw, err := json.MarshalIndent(spec, "", "  ")
	if err != nil {
		return Document{}, fmt.Errorf("openapi: encode: %w", err)
	}
	return Document{spec: spec, raw: raw}, nil
}

// Load parses and validates a JSON or YAML document, e.g. one produced by
// Build and written to disk.
func Load(ctx context.Context, raw []byte) (*openapi3.T, error) {
	if len(raw) == 0 {
		return nil, errors.New("openapi: document payload is empty")
	}
	loader := &openapi3.Loader{Context: ctx}
	spec, err := loader.LoadFromData(raw)
	if err != nil {
		return nil, fmt.Errorf("openapi: load document: %w", err)
	}
	if err := spec.Validate(ctx, openapi3.DisableExamplesValidation()); err != nil {
		return nil, fmt.Errorf("openapi: validate: %w", err)
	}
	return spec, nil
}

func componentRef(name string, schema *openapi3.Schema) *openapi3.SchemaRef {
	return openapi3.NewSchemaRef("#/components/schemas/"+name, schema)
}

func recordSchemaFor(form model.FormModel) *openapi3.Schema {
	record := openapi3.NewObjectSchema()
	for _, field := range form.Fields() {
		prop := fieldSchema(field)
		prop.Title = field.Label
		record.WithProperty(field.Name, prop)
		record.Required = append(record.Required, field.Name)
	}
	return record
}

func fieldSchema(field model.Field) *openapi3.Schema {
	switch field.Name {
	case model.FieldFirstName, model.FieldLastName:
		return openapi3.NewStringSchema().WithPattern(validation.NamePattern)
	case model.FieldPhoneNumber:
		return openapi3.NewStringSchema().WithPattern(validation.PhonePattern)
	}

	switch field.Type {
	case model.FieldTypeEmail:
		return openapi3.NewStringSchema().WithFormat("email").WithPattern(emailSchemaPattern)
	case model.FieldTypeDate:
		return openapi3.NewStringSchema().WithFormat("date")
	case model.FieldTypeSelect:
		values := make([]any, 0, len(field.Options))
		for _, opt := range field.Options {
			values = append(values, opt.Value)
		}
		return openapi3.NewStringSchema().WithEnum(values...)
	case model.FieldTypeTags:
		return openapi3.NewArraySchema().WithItems(openapi3.NewStringSchema().WithMinLength(1)).WithMinItems(1)
	default:
		return openapi3.NewStringSchema().WithMinLength(1)
	}
}
