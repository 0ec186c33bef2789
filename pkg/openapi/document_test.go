package openapi_test

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-profileform/pkg/model"
	"github.com/goliatone/go-profileform/pkg/openapi"
)

func TestBuildDescribesSubmission(t *testing.T) {
	doc, err := openapi.Build(context.Background(), model.ProfileForm(), openapi.WithServer("http://localhost:8080"))
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	item := doc.Spec().Paths.Value(openapi.SubmissionsPath)
	if item == nil || item.Post == nil {
		t.Fatalf("expected POST %s", openapi.SubmissionsPath)
	}
	if item.Post.OperationID != "submitProfile" {
		t.Fatalf("operation id = %q", item.Post.OperationID)
	}
	for _, status := range []string{"201", "400", "422"} {
		if item.Post.Responses.Value(status) == nil {
			t.Errorf("missing %s response", status)
		}
	}

	record := doc.Spec().Components.Schemas["ProfileRecord"].Value
	want := []string{
		model.FieldFirstName,
		model.FieldLastName,
		model.FieldEmail,
		model.FieldPhoneNumber,
		model.FieldGender,
		model.FieldDateOfBirth,
		model.FieldTechStack,
	}
	if diff := cmp.Diff(want, record.Required); diff != "" {
		t.Fatalf("required mismatch (-want +got):\n%s", diff)
	}
	if got := record.Properties[model.FieldDateOfBirth].Value.Format; got != "date" {
		t.Fatalf("dateOfBirth format = %q", got)
	}
	if got := record.Properties[model.FieldGender].Value.Enum; len(got) != len(model.Genders()) {
		t.Fatalf("gender enum = %v", got)
	}
}

func TestBuildOutputReloads(t *testing.T) {
	ctx := context.Background()
	doc, err := openapi.Build(ctx, model.ProfileForm(), openapi.WithTitle("Profiles"), openapi.WithVersion("2.0.0"))
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	spec, err := openapi.Load(ctx, doc.Raw())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if spec.Info.Title != "Profiles" || spec.Info.Version != "2.0.0" {
		t.Fatalf("info = %+v", spec.Info)
	}
	if spec.Paths.Value(openapi.SubmissionsPath) == nil {
		t.Fatalf("reloaded document lost %s", openapi.SubmissionsPath)
	}
}

func TestBuildRejectsEmptyForm(t *testing.T) {
	if _, err := openapi.Build(context.Background(), model.FormModel{}); err == nil {
		t.Fatalf("expected error for empty form")
	}
}

func TestLoadRejectsEmptyPayload(t *testing.T) {
	if _, err := openapi.Load(context.Background(), nil); err == nil {
		t.Fatalf("expected error for empty payload")
	}
}
