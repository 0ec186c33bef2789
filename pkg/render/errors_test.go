package render_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-profileform/pkg/model"
	"github.com/goliatone/go-profileform/pkg/render"
	"github.com/goliatone/go-profileform/pkg/validation"
)

func TestMapIssues(t *testing.T) {
	form := model.ProfileForm()
	issues := []validation.Issue{
		{Field: model.FieldFirstName, Message: " Name is incorrect "},
		{Field: model.FieldFirstName, Message: "Name is incorrect"},
		{Field: model.FieldTechStack, Message: "At least one tech stack is required"},
		{Field: "middleName", Message: "unexpected"},
		{Field: "", Message: "top level"},
		{Field: model.FieldEmail, Message: "   "},
	}

	mapped := render.MapIssues(form, issues, "backend down", "top level")

	wantFields := map[string][]string{
		model.FieldFirstName: {"Name is incorrect"},
		model.FieldTechStack: {"At least one tech stack is required"},
	}
	if diff := cmp.Diff(wantFields, mapped.Fields); diff != "" {
		t.Fatalf("field errors mismatch (-want +got):\n%s", diff)
	}
	wantForm := []string{"unexpected", "top level", "backend down"}
	if diff := cmp.Diff(wantForm, mapped.Form); diff != "" {
		t.Fatalf("form errors mismatch (-want +got):\n%s", diff)
	}
	if got := mapped.FieldMessage(model.FieldTechStack); got != "At least one tech stack is required" {
		t.Fatalf("FieldMessage = %q", got)
	}
	if mapped.Empty() {
		t.Fatalf("expected non-empty mapping")
	}
}

func TestMapMessagesEmpty(t *testing.T) {
	mapped := render.MapMessages(model.ProfileForm(), nil)
	if !mapped.Empty() {
		t.Fatalf("expected empty mapping, got %+v", mapped)
	}
}

func TestMergeFormErrors(t *testing.T) {
	got := render.MergeFormErrors([]string{"a", " b "}, "", "a", "c")
	if diff := cmp.Diff([]string{"a", "b", "c"}, got); diff != "" {
		t.Fatalf("merge mismatch (-want +got):\n%s", diff)
	}
}
