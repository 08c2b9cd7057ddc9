package openapi

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLint_ReportsMisplacedAndMalformedExtensions(t *testing.T) {
	op := MustNewOperation("createUser", "POST", "/users", Schema{
		Type:       "object",
		Extensions: map[string]any{ExtensionSection: "Account"},
		Properties: map[string]Schema{
			"email": {Type: "string", Extensions: map[string]any{
				ExtensionOrder:   "first",
				ExtensionControl: "slider",
			}},
			"name": {Type: "string", Extensions: map[string]any{
				ExtensionSection:   "Profile",
				"x-formstyle-wide": true,
			}},
		},
	})
	op.Extensions = map[string]any{ExtensionSubmit: 42}

	var got []string
	for _, v := range Lint(op) {
		got = append(got, v.String())
	}
	want := []string{
		"operation createUser -> x-formstyle-submit must be a string (got int)",
		`operation createUser > properties.email -> unknown control "slider"`,
		"operation createUser > properties.email -> x-formstyle-order must be a number (got string)",
		`operation createUser > properties.name -> unsupported extension "x-formstyle-wide" (supported: x-formstyle-control, x-formstyle-footer, x-formstyle-order, x-formstyle-section, x-formstyle-submit)`,
		"operation createUser > requestBody -> x-formstyle-section is not read here",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("violations mismatch (-want +got):\n%s", diff)
	}
}

func TestLint_CleanOperation(t *testing.T) {
	op := MustNewOperation("createUser", "POST", "/users", Schema{
		Type: "object",
		Extensions: map[string]any{
			ExtensionFooter: map[string]any{"Account": "We never share your email."},
		},
		Properties: map[string]Schema{
			"email": {Type: "string", Extensions: map[string]any{
				ExtensionSection: "Account",
				ExtensionOrder:   1.0,
				ExtensionControl: "textarea",
			}},
		},
	})
	op.Extensions = map[string]any{ExtensionSubmit: "Create"}
	if got := Lint(op); len(got) != 0 {
		t.Fatalf("expected no violations, got %v", got)
	}
}

func TestLintDocument_UnknownKeys(t *testing.T) {
	raw := []byte(`{
  "x-formstyle": {"section": "A"},
  "components": {"schemas": {"User": {"x-formstyle-sectoin": "Typo", "x-formstyle-order": 1}}}
}`)
	doc := MustNewDocument(SourceFromFile("users.json"), raw)

	got := LintDocument(doc)
	want := []Violation{{Location: "document users.json", Message: `unknown extension "x-formstyle-sectoin"`}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("violations mismatch (-want +got):\n%s", diff)
	}
}
