package parser

import (
	"context"
	"testing"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/google/go-cmp/cmp"

	pkgopenapi "github.com/goliatone/go-formstyle/pkg/openapi"
)

const usersDocument = `{
  "openapi": "3.0.3",
  "info": { "title": "Users", "version": "1.0.0" },
  "paths": {
    "/users": {
      "post": {
        "operationId": "createUser",
        "summary": "Create user",
        "x-formstyle-submit": "Create",
        "requestBody": {
          "content": {
            "application/json": {
              "schema": { "$ref": "#/components/schemas/User" }
            }
          }
        },
        "responses": { "201": { "description": "created" } }
      },
      "get": {
        "responses": { "200": { "description": "ok" } }
      }
    }
  },
  "components": {
    "schemas": {
      "Base": {
        "type": "object",
        "required": ["email"],
        "properties": {
          "email": { "type": "string", "format": "email", "x-formstyle-order": 1 }
        }
      },
      "User": {
        "allOf": [ { "$ref": "#/components/schemas/Base" } ],
        "type": "object",
        "x-formstyle-footer": { "Preferences": "Change these any time." },
        "properties": {
          "newsletter": {
            "type": "boolean",
            "x-formstyle": { "section": "Preferences" },
            "x-internal": true
          }
        }
      }
    }
  }
}`

func TestParser_Operations(t *testing.T) {
	doc := pkgopenapi.MustNewDocument(pkgopenapi.SourceFromFile("users.json"), []byte(usersDocument))

	ops, err := New(pkgopenapi.NewParserOptions()).Operations(context.Background(), doc)
	if err != nil {
		t.Fatalf("operations: %v", err)
	}
	if _, ok := ops["get:/users"]; !ok {
		t.Fatalf("expected operation without id to be keyed by method and path, got %v", keys(ops))
	}

	op, ok := ops["createUser"]
	if !ok {
		t.Fatalf("createUser not found")
	}
	if op.Method != "POST" || op.Path != "/users" || op.Summary != "Create user" {
		t.Fatalf("unexpected operation metadata: %+v", op)
	}
	if diff := cmp.Diff(map[string]any{"x-formstyle-submit": "Create"}, op.Extensions); diff != "" {
		t.Fatalf("operation extensions mismatch (-want +got):\n%s", diff)
	}

	body := op.RequestBody
	if body.Ref != "#/components/schemas/User" {
		t.Fatalf("expected body ref, got %q", body.Ref)
	}
	if !body.IsRequired("email") {
		t.Fatalf("expected allOf required names to merge, got %v", body.Required)
	}
	email, ok := body.Properties["email"]
	if !ok {
		t.Fatalf("expected allOf properties to merge, got %v", body.Properties)
	}
	if email.Extensions["x-formstyle-order"] != float64(1) {
		t.Fatalf("expected order extension, got %v", email.Extensions)
	}
	newsletter := body.Properties["newsletter"]
	if diff := cmp.Diff(map[string]any{"x-formstyle-section": "Preferences"}, newsletter.Extensions); diff != "" {
		t.Fatalf("property extensions mismatch (-want +got):\n%s", diff)
	}
	if _, ok := body.Extensions["x-formstyle-footer"]; !ok {
		t.Fatalf("expected footer extension on body schema")
	}
}

func TestParser_BuildsDeclaration(t *testing.T) {
	doc := pkgopenapi.MustNewDocument(pkgopenapi.SourceFromFile("users.json"), []byte(usersDocument))
	ops, err := New(pkgopenapi.NewParserOptions()).Operations(context.Background(), doc)
	if err != nil {
		t.Fatalf("operations: %v", err)
	}

	decl, err := pkgopenapi.NewBuilder().Build(ops["createUser"])
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	var got []string
	for _, entry := range decl.Entries {
		if entry.Item != nil {
			got = append(got, entry.Item.ID)
			continue
		}
		got = append(got, entry.Text)
	}
	want := []string{"email", "preferences", "Preferences", "newsletter", "submit", "Change these any time."}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("declaration mismatch (-want +got):\n%s", diff)
	}
}

func TestParser_RejectsDocumentsWithoutPaths(t *testing.T) {
	const empty = `{"openapi": "3.0.3", "info": {"title": "x", "version": "1"}, "paths": {}}`
	doc := pkgopenapi.MustNewDocument(pkgopenapi.SourceFromFile("empty.json"), []byte(empty))

	if _, err := New(pkgopenapi.NewParserOptions()).Operations(context.Background(), doc); err == nil {
		t.Fatalf("expected error for document without paths")
	}

	partial := New(pkgopenapi.NewParserOptions(pkgopenapi.WithPartialDocuments(true)))
	ops, err := partial.Operations(context.Background(), doc)
	if err != nil {
		t.Fatalf("partial operations: %v", err)
	}
	if len(ops) != 0 {
		t.Fatalf("expected no operations, got %d", len(ops))
	}
}

func TestParser_CancelledContext(t *testing.T) {
	doc := pkgopenapi.MustNewDocument(pkgopenapi.SourceFromFile("users.json"), []byte(usersDocument))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := New(pkgopenapi.NewParserOptions()).Operations(ctx, doc); err == nil {
		t.Fatalf("expected cancellation error")
	}
}

func TestConvertSchemaHandlesRecursiveReferences(t *testing.T) {
	const document = `{
  "openapi": "3.0.0",
  "info": { "title": "Cycle", "version": "1.0.0" },
  "paths": {},
  "components": {
    "schemas": {
      "PublishingHouse": {
        "type": "object",
        "properties": {
          "headquarters": { "$ref": "#/components/schemas/Headquarters" }
        }
      },
      "Headquarters": {
        "type": "object",
        "properties": {
          "publisher": { "$ref": "#/components/schemas/PublishingHouse" }
        }
      }
    }
  }
}`

	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromData([]byte(document))
	if err != nil {
		t.Fatalf("load schema: %v", err)
	}

	converted := convertSchema(doc.Components.Schemas["PublishingHouse"], nil)
	headquarters, ok := converted.Properties["headquarters"]
	if !ok {
		t.Fatalf("expected headquarters property on PublishingHouse schema")
	}
	if headquarters.Ref == "" {
		t.Fatalf("expected headquarters property to retain its reference")
	}
	publisher, ok := headquarters.Properties["publisher"]
	if !ok {
		t.Fatalf("expected publisher property on Headquarters schema")
	}
	if len(publisher.Properties) != 0 {
		t.Fatalf("expected recursion to stop at the repeated schema, got %v", publisher.Properties)
	}
	if publisher.Ref != "#/components/schemas/PublishingHouse" {
		t.Fatalf("expected cycle to keep its ref, got %q", publisher.Ref)
	}
}

func keys(ops map[string]pkgopenapi.Operation) []string {
	out := make([]string, 0, len(ops))
	for key := range ops {
		out = append(out, key)
	}
	return out
}
