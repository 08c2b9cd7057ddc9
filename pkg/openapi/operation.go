package openapi

import (
	"errors"
	"sort"
	"strings"
)

// Operation is an OpenAPI operation reduced to what a form needs: its
// identity, the request body schema and the x-formstyle extensions found on
// the operation.
type Operation struct {
	ID          string
	Method      string
	Path        string
	Summary     string
	Description string
	RequestBody Schema
	Extensions  map[string]any
}

// NewOperation checks that the operation can be addressed. The method is
// upper-cased.
func NewOperation(id, method, path string, request Schema) (Operation, error) {
	switch {
	case strings.TrimSpace(id) == "":
		return Operation{}, errors.New("openapi: operation id is required")
	case strings.TrimSpace(method) == "":
		return Operation{}, errors.New("openapi: operation method is required")
	case strings.TrimSpace(path) == "":
		return Operation{}, errors.New("openapi: operation path is required")
	}
	return Operation{
		ID:          id,
		Method:      strings.ToUpper(method),
		Path:        path,
		RequestBody: request,
	}, nil
}

// MustNewOperation panics when NewOperation fails.
func MustNewOperation(id, method, path string, request Schema) Operation {
	op, err := NewOperation(id, method, path, request)
	if err != nil {
		panic(err)
	}
	return op
}

// Schema is a request body or one of its properties. Extensions only holds
// x-formstyle keys.
type Schema struct {
	Ref         string
	Type        string
	Format      string
	Title       string
	Description string
	Required    []string
	Properties  map[string]Schema
	Items       *Schema
	Enum        []any
	Default     any
	Extensions  map[string]any
}

// IsRequired reports whether name is listed as a required property.
func (s Schema) IsRequired(name string) bool {
	for _, required := range s.Required {
		if required == name {
			return true
		}
	}
	return false
}

// PropertyNames returns the property names, sorted.
func (s Schema) PropertyNames() []string {
	names := make([]string, 0, len(s.Properties))
	for name := range s.Properties {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// String is a compact description for error messages, for example
// "object{email,name}" or "array of $ref #/components/schemas/Tag".
func (s Schema) String() string {
	var b strings.Builder
	switch {
	case s.Type != "":
		b.WriteString(s.Type)
	case s.Ref != "":
		b.WriteString("$ref " + s.Ref)
	default:
		b.WriteString("untyped")
	}
	if s.Items != nil {
		b.WriteString(" of " + s.Items.String())
	}
	if len(s.Properties) > 0 {
		b.WriteString("{" + strings.Join(s.PropertyNames(), ",") + "}")
	}
	return b.String()
}
