package openapi

import (
	"fmt"
	"sort"
	"strings"

	"github.com/goliatone/go-formstyle/pkg/model"
)

// Violation is a misplaced or malformed x-formstyle extension.
type Violation struct {
	Location string
	Message  string
}

func (v Violation) String() string {
	return v.Location + " -> " + v.Message
}

type extensionScope int

const (
	scopeOperation extensionScope = iota
	scopeBody
	scopeProperty
)

var extensionScopes = map[string]extensionScope{
	ExtensionSubmit:  scopeOperation,
	ExtensionFooter:  scopeBody,
	ExtensionSection: scopeProperty,
	ExtensionOrder:   scopeProperty,
	ExtensionControl: scopeProperty,
}

// ExtensionKeys returns the supported extension keys, sorted.
func ExtensionKeys() []string {
	keys := make([]string, 0, len(extensionScopes))
	for key := range extensionScopes {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Lint reports extensions the builder would ignore or reject on op. The
// result is sorted by location.
func Lint(op Operation) []Violation {
	base := "operation " + op.ID
	var out []Violation
	out = append(out, lintExtensions(base, scopeOperation, op.Extensions)...)
	out = append(out, lintExtensions(base+" > requestBody", scopeBody, op.RequestBody.Extensions)...)

	for _, name := range op.RequestBody.PropertyNames() {
		location := base + " > properties." + name
		out = append(out, lintExtensions(location, scopeProperty, op.RequestBody.Properties[name].Extensions)...)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Location == out[j].Location {
			return out[i].Message < out[j].Message
		}
		return out[i].Location < out[j].Location
	})
	return out
}

// LintDocument reports x-formstyle keys mentioned anywhere in doc that no
// builder reads, including ones on schemas the parser never visits.
func LintDocument(doc Document) []Violation {
	var out []Violation
	for _, key := range doc.FormExtensions() {
		if key == ExtensionPrefix {
			continue
		}
		if _, ok := extensionScopes[key]; !ok {
			out = append(out, Violation{
				Location: "document " + doc.Location(),
				Message:  fmt.Sprintf("unknown extension %q", key),
			})
		}
	}
	return out
}

func lintExtensions(location string, scope extensionScope, extensions map[string]any) []Violation {
	keys := make([]string, 0, len(extensions))
	for key := range extensions {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var out []Violation
	for _, key := range keys {
		want, known := extensionScopes[key]
		switch {
		case !known:
			out = append(out, Violation{location, fmt.Sprintf("unsupported extension %q (supported: %s)", key, strings.Join(ExtensionKeys(), ", "))})
			continue
		case want != scope:
			out = append(out, Violation{location, fmt.Sprintf("%s is not read here", key)})
			continue
		}
		if message := checkExtensionValue(key, extensions[key]); message != "" {
			out = append(out, Violation{location, message})
		}
	}
	return out
}

func checkExtensionValue(key string, value any) string {
	switch key {
	case ExtensionOrder:
		if _, ok := numberExtension(map[string]any{key: value}, key); !ok {
			return fmt.Sprintf("%s must be a number (got %T)", key, value)
		}
	case ExtensionControl:
		raw, ok := value.(string)
		if !ok {
			return fmt.Sprintf("%s must be a string (got %T)", key, value)
		}
		if _, err := model.ParseControlKind(raw); err != nil {
			return err.Error()
		}
	case ExtensionFooter:
		switch typed := value.(type) {
		case string:
		case map[string]any:
			for section, text := range typed {
				if _, ok := text.(string); !ok {
					return fmt.Sprintf("%s footer for %q must be a string (got %T)", key, section, text)
				}
			}
		default:
			return fmt.Sprintf("%s must be a string or a map of section names to strings (got %T)", key, value)
		}
	default:
		if _, ok := value.(string); !ok {
			return fmt.Sprintf("%s must be a string (got %T)", key, value)
		}
	}
	return ""
}
