package parser

import (
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	pkgopenapi "github.com/goliatone/go-formstyle/pkg/openapi"
)

const extensionNamespace = "x-formstyle"

// extractExtensions keeps the x-formstyle-* keys. A nested "x-formstyle"
// object is flattened so {"x-formstyle": {"section": "A"}} reads the same as
// "x-formstyle-section": "A".
func extractExtensions(raw map[string]any) map[string]any {
	if len(raw) == 0 {
		return nil
	}

	result := make(map[string]any)
	for key, value := range raw {
		switch {
		case key == extensionNamespace:
			nested, ok := value.(map[string]any)
			if !ok {
				continue
			}
			for nestedKey, nestedValue := range nested {
				flat := extensionNamespace + "-" + strings.TrimPrefix(nestedKey, extensionNamespace+"-")
				if _, exists := result[flat]; !exists {
					result[flat] = nestedValue
				}
			}
		case strings.HasPrefix(key, extensionNamespace+"-"):
			result[key] = value
		}
	}
	if len(result) == 0 {
		return nil
	}
	return result
}

// mergeAllOf folds allOf members into target: properties and required names
// are unioned and extensions from the members fill gaps. Values already on
// target win.
func mergeAllOf(target *pkgopenapi.Schema, refs openapi3.SchemaRefs, path []*openapi3.Schema) {
	if target == nil || len(refs) == 0 {
		return
	}
	for _, ref := range refs {
		if ref == nil || ref.Value == nil {
			continue
		}
		member := convertSchema(ref, path)
		if target.Type == "" {
			target.Type = member.Type
		}
		for name, property := range member.Properties {
			if target.Properties == nil {
				target.Properties = make(map[string]pkgopenapi.Schema, len(member.Properties))
			}
			if _, exists := target.Properties[name]; !exists {
				target.Properties[name] = property
			}
		}
		for _, name := range member.Required {
			if !target.IsRequired(name) {
				target.Required = append(target.Required, name)
			}
		}
		for key, value := range member.Extensions {
			if target.Extensions == nil {
				target.Extensions = make(map[string]any, len(member.Extensions))
			}
			if _, exists := target.Extensions[key]; !exists {
				target.Extensions[key] = value
			}
		}
	}
}
