package parser

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	pkgopenapi "github.com/goliatone/go-formstyle/pkg/openapi"
)

// Parser implements pkgopenapi.Parser using kin-openapi.
type Parser struct {
	options pkgopenapi.ParserOptions
}

// Ensure the implementation satisfies the public interface.
var _ pkgopenapi.Parser = (*Parser)(nil)

// New constructs a Parser with the given options.
func New(options pkgopenapi.ParserOptions) pkgopenapi.Parser {
	return &Parser{options: options}
}

// Operations converts a Document into a map keyed by operationId.
// Operations without an id are keyed "<method>:<path>".
func (p *Parser) Operations(ctx context.Context, doc pkgopenapi.Document) (map[string]pkgopenapi.Operation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	raw := doc.Raw()
	if len(raw) == 0 {
		return nil, errors.New("openapi parser: document payload is empty")
	}

	loader := &openapi3.Loader{
		Context:               ctx,
		IsExternalRefsAllowed: p.options.ResolveReferences,
	}

	spec, err := loader.LoadFromData(raw)
	if err != nil {
		return nil, fmt.Errorf("openapi parser: load document: %w", err)
	}

	if spec.Paths == nil || spec.Paths.Len() == 0 {
		if !p.options.AllowPartialDocuments {
			return nil, errors.New("openapi parser: document does not contain any paths")
		}
	}

	if p.options.ResolveReferences {
		if err := spec.Validate(ctx, openapi3.DisableExamplesValidation()); err != nil {
			return nil, fmt.Errorf("openapi parser: validate: %w", err)
		}
	}

	operations := make(map[string]pkgopenapi.Operation)
	if spec.Paths != nil {
		for path, item := range spec.Paths.Map() {
			if item == nil {
				continue
			}
			p.collectOperation(ctx, operations, "GET", path, item.Get)
			p.collectOperation(ctx, operations, "PUT", path, item.Put)
			p.collectOperation(ctx, operations, "POST", path, item.Post)
			p.collectOperation(ctx, operations, "DELETE", path, item.Delete)
			p.collectOperation(ctx, operations, "PATCH", path, item.Patch)
		}
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if len(operations) == 0 && !p.options.AllowPartialDocuments {
		return nil, errors.New("openapi parser: no operations extracted")
	}

	return operations, nil
}

func (p *Parser) collectOperation(ctx context.Context, target map[string]pkgopenapi.Operation, method, path string, operation *openapi3.Operation) {
	if ctx.Err() != nil || operation == nil {
		return
	}
	opID := operation.OperationID
	if opID == "" {
		opID = strings.ToLower(method) + ":" + path
	}

	op, err := pkgopenapi.NewOperation(opID, method, path, extractRequestSchema(operation.RequestBody))
	if err != nil {
		return
	}
	op.Summary = operation.Summary
	op.Description = operation.Description
	op.Extensions = extractExtensions(operation.Extensions)
	target[opID] = op
}

var formMediaTypes = []string{"application/json", "application/x-www-form-urlencoded", "multipart/form-data"}

func extractRequestSchema(requestBody *openapi3.RequestBodyRef) pkgopenapi.Schema {
	if requestBody == nil {
		return pkgopenapi.Schema{}
	}
	if requestBody.Value == nil {
		return pkgopenapi.Schema{Ref: requestBody.Ref}
	}
	content := requestBody.Value.Content
	for _, mediaType := range formMediaTypes {
		if mt, ok := content[mediaType]; ok && mt != nil {
			return convertSchema(mt.Schema, nil)
		}
	}
	for _, mt := range content {
		if mt != nil {
			return convertSchema(mt.Schema, nil)
		}
	}
	return pkgopenapi.Schema{}
}

// convertSchema copies a kin-openapi schema tree. A schema already on the
// current path keeps only its $ref so recursive components terminate.
func convertSchema(ref *openapi3.SchemaRef, path []*openapi3.Schema) pkgopenapi.Schema {
	if ref == nil {
		return pkgopenapi.Schema{}
	}
	if ref.Value == nil {
		return pkgopenapi.Schema{Ref: ref.Ref}
	}
	src := ref.Value
	for _, seen := range path {
		if seen == src {
			return pkgopenapi.Schema{Ref: ref.Ref, Type: firstSchemaType(src.Type)}
		}
	}
	path = append(path, src)

	schema := pkgopenapi.Schema{
		Ref:         ref.Ref,
		Type:        firstSchemaType(src.Type),
		Format:      src.Format,
		Title:       src.Title,
		Description: src.Description,
		Default:     src.Default,
	}
	if len(src.Required) > 0 {
		schema.Required = append([]string(nil), src.Required...)
	}
	if len(src.Enum) > 0 {
		schema.Enum = append([]any(nil), src.Enum...)
	}
	if len(src.Properties) > 0 {
		schema.Properties = make(map[string]pkgopenapi.Schema, len(src.Properties))
		for name, property := range src.Properties {
			schema.Properties[name] = convertSchema(property, path)
		}
	}
	if src.Items != nil {
		items := convertSchema(src.Items, path)
		schema.Items = &items
	}
	schema.Extensions = extractExtensions(src.Extensions)
	mergeAllOf(&schema, src.AllOf, path)
	return schema
}

func firstSchemaType(types *openapi3.Types) string {
	if types == nil {
		return ""
	}
	values := types.Slice()
	switch len(values) {
	case 0:
		return ""
	case 1:
		return values[0]
	default:
		return strings.Join(values, ",")
	}
}
