package openapi

import "context"

// Parser normalises OpenAPI documents into operation wrappers.
type Parser interface {
	Operations(ctx context.Context, doc Document) (map[string]Operation, error)
}

// ParserOptions exposes parser toggles.
type ParserOptions struct {
	// ResolveReferences validates the document and allows external $refs.
	ResolveReferences bool

	// AllowPartialDocuments accepts documents without paths or operations.
	AllowPartialDocuments bool
}

// ParserOption mutates ParserOptions during construction.
type ParserOption func(*ParserOptions)

// WithReferenceResolution toggles reference resolution.
func WithReferenceResolution(enabled bool) ParserOption {
	return func(opts *ParserOptions) {
		opts.ResolveReferences = enabled
	}
}

// WithPartialDocuments toggles support for documents without operations.
func WithPartialDocuments(enabled bool) ParserOption {
	return func(opts *ParserOptions) {
		opts.AllowPartialDocuments = enabled
	}
}

// NewParserOptions applies ParserOption functions and returns the resulting
// configuration.
func NewParserOptions(options ...ParserOption) ParserOptions {
	cfg := ParserOptions{
		ResolveReferences:     true,
		AllowPartialDocuments: false,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	return cfg
}
