package openapi

import (
	"context"
	"io/fs"
	"net/http"
	"time"
)

// DefaultMaxDocumentSize caps any document a loader reads, whatever its
// source kind.
const DefaultMaxDocumentSize int64 = 16 << 20

// Loader reads the document a Source names. The implementation lives in
// internal/openapi/loader and is built with formstyle.NewLoader.
type Loader interface {
	Load(ctx context.Context, src Source) (Document, error)
}

// LoaderOptions is the resolved loader configuration. Files are always
// readable; fs.FS and URL sources need FileSystem and an HTTP client.
type LoaderOptions struct {
	FileSystem fs.FS

	// HTTPClient serves URL sources. AllowHTTPFallback creates a default
	// client bounded by RequestTimeout when none is given.
	HTTPClient        *http.Client
	AllowHTTPFallback bool
	RequestTimeout    time.Duration

	// MaxDocumentSize bounds every read. Zero means DefaultMaxDocumentSize.
	MaxDocumentSize int64

	// RequireFormExtensions rejects documents without any x-formstyle key
	// with ErrNoFormExtensions, so a form is never laid out from a bare API
	// description by mistake.
	RequireFormExtensions bool
}

// LoaderOption mutates LoaderOptions.
type LoaderOption func(*LoaderOptions)

// WithFileSystem resolves SourceKindFS locations against files.
func WithFileSystem(files fs.FS) LoaderOption {
	return func(opts *LoaderOptions) {
		opts.FileSystem = files
	}
}

// WithHTTPClient enables URL sources through client.
func WithHTTPClient(client *http.Client) LoaderOption {
	return func(opts *LoaderOptions) {
		opts.HTTPClient = client
	}
}

// WithHTTPFallback enables URL sources with a default client.
func WithHTTPFallback(timeout time.Duration) LoaderOption {
	return func(opts *LoaderOptions) {
		opts.AllowHTTPFallback = true
		opts.RequestTimeout = timeout
	}
}

// WithMaxDocumentSize overrides DefaultMaxDocumentSize. Values <= 0 keep the
// default.
func WithMaxDocumentSize(limit int64) LoaderOption {
	return func(opts *LoaderOptions) {
		if limit > 0 {
			opts.MaxDocumentSize = limit
		}
	}
}

// WithRequiredFormExtensions makes the loader reject documents that carry no
// x-formstyle extension.
func WithRequiredFormExtensions() LoaderOption {
	return func(opts *LoaderOptions) {
		opts.RequireFormExtensions = true
	}
}

// NewLoaderOptions applies options over the defaults. Nil options are
// skipped.
func NewLoaderOptions(options ...LoaderOption) LoaderOptions {
	cfg := LoaderOptions{MaxDocumentSize: DefaultMaxDocumentSize}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	return cfg
}
