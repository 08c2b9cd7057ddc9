package loader

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	pkgopenapi "github.com/goliatone/go-formstyle/pkg/openapi"
)

// fetcher reads at most limit+1 bytes from location so the caller can tell
// an oversized document from one that fits exactly.
type fetcher func(ctx context.Context, location string, limit int64) ([]byte, error)

// Loader implements pkgopenapi.Loader with one fetcher per source kind.
// Every document passes the same size cap and extension check whatever its
// origin.
type Loader struct {
	fetchers          map[pkgopenapi.SourceKind]fetcher
	maxSize           int64
	requireExtensions bool
}

var _ pkgopenapi.Loader = (*Loader)(nil)

// New constructs a Loader. File sources are always readable; fs.FS and URL
// sources only when configured.
func New(options pkgopenapi.LoaderOptions) pkgopenapi.Loader {
	l := &Loader{
		fetchers:          map[pkgopenapi.SourceKind]fetcher{pkgopenapi.SourceKindFile: readFile},
		maxSize:           options.MaxDocumentSize,
		requireExtensions: options.RequireFormExtensions,
	}
	if l.maxSize <= 0 {
		l.maxSize = pkgopenapi.DefaultMaxDocumentSize
	}
	if options.FileSystem != nil {
		l.fetchers[pkgopenapi.SourceKindFS] = readFS(options.FileSystem)
	}
	if client := httpClient(options); client != nil {
		l.fetchers[pkgopenapi.SourceKindURL] = fetchHTTP(client)
	}
	return l
}

func httpClient(options pkgopenapi.LoaderOptions) *http.Client {
	switch {
	case options.HTTPClient != nil:
		clone := *options.HTTPClient
		if options.RequestTimeout > 0 && clone.Timeout == 0 {
			clone.Timeout = options.RequestTimeout
		}
		return &clone
	case options.AllowHTTPFallback:
		return &http.Client{Timeout: options.RequestTimeout}
	}
	return nil
}

// Load reads the document src names. The operation src selects is kept on
// the document's source for the caller.
func (l *Loader) Load(ctx context.Context, src pkgopenapi.Source) (pkgopenapi.Document, error) {
	if src.IsZero() {
		return pkgopenapi.Document{}, errors.New("openapi loader: source is required")
	}
	if src.Location == "" {
		return pkgopenapi.Document{}, fmt.Errorf("openapi loader: %s source has no location", src.Kind)
	}
	if err := ctx.Err(); err != nil {
		return pkgopenapi.Document{}, err
	}

	fetch, ok := l.fetchers[src.Kind]
	if !ok {
		return pkgopenapi.Document{}, unavailable(src.Kind)
	}
	data, err := fetch(ctx, src.Location, l.maxSize)
	if err != nil {
		return pkgopenapi.Document{}, err
	}
	if int64(len(data)) > l.maxSize {
		return pkgopenapi.Document{}, fmt.Errorf("openapi loader: %s exceeds %d bytes", src.Location, l.maxSize)
	}

	doc, err := pkgopenapi.NewDocument(src, data)
	if err != nil {
		return pkgopenapi.Document{}, fmt.Errorf("openapi loader: %s: %w", src.Location, err)
	}
	if l.requireExtensions && !doc.HasFormExtensions() {
		return pkgopenapi.Document{}, fmt.Errorf("openapi loader: %s: %w", src.Location, pkgopenapi.ErrNoFormExtensions)
	}
	return doc, nil
}

func unavailable(kind pkgopenapi.SourceKind) error {
	switch kind {
	case pkgopenapi.SourceKindFS:
		return errors.New("openapi loader: filesystem is not configured")
	case pkgopenapi.SourceKindURL:
		return errors.New("openapi loader: http support disabled")
	}
	return fmt.Errorf("openapi loader: unsupported source kind %q", kind)
}
