package openapi

import (
	"errors"
	"fmt"
	"net/url"
	"path/filepath"
	"strings"
)

// SourceKind says which loader strategy reads a Source.
type SourceKind string

const (
	SourceKindFile SourceKind = "file"
	SourceKindFS   SourceKind = "fs"
	SourceKindURL  SourceKind = "url"
)

// Source names an OpenAPI document and, optionally, the operation whose
// request body becomes the form. A location written as "api.json#createUser"
// carries the operation after the '#'.
type Source struct {
	Kind      SourceKind
	Location  string
	Operation string
}

// IsZero reports whether s names no document.
func (s Source) IsZero() bool {
	return s.Kind == "" && s.Location == ""
}

// String renders s the way SourceFor accepts it.
func (s Source) String() string {
	if s.Operation == "" {
		return s.Location
	}
	return s.Location + "#" + s.Operation
}

// WithOperation returns a copy of s selecting operation.
func (s Source) WithOperation(operation string) Source {
	s.Operation = strings.TrimSpace(operation)
	return s
}

// SourceFromFile returns a file Source. The path is cleaned.
func SourceFromFile(path string) Source {
	location, operation := splitOperation(path)
	return Source{Kind: SourceKindFile, Location: filepath.Clean(location), Operation: operation}
}

// SourceFromFS returns a Source resolved against the loader's fs.FS.
func SourceFromFS(name string) Source {
	location, operation := splitOperation(name)
	return Source{Kind: SourceKindFS, Location: location, Operation: operation}
}

// SourceFromURL validates raw and returns a URL Source. A URL fragment
// selects the operation and is not sent to the server.
func SourceFromURL(raw string) (Source, error) {
	if strings.TrimSpace(raw) == "" {
		return Source{}, errors.New("openapi: empty URL source")
	}
	parsed, err := url.Parse(raw)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return Source{}, fmt.Errorf("openapi: invalid URL %q", raw)
	}
	operation := strings.TrimSpace(parsed.Fragment)
	parsed.Fragment = ""
	parsed.RawFragment = ""
	return Source{Kind: SourceKindURL, Location: parsed.String(), Operation: operation}, nil
}

// SourceFor picks a URL source for http(s) locations and a file source for
// everything else.
func SourceFor(location string) (Source, error) {
	location = strings.TrimSpace(location)
	lower := strings.ToLower(location)
	switch {
	case strings.HasPrefix(lower, "http://"), strings.HasPrefix(lower, "https://"):
		return SourceFromURL(location)
	case location == "", strings.HasPrefix(location, "#"):
		return Source{}, errors.New("openapi: empty source location")
	}
	return SourceFromFile(location), nil
}

func splitOperation(location string) (string, string) {
	idx := strings.LastIndex(location, "#")
	if idx < 0 {
		return location, ""
	}
	return location[:idx], strings.TrimSpace(location[idx+1:])
}
