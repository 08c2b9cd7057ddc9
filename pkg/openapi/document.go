package openapi

import (
	"bytes"
	"errors"
	"regexp"
	"sort"
)

// ExtensionPrefix starts every extension key the builder reads.
const ExtensionPrefix = "x-formstyle"

// ErrNoFormExtensions is returned by loaders configured to require
// x-formstyle extensions when a document carries none.
var ErrNoFormExtensions = errors.New("openapi: document has no x-formstyle extensions")

// Format is the serialization a document was written in.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

var extensionKeyPattern = regexp.MustCompile(`x-formstyle(?:-[a-z]+)*`)

// Document is a loaded OpenAPI payload plus what loading learned about it:
// where it came from, its format, and which form extensions it mentions.
type Document struct {
	source     Source
	raw        []byte
	format     Format
	extensions []string
}

// NewDocument copies raw and inspects it. The source must name a location
// and the payload must hold more than whitespace.
func NewDocument(src Source, raw []byte) (Document, error) {
	if src.IsZero() {
		return Document{}, errors.New("openapi: source is required")
	}
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return Document{}, errors.New("openapi: raw document is empty")
	}

	format := FormatYAML
	if trimmed[0] == '{' {
		format = FormatJSON
	}
	return Document{
		source:     src,
		raw:        append([]byte(nil), raw...),
		format:     format,
		extensions: scanExtensionKeys(raw),
	}, nil
}

// MustNewDocument panics if the document cannot be created.
func MustNewDocument(src Source, raw []byte) Document {
	doc, err := NewDocument(src, raw)
	if err != nil {
		panic(err)
	}
	return doc
}

func (d Document) Source() Source   { return d.source }
func (d Document) Location() string { return d.source.Location }
func (d Document) Format() Format   { return d.format }

// Raw returns a copy of the payload.
func (d Document) Raw() []byte {
	return append([]byte(nil), d.raw...)
}

// FormExtensions lists the distinct x-formstyle keys mentioned anywhere in
// the payload, sorted. The nested "x-formstyle" object counts as one key.
func (d Document) FormExtensions() []string {
	return append([]string(nil), d.extensions...)
}

// HasFormExtensions reports whether the document steers layout at all.
func (d Document) HasFormExtensions() bool {
	return len(d.extensions) > 0
}

func scanExtensionKeys(raw []byte) []string {
	matches := extensionKeyPattern.FindAll(raw, -1)
	if len(matches) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(matches))
	out := make([]string, 0, len(matches))
	for _, match := range matches {
		key := string(match)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, key)
	}
	sort.Strings(out)
	return out
}
