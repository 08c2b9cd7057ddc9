package vanilla

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.tmpl
var embeddedTemplates embed.FS

//go:embed assets/*
var embeddedAssets embed.FS

// StylesheetName is the file name of the bundled stylesheet inside AssetsFS.
const StylesheetName = "formstyle.css"

// TemplatesFS exposes the embedded template bundle.
func TemplatesFS() fs.FS {
	return embeddedTemplates
}

// AssetsFS exposes the embedded stylesheet so callers can serve it.
func AssetsFS() fs.FS {
	sub, err := fs.Sub(embeddedAssets, "assets")
	if err != nil {
		return embeddedAssets
	}
	return sub
}

func defaultStylesheet() string {
	data, err := fs.ReadFile(embeddedAssets, "assets/"+StylesheetName)
	if err != nil {
		return ""
	}
	return string(data)
}
