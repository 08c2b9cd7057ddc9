// Package theme resolves layout styles from go-theme manifests. Manifest and
// variant tokens are merged (variant wins) and mapped onto layout.Style
// fields by well-known token names such as "section.background" or
// "row.minHeight". Unknown tokens are ignored so one manifest can serve
// several renderers.
package theme
