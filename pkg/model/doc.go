// Package model defines the form content types shared by the layout engine,
// the declaration loaders and the renderers. A Declaration is the flat,
// declaration-ordered list of entries a caller writes; the layout package
// derives Sections and Rows from it on every pass. Content bodies are opaque
// to the layout code: it only asks whether a body already carries its own
// label through the LabelProvider capability.
package model
