// Package declaration loads form declarations from JSON or YAML files and
// compiles them into model.Declaration values the layout engine consumes.
//
// A file either describes one form at the top level or several under a
// `forms` map keyed by form id. Forms are written either as `sections`
// (each with header, footer and items) or as a flat `entries` list with
// inline section/header/footer markers; both compile to the same flat
// declaration.
package declaration
