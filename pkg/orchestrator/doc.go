// Package orchestrator wires declaration sources, the layout engine, themes
// and renderers into a single Generate call.
package orchestrator
