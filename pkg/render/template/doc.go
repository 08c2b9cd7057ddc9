// Package template defines the template seam renderers depend on. The pongo
// subpackage provides the default implementation.
package template
