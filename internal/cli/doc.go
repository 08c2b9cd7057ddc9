// Package cli holds the formstyle-cli flag parsing, interactive completion of
// missing options and the generate run.
package cli
