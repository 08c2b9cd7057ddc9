// Package layout computes the sectioned, label-aligned structure of a form.
//
// A layout pass takes a model.Declaration and the current container width and
// produces a Tree:
//
//	entries -> Partition -> sections
//	width   -> ResolveLabelWidth -> label column width (once per pass)
//	section -> Normalize -> rows
//	rows    -> Decorate -> SectionNode (header, bordered panel, footer)
//
// Every step is a pure function of its inputs. Nothing is cached between
// passes, so an Engine can be shared between goroutines.
package layout
