package formstyle

import (
	"io/fs"

	"github.com/goliatone/go-formstyle/pkg/renderers/vanilla"
)

// EmbeddedTemplates exposes the built-in HTML renderer templates so callers
// can reuse or extend them without importing the renderer package directly.
func EmbeddedTemplates() fs.FS {
	return vanilla.TemplatesFS()
}

// AssetsFS exposes the default stylesheet. Typical mount:
//
//	mux.Handle("/formstyle/",
//	  http.StripPrefix("/formstyle/",
//	    http.FileServerFS(formstyle.AssetsFS()),
//	  ),
//	)
func AssetsFS() fs.FS {
	return vanilla.AssetsFS()
}
