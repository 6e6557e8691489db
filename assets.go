package orderform

import (
	"io/fs"

	"github.com/goliatone/go-orderform/pkg/renderers/html"
)

// AssetsFS exposes the stylesheet and live revalidation script so Go
// applications can serve them next to a custom template.
//
// Typical mount:
//
//	mux.Handle("/assets/",
//	  http.StripPrefix("/assets/",
//	    http.FileServerFS(orderform.AssetsFS()),
//	  ),
//	)
func AssetsFS() fs.FS {
	return html.AssetsFS()
}

// EmbeddedTemplates exposes the built-in form template so callers can copy
// or extend it and pass the result back through html.WithTemplatesFS.
func EmbeddedTemplates() fs.FS {
	return html.TemplatesFS()
}
