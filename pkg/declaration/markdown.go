package declaration

import (
	"strings"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
)

// markdownHTML converts an item's markdown body to an HTML fragment. A single
// paragraph is unwrapped so short help text renders inline with its label.
func markdownHTML(source string) string {
	p := parser.NewWithExtensions(parser.CommonExtensions | parser.AutoHeadingIDs)
	renderer := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags | html.HrefTargetBlank})
	out := strings.TrimSpace(string(markdown.ToHTML([]byte(source), p, renderer)))

	if strings.HasPrefix(out, "<p>") && strings.HasSuffix(out, "</p>") &&
		strings.Count(out, "<p>") == 1 {
		out = strings.TrimSuffix(strings.TrimPrefix(out, "<p>"), "</p>")
	}
	return out
}
