package render

import (
	"context"

	"github.com/goliatone/go-formstyle/pkg/layout"
)

// Renderer turns a laid-out form tree into bytes (HTML, terminal text, ...).
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, tree layout.Tree, options RenderOptions) ([]byte, error)
}
