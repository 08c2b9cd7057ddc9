package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/goliatone/go-formstyle/pkg/layout"
	"github.com/goliatone/go-formstyle/pkg/orchestrator"
	"github.com/goliatone/go-formstyle/pkg/render"
)

const snapshotRendererName = "layout-snapshot"

// snapshotRenderer writes the laid-out tree as JSON instead of rendering it.
type snapshotRenderer struct {
	path string
}

func (r *snapshotRenderer) Name() string {
	return snapshotRendererName
}

func (r *snapshotRenderer) ContentType() string {
	return "application/json"
}

func (r *snapshotRenderer) Render(_ context.Context, tree layout.Tree, _ render.RenderOptions) ([]byte, error) {
	payload, err := json.MarshalIndent(tree, "", "  ")
	if err != nil {
		return nil, err
	}
	if err := os.WriteFile(r.path, payload, 0o644); err != nil {
		return nil, err
	}
	return payload, nil
}

func main() {
	var (
		formsDir   = flag.String("forms", "examples/fixtures/forms", "directory of declaration files")
		formID     = flag.String("id", "settings", "form id to snapshot")
		width      = flag.Float64("width", 640, "container width")
		outputPath = flag.String("output", "examples/fixtures/settings_tree.json", "output path for the serialized tree")
	)
	flag.Parse()

	registry := render.NewRegistry()
	registry.MustRegister(&snapshotRenderer{path: *outputPath})

	orch := orchestrator.New(
		orchestrator.WithDeclarationFS(os.DirFS(*formsDir)),
		orchestrator.WithRegistry(registry),
		orchestrator.WithDefaultRenderer(snapshotRendererName),
	)

	_, err := orch.Generate(context.Background(), orchestrator.Request{
		FormID: *formID,
		Width:  *width,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to snapshot layout: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("✓ Wrote layout snapshot to %s\n", *outputPath)
}
