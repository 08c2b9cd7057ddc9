package main

import (
	"context"
	"fmt"
	"os"

	"github.com/goliatone/go-formstyle"
	pkgopenapi "github.com/goliatone/go-formstyle/pkg/openapi"
)

func main() {
	ctx := context.Background()

	const (
		schemaPath   = "examples/fixtures/signup.json"
		operationID  = "createUser"
		rendererName = "html"
		outputPath   = "examples/fixtures/signup-form.html"
	)

	source := pkgopenapi.SourceFromFile(schemaPath)
	html, err := formstyle.GenerateFromOpenAPI(ctx, source, operationID, rendererName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to generate form: %v\n", err)
		os.Exit(1)
	}

	if err := os.WriteFile(outputPath, html, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to write output: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("✓ Generated signup form HTML (%d bytes) → %s\n", len(html), outputPath)
}
