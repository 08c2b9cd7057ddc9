package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/goliatone/go-formstyle"
	pkgopenapi "github.com/goliatone/go-formstyle/pkg/openapi"
)

type violation struct {
	file string
	pkgopenapi.Violation
}

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [paths...]\n", filepath.Base(os.Args[0]))
		fmt.Fprintf(flag.CommandLine.Output(), "\nLint OpenAPI documents for unsupported formstyle extensions.\n")
	}
	flag.Parse()

	paths := flag.Args()
	if len(paths) == 0 {
		paths = []string{"examples/fixtures/signup.json"}
	}

	ctx := context.Background()
	parser := formstyle.NewParser(
		pkgopenapi.WithPartialDocuments(true),
		pkgopenapi.WithReferenceResolution(true),
	)

	loader := formstyle.NewLoader()
	var violations []violation
	for _, path := range paths {
		linted, err := lintFile(ctx, loader, parser, path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "lint %s: %v\n", path, err)
			os.Exit(1)
		}
		violations = append(violations, linted...)
	}

	if len(violations) > 0 {
		sort.SliceStable(violations, func(i, j int) bool {
			return violations[i].file < violations[j].file
		})
		for _, v := range violations {
			fmt.Fprintf(os.Stderr, "%s: %s\n", v.file, v.Violation)
		}
		os.Exit(1)
	}
}

func lintFile(ctx context.Context, loader pkgopenapi.Loader, parser pkgopenapi.Parser, path string) ([]violation, error) {
	doc, err := loader.Load(ctx, pkgopenapi.SourceFromFile(path))
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	if !doc.HasFormExtensions() {
		fmt.Fprintf(os.Stderr, "%s: no x-formstyle extensions, nothing to lint\n", path)
		return nil, nil
	}

	var result []violation
	for _, v := range pkgopenapi.LintDocument(doc) {
		result = append(result, violation{file: path, Violation: v})
	}

	operations, err := parser.Operations(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("parse operations: %w", err)
	}

	ids := make([]string, 0, len(operations))
	for id := range operations {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		for _, v := range pkgopenapi.Lint(operations[id]) {
			result = append(result, violation{file: path, Violation: v})
		}
	}
	return result, nil
}
