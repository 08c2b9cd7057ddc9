package loader

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"strings"
)

func readFile(_ context.Context, location string, limit int64) ([]byte, error) {
	f, err := os.Open(location)
	if err != nil {
		return nil, fmt.Errorf("openapi loader: read %s: %w", location, err)
	}
	defer f.Close()
	return readLimited(f, location, limit)
}

func readFS(files fs.FS) fetcher {
	return func(_ context.Context, location string, limit int64) ([]byte, error) {
		name := path.Clean(strings.TrimPrefix(location, "/"))
		if name == "." {
			return nil, fmt.Errorf("openapi loader: invalid fs path %q", location)
		}
		f, err := files.Open(name)
		if err != nil {
			return nil, fmt.Errorf("openapi loader: read %s: %w", name, err)
		}
		defer f.Close()
		return readLimited(f, name, limit)
	}
}

func readLimited(r io.Reader, location string, limit int64) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return nil, fmt.Errorf("openapi loader: read %s: %w", location, err)
	}
	return data, nil
}
