package schema

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	structgen "github.com/structgen/structgen"
)

// Fetcher is the content-fetch capability: it turns a document URI into raw
// bytes. Transport concerns (HTTP clients, auth, retries) belong to the
// implementation, not to the store.
type Fetcher interface {
	Fetch(uri string) ([]byte, error)
}

// MapFetcher serves documents from memory, keyed by URI. Missing entries
// return structgen.ErrNotFound.
type MapFetcher map[string][]byte

// Fetch implements Fetcher.
func (m MapFetcher) Fetch(uri string) ([]byte, error) {
	b, ok := m[uri]
	if !ok {
		return nil, fmt.Errorf("%w: %s", structgen.ErrNotFound, uri)
	}
	return b, nil
}

// FileFetcher reads documents from the local filesystem. A non-empty Root
// anchors relative URIs; "file://" prefixes are stripped.
type FileFetcher struct {
	Root string
}

// Fetch implements Fetcher.
func (f FileFetcher) Fetch(uri string) ([]byte, error) {
	path := strings.TrimPrefix(uri, "file://")
	if f.Root != "" && !filepath.IsAbs(path) {
		path = filepath.Join(f.Root, path)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", structgen.ErrNotFound, uri)
		}
		return nil, err
	}
	return b, nil
}
