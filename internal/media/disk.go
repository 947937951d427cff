package media

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

// DiskStorage keeps uploads in a local directory that the server exposes
// under URLPrefix.
type DiskStorage struct {
	root      string
	urlPrefix string
}

var _ Storage = (*DiskStorage)(nil)

const DefaultURLPrefix = "/uploads"

// NewDiskStorage creates root if it does not exist yet.
func NewDiskStorage(root string) (*DiskStorage, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create upload directory: %w", err)
	}
	return &DiskStorage{root: root, urlPrefix: DefaultURLPrefix}, nil
}

// Save writes to a temporary file first so a failed upload never leaves a
// partial file under its final name.
func (d *DiskStorage) Save(_ context.Context, name string, body io.Reader, _ int64, _ string) error {
	if name == "" || name != filepath.Base(name) {
		return fmt.Errorf("invalid upload name %q", name)
	}

	tmp, err := os.CreateTemp(d.root, ".upload-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, body); err != nil {
		tmp.Close()
		return fmt.Errorf("write upload: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close upload: %w", err)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return fmt.Errorf("chmod upload: %w", err)
	}
	if err := os.Rename(tmp.Name(), filepath.Join(d.root, name)); err != nil {
		return fmt.Errorf("store upload: %w", err)
	}
	return nil
}

// URL escapes name so characters such as '#', '?' and '%' survive the
// round trip through a client.
func (d *DiskStorage) URL(name string) string {
	return d.urlPrefix + "/" + url.PathEscape(name)
}

// Handler serves stored files beneath the URL prefix. Directory listings
// are not served.
func (d *DiskStorage) Handler() http.Handler {
	files := http.StripPrefix(d.urlPrefix+"/", http.FileServer(http.Dir(d.root)))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		name := strings.TrimPrefix(r.URL.Path, d.urlPrefix+"/")
		if name == "" || strings.HasSuffix(name, "/") || strings.HasPrefix(name, ".") {
			http.NotFound(w, r)
			return
		}
		files.ServeHTTP(w, r)
	})
}
