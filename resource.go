package ggapp

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
)

// ErrResourceNotFound is returned by ResourceURL for missing resources.
var ErrResourceNotFound = errors.New("ggapp: resource not found")

// ResourceURL resolves name relative to the anchor directory and returns
// it as a file URL. An empty anchor means the directory of the running
// executable. Absolute names ignore the anchor.
func ResourceURL(name, anchor string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("%w: empty name", ErrResourceNotFound)
	}

	path := name
	if !filepath.IsAbs(path) {
		if anchor == "" {
			exe, err := os.Executable()
			if err != nil {
				return "", fmt.Errorf("ggapp: resolve executable: %w", err)
			}
			anchor = filepath.Dir(exe)
		}
		path = filepath.Join(anchor, filepath.FromSlash(name))
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("ggapp: resolve %s: %w", name, err)
	}
	if _, err := os.Stat(abs); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", ErrResourceNotFound, name)
		}
		return "", fmt.Errorf("ggapp: stat %s: %w", name, err)
	}

	u := url.URL{Scheme: "file", Path: filepath.ToSlash(abs)}
	return u.String(), nil
}
