package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Local stores uploads under a directory on disk. The router serves the
// directory at /uploads, so returned URLs are path-relative to the app's
// base URL.
type Local struct {
	dir     string
	baseURL string
}

// NewLocal creates a local uploader rooted at dir. baseURL is the public
// origin the files are served from, e.g. "https://skillforge.example.com".
func NewLocal(dir, baseURL string) (*Local, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create uploads dir: %w", err)
	}
	return &Local{dir: dir, baseURL: strings.TrimRight(baseURL, "/")}, nil
}

func (l *Local) Upload(_ context.Context, key, _ string, body io.Reader, _ int64) (string, error) {
	path, err := l.keyPath(key)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("create upload subdir: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, body); err != nil {
		return "", fmt.Errorf("write upload file: %w", err)
	}
	return l.baseURL + "/uploads/" + key, nil
}

// Delete removes the file behind an upload URL. URLs outside /uploads
// are ignored.
func (l *Local) Delete(_ context.Context, url string) error {
	prefix := l.baseURL + "/uploads/"
	if !strings.HasPrefix(url, prefix) {
		return nil
	}
	path, err := l.keyPath(url[len(prefix):])
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove upload file: %w", err)
	}
	return nil
}

// Dir returns the directory the router should serve at /uploads.
func (l *Local) Dir() string {
	return l.dir
}

// keyPath resolves a key inside the uploads dir, rejecting traversal.
func (l *Local) keyPath(key string) (string, error) {
	path := filepath.Join(l.dir, filepath.FromSlash(key))
	if !strings.HasPrefix(path, filepath.Clean(l.dir)+string(filepath.Separator)) {
		return "", fmt.Errorf("invalid upload key %q", key)
	}
	return path, nil
}
