// Package storage holds uploaded images: course photos, team portraits,
// gallery shots, and the site logo. Files go to S3-compatible object
// storage when configured, or to a local directory served by the app
// otherwise.
package storage

import (
	"context"
	"io"
)

// Uploader stores a file and returns the public URL it is served from.
type Uploader interface {
	Upload(ctx context.Context, key, contentType string, body io.Reader, size int64) (string, error)
	Delete(ctx context.Context, url string) error
}
