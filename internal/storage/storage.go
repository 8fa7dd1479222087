// Package storage persists uploaded document files. Backends implement the
// Storage interface so handlers never know whether bytes land on local disk
// or in an object store.
package storage

import (
	"context"
	"io"
	"path/filepath"
	"regexp"
	"strconv"
)

// Storage saves an uploaded file under a collision-resistant generated name
// and returns a relative path usable for serving.
type Storage interface {
	// Save persists the content of r under a name derived from originalName.
	// size may be -1 when unknown. The returned path is relative to the
	// public file mount.
	Save(ctx context.Context, originalName string, r io.Reader, size int64) (string, error)
}

var whitespace = regexp.MustCompile(`\s+`)

// GeneratedName builds the stored filename: the original extension is kept,
// whitespace in the base name becomes underscores, and the current time in
// milliseconds is prepended. Timestamps keep concurrent uploads of the same
// filename from colliding while the name stays human-readable.
func GeneratedName(originalName string, nowMillis int64) string {
	ext := filepath.Ext(originalName)
	base := filepath.Base(originalName)
	base = base[:len(base)-len(ext)]
	base = whitespace.ReplaceAllString(base, "_")
	return strconv.FormatInt(nowMillis, 10) + "_" + base + ext
}
