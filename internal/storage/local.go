package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// localStorage writes uploads into a content directory on disk. The directory
// is created (with parents) at construction so the first upload never races
// directory creation.
type localStorage struct {
	dir       string
	relBase   string
	nowMillis func() int64
}

// NewLocal creates a disk-backed Storage rooted at dir. Paths returned by
// Save are relative to the public mount: a "public/" prefix on dir is
// stripped, so dir "public/uploads/documents_gallery" yields paths like
// "uploads/documents_gallery/<name>".
func NewLocal(dir string) (Storage, error) {
	if dir == "" {
		return nil, fmt.Errorf("content directory is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create content directory: %w", err)
	}
	rel := strings.TrimPrefix(filepath.ToSlash(dir), "public/")
	return &localStorage{
		dir:       dir,
		relBase:   rel,
		nowMillis: func() int64 { return time.Now().UnixMilli() },
	}, nil
}

// Save streams r to disk under a generated name and returns the relative path.
func (l *localStorage) Save(ctx context.Context, originalName string, r io.Reader, size int64) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	name := GeneratedName(originalName, l.nowMillis())
	dst := filepath.Join(l.dir, name)

	out, err := os.Create(dst)
	if err != nil {
		return "", fmt.Errorf("create file: %w", err)
	}
	defer out.Close()

	if _, err := io.Copy(out, r); err != nil {
		_ = os.Remove(dst)
		return "", fmt.Errorf("write file: %w", err)
	}

	return l.relBase + "/" + name, nil
}
