// Package imagestore keeps post image bytes on the local filesystem, one
// file per post keyed by post id.
package imagestore

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/blackmichael/blog-service/internal/domain"
)

//go:embed default-post-image.svg
var defaultImage []byte

// DefaultImage returns the placeholder served for posts without an uploaded
// image.
func DefaultImage() domain.ImagePayload {
	return domain.ImagePayload{
		ContentType: "image/svg+xml",
		Data:        defaultImage,
	}
}

// FS implements domain.ImageStorage on a local directory.
type FS struct {
	dir string
}

// NewFS creates the directory if needed and returns a store rooted at it.
func NewFS(dir string) (*FS, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create images directory: %w", err)
	}
	return &FS{dir: dir}, nil
}

// Save writes the image bytes for a post, replacing any previous image.
func (f *FS) Save(postID int64, data []byte) error {
	if err := os.WriteFile(f.path(postID), data, 0o644); err != nil {
		return fmt.Errorf("write image for post %d: %w", postID, err)
	}
	return nil
}

// Read returns the stored image bytes for a post.
func (f *FS) Read(postID int64) ([]byte, error) {
	data, err := os.ReadFile(f.path(postID))
	if err != nil {
		return nil, fmt.Errorf("read image for post %d: %w", postID, err)
	}
	return data, nil
}

// Exists reports whether a post has a stored image.
func (f *FS) Exists(postID int64) bool {
	_, err := os.Stat(f.path(postID))
	return err == nil
}

// Delete removes the stored image for a post. Deleting an absent image is
// not an error.
func (f *FS) Delete(postID int64) error {
	err := os.Remove(f.path(postID))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("delete image for post %d: %w", postID, err)
	}
	return nil
}

func (f *FS) path(postID int64) string {
	return filepath.Join(f.dir, strconv.FormatInt(postID, 10))
}
