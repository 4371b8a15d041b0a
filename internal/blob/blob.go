// Package blob stores uploaded portfolio images. The dashboard only needs
// put, open and delete over a flat key space; keys are chosen by the image
// upload handler and overwriting is allowed because re-uploading an item's
// image replaces the previous one.
package blob

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"
)

var ErrNotExist = errors.New("blob does not exist")

type Info struct {
	Key         string
	Size        int64
	ContentType string
	ETag        string
	UpdatedAt   time.Time
}

type Store interface {
	Put(ctx context.Context, key, contentType string, r io.Reader) (Info, error)
	Open(ctx context.Context, key string) (Info, io.ReadCloser, error)
	Delete(ctx context.Context, key string) error
	// URL returns the address the public site serves the image from.
	URL(key string) string
}

// validateKey rejects traversal and absolute keys before any driver sees
// them, so the fs driver cannot be walked out of its root.
func validateKey(key string) error {
	if strings.TrimSpace(key) == "" {
		return fmt.Errorf("empty blob key")
	}
	if strings.HasPrefix(key, "/") || strings.Contains(key, "..") || strings.Contains(key, "\\") {
		return fmt.Errorf("invalid blob key %q", key)
	}
	return nil
}
