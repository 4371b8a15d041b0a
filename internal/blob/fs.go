package blob

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"
)

// FS stores blobs under a directory, one file per key plus a `.meta`
// sidecar carrying content type, etag and size. Writes stream through a
// temp file and rename into place so readers never see a partial image.
type FS struct {
	root string
}

func NewFS(root string) (*FS, error) {
	if root == "" {
		root = "./uploads"
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, err
	}
	return &FS{root: root}, nil
}

type fsMeta struct {
	ContentType string    `json:"contentType,omitempty"`
	ETag        string    `json:"etag"`
	Size        int64     `json:"size"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (s *FS) paths(key string) (data, meta string, err error) {
	if err := validateKey(key); err != nil {
		return "", "", err
	}
	data = filepath.Join(s.root, filepath.FromSlash(key))
	return data, data + ".meta", nil
}

func (s *FS) Put(_ context.Context, key, contentType string, r io.Reader) (Info, error) {
	dataPath, metaPath, err := s.paths(key)
	if err != nil {
		return Info{}, err
	}
	if err := os.MkdirAll(filepath.Dir(dataPath), 0o755); err != nil {
		return Info{}, err
	}
	tmp, err := os.CreateTemp(filepath.Dir(dataPath), ".upload-*")
	if err != nil {
		return Info{}, err
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	h := sha256.New()
	size, err := io.Copy(io.MultiWriter(tmp, h), r)
	if err != nil {
		_ = tmp.Close()
		return Info{}, err
	}
	if err := tmp.Close(); err != nil {
		return Info{}, err
	}
	if err := os.Rename(tmp.Name(), dataPath); err != nil {
		return Info{}, err
	}

	info := Info{
		Key:         key,
		Size:        size,
		ContentType: contentType,
		ETag:        hex.EncodeToString(h.Sum(nil)),
		UpdatedAt:   time.Now().UTC(),
	}
	raw, err := json.Marshal(fsMeta{ContentType: contentType, ETag: info.ETag, Size: size, UpdatedAt: info.UpdatedAt})
	if err != nil {
		return Info{}, err
	}
	if err := os.WriteFile(metaPath, raw, 0o644); err != nil {
		return Info{}, err
	}
	return info, nil
}

func (s *FS) Open(_ context.Context, key string) (Info, io.ReadCloser, error) {
	dataPath, metaPath, err := s.paths(key)
	if err != nil {
		return Info{}, nil, err
	}
	file, err := os.Open(dataPath)
	if errors.Is(err, fs.ErrNotExist) {
		return Info{}, nil, ErrNotExist
	}
	if err != nil {
		return Info{}, nil, err
	}
	info := Info{Key: key}
	if raw, err := os.ReadFile(metaPath); err == nil {
		var m fsMeta
		if json.Unmarshal(raw, &m) == nil {
			info.ContentType, info.ETag, info.Size, info.UpdatedAt = m.ContentType, m.ETag, m.Size, m.UpdatedAt
		}
	}
	return info, file, nil
}

func (s *FS) Delete(_ context.Context, key string) error {
	dataPath, metaPath, err := s.paths(key)
	if err != nil {
		return err
	}
	if err := os.Remove(dataPath); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return ErrNotExist
		}
		return err
	}
	_ = os.Remove(metaPath)
	return nil
}

func (s *FS) URL(key string) string {
	return "/uploads/" + key
}
