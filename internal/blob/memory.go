package blob

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"sync"
	"time"
)

// Memory keeps blobs in a map. Used in tests and when no image storage is
// configured.
type Memory struct {
	mu    sync.RWMutex
	blobs map[string]memoryBlob
}

type memoryBlob struct {
	data []byte
	info Info
}

func NewMemory() *Memory {
	return &Memory{blobs: make(map[string]memoryBlob)}
}

func (m *Memory) Put(_ context.Context, key, contentType string, r io.Reader) (Info, error) {
	if err := validateKey(key); err != nil {
		return Info{}, err
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return Info{}, err
	}
	sum := sha256.Sum256(data)
	info := Info{
		Key:         key,
		Size:        int64(len(data)),
		ContentType: contentType,
		ETag:        hex.EncodeToString(sum[:]),
		UpdatedAt:   time.Now().UTC(),
	}
	m.mu.Lock()
	m.blobs[key] = memoryBlob{data: data, info: info}
	m.mu.Unlock()
	return info, nil
}

func (m *Memory) Open(_ context.Context, key string) (Info, io.ReadCloser, error) {
	if err := validateKey(key); err != nil {
		return Info{}, nil, err
	}
	m.mu.RLock()
	b, ok := m.blobs[key]
	m.mu.RUnlock()
	if !ok {
		return Info{}, nil, ErrNotExist
	}
	return b.info, io.NopCloser(bytes.NewReader(b.data)), nil
}

func (m *Memory) Delete(_ context.Context, key string) error {
	if err := validateKey(key); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.blobs[key]; !ok {
		return ErrNotExist
	}
	delete(m.blobs, key)
	return nil
}

func (m *Memory) URL(key string) string {
	return "/uploads/" + key
}
