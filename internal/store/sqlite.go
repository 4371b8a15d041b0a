package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log"
	"sync"

	"cema-admin/internal/domain"
	_ "modernc.org/sqlite"
)

// SQLite is an Adapter backed by a single-file database for standalone
// deployments. Change events are in-process only: a second process writing
// the same file is not detected, which matches the accepted
// last-writer-wins policy for the store.
type SQLite struct {
	db     *sql.DB
	logger *log.Logger

	mu   sync.Mutex
	subs map[chan Event]struct{}
}

func OpenSQLite(path string, logger *log.Logger) (*SQLite, error) {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	const schema = `
CREATE TABLE IF NOT EXISTS documents (
    key TEXT PRIMARY KEY,
    value TEXT NOT NULL,
    updated_at TEXT NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%fZ', 'now'))
)`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init sqlite schema: %w", err)
	}
	return &SQLite{db: db, logger: logger, subs: make(map[chan Event]struct{})}, nil
}

func (s *SQLite) Close() error { return s.db.Close() }

func (s *SQLite) Read(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := s.db.QueryRowContext(ctx, `SELECT value FROM documents WHERE key = ?`, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return value, nil
}

func (s *SQLite) Write(ctx context.Context, key string, value []byte) error {
	const q = `
INSERT INTO documents (key, value) VALUES (?, ?)
ON CONFLICT (key) DO UPDATE SET value = excluded.value, updated_at = strftime('%Y-%m-%dT%H:%M:%fZ', 'now')
`
	if _, err := s.db.ExecContext(ctx, q, key, value); err != nil {
		return err
	}

	// Send while holding mu: Watch cleanup closes channels under the same
	// lock, so a send can never follow a close.
	s.mu.Lock()
	for ch := range s.subs {
		select {
		case ch <- Event{Key: key, Value: value}:
		default:
		}
	}
	s.mu.Unlock()
	return nil
}

func (s *SQLite) Watch(ctx context.Context) (<-chan Event, error) {
	ch := make(chan Event, 16)
	s.mu.Lock()
	s.subs[ch] = struct{}{}
	s.mu.Unlock()

	go func() {
		<-ctx.Done()
		s.mu.Lock()
		delete(s.subs, ch)
		close(ch)
		s.mu.Unlock()
	}()
	return ch, nil
}
