package store

import (
	"context"
	"errors"
	"io"
	"log"

	"cema-admin/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// notifyChannel carries document change keys between sessions. The payload
// is the key only; NOTIFY payloads are size-limited and the watcher
// re-reads the current value, which is what last-writer-wins wants anyway.
const notifyChannel = "admin_documents"

// Postgres is an Adapter backed by a documents table, with cross-session
// change events via LISTEN/NOTIFY.
type Postgres struct {
	pool   *pgxpool.Pool
	logger *log.Logger
}

func NewPostgres(pool *pgxpool.Pool, logger *log.Logger) *Postgres {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Postgres{pool: pool, logger: logger}
}

func (p *Postgres) Read(ctx context.Context, key string) ([]byte, error) {
	const q = `SELECT value FROM documents WHERE key = $1`
	var value []byte
	if err := p.pool.QueryRow(ctx, q, key).Scan(&value); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return value, nil
}

func (p *Postgres) Write(ctx context.Context, key string, value []byte) error {
	const q = `
INSERT INTO documents (key, value)
VALUES ($1, $2)
ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()
`
	if _, err := p.pool.Exec(ctx, q, key, value); err != nil {
		return err
	}
	if _, err := p.pool.Exec(ctx, `SELECT pg_notify($1, $2)`, notifyChannel, key); err != nil {
		// The write landed; a lost notification only delays other sessions
		// until their next write-triggered reload.
		p.logger.Printf("store: notify key=%s err=%v", key, err)
	}
	return nil
}

func (p *Postgres) Watch(ctx context.Context) (<-chan Event, error) {
	conn, err := p.pool.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	if _, err := conn.Exec(ctx, "LISTEN "+notifyChannel); err != nil {
		conn.Release()
		return nil, err
	}

	ch := make(chan Event, 16)
	go func() {
		defer close(ch)
		defer conn.Release()
		for {
			n, err := conn.Conn().WaitForNotification(ctx)
			if err != nil {
				if ctx.Err() == nil {
					p.logger.Printf("store: watch stopped: %v", err)
				}
				return
			}
			value, err := p.Read(ctx, n.Payload)
			if err != nil {
				p.logger.Printf("store: watch read key=%s err=%v", n.Payload, err)
				continue
			}
			select {
			case ch <- Event{Key: n.Payload, Value: value}:
			case <-ctx.Done():
				return
			}
		}
	}()
	return ch, nil
}
