package store

import (
	"context"
	"fmt"
	"log"

	"cema-admin/internal/db"
)

// Open builds the Adapter named by driver. The returned closer releases
// the underlying connection resources; it is non-nil whenever err is nil.
func Open(ctx context.Context, driver, dsn, sqlitePath string, logger *log.Logger) (Adapter, func(), error) {
	switch driver {
	case "postgres":
		pool, err := db.Connect(ctx, dsn)
		if err != nil {
			return nil, nil, fmt.Errorf("connect postgres: %w", err)
		}
		return NewPostgres(pool, logger), pool.Close, nil
	case "sqlite":
		s, err := OpenSQLite(sqlitePath, logger)
		if err != nil {
			return nil, nil, err
		}
		return s, func() { _ = s.Close() }, nil
	case "memory":
		return NewMemory(), func() {}, nil
	default:
		return nil, nil, fmt.Errorf("unknown store driver %q", driver)
	}
}
