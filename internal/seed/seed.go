// Package seed writes the default collections into the document store.
// Seeding is additive only: a key that already holds a document is left
// alone, so re-running against a live deployment never clobbers edits.
package seed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"

	"cema-admin/internal/domain"
	"cema-admin/internal/store"
)

func Apply(ctx context.Context, adapter store.Adapter, logger *log.Logger) error {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	docs := []struct {
		key   string
		value any
	}{
		{store.KeyPortfolios, domain.DefaultPortfolios()},
		{store.KeyServices, domain.DefaultOfferings()},
		{store.KeyCalculatorSettings, domain.DefaultCalculatorSettings()},
		{store.KeyQuizQuestions, []domain.QuizQuestion{}},
		{store.KeyQuizResults, []domain.QuizResult{}},
	}

	for _, doc := range docs {
		if _, err := adapter.Read(ctx, doc.key); err == nil {
			logger.Printf("seed: %s already present, skipping", doc.key)
			continue
		} else if !errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("check %s: %w", doc.key, err)
		}

		raw, err := json.Marshal(doc.value)
		if err != nil {
			return fmt.Errorf("marshal %s: %w", doc.key, err)
		}
		if err := adapter.Write(ctx, doc.key, raw); err != nil {
			return fmt.Errorf("write %s: %w", doc.key, err)
		}
		logger.Printf("seed: wrote %s", doc.key)
	}
	return nil
}
