package store

import "context"

// Document keys. Each value is the entity collection serialized as a JSON
// array, except calculatorSettings which is a single JSON object.
const (
	KeyPortfolios         = "portfolios"
	KeyServices           = "services"
	KeyCalculatorSettings = "calculatorSettings"
	KeyQuizQuestions      = "quizQuestions"
	KeyQuizResults        = "quizResults"
)

// Event is a change notification for a document key. Value carries the
// document as stored by the writer that triggered the event.
type Event struct {
	Key   string
	Value []byte
}

// Adapter is the persistence boundary: key-value read/write of JSON
// documents plus a change feed so concurrent admin sessions can reload
// collections another session wrote (last-writer-wins, no merge).
type Adapter interface {
	// Read returns the stored document, or domain.ErrNotFound when absent.
	Read(ctx context.Context, key string) ([]byte, error)
	// Write stores the document under key, replacing any previous value.
	Write(ctx context.Context, key string, value []byte) error
	// Watch delivers change events until ctx is cancelled. Slow consumers
	// may miss events; the consumer reloads the full document anyway.
	Watch(ctx context.Context) (<-chan Event, error)
}
