package state

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"sync"

	"cema-admin/internal/domain"
	"cema-admin/internal/store"
)

// Tab identifiers accepted by the dashboard.
var Tabs = []string{"overview", "portfolio", "services", "chat", "projects", "users", "calculator", "quiz"}

// DirectoryLister seeds the user collection at session start.
type DirectoryLister interface {
	List(ctx context.Context) ([]domain.UserAccount, error)
}

// Tree is the session-owned aggregate of all admin-visible collections.
// It is constructed once per admin session and passed by reference to the
// operation layer and renderers; nothing reaches it through globals.
//
// All mutation goes through the service packages, which hold the lock for
// the duration of an operation. Field access without the lock is a bug.
type Tree struct {
	mu     sync.Mutex
	logger *log.Logger

	Portfolios    []domain.PortfolioItem
	Offerings     []domain.ServiceOffering
	Projects      []domain.Project
	Users         []domain.UserAccount
	ChatThreads   []domain.ChatThread
	ChatMessages  []domain.ChatMessage
	QuizQuestions []domain.QuizQuestion
	QuizResults   []domain.QuizResult
	Calculator    domain.CalculatorSettings

	ActiveTab      string
	SelectedThread int64 // 0 when no thread is selected
}

func (t *Tree) Lock()   { t.mu.Lock() }
func (t *Tree) Unlock() { t.mu.Unlock() }

// Load hydrates a Tree from the store, falling back to the built-in
// defaults for keys that are absent or unreadable. Users are seeded from
// the directory; projects and chat are session-only and always start from
// defaults. Hydration never fails the session: a broken document is
// logged and replaced by its default.
func Load(ctx context.Context, adapter store.Adapter, dir DirectoryLister, logger *log.Logger) *Tree {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	t := &Tree{
		logger:        logger,
		Portfolios:    loadDoc(ctx, adapter, store.KeyPortfolios, domain.DefaultPortfolios(), logger),
		Offerings:     loadDoc(ctx, adapter, store.KeyServices, domain.DefaultOfferings(), logger),
		QuizQuestions: loadDoc(ctx, adapter, store.KeyQuizQuestions, []domain.QuizQuestion{}, logger),
		QuizResults:   loadDoc(ctx, adapter, store.KeyQuizResults, []domain.QuizResult{}, logger),
		Calculator:    loadDoc(ctx, adapter, store.KeyCalculatorSettings, domain.DefaultCalculatorSettings(), logger),
		Projects:      domain.DefaultProjects(),
		ChatThreads:   domain.DefaultChatThreads(),
		ChatMessages:  domain.DefaultChatMessages(),
		ActiveTab:     "overview",
	}

	t.Users = domain.DefaultUsers()
	if dir != nil {
		users, err := dir.List(ctx)
		if err != nil {
			logger.Printf("state: directory seed failed, keeping default users: %v", err)
		} else if len(users) > 0 {
			t.Users = users
		}
	}
	return t
}

func loadDoc[T any](ctx context.Context, adapter store.Adapter, key string, fallback T, logger *log.Logger) T {
	raw, err := adapter.Read(ctx, key)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			logger.Printf("state: read %s: %v", key, err)
		}
		return fallback
	}
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		logger.Printf("state: malformed %s document, using default: %v", key, err)
		return fallback
	}
	return v
}

// ApplyRemote replaces a collection with the document another session
// wrote. Last writer wins; there is no merge or conflict detection. Only
// the keys the dashboard historically watched are recognized; anything
// else is ignored.
func (t *Tree) ApplyRemote(key string, value []byte) {
	t.mu.Lock()
	defer t.mu.Unlock()

	switch key {
	case store.KeyPortfolios:
		t.Portfolios = decodeOrEmpty[[]domain.PortfolioItem](t.logger, key, value)
	case store.KeyServices:
		t.Offerings = decodeOrEmpty[[]domain.ServiceOffering](t.logger, key, value)
	case store.KeyQuizResults:
		t.QuizResults = decodeOrEmpty[[]domain.QuizResult](t.logger, key, value)
	}
}

func decodeOrEmpty[T any](logger *log.Logger, key string, value []byte) T {
	var v T
	if len(value) == 0 {
		return v
	}
	if err := json.Unmarshal(value, &v); err != nil {
		logger.Printf("state: remote %s document malformed: %v", key, err)
		var zero T
		return zero
	}
	return v
}

// Watch feeds store change events into the tree until ctx is cancelled.
func Watch(ctx context.Context, t *Tree, adapter store.Adapter) error {
	events, err := adapter.Watch(ctx)
	if err != nil {
		return err
	}
	go func() {
		for ev := range events {
			t.ApplyRemote(ev.Key, ev.Value)
		}
	}()
	return nil
}
