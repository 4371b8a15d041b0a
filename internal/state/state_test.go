package state

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"cema-admin/internal/domain"
	"cema-admin/internal/store"
)

type stubDirectory struct {
	users []domain.UserAccount
	err   error
}

func (s *stubDirectory) List(_ context.Context) ([]domain.UserAccount, error) {
	return s.users, s.err
}

func TestLoad_EmptyStoreUsesDefaults(t *testing.T) {
	tree := Load(context.Background(), store.NewMemory(), nil, nil)

	if len(tree.Portfolios) != 1 || tree.Portfolios[0].Title != "Modern Minimalist House" {
		t.Fatalf("unexpected default portfolios: %+v", tree.Portfolios)
	}
	if len(tree.Offerings) != 1 || tree.Offerings[0].Name != "Desain Interior" {
		t.Fatalf("unexpected default offerings: %+v", tree.Offerings)
	}
	if tree.Calculator.BasePrice != 2500000 {
		t.Fatalf("unexpected calculator defaults: %+v", tree.Calculator)
	}
	if len(tree.QuizQuestions) != 0 || len(tree.QuizResults) != 0 {
		t.Fatalf("quiz collections should start empty")
	}
	if tree.ActiveTab != "overview" {
		t.Fatalf("expected overview tab, got %q", tree.ActiveTab)
	}
}

func TestLoad_StoredCollectionWins(t *testing.T) {
	ctx := context.Background()
	adapter := store.NewMemory()
	stored := []domain.PortfolioItem{{ID: 7, Title: "Warehouse Loft", Category: "Commercial", IsActive: true}}
	raw, _ := json.Marshal(stored)
	if err := adapter.Write(ctx, store.KeyPortfolios, raw); err != nil {
		t.Fatalf("write: %v", err)
	}

	tree := Load(ctx, adapter, nil, nil)
	if len(tree.Portfolios) != 1 || tree.Portfolios[0].ID != 7 {
		t.Fatalf("expected stored portfolio, got %+v", tree.Portfolios)
	}
}

func TestLoad_MalformedDocumentFallsBack(t *testing.T) {
	ctx := context.Background()
	adapter := store.NewMemory()
	if err := adapter.Write(ctx, store.KeyServices, []byte(`{not json`)); err != nil {
		t.Fatalf("write: %v", err)
	}

	tree := Load(ctx, adapter, nil, nil)
	if len(tree.Offerings) != 1 || tree.Offerings[0].Name != "Desain Interior" {
		t.Fatalf("expected default offerings on malformed doc, got %+v", tree.Offerings)
	}
}

func TestLoad_DirectorySeedsUsers(t *testing.T) {
	dir := &stubDirectory{users: []domain.UserAccount{
		{ID: 1, Name: "Emily Johnson", Email: "emily@x.com", Role: domain.RoleAdmin},
		{ID: 2, Name: "Michael Williams", Email: "michael@x.com", Role: domain.RoleClient},
	}}
	tree := Load(context.Background(), store.NewMemory(), dir, nil)
	if len(tree.Users) != 2 || tree.Users[0].Role != domain.RoleAdmin {
		t.Fatalf("expected directory users, got %+v", tree.Users)
	}
}

func TestLoad_DirectoryFailureKeepsDefaultUsers(t *testing.T) {
	dir := &stubDirectory{err: errors.New("connection refused")}
	tree := Load(context.Background(), store.NewMemory(), dir, nil)
	if len(tree.Users) != 1 || tree.Users[0].Email != "admin@cema.com" {
		t.Fatalf("expected default admin user, got %+v", tree.Users)
	}
}

func TestApplyRemote_ReplacesRecognizedCollections(t *testing.T) {
	tree := Load(context.Background(), store.NewMemory(), nil, nil)

	remote := []domain.ServiceOffering{
		{ID: 3, Name: "Arsitektur", IsActive: true},
		{ID: 4, Name: "Renovasi", IsActive: false},
	}
	raw, _ := json.Marshal(remote)
	tree.ApplyRemote(store.KeyServices, raw)

	snap := tree.Snapshot()
	if len(snap.Offerings) != 2 || snap.Offerings[0].Name != "Arsitektur" {
		t.Fatalf("expected remote offerings to replace local, got %+v", snap.Offerings)
	}
}

func TestApplyRemote_IgnoresUnrecognizedKey(t *testing.T) {
	tree := Load(context.Background(), store.NewMemory(), nil, nil)
	before := tree.Snapshot()

	tree.ApplyRemote(store.KeyCalculatorSettings, []byte(`{"basePrice": 1}`))

	after := tree.Snapshot()
	if after.Calculator.BasePrice != before.Calculator.BasePrice {
		t.Fatalf("calculator settings must not reload from remote events")
	}
}

func TestWatch_FeedsTreeFromStore(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	adapter := store.NewMemory()
	tree := Load(ctx, adapter, nil, nil)
	if err := Watch(ctx, tree, adapter); err != nil {
		t.Fatalf("watch: %v", err)
	}

	remote := []domain.PortfolioItem{{ID: 9, Title: "Second Session Write", IsActive: true}}
	raw, _ := json.Marshal(remote)
	if err := adapter.Write(ctx, store.KeyPortfolios, raw); err != nil {
		t.Fatalf("write: %v", err)
	}

	deadline := testDeadline(t)
	for {
		snap := tree.Snapshot()
		if len(snap.Portfolios) == 1 && snap.Portfolios[0].ID == 9 {
			return
		}
		if deadline() {
			t.Fatalf("tree never observed remote write: %+v", snap.Portfolios)
		}
	}
}

// testDeadline returns a poll step that sleeps briefly and reports whether
// the overall deadline has passed.
func testDeadline(t *testing.T) func() bool {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	return func() bool {
		time.Sleep(10 * time.Millisecond)
		return time.Now().After(deadline)
	}
}

func TestSnapshot_IsDetachedFromTree(t *testing.T) {
	tree := Load(context.Background(), store.NewMemory(), nil, nil)
	snap := tree.Snapshot()
	snap.Portfolios[0].Title = "mutated copy"

	if tree.Snapshot().Portfolios[0].Title == "mutated copy" {
		t.Fatal("snapshot mutation leaked into the tree")
	}
}
