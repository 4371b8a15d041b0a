package portfolio

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"strings"

	"cema-admin/internal/domain"
	"cema-admin/internal/idgen"
	"cema-admin/internal/state"
	"cema-admin/internal/store"
)

// Service owns every mutation of the portfolio collection. Operations on
// ids that do not exist are silent no-ops; the dashboard treats a stale
// button press as nothing to do, not as an error.
type Service struct {
	tree    *state.Tree
	adapter store.Adapter
	ids     idgen.Generator
	logger  *log.Logger
}

func New(tree *state.Tree, adapter store.Adapter, ids idgen.Generator, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	if ids == nil {
		ids = idgen.Sequential{}
	}
	return &Service{tree: tree, adapter: adapter, ids: ids, logger: logger}
}

// CreateInput carries the add-portfolio form fields. Every field except
// ShowOnHomepage is required.
type CreateInput struct {
	Title          string `json:"title"`
	Category       string `json:"category"`
	ImageURL       string `json:"imageUrl"`
	Description    string `json:"description"`
	CompletedDate  string `json:"completedDate"`
	ShowOnHomepage bool   `json:"showOnHomepage"`
}

// UpdateInput merges into an existing item. Empty strings leave the field
// untouched; nil flags leave the flag untouched. A new image URL replaces
// the old one wholesale.
type UpdateInput struct {
	Title          string `json:"title"`
	Category       string `json:"category"`
	ImageURL       string `json:"imageUrl"`
	Description    string `json:"description"`
	CompletedDate  string `json:"completedDate"`
	IsActive       *bool  `json:"isActive"`
	ShowOnHomepage *bool  `json:"showOnHomepage"`
}

func (s *Service) List() []domain.PortfolioItem {
	return s.tree.Snapshot().Portfolios
}

func (s *Service) Get(id int64) (*domain.PortfolioItem, error) {
	for _, p := range s.tree.Snapshot().Portfolios {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s *Service) Create(ctx context.Context, in CreateInput) (*domain.PortfolioItem, error) {
	in.Title = strings.TrimSpace(in.Title)
	in.Category = strings.TrimSpace(in.Category)
	in.ImageURL = strings.TrimSpace(in.ImageURL)
	in.Description = strings.TrimSpace(in.Description)
	in.CompletedDate = strings.TrimSpace(in.CompletedDate)

	if in.Title == "" || in.Category == "" || in.ImageURL == "" || in.Description == "" || in.CompletedDate == "" {
		return nil, fmt.Errorf("all portfolio fields are required: %w", domain.ErrValidation)
	}

	s.tree.Lock()
	defer s.tree.Unlock()

	item := domain.PortfolioItem{
		ID:             s.ids.Next(collectIDs(s.tree.Portfolios)),
		Title:          in.Title,
		Category:       in.Category,
		ImageURL:       in.ImageURL,
		Description:    in.Description,
		CompletedDate:  in.CompletedDate,
		ShowOnHomepage: in.ShowOnHomepage,
		IsActive:       true,
	}
	s.tree.Portfolios = append(s.tree.Portfolios, item)
	return &item, s.persist(ctx)
}

func (s *Service) Update(ctx context.Context, id int64, in UpdateInput) (*domain.PortfolioItem, error) {
	s.tree.Lock()
	defer s.tree.Unlock()

	idx := indexOf(s.tree.Portfolios, id)
	if idx < 0 {
		return nil, nil
	}
	item := &s.tree.Portfolios[idx]
	if v := strings.TrimSpace(in.Title); v != "" {
		item.Title = v
	}
	if v := strings.TrimSpace(in.Category); v != "" {
		item.Category = v
	}
	if v := strings.TrimSpace(in.ImageURL); v != "" {
		// Wholesale replacement; the previous image is not cleaned up.
		item.ImageURL = v
	}
	if v := strings.TrimSpace(in.Description); v != "" {
		item.Description = v
	}
	if v := strings.TrimSpace(in.CompletedDate); v != "" {
		item.CompletedDate = v
	}
	if in.IsActive != nil {
		item.IsActive = *in.IsActive
		if !item.IsActive {
			item.ShowOnHomepage = false
		}
	}
	if in.ShowOnHomepage != nil && item.IsActive {
		item.ShowOnHomepage = *in.ShowOnHomepage
	}

	out := *item
	return &out, s.persist(ctx)
}

// ToggleActive flips visibility on the public site. Deactivating an item
// also clears its homepage flag: nothing inactive may be featured.
func (s *Service) ToggleActive(ctx context.Context, id int64) (*domain.PortfolioItem, error) {
	s.tree.Lock()
	defer s.tree.Unlock()

	idx := indexOf(s.tree.Portfolios, id)
	if idx < 0 {
		return nil, nil
	}
	item := &s.tree.Portfolios[idx]
	item.IsActive = !item.IsActive
	if !item.IsActive {
		item.ShowOnHomepage = false
	}

	out := *item
	return &out, s.persist(ctx)
}

// ToggleHomepage flips the homepage feature flag. Inactive items refuse
// the toggle: no state change and no store write.
func (s *Service) ToggleHomepage(ctx context.Context, id int64) (*domain.PortfolioItem, error) {
	s.tree.Lock()
	defer s.tree.Unlock()

	idx := indexOf(s.tree.Portfolios, id)
	if idx < 0 {
		return nil, nil
	}
	item := &s.tree.Portfolios[idx]
	if !item.IsActive {
		return nil, nil
	}
	item.ShowOnHomepage = !item.ShowOnHomepage

	out := *item
	return &out, s.persist(ctx)
}

// SetImage replaces the stored image URL after an upload. The old value
// is dropped without orphan cleanup of the previous blob.
func (s *Service) SetImage(ctx context.Context, id int64, url string) (*domain.PortfolioItem, error) {
	s.tree.Lock()
	defer s.tree.Unlock()

	idx := indexOf(s.tree.Portfolios, id)
	if idx < 0 {
		return nil, nil
	}
	s.tree.Portfolios[idx].ImageURL = url

	out := s.tree.Portfolios[idx]
	return &out, s.persist(ctx)
}

// Delete removes the item unconditionally once confirmed. Without
// confirm the operation aborts cleanly with no side effects.
func (s *Service) Delete(ctx context.Context, id int64, confirm bool) error {
	if !confirm {
		return domain.ErrConfirmationRequired
	}

	s.tree.Lock()
	defer s.tree.Unlock()

	idx := indexOf(s.tree.Portfolios, id)
	if idx < 0 {
		return nil
	}
	s.tree.Portfolios = append(s.tree.Portfolios[:idx], s.tree.Portfolios[idx+1:]...)
	return s.persist(ctx)
}

// persist writes the collection to the store. Callers hold the tree lock.
// A failed write keeps the in-memory mutation: memory and store diverge
// until the next successful write, and the caller surfaces the failure.
func (s *Service) persist(ctx context.Context) error {
	raw, err := json.Marshal(s.tree.Portfolios)
	if err != nil {
		return err
	}
	if err := s.adapter.Write(ctx, store.KeyPortfolios, raw); err != nil {
		s.logger.Printf("portfolio: persist failed: %v", err)
		return fmt.Errorf("persist portfolios: %w", domain.ErrPersistence)
	}
	return nil
}

func indexOf(items []domain.PortfolioItem, id int64) int {
	for i, p := range items {
		if p.ID == id {
			return i
		}
	}
	return -1
}

func collectIDs(items []domain.PortfolioItem) []int64 {
	ids := make([]int64, len(items))
	for i, p := range items {
		ids[i] = p.ID
	}
	return ids
}
