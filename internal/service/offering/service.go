package offering

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

// Service owns mutations of the service-offering catalog. The contract
// mirrors the portfolio service: unknown ids no-op silently, deactivation
// clears the homepage flag, deletes need confirmation.
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

type CreateInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       string `json:"price"`
	Duration    string `json:"duration"`
}

type UpdateInput struct {
	Name           string `json:"name"`
	Description    string `json:"description"`
	Price          string `json:"price"`
	Duration       string `json:"duration"`
	IsActive       *bool  `json:"isActive"`
	ShowOnHomepage *bool  `json:"showOnHomepage"`
}

func (s *Service) List() []domain.ServiceOffering {
	return s.tree.Snapshot().Offerings
}

func (s *Service) Get(id int64) (*domain.ServiceOffering, error) {
	for _, o := range s.tree.Snapshot().Offerings {
		if o.ID == id {
			return &o, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s *Service) Create(ctx context.Context, in CreateInput) (*domain.ServiceOffering, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Description = strings.TrimSpace(in.Description)
	in.Price = strings.TrimSpace(in.Price)
	in.Duration = strings.TrimSpace(in.Duration)

	if in.Name == "" || in.Description == "" || in.Price == "" || in.Duration == "" {
		return nil, fmt.Errorf("all service fields are required: %w", domain.ErrValidation)
	}

	s.tree.Lock()
	defer s.tree.Unlock()

	o := domain.ServiceOffering{
		ID:          s.ids.Next(collectIDs(s.tree.Offerings)),
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Duration:    in.Duration,
		IsActive:    true,
	}
	s.tree.Offerings = append(s.tree.Offerings, o)
	return &o, s.persist(ctx)
}

func (s *Service) Update(ctx context.Context, id int64, in UpdateInput) (*domain.ServiceOffering, error) {
	s.tree.Lock()
	defer s.tree.Unlock()

	idx := indexOf(s.tree.Offerings, id)
	if idx < 0 {
		return nil, nil
	}
	o := &s.tree.Offerings[idx]
	if v := strings.TrimSpace(in.Name); v != "" {
		o.Name = v
	}
	if v := strings.TrimSpace(in.Description); v != "" {
		o.Description = v
	}
	if v := strings.TrimSpace(in.Price); v != "" {
		o.Price = v
	}
	if v := strings.TrimSpace(in.Duration); v != "" {
		o.Duration = v
	}
	if in.IsActive != nil {
		o.IsActive = *in.IsActive
		if !o.IsActive {
			o.ShowOnHomepage = false
		}
	}
	if in.ShowOnHomepage != nil && o.IsActive {
		o.ShowOnHomepage = *in.ShowOnHomepage
	}

	out := *o
	return &out, s.persist(ctx)
}

func (s *Service) ToggleActive(ctx context.Context, id int64) (*domain.ServiceOffering, error) {
	s.tree.Lock()
	defer s.tree.Unlock()

	idx := indexOf(s.tree.Offerings, id)
	if idx < 0 {
		return nil, nil
	}
	o := &s.tree.Offerings[idx]
	o.IsActive = !o.IsActive
	if !o.IsActive {
		o.ShowOnHomepage = false
	}

	out := *o
	return &out, s.persist(ctx)
}

func (s *Service) ToggleHomepage(ctx context.Context, id int64) (*domain.ServiceOffering, error) {
	s.tree.Lock()
	defer s.tree.Unlock()

	idx := indexOf(s.tree.Offerings, id)
	if idx < 0 {
		return nil, nil
	}
	o := &s.tree.Offerings[idx]
	if !o.IsActive {
		return nil, nil
	}
	o.ShowOnHomepage = !o.ShowOnHomepage

	out := *o
	return &out, s.persist(ctx)
}

func (s *Service) Delete(ctx context.Context, id int64, confirm bool) error {
	if !confirm {
		return domain.ErrConfirmationRequired
	}

	s.tree.Lock()
	defer s.tree.Unlock()

	idx := indexOf(s.tree.Offerings, id)
	if idx < 0 {
		return nil
	}
	s.tree.Offerings = append(s.tree.Offerings[:idx], s.tree.Offerings[idx+1:]...)
	return s.persist(ctx)
}

func (s *Service) persist(ctx context.Context) error {
	raw, err := json.Marshal(s.tree.Offerings)
	if err != nil {
		return err
	}
	if err := s.adapter.Write(ctx, store.KeyServices, raw); err != nil {
		s.logger.Printf("offering: persist failed: %v", err)
		return fmt.Errorf("persist services: %w", domain.ErrPersistence)
	}
	return nil
}

func indexOf(items []domain.ServiceOffering, id int64) int {
	for i, o := range items {
		if o.ID == id {
			return i
		}
	}
	return -1
}

func collectIDs(items []domain.ServiceOffering) []int64 {
	ids := make([]int64, len(items))
	for i, o := range items {
		ids[i] = o.ID
	}
	return ids
}
