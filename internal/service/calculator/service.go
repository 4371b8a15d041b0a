package calculator

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"

	"cema-admin/internal/domain"
	"cema-admin/internal/state"
	"cema-admin/internal/store"
)

// Service edits the single calculator configuration record. The estimate
// formula runs on the public website; the panel only maintains its inputs.
type Service struct {
	tree    *state.Tree
	adapter store.Adapter
	logger  *log.Logger
}

func New(tree *state.Tree, adapter store.Adapter, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Service{tree: tree, adapter: adapter, logger: logger}
}

func (s *Service) Get() domain.CalculatorSettings {
	return s.tree.Snapshot().Calculator
}

// Update replaces the settings document after validation. Multiplier maps
// are replaced wholesale, not merged.
func (s *Service) Update(ctx context.Context, in domain.CalculatorSettings) (*domain.CalculatorSettings, error) {
	if in.BasePrice <= 0 {
		return nil, fmt.Errorf("base price must be positive: %w", domain.ErrValidation)
	}
	if in.BaseRoomCount < 0 {
		return nil, fmt.Errorf("base room count must not be negative: %w", domain.ErrValidation)
	}
	if len(in.ServiceMultipliers) == 0 || len(in.MaterialMultipliers) == 0 {
		return nil, fmt.Errorf("multiplier tables must not be empty: %w", domain.ErrValidation)
	}
	for k, v := range in.ServiceMultipliers {
		if v <= 0 {
			return nil, fmt.Errorf("service multiplier %q must be positive: %w", k, domain.ErrValidation)
		}
	}
	for k, v := range in.MaterialMultipliers {
		if v <= 0 {
			return nil, fmt.Errorf("material multiplier %q must be positive: %w", k, domain.ErrValidation)
		}
	}

	s.tree.Lock()
	defer s.tree.Unlock()

	s.tree.Calculator = in

	raw, err := json.Marshal(in)
	if err != nil {
		return nil, err
	}
	if err := s.adapter.Write(ctx, store.KeyCalculatorSettings, raw); err != nil {
		s.logger.Printf("calculator: persist failed: %v", err)
		return &in, fmt.Errorf("persist calculator settings: %w", domain.ErrPersistence)
	}
	return &in, nil
}
