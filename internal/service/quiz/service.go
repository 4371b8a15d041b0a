package quiz

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"strings"
	"time"

	"cema-admin/internal/domain"
	"cema-admin/internal/idgen"
	"cema-admin/internal/state"
	"cema-admin/internal/store"
)

// Service manages quiz questions and the append-only result log. Questions
// and results persist under separate store keys; results are written by
// the public quiz and only ever appended, never edited.
type Service struct {
	tree    *state.Tree
	adapter store.Adapter
	ids     idgen.Generator
	logger  *log.Logger
	now     func() time.Time
}

func New(tree *state.Tree, adapter store.Adapter, ids idgen.Generator, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	if ids == nil {
		ids = idgen.Sequential{}
	}
	return &Service{tree: tree, adapter: adapter, ids: ids, logger: logger, now: time.Now}
}

type QuestionInput struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
}

type ResultInput struct {
	UserName    string `json:"userName"`
	UserEmail   string `json:"userEmail"`
	ResultTitle string `json:"resultTitle"`
}

func (s *Service) Questions() []domain.QuizQuestion {
	return s.tree.Snapshot().QuizQuestions
}

func (s *Service) Results() []domain.QuizResult {
	return s.tree.Snapshot().QuizResults
}

func (s *Service) CreateQuestion(ctx context.Context, in QuestionInput) (*domain.QuizQuestion, error) {
	question, options, err := validateQuestion(in)
	if err != nil {
		return nil, err
	}

	s.tree.Lock()
	defer s.tree.Unlock()

	q := domain.QuizQuestion{
		ID:       s.ids.Next(questionIDs(s.tree.QuizQuestions)),
		Question: question,
		Options:  options,
	}
	s.tree.QuizQuestions = append(s.tree.QuizQuestions, q)
	return &q, s.persistQuestions(ctx)
}

func (s *Service) UpdateQuestion(ctx context.Context, id int64, in QuestionInput) (*domain.QuizQuestion, error) {
	question, options, err := validateQuestion(in)
	if err != nil {
		return nil, err
	}

	s.tree.Lock()
	defer s.tree.Unlock()

	for i := range s.tree.QuizQuestions {
		if s.tree.QuizQuestions[i].ID != id {
			continue
		}
		s.tree.QuizQuestions[i].Question = question
		s.tree.QuizQuestions[i].Options = options
		out := s.tree.QuizQuestions[i]
		return &out, s.persistQuestions(ctx)
	}
	return nil, nil
}

func (s *Service) DeleteQuestion(ctx context.Context, id int64, confirm bool) error {
	if !confirm {
		return domain.ErrConfirmationRequired
	}

	s.tree.Lock()
	defer s.tree.Unlock()

	for i := range s.tree.QuizQuestions {
		if s.tree.QuizQuestions[i].ID != id {
			continue
		}
		s.tree.QuizQuestions = append(s.tree.QuizQuestions[:i], s.tree.QuizQuestions[i+1:]...)
		return s.persistQuestions(ctx)
	}
	return nil
}

// AppendResult records a visitor's quiz outcome. Name and result title are
// required; email is optional but must look like an address when present.
func (s *Service) AppendResult(ctx context.Context, in ResultInput) (*domain.QuizResult, error) {
	name := strings.TrimSpace(in.UserName)
	email := strings.TrimSpace(in.UserEmail)
	title := strings.TrimSpace(in.ResultTitle)
	if name == "" || title == "" {
		return nil, fmt.Errorf("name and result title are required: %w", domain.ErrValidation)
	}
	if email != "" && !strings.Contains(email, "@") {
		return nil, fmt.Errorf("invalid email %q: %w", email, domain.ErrValidation)
	}

	s.tree.Lock()
	defer s.tree.Unlock()

	r := domain.QuizResult{
		ID:          s.ids.Next(resultIDs(s.tree.QuizResults)),
		UserName:    name,
		UserEmail:   email,
		ResultTitle: title,
		Timestamp:   s.now().UTC().Format(time.RFC3339),
	}
	s.tree.QuizResults = append(s.tree.QuizResults, r)

	raw, err := json.Marshal(s.tree.QuizResults)
	if err != nil {
		return nil, err
	}
	if err := s.adapter.Write(ctx, store.KeyQuizResults, raw); err != nil {
		s.logger.Printf("quiz: persist results failed: %v", err)
		return &r, fmt.Errorf("persist quiz results: %w", domain.ErrPersistence)
	}
	return &r, nil
}

func validateQuestion(in QuestionInput) (string, []string, error) {
	question := strings.TrimSpace(in.Question)
	if question == "" {
		return "", nil, fmt.Errorf("question text is required: %w", domain.ErrValidation)
	}
	options := make([]string, 0, len(in.Options))
	for _, opt := range in.Options {
		if trimmed := strings.TrimSpace(opt); trimmed != "" {
			options = append(options, trimmed)
		}
	}
	if len(options) < 2 {
		return "", nil, fmt.Errorf("at least two options are required: %w", domain.ErrValidation)
	}
	return question, options, nil
}

func (s *Service) persistQuestions(ctx context.Context) error {
	raw, err := json.Marshal(s.tree.QuizQuestions)
	if err != nil {
		return err
	}
	if err := s.adapter.Write(ctx, store.KeyQuizQuestions, raw); err != nil {
		s.logger.Printf("quiz: persist questions failed: %v", err)
		return fmt.Errorf("persist quiz questions: %w", domain.ErrPersistence)
	}
	return nil
}

func questionIDs(items []domain.QuizQuestion) []int64 {
	ids := make([]int64, len(items))
	for i, q := range items {
		ids[i] = q.ID
	}
	return ids
}

func resultIDs(items []domain.QuizResult) []int64 {
	ids := make([]int64, len(items))
	for i, r := range items {
		ids[i] = r.ID
	}
	return ids
}
