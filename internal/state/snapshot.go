package state

import "cema-admin/internal/domain"

// Snapshot is a deep copy of the tree handed to renderers and statistics,
// so rendering never races a mutation and cannot alter state.
type Snapshot struct {
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
	SelectedThread int64
}

func (t *Tree) Snapshot() Snapshot {
	t.mu.Lock()
	defer t.mu.Unlock()

	questions := make([]domain.QuizQuestion, len(t.QuizQuestions))
	for i, q := range t.QuizQuestions {
		q.Options = append([]string(nil), q.Options...)
		questions[i] = q
	}

	calc := t.Calculator
	calc.ServiceMultipliers = copyMap(t.Calculator.ServiceMultipliers)
	calc.MaterialMultipliers = copyMap(t.Calculator.MaterialMultipliers)

	return Snapshot{
		Portfolios:     append([]domain.PortfolioItem(nil), t.Portfolios...),
		Offerings:      append([]domain.ServiceOffering(nil), t.Offerings...),
		Projects:       append([]domain.Project(nil), t.Projects...),
		Users:          append([]domain.UserAccount(nil), t.Users...),
		ChatThreads:    append([]domain.ChatThread(nil), t.ChatThreads...),
		ChatMessages:   append([]domain.ChatMessage(nil), t.ChatMessages...),
		QuizQuestions:  questions,
		QuizResults:    append([]domain.QuizResult(nil), t.QuizResults...),
		Calculator:     calc,
		ActiveTab:      t.ActiveTab,
		SelectedThread: t.SelectedThread,
	}
}

func copyMap(in map[string]float64) map[string]float64 {
	if in == nil {
		return nil
	}
	out := make(map[string]float64, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
