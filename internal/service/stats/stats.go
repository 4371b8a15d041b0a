// Package stats derives the overview numbers from a state snapshot. The
// fold is pure and recomputed on every render; the collections are far too
// small for caching to matter.
package stats

import (
	"cema-admin/internal/domain"
	"cema-admin/internal/state"
)

type Stats struct {
	TotalProjects     int   `json:"totalProjects"`
	ActiveProjects    int   `json:"activeProjects"`
	CompletedProjects int   `json:"completedProjects"`
	TotalClients      int   `json:"totalClients"`
	TotalRevenue      int64 `json:"totalRevenue"`
	TotalQuizResults  int   `json:"totalQuizResults"`
}

func Compute(snap state.Snapshot) Stats {
	s := Stats{
		TotalProjects:    len(snap.Projects),
		TotalQuizResults: len(snap.QuizResults),
	}
	for _, p := range snap.Projects {
		switch p.Status {
		case domain.ProjectInProgress:
			s.ActiveProjects++
		case domain.ProjectCompleted:
			s.CompletedProjects++
		}
		s.TotalRevenue += p.Budget
	}
	for _, u := range snap.Users {
		if u.Role == domain.RoleClient {
			s.TotalClients++
		}
	}
	return s
}
