package domain

// PortfolioItem is a completed project shown in the public portfolio.
// JSON tags match the historical browser-storage payloads so persisted
// documents round-trip unchanged.
type PortfolioItem struct {
	ID             int64  `json:"id"`
	Title          string `json:"title"`
	Category       string `json:"category"`
	ImageURL       string `json:"imageUrl"`
	Description    string `json:"description"`
	CompletedDate  string `json:"completedDate"`
	ShowOnHomepage bool   `json:"showOnHomepage"`
	IsActive       bool   `json:"isActive"`
}
