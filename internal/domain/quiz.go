package domain

// QuizQuestion is a design-style quiz question with at least two options.
type QuizQuestion struct {
	ID       int64    `json:"id"`
	Question string   `json:"question"`
	Options  []string `json:"options"`
}

// QuizResult records a visitor's quiz outcome. Write-once, append-only.
type QuizResult struct {
	ID          int64  `json:"id"`
	UserName    string `json:"userName"`
	UserEmail   string `json:"userEmail"`
	ResultTitle string `json:"resultTitle"`
	Timestamp   string `json:"timestamp"`
}
