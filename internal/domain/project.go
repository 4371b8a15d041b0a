package domain

// Project status values.
const (
	ProjectPending    = "pending"
	ProjectInProgress = "in_progress"
	ProjectCompleted  = "completed"
)

// Project is a client engagement. Read-mostly: the admin panel lists
// projects and derives statistics but defines no mutation operations.
type Project struct {
	ID          int64  `json:"id"`
	ClientName  string `json:"clientName"`
	ProjectName string `json:"projectName"`
	Service     string `json:"service"`
	Status      string `json:"status"`
	StartDate   string `json:"startDate"`
	Budget      int64  `json:"budget"`
	Progress    int    `json:"progress"`
}
