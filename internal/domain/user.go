package domain

// User roles.
const (
	RoleAdmin  = "admin"
	RoleClient = "client"
)

// UserAccount is seeded from the remote user directory at session start.
// Mutations are applied locally only after the corresponding directory
// call reports success.
type UserAccount struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	JoinDate string `json:"joinDate"`
	Status   string `json:"status"`
}
