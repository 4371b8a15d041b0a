package domain

// ChatThread is a client conversation summary. The unreadCount and
// lastMessage fields are denormalized and only ever reset, never
// recomputed from the message list.
type ChatThread struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	LastMessage string `json:"lastMessage"`
	UnreadCount int    `json:"unreadCount"`
	Online      bool   `json:"online"`
}

// ChatMessage is a single message. Timestamp is RFC3339 so messages sort
// and parse; the historical locale-formatted string did neither.
type ChatMessage struct {
	ID         int64  `json:"id"`
	SenderID   int64  `json:"senderId"`
	SenderName string `json:"senderName"`
	Message    string `json:"message"`
	Timestamp  string `json:"timestamp"`
	IsAdmin    bool   `json:"isAdmin"`
}
