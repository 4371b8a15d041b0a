package chat

import (
	"strings"
	"time"

	"cema-admin/internal/domain"
	"cema-admin/internal/idgen"
	"cema-admin/internal/state"
)

// Admin identity stamped on outgoing messages.
const (
	adminSenderID   = 1
	adminSenderName = "Admin"
)

// Service handles the chat panel. Chat is deliberately session-only: the
// thread list and messages live in the tree for the lifetime of the admin
// session and are never written to the store.
type Service struct {
	tree *state.Tree
	ids  idgen.Generator
	now  func() time.Time
}

func New(tree *state.Tree, ids idgen.Generator) *Service {
	if ids == nil {
		ids = idgen.Sequential{}
	}
	return &Service{tree: tree, ids: ids, now: time.Now}
}

func (s *Service) Threads() []domain.ChatThread {
	return s.tree.Snapshot().ChatThreads
}

// Messages returns the conversation for a thread: the client's messages
// plus everything the admin sent.
func (s *Service) Messages(threadID int64) []domain.ChatMessage {
	all := s.tree.Snapshot().ChatMessages
	out := make([]domain.ChatMessage, 0, len(all))
	for _, m := range all {
		if m.IsAdmin || m.SenderID == threadID {
			out = append(out, m)
		}
	}
	return out
}

// SelectThread marks a thread as the active conversation and resets its
// unread counter. That is the whole read model: a counter reset, not a
// read receipt. Unknown ids are a silent no-op.
func (s *Service) SelectThread(id int64) *domain.ChatThread {
	s.tree.Lock()
	defer s.tree.Unlock()

	for i := range s.tree.ChatThreads {
		if s.tree.ChatThreads[i].ID != id {
			continue
		}
		s.tree.SelectedThread = id
		s.tree.ChatThreads[i].UnreadCount = 0
		out := s.tree.ChatThreads[i]
		return &out
	}
	return nil
}

// PostMessage appends an admin message to the selected thread. Empty or
// whitespace-only text and the no-selection case are silent no-ops.
func (s *Service) PostMessage(text string) *domain.ChatMessage {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	s.tree.Lock()
	defer s.tree.Unlock()

	if s.tree.SelectedThread == 0 {
		return nil
	}

	ids := make([]int64, len(s.tree.ChatMessages))
	for i, m := range s.tree.ChatMessages {
		ids[i] = m.ID
	}
	m := domain.ChatMessage{
		ID:         s.ids.Next(ids),
		SenderID:   adminSenderID,
		SenderName: adminSenderName,
		Message:    text,
		Timestamp:  s.now().Format(time.RFC3339),
		IsAdmin:    true,
	}
	s.tree.ChatMessages = append(s.tree.ChatMessages, m)
	return &m
}
