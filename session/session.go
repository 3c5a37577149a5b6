package session

import (
	"time"

	"github.com/docreason/client/docs"
	"github.com/docreason/client/memory"
	"github.com/google/uuid"
)

// Session is one client-side conversation context. It owns the conversation
// log and the document registry for its lifetime; there is no process-wide
// session singleton.
type Session struct {
	ID        string
	CreatedAt time.Time

	Conversation *memory.Conversation
	Documents    *docs.Registry
}

func New() *Session {
	return &Session{
		ID:           uuid.NewString(),
		CreatedAt:    time.Now(),
		Conversation: memory.NewConversation(),
		Documents:    docs.NewRegistry(),
	}
}
