package memory

import (
	"time"

	"github.com/SaiNageswarS/go-api-boot/logger"
	"github.com/docreason/client/schema"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

type Status string

const (
	StatusPending Status = "pending"
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

// Message is one turn in the conversation. User messages are created
// terminal (success) and never change; assistant messages start pending and
// resolve through Update.
type Message struct {
	ID             string
	Role           Role
	Content        string
	Status         Status
	ReasoningSteps []schema.ReasoningStep
	ProcessingTime time.Duration
	CreatedAt      time.Time
}

// MessagePatch is a partial update. Nil fields are left untouched.
type MessagePatch struct {
	Content        *string
	Status         *Status
	ReasoningSteps []schema.ReasoningStep
	ProcessingTime *time.Duration
}

// Conversation is the append-only message log of one session. Messages are
// never removed. Methods are not safe for concurrent use; all mutation
// belongs to the session's control flow.
type Conversation struct {
	messages []Message
}

func NewConversation() *Conversation {
	return &Conversation{}
}

// Append creates a message and returns its id.
func (c *Conversation) Append(role Role, content string, status Status) string {
	id := uuid.NewString()
	c.messages = append(c.messages, Message{
		ID:        id,
		Role:      role,
		Content:   content,
		Status:    status,
		CreatedAt: time.Now(),
	})
	return id
}

// AddUserMessage appends a user turn. User messages are terminal on
// creation.
func (c *Conversation) AddUserMessage(content string) string {
	return c.Append(RoleUser, content, StatusSuccess)
}

// AddPendingAssistantMessage appends an empty assistant placeholder awaiting
// a terminal result.
func (c *Conversation) AddPendingAssistantMessage() string {
	return c.Append(RoleAssistant, "", StatusPending)
}

// Update merges patch into the message with the given id. Returns false if
// no such message exists.
func (c *Conversation) Update(id string, patch MessagePatch) bool {
	for i := range c.messages {
		if c.messages[i].ID != id {
			continue
		}

		msg := &c.messages[i]
		if patch.Content != nil {
			msg.Content = *patch.Content
		}
		if patch.Status != nil {
			msg.Status = *patch.Status
		}
		if patch.ReasoningSteps != nil {
			msg.ReasoningSteps = patch.ReasoningSteps
		}
		if patch.ProcessingTime != nil {
			msg.ProcessingTime = *patch.ProcessingTime
		}
		return true
	}

	logger.Info("Update for unknown message", zap.String("id", id))
	return false
}

// FindPending returns the id of the first pending message in insertion
// order. The coordinator keeps at most one message pending at a time, but
// that convention is not enforced here.
func (c *Conversation) FindPending() (string, bool) {
	for i := range c.messages {
		if c.messages[i].Status == StatusPending {
			return c.messages[i].ID, true
		}
	}
	return "", false
}

// Get returns the message with the given id.
func (c *Conversation) Get(id string) (Message, bool) {
	for i := range c.messages {
		if c.messages[i].ID == id {
			return c.messages[i], true
		}
	}
	return Message{}, false
}

// Messages returns a snapshot of the log in insertion order.
func (c *Conversation) Messages() []Message {
	out := make([]Message, len(c.messages))
	copy(out, c.messages)
	return out
}

func (c *Conversation) Len() int {
	return len(c.messages)
}
