package chat

import (
	"context"
)

// Repository is the data access contract for chats and messages.
type Repository interface {
	// CreateChat inserts a chat whose pair is already normalized.
	// Returns ErrChatExists when the unique index on the pair rejects
	// the insert.
	CreateChat(ctx context.Context, c *Chat) error

	// FindByPair returns the chat for an unordered pair of participants,
	// or ErrChatNotFound.
	FindByPair(ctx context.Context, a, b string) (*Chat, error)

	// FindByID returns a chat or ErrChatNotFound.
	FindByID(ctx context.Context, id string) (*Chat, error)

	// ListByParticipant returns every chat the given principal takes
	// part in.
	ListByParticipant(ctx context.Context, participantID string) ([]Chat, error)

	// CreateMessage appends a message to its chat.
	CreateMessage(ctx context.Context, m *Message) error

	// ListMessages returns a chat's messages in creation order.
	ListMessages(ctx context.Context, chatID string) ([]Message, error)

	// EnsureGlobalChat idempotently seeds the GLOBAL_CHAT row.
	EnsureGlobalChat(ctx context.Context) error
}
