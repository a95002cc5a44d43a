package chat

import (
	"context"
)

// Service is the business logic contract for direct messaging.
type Service interface {
	// GetOrCreate returns the chat between the caller and the other
	// participant, creating it if absent. Creation is idempotent on
	// conflict: a concurrent creation for the same pair yields the
	// existing chat instead of an error.
	GetOrCreate(ctx context.Context, callerID string, req CreateChatRequest) (*Chat, error)

	// ListForParticipant returns the caller's chats.
	ListForParticipant(ctx context.Context, participantID string) ([]Chat, error)

	// Get returns a chat with its messages.
	Get(ctx context.Context, chatID string) (*ChatWithMessages, error)

	// PostMessage appends a message sent by the caller.
	PostMessage(ctx context.Context, chatID, senderID string, req CreateMessageRequest) (*Message, error)
}
