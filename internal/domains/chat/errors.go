package chat

import "errors"

var (
	ErrChatNotFound = errors.New("chat not found")

	// ErrChatExists signals that the unique index on the normalized pair
	// rejected an insert. The service treats this as "somebody else won
	// the race" and re-fetches; it never reaches a client.
	ErrChatExists = errors.New("chat already exists for this pair")
)
