package chat

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// CreateChatRequest opens (or returns) the chat between the caller and
// another participant.
type CreateChatRequest struct {
	OtherUserID string `json:"otherUserId" binding:"required"`
}

func (r CreateChatRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.OtherUserID, validation.Required.Error("otherUserId is required")),
	)
}

// CreateMessageRequest appends a message to a chat. The sender comes from
// the bearer token.
type CreateMessageRequest struct {
	Text string `json:"text" binding:"required"`
}

func (r CreateMessageRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Text, validation.Required.Error("text is required"), validation.Length(1, 5000)),
	)
}

// ChatWithMessages is the detail view of a chat.
type ChatWithMessages struct {
	Chat     Chat      `json:"chat"`
	Messages []Message `json:"messages"`
}
