package comment

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

// CreateCommentRequest adds a comment to a post. Exactly one of
// UserID/AuthorID must be set; violating this is a client error (400), not
// a constraint blowup in the store.
type CreateCommentRequest struct {
	Text     string     `json:"text" binding:"required"`
	UserID   *uuid.UUID `json:"userId"`
	AuthorID *uuid.UUID `json:"authorId"`
}

func (r CreateCommentRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Text, validation.Required.Error("text is required"), validation.Length(1, 5000)),
		validation.Field(&r.UserID, validation.By(func(interface{}) error {
			if (r.UserID == nil) == (r.AuthorID == nil) {
				return errors.New("exactly one of userId or authorId must be set")
			}
			return nil
		})),
	)
}

// UpdateCommentRequest replaces a comment's text.
type UpdateCommentRequest struct {
	Text string `json:"text" binding:"required"`
}

func (r UpdateCommentRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Text, validation.Required.Error("text is required"), validation.Length(1, 5000)),
	)
}
