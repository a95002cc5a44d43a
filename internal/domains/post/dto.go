package post

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// CreatePostRequest creates a post or draft. The author comes from the
// bearer token, never from the body.
type CreatePostRequest struct {
	ID        string `json:"id" binding:"required"`
	Title     string `json:"title" binding:"required"`
	Text      string `json:"text"`
	Published bool   `json:"published"`
}

func (r CreatePostRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.ID, validation.Required, validation.Length(1, 64)),
		validation.Field(&r.Title, validation.Required, validation.Length(1, 255)),
	)
}

// UpdatePostRequest replaces the mutable fields of a post. CreatedAt is
// settable so authors can backdate, matching the editor contract.
type UpdatePostRequest struct {
	Title     string     `json:"title" binding:"required"`
	Text      string     `json:"text"`
	Published bool       `json:"published"`
	CreatedAt *time.Time `json:"createdAt"`
}

func (r UpdatePostRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required, validation.Length(1, 255)),
	)
}
