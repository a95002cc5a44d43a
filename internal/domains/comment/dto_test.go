package comment

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestCreateCommentRequestCommenterExclusivity(t *testing.T) {
	userID := uuid.New()
	authorID := uuid.New()

	tests := []struct {
		name    string
		req     CreateCommentRequest
		wantErr bool
	}{
		{
			name: "user commenter",
			req:  CreateCommentRequest{Text: "nice post", UserID: &userID},
		},
		{
			name: "author commenter",
			req:  CreateCommentRequest{Text: "thanks", AuthorID: &authorID},
		},
		{
			name:    "both set",
			req:     CreateCommentRequest{Text: "hm", UserID: &userID, AuthorID: &authorID},
			wantErr: true,
		},
		{
			name:    "neither set",
			req:     CreateCommentRequest{Text: "anonymous"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestCreateCommentRequestRequiresText(t *testing.T) {
	userID := uuid.New()
	err := CreateCommentRequest{UserID: &userID}.Validate()
	require.Error(t, err)
}

func TestUpdateCommentRequestRequiresText(t *testing.T) {
	require.Error(t, UpdateCommentRequest{}.Validate())
	require.NoError(t, UpdateCommentRequest{Text: "edited"}.Validate())
}
