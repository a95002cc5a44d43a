package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"blogchat-backend/internal/domains/comment"
)

// fakeRepo is an in-memory comment.Repository.
type fakeRepo struct {
	comments map[uuid.UUID]*comment.Comment
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{comments: map[uuid.UUID]*comment.Comment{}}
}

func (f *fakeRepo) Create(_ context.Context, c *comment.Comment) error {
	f.comments[c.ID] = c
	return nil
}

func (f *fakeRepo) ListByParent(_ context.Context, parentID string) ([]comment.Comment, error) {
	var out []comment.Comment
	for _, c := range f.comments {
		if c.ParentID == parentID {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (f *fakeRepo) UpdateText(_ context.Context, id uuid.UUID, text string) (*comment.Comment, error) {
	c, ok := f.comments[id]
	if !ok {
		return nil, comment.ErrCommentNotFound
	}
	c.Text = text
	return c, nil
}

func (f *fakeRepo) Delete(_ context.Context, id uuid.UUID) (*comment.Comment, error) {
	c, ok := f.comments[id]
	if !ok {
		return nil, comment.ErrCommentNotFound
	}
	delete(f.comments, id)
	return c, nil
}

func TestCreateRejectsAmbiguousCommenter(t *testing.T) {
	repo := newFakeRepo()
	svc := NewCommentService(repo)
	userID := uuid.New()
	authorID := uuid.New()

	_, err := svc.Create(context.Background(), "my-post", comment.CreateCommentRequest{
		Text:     "who wrote this?",
		UserID:   &userID,
		AuthorID: &authorID,
	})
	require.Error(t, err)
	// Nothing reached the store.
	require.Empty(t, repo.comments)
}

func TestCreateAttachesToParent(t *testing.T) {
	repo := newFakeRepo()
	svc := NewCommentService(repo)
	userID := uuid.New()

	c, err := svc.Create(context.Background(), "my-post", comment.CreateCommentRequest{
		Text:   "great read",
		UserID: &userID,
	})
	require.NoError(t, err)
	require.Equal(t, "my-post", c.ParentID)
	require.NotNil(t, c.UserID)
	require.Nil(t, c.AuthorID)

	listed, err := svc.ListByParent(context.Background(), "my-post")
	require.NoError(t, err)
	require.Len(t, listed, 1)
}

func TestUpdateMissingCommentIsNotFound(t *testing.T) {
	svc := NewCommentService(newFakeRepo())

	_, err := svc.Update(context.Background(), uuid.New(), comment.UpdateCommentRequest{Text: "edit"})
	require.ErrorIs(t, err, comment.ErrCommentNotFound)
}

func TestDeleteReturnsRemovedComment(t *testing.T) {
	repo := newFakeRepo()
	svc := NewCommentService(repo)
	authorID := uuid.New()

	created, err := svc.Create(context.Background(), "my-post", comment.CreateCommentRequest{
		Text:     "moderated away",
		AuthorID: &authorID,
	})
	require.NoError(t, err)

	deleted, err := svc.Delete(context.Background(), created.ID)
	require.NoError(t, err)
	require.Equal(t, created.ID, deleted.ID)
	require.Empty(t, repo.comments)
}
