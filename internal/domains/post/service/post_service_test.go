package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"blogchat-backend/internal/domains/post"
)

// fakeRepo is an in-memory post.Repository.
type fakeRepo struct {
	posts map[string]*post.Post
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{posts: map[string]*post.Post{}}
}

func (f *fakeRepo) Create(_ context.Context, p *post.Post) error {
	for _, existing := range f.posts {
		if existing.Title == p.Title {
			return post.ErrTitleTaken
		}
	}
	f.posts[p.ID] = p
	return nil
}

func (f *fakeRepo) FindByID(_ context.Context, id string) (*post.Post, error) {
	p, ok := f.posts[id]
	if !ok {
		return nil, post.ErrPostNotFound
	}
	return p, nil
}

func (f *fakeRepo) ListPublished(_ context.Context) ([]post.Post, error) {
	var out []post.Post
	for _, p := range f.posts {
		if p.Published {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListByAuthor(_ context.Context, authorID uuid.UUID) ([]post.Post, error) {
	var out []post.Post
	for _, p := range f.posts {
		if p.AuthorID == authorID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakeRepo) Update(_ context.Context, p *post.Post) (*post.Post, error) {
	existing, ok := f.posts[p.ID]
	if !ok || existing.AuthorID != p.AuthorID {
		return nil, post.ErrPostNotFound
	}
	f.posts[p.ID] = p
	return p, nil
}

func (f *fakeRepo) Delete(_ context.Context, id string, authorID uuid.UUID) error {
	existing, ok := f.posts[id]
	if !ok || existing.AuthorID != authorID {
		return post.ErrPostNotFound
	}
	delete(f.posts, id)
	return nil
}

func TestGetPublishedHidesDrafts(t *testing.T) {
	repo := newFakeRepo()
	svc := NewPostService(repo)
	authorID := uuid.New()

	_, err := svc.Create(context.Background(), authorID, post.CreatePostRequest{
		ID:    "my-draft",
		Title: "Work in progress",
	})
	require.NoError(t, err)

	// The draft is invisible on the public surface but real on the
	// author's.
	_, err = svc.GetPublished(context.Background(), "my-draft")
	require.ErrorIs(t, err, post.ErrPostNotFound)

	p, err := svc.Get(context.Background(), "my-draft")
	require.NoError(t, err)
	require.False(t, p.Published)
}

func TestListPublishedExcludesDrafts(t *testing.T) {
	repo := newFakeRepo()
	svc := NewPostService(repo)
	authorID := uuid.New()

	_, err := svc.Create(context.Background(), authorID, post.CreatePostRequest{
		ID: "draft", Title: "Draft",
	})
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), authorID, post.CreatePostRequest{
		ID: "live", Title: "Live", Published: true,
	})
	require.NoError(t, err)

	published, err := svc.ListPublished(context.Background())
	require.NoError(t, err)
	require.Len(t, published, 1)
	require.Equal(t, "live", published[0].ID)

	mine, err := svc.ListByAuthor(context.Background(), authorID)
	require.NoError(t, err)
	require.Len(t, mine, 2)
}

func TestCreateDuplicateTitle(t *testing.T) {
	repo := newFakeRepo()
	svc := NewPostService(repo)
	authorID := uuid.New()

	_, err := svc.Create(context.Background(), authorID, post.CreatePostRequest{
		ID: "one", Title: "Same Title",
	})
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), authorID, post.CreatePostRequest{
		ID: "two", Title: "Same Title",
	})
	require.ErrorIs(t, err, post.ErrTitleTaken)
}

func TestUpdatePreservesCreatedAtWhenNotBackdated(t *testing.T) {
	repo := newFakeRepo()
	svc := NewPostService(repo)
	authorID := uuid.New()

	created, err := svc.Create(context.Background(), authorID, post.CreatePostRequest{
		ID: "my-post", Title: "Original",
	})
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), authorID, "my-post", post.UpdatePostRequest{
		Title: "Edited", Published: true,
	})
	require.NoError(t, err)
	require.Equal(t, created.CreatedAt, updated.CreatedAt)
	require.True(t, updated.Published)
}

func TestUpdateBackdatesExplicitly(t *testing.T) {
	repo := newFakeRepo()
	svc := NewPostService(repo)
	authorID := uuid.New()

	_, err := svc.Create(context.Background(), authorID, post.CreatePostRequest{
		ID: "my-post", Title: "Original",
	})
	require.NoError(t, err)

	backdate := time.Date(2020, 1, 2, 3, 4, 5, 0, time.UTC)
	updated, err := svc.Update(context.Background(), authorID, "my-post", post.UpdatePostRequest{
		Title: "Edited", CreatedAt: &backdate,
	})
	require.NoError(t, err)
	require.Equal(t, backdate, updated.CreatedAt)
}

func TestUpdateOtherAuthorsPostIsNotFound(t *testing.T) {
	repo := newFakeRepo()
	svc := NewPostService(repo)

	_, err := svc.Create(context.Background(), uuid.New(), post.CreatePostRequest{
		ID: "theirs", Title: "Not Yours",
	})
	require.NoError(t, err)

	_, err = svc.Update(context.Background(), uuid.New(), "theirs", post.UpdatePostRequest{Title: "Hijack"})
	require.ErrorIs(t, err, post.ErrPostNotFound)

	err = svc.Delete(context.Background(), uuid.New(), "theirs")
	require.ErrorIs(t, err, post.ErrPostNotFound)
}
