package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"blogchat-backend/internal/domains/post"
	"blogchat-backend/pkg/cache"
	"blogchat-backend/pkg/database"
)

// postCacheTTL bounds staleness of single-post reads. Writes invalidate
// eagerly, so the TTL only matters for out-of-band schema edits.
const postCacheTTL = 15 * time.Minute

// postgresRepository implements post.Repository with a cache-aside read
// path for single posts.
type postgresRepository struct {
	pool  *pgxpool.Pool
	cache cache.Cache
}

// NewPostgresRepository returns the post data access layer.
func NewPostgresRepository(pool *pgxpool.Pool, c cache.Cache) post.Repository {
	return &postgresRepository{pool: pool, cache: c}
}

func cacheKey(id string) string {
	return "post:" + id
}

func (r *postgresRepository) Create(ctx context.Context, p *post.Post) error {
	query := `
		INSERT INTO posts (id, title, text, published, created_at, author_id)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.pool.Exec(ctx, query, p.ID, p.Title, p.Text, p.Published, p.CreatedAt, p.AuthorID)
	if err != nil {
		if isUniqueViolation(err) {
			return post.ErrTitleTaken
		}
		return fmt.Errorf("create post: %w", err)
	}

	return nil
}

func (r *postgresRepository) FindByID(ctx context.Context, id string) (*post.Post, error) {
	var p post.Post
	if found, err := r.cache.Get(ctx, cacheKey(id), &p); err == nil && found {
		return &p, nil
	}

	query := `
		SELECT id, title, text, published, created_at, author_id
		FROM posts
		WHERE id = $1
	`

	err := r.pool.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.Title, &p.Text, &p.Published, &p.CreatedAt, &p.AuthorID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, post.ErrPostNotFound
		}
		return nil, fmt.Errorf("find post by id: %w", err)
	}

	// Cache failures must not fail the read.
	_ = r.cache.Set(ctx, cacheKey(id), &p, postCacheTTL)

	return &p, nil
}

func (r *postgresRepository) ListPublished(ctx context.Context) ([]post.Post, error) {
	query := `
		SELECT id, title, text, published, created_at, author_id
		FROM posts
		WHERE published = TRUE
		ORDER BY created_at DESC
	`
	return r.queryPosts(ctx, query)
}

func (r *postgresRepository) ListByAuthor(ctx context.Context, authorID uuid.UUID) ([]post.Post, error) {
	query := `
		SELECT id, title, text, published, created_at, author_id
		FROM posts
		WHERE author_id = $1
		ORDER BY created_at DESC
	`
	return r.queryPosts(ctx, query, authorID)
}

func (r *postgresRepository) Update(ctx context.Context, p *post.Post) (*post.Post, error) {
	query := `
		UPDATE posts
		SET title = $3, text = $4, published = $5, created_at = $6
		WHERE id = $1 AND author_id = $2
		RETURNING id, title, text, published, created_at, author_id
	`

	var updated post.Post
	err := r.pool.QueryRow(ctx, query,
		p.ID, p.AuthorID, p.Title, p.Text, p.Published, p.CreatedAt,
	).Scan(
		&updated.ID, &updated.Title, &updated.Text, &updated.Published,
		&updated.CreatedAt, &updated.AuthorID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, post.ErrPostNotFound
		}
		if isUniqueViolation(err) {
			return nil, post.ErrTitleTaken
		}
		return nil, fmt.Errorf("update post: %w", err)
	}

	_ = r.cache.Delete(ctx, cacheKey(p.ID))

	return &updated, nil
}

// Delete removes a post together with its comments. Comments reference
// their post, so both deletes happen in one transaction, with ownership
// checked first so a wrong author never touches the comments.
func (r *postgresRepository) Delete(ctx context.Context, id string, authorID uuid.UUID) error {
	err := database.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		var owned string
		err := tx.QueryRow(ctx,
			`SELECT id FROM posts WHERE id = $1 AND author_id = $2 FOR UPDATE`,
			id, authorID,
		).Scan(&owned)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return post.ErrPostNotFound
			}
			return fmt.Errorf("lock post: %w", err)
		}

		if _, err := tx.Exec(ctx, `DELETE FROM comments WHERE parent_id = $1`, id); err != nil {
			return fmt.Errorf("delete post comments: %w", err)
		}

		if _, err := tx.Exec(ctx, `DELETE FROM posts WHERE id = $1`, id); err != nil {
			return fmt.Errorf("delete post: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	_ = r.cache.Delete(ctx, cacheKey(id))

	return nil
}

func (r *postgresRepository) queryPosts(ctx context.Context, query string, args ...interface{}) ([]post.Post, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query posts: %w", err)
	}
	defer rows.Close()

	var posts []post.Post
	for rows.Next() {
		var p post.Post
		if err := rows.Scan(&p.ID, &p.Title, &p.Text, &p.Published, &p.CreatedAt, &p.AuthorID); err != nil {
			return nil, fmt.Errorf("scan post: %w", err)
		}
		posts = append(posts, p)
	}

	return posts, rows.Err()
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
