package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"blogchat-backend/internal/domains/comment"
)

// postgresRepository implements comment.Repository on pgx.
type postgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository returns the comment data access layer.
func NewPostgresRepository(pool *pgxpool.Pool) comment.Repository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) Create(ctx context.Context, c *comment.Comment) error {
	query := `
		INSERT INTO comments (id, text, parent_id, user_id, author_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.pool.Exec(ctx, query, c.ID, c.Text, c.ParentID, c.UserID, c.AuthorID, c.CreatedAt)
	if err != nil {
		return fmt.Errorf("create comment: %w", err)
	}
	return nil
}

func (r *postgresRepository) ListByParent(ctx context.Context, parentID string) ([]comment.Comment, error) {
	query := `
		SELECT id, text, parent_id, user_id, author_id, created_at
		FROM comments
		WHERE parent_id = $1
		ORDER BY created_at ASC
	`

	rows, err := r.pool.Query(ctx, query, parentID)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	defer rows.Close()

	var comments []comment.Comment
	for rows.Next() {
		var c comment.Comment
		if err := rows.Scan(&c.ID, &c.Text, &c.ParentID, &c.UserID, &c.AuthorID, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan comment: %w", err)
		}
		comments = append(comments, c)
	}

	return comments, rows.Err()
}

func (r *postgresRepository) UpdateText(ctx context.Context, id uuid.UUID, text string) (*comment.Comment, error) {
	query := `
		UPDATE comments
		SET text = $2
		WHERE id = $1
		RETURNING id, text, parent_id, user_id, author_id, created_at
	`

	var c comment.Comment
	err := r.pool.QueryRow(ctx, query, id, text).Scan(
		&c.ID, &c.Text, &c.ParentID, &c.UserID, &c.AuthorID, &c.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, comment.ErrCommentNotFound
		}
		return nil, fmt.Errorf("update comment: %w", err)
	}

	return &c, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) (*comment.Comment, error) {
	query := `
		DELETE FROM comments
		WHERE id = $1
		RETURNING id, text, parent_id, user_id, author_id, created_at
	`

	var c comment.Comment
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&c.ID, &c.Text, &c.ParentID, &c.UserID, &c.AuthorID, &c.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, comment.ErrCommentNotFound
		}
		return nil, fmt.Errorf("delete comment: %w", err)
	}

	return &c, nil
}
