package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"blogchat-backend/internal/domains/account"
)

// postgresRepository implements account.Repository on pgx.
type postgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository returns the account data access layer.
func NewPostgresRepository(pool *pgxpool.Pool) account.Repository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) CreateUser(ctx context.Context, u *account.User) error {
	query := `
		INSERT INTO users (id, username, password_hash, about, picture, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.pool.Exec(ctx, query,
		u.ID,
		u.Username,
		u.PasswordHash,
		u.About,
		u.Picture,
		u.CreatedAt,
	)
	if err != nil {
		// 23505 = unique_violation; the only unique constraint on users
		// is the username.
		if isUniqueViolation(err) {
			return account.ErrUsernameTaken
		}
		return fmt.Errorf("create user: %w", err)
	}

	return nil
}

func (r *postgresRepository) FindPrincipalByUsername(ctx context.Context, username string) (*account.Principal, error) {
	// Author lookup takes precedence: a same-named author shadows the
	// user at login.
	p := &account.Principal{Role: account.RoleAuthor}
	err := r.pool.QueryRow(ctx,
		`SELECT id, username, password_hash FROM authors WHERE username = $1`,
		username,
	).Scan(&p.ID, &p.Username, &p.PasswordHash)
	if err == nil {
		return p, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("find author by username: %w", err)
	}

	p = &account.Principal{Role: account.RoleUser}
	err = r.pool.QueryRow(ctx,
		`SELECT id, username, password_hash FROM users WHERE username = $1`,
		username,
	).Scan(&p.ID, &p.Username, &p.PasswordHash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, account.ErrPrincipalNotFound
		}
		return nil, fmt.Errorf("find user by username: %w", err)
	}

	return p, nil
}

func (r *postgresRepository) FindUserByID(ctx context.Context, id uuid.UUID) (*account.User, error) {
	query := `
		SELECT id, username, password_hash, about, picture, created_at
		FROM users
		WHERE id = $1
	`

	var u account.User
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&u.ID,
		&u.Username,
		&u.PasswordHash,
		&u.About,
		&u.Picture,
		&u.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, account.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user by id: %w", err)
	}

	return &u, nil
}

func (r *postgresRepository) UpdateUserProfile(ctx context.Context, id uuid.UUID, about, picture *string) (*account.User, error) {
	query := `
		UPDATE users
		SET about   = COALESCE($2, about),
		    picture = COALESCE($3, picture)
		WHERE id = $1
		RETURNING id, username, password_hash, about, picture, created_at
	`

	var u account.User
	err := r.pool.QueryRow(ctx, query, id, about, picture).Scan(
		&u.ID,
		&u.Username,
		&u.PasswordHash,
		&u.About,
		&u.Picture,
		&u.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, account.ErrUserNotFound
		}
		return nil, fmt.Errorf("update user profile: %w", err)
	}

	return &u, nil
}

func (r *postgresRepository) ListUsers(ctx context.Context) ([]account.User, error) {
	query := `
		SELECT id, username, password_hash, about, picture, created_at
		FROM users
		ORDER BY username
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var users []account.User
	for rows.Next() {
		var u account.User
		if err := rows.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.About, &u.Picture, &u.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, u)
	}

	return users, rows.Err()
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
