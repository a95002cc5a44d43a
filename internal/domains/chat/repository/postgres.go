package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"blogchat-backend/internal/domains/chat"
)

// postgresRepository implements chat.Repository on pgx.
type postgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository returns the chat data access layer.
func NewPostgresRepository(pool *pgxpool.Pool) chat.Repository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) CreateChat(ctx context.Context, c *chat.Chat) error {
	query := `
		INSERT INTO chats (id, user1_id, user2_id, created_at)
		VALUES ($1, $2, $3, $4)
	`

	_, err := r.pool.Exec(ctx, query, c.ID, c.User1ID, c.User2ID, c.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return chat.ErrChatExists
		}
		return fmt.Errorf("create chat: %w", err)
	}
	return nil
}

func (r *postgresRepository) FindByPair(ctx context.Context, a, b string) (*chat.Chat, error) {
	// Rows are stored normalized, but match either order anyway so a
	// row written before normalization existed is still found.
	query := `
		SELECT id, user1_id, user2_id, created_at
		FROM chats
		WHERE (user1_id = $1 AND user2_id = $2)
		   OR (user1_id = $2 AND user2_id = $1)
	`

	user1ID, user2ID := chat.NormalizePair(a, b)

	var c chat.Chat
	err := r.pool.QueryRow(ctx, query, user1ID, user2ID).Scan(
		&c.ID, &c.User1ID, &c.User2ID, &c.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, chat.ErrChatNotFound
		}
		return nil, fmt.Errorf("find chat by pair: %w", err)
	}

	return &c, nil
}

func (r *postgresRepository) FindByID(ctx context.Context, id string) (*chat.Chat, error) {
	query := `
		SELECT id, user1_id, user2_id, created_at
		FROM chats
		WHERE id = $1
	`

	var c chat.Chat
	err := r.pool.QueryRow(ctx, query, id).Scan(&c.ID, &c.User1ID, &c.User2ID, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, chat.ErrChatNotFound
		}
		return nil, fmt.Errorf("find chat by id: %w", err)
	}

	return &c, nil
}

func (r *postgresRepository) ListByParticipant(ctx context.Context, participantID string) ([]chat.Chat, error) {
	query := `
		SELECT id, user1_id, user2_id, created_at
		FROM chats
		WHERE user1_id = $1 OR user2_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.pool.Query(ctx, query, participantID)
	if err != nil {
		return nil, fmt.Errorf("list chats: %w", err)
	}
	defer rows.Close()

	var chats []chat.Chat
	for rows.Next() {
		var c chat.Chat
		if err := rows.Scan(&c.ID, &c.User1ID, &c.User2ID, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan chat: %w", err)
		}
		chats = append(chats, c)
	}

	return chats, rows.Err()
}

func (r *postgresRepository) CreateMessage(ctx context.Context, m *chat.Message) error {
	query := `
		INSERT INTO messages (id, text, sender_id, chat_id, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.pool.Exec(ctx, query, m.ID, m.Text, m.SenderID, m.ChatID, m.CreatedAt)
	if err != nil {
		return fmt.Errorf("create message: %w", err)
	}
	return nil
}

func (r *postgresRepository) ListMessages(ctx context.Context, chatID string) ([]chat.Message, error) {
	query := `
		SELECT id, text, sender_id, chat_id, created_at
		FROM messages
		WHERE chat_id = $1
		ORDER BY created_at ASC
	`

	rows, err := r.pool.Query(ctx, query, chatID)
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	defer rows.Close()

	var messages []chat.Message
	for rows.Next() {
		var m chat.Message
		if err := rows.Scan(&m.ID, &m.Text, &m.SenderID, &m.ChatID, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan message: %w", err)
		}
		messages = append(messages, m)
	}

	return messages, rows.Err()
}

func (r *postgresRepository) EnsureGlobalChat(ctx context.Context) error {
	query := `
		INSERT INTO chats (id, user1_id, user2_id, created_at)
		VALUES ($1, $2, $2, $3)
		ON CONFLICT (id) DO NOTHING
	`

	_, err := r.pool.Exec(ctx, query, chat.GlobalChatID, chat.SystemParticipant, time.Now())
	if err != nil {
		return fmt.Errorf("ensure global chat: %w", err)
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
