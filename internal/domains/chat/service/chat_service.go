package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"blogchat-backend/internal/domains/chat"
)

// chatService implements chat.Service.
type chatService struct {
	repo chat.Repository
}

// NewChatService builds the chat business logic layer.
func NewChatService(repo chat.Repository) chat.Service {
	return &chatService{repo: repo}
}

func (s *chatService) GetOrCreate(ctx context.Context, callerID string, req chat.CreateChatRequest) (*chat.Chat, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.repo.FindByPair(ctx, callerID, req.OtherUserID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, chat.ErrChatNotFound) {
		return nil, err
	}

	user1ID, user2ID := chat.NormalizePair(callerID, req.OtherUserID)
	c := &chat.Chat{
		ID:        uuid.NewString(),
		User1ID:   user1ID,
		User2ID:   user2ID,
		CreatedAt: time.Now(),
	}

	err = s.repo.CreateChat(ctx, c)
	if err == nil {
		return c, nil
	}

	// Lost the lookup-then-create race: a concurrent call inserted the
	// same pair first. The unique index makes this loser-safe, so just
	// return the winner's row.
	if errors.Is(err, chat.ErrChatExists) {
		return s.repo.FindByPair(ctx, callerID, req.OtherUserID)
	}

	return nil, err
}

func (s *chatService) ListForParticipant(ctx context.Context, participantID string) ([]chat.Chat, error) {
	return s.repo.ListByParticipant(ctx, participantID)
}

func (s *chatService) Get(ctx context.Context, chatID string) (*chat.ChatWithMessages, error) {
	c, err := s.repo.FindByID(ctx, chatID)
	if err != nil {
		return nil, err
	}

	messages, err := s.repo.ListMessages(ctx, chatID)
	if err != nil {
		return nil, err
	}

	return &chat.ChatWithMessages{Chat: *c, Messages: messages}, nil
}

func (s *chatService) PostMessage(ctx context.Context, chatID, senderID string, req chat.CreateMessageRequest) (*chat.Message, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// The chat must exist; messages never create channels implicitly.
	if _, err := s.repo.FindByID(ctx, chatID); err != nil {
		return nil, err
	}

	m := &chat.Message{
		ID:        uuid.NewString(),
		Text:      req.Text,
		SenderID:  senderID,
		ChatID:    chatID,
		CreatedAt: time.Now(),
	}

	if err := s.repo.CreateMessage(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}
