package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	domainauth "github.com/auroracrm/console/internal/domain/auth"
	"github.com/auroracrm/console/internal/domain/model"
	"github.com/auroracrm/console/internal/errors"
	"github.com/auroracrm/console/internal/ports"
)

// ChatServiceOptions groups dependencies for ChatService.
type ChatServiceOptions struct {
	Chat   ports.ChatAPI
	Logger *slog.Logger
}

// ChatService wraps the internal per-ticket comment thread.
type ChatService struct {
	chat   ports.ChatAPI
	logger *slog.Logger
}

// NewChatService constructs a ChatService.
func NewChatService(opts ChatServiceOptions) *ChatService {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &ChatService{chat: opts.Chat, logger: logger}
}

// Comments lists the full thread for a ticket.
func (s *ChatService) Comments(ctx context.Context, ticketID string) ([]model.Comment, error) {
	if ticketID == "" {
		return nil, errors.ValidationField("ticketId", "ticket id is required")
	}
	return s.chat.Comments(ctx, ticketID)
}

// Insert appends a comment as the given author and returns the echo
// comment for immediate display, stamped locally rather than refetched.
// The upstream insert endpoint does not return the stored row.
func (s *ChatService) Insert(ctx context.Context, ticketID, text string, author domainauth.Profile) (*model.Comment, error) {
	req := model.InsertCommentRequest{
		TicketID: ticketID,
		StaffID:  author.StaffID,
		Text:     text,
	}
	if ticketID == "" {
		return nil, errors.ValidationField("ticketId", "ticket id is required")
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if err := s.chat.Insert(ctx, req); err != nil {
		return nil, err
	}

	echo := &model.Comment{
		ID:         uuid.NewString(),
		StaffID:    author.StaffID,
		Email:      author.Email,
		Text:       text,
		CreatedAt:  time.Now(),
		Optimistic: true,
	}
	s.logger.DebugContext(ctx, "comment inserted", "ticket", ticketID, "staff", author.StaffID)
	return echo, nil
}
