package service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/auroracrm/console/internal/domain/model"
	"github.com/auroracrm/console/internal/errors"
	"github.com/auroracrm/console/internal/ports"
)

// TicketServiceOptions groups dependencies for TicketService.
type TicketServiceOptions struct {
	Tickets ports.TicketAPI
	Logger  *slog.Logger
}

// TicketService covers complaint creation, detail lookup, resolution, and
// the paginated department queue.
type TicketService struct {
	tickets ports.TicketAPI
	logger  *slog.Logger
}

// NewTicketService constructs a TicketService.
func NewTicketService(opts TicketServiceOptions) *TicketService {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &TicketService{tickets: opts.Tickets, logger: logger}
}

// Create validates the complaint form before any upstream call. A missing
// required field is rejected locally with a field-scoped error.
func (s *TicketService) Create(ctx context.Context, req *model.CreateTicketRequest) (*model.Ticket, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	ticket, err := s.tickets.Create(ctx, req)
	if err != nil {
		return nil, err
	}
	s.logger.InfoContext(ctx, "ticket created", "ticket", ticket.Ticket, "consumer", req.ConsumerNo)
	return ticket, nil
}

// Get fetches one ticket by id.
func (s *TicketService) Get(ctx context.Context, ticketID string) (*model.Ticket, error) {
	if strings.TrimSpace(ticketID) == "" {
		return nil, errors.ValidationField("ticketId", "ticket id is required")
	}
	return s.tickets.Get(ctx, ticketID)
}

// Resolve marks a ticket resolved with the given feedback.
func (s *TicketService) Resolve(ctx context.Context, ticketID, feedback string) error {
	if strings.TrimSpace(ticketID) == "" {
		return errors.ValidationField("ticketId", "ticket id is required")
	}
	if strings.TrimSpace(feedback) == "" {
		return errors.ValidationField("feedback", "resolution feedback is required")
	}
	if err := s.tickets.Resolve(ctx, ticketID, feedback); err != nil {
		return err
	}
	s.logger.InfoContext(ctx, "ticket resolved", "ticket", ticketID)
	return nil
}

// Queue fetches one fixed-size page of the department queue. The page
// number defaults to 1.
func (s *TicketService) Queue(ctx context.Context, q model.QueueQuery) (*model.QueuePage, error) {
	if strings.TrimSpace(q.DepartmentID) == "" {
		return nil, errors.ValidationField("departmentId", "department id is required")
	}
	if q.PageNumber < 1 {
		q.PageNumber = 1
	}
	return s.tickets.Queue(ctx, q)
}
