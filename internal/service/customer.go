package service

import (
	"context"
	"log/slog"

	"github.com/auroracrm/console/internal/domain/model"
	"github.com/auroracrm/console/internal/errors"
	"github.com/auroracrm/console/internal/ports"
)

// CustomerServiceOptions groups dependencies for CustomerService.
type CustomerServiceOptions struct {
	Directory ports.CustomerDirectory
	Logger    *slog.Logger
}

// CustomerService runs the multi-field customer search and classifies the
// outcome for the complaint entry flow.
type CustomerService struct {
	directory ports.CustomerDirectory
	logger    *slog.Logger
}

// NewCustomerService constructs a CustomerService.
func NewCustomerService(opts CustomerServiceOptions) *CustomerService {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &CustomerService{directory: opts.Directory, logger: logger}
}

// Search requires at least one populated field, then classifies the hits
// as none, single, or multiple.
func (s *CustomerService) Search(ctx context.Context, q model.CustomerSearchQuery) (*model.SearchResult, error) {
	if q.Empty() {
		return nil, errors.Validation("at least one search field is required")
	}

	customers, err := s.directory.Search(ctx, q)
	if err != nil {
		return nil, err
	}

	result := model.ClassifySearch(customers)
	s.logger.DebugContext(ctx, "customer search", "outcome", result.Outcome, "hits", len(customers))
	return &result, nil
}
