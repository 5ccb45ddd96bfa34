package service

import (
	"context"
	"log/slog"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/auroracrm/console/internal/domain/model"
	"github.com/auroracrm/console/internal/errors"
	"github.com/auroracrm/console/internal/ports"
)

// FormOptionsServiceOptions groups dependencies for FormOptionsService.
type FormOptionsServiceOptions struct {
	Lookups ports.LookupAPI
	Logger  *slog.Logger
}

// FormOptionsService aggregates the dropdown configuration used by the
// complaint entry form.
type FormOptionsService struct {
	lookups ports.LookupAPI
	logger  *slog.Logger
}

// NewFormOptionsService constructs a FormOptionsService.
func NewFormOptionsService(opts FormOptionsServiceOptions) *FormOptionsService {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &FormOptionsService{lookups: opts.Lookups, logger: logger}
}

// Options fetches priorities, complaint types, and sources concurrently.
// Any single failure fails the whole aggregate.
func (s *FormOptionsService) Options(ctx context.Context) (*model.FormOptions, error) {
	var opts model.FormOptions

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		priorities, err := s.lookups.Priorities(ctx)
		if err != nil {
			return err
		}
		opts.Priorities = priorities
		return nil
	})
	g.Go(func() error {
		types, err := s.lookups.ComplaintTypes(ctx)
		if err != nil {
			return err
		}
		opts.Types = types
		return nil
	})
	g.Go(func() error {
		sources, err := s.lookups.Sources(ctx)
		if err != nil {
			return err
		}
		opts.Sources = sources
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &opts, nil
}

// Employees lists eligible assignees for a department.
func (s *FormOptionsService) Employees(ctx context.Context, departmentID, accountID string) ([]model.Employee, error) {
	if strings.TrimSpace(departmentID) == "" {
		return nil, errors.ValidationField("departmentId", "department id is required")
	}
	return s.lookups.DepartmentMembers(ctx, departmentID, accountID)
}
