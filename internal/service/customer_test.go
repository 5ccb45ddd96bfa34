package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/auroracrm/console/internal/domain/model"
	"github.com/auroracrm/console/internal/errors"
)

type stubDirectory struct {
	customers []model.Customer
	err       error
	calls     int
}

func (s *stubDirectory) Search(_ context.Context, _ model.CustomerSearchQuery) ([]model.Customer, error) {
	s.calls++
	return s.customers, s.err
}

func TestCustomerService_EmptyQueryRejectedLocally(t *testing.T) {
	dir := &stubDirectory{}
	svc := NewCustomerService(CustomerServiceOptions{Directory: dir})

	_, err := svc.Search(context.Background(), model.CustomerSearchQuery{Name: "   "})
	require.Error(t, err)
	assert.True(t, errors.IsValidation(err))
	assert.Zero(t, dir.calls, "empty queries must not reach the directory")
}

func TestCustomerService_SearchOutcomes(t *testing.T) {
	cases := []struct {
		name    string
		hits    []model.Customer
		outcome model.SearchOutcome
	}{
		{"zero hits", nil, model.SearchOutcomeNone},
		{"single hit", []model.Customer{{ConsumerID: "1"}}, model.SearchOutcomeSingle},
		{"multiple hits", []model.Customer{{ConsumerID: "1"}, {ConsumerID: "2"}}, model.SearchOutcomeMultiple},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := NewCustomerService(CustomerServiceOptions{Directory: &stubDirectory{customers: tc.hits}})
			res, err := svc.Search(context.Background(), model.CustomerSearchQuery{AccountNo: "100"})
			require.NoError(t, err)
			assert.Equal(t, tc.outcome, res.Outcome)
			assert.Len(t, res.Customers, len(tc.hits))
		})
	}
}

func TestCustomerService_UpstreamErrorPassesThrough(t *testing.T) {
	svc := NewCustomerService(CustomerServiceOptions{Directory: &stubDirectory{err: errors.Upstream(503, "registry down")}})

	_, err := svc.Search(context.Background(), model.CustomerSearchQuery{MeterNo: "M-1"})
	require.Error(t, err)
	assert.True(t, errors.IsUpstream(err))
	assert.Contains(t, err.Error(), "registry down")
}
