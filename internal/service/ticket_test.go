package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/auroracrm/console/internal/domain/model"
	"github.com/auroracrm/console/internal/errors"
)

type stubTicketAPI struct {
	ticket      *model.Ticket
	page        *model.QueuePage
	err         error
	createCalls int
	lastQueue   model.QueueQuery
}

func (s *stubTicketAPI) Create(_ context.Context, _ *model.CreateTicketRequest) (*model.Ticket, error) {
	s.createCalls++
	return s.ticket, s.err
}

func (s *stubTicketAPI) Get(_ context.Context, _ string) (*model.Ticket, error) {
	return s.ticket, s.err
}

func (s *stubTicketAPI) Resolve(_ context.Context, _, _ string) error { return s.err }

func (s *stubTicketAPI) Queue(_ context.Context, q model.QueueQuery) (*model.QueuePage, error) {
	s.lastQueue = q
	return s.page, s.err
}

func validCreateRequest() *model.CreateTicketRequest {
	return &model.CreateTicketRequest{
		ConsumerNo:   "100200",
		Type:         "t1",
		Subtype:      "s1",
		DepartmentID: "d1",
		Priority:     "High",
		Mobile:       "5550001111",
		Email:        "ada@example.com",
	}
}

func TestTicketService_CreateMissingFieldSkipsNetwork(t *testing.T) {
	api := &stubTicketAPI{}
	svc := NewTicketService(TicketServiceOptions{Tickets: api})

	fields := []struct {
		name  string
		strip func(*model.CreateTicketRequest)
	}{
		{"consumerNo", func(r *model.CreateTicketRequest) { r.ConsumerNo = "" }},
		{"complaintTypeId", func(r *model.CreateTicketRequest) { r.Type = "" }},
		{"complaintSubtypeId", func(r *model.CreateTicketRequest) { r.Subtype = "" }},
		{"departmentId", func(r *model.CreateTicketRequest) { r.DepartmentID = "" }},
		{"priority", func(r *model.CreateTicketRequest) { r.Priority = "" }},
		{"mobileNo", func(r *model.CreateTicketRequest) { r.Mobile = "" }},
		{"email", func(r *model.CreateTicketRequest) { r.Email = "" }},
	}
	for _, f := range fields {
		t.Run(f.name, func(t *testing.T) {
			req := validCreateRequest()
			f.strip(req)
			_, err := svc.Create(context.Background(), req)
			require.Error(t, err)
			assert.True(t, errors.IsValidation(err))
			assert.Equal(t, f.name, errors.GetField(err))
		})
	}
	assert.Zero(t, api.createCalls, "invalid forms must not reach the API")
}

func TestTicketService_CreateValid(t *testing.T) {
	api := &stubTicketAPI{ticket: &model.Ticket{ID: "42", Ticket: "TKT-42"}}
	svc := NewTicketService(TicketServiceOptions{Tickets: api})

	ticket, err := svc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)
	assert.Equal(t, "TKT-42", ticket.Ticket)
	assert.Equal(t, 1, api.createCalls)
}

func TestTicketService_ResolveRequiresFeedback(t *testing.T) {
	svc := NewTicketService(TicketServiceOptions{Tickets: &stubTicketAPI{}})

	err := svc.Resolve(context.Background(), "42", "  ")
	require.Error(t, err)
	assert.Equal(t, "feedback", errors.GetField(err))

	err = svc.Resolve(context.Background(), "", "done")
	require.Error(t, err)
	assert.Equal(t, "ticketId", errors.GetField(err))
}

func TestTicketService_QueueDefaultsPageNumber(t *testing.T) {
	api := &stubTicketAPI{page: &model.QueuePage{PageNumber: 1}}
	svc := NewTicketService(TicketServiceOptions{Tickets: api})

	_, err := svc.Queue(context.Background(), model.QueueQuery{DepartmentID: "d1"})
	require.NoError(t, err)
	assert.Equal(t, 1, api.lastQueue.PageNumber)

	_, err = svc.Queue(context.Background(), model.QueueQuery{DepartmentID: "d1", PageNumber: 3})
	require.NoError(t, err)
	assert.Equal(t, 3, api.lastQueue.PageNumber)
}

func TestTicketService_QueueRequiresDepartment(t *testing.T) {
	svc := NewTicketService(TicketServiceOptions{Tickets: &stubTicketAPI{}})

	_, err := svc.Queue(context.Background(), model.QueueQuery{})
	require.Error(t, err)
	assert.Equal(t, "departmentId", errors.GetField(err))
}
