package crmapi

import (
	"context"
	"net/url"
	"strconv"

	"github.com/auroracrm/console/internal/apiclient"
	"github.com/auroracrm/console/internal/domain/model"
	"github.com/auroracrm/console/internal/errors"
	"github.com/auroracrm/console/internal/ports"
)

const (
	complaintPath   = "complaint"
	ticketPath      = "complaint/ticket/"
	resolvePath     = "complaint-resolution/resolve-complaint/"
	queuePathPrefix = "complaint/department/"
)

// Tickets implements ports.TicketAPI over the complaint endpoints.
type Tickets struct {
	client *apiclient.Client
}

var _ ports.TicketAPI = (*Tickets)(nil)

// NewTickets constructs a Tickets adapter.
func NewTickets(client *apiclient.Client) *Tickets {
	return &Tickets{client: client}
}

type ticketEnvelope struct {
	Data model.Ticket `json:"data"`
}

// queueEnvelope mirrors the upstream double wrapping: the department
// queue nests its rows under data.data.
type queueEnvelope struct {
	Data struct {
		Data []model.QueueTicket `json:"data"`
	} `json:"data"`
}

// Create submits a new complaint. Validation has already happened in the
// service layer; this is purely the wire call.
func (t *Tickets) Create(ctx context.Context, req *model.CreateTicketRequest) (*model.Ticket, error) {
	var env ticketEnvelope
	if err := t.client.Post(ctx, complaintPath, req, &env); err != nil {
		return nil, err
	}
	return &env.Data, nil
}

// Get fetches one ticket by id.
func (t *Tickets) Get(ctx context.Context, ticketID string) (*model.Ticket, error) {
	if ticketID == "" {
		return nil, errors.NotFound("ticket id is required")
	}
	var env ticketEnvelope
	if err := t.client.Get(ctx, ticketPath+url.PathEscape(ticketID), nil, &env); err != nil {
		return nil, err
	}
	return &env.Data, nil
}

// Resolve marks a ticket resolved with the given feedback.
func (t *Tickets) Resolve(ctx context.Context, ticketID, feedback string) error {
	body := map[string]string{"feedback": feedback}
	return t.client.Patch(ctx, resolvePath+url.PathEscape(ticketID), body, nil)
}

// Queue fetches one page of the department queue. Page size is fixed;
// a full page implies more may follow.
func (t *Tickets) Queue(ctx context.Context, q model.QueueQuery) (*model.QueuePage, error) {
	if q.DepartmentID == "" {
		return nil, errors.Validation("department id is required")
	}
	page := q.PageNumber
	if page < 1 {
		page = 1
	}

	params := url.Values{}
	params.Set("pageNumber", strconv.Itoa(page))
	params.Set("PageSize", strconv.Itoa(model.QueuePageSize))
	setIfPresent(params, "status", q.Status)
	setIfPresent(params, "searchTerm", q.SearchTerm)

	var env queueEnvelope
	path := queuePathPrefix + url.PathEscape(q.DepartmentID) + "/status"
	if err := t.client.Get(ctx, path, params, &env); err != nil {
		return nil, err
	}

	rows := env.Data.Data
	return &model.QueuePage{
		Tickets:    rows,
		PageNumber: page,
		HasMore:    len(rows) == model.QueuePageSize,
	}, nil
}
