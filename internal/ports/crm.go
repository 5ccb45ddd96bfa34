package ports

import (
	"context"
	"io"

	"github.com/auroracrm/console/internal/domain/model"
)

// CustomerDirectory searches the upstream customer registry.
type CustomerDirectory interface {
	Search(ctx context.Context, q model.CustomerSearchQuery) ([]model.Customer, error)
}

// TicketAPI covers complaint creation, lookup, resolution, and the
// paginated department queue.
type TicketAPI interface {
	Create(ctx context.Context, req *model.CreateTicketRequest) (*model.Ticket, error)
	Get(ctx context.Context, ticketID string) (*model.Ticket, error)
	Resolve(ctx context.Context, ticketID, feedback string) error
	Queue(ctx context.Context, q model.QueueQuery) (*model.QueuePage, error)
}

// LookupAPI fetches the dropdown configuration lists and eligible
// assignees.
type LookupAPI interface {
	Priorities(ctx context.Context) ([]model.ConfigOption, error)
	ComplaintTypes(ctx context.Context) ([]model.ComplaintType, error)
	Sources(ctx context.Context) ([]model.ConfigOption, error)
	DepartmentMembers(ctx context.Context, departmentID, accountID string) ([]model.Employee, error)
}

// ChatAPI is the internal comment service on a ticket. Plain fetch and
// append; no pagination, no delivery acknowledgment beyond HTTP success.
type ChatAPI interface {
	Comments(ctx context.Context, ticketID string) ([]model.Comment, error)
	Insert(ctx context.Context, req model.InsertCommentRequest) error
}

// UploadInput carries one multipart file upload.
type UploadInput struct {
	FileName   string
	File       io.Reader
	UploadedBy string
	AppID      string
}

// Uploader sends a file to the upload service and returns the
// server-relative path plus displayable URL.
type Uploader interface {
	Upload(ctx context.Context, in UploadInput) (*model.UploadResult, error)
}
