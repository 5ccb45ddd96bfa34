//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

import (
	"strings"
	"time"

	"github.com/auroracrm/console/internal/errors"
)

// TicketStatus tracks a complaint through its lifecycle.
type TicketStatus string

const (
	TicketStatusNew        TicketStatus = "New"
	TicketStatusInProgress TicketStatus = "In Progress"
	TicketStatusResolved   TicketStatus = "Resolved"
	TicketStatusApproved   TicketStatus = "Approved"
	TicketStatusClosed     TicketStatus = "Closed"
)

// QueuePageSize is the fixed page size for the department queue. A page
// carrying exactly this many rows implies more pages may exist.
const QueuePageSize = 50

// Ticket is a complaint record as returned by the ticket detail endpoint.
type Ticket struct {
	ID              string     `json:"id"`
	Ticket          string     `json:"ticket"`
	Status          string     `json:"status"`
	IsResolved      bool       `json:"isResolved"`
	ComplaintType   string     `json:"complaintType"`
	ComplaintSub    string     `json:"complaintSubType"`
	Remark          string     `json:"remark,omitempty"`
	DateGenerated   time.Time  `json:"dateGenerated"`
	DateResolved    *time.Time `json:"dateResolved,omitempty"`
	ConsumerID      string     `json:"consumerId"`
	ConsumerName    string     `json:"consumerName"`
	ConsumerAddress string     `json:"consumerAddress"`
	Category        string     `json:"consumerCategory"`
	Mobile          string     `json:"mobileNo"`
	Email           string     `json:"email"`
	MeterNo         string     `json:"meterNo"`
	RouteNumber     string     `json:"routeNumber"`
	MaxDemand       string     `json:"maxDemand"`
	IBC             string     `json:"ibc"`
	BSC             string     `json:"bsc"`
	MediaURL        string     `json:"mediaURL,omitempty"`
}

// QueueTicket is the compact row shape returned by the department queue.
type QueueTicket struct {
	ID          string `json:"id"`
	ConsumerID  string `json:"consumerId"`
	Ticket      string `json:"ticket"`
	Type        string `json:"complaintTypeId"`
	Subtype     string `json:"complaintSubtypeId"`
	Status      string `json:"status"`
	Priority    string `json:"priority"`
	Source      string `json:"source"`
	CreatedDate string `json:"createdDate"`
	MeterNo     string `json:"meterNo"`
	Telephone   string `json:"telephoneNo"`
}

// QueuePage is one page of the department queue. HasMore is inferred
// from a full page; the upstream endpoint does not report totals.
type QueuePage struct {
	Tickets    []QueueTicket `json:"tickets"`
	PageNumber int           `json:"pageNumber"`
	HasMore    bool          `json:"hasMore"`
}

// QueueQuery carries the department queue request parameters.
type QueueQuery struct {
	DepartmentID string
	PageNumber   int
	Status       string
	SearchTerm   string
}

// CreateTicketRequest is the complaint creation form. Required fields are
// enforced here, before any upstream call is made.
type CreateTicketRequest struct {
	ConsumerNo   string `json:"consumerNo"`
	Type         string `json:"complaintTypeId"`
	Subtype      string `json:"complaintSubtypeId"`
	DepartmentID string `json:"departmentId"`
	Priority     string `json:"priority"`
	Mobile       string `json:"mobileNo"`
	Email        string `json:"email"`
	Source       string `json:"source,omitempty"`
	AssignedTo   string `json:"assignedTo,omitempty"`
	Remark       string `json:"remark,omitempty"`
	MediaPath    string `json:"mediaPath,omitempty"`
}

// Validate checks required fields and returns a field-scoped validation
// error for the first one missing.
func (r *CreateTicketRequest) Validate() error {
	required := []struct {
		field string
		value string
	}{
		{"consumerNo", r.ConsumerNo},
		{"complaintTypeId", r.Type},
		{"complaintSubtypeId", r.Subtype},
		{"departmentId", r.DepartmentID},
		{"priority", r.Priority},
		{"mobileNo", r.Mobile},
		{"email", r.Email},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			return errors.ValidationField(f.field, f.field+" is required")
		}
	}
	return nil
}

// ResolveTicketRequest carries the resolution feedback for a ticket.
type ResolveTicketRequest struct {
	Feedback string `json:"feedback"`
}

// Validate rejects blank feedback.
func (r *ResolveTicketRequest) Validate() error {
	if strings.TrimSpace(r.Feedback) == "" {
		return errors.ValidationField("feedback", "feedback is required")
	}
	return nil
}
