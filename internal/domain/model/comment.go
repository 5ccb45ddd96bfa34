//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

import (
	"strings"
	"time"

	"github.com/auroracrm/console/internal/errors"
)

// Comment is one internal chat message on a ticket. The upstream comment
// service uses upper-snake field names; they are mapped here once.
type Comment struct {
	// ID is assigned locally for optimistic rows; the comment service
	// itself does not return row identifiers.
	ID         string    `json:"id,omitempty"`
	StaffID    string    `json:"STAFF_ID"`
	Email      string    `json:"EMAIL_ADDRESS"`
	Text       string    `json:"TEXT"`
	CreatedAt  time.Time `json:"CREATED_AT"`
	Optimistic bool      `json:"optimistic,omitempty"`
}

// InsertCommentRequest is the outbound comment shape.
type InsertCommentRequest struct {
	TicketID string `json:"TicketId"`
	StaffID  string `json:"StaffId"`
	Text     string `json:"Text"`
}

// Validate rejects blank comment text.
func (r *InsertCommentRequest) Validate() error {
	if strings.TrimSpace(r.Text) == "" {
		return errors.ValidationField("text", "comment text is required")
	}
	return nil
}
