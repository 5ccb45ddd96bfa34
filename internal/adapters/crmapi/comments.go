package crmapi

import (
	"context"
	"net/url"

	"github.com/auroracrm/console/internal/apiclient"
	"github.com/auroracrm/console/internal/domain/model"
	"github.com/auroracrm/console/internal/ports"
)

const (
	commentsPath      = "crmcomment/getcomments"
	insertCommentPath = "crmcomment/InsertComment"
)

// Chat implements ports.ChatAPI over the comment service. The comment
// service lives on its own host, so Chat takes its own client.
type Chat struct {
	client *apiclient.Client
}

var _ ports.ChatAPI = (*Chat)(nil)

// NewChat constructs a Chat adapter.
func NewChat(client *apiclient.Client) *Chat {
	return &Chat{client: client}
}

// Comments returns the full comment list for a ticket. No pagination.
func (c *Chat) Comments(ctx context.Context, ticketID string) ([]model.Comment, error) {
	params := url.Values{}
	params.Set("ticketId", ticketID)

	var comments []model.Comment
	if err := c.client.Get(ctx, commentsPath, params, &comments); err != nil {
		return nil, err
	}
	return comments, nil
}

// Insert appends one comment. There is no delivery acknowledgment beyond
// HTTP success.
func (c *Chat) Insert(ctx context.Context, req model.InsertCommentRequest) error {
	return c.client.Post(ctx, insertCommentPath, req, nil)
}
