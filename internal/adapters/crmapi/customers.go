package crmapi

import (
	"context"
	"net/url"
	"strings"

	"github.com/auroracrm/console/internal/apiclient"
	"github.com/auroracrm/console/internal/domain/model"
	"github.com/auroracrm/console/internal/ports"
)

const customerSearchPath = "customer/search-filter"

// CustomerDirectory implements ports.CustomerDirectory over the upstream
// search-filter endpoint.
type CustomerDirectory struct {
	client *apiclient.Client
}

var _ ports.CustomerDirectory = (*CustomerDirectory)(nil)

// NewCustomerDirectory constructs a CustomerDirectory.
func NewCustomerDirectory(client *apiclient.Client) *CustomerDirectory {
	return &CustomerDirectory{client: client}
}

// searchEnvelope is the upstream response wrapper.
type searchEnvelope struct {
	Status string           `json:"status"`
	Data   []model.Customer `json:"data"`
}

// Search runs the multi-field fuzzy search. Empty fields are omitted from
// the query string; zero hits is a normal outcome, not an error.
func (d *CustomerDirectory) Search(ctx context.Context, q model.CustomerSearchQuery) ([]model.Customer, error) {
	params := url.Values{}
	setIfPresent(params, "accountNo", q.AccountNo)
	setIfPresent(params, "meterNo", q.MeterNo)
	setIfPresent(params, "name", q.Name)
	setIfPresent(params, "phone", q.Phone)
	setIfPresent(params, "ticket", q.Ticket)

	var env searchEnvelope
	if err := d.client.Get(ctx, customerSearchPath, params, &env); err != nil {
		return nil, err
	}
	return env.Data, nil
}

func setIfPresent(params url.Values, key, value string) {
	if v := strings.TrimSpace(value); v != "" {
		params.Set(key, v)
	}
}
