package crmapi

import (
	"context"
	"net/url"

	"github.com/auroracrm/console/internal/apiclient"
	"github.com/auroracrm/console/internal/domain/model"
	"github.com/auroracrm/console/internal/ports"
)

const (
	priorityPath    = "configuration/priority"
	typesAndSubPath = "configuration/complaint-types-and-sub"
	sourcesPath     = "configuration/sources"
	membersPath     = "employees/regional-department-member"
)

// Lookups implements ports.LookupAPI over the configuration and employee
// endpoints. Each configuration endpoint wraps its list in {data: [...]}.
type Lookups struct {
	client *apiclient.Client
}

var _ ports.LookupAPI = (*Lookups)(nil)

// NewLookups constructs a Lookups adapter.
func NewLookups(client *apiclient.Client) *Lookups {
	return &Lookups{client: client}
}

type optionsEnvelope struct {
	Data []model.ConfigOption `json:"data"`
}

type typesEnvelope struct {
	Data []model.ComplaintType `json:"data"`
}

type employeesEnvelope struct {
	Data []model.Employee `json:"data"`
}

func (l *Lookups) Priorities(ctx context.Context) ([]model.ConfigOption, error) {
	var env optionsEnvelope
	if err := l.client.Get(ctx, priorityPath, nil, &env); err != nil {
		return nil, err
	}
	return env.Data, nil
}

func (l *Lookups) ComplaintTypes(ctx context.Context) ([]model.ComplaintType, error) {
	var env typesEnvelope
	if err := l.client.Get(ctx, typesAndSubPath, nil, &env); err != nil {
		return nil, err
	}
	return env.Data, nil
}

func (l *Lookups) Sources(ctx context.Context) ([]model.ConfigOption, error) {
	var env optionsEnvelope
	if err := l.client.Get(ctx, sourcesPath, nil, &env); err != nil {
		return nil, err
	}
	return env.Data, nil
}

// DepartmentMembers returns the assignees eligible for a department and
// account.
func (l *Lookups) DepartmentMembers(ctx context.Context, departmentID, accountID string) ([]model.Employee, error) {
	params := url.Values{}
	setIfPresent(params, "departmentId", departmentID)
	setIfPresent(params, "accountId", accountID)

	var env employeesEnvelope
	if err := l.client.Get(ctx, membersPath, params, &env); err != nil {
		return nil, err
	}
	return env.Data, nil
}
