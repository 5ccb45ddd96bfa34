//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

import "strings"

// Customer is a utility account record from the customer search endpoint.
type Customer struct {
	ConsumerID  string `json:"consumerId"`
	AccountNo   string `json:"accountNo"`
	MeterNo     string `json:"meterNo"`
	Name        string `json:"name"`
	Address     string `json:"address"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	TariffClass string `json:"tariffClass"`
	Status      string `json:"status"`
}

// CustomerSearchQuery is the multi-field fuzzy search input. At least one
// field must be set.
type CustomerSearchQuery struct {
	AccountNo string `json:"accountNo,omitempty"`
	MeterNo   string `json:"meterNo,omitempty"`
	Name      string `json:"name,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Ticket    string `json:"ticket,omitempty"`
}

// Empty reports whether no search field is populated.
func (q CustomerSearchQuery) Empty() bool {
	return strings.TrimSpace(q.AccountNo) == "" &&
		strings.TrimSpace(q.MeterNo) == "" &&
		strings.TrimSpace(q.Name) == "" &&
		strings.TrimSpace(q.Phone) == "" &&
		strings.TrimSpace(q.Ticket) == ""
}

// SearchOutcome classifies a search result set for the entry flow.
type SearchOutcome string

const (
	// SearchOutcomeNone means zero hits: surface a "no records" notice,
	// the entry view stays unreached.
	SearchOutcomeNone SearchOutcome = "none"
	// SearchOutcomeSingle means exactly one hit: auto-select and move
	// straight to the complaint entry view.
	SearchOutcomeSingle SearchOutcome = "single"
	// SearchOutcomeMultiple means more than one hit: present a selection
	// list.
	SearchOutcomeMultiple SearchOutcome = "multiple"
)

// SearchResult pairs the hits with their outcome classification.
type SearchResult struct {
	Outcome   SearchOutcome `json:"outcome"`
	Customers []Customer    `json:"customers"`
}

// ClassifySearch derives the outcome from the number of hits.
func ClassifySearch(customers []Customer) SearchResult {
	switch len(customers) {
	case 0:
		return SearchResult{Outcome: SearchOutcomeNone}
	case 1:
		return SearchResult{Outcome: SearchOutcomeSingle, Customers: customers}
	default:
		return SearchResult{Outcome: SearchOutcomeMultiple, Customers: customers}
	}
}
