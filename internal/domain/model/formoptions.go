//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

// ConfigOption is one dropdown entry from the configuration endpoints.
type ConfigOption struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ComplaintType pairs a complaint type with its subtypes, as returned by
// the combined types-and-sub endpoint.
type ComplaintType struct {
	ID       string         `json:"id"`
	Name     string         `json:"name"`
	Subtypes []ConfigOption `json:"subTypes"`
}

// FormOptions bundles every dropdown the complaint entry form needs.
// The three lookups are independent and fetched concurrently.
type FormOptions struct {
	Priorities []ConfigOption  `json:"priorities"`
	Types      []ComplaintType `json:"types"`
	Sources    []ConfigOption  `json:"sources"`
}

// Employee is an eligible assignee from the regional department listing.
type Employee struct {
	StaffID    string `json:"staffId"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Department string `json:"departmentId"`
}
