//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/auroracrm/console/internal/errors"
)

func TestCreateTicketRequest_Validate(t *testing.T) {
	valid := CreateTicketRequest{
		ConsumerNo:   "100200",
		Type:         "t1",
		Subtype:      "s1",
		DepartmentID: "d1",
		Priority:     "High",
		Mobile:       "5550001111",
		Email:        "ada@example.com",
	}
	require.NoError(t, valid.Validate())

	// Optional fields stay optional.
	withOptionals := valid
	withOptionals.Source = ""
	withOptionals.AssignedTo = ""
	withOptionals.Remark = ""
	require.NoError(t, withOptionals.Validate())

	missing := valid
	missing.Priority = "  "
	err := missing.Validate()
	require.Error(t, err)
	assert.True(t, errors.IsValidation(err))
	assert.Equal(t, "priority", errors.GetField(err))
}

func TestResolveTicketRequest_Validate(t *testing.T) {
	require.NoError(t, (&ResolveTicketRequest{Feedback: "meter replaced"}).Validate())

	err := (&ResolveTicketRequest{Feedback: " "}).Validate()
	require.Error(t, err)
	assert.Equal(t, "feedback", errors.GetField(err))
}

func TestClassifySearch(t *testing.T) {
	assert.Equal(t, SearchOutcomeNone, ClassifySearch(nil).Outcome)
	assert.Equal(t, SearchOutcomeSingle, ClassifySearch([]Customer{{}}).Outcome)
	assert.Equal(t, SearchOutcomeMultiple, ClassifySearch([]Customer{{}, {}, {}}).Outcome)
}

func TestCustomerSearchQuery_Empty(t *testing.T) {
	assert.True(t, CustomerSearchQuery{}.Empty())
	assert.True(t, CustomerSearchQuery{Name: "   "}.Empty())
	assert.False(t, CustomerSearchQuery{MeterNo: "M-1"}.Empty())
}

func TestJoinMediaURL(t *testing.T) {
	assert.Equal(t, "https://media.example.com/files/a.png",
		JoinMediaURL("https://media.example.com", "/files/a.png"))
	assert.Equal(t, "https://media.example.com/files/a.png",
		JoinMediaURL("https://media.example.com/", "files/a.png"))
	assert.Empty(t, JoinMediaURL("https://media.example.com", ""))
}
