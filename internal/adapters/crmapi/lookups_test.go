package crmapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookups_ComplaintTypesWithSubtypes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/configuration/complaint-types-and-sub", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"data": [
				{"id": "1", "name": "Billing", "subTypes": [
					{"id": "11", "name": "Overcharge"},
					{"id": "12", "name": "Missing bill"}
				]},
				{"id": "2", "name": "Supply", "subTypes": []}
			]
		}`))
	}))
	defer srv.Close()

	lookups := NewLookups(newClient(t, srv.URL))
	types, err := lookups.ComplaintTypes(context.Background())
	require.NoError(t, err)
	require.Len(t, types, 2)
	assert.Equal(t, "Billing", types[0].Name)
	require.Len(t, types[0].Subtypes, 2)
	assert.Equal(t, "Overcharge", types[0].Subtypes[0].Name)
	assert.Empty(t, types[1].Subtypes)
}

func TestLookups_DepartmentMembers(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/employees/regional-department-member", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "dept-9", q.Get("departmentId"))
		assert.Equal(t, "ACC-1", q.Get("accountId"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data": [{"staffId": "S-1", "name": "Field Tech"}]}`))
	}))
	defer srv.Close()

	lookups := NewLookups(newClient(t, srv.URL))
	members, err := lookups.DepartmentMembers(context.Background(), "dept-9", "ACC-1")
	require.NoError(t, err)
	require.Len(t, members, 1)
	assert.Equal(t, "Field Tech", members[0].Name)
}
