package employee_test

import (
	"encoding/json"
	"salondash/shared/employee"
	"testing"

	"github.com/stretchr/testify/assert"
)

func decode(t *testing.T, raw string) map[string]any {
	t.Helper()

	var out map[string]any
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		t.Fatalf("bad fixture: %v", err)
	}

	return out
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name     string
		booking  string
		expected string
	}{
		{"nested full name", `{"employee":{"full_name":"Sara"}}`, "Sara"},
		{"flat employee name", `{"employee_name":"Lina","employee":{"name":"Other"}}`, "Lina"},
		{"staff relation", `{"staff":{"name":"Maya"}}`, "Maya"},
		{"assigned relation as string", `{"assigned_to":"Rita"}`, "Rita"},
		{"first and last name", `{"provider":{"first_name":"Nora","last_name":"Haddad"}}`, "Nora Haddad"},
		{"walker inside flagged branch", `{"meta":{"assigned":{"worker":{"label_name":"Huda"}}}}`, "Huda"},
		{"walker keyword key", `{"details":{"staff_member":"Dana"}}`, "Dana"},
		{"customer name is not an employee", `{"customer_name":"Jane","services":{"name":"Cut"}}`, "Unassigned"},
		{"walker visits keys in sorted order", `{"z":{"staff_label":"Zed"},"a":{"staff_label":"Ann"}}`, "Ann"},
		{"empty strings are skipped", `{"employee_name":"  ","staff":{"name":""}}`, "Unassigned"},
		{"nothing matches", `{"id":3,"status":"pending"}`, "Unassigned"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, employee.Resolve(decode(t, tt.booking), "Unassigned"))
		})
	}
}

func TestResolve_DepthLimit(t *testing.T) {
	deep := `{"a":{"b":{"c":{"d":{"e":{"staff":"Too deep"}}}}}}`
	assert.Equal(t, "none", employee.Resolve(decode(t, deep), "none"))

	shallow := `{"a":{"b":{"c":{"staff":"Found"}}}}`
	assert.Equal(t, "Found", employee.Resolve(decode(t, shallow), "none"))
}

func TestResolve_ArraysAndNil(t *testing.T) {
	assert.Equal(t, "Omar", employee.Resolve(decode(t, `{"assigned_staff":[{"name":"Omar"}]}`), "x"))
	assert.Equal(t, "x", employee.Resolve(nil, "x"))
}
