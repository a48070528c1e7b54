package hr

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestID_EqualNormalizesRepresentation(t *testing.T) {
	assert.True(t, ID("1").Equal(ID("1")))
	assert.True(t, ID("007").Equal(ID("7")))
	assert.False(t, ID("1").Equal(ID("2")))
	assert.True(t, ID("emp_001").Equal(ID("emp_001")))
	assert.False(t, ID("emp_001").Equal(ID("emp_002")))
}

func TestID_ZeroNeverMatches(t *testing.T) {
	assert.False(t, ID("").Equal(ID("")))
	assert.False(t, ID("").Equal(ID("1")))
	assert.False(t, ID("1").Equal(ID(" ")))
}

func TestID_UnmarshalStringOrNumber(t *testing.T) {
	var rec struct {
		EmployeeID ID `json:"employeeId"`
	}

	require.NoError(t, json.Unmarshal([]byte(`{"employeeId": 42}`), &rec))
	assert.Equal(t, ID("42"), rec.EmployeeID)

	require.NoError(t, json.Unmarshal([]byte(`{"employeeId": "42"}`), &rec))
	assert.Equal(t, ID("42"), rec.EmployeeID)

	require.NoError(t, json.Unmarshal([]byte(`{"employeeId": null}`), &rec))
	assert.True(t, rec.EmployeeID.IsZero())

	assert.Error(t, json.Unmarshal([]byte(`{"employeeId": true}`), &rec))
}

func TestID_MarshalEmitsString(t *testing.T) {
	out, err := json.Marshal(Attendance{ID: "att_001", EmployeeID: "7", Date: "2026-08-01"})
	require.NoError(t, err)
	assert.Contains(t, string(out), `"employeeId":"7"`)
}
