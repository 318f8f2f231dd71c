package entities

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildingType_Valid(t *testing.T) {
	assert.True(t, BuildingTypeClinical.Valid())
	assert.True(t, BuildingTypeOther.Valid())
	assert.False(t, BuildingType("hangar").Valid())
	assert.False(t, BuildingType("").Valid())
}

func TestRole_Valid(t *testing.T) {
	assert.True(t, RoleSupervisor.Valid())
	assert.False(t, Role("janitor").Valid())
}

func TestCallStatus_OpenSetRoundTrips(t *testing.T) {
	var call Call
	require.NoError(t, json.Unmarshal([]byte(`{"id":"c1","device":"d1","bed":"b1","call_time":"2026-10-01T08:00:00Z","status":"escalated","response_time":null,"nurse":null}`), &call))

	assert.Equal(t, CallStatus("escalated"), call.Status)
	assert.False(t, call.Status.Known())
	assert.Nil(t, call.ResponseTime)
	assert.Nil(t, call.Nurse)

	out, err := json.Marshal(call)
	require.NoError(t, err)
	assert.Contains(t, string(out), `"status":"escalated"`)
}

func TestInput_OmitsUnsetFields(t *testing.T) {
	out, err := json.Marshal(WardInput{Name: Ptr("ICU-B")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"ICU-B"}`, string(out))

	out, err = json.Marshal(BedInput{Nurses: Ptr([]string{})})
	require.NoError(t, err)
	assert.JSONEq(t, `{"nurses":[]}`, string(out))
}

func TestPatient_EmbeddedSummaries(t *testing.T) {
	var p Patient
	require.NoError(t, json.Unmarshal([]byte(`{"id":"p1","name":"Ada","age":71,"gender":"female","bed":{"id":"b7","number":"7","ward":"w1"},"nurse":null,"device":{"id":"d9","serial_number":"SN-9"}}`), &p))

	assert.Equal(t, "b7", p.BedID())
	assert.Nil(t, p.Nurse)
	assert.Equal(t, "SN-9", p.Device.SerialNumber)

	assert.Equal(t, "", Patient{}.BedID())
}

func TestNewNotice(t *testing.T) {
	n := NewNotice(NoticeLevelWarning, "Session expired", "Please sign in again")

	assert.NotEmpty(t, n.ID)
	assert.Equal(t, NoticeLevelWarning, n.Level)
	assert.False(t, n.Timestamp.IsZero())
}
