package payloads

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIDUnmarshalJSON(t *testing.T) {
	t.Run("accepts string", func(t *testing.T) {
		var id ID
		require.NoError(t, json.Unmarshal([]byte(`"42"`), &id))
		assert.Equal(t, ID("42"), id)
	})

	t.Run("accepts number", func(t *testing.T) {
		var id ID
		require.NoError(t, json.Unmarshal([]byte(`42`), &id))
		assert.Equal(t, ID("42"), id)
	})

	t.Run("rejects objects", func(t *testing.T) {
		var id ID
		assert.Error(t, json.Unmarshal([]byte(`{}`), &id))
	})
}

func TestTimestampUnmarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want time.Time
	}{
		{"rfc3339", `"2025-03-14T09:26:53Z"`, time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)},
		{"bare isoformat", `"2025-03-14T09:26:53.123456"`, time.Date(2025, 3, 14, 9, 26, 53, 123456000, time.UTC)},
		{"no fraction", `"2025-03-14T09:26:53"`, time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)},
		{"date only", `"2025-03-14"`, time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ts Timestamp
			require.NoError(t, json.Unmarshal([]byte(tt.in), &ts))
			assert.True(t, ts.Equal(tt.want), "got %s", ts)
		})
	}

	t.Run("empty string is zero", func(t *testing.T) {
		var ts Timestamp
		require.NoError(t, json.Unmarshal([]byte(`""`), &ts))
		assert.True(t, ts.IsZero())
	})

	t.Run("garbage errors", func(t *testing.T) {
		var ts Timestamp
		assert.Error(t, json.Unmarshal([]byte(`"not a date"`), &ts))
	})
}

func TestPriorityUnmarshalJSON(t *testing.T) {
	tests := []struct {
		in   string
		want Priority
	}{
		{`"low"`, PriorityLow},
		{`"Normal"`, PriorityNormal},
		{`"medium"`, PriorityNormal},
		{`"HIGH"`, PriorityHigh},
		{`"critical"`, PriorityCritical},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			var p Priority
			require.NoError(t, json.Unmarshal([]byte(tt.in), &p))
			assert.Equal(t, tt.want, p)
		})
	}
}

func TestWorkOrderUnmarshalJSON(t *testing.T) {
	raw := `{
		"id": 7,
		"name": "web-01",
		"os": "Ubuntu 22.04",
		"host_version": "8.0",
		"cpu": 4,
		"ram": 16,
		"disk": 100,
		"disks": [{"size": 100, "provisioning": "thin"}],
		"nics": [{"network_id": "net-1", "ip": "10.0.0.5"}],
		"host_id": "host-1",
		"status": "Pending",
		"created_at": "2025-03-14T09:26:53.123456"
	}`

	var wo WorkOrder
	require.NoError(t, json.Unmarshal([]byte(raw), &wo))

	assert.Equal(t, ID("7"), wo.ID)
	assert.Equal(t, "web-01", wo.Name)
	assert.Equal(t, 4, wo.CPU)
	assert.Len(t, wo.Disks, 1)
	assert.Equal(t, ProvisioningThin, wo.Disks[0].Provisioning)
	assert.Equal(t, "net-1", wo.NICs[0].NetworkID)
	assert.Equal(t, "pending", wo.Status.String())
	assert.False(t, wo.CreatedAt.IsZero())
}
