package consolesdk

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/itaas-cloud/vsphere-console-sdk/pkg/config"
)

func TestNew(t *testing.T) {
	// A token prevents an auth round-trip, so client creation succeeds
	// even against an unreachable URL.
	cfg := &config.Config{
		Url:   "http://localhost:9999",
		Token: "test-token",
	}

	client, err := New(cfg)
	assert.NoError(t, err)
	assert.NotNil(t, client)

	assert.NotNil(t, client.WorkOrder())
	assert.NotNil(t, client.VNIWorkOrder())
	assert.NotNil(t, client.Inventory())
}

func TestNewRequiresURL(t *testing.T) {
	_, err := New(&config.Config{})
	assert.Error(t, err)
}
