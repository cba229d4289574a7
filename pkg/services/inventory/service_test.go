package inventory

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itaas-cloud/vsphere-console-sdk/internal/common/logger"
	"github.com/itaas-cloud/vsphere-console-sdk/pkg/client"
	"github.com/itaas-cloud/vsphere-console-sdk/pkg/payloads"
	"github.com/itaas-cloud/vsphere-console-sdk/pkg/services/library"
)

var ctx = context.Background()

func setupTestServer(t *testing.T, failDatastores bool) (*httptest.Server, library.Inventory) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		switch r.URL.Path {
		case "/api/hosts":
			_ = json.NewEncoder(w).Encode([]payloads.Host{
				{ID: "host-1", Name: "esxi-01", MemoryFreeGB: 32, CPUFreeMHz: 9000,
					AccessibleDatastores: []string{"ds-1"}},
			})
		case "/api/datastores":
			if failDatastores {
				w.WriteHeader(http.StatusBadGateway)
				_ = json.NewEncoder(w).Encode(map[string]string{"detail": "vCenter unreachable"})
				return
			}
			_ = json.NewEncoder(w).Encode([]payloads.Datastore{
				{ID: "ds-1", Name: "datastore1", CapacityGB: 500},
			})
		case "/api/networks":
			_ = json.NewEncoder(w).Encode([]payloads.Network{
				{ID: "net-1", Name: "VM Network", VLAN: 120},
			})
		case "/api/vms":
			_ = json.NewEncoder(w).Encode([]payloads.VM{
				{ID: "vm-1", Name: "web-01", PowerState: "poweredOn"},
			})
		case "/api/templates":
			_ = json.NewEncoder(w).Encode([]payloads.Template{
				{ID: "tmpl-1", Name: "ubuntu-22.04"},
			})
		case "/api/resource-pools":
			_ = json.NewEncoder(w).Encode([]payloads.ResourcePool{
				{ID: "rp-1", Name: "Production"},
			})
		case "/api/ip-pools":
			_ = json.NewEncoder(w).Encode([]payloads.IPPool{
				{ID: "pool-1", Name: "frontend", Subnet: "10.0.0.0/24"},
			})
		case "/api/folders":
			_ = json.NewEncoder(w).Encode([]payloads.Folder{
				{ID: "folder-1", Name: "web"},
			})
		case "/api/datacenters":
			_ = json.NewEncoder(w).Encode([]payloads.Datacenter{
				{Name: "dc-main"},
			})
		case "/api/system/overview/dashboard":
			// Counts deliberately mixed-typed, as the backend emits them.
			_, _ = w.Write([]byte(`{
				"summary": {
					"total_clusters": 2,
					"total_hosts": "8",
					"total_datastores": 12,
					"total_vms": 240.0,
					"running_vms": 180,
					"stopped_vms": 60
				},
				"resource_usage": {
					"used_cpu_mhz": 120000,
					"used_memory_gb": "1024.5",
					"used_storage_gb": 9000,
					"free_storage_gb": 3000
				}
			}`))
		default:
			w.WriteHeader(http.StatusNotFound)
			_ = json.NewEncoder(w).Encode(map[string]string{"detail": "not found"})
		}
	}))

	baseURL, err := url.Parse(server.URL + "/api")
	require.NoError(t, err)

	log, err := logger.New(false, nil, nil)
	require.NoError(t, err)

	restClient := &client.Client{
		HttpClient: http.DefaultClient,
		BaseURL:    baseURL,
	}

	return server, New(restClient, log)
}

func TestListEndpoints(t *testing.T) {
	server, svc := setupTestServer(t, false)
	defer server.Close()

	hosts, err := svc.Hosts(ctx)
	require.NoError(t, err)
	require.Len(t, hosts, 1)
	assert.Equal(t, "esxi-01", hosts[0].Name)
	assert.Equal(t, []string{"ds-1"}, hosts[0].AccessibleDatastores)

	datastores, err := svc.Datastores(ctx)
	require.NoError(t, err)
	assert.Equal(t, 500.0, datastores[0].CapacityGB)
	assert.Nil(t, datastores[0].FreeSpaceGB)

	networks, err := svc.Networks(ctx)
	require.NoError(t, err)
	assert.Equal(t, 120, networks[0].VLAN)

	templates, err := svc.Templates(ctx)
	require.NoError(t, err)
	assert.Equal(t, "ubuntu-22.04", templates[0].Name)

	pools, err := svc.IPPools(ctx)
	require.NoError(t, err)
	assert.Equal(t, "10.0.0.0/24", pools[0].Subnet)

	datacenters, err := svc.Datacenters(ctx)
	require.NoError(t, err)
	assert.Equal(t, "dc-main", datacenters[0].Name)
}

func TestDashboardOverview(t *testing.T) {
	server, svc := setupTestServer(t, false)
	defer server.Close()

	overview, err := svc.DashboardOverview(ctx)

	require.NoError(t, err)
	assert.Equal(t, 2, overview.Summary.TotalClusters)
	assert.Equal(t, 8, overview.Summary.TotalHosts)
	assert.Equal(t, 240, overview.Summary.TotalVMs)
	assert.Equal(t, 1024.5, overview.ResourceUsage.UsedMemoryGB)
}

func TestSnapshot(t *testing.T) {
	server, svc := setupTestServer(t, false)
	defer server.Close()

	inv, err := svc.Snapshot(ctx)

	require.NoError(t, err)
	assert.Len(t, inv.Hosts, 1)
	assert.Len(t, inv.Datastores, 1)
	assert.Len(t, inv.Networks, 1)
	assert.Len(t, inv.VMs, 1)
	assert.Len(t, inv.Templates, 1)
	assert.Len(t, inv.ResourcePools, 1)
	assert.Len(t, inv.IPPools, 1)
	assert.Len(t, inv.Folders, 1)
	assert.Len(t, inv.Datacenters, 1)

	host, ok := inv.HostByID("host-1")
	require.True(t, ok)
	assert.Equal(t, "esxi-01", host.Name)
}

func TestSnapshotAllOrNothing(t *testing.T) {
	server, svc := setupTestServer(t, true)
	defer server.Close()

	inv, err := svc.Snapshot(ctx)

	assert.Error(t, err)
	assert.Nil(t, inv)
}
