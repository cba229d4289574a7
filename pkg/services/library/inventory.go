package library

import (
	"context"

	"github.com/itaas-cloud/vsphere-console-sdk/pkg/payloads"
	"github.com/itaas-cloud/vsphere-console-sdk/pkg/placement"
)

//go:generate mockgen --build_flags=--mod=mod --destination mock/inventory.go . Inventory

type Inventory interface {
	Hosts(ctx context.Context) ([]payloads.Host, error)
	Datastores(ctx context.Context) ([]payloads.Datastore, error)
	Networks(ctx context.Context) ([]payloads.Network, error)
	VMs(ctx context.Context) ([]payloads.VM, error)
	Templates(ctx context.Context) ([]payloads.Template, error)
	ResourcePools(ctx context.Context) ([]payloads.ResourcePool, error)
	IPPools(ctx context.Context) ([]payloads.IPPool, error)
	Folders(ctx context.Context) ([]payloads.Folder, error)
	Datacenters(ctx context.Context) ([]payloads.Datacenter, error)

	DashboardOverview(ctx context.Context) (*payloads.DashboardOverview, error)

	// Snapshot fetches every inventory category concurrently and returns
	// a complete snapshot, or an error if any category fails.
	Snapshot(ctx context.Context) (*placement.Inventory, error)
}
