package placement

import (
	"github.com/samber/lo"

	"github.com/itaas-cloud/vsphere-console-sdk/pkg/payloads"
)

// Inventory is a point-in-time snapshot of everything a detail/edit view
// cross-references. Views load all of it or none of it: placement
// validation is meaningless against a partial snapshot.
type Inventory struct {
	Hosts         []payloads.Host
	Datastores    []payloads.Datastore
	Networks      []payloads.Network
	VMs           []payloads.VM
	Templates     []payloads.Template
	ResourcePools []payloads.ResourcePool
	IPPools       []payloads.IPPool
	Folders       []payloads.Folder
	Datacenters   []payloads.Datacenter
}

func (inv Inventory) HostByID(id string) (payloads.Host, bool) {
	return lo.Find(inv.Hosts, func(h payloads.Host) bool { return h.ID == id })
}

func (inv Inventory) DatastoreByID(id string) (payloads.Datastore, bool) {
	return lo.Find(inv.Datastores, func(d payloads.Datastore) bool { return d.ID == id })
}

func (inv Inventory) NetworkByID(id string) (payloads.Network, bool) {
	return lo.Find(inv.Networks, func(n payloads.Network) bool { return n.ID == id })
}

// AccessibleDatastores returns the datastores reachable from host, in
// inventory order. When the host does not constrain accessibility (older
// backends omit the array) every datastore is offered.
func (inv Inventory) AccessibleDatastores(host payloads.Host) []payloads.Datastore {
	if len(host.AccessibleDatastores) == 0 {
		return inv.Datastores
	}
	return lo.Filter(inv.Datastores, func(d payloads.Datastore, _ int) bool {
		return lo.Contains(host.AccessibleDatastores, d.ID)
	})
}

// AccessibleNetworks returns the networks reachable from host.
func (inv Inventory) AccessibleNetworks(host payloads.Host) []payloads.Network {
	if len(host.AccessibleNetworks) == 0 {
		return inv.Networks
	}
	return lo.Filter(inv.Networks, func(n payloads.Network, _ int) bool {
		return lo.Contains(host.AccessibleNetworks, n.ID)
	})
}

// DatastoreAccessible reports whether the datastore id is reachable from
// host. An empty id is not accessible; submission requires a concrete,
// reachable selection.
func DatastoreAccessible(host payloads.Host, datastoreID string) bool {
	if datastoreID == "" {
		return false
	}
	if len(host.AccessibleDatastores) == 0 {
		return true
	}
	return lo.Contains(host.AccessibleDatastores, datastoreID)
}

// NetworkAccessible reports whether the network id is reachable from host.
func NetworkAccessible(host payloads.Host, networkID string) bool {
	if networkID == "" {
		return false
	}
	if len(host.AccessibleNetworks) == 0 {
		return true
	}
	return lo.Contains(host.AccessibleNetworks, networkID)
}
