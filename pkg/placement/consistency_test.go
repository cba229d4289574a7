package placement

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/itaas-cloud/vsphere-console-sdk/pkg/payloads"
)

func testInventory() Inventory {
	return Inventory{
		Hosts: []payloads.Host{
			{ID: "host-1", Name: "esxi-01", AccessibleDatastores: []string{"ds-1"}, AccessibleNetworks: []string{"net-1"}},
			{ID: "host-2", Name: "esxi-02"},
		},
		Datastores: []payloads.Datastore{
			{ID: "ds-1", Name: "datastore1"},
			{ID: "ds-2", Name: "datastore2"},
		},
		Networks: []payloads.Network{
			{ID: "net-1", Name: "VM Network"},
		},
	}
}

func TestReconcile(t *testing.T) {
	inv := testInventory()

	t.Run("valid selection untouched", func(t *testing.T) {
		sel := Selection{HostID: "host-1", DatastoreID: "ds-1", NetworkID: "net-1"}

		got, changed := Reconcile(sel, inv)

		assert.False(t, changed)
		assert.Equal(t, sel, got)
	})

	t.Run("dangling datastore repaired to first option", func(t *testing.T) {
		sel := Selection{HostID: "host-1", DatastoreID: "ds-gone"}

		got, changed := Reconcile(sel, inv)

		assert.True(t, changed)
		assert.Equal(t, "ds-1", got.DatastoreID)
		assert.Equal(t, "host-1", got.HostID)
	})

	t.Run("dangling selection cleared when category empty", func(t *testing.T) {
		sel := Selection{FolderID: "folder-gone"}

		got, changed := Reconcile(sel, inv)

		assert.True(t, changed)
		assert.Empty(t, got.FolderID)
	})

	t.Run("empty selections left alone", func(t *testing.T) {
		got, changed := Reconcile(Selection{}, inv)

		assert.False(t, changed)
		assert.Equal(t, Selection{}, got)
	})
}

func TestAccessibility(t *testing.T) {
	inv := testInventory()
	constrained, _ := inv.HostByID("host-1")
	unconstrained, _ := inv.HostByID("host-2")

	t.Run("constrained host filters datastores", func(t *testing.T) {
		offered := inv.AccessibleDatastores(constrained)

		assert.Len(t, offered, 1)
		assert.Equal(t, "ds-1", offered[0].ID)
	})

	t.Run("unconstrained host offers everything", func(t *testing.T) {
		assert.Len(t, inv.AccessibleDatastores(unconstrained), 2)
		assert.Len(t, inv.AccessibleNetworks(unconstrained), 1)
	})

	t.Run("datastore accessibility", func(t *testing.T) {
		assert.True(t, DatastoreAccessible(constrained, "ds-1"))
		assert.False(t, DatastoreAccessible(constrained, "ds-2"))
		assert.True(t, DatastoreAccessible(unconstrained, "ds-2"))
		assert.False(t, DatastoreAccessible(constrained, ""))
	})

	t.Run("network accessibility", func(t *testing.T) {
		assert.True(t, NetworkAccessible(constrained, "net-1"))
		assert.False(t, NetworkAccessible(constrained, "net-2"))
		assert.False(t, NetworkAccessible(unconstrained, ""))
	})
}
