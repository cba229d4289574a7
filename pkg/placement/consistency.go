package placement

import (
	"fmt"

	"github.com/samber/lo"

	"github.com/itaas-cloud/vsphere-console-sdk/pkg/payloads"
)

// Selection is the set of placement references a work order carries.
type Selection struct {
	HostID         string
	VMID           string
	TemplateID     string
	DatastoreID    string
	NetworkID      string
	ResourcePoolID string
	FolderID       string
}

// Reconcile repairs selections that are no longer valid members of the
// loaded inventory: a dangling reference falls back deterministically to
// the first available option in its category, or is cleared when the
// category is empty. Empty selections are left alone. The second return
// reports whether anything changed, so callers can re-run validation only
// when needed.
func Reconcile(sel Selection, inv Inventory) (Selection, bool) {
	changed := false

	sel.HostID = repair(sel.HostID, idsOf(inv.Hosts, func(h payloads.Host) string { return h.ID }), &changed)
	sel.VMID = repair(sel.VMID, idsOf(inv.VMs, func(v payloads.VM) string { return v.ID }), &changed)
	sel.TemplateID = repair(sel.TemplateID, idsOf(inv.Templates, func(t payloads.Template) string { return t.ID }), &changed)
	sel.DatastoreID = repair(sel.DatastoreID, idsOf(inv.Datastores, func(d payloads.Datastore) string { return d.ID }), &changed)
	sel.NetworkID = repair(sel.NetworkID, idsOf(inv.Networks, func(n payloads.Network) string { return n.ID }), &changed)
	sel.ResourcePoolID = repair(sel.ResourcePoolID, idsOf(inv.ResourcePools, func(r payloads.ResourcePool) string { return r.ID }), &changed)
	sel.FolderID = repair(sel.FolderID, idsOf(inv.Folders, func(f payloads.Folder) string { return f.ID }), &changed)

	return sel, changed
}

func idsOf[T any](items []T, id func(T) string) []string {
	return lo.Map(items, func(item T, _ int) string { return id(item) })
}

func repair(selected string, available []string, changed *bool) string {
	if selected == "" {
		return selected
	}
	if lo.Contains(available, selected) {
		return selected
	}

	*changed = true
	if len(available) == 0 {
		return ""
	}
	return available[0]
}

// HostSupport is the verdict for the currently selected host against the
// requested resources, with the fixed message the console renders.
type HostSupport struct {
	HostID   string
	HostName string
	Supports bool
	Message  string
}

// EvaluateHostSupport resolves hostID in the inventory and evaluates the
// fit. It returns nil when the selection does not resolve to a host; "no
// verdict" must never be conflated with "supported".
func EvaluateHostSupport(inv Inventory, hostID string, req Request) *HostSupport {
	if hostID == "" {
		return nil
	}

	host, ok := inv.HostByID(hostID)
	if !ok {
		return nil
	}

	support := &HostSupport{
		HostID:   host.ID,
		HostName: host.Name,
		Supports: HostFits(host, req),
	}

	if support.Supports {
		support.Message = fmt.Sprintf("Host %s supports this work order.", host.Name)
	} else {
		support.Message = "Selected host may not support the requested resources."
	}

	return support
}

// HostSupportMessage is the single message the detail, edit and select
// handlers all render. Nil when no host selection resolves.
func HostSupportMessage(inv Inventory, hostID string, req Request) *string {
	support := EvaluateHostSupport(inv, hostID, req)
	if support == nil {
		return nil
	}
	return &support.Message
}
