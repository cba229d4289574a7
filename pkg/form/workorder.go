package form

import (
	"github.com/gofrs/uuid"

	"github.com/itaas-cloud/vsphere-console-sdk/pkg/payloads"
	"github.com/itaas-cloud/vsphere-console-sdk/pkg/placement"
)

// Action is one reducer transition. Concrete actions are the structs below;
// Apply is the only place state changes.
type Action interface {
	isAction()
}

type SetField struct {
	Name  string
	Value string
}

type AddDisk struct{}

type RemoveDisk struct{ Index int }

type SetDiskField struct {
	Index int
	Field string
	Value string
}

type AddNIC struct{}

type RemoveNIC struct{ Index int }

type SetNICField struct {
	Index int
	Field string
	Value string
}

type Next struct{}

type Back struct{}

type Reset struct{}

type InventoryLoaded struct{ Inventory placement.Inventory }

type Revalidate struct{}

type SubmitStarted struct{}

type SubmitFailed struct{ Err string }

type SubmitSucceeded struct{}

func (SetField) isAction()        {}
func (AddDisk) isAction()         {}
func (RemoveDisk) isAction()      {}
func (SetDiskField) isAction()    {}
func (AddNIC) isAction()          {}
func (RemoveNIC) isAction()       {}
func (SetNICField) isAction()     {}
func (Next) isAction()            {}
func (Back) isAction()            {}
func (Reset) isAction()           {}
func (InventoryLoaded) isAction() {}
func (Revalidate) isAction()      {}
func (SubmitStarted) isAction()   {}
func (SubmitFailed) isAction()    {}
func (SubmitSucceeded) isAction() {}

// manualFields must all be present when no template or source VM supplies
// them.
var manualFields = []string{
	"os",
	"hardware_version",
	"scsi_controller_type",
	"hostname",
	"ip",
	"netmask",
	"gateway",
	"domain",
}

// WorkOrderState is the work-order wizard and edit form state. Scalar
// inputs live in Fields as the raw strings the user typed; disks and NICs
// are structured. Inventory reconciliation is keyed by revision so a
// snapshot is repaired exactly once.
type WorkOrderState struct {
	SessionID uuid.UUID
	Step      int
	Fields    map[string]string
	Disks     []payloads.Disk
	NICs      []payloads.NIC

	Inventory     *placement.Inventory
	InventoryRev  int
	ReconciledRev int
	HostSupport   *placement.HostSupport

	Submitting  bool
	SubmitError string
	Completed   bool
}

// NewWorkOrder returns the initial wizard state with the resource defaults
// the console seeds (1 vCPU, 1 GB RAM, 1 GB disk).
func NewWorkOrder() WorkOrderState {
	id, _ := uuid.NewV4()
	return WorkOrderState{
		SessionID: id,
		Fields: map[string]string{
			"cpu":  "1",
			"ram":  "1",
			"disk": "1",
		},
	}
}

func (s WorkOrderState) clone() WorkOrderState {
	fields := make(map[string]string, len(s.Fields))
	for k, v := range s.Fields {
		fields[k] = v
	}
	s.Fields = fields

	s.Disks = append([]payloads.Disk(nil), s.Disks...)
	s.NICs = append([]payloads.NIC(nil), s.NICs...)
	return s
}

// Apply is the reducer: it returns the state after action, never mutating
// its input.
func (s WorkOrderState) Apply(action Action) WorkOrderState {
	next := s.clone()

	switch a := action.(type) {
	case SetField:
		next.Fields[a.Name] = a.Value
		switch a.Name {
		case "host_id", "cpu", "ram", "disk":
			next.revalidate()
		}

	case AddDisk:
		next.Disks = append(next.Disks, payloads.Disk{
			SizeGB:       1,
			Provisioning: payloads.ProvisioningThin,
		})

	case RemoveDisk:
		if a.Index >= 0 && a.Index < len(next.Disks) {
			next.Disks = append(next.Disks[:a.Index], next.Disks[a.Index+1:]...)
		}

	case SetDiskField:
		if a.Index >= 0 && a.Index < len(next.Disks) {
			switch a.Field {
			case "size":
				if size, ok := CoerceFloat(a.Value, 1); ok {
					next.Disks[a.Index].SizeGB = size
				}
			case "provisioning":
				next.Disks[a.Index].Provisioning = payloads.DiskProvisioning(a.Value)
			}
		}

	case AddNIC:
		next.NICs = append(next.NICs, payloads.NIC{})

	case RemoveNIC:
		if a.Index >= 0 && a.Index < len(next.NICs) {
			next.NICs = append(next.NICs[:a.Index], next.NICs[a.Index+1:]...)
		}

	case SetNICField:
		if a.Index >= 0 && a.Index < len(next.NICs) {
			switch a.Field {
			case "network_id":
				next.NICs[a.Index].NetworkID = a.Value
			case "ip":
				next.NICs[a.Index].IP = a.Value
			case "subnet_mask":
				next.NICs[a.Index].SubnetMask = a.Value
			case "ip_pool_id":
				next.NICs[a.Index].IPPoolID = a.Value
			}
		}

	case Next:
		if next.StepValid(next.Step) && next.Step < len(WorkOrderSteps)-1 {
			next.Step++
		}

	case Back:
		if next.Step > 0 {
			next.Step--
		}

	case Reset:
		return NewWorkOrder()

	case InventoryLoaded:
		inv := a.Inventory
		next.Inventory = &inv
		next.InventoryRev++
		next.reconcile()

	case Revalidate:
		next.reconcile()

	case SubmitStarted:
		next.Submitting = true
		next.SubmitError = ""

	case SubmitFailed:
		// Entered values survive a failed submission untouched.
		next.Submitting = false
		next.SubmitError = a.Err

	case SubmitSucceeded:
		next.Submitting = false
		next.SubmitError = ""
		next.Completed = true
	}

	return next
}

// reconcile repairs placement selections against the current inventory
// snapshot (once per revision) and recomputes the host-support verdict.
func (s *WorkOrderState) reconcile() {
	if s.Inventory == nil {
		s.HostSupport = nil
		return
	}

	if s.ReconciledRev != s.InventoryRev {
		sel, changed := placement.Reconcile(s.Selection(), *s.Inventory)
		if changed {
			s.Fields["host_id"] = sel.HostID
			s.Fields["vm_id"] = sel.VMID
			s.Fields["template_id"] = sel.TemplateID
			s.Fields["datastore_id"] = sel.DatastoreID
			s.Fields["network_id"] = sel.NetworkID
			s.Fields["resource_pool_id"] = sel.ResourcePoolID
			s.Fields["folder_id"] = sel.FolderID
		}
		s.ReconciledRev = s.InventoryRev
	}

	s.revalidate()
}

func (s *WorkOrderState) revalidate() {
	if s.Inventory == nil {
		s.HostSupport = nil
		return
	}
	s.HostSupport = placement.EvaluateHostSupport(*s.Inventory, s.Fields["host_id"], s.Request())
}

// StepValid reports whether step's required fields are present and
// well-typed.
func (s WorkOrderState) StepValid(step int) bool {
	if step < 0 || step >= len(WorkOrderSteps) {
		return false
	}
	return WorkOrderSteps[step].Valid(s.Fields)
}

// Request is the resource shape of the current draft as placement consumes
// it. Unparseable inputs count as zero; step validation rejects them before
// submission anyway.
func (s WorkOrderState) Request() placement.Request {
	cpu, _ := CoerceInt(s.Fields["cpu"], 0)
	ram, _ := CoerceInt(s.Fields["ram"], 0)
	disk, _ := CoerceFloat(s.Fields["disk"], 0)
	return placement.Request{CPU: cpu, RAMGB: ram, DiskGB: disk}
}

// Selection is the current placement selection.
func (s WorkOrderState) Selection() placement.Selection {
	return placement.Selection{
		HostID:         s.Fields["host_id"],
		VMID:           s.Fields["vm_id"],
		TemplateID:     s.Fields["template_id"],
		DatastoreID:    s.Fields["datastore_id"],
		NetworkID:      s.Fields["network_id"],
		ResourcePoolID: s.Fields["resource_pool_id"],
		FolderID:       s.Fields["folder_id"],
	}
}

// TemplateSelected reports whether a template or source VM supplies the
// guest configuration.
func (s WorkOrderState) TemplateSelected() bool {
	return s.Fields["template_id"] != "" || s.Fields["vm_id"] != ""
}

// IsManualValid reports whether the manually-entered guest configuration is
// complete. Always true when a template is selected: the template supplies
// those fields.
func (s WorkOrderState) IsManualValid() bool {
	if s.TemplateSelected() {
		return true
	}

	for _, field := range manualFields {
		if s.Fields[field] == "" {
			return false
		}
	}

	return len(s.Disks) >= 1 && len(s.NICs) >= 1
}

// Submittable is the submit gate: wizard steps valid, manual or template
// configuration complete, no negative host-support verdict, the selected
// datastore reachable from the selected host, and no submission already in
// flight. A missing host-support verdict does not block; a negative one
// does.
func (s WorkOrderState) Submittable() bool {
	if s.Submitting || s.Completed {
		return false
	}

	for i := range WorkOrderSteps {
		if !s.StepValid(i) {
			return false
		}
	}

	if !s.IsManualValid() {
		return false
	}

	if s.HostSupport != nil && !s.HostSupport.Supports {
		return false
	}

	if s.Inventory != nil {
		if host, ok := s.Inventory.HostByID(s.Fields["host_id"]); ok {
			if !placement.DatastoreAccessible(host, s.Fields["datastore_id"]) {
				return false
			}
		}
	}

	return true
}

// Draft is the creation payload the wizard posts.
func (s WorkOrderState) Draft(requestedAt string) payloads.WorkOrderDraft {
	cpu, _ := CoerceInt(s.Fields["cpu"], 0)
	ram, _ := CoerceInt(s.Fields["ram"], 0)
	disk, _ := CoerceFloat(s.Fields["disk"], 0)

	return payloads.WorkOrderDraft{
		General: payloads.WorkOrderGeneral{
			Name:        s.Fields["name"],
			OS:          s.Fields["os"],
			HostVersion: s.Fields["host_version"],
		},
		Resources: payloads.WorkOrderResources{
			CPU:  cpu,
			RAM:  ram,
			Disk: disk,
		},
		RequestedAt: requestedAt,
	}
}

// Order is the flat work-order shape the edit form patches with.
func (s WorkOrderState) Order() payloads.WorkOrder {
	cpu, _ := CoerceInt(s.Fields["cpu"], 0)
	ram, _ := CoerceInt(s.Fields["ram"], 0)
	disk, _ := CoerceFloat(s.Fields["disk"], 0)

	return payloads.WorkOrder{
		Name:        s.Fields["name"],
		OS:          s.Fields["os"],
		HostVersion: s.Fields["host_version"],
		CPU:         cpu,
		RAM:         ram,
		Disk:        disk,
		Disks:       append([]payloads.Disk(nil), s.Disks...),
		NICs:        append([]payloads.NIC(nil), s.NICs...),

		HostID:         s.Fields["host_id"],
		VMID:           s.Fields["vm_id"],
		TemplateID:     s.Fields["template_id"],
		DatastoreID:    s.Fields["datastore_id"],
		NetworkID:      s.Fields["network_id"],
		ResourcePoolID: s.Fields["resource_pool_id"],
		IPPoolID:       s.Fields["ip_pool_id"],
		FolderID:       s.Fields["folder_id"],
		DatacenterName: s.Fields["datacenter_name"],

		Hostname:           s.Fields["hostname"],
		IP:                 s.Fields["ip"],
		Netmask:            s.Fields["netmask"],
		Gateway:            s.Fields["gateway"],
		Domain:             s.Fields["domain"],
		HardwareVersion:    s.Fields["hardware_version"],
		SCSIControllerType: s.Fields["scsi_controller_type"],
	}
}

// LoadOrder seeds the edit form from an existing work order.
func LoadOrder(order payloads.WorkOrder) WorkOrderState {
	s := NewWorkOrder()

	s.Fields["name"] = order.Name
	s.Fields["os"] = order.OS
	s.Fields["host_version"] = order.HostVersion
	s.Fields["cpu"] = itoa(order.CPU)
	s.Fields["ram"] = itoa(order.RAM)
	s.Fields["disk"] = ftoa(order.Disk)

	s.Fields["host_id"] = order.HostID
	s.Fields["vm_id"] = order.VMID
	s.Fields["template_id"] = order.TemplateID
	s.Fields["datastore_id"] = order.DatastoreID
	s.Fields["network_id"] = order.NetworkID
	s.Fields["resource_pool_id"] = order.ResourcePoolID
	s.Fields["ip_pool_id"] = order.IPPoolID
	s.Fields["folder_id"] = order.FolderID
	s.Fields["datacenter_name"] = order.DatacenterName

	s.Fields["hostname"] = order.Hostname
	s.Fields["ip"] = order.IP
	s.Fields["netmask"] = order.Netmask
	s.Fields["gateway"] = order.Gateway
	s.Fields["domain"] = order.Domain
	s.Fields["hardware_version"] = order.HardwareVersion
	s.Fields["scsi_controller_type"] = order.SCSIControllerType

	s.Disks = append([]payloads.Disk(nil), order.Disks...)
	s.NICs = append([]payloads.NIC(nil), order.NICs...)

	return s
}
