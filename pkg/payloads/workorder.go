package payloads

import (
	"github.com/itaas-cloud/vsphere-console-sdk/pkg/lifecycle"
)

// DiskProvisioning is the allocation strategy for a virtual disk.
type DiskProvisioning string

const (
	ProvisioningThin       DiskProvisioning = "thin"
	ProvisioningThickLazy  DiskProvisioning = "thick-lazy"
	ProvisioningThickEager DiskProvisioning = "thick-eager"
)

// Disk is one requested virtual disk of a work order.
type Disk struct {
	SizeGB       float64          `json:"size"`
	Provisioning DiskProvisioning `json:"provisioning,omitempty"`
}

// NIC is one requested virtual network interface of a work order.
type NIC struct {
	NetworkID  string `json:"network_id,omitempty"`
	IP         string `json:"ip,omitempty"`
	SubnetMask string `json:"subnet_mask,omitempty"`
	IPPoolID   string `json:"ip_pool_id,omitempty"`
}

// WorkOrder is a request to provision a virtual machine. The manual-mode
// fields (hostname through scsi_controller_type) are only required when no
// template is selected; a template supplies them otherwise.
type WorkOrder struct {
	ID          ID      `json:"id,omitempty"`
	Name        string  `json:"name"`
	OS          string  `json:"os"`
	HostVersion string  `json:"host_version"`
	CPU         int     `json:"cpu"`
	RAM         int     `json:"ram"`
	Disk        float64 `json:"disk"` // legacy single-disk size in GB
	Disks       []Disk  `json:"disks,omitempty"`
	NICs        []NIC   `json:"nics,omitempty"`

	HostID         string `json:"host_id,omitempty"`
	VMID           string `json:"vm_id,omitempty"`
	TemplateID     string `json:"template_id,omitempty"`
	DatastoreID    string `json:"datastore_id,omitempty"`
	NetworkID      string `json:"network_id,omitempty"`
	ResourcePoolID string `json:"resource_pool_id,omitempty"`
	IPPoolID       string `json:"ip_pool_id,omitempty"`
	FolderID       string `json:"folder_id,omitempty"`
	DatacenterName string `json:"datacenter_name,omitempty"`

	Hostname           string `json:"hostname,omitempty"`
	IP                 string `json:"ip,omitempty"`
	Netmask            string `json:"netmask,omitempty"`
	Gateway            string `json:"gateway,omitempty"`
	Domain             string `json:"domain,omitempty"`
	HardwareVersion    string `json:"hardware_version,omitempty"`
	SCSIControllerType string `json:"scsi_controller_type,omitempty"`

	Status           lifecycle.Status `json:"status,omitempty"`
	CreatedAt        Timestamp        `json:"created_at,omitempty"`
	LastExecutionLog string           `json:"last_execution_log,omitempty"`
}

// WorkOrderDraft is the creation payload posted by the wizard. The backend
// expects the general/resources grouping the wizard steps use, not the flat
// WorkOrder shape it returns.
type WorkOrderDraft struct {
	General     WorkOrderGeneral   `json:"general"`
	Resources   WorkOrderResources `json:"resources"`
	RequestedAt string             `json:"requested_at,omitempty"`
}

type WorkOrderGeneral struct {
	Name        string `json:"name"`
	OS          string `json:"os"`
	HostVersion string `json:"hostVersion"`
}

type WorkOrderResources struct {
	CPU  int     `json:"cpu"`
	RAM  int     `json:"ram"`
	Disk float64 `json:"disk"`
}

// ExecuteResult is the envelope returned by the execute endpoints. Only
// Message is guaranteed; the VNI execute endpoint also reports the resulting
// status and execution log.
type ExecuteResult struct {
	Message      string           `json:"message,omitempty"`
	Status       lifecycle.Status `json:"status,omitempty"`
	VNIName      string           `json:"vni_name,omitempty"`
	VNIID        string           `json:"vni_id,omitempty"`
	ExecutionLog string           `json:"execution_log,omitempty"`
}
