package payloads

import (
	"github.com/itaas-cloud/vsphere-console-sdk/pkg/lifecycle"
)

// VNIVirtualMachine is a VM attached to a VNI work order, display-only.
type VNIVirtualMachine struct {
	Name   string `json:"name,omitempty"`
	IP     string `json:"ip,omitempty"`
	Status string `json:"status,omitempty"`
}

// VNIWorkOrder is a request to provision a virtual network segment.
//
// Invariants enforced client-side before submission: gateway, first_ip and
// last_ip must all resolve into the network described by cidr, first_ip must
// not exceed last_ip, and number_of_ips is always derived from the bounds
// (last - first + 1), never edited independently.
type VNIWorkOrder struct {
	ID              ID                  `json:"id,omitempty"`
	Owner           string              `json:"owner"`
	RequestedDate   Timestamp           `json:"requested_date,omitempty"`
	RequestedBy     string              `json:"requested_by"`
	VirtualMachines []VNIVirtualMachine `json:"virtual_machines,omitempty"`
	Deadline        Timestamp           `json:"deadline,omitempty"`

	Project     string `json:"project"`
	T0Gateway   string `json:"t0_gw"`
	T1Gateway   string `json:"t1_gw"`
	Description string `json:"description"`
	VNIName     string `json:"vni_name"`
	CIDR        string `json:"cidr"`
	SubnetMask  string `json:"subnet_mask"`
	Gateway     string `json:"gateway"`
	FirstIP     string `json:"first_ip"`
	LastIP      string `json:"last_ip"`
	NumberOfIPs int    `json:"number_of_ips"`

	Status           lifecycle.Status `json:"status,omitempty"`
	CreatedAt        Timestamp        `json:"created_at,omitempty"`
	UpdatedAt        Timestamp        `json:"updated_at,omitempty"`
	LastExecutionLog string           `json:"last_execution_log,omitempty"`
	Notes            string           `json:"notes,omitempty"`
	Priority         Priority         `json:"priority,omitempty"`
	AssignedTo       string           `json:"assigned_to,omitempty"`
}
