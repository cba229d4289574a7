package payloads

// Host is a hypervisor node offering CPU/RAM capacity. The accessible_*
// arrays restrict which datastores and networks a VM placed on this host
// can reach; placement validation depends on them.
type Host struct {
	ID                   string   `json:"id"`
	Name                 string   `json:"name"`
	MemoryFreeGB         float64  `json:"memory_free_gb"`
	MemoryTotalGB        float64  `json:"memory_total_gb,omitempty"`
	CPUFreeMHz           float64  `json:"cpu_free_mhz"`
	CPUUsedMHz           float64  `json:"cpu_used_mhz,omitempty"`
	NumCPUCores          int      `json:"num_cpu_cores,omitempty"`
	ProductVersion       string   `json:"product_version,omitempty"`
	ConnectionState      string   `json:"connection_state,omitempty"`
	Cluster              string   `json:"cluster,omitempty"`
	AccessibleDatastores []string `json:"accessible_datastores,omitempty"`
	AccessibleNetworks   []string `json:"accessible_networks,omitempty"`
}

// Datastore is a storage pool from which virtual disk capacity is
// allocated. FreeSpaceGB is a pointer because the backend omits it for
// datastores it cannot probe; fit evaluation falls back to total capacity
// in that case.
type Datastore struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	CapacityGB  float64  `json:"capacity_gb"`
	FreeSpaceGB *float64 `json:"free_space_gb,omitempty"`
	Type        string   `json:"type,omitempty"`
	Accessible  bool     `json:"accessible,omitempty"`
}

// Network is a virtual network (port group or segment).
type Network struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	VLAN int    `json:"vlan,omitempty"`
	Type string `json:"type,omitempty"`
}

// VM is an existing virtual machine in the inventory.
type VM struct {
	ID          string  `json:"id"`
	UUID        string  `json:"uuid,omitempty"`
	Name        string  `json:"name"`
	PowerState  string  `json:"power_state,omitempty"`
	CPUUsageMHz float64 `json:"cpu_usage_mhz,omitempty"`
	MemoryGB    float64 `json:"memory_gb,omitempty"`
	GuestOS     string  `json:"guest_os,omitempty"`
}

// Template is a VM template usable as a provisioning source.
type Template struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	GuestOS         string `json:"guest_os,omitempty"`
	HardwareVersion string `json:"hardware_version,omitempty"`
}

// ResourcePool partitions compute resources for quota/priority purposes.
type ResourcePool struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// IPPool is a range of addresses the backend can allocate NICs from.
type IPPool struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Subnet  string `json:"subnet,omitempty"`
	Gateway string `json:"gateway,omitempty"`
}

// Folder is an inventory folder VMs can be created under.
type Folder struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Datacenter is the top-level inventory container.
type Datacenter struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name"`
}
