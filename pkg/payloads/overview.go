package payloads

// DashboardOverview is the aggregate returned by the system overview
// endpoint. The backend emits it as loosely-typed JSON (numbers sometimes
// arrive as strings), so the inventory service decodes it weakly instead
// of unmarshalling directly.
type DashboardOverview struct {
	Summary       OverviewSummary       `json:"summary" mapstructure:"summary"`
	ResourceUsage OverviewResourceUsage `json:"resource_usage" mapstructure:"resource_usage"`
}

type OverviewSummary struct {
	TotalClusters   int `json:"total_clusters" mapstructure:"total_clusters"`
	TotalHosts      int `json:"total_hosts" mapstructure:"total_hosts"`
	TotalDatastores int `json:"total_datastores" mapstructure:"total_datastores"`
	TotalVMs        int `json:"total_vms" mapstructure:"total_vms"`
	RunningVMs      int `json:"running_vms" mapstructure:"running_vms"`
	StoppedVMs      int `json:"stopped_vms" mapstructure:"stopped_vms"`
}

type OverviewResourceUsage struct {
	UsedCPUMHz    float64 `json:"used_cpu_mhz" mapstructure:"used_cpu_mhz"`
	UsedMemoryGB  float64 `json:"used_memory_gb" mapstructure:"used_memory_gb"`
	UsedStorageGB float64 `json:"used_storage_gb" mapstructure:"used_storage_gb"`
	FreeStorageGB float64 `json:"free_storage_gb" mapstructure:"free_storage_gb"`
}
