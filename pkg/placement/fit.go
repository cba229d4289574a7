// Package placement decides whether requested VM resources fit on the
// available infrastructure and keeps a work order's placement selections
// consistent with the live inventory.
package placement

import (
	"sort"

	"github.com/samber/lo"

	"github.com/itaas-cloud/vsphere-console-sdk/pkg/payloads"
)

// Request is the resource shape of a work order, as the fit evaluators
// consume it.
type Request struct {
	CPU    int
	RAMGB  int
	DiskGB float64
}

// cpuMHzPerVCPU is the fixed conversion the console applies when comparing
// a vCPU count against a host's free MHz.
const cpuMHzPerVCPU = 1000

// HostFits reports whether host has enough free memory and CPU for the
// request. One vCPU is costed at 1000 MHz.
func HostFits(host payloads.Host, req Request) bool {
	return host.MemoryFreeGB >= float64(req.RAMGB) &&
		host.CPUFreeMHz >= float64(req.CPU*cpuMHzPerVCPU)
}

// DatastoreFits reports whether the datastore has room for the requested
// disk size. When the backend could not probe free space, total capacity
// is used instead; that deliberately overstates availability (see the
// console's feasibility rules) and the backend re-checks on execution.
func DatastoreFits(ds payloads.Datastore, diskGB float64) bool {
	available := ds.CapacityGB
	if ds.FreeSpaceGB != nil {
		available = *ds.FreeSpaceGB
	}
	return available >= diskGB
}

// HostSuggestion pairs a host with its combined deficit score: the sum of
// the free-RAM and free-CPU surpluses over the request. Negative totals
// indicate shortfall. The score is a heuristic tie-break across both
// dimensions, not a guarantee of suitability on either one.
type HostSuggestion struct {
	Host  payloads.Host
	Score float64
}

// RankClosestHosts ranks hosts ascending by deficit score and returns the
// top two as suggestions for when no host fully supports the request.
func RankClosestHosts(hosts []payloads.Host, req Request) []HostSuggestion {
	suggestions := lo.Map(hosts, func(h payloads.Host, _ int) HostSuggestion {
		return HostSuggestion{
			Host: h,
			Score: (h.MemoryFreeGB - float64(req.RAMGB)) +
				(h.CPUFreeMHz - float64(req.CPU*cpuMHzPerVCPU)),
		}
	})

	sort.SliceStable(suggestions, func(i, j int) bool {
		return suggestions[i].Score < suggestions[j].Score
	})

	if len(suggestions) > 2 {
		suggestions = suggestions[:2]
	}

	return suggestions
}
