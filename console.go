/*
Package consolesdk is the service registry for the vSphere console SDK.
It wires the typed REST client into the per-resource services and hands
back the library contract consumers program against.
*/
package consolesdk

import (
	"github.com/subosito/gotenv"

	"github.com/itaas-cloud/vsphere-console-sdk/internal/common/logger"
	"github.com/itaas-cloud/vsphere-console-sdk/pkg/client"
	"github.com/itaas-cloud/vsphere-console-sdk/pkg/config"
	"github.com/itaas-cloud/vsphere-console-sdk/pkg/services/inventory"
	"github.com/itaas-cloud/vsphere-console-sdk/pkg/services/library"
	"github.com/itaas-cloud/vsphere-console-sdk/pkg/services/vniworkorder"
	"github.com/itaas-cloud/vsphere-console-sdk/pkg/services/workorder"
)

type ConsoleClient struct {
	workOrderService    library.WorkOrder
	vniWorkOrderService library.VNIWorkOrder
	inventoryService    library.Inventory

	log *logger.Logger
}

// Loads a .env file when present, so local development does not need the
// environment variables set machine-wide.
func init() {
	_ = gotenv.Load()
}

func New(cfg *config.Config) (library.Library, error) {
	restClient, err := client.New(cfg)
	if err != nil {
		return nil, err
	}

	log, err := logger.New(cfg.Development, nil, nil)
	if err != nil {
		return nil, err
	}

	return &ConsoleClient{
		workOrderService:    workorder.New(restClient, log),
		vniWorkOrderService: vniworkorder.New(restClient, log),
		inventoryService:    inventory.New(restClient, log),
		log:                 log,
	}, nil
}

func (c *ConsoleClient) WorkOrder() library.WorkOrder {
	return c.workOrderService
}

func (c *ConsoleClient) VNIWorkOrder() library.VNIWorkOrder {
	return c.vniWorkOrderService
}

func (c *ConsoleClient) Inventory() library.Inventory {
	return c.inventoryService
}
