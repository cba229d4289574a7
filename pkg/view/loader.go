// Package view assembles detail/edit views and drives the lifecycle
// actions the console exposes on them. It owns the loading rules (a view
// renders all of its cross-reference data or none of it) and the action
// rules (gating, in-flight guards, optimistic status updates).
package view

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/itaas-cloud/vsphere-console-sdk/internal/common/core"
	"github.com/itaas-cloud/vsphere-console-sdk/internal/common/logger"
	"github.com/itaas-cloud/vsphere-console-sdk/pkg/netconfig"
	"github.com/itaas-cloud/vsphere-console-sdk/pkg/payloads"
	"github.com/itaas-cloud/vsphere-console-sdk/pkg/placement"
	"github.com/itaas-cloud/vsphere-console-sdk/pkg/services/library"
)

// IsNotFound reports whether err is a missing-resource lookup, which views
// render as a dedicated not-found state instead of a generic error.
func IsNotFound(err error) bool {
	return errors.Is(err, core.ErrNotFound)
}

// WorkOrderEditView is everything the work-order detail/edit view needs,
// loaded as one unit.
type WorkOrderEditView struct {
	Order       *payloads.WorkOrder
	Inventory   *placement.Inventory
	HostSupport *placement.HostSupport
}

// VNIEditView is the VNI detail/edit view payload. Validation is the
// network verdict for the stored configuration.
type VNIEditView struct {
	Order      *payloads.VNIWorkOrder
	Validation *netconfig.Result
}

type Loader struct {
	workOrders library.WorkOrder
	vniOrders  library.VNIWorkOrder
	inventory  library.Inventory
	log        *logger.Logger
}

func NewLoader(
	workOrders library.WorkOrder,
	vniOrders library.VNIWorkOrder,
	inventory library.Inventory,
	log *logger.Logger,
) *Loader {
	return &Loader{
		workOrders: workOrders,
		vniOrders:  vniOrders,
		inventory:  inventory,
		log:        log,
	}
}

// LoadWorkOrderEdit fetches the work order and the full inventory snapshot
// concurrently. Placement validation needs every category present, so any
// failed fetch fails the whole view; the first error wins.
func (l *Loader) LoadWorkOrderEdit(ctx context.Context, id payloads.ID) (*WorkOrderEditView, error) {
	var view WorkOrderEditView

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		view.Order, err = l.workOrders.Get(ctx, id)
		return err
	})
	g.Go(func() (err error) {
		view.Inventory, err = l.inventory.Snapshot(ctx)
		return err
	})

	if err := g.Wait(); err != nil {
		l.log.Error("failed to load work order edit view",
			zap.String("id", id.String()), zap.Error(err))
		return nil, err
	}

	view.HostSupport = placement.EvaluateHostSupport(
		*view.Inventory,
		view.Order.HostID,
		placement.Request{
			CPU:    view.Order.CPU,
			RAMGB:  view.Order.RAM,
			DiskGB: view.Order.Disk,
		},
	)

	return &view, nil
}

// LoadVNIEdit fetches the VNI work order and derives its network verdict.
func (l *Loader) LoadVNIEdit(ctx context.Context, id payloads.ID) (*VNIEditView, error) {
	order, err := l.vniOrders.Get(ctx, id)
	if err != nil {
		l.log.Error("failed to load VNI edit view",
			zap.String("id", id.String()), zap.Error(err))
		return nil, err
	}

	return &VNIEditView{
		Order:      order,
		Validation: netconfig.Validate(order.Gateway, order.FirstIP, order.LastIP, order.CIDR),
	}, nil
}
