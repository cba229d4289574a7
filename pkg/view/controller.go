package view

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/itaas-cloud/vsphere-console-sdk/internal/common/logger"
	"github.com/itaas-cloud/vsphere-console-sdk/pkg/client"
	"github.com/itaas-cloud/vsphere-console-sdk/pkg/lifecycle"
	"github.com/itaas-cloud/vsphere-console-sdk/pkg/payloads"
	"github.com/itaas-cloud/vsphere-console-sdk/pkg/services/library"
)

// Notifier receives the transient success/error notifications the console
// surfaces after actions.
type Notifier interface {
	Success(message string)
	Error(message string)
}

// errorDetail prefers the server-supplied detail message when the error is
// an API response, falling back to the raw error text.
func errorDetail(err error) string {
	var apiErr *client.APIError
	if errors.As(err, &apiErr) && apiErr.Detail != "" {
		return apiErr.Detail
	}
	return err.Error()
}

// WorkOrderController drives lifecycle actions on a work order. Execute is
// guarded against duplicate dispatch per order id, and the local status is
// only updated after the server confirms.
type WorkOrderController struct {
	svc      library.WorkOrder
	notifier Notifier
	log      *logger.Logger

	mu        sync.Mutex
	executing map[payloads.ID]bool
}

func NewWorkOrderController(svc library.WorkOrder, notifier Notifier, log *logger.Logger) *WorkOrderController {
	return &WorkOrderController{
		svc:       svc,
		notifier:  notifier,
		log:       log,
		executing: make(map[payloads.ID]bool),
	}
}

func (c *WorkOrderController) Approve(ctx context.Context, order *payloads.WorkOrder) error {
	if !lifecycle.WorkOrders.Allows(order.Status, lifecycle.ActionApprove) {
		return fmt.Errorf("cannot approve work order in status %q", order.Status)
	}

	if err := c.svc.Approve(ctx, order.ID); err != nil {
		c.notifier.Error(errorDetail(err))
		return err
	}

	order.Status = lifecycle.StatusApproved
	c.notifier.Success("Work order approved")
	return nil
}

// Reject goes through the general update operation; the backend has no
// dedicated reject endpoint for VM work orders.
func (c *WorkOrderController) Reject(ctx context.Context, order *payloads.WorkOrder) error {
	if !lifecycle.WorkOrders.CanTransition(order.Status, lifecycle.StatusRejected) {
		return fmt.Errorf("cannot reject work order in status %q", order.Status)
	}

	patch := *order
	patch.Status = lifecycle.StatusRejected

	if _, err := c.svc.Update(ctx, order.ID, &patch); err != nil {
		c.notifier.Error(errorDetail(err))
		return err
	}

	order.Status = lifecycle.StatusRejected
	c.notifier.Success("Work order rejected")
	return nil
}

// Execute dispatches provisioning. A second call for the same order while
// one is in flight is refused, and a failed call leaves the local status
// untouched.
func (c *WorkOrderController) Execute(ctx context.Context, order *payloads.WorkOrder) error {
	if !lifecycle.WorkOrders.Allows(order.Status, lifecycle.ActionExecute) {
		return fmt.Errorf("cannot execute work order in status %q", order.Status)
	}

	c.mu.Lock()
	if c.executing[order.ID] {
		c.mu.Unlock()
		return fmt.Errorf("execution already in flight for work order %s", order.ID)
	}
	c.executing[order.ID] = true
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		delete(c.executing, order.ID)
		c.mu.Unlock()
	}()

	result, err := c.svc.Execute(ctx, order.ID)
	if err != nil {
		c.log.Error("work order execution failed",
			zap.String("id", order.ID.String()), zap.Error(err))
		c.notifier.Error(errorDetail(err))
		return err
	}

	order.Status = lifecycle.StatusExecuting

	message := "Work order execution started"
	if result.Message != "" {
		message = result.Message
	}
	c.notifier.Success(message)
	return nil
}

// Delete runs the confirmation callback before the destructive call. It
// reports whether the order was actually deleted, so callers know whether
// to navigate away.
func (c *WorkOrderController) Delete(ctx context.Context, order *payloads.WorkOrder, confirm func() bool) (bool, error) {
	if !lifecycle.WorkOrders.Allows(order.Status, lifecycle.ActionDelete) {
		return false, fmt.Errorf("cannot delete work order in status %q", order.Status)
	}

	if !confirm() {
		return false, nil
	}

	if err := c.svc.Delete(ctx, order.ID); err != nil {
		c.notifier.Error(errorDetail(err))
		return false, err
	}

	c.notifier.Success("Work order deleted")
	return true, nil
}

// VNIController drives lifecycle actions on a VNI work order.
type VNIController struct {
	svc      library.VNIWorkOrder
	notifier Notifier
	log      *logger.Logger

	mu        sync.Mutex
	executing map[payloads.ID]bool
}

func NewVNIController(svc library.VNIWorkOrder, notifier Notifier, log *logger.Logger) *VNIController {
	return &VNIController{
		svc:       svc,
		notifier:  notifier,
		log:       log,
		executing: make(map[payloads.ID]bool),
	}
}

func (c *VNIController) Approve(ctx context.Context, order *payloads.VNIWorkOrder) error {
	if !lifecycle.VNIWorkOrders.Allows(order.Status, lifecycle.ActionApprove) {
		return fmt.Errorf("cannot approve VNI work order in status %q", order.Status)
	}

	if err := c.svc.Approve(ctx, order.ID); err != nil {
		c.notifier.Error(errorDetail(err))
		return err
	}

	order.Status = lifecycle.StatusApproved
	c.notifier.Success("VNI work order approved")
	return nil
}

func (c *VNIController) Reject(ctx context.Context, order *payloads.VNIWorkOrder) error {
	if !lifecycle.VNIWorkOrders.Allows(order.Status, lifecycle.ActionReject) {
		return fmt.Errorf("cannot reject VNI work order in status %q", order.Status)
	}

	if err := c.svc.Reject(ctx, order.ID); err != nil {
		c.notifier.Error(errorDetail(err))
		return err
	}

	order.Status = lifecycle.StatusRejected
	c.notifier.Success("VNI work order rejected")
	return nil
}

func (c *VNIController) Execute(ctx context.Context, order *payloads.VNIWorkOrder) error {
	if !lifecycle.VNIWorkOrders.Allows(order.Status, lifecycle.ActionExecute) {
		return fmt.Errorf("cannot execute VNI work order in status %q", order.Status)
	}

	c.mu.Lock()
	if c.executing[order.ID] {
		c.mu.Unlock()
		return fmt.Errorf("execution already in flight for VNI work order %s", order.ID)
	}
	c.executing[order.ID] = true
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		delete(c.executing, order.ID)
		c.mu.Unlock()
	}()

	result, err := c.svc.Execute(ctx, order.ID)
	if err != nil {
		c.log.Error("VNI work order execution failed",
			zap.String("id", order.ID.String()), zap.Error(err))
		c.notifier.Error(errorDetail(err))
		return err
	}

	order.Status = lifecycle.StatusExecuting
	if result.Status != "" {
		order.Status = result.Status
	}
	if result.ExecutionLog != "" {
		order.LastExecutionLog = result.ExecutionLog
	}

	message := "VNI work order execution started"
	if result.Message != "" {
		message = result.Message
	}
	c.notifier.Success(message)
	return nil
}

// UpdateStatus applies an explicit status change through the dedicated
// endpoint, gated by the transition table.
func (c *VNIController) UpdateStatus(ctx context.Context, order *payloads.VNIWorkOrder, status lifecycle.Status) error {
	if !lifecycle.VNIWorkOrders.CanTransition(order.Status, status) {
		return fmt.Errorf("cannot move VNI work order from %q to %q", order.Status, status)
	}

	if err := c.svc.UpdateStatus(ctx, order.ID, status); err != nil {
		c.notifier.Error(errorDetail(err))
		return err
	}

	order.Status = status
	c.notifier.Success("Status updated")
	return nil
}

func (c *VNIController) Delete(ctx context.Context, order *payloads.VNIWorkOrder, confirm func() bool) (bool, error) {
	if !lifecycle.VNIWorkOrders.Allows(order.Status, lifecycle.ActionDelete) {
		return false, fmt.Errorf("cannot delete VNI work order in status %q", order.Status)
	}

	if !confirm() {
		return false, nil
	}

	if err := c.svc.Delete(ctx, order.ID); err != nil {
		c.notifier.Error(errorDetail(err))
		return false, err
	}

	c.notifier.Success("VNI work order deleted")
	return true, nil
}
