// Package workorder implements the VM work-order service against the
// console REST API.
package workorder

import (
	"context"

	"go.uber.org/zap"

	"github.com/itaas-cloud/vsphere-console-sdk/internal/common/core"
	"github.com/itaas-cloud/vsphere-console-sdk/internal/common/logger"
	"github.com/itaas-cloud/vsphere-console-sdk/pkg/client"
	"github.com/itaas-cloud/vsphere-console-sdk/pkg/payloads"
	"github.com/itaas-cloud/vsphere-console-sdk/pkg/services/library"
)

// collection carries the trailing slash the backend routes with.
const collection = "workorders/"

type Service struct {
	client *client.Client
	log    *logger.Logger
}

func New(client *client.Client, log *logger.Logger) library.WorkOrder {
	return &Service{client: client, log: log}
}

func (s *Service) Get(ctx context.Context, id payloads.ID) (*payloads.WorkOrder, error) {
	var result payloads.WorkOrder
	path := core.NewPathBuilder().Resource("workorders").ID(id).Build()
	err := client.TypedGet(ctx, s.client, path, core.EmptyParams, &result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (s *Service) List(ctx context.Context, limit int) ([]*payloads.WorkOrder, error) {
	var result []*payloads.WorkOrder

	var err error
	if limit > 0 {
		err = client.TypedGet(ctx, s.client, collection, struct {
			Limit int `json:"limit"`
		}{limit}, &result)
	} else {
		err = client.TypedGet(ctx, s.client, collection, core.EmptyParams, &result)
	}
	if err != nil {
		s.log.Error("failed to list work orders", zap.Error(err))
		return nil, err
	}

	s.log.Debug("retrieved work orders", zap.Int("count", len(result)))
	return result, nil
}

func (s *Service) Create(ctx context.Context, draft *payloads.WorkOrderDraft) (*payloads.WorkOrder, error) {
	var result payloads.WorkOrder
	err := client.TypedPost(ctx, s.client, collection, draft, &result)
	if err != nil {
		s.log.Error("failed to create work order", zap.Error(err))
		return nil, err
	}

	s.log.Info("created work order",
		zap.String("id", result.ID.String()),
		zap.String("name", result.Name))
	return &result, nil
}

func (s *Service) Update(ctx context.Context, id payloads.ID, patch *payloads.WorkOrder) (*payloads.WorkOrder, error) {
	var result payloads.WorkOrder
	path := core.NewPathBuilder().Resource("workorders").ID(id).Build()
	err := client.TypedPut(ctx, s.client, path, patch, &result)
	if err != nil {
		s.log.Error("failed to update work order",
			zap.String("id", id.String()), zap.Error(err))
		return nil, err
	}
	return &result, nil
}

func (s *Service) Delete(ctx context.Context, id payloads.ID) error {
	path := core.NewPathBuilder().Resource("workorders").ID(id).Build()
	err := client.TypedDelete(ctx, s.client, path, core.EmptyParams, &struct{}{})
	if err != nil {
		s.log.Error("failed to delete work order",
			zap.String("id", id.String()), zap.Error(err))
		return err
	}

	s.log.Info("deleted work order", zap.String("id", id.String()))
	return nil
}

func (s *Service) Approve(ctx context.Context, id payloads.ID) error {
	path := core.NewPathBuilder().Resource("workorders").ID(id).Action("approve").Build()
	err := client.TypedPost(ctx, s.client, path, core.EmptyParams, &struct{}{})
	if err != nil {
		s.log.Error("failed to approve work order",
			zap.String("id", id.String()), zap.Error(err))
		return err
	}

	s.log.Info("approved work order", zap.String("id", id.String()))
	return nil
}

func (s *Service) Execute(ctx context.Context, id payloads.ID) (*payloads.ExecuteResult, error) {
	var result payloads.ExecuteResult
	path := core.NewPathBuilder().Resource("workorders").ID(id).Action("execute").Build()
	err := client.TypedPost(ctx, s.client, path, core.EmptyParams, &result)
	if err != nil {
		s.log.Error("failed to execute work order",
			zap.String("id", id.String()), zap.Error(err))
		return nil, err
	}

	s.log.Info("executed work order",
		zap.String("id", id.String()),
		zap.String("message", result.Message))
	return &result, nil
}
