// Package vniworkorder implements the VNI work-order service: CRUD, the
// dedicated lifecycle endpoints, the execution log/status probes and the
// spreadsheet export.
package vniworkorder

import (
	"context"

	"go.uber.org/zap"

	"github.com/itaas-cloud/vsphere-console-sdk/internal/common/core"
	"github.com/itaas-cloud/vsphere-console-sdk/internal/common/logger"
	"github.com/itaas-cloud/vsphere-console-sdk/pkg/client"
	"github.com/itaas-cloud/vsphere-console-sdk/pkg/lifecycle"
	"github.com/itaas-cloud/vsphere-console-sdk/pkg/payloads"
	"github.com/itaas-cloud/vsphere-console-sdk/pkg/services/library"
)

const collection = "vni-workorders/"

type Service struct {
	client *client.Client
	log    *logger.Logger
}

func New(client *client.Client, log *logger.Logger) library.VNIWorkOrder {
	return &Service{client: client, log: log}
}

func path(id payloads.ID, action string) string {
	b := core.NewPathBuilder().Resource("vni-workorders").ID(id)
	if action != "" {
		b.Action(action)
	}
	return b.Build()
}

func (s *Service) Get(ctx context.Context, id payloads.ID) (*payloads.VNIWorkOrder, error) {
	var result payloads.VNIWorkOrder
	err := client.TypedGet(ctx, s.client, path(id, ""), core.EmptyParams, &result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (s *Service) List(ctx context.Context, limit int, status lifecycle.Status) ([]*payloads.VNIWorkOrder, error) {
	params := struct {
		Limit  int    `json:"limit,omitempty"`
		Status string `json:"status,omitempty"`
	}{Limit: limit, Status: status.String()}

	var result []*payloads.VNIWorkOrder
	err := client.TypedGet(ctx, s.client, collection, params, &result)
	if err != nil {
		s.log.Error("failed to list VNI work orders", zap.Error(err))
		return nil, err
	}

	s.log.Debug("retrieved VNI work orders", zap.Int("count", len(result)))
	return result, nil
}

func (s *Service) Create(ctx context.Context, order *payloads.VNIWorkOrder) (*payloads.VNIWorkOrder, error) {
	var result payloads.VNIWorkOrder
	err := client.TypedPost(ctx, s.client, collection, order, &result)
	if err != nil {
		s.log.Error("failed to create VNI work order", zap.Error(err))
		return nil, err
	}

	s.log.Info("created VNI work order",
		zap.String("id", result.ID.String()),
		zap.String("vni_name", result.VNIName))
	return &result, nil
}

func (s *Service) Update(ctx context.Context, id payloads.ID, patch *payloads.VNIWorkOrder) (*payloads.VNIWorkOrder, error) {
	var result payloads.VNIWorkOrder
	err := client.TypedPut(ctx, s.client, path(id, ""), patch, &result)
	if err != nil {
		s.log.Error("failed to update VNI work order",
			zap.String("id", id.String()), zap.Error(err))
		return nil, err
	}
	return &result, nil
}

func (s *Service) Delete(ctx context.Context, id payloads.ID) error {
	err := client.TypedDelete(ctx, s.client, path(id, ""), core.EmptyParams, &struct{}{})
	if err != nil {
		s.log.Error("failed to delete VNI work order",
			zap.String("id", id.String()), zap.Error(err))
		return err
	}

	s.log.Info("deleted VNI work order", zap.String("id", id.String()))
	return nil
}

func (s *Service) Approve(ctx context.Context, id payloads.ID) error {
	return s.transition(ctx, id, "approve")
}

func (s *Service) Reject(ctx context.Context, id payloads.ID) error {
	return s.transition(ctx, id, "reject")
}

func (s *Service) transition(ctx context.Context, id payloads.ID, action string) error {
	err := client.TypedPost(ctx, s.client, path(id, action), core.EmptyParams, &struct{}{})
	if err != nil {
		s.log.Error("failed to transition VNI work order",
			zap.String("id", id.String()),
			zap.String("action", action),
			zap.Error(err))
		return err
	}

	s.log.Info("transitioned VNI work order",
		zap.String("id", id.String()),
		zap.String("action", action))
	return nil
}

func (s *Service) UpdateStatus(ctx context.Context, id payloads.ID, status lifecycle.Status) error {
	params := struct {
		Status string `json:"status"`
	}{status.String()}

	err := client.TypedPut(ctx, s.client, path(id, "status"), params, &struct{}{})
	if err != nil {
		s.log.Error("failed to update VNI work order status",
			zap.String("id", id.String()),
			zap.String("status", status.String()),
			zap.Error(err))
		return err
	}

	return nil
}

func (s *Service) Execute(ctx context.Context, id payloads.ID) (*payloads.ExecuteResult, error) {
	var result payloads.ExecuteResult
	err := client.TypedPost(ctx, s.client, path(id, "execute"), core.EmptyParams, &result)
	if err != nil {
		s.log.Error("failed to execute VNI work order",
			zap.String("id", id.String()), zap.Error(err))
		return nil, err
	}

	s.log.Info("executed VNI work order",
		zap.String("id", id.String()),
		zap.String("status", result.Status.String()),
		zap.String("message", result.Message))
	return &result, nil
}

func (s *Service) ExecutionLog(ctx context.Context, id payloads.ID) (string, error) {
	var result struct {
		ExecutionLog string `json:"execution_log"`
	}
	err := client.TypedGet(ctx, s.client, path(id, "log"), core.EmptyParams, &result)
	if err != nil {
		return "", err
	}
	return result.ExecutionLog, nil
}

func (s *Service) GetStatus(ctx context.Context, id payloads.ID) (lifecycle.Status, error) {
	var result struct {
		Status lifecycle.Status `json:"status"`
	}
	err := client.TypedGet(ctx, s.client, path(id, "status"), core.EmptyParams, &result)
	if err != nil {
		return "", err
	}
	return result.Status, nil
}

func (s *Service) ExportExcel(ctx context.Context, id payloads.ID) ([]byte, string, error) {
	data, filename, err := s.client.Download(ctx, path(id, "export-excel"))
	if err != nil {
		s.log.Error("failed to export VNI work order",
			zap.String("id", id.String()), zap.Error(err))
		return nil, "", err
	}

	s.log.Debug("exported VNI work order",
		zap.String("id", id.String()),
		zap.String("filename", filename),
		zap.Int("bytes", len(data)))
	return data, filename, nil
}
