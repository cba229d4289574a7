package library

import (
	"context"

	"github.com/itaas-cloud/vsphere-console-sdk/pkg/lifecycle"
	"github.com/itaas-cloud/vsphere-console-sdk/pkg/payloads"
)

//go:generate mockgen --build_flags=--mod=mod --destination mock/vni_workorder.go . VNIWorkOrder

type VNIWorkOrder interface {
	Get(ctx context.Context, id payloads.ID) (*payloads.VNIWorkOrder, error)
	// List returns up to limit orders, optionally filtered by status
	// (empty status means all).
	List(ctx context.Context, limit int, status lifecycle.Status) ([]*payloads.VNIWorkOrder, error)
	Create(ctx context.Context, order *payloads.VNIWorkOrder) (*payloads.VNIWorkOrder, error)
	Update(ctx context.Context, id payloads.ID, patch *payloads.VNIWorkOrder) (*payloads.VNIWorkOrder, error)
	Delete(ctx context.Context, id payloads.ID) error

	Approve(ctx context.Context, id payloads.ID) error
	Reject(ctx context.Context, id payloads.ID) error
	UpdateStatus(ctx context.Context, id payloads.ID, status lifecycle.Status) error
	Execute(ctx context.Context, id payloads.ID) (*payloads.ExecuteResult, error)

	ExecutionLog(ctx context.Context, id payloads.ID) (string, error)
	GetStatus(ctx context.Context, id payloads.ID) (lifecycle.Status, error)
	// ExportExcel downloads the spreadsheet export, returning the payload
	// and the server-suggested filename.
	ExportExcel(ctx context.Context, id payloads.ID) ([]byte, string, error)
}
