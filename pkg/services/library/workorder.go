package library

import (
	"context"

	"github.com/itaas-cloud/vsphere-console-sdk/pkg/payloads"
)

//go:generate mockgen --build_flags=--mod=mod --destination mock/workorder.go . WorkOrder

type WorkOrder interface {
	Get(ctx context.Context, id payloads.ID) (*payloads.WorkOrder, error)
	List(ctx context.Context, limit int) ([]*payloads.WorkOrder, error)
	Create(ctx context.Context, draft *payloads.WorkOrderDraft) (*payloads.WorkOrder, error)
	Update(ctx context.Context, id payloads.ID, patch *payloads.WorkOrder) (*payloads.WorkOrder, error)
	Delete(ctx context.Context, id payloads.ID) error

	Approve(ctx context.Context, id payloads.ID) error
	Execute(ctx context.Context, id payloads.ID) (*payloads.ExecuteResult, error)
}
