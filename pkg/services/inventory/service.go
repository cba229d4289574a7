// Package inventory implements the infrastructure inventory reads and the
// concurrent snapshot assembly placement validation depends on.
package inventory

import (
	"context"
	"fmt"

	"github.com/mitchellh/mapstructure"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/itaas-cloud/vsphere-console-sdk/internal/common/core"
	"github.com/itaas-cloud/vsphere-console-sdk/internal/common/logger"
	"github.com/itaas-cloud/vsphere-console-sdk/pkg/client"
	"github.com/itaas-cloud/vsphere-console-sdk/pkg/payloads"
	"github.com/itaas-cloud/vsphere-console-sdk/pkg/placement"
	"github.com/itaas-cloud/vsphere-console-sdk/pkg/services/library"
)

type Service struct {
	client *client.Client
	log    *logger.Logger
}

func New(client *client.Client, log *logger.Logger) library.Inventory {
	return &Service{client: client, log: log}
}

func list[T any](ctx context.Context, s *Service, resource string) ([]T, error) {
	var result []T
	err := client.TypedGet(ctx, s.client, resource, core.EmptyParams, &result)
	if err != nil {
		s.log.Error("failed to list inventory resource",
			zap.String("resource", resource), zap.Error(err))
		return nil, err
	}
	return result, nil
}

func (s *Service) Hosts(ctx context.Context) ([]payloads.Host, error) {
	return list[payloads.Host](ctx, s, "hosts")
}

func (s *Service) Datastores(ctx context.Context) ([]payloads.Datastore, error) {
	return list[payloads.Datastore](ctx, s, "datastores")
}

func (s *Service) Networks(ctx context.Context) ([]payloads.Network, error) {
	return list[payloads.Network](ctx, s, "networks")
}

func (s *Service) VMs(ctx context.Context) ([]payloads.VM, error) {
	return list[payloads.VM](ctx, s, "vms")
}

func (s *Service) Templates(ctx context.Context) ([]payloads.Template, error) {
	return list[payloads.Template](ctx, s, "templates")
}

func (s *Service) ResourcePools(ctx context.Context) ([]payloads.ResourcePool, error) {
	return list[payloads.ResourcePool](ctx, s, "resource-pools")
}

func (s *Service) IPPools(ctx context.Context) ([]payloads.IPPool, error) {
	return list[payloads.IPPool](ctx, s, "ip-pools")
}

func (s *Service) Folders(ctx context.Context) ([]payloads.Folder, error) {
	return list[payloads.Folder](ctx, s, "folders")
}

func (s *Service) Datacenters(ctx context.Context) ([]payloads.Datacenter, error) {
	return list[payloads.Datacenter](ctx, s, "datacenters")
}

// DashboardOverview fetches the overview document. The backend builds it
// ad hoc and is loose about numeric types (counts sometimes arrive as
// floats or strings), so it is decoded weakly typed instead of strictly.
func (s *Service) DashboardOverview(ctx context.Context) (*payloads.DashboardOverview, error) {
	var raw map[string]any
	err := client.TypedGet(ctx, s.client, "system/overview/dashboard", core.EmptyParams, &raw)
	if err != nil {
		s.log.Error("failed to fetch dashboard overview", zap.Error(err))
		return nil, err
	}

	var overview payloads.DashboardOverview
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &overview,
		WeaklyTypedInput: true,
		TagName:          "mapstructure",
	})
	if err != nil {
		return nil, err
	}

	if err := decoder.Decode(raw); err != nil {
		return nil, fmt.Errorf("failed to decode dashboard overview: %w", err)
	}

	return &overview, nil
}

// Snapshot fetches every inventory category concurrently. The snapshot is
// all-or-nothing: placement validation is meaningless against partial
// data, so any failed category fails the whole call.
func (s *Service) Snapshot(ctx context.Context) (*placement.Inventory, error) {
	var inv placement.Inventory

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		inv.Hosts, err = s.Hosts(ctx)
		return err
	})
	g.Go(func() (err error) {
		inv.Datastores, err = s.Datastores(ctx)
		return err
	})
	g.Go(func() (err error) {
		inv.Networks, err = s.Networks(ctx)
		return err
	})
	g.Go(func() (err error) {
		inv.VMs, err = s.VMs(ctx)
		return err
	})
	g.Go(func() (err error) {
		inv.Templates, err = s.Templates(ctx)
		return err
	})
	g.Go(func() (err error) {
		inv.ResourcePools, err = s.ResourcePools(ctx)
		return err
	})
	g.Go(func() (err error) {
		inv.IPPools, err = s.IPPools(ctx)
		return err
	})
	g.Go(func() (err error) {
		inv.Folders, err = s.Folders(ctx)
		return err
	})
	g.Go(func() (err error) {
		inv.Datacenters, err = s.Datacenters(ctx)
		return err
	})

	if err := g.Wait(); err != nil {
		s.log.Error("failed to assemble inventory snapshot", zap.Error(err))
		return nil, err
	}

	return &inv, nil
}
