package board

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"shopfloor/internal/production"
	"shopfloor/internal/storage"
)

// Dataset отдаёт начальные данные из seed-файла или БД.
type Dataset interface {
	GetSites(ctx context.Context) ([]storage.Site, error)
	GetTeams(ctx context.Context) ([]storage.Team, error)
	GetEmployees(ctx context.Context) ([]storage.Employee, error)
	GetBOMs(ctx context.Context) ([]storage.BOM, error)
	GetRoutings(ctx context.Context) ([]storage.Routing, error)
	GetPickLists(ctx context.Context) ([]storage.PickList, error)
	GetWorkOrders(ctx context.Context) ([]storage.WorkOrder, error)
}

// Directory: справочники только для чтения.
type Directory struct {
	Sites     []storage.Site
	Teams     []storage.Team
	Employees []storage.Employee
	BOMs      []storage.BOM
	Routings  []storage.Routing
	PickLists []storage.PickList
}

func (d Directory) Routing(id string) (storage.Routing, bool) {
	for _, r := range d.Routings {
		if r.ID == id {
			return r, true
		}
	}
	return storage.Routing{}, false
}

// Load параллельно читает все справочники и наряды и заменяет ими текущее состояние.
func (b *Board) Load(ctx context.Context, ds Dataset) error {
	const op = "service.board.Load"

	var (
		dir    Directory
		orders []storage.WorkOrder
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		if dir.Sites, err = ds.GetSites(gCtx); err != nil {
			return fmt.Errorf("sites: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if dir.Teams, err = ds.GetTeams(gCtx); err != nil {
			return fmt.Errorf("teams: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if dir.Employees, err = ds.GetEmployees(gCtx); err != nil {
			return fmt.Errorf("employees: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if dir.BOMs, err = ds.GetBOMs(gCtx); err != nil {
			return fmt.Errorf("boms: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if dir.Routings, err = ds.GetRoutings(gCtx); err != nil {
			return fmt.Errorf("routings: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if dir.PickLists, err = ds.GetPickLists(gCtx); err != nil {
			return fmt.Errorf("pick lists: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if orders, err = ds.GetWorkOrders(gCtx); err != nil {
			return fmt.Errorf("work orders: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	byID := make(map[string]storage.WorkOrder, len(orders))
	sequence := make([]string, 0, len(orders))
	for _, wo := range orders {
		if _, dup := byID[wo.ID]; dup {
			return fmt.Errorf("%s: %s: %w", op, wo.ID, ErrWorkOrderExists)
		}
		wo, err := prepare(wo, dir)
		if err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
		byID[wo.ID] = wo
		sequence = append(sequence, wo.ID)
	}

	b.mu.Lock()
	b.directory = dir
	b.orders = byID
	b.sequence = sequence
	b.activity = nil
	b.mu.Unlock()

	b.log.Info("dataset loaded",
		"work_orders", len(orders),
		"sites", len(dir.Sites),
		"employees", len(dir.Employees),
	)

	return nil
}

// prepare приводит наряд к рабочему виду: операции из маршрута, статусы по умолчанию, прогресс.
func prepare(wo storage.WorkOrder, dir Directory) (storage.WorkOrder, error) {
	if wo.ID == "" {
		return wo, fmt.Errorf("work order %q: id is required: %w", wo.Number, ErrInvalidWorkOrder)
	}
	if wo.Status == "" {
		wo.Status = storage.WorkOrderNotStarted
	}
	if !wo.Status.Valid() {
		return wo, fmt.Errorf("work order %s: %q: %w", wo.ID, wo.Status, production.ErrUnknownStatus)
	}

	if len(wo.Operations) == 0 && wo.RoutingID != "" {
		if r, ok := dir.Routing(wo.RoutingID); ok {
			wo.Operations = production.OperationsFromRouting(r)
		}
	}

	ops := make([]storage.Operation, len(wo.Operations))
	seen := make(map[string]struct{}, len(ops))
	for i, op := range wo.Operations {
		if op.ID == "" {
			return wo, fmt.Errorf("work order %s: operation %q without id: %w", wo.ID, op.Name, ErrInvalidWorkOrder)
		}
		if _, dup := seen[op.ID]; dup {
			return wo, fmt.Errorf("work order %s: duplicate operation id %s: %w", wo.ID, op.ID, ErrInvalidWorkOrder)
		}
		seen[op.ID] = struct{}{}
		if op.Status == "" {
			op.Status = storage.OperationPending
		}
		if err := production.Validate(op); err != nil {
			return wo, fmt.Errorf("work order %s: operation %s: %w: %w", wo.ID, op.ID, ErrInvalidWorkOrder, err)
		}
		ops[i] = op.Clone()
	}
	sortOperations(ops)
	wo.Operations = ops

	prepared, err := production.SetProduced(wo, wo.Produced)
	if err != nil {
		return wo, fmt.Errorf("work order %s: %w: %w", wo.ID, ErrInvalidWorkOrder, err)
	}
	return prepared, nil
}
