package board

import (
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"

	"shopfloor/internal/production"
	"shopfloor/internal/storage"
)

const (
	ActionPlay       = "play"
	ActionPause      = "pause"
	ActionBreak      = "break"
	ActionIndirect   = "indirect"
	ActionComplete   = "complete"
	ActionManualTime = "manual-time"
	ActionStartAll   = "start-all"
	ActionExpire     = "expire"
	ActionProduced   = "produced"
	ActionStatus     = "status"
	ActionCreate     = "create"
	ActionRemove     = "remove"
)

type transition func(op storage.Operation, now time.Time) (storage.Operation, error)

// apply применяет переход к одной операции и публикует снимок, если что-то изменилось.
// При отказе операция возвращается без изменений вместе с ошибкой.
func (b *Board) apply(action, workOrderID, operationID string, fn transition) (storage.Operation, error) {
	b.mu.Lock()

	now := b.now()
	wo, ok := b.orders[workOrderID]
	if !ok {
		b.mu.Unlock()
		return storage.Operation{}, fmt.Errorf("board.%s: %s: %w", action, workOrderID, ErrWorkOrderNotFound)
	}
	idx := slices.IndexFunc(wo.Operations, func(op storage.Operation) bool { return op.ID == operationID })
	if idx < 0 {
		b.mu.Unlock()
		return storage.Operation{}, fmt.Errorf("board.%s: %s/%s: %w", action, workOrderID, operationID, ErrOperationNotFound)
	}

	current := wo.Operations[idx]
	next, err := fn(current.Clone(), now)
	b.observe(action, err)
	if err != nil {
		b.mu.Unlock()
		b.log.Debug("transition rejected",
			"action", action, "work_order", workOrderID, "operation", operationID, "error", err.Error())
		return current.Clone(), err
	}

	ops := slices.Clone(wo.Operations)
	ops[idx] = next
	wo.Operations = ops
	b.orders[workOrderID] = wo

	b.appendActivity(storage.Activity{
		ID:          uuid.NewString(),
		At:          now,
		Action:      action,
		WorkOrderID: workOrderID,
		OperationID: operationID,
		Status:      next.Status,
	})
	b.publishLocked(now)
	b.mu.Unlock()

	b.log.Debug("transition applied",
		"action", action, "work_order", workOrderID, "operation", operationID, "status", string(next.Status))
	return next.Clone(), nil
}

func (b *Board) observe(action string, err error) {
	if b.recorder != nil {
		b.recorder.ObserveTransition(action, err)
	}
}

func (b *Board) Play(workOrderID, operationID string) (storage.Operation, error) {
	return b.apply(ActionPlay, workOrderID, operationID, production.Play)
}

func (b *Board) Pause(workOrderID, operationID string) (storage.Operation, error) {
	return b.apply(ActionPause, workOrderID, operationID, func(op storage.Operation, _ time.Time) (storage.Operation, error) {
		return production.Pause(op)
	})
}

func (b *Board) StartBreak(workOrderID, operationID string, minutes int) (storage.Operation, error) {
	return b.apply(ActionBreak, workOrderID, operationID, func(op storage.Operation, now time.Time) (storage.Operation, error) {
		return production.StartBreak(op, minutes, now)
	})
}

func (b *Board) StartIndirect(workOrderID, operationID string, minutes int, reason string) (storage.Operation, error) {
	return b.apply(ActionIndirect, workOrderID, operationID, func(op storage.Operation, now time.Time) (storage.Operation, error) {
		return production.StartIndirect(op, minutes, reason, now)
	})
}

func (b *Board) Complete(workOrderID, operationID string) (storage.Operation, error) {
	return b.apply(ActionComplete, workOrderID, operationID, production.Complete)
}

func (b *Board) RecordManualTime(workOrderID, operationID string, hours, minutes, seconds int) (storage.Operation, error) {
	return b.apply(ActionManualTime, workOrderID, operationID, func(op storage.Operation, _ time.Time) (storage.Operation, error) {
		return production.RecordManualTime(op, hours, minutes, seconds)
	})
}

// StartAll запускает все ожидающие и приостановленные операции наряда
// (или всех нарядов при пустом id) одной заменой состояния.
func (b *Board) StartAll(workOrderID string) (int, error) {
	b.mu.Lock()

	now := b.now()
	ids := b.sequence
	if workOrderID != "" {
		if _, ok := b.orders[workOrderID]; !ok {
			b.mu.Unlock()
			return 0, fmt.Errorf("board.%s: %s: %w", ActionStartAll, workOrderID, ErrWorkOrderNotFound)
		}
		ids = []string{workOrderID}
	}

	total := 0
	for _, id := range ids {
		wo := b.orders[id]
		ops, started := production.StartAll(wo.Operations)
		if started == 0 {
			continue
		}
		wo.Operations = ops
		b.orders[id] = wo
		total += started
	}

	b.observe(ActionStartAll, nil)
	if total > 0 {
		b.appendActivity(storage.Activity{
			ID:          uuid.NewString(),
			At:          now,
			Action:      ActionStartAll,
			WorkOrderID: workOrderID,
			Status:      storage.OperationRunning,
			Detail:      fmt.Sprintf("%d operations started", total),
		})
		b.publishLocked(now)
	}
	b.mu.Unlock()

	if total > 0 {
		b.log.Info("start all", "work_order", workOrderID, "started", total)
	}

	return total, nil
}

// updateOrder: общий путь для изменений на уровне наряда.
func (b *Board) updateOrder(action, workOrderID string, fn func(storage.WorkOrder) (storage.WorkOrder, error)) (storage.WorkOrder, error) {
	b.mu.Lock()

	now := b.now()
	wo, ok := b.orders[workOrderID]
	if !ok {
		b.mu.Unlock()
		return storage.WorkOrder{}, fmt.Errorf("board.%s: %s: %w", action, workOrderID, ErrWorkOrderNotFound)
	}

	next, err := fn(wo)
	b.observe(action, err)
	if err != nil {
		b.mu.Unlock()
		return wo.Clone(), err
	}
	b.orders[workOrderID] = next

	b.appendActivity(storage.Activity{
		ID:          uuid.NewString(),
		At:          now,
		Action:      action,
		WorkOrderID: workOrderID,
		Detail:      fmt.Sprintf("status=%s produced=%d progress=%d", next.Status, next.Produced, next.Progress),
	})
	b.publishLocked(now)
	b.mu.Unlock()

	return next.Clone(), nil
}

func (b *Board) SetProduced(workOrderID string, produced int) (storage.WorkOrder, error) {
	return b.updateOrder(ActionProduced, workOrderID, func(wo storage.WorkOrder) (storage.WorkOrder, error) {
		return production.SetProduced(wo, produced)
	})
}

func (b *Board) SetStatus(workOrderID string, status storage.WorkOrderStatus) (storage.WorkOrder, error) {
	return b.updateOrder(ActionStatus, workOrderID, func(wo storage.WorkOrder) (storage.WorkOrder, error) {
		return production.SetStatus(wo, status)
	})
}

// Create добавляет наряд; без id выдаётся uuid, без операций: операции из маршрута.
func (b *Board) Create(wo storage.WorkOrder) (storage.WorkOrder, error) {
	const op = "board.create"

	if wo.ID == "" {
		wo.ID = uuid.NewString()
	}

	b.mu.Lock()

	if _, exists := b.orders[wo.ID]; exists {
		b.mu.Unlock()
		return storage.WorkOrder{}, fmt.Errorf("%s: %s: %w", op, wo.ID, ErrWorkOrderExists)
	}
	if len(wo.Operations) == 0 && wo.RoutingID != "" {
		if _, ok := b.directory.Routing(wo.RoutingID); !ok {
			b.mu.Unlock()
			return storage.WorkOrder{}, fmt.Errorf("%s: routing %s not found: %w", op, wo.RoutingID, ErrInvalidWorkOrder)
		}
	}

	prepared, err := prepare(wo, b.directory)
	b.observe(ActionCreate, err)
	if err != nil {
		b.mu.Unlock()
		return storage.WorkOrder{}, fmt.Errorf("%s: %w", op, err)
	}

	now := b.now()
	b.orders[prepared.ID] = prepared
	b.sequence = append(b.sequence, prepared.ID)
	b.appendActivity(storage.Activity{
		ID:          uuid.NewString(),
		At:          now,
		Action:      ActionCreate,
		WorkOrderID: prepared.ID,
		Detail:      prepared.Number,
	})
	b.publishLocked(now)
	b.mu.Unlock()

	b.log.Info("work order created", "id", prepared.ID, "operations", len(prepared.Operations))
	return prepared.Clone(), nil
}

// Remove удаляет наряд вместе с его операциями.
func (b *Board) Remove(workOrderID string) error {
	b.mu.Lock()

	if _, ok := b.orders[workOrderID]; !ok {
		b.mu.Unlock()
		return fmt.Errorf("board.%s: %s: %w", ActionRemove, workOrderID, ErrWorkOrderNotFound)
	}

	now := b.now()
	delete(b.orders, workOrderID)
	b.sequence = slices.DeleteFunc(slices.Clone(b.sequence), func(id string) bool { return id == workOrderID })
	b.observe(ActionRemove, nil)
	b.appendActivity(storage.Activity{
		ID:          uuid.NewString(),
		At:          now,
		Action:      ActionRemove,
		WorkOrderID: workOrderID,
	})
	b.publishLocked(now)
	b.mu.Unlock()

	b.log.Info("work order removed", "id", workOrderID)
	return nil
}
