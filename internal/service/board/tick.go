package board

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"shopfloor/internal/production"
	"shopfloor/internal/storage"
)

// Snapshot: согласованное состояние доски на момент At.
type Snapshot struct {
	At         time.Time           `json:"at"`
	Summary    storage.Summary     `json:"summary"`
	WorkOrders []storage.WorkOrder `json:"work_orders"`
}

// Tick делает один проход таймера по всем операциям: истечение перерывов и +1 секунда
// для RUNNING. Результат подменяется целиком под одной блокировкой.
func (b *Board) Tick() {
	b.mu.Lock()

	now := b.now()
	var expired []storage.Activity
	for _, id := range b.sequence {
		wo := b.orders[id]
		ops := make([]storage.Operation, len(wo.Operations))
		for i, op := range wo.Operations {
			was := op.Status
			next, fired := production.Expire(op, now)
			if fired {
				expired = append(expired, storage.Activity{
					ID:          uuid.NewString(),
					At:          now,
					Action:      ActionExpire,
					WorkOrderID: id,
					OperationID: op.ID,
					Status:      next.Status,
					Detail:      fmt.Sprintf("%s ended", was),
				})
				if b.recorder != nil {
					b.recorder.ObserveExpiry(was)
				}
			}
			ops[i], _ = production.Tick(next, now)
		}
		wo.Operations = ops
		b.orders[id] = wo
	}
	for _, a := range expired {
		b.appendActivity(a)
	}

	b.publishLocked(now)
	b.mu.Unlock()

	for _, a := range expired {
		b.log.Info("suspension expired", "work_order", a.WorkOrderID, "operation", a.OperationID, "detail", a.Detail)
	}
}

// Run тикает с заданным интервалом, пока не отменён ctx.
func (b *Board) Run(ctx context.Context, interval time.Duration) error {
	if interval <= 0 {
		return fmt.Errorf("board.Run: interval must be positive, got %s", interval)
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	b.log.Info("production timer started", "interval", interval.String())
	for {
		select {
		case <-ctx.Done():
			b.log.Info("production timer stopped")
			return nil
		case <-ticker.C:
			b.Tick()
		}
	}
}

// Summary считает производные метрики по наряду или по всей доске.
func (b *Board) Summary(workOrderID string) (storage.Summary, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	ops, err := b.operations(workOrderID)
	if err != nil {
		return storage.Summary{}, fmt.Errorf("board.Summary: %s: %w", workOrderID, err)
	}
	return production.Summarize(ops), nil
}

func (b *Board) Snapshot() Snapshot {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.snapshotLocked(b.now())
}

func (b *Board) snapshotLocked(now time.Time) Snapshot {
	orders := make([]storage.WorkOrder, 0, len(b.sequence))
	for _, id := range b.sequence {
		orders = append(orders, b.orders[id].Clone())
	}
	ops, _ := b.operations("")
	return Snapshot{
		At:         now,
		Summary:    production.Summarize(ops),
		WorkOrders: orders,
	}
}

// Subscribe возвращает канал снимков и функцию отписки. Медленный подписчик
// теряет промежуточные снимки, но всегда получает последний.
func (b *Board) Subscribe() (<-chan Snapshot, func()) {
	ch := make(chan Snapshot, 1)

	b.subMu.Lock()
	b.subscribers[ch] = struct{}{}
	b.subMu.Unlock()

	var once bool
	return ch, func() {
		b.subMu.Lock()
		defer b.subMu.Unlock()
		if once {
			return
		}
		once = true
		delete(b.subscribers, ch)
		close(ch)
	}
}

func (b *Board) hasSubscribers() bool {
	b.subMu.Lock()
	defer b.subMu.Unlock()
	return len(b.subscribers) > 0
}

// publishLocked вызывается под b.mu, так что снимки приходят в порядке изменений.
// Порядок блокировок: mu, затем subMu.
func (b *Board) publishLocked(now time.Time) {
	if !b.hasSubscribers() {
		return
	}
	b.publish(b.snapshotLocked(now))
}

func (b *Board) publish(snap Snapshot) {
	b.subMu.Lock()
	defer b.subMu.Unlock()

	for ch := range b.subscribers {
		select {
		case ch <- snap:
			continue
		default:
		}
		// выкидываем устаревший снимок
		select {
		case <-ch:
		default:
		}
		select {
		case ch <- snap:
		default:
		}
	}
}
