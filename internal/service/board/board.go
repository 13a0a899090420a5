// Package board владеет состоянием нарядов и операций. Все изменения идут через команды
// Board под одним мьютексом; читатели получают копии.
package board

import (
	"errors"
	"log/slog"
	"sort"
	"sync"
	"time"

	"shopfloor/internal/storage"
)

var (
	ErrWorkOrderNotFound = errors.New("work order not found")
	ErrOperationNotFound = errors.New("operation not found")
	ErrWorkOrderExists   = errors.New("work order already exists")
	ErrInvalidWorkOrder  = errors.New("invalid work order")
)

type Option func(*Board)

// WithClock подменяет источник времени (для тестов).
func WithClock(now func() time.Time) Option {
	return func(b *Board) { b.now = now }
}

func WithActivityLimit(n int) Option {
	return func(b *Board) { b.activityLimit = n }
}

func WithRecorder(r Recorder) Option {
	return func(b *Board) { b.recorder = r }
}

// Recorder получает каждое применённое или отклонённое действие (метрики).
type Recorder interface {
	ObserveTransition(action string, err error)
	ObserveExpiry(status storage.OperationStatus)
}

type Board struct {
	log *slog.Logger
	now func() time.Time

	mu         sync.RWMutex
	orders     map[string]storage.WorkOrder
	sequence   []string
	directory  Directory
	activity   []storage.Activity

	activityLimit int
	recorder      Recorder

	subMu       sync.Mutex
	subscribers map[chan Snapshot]struct{}
}

func New(log *slog.Logger, opts ...Option) *Board {
	b := &Board{
		log:           log,
		now:           time.Now,
		orders:        make(map[string]storage.WorkOrder),
		activityLimit: 500,
		subscribers:   make(map[chan Snapshot]struct{}),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// WorkOrders возвращает копии нарядов в порядке загрузки.
func (b *Board) WorkOrders() []storage.WorkOrder {
	b.mu.RLock()
	defer b.mu.RUnlock()

	out := make([]storage.WorkOrder, 0, len(b.sequence))
	for _, id := range b.sequence {
		out = append(out, b.orders[id].Clone())
	}
	return out
}

func (b *Board) WorkOrder(id string) (storage.WorkOrder, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	wo, ok := b.orders[id]
	if !ok {
		return storage.WorkOrder{}, ErrWorkOrderNotFound
	}
	return wo.Clone(), nil
}

func (b *Board) Directory() Directory {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.directory
}

// Activity: последние действия, новые в конце.
func (b *Board) Activity() []storage.Activity {
	b.mu.RLock()
	defer b.mu.RUnlock()

	out := make([]storage.Activity, len(b.activity))
	copy(out, b.activity)
	return out
}

// operations собирает операции по наряду или по всем нарядам, если id пустой.
func (b *Board) operations(workOrderID string) ([]storage.Operation, error) {
	if workOrderID != "" {
		wo, ok := b.orders[workOrderID]
		if !ok {
			return nil, ErrWorkOrderNotFound
		}
		return wo.Operations, nil
	}

	var ops []storage.Operation
	for _, id := range b.sequence {
		ops = append(ops, b.orders[id].Operations...)
	}
	return ops, nil
}

func (b *Board) appendActivity(a storage.Activity) {
	if b.activityLimit <= 0 {
		return
	}
	b.activity = append(b.activity, a)
	if over := len(b.activity) - b.activityLimit; over > 0 {
		b.activity = append(b.activity[:0:0], b.activity[over:]...)
	}
}

func sortOperations(ops []storage.Operation) {
	sort.SliceStable(ops, func(i, j int) bool {
		return ops[i].Sequence < ops[j].Sequence
	})
}
