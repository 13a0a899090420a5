package storage

import "time"

type OperationStatus string

const (
	OperationPending   OperationStatus = "pending"
	OperationRunning   OperationStatus = "running"
	OperationPaused    OperationStatus = "paused"
	OperationBreak     OperationStatus = "break"
	OperationIndirect  OperationStatus = "indirect"
	OperationCompleted OperationStatus = "completed"
)

// OperationStatuses в порядке отображения на вкладке производства
var OperationStatuses = []OperationStatus{
	OperationPending,
	OperationRunning,
	OperationPaused,
	OperationBreak,
	OperationIndirect,
	OperationCompleted,
}

// Operation: один производственный шаг наряда со своим таймером.
// BreakEndsAt и IndirectEndsAt взаимоисключающие.
type Operation struct {
	ID             string          `json:"id" yaml:"id" toml:"id"`
	Name           string          `json:"name" yaml:"name" toml:"name"`
	Sequence       int             `json:"sequence" yaml:"sequence" toml:"sequence"`
	WorkCenter     string          `json:"work_center" yaml:"work_center" toml:"work_center"`
	PlannedMinutes float64         `json:"planned_minutes" yaml:"planned_minutes" toml:"planned_minutes"`
	Status         OperationStatus `json:"status" yaml:"status" toml:"status"`
	TimerSeconds   int64           `json:"timer_seconds" yaml:"timer_seconds" toml:"timer_seconds"`
	BreakEndsAt    *time.Time      `json:"break_ends_at,omitempty" yaml:"-" toml:"-"`
	IndirectEndsAt *time.Time      `json:"indirect_ends_at,omitempty" yaml:"-" toml:"-"`
	IndirectReason string          `json:"indirect_reason,omitempty" yaml:"-" toml:"-"`
	CompletedAt    *time.Time      `json:"completed_at,omitempty" yaml:"-" toml:"-"`
}

// Clone возвращает копию без общих указателей.
func (o Operation) Clone() Operation {
	o.BreakEndsAt = cloneTime(o.BreakEndsAt)
	o.IndirectEndsAt = cloneTime(o.IndirectEndsAt)
	o.CompletedAt = cloneTime(o.CompletedAt)
	return o
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}
