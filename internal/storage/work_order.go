package storage

import "time"

type WorkOrderStatus string

const (
	WorkOrderNotStarted WorkOrderStatus = "not-started"
	WorkOrderInProgress WorkOrderStatus = "in-progress"
	WorkOrderOnHold     WorkOrderStatus = "on-hold"
	WorkOrderCompleted  WorkOrderStatus = "completed"
)

func (s WorkOrderStatus) Valid() bool {
	switch s {
	case WorkOrderNotStarted, WorkOrderInProgress, WorkOrderOnHold, WorkOrderCompleted:
		return true
	}
	return false
}

// WorkOrder: производственный наряд. Progress всегда пересчитывается из Produced/Target.
type WorkOrder struct {
	ID         string          `json:"id" yaml:"id" toml:"id"`
	Number     string          `json:"number" yaml:"number" toml:"number"`
	Product    string          `json:"product" yaml:"product" toml:"product"`
	Customer   string          `json:"customer" yaml:"customer" toml:"customer"`
	SiteID     string          `json:"site_id" yaml:"site_id" toml:"site_id"`
	TeamID     string          `json:"team_id" yaml:"team_id" toml:"team_id"`
	RoutingID  string          `json:"routing_id" yaml:"routing_id" toml:"routing_id"`
	BOMID      string          `json:"bom_id" yaml:"bom_id" toml:"bom_id"`
	Priority   string          `json:"priority" yaml:"priority" toml:"priority"`
	Produced   int             `json:"produced" yaml:"produced" toml:"produced"`
	Target     int             `json:"target" yaml:"target" toml:"target"`
	Progress   int             `json:"progress" yaml:"-" toml:"-"`
	Status     WorkOrderStatus `json:"status" yaml:"status" toml:"status"`
	StartDate  time.Time       `json:"start_date" yaml:"start_date" toml:"start_date"`
	DueDate    time.Time       `json:"due_date" yaml:"due_date" toml:"due_date"`
	Operations []Operation     `json:"operations" yaml:"operations" toml:"operations"`
}

func (w WorkOrder) Clone() WorkOrder {
	ops := make([]Operation, len(w.Operations))
	for i, op := range w.Operations {
		ops[i] = op.Clone()
	}
	w.Operations = ops
	return w
}
