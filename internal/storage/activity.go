package storage

import "time"

type Activity struct {
	ID          string          `json:"id"`
	At          time.Time       `json:"at"`
	Action      string          `json:"action"`
	WorkOrderID string          `json:"work_order_id"`
	OperationID string          `json:"operation_id,omitempty"`
	Status      OperationStatus `json:"status,omitempty"`
	Detail      string          `json:"detail,omitempty"`
}

// Summary: производные метрики, считаются заново по всему набору операций.
type Summary struct {
	Counts       map[OperationStatus]int `json:"counts"`
	TotalSeconds int64                   `json:"total_seconds"`
	Operations   int                     `json:"operations"`
}
