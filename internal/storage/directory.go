package storage

import "time"

type Site struct {
	ID   string `json:"id" yaml:"id" toml:"id"`
	Code string `json:"code" yaml:"code" toml:"code"`
	Name string `json:"name" yaml:"name" toml:"name"`
	City string `json:"city" yaml:"city" toml:"city"`
}

type Team struct {
	ID     string `json:"id" yaml:"id" toml:"id"`
	Name   string `json:"name" yaml:"name" toml:"name"`
	SiteID string `json:"site_id" yaml:"site_id" toml:"site_id"`
	Lead   string `json:"lead" yaml:"lead" toml:"lead"`
}

type Employee struct {
	ID       string `json:"id" yaml:"id" toml:"id"`
	Name     string `json:"name" yaml:"name" toml:"name"`
	Email    string `json:"email" yaml:"email" toml:"email"`
	Role     string `json:"role" yaml:"role" toml:"role"`
	TeamID   string `json:"team_id" yaml:"team_id" toml:"team_id"`
	SiteID   string `json:"site_id" yaml:"site_id" toml:"site_id"`
	IsActive bool   `json:"is_active" yaml:"is_active" toml:"is_active"`
}

type BOM struct {
	ID       string    `json:"id" yaml:"id" toml:"id"`
	Product  string    `json:"product" yaml:"product" toml:"product"`
	Revision string    `json:"revision" yaml:"revision" toml:"revision"`
	Items    []BOMItem `json:"items" yaml:"items" toml:"items"`
}

type BOMItem struct {
	Line        int     `json:"line" yaml:"line" toml:"line"`
	PartNumber  string  `json:"part_number" yaml:"part_number" toml:"part_number"`
	Description string  `json:"description" yaml:"description" toml:"description"`
	Quantity    float64 `json:"quantity" yaml:"quantity" toml:"quantity"`
	Unit        string  `json:"unit" yaml:"unit" toml:"unit"`
}

type Routing struct {
	ID      string        `json:"id" yaml:"id" toml:"id"`
	Product string        `json:"product" yaml:"product" toml:"product"`
	Name    string        `json:"name" yaml:"name" toml:"name"`
	Steps   []RoutingStep `json:"steps" yaml:"steps" toml:"steps"`
}

type RoutingStep struct {
	Sequence       int     `json:"sequence" yaml:"sequence" toml:"sequence"`
	Name           string  `json:"name" yaml:"name" toml:"name"`
	WorkCenter     string  `json:"work_center" yaml:"work_center" toml:"work_center"`
	PlannedMinutes float64 `json:"planned_minutes" yaml:"planned_minutes" toml:"planned_minutes"`
}

type PickList struct {
	ID          string         `json:"id" yaml:"id" toml:"id"`
	WorkOrderID string         `json:"work_order_id" yaml:"work_order_id" toml:"work_order_id"`
	SiteID      string         `json:"site_id" yaml:"site_id" toml:"site_id"`
	Status      string         `json:"status" yaml:"status" toml:"status"`
	CreatedAt   time.Time      `json:"created_at" yaml:"created_at" toml:"created_at"`
	Items       []PickListItem `json:"items" yaml:"items" toml:"items"`
}

type PickListItem struct {
	Line       int     `json:"line" yaml:"line" toml:"line"`
	PartNumber string  `json:"part_number" yaml:"part_number" toml:"part_number"`
	Location   string  `json:"location" yaml:"location" toml:"location"`
	Quantity   float64 `json:"quantity" yaml:"quantity" toml:"quantity"`
	Picked     float64 `json:"picked" yaml:"picked" toml:"picked"`
}

// Dataset: всё, что загружается при старте из seed-файла или БД.
type Dataset struct {
	Sites      []Site      `json:"sites" yaml:"sites" toml:"sites"`
	Teams      []Team      `json:"teams" yaml:"teams" toml:"teams"`
	Employees  []Employee  `json:"employees" yaml:"employees" toml:"employees"`
	BOMs       []BOM       `json:"boms" yaml:"boms" toml:"boms"`
	Routings   []Routing   `json:"routings" yaml:"routings" toml:"routings"`
	PickLists  []PickList  `json:"pick_lists" yaml:"pick_lists" toml:"pick_lists"`
	WorkOrders []WorkOrder `json:"work_orders" yaml:"work_orders" toml:"work_orders"`
}
