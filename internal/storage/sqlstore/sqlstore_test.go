package sqlstore

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopfloor/internal/storage"
)

func newTestStorage(t *testing.T) *Storage {
	t.Helper()

	s, err := New(DriverSQLite, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	ctx := context.Background()
	require.NoError(t, s.Ping(ctx))
	require.NoError(t, s.Migrate(ctx))

	return s
}

func exec(t *testing.T, s *Storage, query string, args ...any) {
	t.Helper()
	_, err := s.db.Exec(query, args...)
	require.NoError(t, err)
}

func TestNew_Validation(t *testing.T) {
	_, err := New("postgres", "dsn")
	assert.ErrorContains(t, err, "unsupported driver")

	_, err = New(DriverMySQL, " ")
	assert.ErrorContains(t, err, "dsn is required")
}

func TestMigrate_Idempotent(t *testing.T) {
	s := newTestStorage(t)
	require.NoError(t, s.Migrate(context.Background()))
}

func TestStorage_Directory(t *testing.T) {
	s := newTestStorage(t)

	exec(t, s, `INSERT INTO sites (id, code, name, city) VALUES (?, ?, ?, ?), (?, ?, ?, ?)`,
		"S2", "BRD", "Площадка №2", "Бердск", "S1", "NSK", "Площадка №1", "Новосибирск")
	exec(t, s, `INSERT INTO teams (id, name, site_id, lead_name) VALUES (?, ?, ?, ?)`, "T1", "Сварка", "S1", "Кузнецов")
	exec(t, s, `INSERT INTO employees (id, name, email, role, team_id, site_id, is_active) VALUES (?, ?, ?, ?, ?, ?, ?), (?, ?, ?, ?, ?, ?, ?)`,
		"E2", "Смирнов", "smirnov@shopfloor.com", "operator", "T1", "S1", 0,
		"E1", "Иванов", "ivanov@shopfloor.com", "operator", "T1", "S1", 1)

	ctx := context.Background()

	sites, err := s.GetSites(ctx)
	require.NoError(t, err)
	require.Len(t, sites, 2)
	assert.Equal(t, "S1", sites[0].ID)

	teams, err := s.GetTeams(ctx)
	require.NoError(t, err)
	require.Len(t, teams, 1)
	assert.Equal(t, "Кузнецов", teams[0].Lead)

	employees, err := s.GetEmployees(ctx)
	require.NoError(t, err)
	require.Len(t, employees, 2)
	assert.Equal(t, "Иванов", employees[0].Name)
	assert.True(t, employees[0].IsActive)
	assert.False(t, employees[1].IsActive)
}

func TestStorage_Catalog(t *testing.T) {
	s := newTestStorage(t)

	exec(t, s, `INSERT INTO boms (id, product, revision) VALUES (?, ?, ?)`, "BOM-100", "Рама", "B")
	exec(t, s, `INSERT INTO bom_items (bom_id, line, part_number, description, quantity, unit) VALUES (?, ?, ?, ?, ?, ?), (?, ?, ?, ?, ?, ?)`,
		"BOM-100", 2, "PL-6", "Пластина", 2.0, "pcs",
		"BOM-100", 1, "PR-40", "Профиль", 4.5, "m")
	exec(t, s, `INSERT INTO routings (id, product, name) VALUES (?, ?, ?)`, "R-100", "Рама", "стандарт")
	exec(t, s, `INSERT INTO routing_steps (routing_id, sequence, name, work_center, planned_minutes) VALUES (?, ?, ?, ?, ?), (?, ?, ?, ?, ?)`,
		"R-100", 20, "Сварка", "WELD", 35.0,
		"R-100", 10, "Резка", "CUT", 12.0)
	exec(t, s, `INSERT INTO pick_lists (id, work_order_id, site_id, status, created_at) VALUES (?, ?, ?, ?, ?)`,
		"PL-1", "WO-1", "S3", "open", "2026-10-15 09:30:00")
	exec(t, s, `INSERT INTO pick_list_items (pick_list_id, line, part_number, location, quantity, picked) VALUES (?, ?, ?, ?, ?, ?)`,
		"PL-1", 1, "PR-40", "A-01", 10.0, 4.0)

	ctx := context.Background()

	boms, err := s.GetBOMs(ctx)
	require.NoError(t, err)
	require.Len(t, boms, 1)
	require.Len(t, boms[0].Items, 2)
	assert.Equal(t, "PR-40", boms[0].Items[0].PartNumber)
	assert.Equal(t, 4.5, boms[0].Items[0].Quantity)

	routings, err := s.GetRoutings(ctx)
	require.NoError(t, err)
	require.Len(t, routings, 1)
	require.Len(t, routings[0].Steps, 2)
	assert.Equal(t, 10, routings[0].Steps[0].Sequence)

	lists, err := s.GetPickLists(ctx)
	require.NoError(t, err)
	require.Len(t, lists, 1)
	assert.Equal(t, time.Date(2026, 10, 15, 9, 30, 0, 0, time.UTC), lists[0].CreatedAt)
	require.Len(t, lists[0].Items, 1)
	assert.Equal(t, 4.0, lists[0].Items[0].Picked)
}

func TestStorage_GetWorkOrders(t *testing.T) {
	s := newTestStorage(t)

	exec(t, s, `INSERT INTO work_orders (id, number, product, site_id, routing_id, produced, target, status, start_date, due_date)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?), (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		"WO-2", "2026-002", "Кронштейн", "S2", "R-200", 0, 0, "not-started", nil, "2026-10-30",
		"WO-1", "2026-001", "Рама", "S1", "R-100", 50, 200, "in-progress", "2026-10-13", "2026-10-20")
	exec(t, s, `INSERT INTO work_order_operations (work_order_id, id, name, sequence, status, timer_seconds) VALUES (?, ?, ?, ?, ?, ?), (?, ?, ?, ?, ?, ?)`,
		"WO-1", "20", "Сварка", 20, "paused", 600,
		"WO-1", "10", "Резка", 10, "completed", 1200)

	orders, err := s.GetWorkOrders(context.Background())
	require.NoError(t, err)
	require.Len(t, orders, 2)

	wo := orders[0]
	assert.Equal(t, "WO-1", wo.ID)
	assert.Equal(t, 25, wo.Progress)
	assert.Equal(t, storage.WorkOrderInProgress, wo.Status)
	assert.Equal(t, time.Date(2026, 10, 20, 0, 0, 0, 0, time.UTC), wo.DueDate)
	require.Len(t, wo.Operations, 2)
	assert.Equal(t, "10", wo.Operations[0].ID)
	assert.Equal(t, storage.OperationCompleted, wo.Operations[0].Status)
	assert.Equal(t, int64(600), wo.Operations[1].TimerSeconds)

	assert.True(t, orders[1].StartDate.IsZero())
	assert.Empty(t, orders[1].Operations)
}
