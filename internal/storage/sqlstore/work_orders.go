package sqlstore

import (
	"context"
	"database/sql"
	"fmt"

	"shopfloor/internal/production"
	"shopfloor/internal/storage"
)

func (s *Storage) GetWorkOrders(ctx context.Context) ([]storage.WorkOrder, error) {
	const op = "storage.sqlstore.GetWorkOrders"

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, number, product, customer, site_id, team_id, routing_id, bom_id,
		       priority, produced, target, status, start_date, due_date
		FROM work_orders
		ORDER BY due_date, number`)
	if err != nil {
		return nil, fmt.Errorf("%s: ошибка получения нарядов: %w", op, err)
	}
	defer rows.Close()

	var orders []storage.WorkOrder
	index := make(map[string]int)
	for rows.Next() {
		var wo storage.WorkOrder
		var startDate, dueDate sql.NullString
		err := rows.Scan(
			&wo.ID, &wo.Number, &wo.Product, &wo.Customer, &wo.SiteID, &wo.TeamID, &wo.RoutingID, &wo.BOMID,
			&wo.Priority, &wo.Produced, &wo.Target, &wo.Status, &startDate, &dueDate,
		)
		if err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		if wo.StartDate, err = parseDate(startDate); err != nil {
			return nil, fmt.Errorf("%s: work order %s: %w", op, wo.ID, err)
		}
		if wo.DueDate, err = parseDate(dueDate); err != nil {
			return nil, fmt.Errorf("%s: work order %s: %w", op, wo.ID, err)
		}
		if wo.Progress, err = production.Progress(wo.Produced, wo.Target); err != nil {
			return nil, fmt.Errorf("%s: work order %s: %w", op, wo.ID, err)
		}

		index[wo.ID] = len(orders)
		orders = append(orders, wo)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	err = s.eachRow(ctx, `
		SELECT work_order_id, id, name, sequence, work_center, planned_minutes, status, timer_seconds
		FROM work_order_operations
		ORDER BY work_order_id, sequence`, func(rows *sql.Rows) error {
		var orderID string
		var o storage.Operation
		if err := rows.Scan(&orderID, &o.ID, &o.Name, &o.Sequence, &o.WorkCenter, &o.PlannedMinutes, &o.Status, &o.TimerSeconds); err != nil {
			return err
		}
		if i, ok := index[orderID]; ok {
			orders[i].Operations = append(orders[i].Operations, o)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%s: ошибка получения операций: %w", op, err)
	}

	return orders, nil
}
