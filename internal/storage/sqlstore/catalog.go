package sqlstore

import (
	"context"
	"database/sql"
	"fmt"

	"shopfloor/internal/storage"
)

func (s *Storage) GetBOMs(ctx context.Context) ([]storage.BOM, error) {
	const op = "storage.sqlstore.GetBOMs"

	rows, err := s.db.QueryContext(ctx, `SELECT id, product, revision FROM boms ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var boms []storage.BOM
	index := make(map[string]int)
	for rows.Next() {
		var b storage.BOM
		if err := rows.Scan(&b.ID, &b.Product, &b.Revision); err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		index[b.ID] = len(boms)
		boms = append(boms, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	err = s.eachRow(ctx, `
		SELECT bom_id, line, part_number, description, quantity, unit
		FROM bom_items
		ORDER BY bom_id, line`, func(rows *sql.Rows) error {
		var bomID string
		var it storage.BOMItem
		if err := rows.Scan(&bomID, &it.Line, &it.PartNumber, &it.Description, &it.Quantity, &it.Unit); err != nil {
			return err
		}
		if i, ok := index[bomID]; ok {
			boms[i].Items = append(boms[i].Items, it)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%s: ошибка получения строк спецификации: %w", op, err)
	}

	return boms, nil
}

func (s *Storage) GetRoutings(ctx context.Context) ([]storage.Routing, error) {
	const op = "storage.sqlstore.GetRoutings"

	rows, err := s.db.QueryContext(ctx, `SELECT id, product, name FROM routings ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var routings []storage.Routing
	index := make(map[string]int)
	for rows.Next() {
		var r storage.Routing
		if err := rows.Scan(&r.ID, &r.Product, &r.Name); err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		index[r.ID] = len(routings)
		routings = append(routings, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	err = s.eachRow(ctx, `
		SELECT routing_id, sequence, name, work_center, planned_minutes
		FROM routing_steps
		ORDER BY routing_id, sequence`, func(rows *sql.Rows) error {
		var routingID string
		var step storage.RoutingStep
		if err := rows.Scan(&routingID, &step.Sequence, &step.Name, &step.WorkCenter, &step.PlannedMinutes); err != nil {
			return err
		}
		if i, ok := index[routingID]; ok {
			routings[i].Steps = append(routings[i].Steps, step)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%s: ошибка получения шагов маршрута: %w", op, err)
	}

	return routings, nil
}

func (s *Storage) GetPickLists(ctx context.Context) ([]storage.PickList, error) {
	const op = "storage.sqlstore.GetPickLists"

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, work_order_id, site_id, status, created_at
		FROM pick_lists
		ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var lists []storage.PickList
	index := make(map[string]int)
	for rows.Next() {
		var pl storage.PickList
		var createdAt sql.NullString
		if err := rows.Scan(&pl.ID, &pl.WorkOrderID, &pl.SiteID, &pl.Status, &createdAt); err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		if pl.CreatedAt, err = parseDate(createdAt); err != nil {
			return nil, fmt.Errorf("%s: pick list %s: %w", op, pl.ID, err)
		}
		index[pl.ID] = len(lists)
		lists = append(lists, pl)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	err = s.eachRow(ctx, `
		SELECT pick_list_id, line, part_number, location, quantity, picked
		FROM pick_list_items
		ORDER BY pick_list_id, line`, func(rows *sql.Rows) error {
		var listID string
		var it storage.PickListItem
		if err := rows.Scan(&listID, &it.Line, &it.PartNumber, &it.Location, &it.Quantity, &it.Picked); err != nil {
			return err
		}
		if i, ok := index[listID]; ok {
			lists[i].Items = append(lists[i].Items, it)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%s: ошибка получения строк листа комплектации: %w", op, err)
	}

	return lists, nil
}

// eachRow выполняет запрос и вызывает fn для каждой строки.
func (s *Storage) eachRow(ctx context.Context, query string, fn func(*sql.Rows) error, args ...any) error {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		if err := fn(rows); err != nil {
			return err
		}
	}

	return rows.Err()
}
