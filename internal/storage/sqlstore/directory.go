package sqlstore

import (
	"context"
	"fmt"

	"shopfloor/internal/storage"
)

func (s *Storage) GetSites(ctx context.Context) ([]storage.Site, error) {
	const op = "storage.sqlstore.GetSites"

	rows, err := s.db.QueryContext(ctx, `SELECT id, code, name, city FROM sites ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("%s: ошибка получения площадок: %w", op, err)
	}
	defer rows.Close()

	var sites []storage.Site
	for rows.Next() {
		var site storage.Site
		if err := rows.Scan(&site.ID, &site.Code, &site.Name, &site.City); err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		sites = append(sites, site)
	}

	return sites, rows.Err()
}

func (s *Storage) GetTeams(ctx context.Context) ([]storage.Team, error) {
	const op = "storage.sqlstore.GetTeams"

	rows, err := s.db.QueryContext(ctx, `SELECT id, name, site_id, lead_name FROM teams ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("%s: ошибка получения бригад: %w", op, err)
	}
	defer rows.Close()

	var teams []storage.Team
	for rows.Next() {
		var team storage.Team
		if err := rows.Scan(&team.ID, &team.Name, &team.SiteID, &team.Lead); err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		teams = append(teams, team)
	}

	return teams, rows.Err()
}

func (s *Storage) GetEmployees(ctx context.Context) ([]storage.Employee, error) {
	const op = "storage.sqlstore.GetEmployees"

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, email, role, team_id, site_id, is_active
		FROM employees
		ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("%s: ошибка получения всех работников: %w", op, err)
	}
	defer rows.Close()

	var employees []storage.Employee
	for rows.Next() {
		var e storage.Employee
		if err := rows.Scan(&e.ID, &e.Name, &e.Email, &e.Role, &e.TeamID, &e.SiteID, &e.IsActive); err != nil {
			return nil, fmt.Errorf("%s: ошибка сканирования строк для всех сотрудников: %w", op, err)
		}
		employees = append(employees, e)
	}

	return employees, rows.Err()
}
