// Package sqlstore читает набор данных цеха из MySQL или SQLite. Только чтение:
// состояние таймеров живёт в памяти и обратно не пишется.
package sqlstore

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"strings"
	"time"

	_ "github.com/go-sql-driver/mysql"
	_ "modernc.org/sqlite"
)

const (
	DriverMySQL  = "mysql"
	DriverSQLite = "sqlite"
)

//go:embed migrations/*.sql
var migrations embed.FS

type Storage struct {
	db     *sql.DB
	driver string
}

func New(driver, dsn string) (*Storage, error) {
	const op = "storage.sqlstore.New"

	switch driver {
	case DriverMySQL, DriverSQLite:
	default:
		return nil, fmt.Errorf("%s: unsupported driver %q", op, driver)
	}
	if strings.TrimSpace(dsn) == "" {
		return nil, fmt.Errorf("%s: dsn is required for %s", op, driver)
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	// у sqlite :memory: своя база на каждое соединение
	if driver == DriverSQLite {
		db.SetMaxOpenConns(1)
	}

	return &Storage{db: db, driver: driver}, nil
}

func (s *Storage) Ping(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return fmt.Errorf("storage.sqlstore.Ping: %w", err)
	}
	return nil
}

func (s *Storage) Close() error {
	return s.db.Close()
}

// Migrate создаёт таблицы из migrations/<driver>.sql.
func (s *Storage) Migrate(ctx context.Context) error {
	const op = "storage.sqlstore.Migrate"

	raw, err := migrations.ReadFile("migrations/" + s.driver + ".sql")
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	for _, stmt := range strings.Split(string(raw), ";") {
		if strings.TrimSpace(stmt) == "" {
			continue
		}
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("%s: ошибка выполнения миграции: %w", op, err)
		}
	}

	return nil
}

var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339Nano,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
}

// parseDate разбирает DATE/DATETIME: у mysql с parseTime приходит RFC3339, у sqlite: текст.
func parseDate(v sql.NullString) (time.Time, error) {
	if !v.Valid || v.String == "" {
		return time.Time{}, nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, v.String); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognised date %q", v.String)
}
