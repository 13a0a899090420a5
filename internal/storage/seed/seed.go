// Package seed читает демонстрационный набор данных цеха из YAML или TOML файла.
package seed

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"shopfloor/internal/storage"
)

type Storage struct {
	data storage.Dataset
}

// Open читает файл; формат определяется по расширению.
func Open(path string) (*Storage, error) {
	const op = "storage.seed.Open"

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var data storage.Dataset
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(raw))
		dec.KnownFields(true)
		if err := dec.Decode(&data); err != nil {
			return nil, fmt.Errorf("%s: ошибка разбора yaml %s: %w", op, path, err)
		}
	case ".toml":
		dec := toml.NewDecoder(bytes.NewReader(raw))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&data); err != nil {
			return nil, fmt.Errorf("%s: ошибка разбора toml %s: %w", op, path, err)
		}
	default:
		return nil, fmt.Errorf("%s: unsupported seed format %q", op, ext)
	}

	return &Storage{data: data}, nil
}

func (s *Storage) GetSites(ctx context.Context) ([]storage.Site, error) {
	return s.data.Sites, ctx.Err()
}

func (s *Storage) GetTeams(ctx context.Context) ([]storage.Team, error) {
	return s.data.Teams, ctx.Err()
}

func (s *Storage) GetEmployees(ctx context.Context) ([]storage.Employee, error) {
	return s.data.Employees, ctx.Err()
}

func (s *Storage) GetBOMs(ctx context.Context) ([]storage.BOM, error) {
	return s.data.BOMs, ctx.Err()
}

func (s *Storage) GetRoutings(ctx context.Context) ([]storage.Routing, error) {
	return s.data.Routings, ctx.Err()
}

func (s *Storage) GetPickLists(ctx context.Context) ([]storage.PickList, error) {
	return s.data.PickLists, ctx.Err()
}

func (s *Storage) GetWorkOrders(ctx context.Context) ([]storage.WorkOrder, error) {
	return s.data.WorkOrders, ctx.Err()
}

func (s *Storage) Close() error { return nil }
