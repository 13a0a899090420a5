package main

import (
	"context"
	"fmt"
	"log/slog"

	"shopfloor/internal/config"
	"shopfloor/internal/metrics"
	"shopfloor/internal/middleware/auth"
	"shopfloor/internal/service/board"
	generate_excel "shopfloor/internal/service/generate-excel"
	"shopfloor/internal/storage/seed"
	"shopfloor/internal/storage/sqlstore"
)

type dataset interface {
	board.Dataset
	Close() error
}

// app: всё, что нужно и серверу, и экспорту.
type app struct {
	board   *board.Board
	metrics *metrics.Metrics
	tokens  *auth.Tokens
	report  *generate_excel.GenerateExcelService
}

func newApp(ctx context.Context, cfg *config.Config, log *slog.Logger) (*app, error) {
	const op = "main.newApp"

	ds, err := openDataset(ctx, cfg.Dataset)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer ds.Close()

	m := metrics.New()
	b := board.New(log,
		board.WithRecorder(m),
		board.WithActivityLimit(cfg.Production.ActivityLimit),
	)

	if err := b.Load(ctx, ds); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err := m.Watch(b); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("dataset loaded",
		slog.String("driver", cfg.Dataset.Driver),
		slog.Int("work_orders", len(b.WorkOrders())),
	)

	return &app{
		board:   b,
		metrics: m,
		tokens:  auth.NewTokens(cfg.Auth.Email, cfg.Auth.Password, cfg.Auth.TokenSecret, cfg.Auth.TokenTTL),
		report:  generate_excel.NewGenerateService(b),
	}, nil
}

// openDataset открывает seed-файл или БД. Данные читаются один раз при старте.
func openDataset(ctx context.Context, cfg config.Dataset) (dataset, error) {
	switch cfg.Driver {
	case "seed":
		s, err := seed.Open(cfg.SeedPath)
		if err != nil {
			return nil, err
		}
		return s, nil
	case "mysql", "sqlite":
		s, err := sqlstore.New(cfg.Driver, cfg.DSN)
		if err != nil {
			return nil, err
		}
		if err := s.Ping(ctx); err != nil {
			s.Close()
			return nil, err
		}
		if cfg.Migrate {
			if err := s.Migrate(ctx); err != nil {
				s.Close()
				return nil, err
			}
		}
		return s, nil
	default:
		return nil, fmt.Errorf("unknown dataset driver %q", cfg.Driver)
	}
}
