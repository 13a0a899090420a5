package main

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"shopfloor/internal/config"
	"shopfloor/internal/filter"
)

func newExportCmd() *cobra.Command {
	var (
		out   string
		query string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the Excel work order report to a file",
		Example: `  shopfloor export -o report.xlsx
  shopfloor export --filter "site=S1&status=in-progress&from=2026-10-01"`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			const op = "main.export"

			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}

			log, closeLog := setupLogger(cfg.Env, cfg.ErrorLog)
			defer closeLog()

			values, err := url.ParseQuery(query)
			if err != nil {
				return fmt.Errorf("%s: --filter: %w", op, err)
			}
			criteria, err := filter.FromQuery(values)
			if err != nil {
				return fmt.Errorf("%s: --filter: %w", op, err)
			}

			a, err := newApp(cmd.Context(), cfg, log)
			if err != nil {
				return err
			}

			data, err := a.report.GenerateExcel(cmd.Context(), criteria)
			if err != nil {
				return fmt.Errorf("%s: %w", op, err)
			}

			if out == "" {
				out = a.report.FileName()
			}
			if dir := filepath.Dir(out); dir != "." {
				if err := os.MkdirAll(dir, 0o755); err != nil {
					return fmt.Errorf("%s: %w", op, err)
				}
			}
			if err := os.WriteFile(out, data, 0o644); err != nil {
				return fmt.Errorf("%s: %w", op, err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "output", "o", "", "output file (default Shopfloor_Report_<time>.xlsx)")
	cmd.Flags().StringVar(&query, "filter", "", "filter as a query string: status, site, from, to, search")

	return cmd
}
