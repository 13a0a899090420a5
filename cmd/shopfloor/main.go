package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

var configPath string

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "shopfloor",
		Short:         "Shop-floor production board: work orders, operation timers, reports",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// По умолчанию CONFIG_PATH или ./config/local.yaml
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to config file")

	root.AddCommand(newServeCmd())
	root.AddCommand(newExportCmd())

	return root
}
