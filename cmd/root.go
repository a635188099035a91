package cmd

import (
	"fmt"
	"os"

	"menu-manager/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "menu-manager",
	Short: "Restaurant Menu Manager",
	Long: `Menu Manager keeps the storefront's menu catalog in sync.
It pushes the menu spreadsheet (joined with bucket image lookups) into the
document store and serves the catalog over HTTP.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Single top-level error report, in the application's own logger.
		// Console format with debug level gives readable ISO8601 output
		// for a CLI tool.
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			// Absolute fallback if logger creation fails (rare)
			fmt.Println(err)
		}
		os.Exit(1)
	}
}
