package cmd

import (
	"fmt"
	"os"

	"repo-reconciler/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "repo-reconciler",
	Short: "Match project exports by source repository",
	Long: `Repo Reconciler matches the highway demo export against the unified
project registry by normalized GitHub repository, proposes fuzzy candidates
for records that do not match exactly, and deduplicates the match report.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// configDir is where LoadConfig looks for a .env file.
var configDir string

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Console format with the development preset gives readable timestamps
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Println(err)
		}
		os.Exit(1)
	}
}

func init() {
	RootCmd.PersistentFlags().StringVar(&configDir, "config-dir", ".", "Directory containing the .env file")
}
