package cmd

import (
	"fmt"

	"repo-reconciler/core/config"

	"github.com/spf13/cobra"
)

var (
	// Flags for the dedupe command
	dedupeIn  string
	dedupeOut string
	keyColumn int
)

// dedupeCmd removes repeated unified record ids from the match report.
var dedupeCmd = &cobra.Command{
	Use:   "dedupe",
	Short: "Remove duplicate unified records from the match report",
	Long: `Copy the exact-match report keeping only the first row for each key.

The key defaults to the second column (the unified record id). The header and
row order are preserved.`,
	RunE: runDedupe,
}

func init() {
	dedupeCmd.Flags().StringVar(&dedupeIn, "in", "", "Match report to read (overrides output.matches)")
	dedupeCmd.Flags().StringVar(&dedupeOut, "out", "", "Cleaned report to write (overrides output.clean)")
	dedupeCmd.Flags().IntVar(&keyColumn, "key-column", 0, "Zero-based key column (overrides dedupe.key_column)")

	RootCmd.AddCommand(dedupeCmd)
}

func runDedupe(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(configDir)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if dedupeIn != "" {
		cfg.Output.Matches = dedupeIn
	}
	if dedupeOut != "" {
		cfg.Output.Clean = dedupeOut
	}
	if cmd.Flags().Changed("key-column") {
		cfg.Dedupe.KeyColumn = keyColumn
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	svc, l, err := newService(cfg)
	if err != nil {
		return err
	}
	defer l.Sync()

	stats, err := svc.Dedupe(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to deduplicate matches: %w", err)
	}

	fmt.Printf("Removed %d duplicate rows based on column %d. Saved cleaned file to '%s'.\n",
		stats.Dropped, cfg.Dedupe.KeyColumn, cfg.Output.Clean)
	return nil
}
