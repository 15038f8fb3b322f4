package cmd

import (
	"fmt"
	"path/filepath"

	"repo-reconciler/core/config"
	"repo-reconciler/core/logger"
	"repo-reconciler/core/reconcile"
	"repo-reconciler/core/storage"
	"repo-reconciler/feature/projects"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags for the match command
	highwayPath string
	unifiedPath string
	outDir      string
	threshold   float64
	alsoDedupe  bool
)

// matchCmd reconciles the two exports and writes the reports.
var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Match highway demos to unified projects by repository",
	Long: `Match highway demos to unified projects by normalized GitHub repository.

Writes three reports: exact matches, unmatched highway records, and fuzzy
candidates (similar repository name, or same name with a similar owner).

Examples:
  # Default file names in the working directory
  match

  # Explicit inputs and output directory
  match --highway exports/highway.csv --unified exports/unified.csv --out-dir reports

  # Stricter fuzzy matching, then deduplicate the match report
  match --threshold 0.9 --dedupe`,
	RunE: runMatch,
}

func init() {
	matchCmd.Flags().StringVar(&highwayPath, "highway", "", "Highway demo export (overrides input.highway)")
	matchCmd.Flags().StringVar(&unifiedPath, "unified", "", "Unified project export (overrides input.unified)")
	matchCmd.Flags().StringVar(&outDir, "out-dir", "", "Directory for all reports (keeps configured file names)")
	matchCmd.Flags().Float64Var(&threshold, "threshold", 0, "Fuzzy similarity threshold in [0, 1] (overrides fuzzy.threshold)")
	matchCmd.Flags().BoolVar(&alsoDedupe, "dedupe", false, "Also write the deduplicated match report")

	RootCmd.AddCommand(matchCmd)
}

func runMatch(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(configDir)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if highwayPath != "" {
		cfg.Input.Highway = highwayPath
	}
	if unifiedPath != "" {
		cfg.Input.Unified = unifiedPath
	}
	if outDir != "" {
		cfg.Output = relocateOutputs(cfg.Output, outDir)
	}
	if cmd.Flags().Changed("threshold") {
		cfg.Fuzzy.Threshold = threshold
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	svc, l, err := newService(cfg)
	if err != nil {
		return err
	}
	defer l.Sync()

	l.Info("Starting reconciliation",
		zap.String("highway", cfg.Input.Highway),
		zap.String("unified", cfg.Input.Unified),
		zap.Float64("threshold", cfg.Fuzzy.Threshold),
	)

	result, err := svc.Match(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to reconcile: %w", err)
	}

	printMatchReport(l, cfg, result)

	if alsoDedupe {
		if _, err := svc.Dedupe(cmd.Context()); err != nil {
			return fmt.Errorf("failed to deduplicate matches: %w", err)
		}
	}

	fmt.Printf("Done! %d exact matches, %d unmatched, %d possible fuzzy matches.\n",
		result.Summary.Matches, result.Summary.Unmatched, result.Summary.Possible)
	return nil
}

// newService builds the logger, the optional storage client and the service.
func newService(cfg *config.Config) (*projects.Service, *zap.Logger, error) {
	l, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	l, _ = logger.WithRunID(l)

	var client storage.Client
	if cfg.Storage.Enabled {
		client, err = storage.NewClient(cfg.Storage)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect to storage: %w", err)
		}
		l.Info("Object storage exchange enabled",
			zap.String("endpoint", cfg.Storage.Endpoint),
			zap.String("bucket", cfg.Storage.Bucket),
		)
	}

	return projects.NewService(cfg, l, client), l, nil
}

// relocateOutputs moves every report into dir, keeping its file name.
func relocateOutputs(out config.OutputConfig, dir string) config.OutputConfig {
	return config.OutputConfig{
		Matches:   filepath.Join(dir, filepath.Base(out.Matches)),
		Unmatched: filepath.Join(dir, filepath.Base(out.Unmatched)),
		Possible:  filepath.Join(dir, filepath.Base(out.Possible)),
		Clean:     filepath.Join(dir, filepath.Base(out.Clean)),
	}
}

// printMatchReport logs the reconciliation summary and a sample of candidates.
func printMatchReport(l *zap.Logger, cfg *config.Config, result *reconcile.Result) {
	s := result.Summary

	l.Info("Reconciliation report",
		zap.Int("highway_records", s.HighwayRecords),
		zap.Int("unified_records", s.UnifiedRecords),
		zap.Int("unified_repos", s.UnifiedRepos),
		zap.Int("unrecognized_repos", s.Unrecognized),
		zap.Int("exact_matches", s.Matches),
		zap.Int("unmatched", s.Unmatched),
		zap.Int("possible_matches", s.Possible),
	)

	maxShow := min(5, len(result.Possible))
	for i := 0; i < maxShow; i++ {
		p := result.Possible[i]
		l.Debug("Sample candidate",
			zap.String("highway_repo", p.HighwayRepo),
			zap.String("unified_repo", p.UnifiedRepo),
			zap.String("reason", string(p.Reason)),
		)
	}
	if len(result.Possible) > maxShow {
		l.Debug("Additional candidates not shown", zap.Int("count", len(result.Possible)-maxShow))
	}

	l.Info("Reports written",
		zap.String("matches", cfg.Output.Matches),
		zap.String("unmatched", cfg.Output.Unmatched),
		zap.String("possible", cfg.Output.Possible),
	)
}
