package projects

import (
	"context"
	"fmt"

	"repo-reconciler/core/config"
	"repo-reconciler/core/dedupe"
	"repo-reconciler/core/reconcile"
	"repo-reconciler/core/storage"

	"go.uber.org/zap"
)

// Service runs reconciliations for one configuration.
type Service struct {
	cfg    *config.Config
	logger *zap.Logger
	client storage.Client
}

// NewService creates a new projects service.
// client may be nil when storage is disabled.
func NewService(cfg *config.Config, logger *zap.Logger, client storage.Client) *Service {
	return &Service{
		cfg:    cfg,
		logger: logger,
		client: client,
	}
}

func (s *Service) storageEnabled() bool {
	return s.cfg.Storage.Enabled && s.client != nil
}

// Match loads both exports, reconciles them and writes the three reports.
func (s *Service) Match(ctx context.Context) (*reconcile.Result, error) {
	if s.storageEnabled() {
		if err := s.fetchInputs(ctx); err != nil {
			return nil, err
		}
	}

	highway, err := s.load(HighwaySource(s.cfg.Input, s.cfg.Columns))
	if err != nil {
		return nil, err
	}
	unified, err := s.load(UnifiedSource(s.cfg.Input, s.cfg.Columns))
	if err != nil {
		return nil, err
	}

	result := reconcile.Reconcile(Entries(highway), Entries(unified), s.cfg.Fuzzy)

	if result.Summary.Collisions > 0 {
		s.logger.Warn("Unified export repeats repositories; later record ids win",
			zap.Int("collisions", result.Summary.Collisions))
	}

	if err := WriteMatches(s.cfg.Output.Matches, result.Matches); err != nil {
		return nil, err
	}
	if err := WriteUnmatched(s.cfg.Output.Unmatched, result.Unmatched); err != nil {
		return nil, err
	}
	if err := WritePossible(s.cfg.Output.Possible, result.Possible); err != nil {
		return nil, err
	}

	if s.storageEnabled() {
		if err := s.publish(ctx, s.cfg.Output.Matches, s.cfg.Output.Unmatched, s.cfg.Output.Possible); err != nil {
			return nil, err
		}
	}

	return result, nil
}

// Dedupe writes a copy of the exact-match report keeping the first row per
// unified record id.
func (s *Service) Dedupe(ctx context.Context) (dedupe.Stats, error) {
	stats, err := dedupe.File(s.cfg.Output.Matches, s.cfg.Output.Clean, s.cfg.Dedupe.KeyColumn)
	if err != nil {
		return dedupe.Stats{}, err
	}

	s.logger.Info("Removed duplicate matches",
		zap.String("input", s.cfg.Output.Matches),
		zap.String("output", s.cfg.Output.Clean),
		zap.Int("kept", stats.Kept),
		zap.Int("dropped", stats.Dropped),
	)

	if s.storageEnabled() {
		if err := s.publish(ctx, s.cfg.Output.Clean); err != nil {
			return stats, err
		}
	}
	return stats, nil
}

func (s *Service) load(src Source) ([]Record, error) {
	records, err := Load(src)
	if err != nil {
		return nil, err
	}

	unrecognized := 0
	for _, r := range records {
		if r.Repo == "" {
			unrecognized++
		}
	}

	s.logger.Info("Loaded export",
		zap.String("source", src.Name),
		zap.String("path", src.Path),
		zap.Int("records", len(records)),
		zap.Int("unrecognized_repos", unrecognized),
	)
	return records, nil
}

func (s *Service) fetchInputs(ctx context.Context) error {
	st := s.cfg.Storage
	if err := storage.EnsureBucket(ctx, s.client, st.Bucket); err != nil {
		return err
	}

	for _, path := range []string{s.cfg.Input.Highway, s.cfg.Input.Unified} {
		key := storage.ObjectKey(st.InputPrefix, path)
		n, err := storage.Download(ctx, s.client, st.Bucket, key, path)
		if err != nil {
			return fmt.Errorf("failed to fetch input: %w", err)
		}
		s.logger.Debug("Fetched input", zap.String("object", key), zap.String("path", path), zap.Int64("bytes", n))
	}
	return nil
}

func (s *Service) publish(ctx context.Context, paths ...string) error {
	st := s.cfg.Storage
	for _, path := range paths {
		key := storage.ObjectKey(st.OutputPrefix, path)
		n, err := storage.Upload(ctx, s.client, st.Bucket, key, path)
		if err != nil {
			return fmt.Errorf("failed to publish report: %w", err)
		}
		s.logger.Debug("Published report", zap.String("object", key), zap.Int64("bytes", n))
	}
	return nil
}
