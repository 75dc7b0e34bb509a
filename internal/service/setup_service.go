package service

import (
	"context"
	"log/slog"

	"github.com/mmynk/futebol/internal/fixture"
	"github.com/mmynk/futebol/internal/metrics"
	"github.com/mmynk/futebol/internal/storage"
)

// SetupStore is the storage surface needed to provision and seed.
type SetupStore interface {
	storage.Schema
	storage.Writer
}

// SetupService provisions the collections and loads the seed fixture.
type SetupService struct {
	store   SetupStore
	metrics metrics.Recorder
	logger  *slog.Logger
}

// NewSetupService creates a SetupService. A nil recorder discards metrics and
// a nil logger uses slog.Default().
func NewSetupService(store SetupStore, recorder metrics.Recorder, logger *slog.Logger) *SetupService {
	if recorder == nil {
		recorder = metrics.NoOpMetrics{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &SetupService{store: store, metrics: recorder, logger: logger}
}

// Reset drops and recreates every collection. All data is lost.
func (s *SetupService) Reset(ctx context.Context) error {
	s.logger.Info("Resetting schema", "collections", len(storage.Collections))
	if err := s.store.ResetSchema(ctx); err != nil {
		s.logger.Error("Schema reset failed", "error", err)
		return err
	}
	s.logger.Info("Schema reset")
	return nil
}

// Drop removes every collection.
func (s *SetupService) Drop(ctx context.Context) error {
	s.logger.Info("Dropping collections", "collections", len(storage.Collections))
	if err := s.store.DropSchema(ctx); err != nil {
		s.logger.Error("Drop failed", "error", err)
		return err
	}
	s.logger.Info("Collections dropped")
	return nil
}

// Seed resets the schema and loads the seed fixture, one batch per
// collection. A uniqueness violation in the fixture aborts the load.
func (s *SetupService) Seed(ctx context.Context) (fixture.Counts, error) {
	if err := s.Reset(ctx); err != nil {
		return nil, err
	}

	counts, err := fixture.Seed(ctx, s.store)
	for _, c := range storage.Collections {
		if n, ok := counts[c]; ok {
			s.metrics.RecordSeed(c, n)
			s.logger.Debug("Collection seeded", "collection", c, "records", n)
		}
	}
	if err != nil {
		s.logger.Error("Seeding failed", "error", err)
		return counts, err
	}

	total := 0
	for _, n := range counts {
		total += n
	}
	s.logger.Info("Seed data loaded", "records", total)
	return counts, nil
}
