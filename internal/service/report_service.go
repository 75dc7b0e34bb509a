package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/mmynk/futebol/internal/evaluator"
	"github.com/mmynk/futebol/internal/metrics"
	"github.com/mmynk/futebol/internal/models"
	"github.com/mmynk/futebol/internal/report"
)

var (
	ErrUnknownReport  = errors.New("unknown report")
	ErrReportMismatch = errors.New("store reports differ from in-memory evaluation")
)

// ReportStore is the storage surface needed to run and verify reports.
type ReportStore interface {
	PlayersWithTeams(ctx context.Context) ([]models.PlayerWithTeam, error)
	UserTeamRosters(ctx context.Context) ([]models.RosterEntry, error)
	PositionCounts(ctx context.Context) ([]models.PositionCount, error)
	UnaffiliatedPlayers(ctx context.Context) ([]models.UnaffiliatedPlayer, error)
	PreferredTeamOverlap(ctx context.Context) ([]models.PreferredTeamOverlap, error)
	Snapshot(ctx context.Context) (*models.Snapshot, error)
}

// ReportService runs the five league reports and prints them.
type ReportService struct {
	store   ReportStore
	printer *report.Printer
	metrics metrics.Recorder
	logger  *slog.Logger
}

// NewReportService creates a ReportService. A nil recorder discards metrics
// and a nil logger uses slog.Default().
func NewReportService(store ReportStore, printer *report.Printer, recorder metrics.Recorder, logger *slog.Logger) *ReportService {
	if recorder == nil {
		recorder = metrics.NoOpMetrics{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &ReportService{store: store, printer: printer, metrics: recorder, logger: logger}
}

// ParseReports maps report names to the reports to run. "all" or no names
// selects every report in order.
func ParseReports(names []string) ([]string, error) {
	if len(names) == 0 {
		return report.Names, nil
	}
	var out []string
	for _, n := range names {
		n = strings.ToLower(strings.TrimSpace(n))
		if n == "all" {
			return report.Names, nil
		}
		if !slices.Contains(report.Names, n) {
			return nil, fmt.Errorf("%w: %q (want one of %s or all)", ErrUnknownReport, n, strings.Join(report.Names, ", "))
		}
		out = append(out, n)
	}
	return out, nil
}

// Run executes one report against the store and returns it as a section.
func (s *ReportService) Run(ctx context.Context, name string) (report.Section, error) {
	start := time.Now()

	var (
		section report.Section
		err     error
	)
	switch name {
	case report.Q1:
		var rows []models.PlayerWithTeam
		rows, err = s.store.PlayersWithTeams(ctx)
		section = report.PlayersWithTeams(rows)
	case report.Q2:
		var rows []models.RosterEntry
		rows, err = s.store.UserTeamRosters(ctx)
		section = report.UserTeamRosters(rows)
	case report.Q3:
		var rows []models.PositionCount
		rows, err = s.store.PositionCounts(ctx)
		section = report.PositionCounts(rows)
	case report.Q4:
		var rows []models.UnaffiliatedPlayer
		rows, err = s.store.UnaffiliatedPlayers(ctx)
		section = report.UnaffiliatedPlayers(rows)
	case report.Q5:
		var rows []models.PreferredTeamOverlap
		rows, err = s.store.PreferredTeamOverlap(ctx)
		section = report.PreferredTeamOverlap(rows)
	default:
		return report.Section{}, fmt.Errorf("%w: %q", ErrUnknownReport, name)
	}
	if err != nil {
		s.logger.Error("Report failed", "report", name, "error", err)
		return report.Section{}, err
	}

	elapsed := time.Since(start)
	s.metrics.RecordReport(name, section.Len(), elapsed)
	s.logger.Debug("Report executed", "report", name, "rows", section.Len(), "duration", elapsed)
	return section, nil
}

// Print runs the named reports in order and prints each one. The first
// failing report aborts the remaining ones.
func (s *ReportService) Print(ctx context.Context, names ...string) error {
	for _, name := range names {
		section, err := s.Run(ctx, name)
		if err != nil {
			return err
		}
		if err := s.printer.Print(section); err != nil {
			return fmt.Errorf("failed to print %s: %w", name, err)
		}
	}
	s.logger.Info("Reports printed", "reports", len(names))
	return nil
}

// RunAll runs and prints Q1 through Q5.
func (s *ReportService) RunAll(ctx context.Context) error {
	return s.Print(ctx, report.Names...)
}

// Collect runs all five reports against the store without printing.
func (s *ReportService) Collect(ctx context.Context) (*evaluator.Results, error) {
	var (
		res evaluator.Results
		err error
	)
	if res.PlayersWithTeams, err = s.store.PlayersWithTeams(ctx); err != nil {
		return nil, err
	}
	if res.UserTeamRosters, err = s.store.UserTeamRosters(ctx); err != nil {
		return nil, err
	}
	if res.PositionCounts, err = s.store.PositionCounts(ctx); err != nil {
		return nil, err
	}
	if res.UnaffiliatedPlayers, err = s.store.UnaffiliatedPlayers(ctx); err != nil {
		return nil, err
	}
	if res.PreferredTeamOverlap, err = s.store.PreferredTeamOverlap(ctx); err != nil {
		return nil, err
	}
	return &res, nil
}

// Verify compares the store's reports with an in-memory evaluation of a
// snapshot of the same data. A difference is returned as an error wrapping
// ErrReportMismatch with the diff in its message.
func (s *ReportService) Verify(ctx context.Context) error {
	snap, err := s.store.Snapshot(ctx)
	if err != nil {
		return err
	}
	want := evaluator.Evaluate(snap)

	got, err := s.Collect(ctx)
	if err != nil {
		return err
	}

	if diff := cmp.Diff(want, got, cmpopts.EquateEmpty()); diff != "" {
		s.logger.Error("Report verification failed", "records", snap.Len())
		return fmt.Errorf("%w (-memory +store):\n%s", ErrReportMismatch, diff)
	}

	s.logger.Info("Reports verified", "records", snap.Len(), "reports", len(report.Names))
	return s.printer.Message("OK: %d reports match over %d records", len(report.Names), snap.Len())
}
