// Package analyzer wires ingestion, trend comparison, and report
// building into the operations the HTTP layer exposes.
package analyzer

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/scholarsportal/askdata/internal/directory"
	"github.com/scholarsportal/askdata/internal/ingest"
	"github.com/scholarsportal/askdata/internal/metrics"
	"github.com/scholarsportal/askdata/internal/partition"
	"github.com/scholarsportal/askdata/internal/report"
	"github.com/scholarsportal/askdata/internal/storage"
	"github.com/scholarsportal/askdata/internal/trend"
	"github.com/scholarsportal/askdata/internal/types"
)

type Analyzer struct {
	loader          *ingest.Loader
	dir             *directory.Directory
	store           storage.Store
	engine          *trend.Engine
	logger          zerolog.Logger
	slThresholdSecs int
}

func New(fetcher ingest.DayFetcher, dir *directory.Directory, store storage.Store, slThresholdSecs int, logger zerolog.Logger) *Analyzer {
	return &Analyzer{
		loader:          ingest.NewLoader(fetcher, logger),
		dir:             dir,
		store:           store,
		engine:          trend.New(dir, logger),
		logger:          logger.With().Str("component", "analyzer").Logger(),
		slThresholdSecs: slThresholdSecs,
	}
}

// TrendReport loads both windows, compares them month by month, and
// journals the completed run. Reference defaults are the caller's
// concern; both windows arrive already validated for ordering.
func (a *Analyzer) TrendReport(ctx context.Context, current, reference types.TimeWindow) (*types.TrendReport, error) {
	started := time.Now()

	table, err := a.loadWindows(ctx, current, reference)
	if err != nil {
		metrics.Get().RecordReportError()
		return nil, err
	}

	result, err := a.engine.Compare(table, current, reference)
	if err != nil {
		metrics.Get().RecordReportError()
		return nil, err
	}

	runID := uuid.NewString()
	generatedAt := time.Now().UTC()
	rep := report.Assemble(result, current, reference, runID, generatedAt)

	a.journalRun(ctx, types.RunRecord{
		DateKey:          generatedAt.Format(types.DateLayout),
		RunID:            runID,
		Kind:             "trend",
		CurrentStart:     current.Start.Format(types.DateLayout),
		CurrentEnd:       current.End.Format(types.DateLayout),
		ReferenceStart:   reference.Start.Format(types.DateLayout),
		ReferenceEnd:     reference.End.Format(types.DateLayout),
		TotalCurrent:     sumTotals(rep.Schools, false),
		TotalReference:   sumTotals(rep.Schools, true),
		SchoolCount:      len(rep.Schools),
		DroppedRecords:   rep.DroppedRecords,
		UnmatchedRecords: rep.UnmatchedRecords,
		GeneratedAt:      generatedAt.Format(time.RFC3339),
	})

	metrics.Get().RecordReportBuilt(time.Since(started))
	a.logger.Info().
		Str("run_id", runID).
		Int("schools", len(rep.Schools)).
		Dur("elapsed", time.Since(started)).
		Msg("trend report built")
	return rep, nil
}

// SchoolReport builds the single-institution activity report for one
// window.
func (a *Analyzer) SchoolReport(ctx context.Context, school string, window types.TimeWindow) (*types.SchoolReport, error) {
	inst, err := a.dir.Find(school)
	if err != nil {
		return nil, err
	}

	started := time.Now()
	loaded, err := a.loader.LoadRange(ctx, window)
	if err != nil {
		metrics.Get().RecordReportError()
		return nil, err
	}
	table := ingest.Normalize(loaded.Records)

	subset := partition.ForInstitution(table.Records, inst)
	rep, err := report.BuildSchoolReport(inst, subset, window, a.slThresholdSecs)
	if err != nil {
		metrics.Get().RecordReportError()
		return nil, err
	}

	metrics.Get().RecordReportBuilt(time.Since(started))
	return rep, nil
}

// ServiceOverview builds the service-wide activity overview for one
// window.
func (a *Analyzer) ServiceOverview(ctx context.Context, window types.TimeWindow) (*types.ServiceOverview, error) {
	started := time.Now()
	loaded, err := a.loader.LoadRange(ctx, window)
	if err != nil {
		metrics.Get().RecordReportError()
		return nil, err
	}
	table := ingest.Normalize(loaded.Records)

	overview, err := report.BuildServiceOverview(table, a.dir, window, time.Now().UTC())
	if err != nil {
		metrics.Get().RecordReportError()
		return nil, err
	}

	metrics.Get().RecordReportBuilt(time.Since(started))
	return overview, nil
}

// Runs returns the journaled runs for one date key.
func (a *Analyzer) Runs(ctx context.Context, dateKey string) ([]types.RunRecord, error) {
	return a.store.GetRuns(ctx, dateKey)
}

// loadWindows fetches and normalizes both windows into one table. The
// trend engine filters per window itself, so the same day must never
// be loaded twice: overlapping windows are merged into one contiguous
// fetch before loading.
func (a *Analyzer) loadWindows(ctx context.Context, current, reference types.TimeWindow) (types.RecordTable, error) {
	var windows []types.TimeWindow
	if overlaps(current, reference) {
		merged := types.TimeWindow{Start: minTime(current.Start, reference.Start), End: maxTime(current.End, reference.End)}
		windows = []types.TimeWindow{merged}
	} else {
		windows = []types.TimeWindow{reference, current}
	}

	var raw []types.ChatRecord
	daysFailed := 0
	for _, w := range windows {
		loaded, err := a.loader.LoadRange(ctx, w)
		if err != nil {
			return types.RecordTable{}, err
		}
		raw = append(raw, loaded.Records...)
		daysFailed += loaded.DaysFailed
	}

	table := ingest.Normalize(raw)
	if daysFailed > 0 {
		a.logger.Warn().Int("days_failed", daysFailed).Msg("some days could not be fetched")
	}
	return table, nil
}

func overlaps(a, b types.TimeWindow) bool {
	return !a.End.Before(b.Start) && !b.End.Before(a.Start)
}

func minTime(a, b time.Time) time.Time {
	if a.Before(b) {
		return a
	}
	return b
}

func maxTime(a, b time.Time) time.Time {
	if a.After(b) {
		return a
	}
	return b
}

func (a *Analyzer) journalRun(ctx context.Context, run types.RunRecord) {
	if err := a.store.SaveRun(ctx, run); err != nil {
		a.logger.Error().Err(err).Str("run_id", run.RunID).Msg("failed to journal run")
	}
}

func sumTotals(schools []types.SchoolTrend, reference bool) int {
	total := 0
	for _, s := range schools {
		if reference {
			total += s.Aggregate.ReferenceTotal
		} else {
			total += s.Aggregate.CurrentTotal
		}
	}
	return total
}
