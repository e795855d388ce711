package app

import (
	"context"
	"time"

	"surveycharts/domain/charts"
	"surveycharts/domain/survey"
	"surveycharts/internal"
	"surveycharts/internal/errors"
	"surveycharts/internal/profiling"
	"surveycharts/ports"
)

// ReportService orchestrates one reporting run: load the survey table once,
// then render every configured chart in declaration order.
type ReportService struct {
	readerPort   ports.TableReaderPort
	rendererPort ports.ChartRendererPort
	specs        []charts.Spec
	profiler     *profiling.TableProfiler
	logger       *internal.Logger
}

// ChartArtifact records one successfully rendered chart
type ChartArtifact struct {
	Name       string
	Column     string
	OutputPath string
	DurationMs int64
}

// ReportResult contains the outcome of a full reporting run
type ReportResult struct {
	RunID     survey.RunID
	Rows      int
	Columns   int
	Artifacts []ChartArtifact
	RuntimeMs int64
}

// NewReportService creates a report service over the given ports
func NewReportService(readerPort ports.TableReaderPort, rendererPort ports.ChartRendererPort, specs []charts.Spec, logger *internal.Logger) *ReportService {
	if logger == nil {
		logger = internal.DefaultLogger
	}
	return &ReportService{
		readerPort:   readerPort,
		rendererPort: rendererPort,
		specs:        specs,
		profiler:     profiling.NewTableProfiler(),
		logger:       logger,
	}
}

// Run executes the full chart sequence. The table is loaded once and shared
// by all charts. Rendering halts on the first failure; charts not yet
// attempted are skipped.
func (s *ReportService) Run(ctx context.Context) (*ReportResult, error) {
	startTime := time.Now()
	runID := survey.NewRunID()

	s.logger.Info("Starting report run %s (%d charts)", runID, len(s.specs))

	table, err := s.readerPort.ReadTable(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load survey data")
	}
	s.logger.Info("Survey table loaded (%d rows, %d columns)", table.NumRows(), table.NumColumns())

	if s.logger.GetLevel() >= internal.LogLevelDebug {
		for _, profile := range s.profiler.ProfileTable(table) {
			s.logger.Debug("Column %s: observed=%d missing=%d unique=%d mean=%.2f entropy=%.3f",
				profile.Name, profile.Observed, profile.Missing, profile.Unique, profile.Mean, profile.Entropy)
		}
	}

	result := &ReportResult{
		RunID:   runID,
		Rows:    table.NumRows(),
		Columns: table.NumColumns(),
	}

	for _, spec := range s.specs {
		chartStart := time.Now()

		outputPath, err := s.rendererPort.Render(ctx, table, spec)
		if err != nil {
			return nil, errors.RenderFailed(spec.Name, err)
		}

		s.logger.Info("Chart %s saved to %s", spec.Name, outputPath)
		result.Artifacts = append(result.Artifacts, ChartArtifact{
			Name:       spec.Name,
			Column:     spec.Column,
			OutputPath: outputPath,
			DurationMs: time.Since(chartStart).Milliseconds(),
		})
	}

	result.RuntimeMs = time.Since(startTime).Milliseconds()
	s.logger.Info("Report run %s completed: %d charts in %dms", runID, len(result.Artifacts), result.RuntimeMs)

	return result, nil
}
