package testkit

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"surveycharts/domain/charts"
	"surveycharts/domain/survey"
)

// SurveyColumns returns the catalog columns in chart order
func SurveyColumns() []string {
	seen := make(map[string]bool)
	var columns []string
	for _, spec := range charts.DefaultSpecs() {
		if !seen[spec.Column] {
			seen[spec.Column] = true
			columns = append(columns, spec.Column)
		}
	}
	return columns
}

// SurveyRows generates n deterministic rows over the catalog columns. Codes
// cycle through each column's declared list, so every code occurs at least
// once when n is at least the longest code list.
func SurveyRows(n int) [][]string {
	codesByColumn := make(map[string][]int)
	for _, spec := range charts.DefaultSpecs() {
		codesByColumn[spec.Column] = spec.Codes
	}

	columns := SurveyColumns()
	rows := make([][]string, n)
	for i := 0; i < n; i++ {
		row := make([]string, len(columns))
		for j, column := range columns {
			codes := codesByColumn[column]
			row[j] = fmt.Sprintf("%d", codes[i%len(codes)])
		}
		rows[i] = row
	}
	return rows
}

// NewSurveyTable builds an in-memory survey table with n synthetic rows
func NewSurveyTable(n int) (*survey.Table, error) {
	return survey.NewTable(SurveyColumns(), SurveyRows(n))
}

// WriteSurveyCSV writes n synthetic rows as a CSV fixture file
func WriteSurveyCSV(path string, n int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create fixture %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(SurveyColumns()); err != nil {
		return fmt.Errorf("failed to write fixture header: %w", err)
	}
	for _, row := range SurveyRows(n) {
		if err := w.Write(row); err != nil {
			return fmt.Errorf("failed to write fixture row: %w", err)
		}
	}
	w.Flush()
	return w.Error()
}

// FakeTableReader implements ports.TableReaderPort from a fixed table
type FakeTableReader struct {
	Table *survey.Table
	Err   error
}

func (r *FakeTableReader) ReadTable(ctx context.Context) (*survey.Table, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r.Err != nil {
		return nil, r.Err
	}
	return r.Table, nil
}

// FakeChartRenderer implements ports.ChartRendererPort without drawing
// anything. It records the charts rendered, in call order, and can be set
// to fail on a named chart.
type FakeChartRenderer struct {
	OutputDir string
	FailOn    string
	Err       error
	Rendered  []string
}

func (r *FakeChartRenderer) Render(ctx context.Context, table *survey.Table, spec charts.Spec) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if r.FailOn != "" && spec.Name == r.FailOn {
		if r.Err != nil {
			return "", r.Err
		}
		return "", fmt.Errorf("renderer failure injected for %s", spec.Name)
	}
	r.Rendered = append(r.Rendered, spec.Name)
	return filepath.Join(r.OutputDir, spec.Filename), nil
}
