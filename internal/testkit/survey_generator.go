package testkit

import (
	"encoding/csv"
	"fmt"
	"math/rand"
	"os"

	"surveycharts/domain/charts"
	"surveycharts/domain/survey"
)

// SurveyGeneratorConfig configures the synthetic survey generator
type SurveyGeneratorConfig struct {
	RespondentCount int     `json:"respondent_count"`
	MissingRate     float64 `json:"missing_rate"`
	Seed            int64   `json:"seed"`
}

// DefaultSurveyConfig returns sensible defaults for survey data generation
func DefaultSurveyConfig() SurveyGeneratorConfig {
	return SurveyGeneratorConfig{
		RespondentCount: 1000,
		MissingRate:     0.02,
		Seed:            42,
	}
}

// SurveyDataGenerator generates synthetic respondent rows over the chart
// catalog columns. Codes are drawn per column from approximate survey
// marginals, so generated tables look like the real extract instead of a
// uniform grid. A MissingRate fraction of cells is left blank to exercise
// the missing-value handling in counting and profiling.
type SurveyDataGenerator struct {
	config SurveyGeneratorConfig
	rng    *rand.Rand
}

// NewSurveyDataGenerator creates a new survey data generator
func NewSurveyDataGenerator(config SurveyGeneratorConfig) *SurveyDataGenerator {
	return &SurveyDataGenerator{
		config: config,
		rng:    rand.New(rand.NewSource(config.Seed)),
	}
}

// GenerateRows generates RespondentCount rows over the catalog columns.
// Each call draws fresh rows from the generator's random stream.
func (g *SurveyDataGenerator) GenerateRows() [][]string {
	columns := SurveyColumns()
	codesByColumn := make(map[string][]int)
	for _, spec := range charts.DefaultSpecs() {
		codesByColumn[spec.Column] = spec.Codes
	}

	rows := make([][]string, g.config.RespondentCount)
	for i := range rows {
		row := make([]string, len(columns))
		for j, column := range columns {
			if g.rng.Float64() < g.config.MissingRate {
				row[j] = ""
				continue
			}
			row[j] = fmt.Sprintf("%d", g.randomCode(column, codesByColumn[column]))
		}
		rows[i] = row
	}
	return rows
}

// GenerateTable generates a survey table with RespondentCount rows
func (g *SurveyDataGenerator) GenerateTable() (*survey.Table, error) {
	return survey.NewTable(SurveyColumns(), g.GenerateRows())
}

// WriteCSV generates rows and writes them as a CSV fixture file
func (g *SurveyDataGenerator) WriteCSV(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create fixture %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(SurveyColumns()); err != nil {
		return fmt.Errorf("failed to write fixture header: %w", err)
	}
	for _, row := range g.GenerateRows() {
		if err := w.Write(row); err != nil {
			return fmt.Errorf("failed to write fixture row: %w", err)
		}
	}
	w.Flush()
	return w.Error()
}

// randomCode draws a category code for the column from its marginal
// distribution, falling back to a uniform draw over the declared codes.
func (g *SurveyDataGenerator) randomCode(column string, codes []int) int {
	weights, ok := surveyMarginals[column]
	if !ok || len(weights) != len(codes) {
		return codes[g.rng.Intn(len(codes))]
	}

	r := g.rng.Float64()
	cumulative := 0.0
	for i, weight := range weights {
		cumulative += weight
		if r <= cumulative {
			return codes[i]
		}
	}
	return codes[len(codes)-1]
}

// surveyMarginals approximates the adult NSDUH 2022 distribution per
// variable, in declared code order.
var surveyMarginals = map[string][]float64{
	"AGE3":     {0.08, 0.08, 0.06, 0.11, 0.13, 0.12, 0.19, 0.23}, // older brackets widest
	"COUTYP4":  {0.55, 0.30, 0.15},                               // large metro most common
	"SEXIDENT": {0.90, 0.03, 0.07},
	"IRSEX":    {0.48, 0.52},
	"NEWRACE2": {0.60, 0.11, 0.01, 0.01, 0.05, 0.02, 0.20},
	"INCOME":   {0.16, 0.26, 0.15, 0.43},
	"CIGFLAG":  {0.55, 0.45},
	"ALCFLAG":  {0.80, 0.20}, // most adults have drunk alcohol
	"MJEVER":   {0.47, 0.53},
	"COCEVER":  {0.15, 0.85},
	"HEREVER":  {0.02, 0.98},
	"LSD":      {0.11, 0.89},
}
