package testkit

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"testing"

	"surveycharts/domain/charts"
	"surveycharts/domain/survey"
)

func TestSurveyDataGenerator_Basic(t *testing.T) {
	config := SurveyGeneratorConfig{
		RespondentCount: 50, // Small for testing
		MissingRate:     0.1,
		Seed:            42,
	}

	generator := NewSurveyDataGenerator(config)
	table, err := generator.GenerateTable()
	if err != nil {
		t.Fatalf("Failed to generate table: %v", err)
	}

	if table.NumRows() != config.RespondentCount {
		t.Errorf("Expected %d rows, got %d", config.RespondentCount, table.NumRows())
	}
	if table.NumColumns() != len(SurveyColumns()) {
		t.Errorf("Expected %d columns, got %d", len(SurveyColumns()), table.NumColumns())
	}

	// Every generated cell is blank or one of the column's declared codes
	for _, spec := range charts.DefaultSpecs() {
		declared := make(map[int]bool)
		for _, code := range spec.Codes {
			declared[code] = true
		}

		cells, err := table.Column(spec.Column)
		if err != nil {
			t.Fatalf("Column %s missing from generated table: %v", spec.Column, err)
		}
		for i, cell := range cells {
			if cell == "" {
				continue
			}
			code, err := strconv.Atoi(cell)
			if err != nil {
				t.Fatalf("Row %d of %s is not a code: %q", i, spec.Column, cell)
			}
			if !declared[code] {
				t.Errorf("Row %d of %s has undeclared code %d", i, spec.Column, code)
			}
		}
	}
}

func TestSurveyDataGenerator_Deterministic(t *testing.T) {
	config := SurveyGeneratorConfig{
		RespondentCount: 100,
		MissingRate:     0.05,
		Seed:            42,
	}

	first := NewSurveyDataGenerator(config).GenerateRows()
	second := NewSurveyDataGenerator(config).GenerateRows()
	if !reflect.DeepEqual(first, second) {
		t.Error("Same seed should generate identical rows")
	}

	config.Seed = 7
	reseeded := NewSurveyDataGenerator(config).GenerateRows()
	if reflect.DeepEqual(first, reseeded) {
		t.Error("Different seeds should generate different rows")
	}
}

func TestSurveyDataGenerator_Marginals(t *testing.T) {
	config := SurveyGeneratorConfig{
		RespondentCount: 4000,
		MissingRate:     0,
		Seed:            42,
	}

	generator := NewSurveyDataGenerator(config)
	table, err := generator.GenerateTable()
	if err != nil {
		t.Fatalf("Failed to generate table: %v", err)
	}

	cases := []struct {
		column string
		code   int
		want   float64
	}{
		{"IRSEX", 1, 0.48},
		{"ALCFLAG", 1, 0.80},
		{"COUTYP4", 1, 0.55},
	}

	for _, tc := range cases {
		spec, ok := charts.SpecByColumn(tc.column)
		if !ok {
			t.Fatalf("No catalog spec for column %s", tc.column)
		}
		counts, err := survey.CountCategories(table, tc.column, spec.Codes)
		if err != nil {
			t.Fatalf("Count for %s failed: %v", tc.column, err)
		}

		var got int
		for _, count := range counts {
			if count.Code == tc.code {
				got = count.Count
			}
		}
		proportion := float64(got) / float64(config.RespondentCount)
		if proportion < tc.want-0.04 || proportion > tc.want+0.04 {
			t.Errorf("%s code %d proportion = %.3f, want %.2f ± 0.04",
				tc.column, tc.code, proportion, tc.want)
		}
	}
}

func TestSurveyDataGenerator_MissingRate(t *testing.T) {
	config := SurveyGeneratorConfig{
		RespondentCount: 2000,
		MissingRate:     0.2,
		Seed:            42,
	}

	rows := NewSurveyDataGenerator(config).GenerateRows()

	blank, total := 0, 0
	for _, row := range rows {
		for _, cell := range row {
			total++
			if cell == "" {
				blank++
			}
		}
	}

	proportion := float64(blank) / float64(total)
	if proportion < 0.15 || proportion > 0.25 {
		t.Errorf("Blank cell proportion = %.3f, want 0.20 ± 0.05", proportion)
	}
}

func TestSurveyDataGenerator_WriteCSV(t *testing.T) {
	config := DefaultSurveyConfig()
	config.RespondentCount = 25 // Very small for testing

	path := filepath.Join(t.TempDir(), "survey_fixture.csv")
	generator := NewSurveyDataGenerator(config)
	if err := generator.WriteCSV(path); err != nil {
		t.Fatalf("Failed to write fixture: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("Failed to open fixture: %v", err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("Failed to read fixture back: %v", err)
	}
	if len(records) != config.RespondentCount+1 {
		t.Errorf("Expected header plus %d rows, got %d records", config.RespondentCount, len(records))
	}
	if !reflect.DeepEqual(records[0], SurveyColumns()) {
		t.Errorf("Fixture header = %v, want %v", records[0], SurveyColumns())
	}

	t.Logf("Generated %d respondents into %s", config.RespondentCount, path)
}
