package profiling

import (
	"fmt"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat"

	"surveycharts/domain/survey"
)

// VariableProfile summarizes the numeric responses of one survey column
type VariableProfile struct {
	Name     string  `json:"name"`
	Observed int     `json:"observed"` // cells that parsed as numbers
	Missing  int     `json:"missing"`  // blank or non-numeric cells
	Unique   int     `json:"unique"`   // distinct observed values
	Mean     float64 `json:"mean"`
	Median   float64 `json:"median"`
	StdDev   float64 `json:"std_dev"`
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
	Q25      float64 `json:"q25"`
	Q75      float64 `json:"q75"`
	Entropy  float64 `json:"entropy"` // Shannon entropy of the value distribution, in nats
}

// TableProfiler computes per-column summaries of a loaded survey table
type TableProfiler struct{}

// NewTableProfiler creates a new table profiler
func NewTableProfiler() *TableProfiler {
	return &TableProfiler{}
}

// ProfileTable profiles every column in table column order
func (tp *TableProfiler) ProfileTable(table *survey.Table) []VariableProfile {
	profiles := make([]VariableProfile, 0, table.NumColumns())
	for _, name := range table.Columns() {
		profile, err := tp.ProfileColumn(table, name)
		if err != nil {
			continue
		}
		profiles = append(profiles, profile)
	}
	return profiles
}

// ProfileColumn performs statistical analysis on a single column
func (tp *TableProfiler) ProfileColumn(table *survey.Table, name string) (VariableProfile, error) {
	values, err := table.Numeric(name)
	if err != nil {
		return VariableProfile{}, err
	}

	profile := VariableProfile{
		Name:     name,
		Observed: len(values),
		Missing:  table.NumRows() - len(values),
	}
	if len(values) == 0 {
		return profile, nil
	}

	if profile.Mean, err = stats.Mean(values); err != nil {
		return profile, fmt.Errorf("mean of %s: %w", name, err)
	}
	if profile.Median, err = stats.Median(values); err != nil {
		return profile, fmt.Errorf("median of %s: %w", name, err)
	}
	if profile.StdDev, err = stats.StandardDeviation(values); err != nil {
		return profile, fmt.Errorf("std dev of %s: %w", name, err)
	}
	if profile.Min, err = stats.Min(values); err != nil {
		return profile, fmt.Errorf("min of %s: %w", name, err)
	}
	if profile.Max, err = stats.Max(values); err != nil {
		return profile, fmt.Errorf("max of %s: %w", name, err)
	}
	if profile.Q25, err = stats.Percentile(values, 25); err != nil {
		return profile, fmt.Errorf("q25 of %s: %w", name, err)
	}
	if profile.Q75, err = stats.Percentile(values, 75); err != nil {
		return profile, fmt.Errorf("q75 of %s: %w", name, err)
	}

	profile.Unique, profile.Entropy = distribution(values)

	return profile, nil
}

// distribution returns the distinct value count and the Shannon entropy of
// the observed value frequencies
func distribution(values []float64) (int, float64) {
	freq := make(map[float64]int)
	for _, v := range values {
		freq[v]++
	}

	probs := make([]float64, 0, len(freq))
	total := float64(len(values))
	for _, count := range freq {
		probs = append(probs, float64(count)/total)
	}

	return len(freq), stat.Entropy(probs)
}
