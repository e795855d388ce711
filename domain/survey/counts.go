package survey

import (
	"math"
	"strconv"
)

// CategoryCount is the number of respondents whose cell matched one
// category code.
type CategoryCount struct {
	Code  int
	Count int
}

// CountCategories partitions one column of the table by a declared code list
// and returns the per-code counts in exactly the declared order. Codes with
// no matching rows still appear with count zero, so chart axes stay aligned
// with the label list; codes present in the data but absent from the declared
// list are ignored.
func CountCategories(t *Table, column string, codes []int) ([]CategoryCount, error) {
	cells, err := t.Column(column)
	if err != nil {
		return nil, err
	}

	tally := make(map[int]int, len(codes))
	for _, cell := range cells {
		code, ok := parseCode(cell)
		if !ok {
			continue
		}
		tally[code]++
	}

	counts := make([]CategoryCount, len(codes))
	for i, code := range codes {
		counts[i] = CategoryCount{Code: code, Count: tally[code]}
	}
	return counts, nil
}

// TotalCount sums the counts of a partition.
func TotalCount(counts []CategoryCount) int {
	total := 0
	for _, c := range counts {
		total += c.Count
	}
	return total
}

// parseCode reads one cell as an integer category code. Blank and
// non-numeric cells are missing responses and match no code. Codes written
// with an integral decimal part ("2.0") still parse, since some extract
// tools emit them that way.
func parseCode(cell string) (int, bool) {
	if cell == "" {
		return 0, false
	}
	if code, err := strconv.Atoi(cell); err == nil {
		return code, true
	}
	f, err := strconv.ParseFloat(cell, 64)
	if err != nil || f != math.Trunc(f) {
		return 0, false
	}
	return int(f), true
}
