package charts

import (
	"fmt"
	"strings"
)

// DrugVariable pairs a substance-use flag column with its display name
type DrugVariable struct {
	Column string `json:"column"`
	Name   string `json:"name"`
}

// DefaultDrugVariables lists the substance flags charted by default
func DefaultDrugVariables() []DrugVariable {
	return []DrugVariable{
		{Column: "CIGFLAG", Name: "Cigarettes"},
		{Column: "ALCFLAG", Name: "Alcohol"},
		{Column: "MJEVER", Name: "Marijuana"},
		{Column: "COCEVER", Name: "Cocaine"},
		{Column: "HEREVER", Name: "Heroin"},
		{Column: "LSD", Name: "LSD"},
	}
}

// DefaultSpecs returns the full chart catalog in render order: six
// demographic charts followed by one chart per default substance flag
func DefaultSpecs() []Spec {
	specs := []Spec{
		ageSpec(),
		residenceSpec(),
		orientationSpec(),
		sexSpec(),
		raceSpec(),
		incomeSpec(),
	}
	for _, v := range DefaultDrugVariables() {
		specs = append(specs, DrugSpec(v))
	}
	return specs
}

// SpecByName looks up a catalog chart by its short name
func SpecByName(name string) (Spec, bool) {
	for _, s := range DefaultSpecs() {
		if s.Name == name {
			return s, true
		}
	}
	return Spec{}, false
}

// SpecByColumn looks up a catalog chart by its survey column
func SpecByColumn(column string) (Spec, bool) {
	for _, s := range DefaultSpecs() {
		if s.Column == column {
			return s, true
		}
	}
	return Spec{}, false
}

// DrugSpec builds the chart spec for one substance-use flag
func DrugSpec(v DrugVariable) Spec {
	return Spec{
		Name:     strings.ToLower(v.Column),
		Column:   v.Column,
		Title:    fmt.Sprintf("Distribution of participants by %s usage (%s)", v.Name, v.Column),
		YLabel:   "Number of participants",
		Codes:    []int{1, 2},
		Ticks:    []string{"Used", "Never used"},
		Labels:   []string{"Used", "Never used"},
		Colors:   []string{ColorLightSalmon, ColorSkyBlue},
		Filename: fmt.Sprintf("histographs_drug_%s_eng.jpg", v.Name),
	}
}

func ageSpec() Spec {
	return Spec{
		Name:   "age3",
		Column: "AGE3",
		Title:  "Distribution of Participants by Age Group (AGE3)",
		XLabel: "Age Group",
		YLabel: "Number of Participants",
		Codes:  []int{4, 5, 6, 7, 8, 9, 10, 11},
		Ticks:  []string{"4", "5", "6", "7", "8", "9", "10", "11"},
		Labels: []string{
			"4 - 18-20 years",
			"5 - 21-23 years",
			"6 - 24-25 years",
			"7 - 26-29 years",
			"8 - 30-34 years",
			"9 - 35-49 years",
			"10 - 50-64 years",
			"11 - 65+ years",
		},
		Colors: []string{
			ColorSkyBlue, ColorLightCoral, ColorLightGreen, ColorGold,
			ColorLightSalmon, ColorLightSeaGreen, ColorLightPink, ColorLightSteelBlue,
		},
		Filename: "histogram_age3_eng.jpg",
	}
}

func residenceSpec() Spec {
	return Spec{
		Name:     "coutyp4",
		Column:   "COUTYP4",
		Title:    "Distribution of Participants by Residence Type (COUTYP4)",
		YLabel:   "Number of Participants",
		Codes:    []int{1, 2, 3},
		Ticks:    []string{"Large Metro", "Small Metro", "Non-Metro"},
		Labels:   []string{"Large Metro", "Small Metro", "Non-Metro"},
		Colors:   []string{ColorSkyBlue, ColorLightGreen, ColorLightSalmon},
		Filename: "histogram_coutyp4_eng.jpg",
	}
}

func orientationSpec() Spec {
	return Spec{
		Name:     "sexident",
		Column:   "SEXIDENT",
		Title:    "Distribution of Participants by Sexual Orientation (SEXIDENT)",
		YLabel:   "Number of Participants",
		Codes:    []int{1, 2, 3},
		Ticks:    []string{"Heterosexual", "Homosexual", "Bisexual"},
		Labels:   []string{"Heterosexual", "Homosexual", "Bisexual"},
		Colors:   []string{ColorSkyBlue, ColorLightGreen, ColorLightSalmon},
		Filename: "histogram_sexident_eng.jpg",
	}
}

func sexSpec() Spec {
	return Spec{
		Name:     "irsex",
		Column:   "IRSEX",
		Title:    "Distribution of participants by gender (IRSEX)",
		YLabel:   "Number of participants",
		Codes:    []int{1, 2},
		Ticks:    []string{"Male", "Female"},
		Labels:   []string{"Male", "Female"},
		Colors:   []string{ColorSkyBlue, ColorPink},
		Filename: "histogram_irsex_eng.jpg",
	}
}

func raceSpec() Spec {
	return Spec{
		Name:   "newrace2",
		Column: "NEWRACE2",
		Title:  "Distribution of participants by ethnic origin (NEWRACE2)",
		YLabel: "Number of participants",
		Codes:  []int{1, 2, 3, 4, 5, 6, 7},
		Ticks:  []string{"1", "2", "3", "4", "5", "6", "7"},
		Labels: []string{
			"1 - White",
			"2 - Black or African American",
			"3 - Native American",
			"4 - Native Hawaiian/Pacific Islander",
			"5 - Asian",
			"6 - More than one race",
			"7 - Hispanic/Latino",
		},
		Colors: []string{
			ColorSkyBlue, ColorLightCoral, ColorLightGreen, ColorGold,
			ColorLightSalmon, ColorLightSeaGreen, ColorLightPink,
		},
		LegendRight: true,
		Filename:    "histogram_newrace2_eng.jpg",
	}
}

func incomeSpec() Spec {
	return Spec{
		Name:   "income",
		Column: "INCOME",
		Title:  "Distribution of Participants by Income Group (INCOME)",
		XLabel: "Total Annual Family Income",
		YLabel: "Number of Participants",
		Codes:  []int{1, 2, 3, 4},
		Ticks:  []string{"1", "2", "3", "4"},
		Labels: []string{
			"1 - Less than $20,000",
			"2 - $20,000-$49,999",
			"3 - $50,000-$74,999",
			"4 - More than $75,000",
		},
		Colors:   []string{ColorSkyBlue, ColorLightCoral, ColorLightGreen, ColorGold},
		Filename: "histograph_income_eng.jpg",
	}
}
