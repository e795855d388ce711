package charts

import "fmt"

// Named fill colors understood by chart renderers
const (
	ColorSkyBlue        = "skyblue"
	ColorLightCoral     = "lightcoral"
	ColorLightGreen     = "lightgreen"
	ColorGold           = "gold"
	ColorLightSalmon    = "lightsalmon"
	ColorLightSeaGreen  = "lightseagreen"
	ColorLightPink      = "lightpink"
	ColorLightSteelBlue = "lightsteelblue"
	ColorPink           = "pink"
)

// Spec describes one bar chart: the survey column it reads, the declared
// category codes in display order, and the cosmetics applied when drawing.
// Codes, Ticks, Labels and Colors are parallel slices indexed by bar position.
type Spec struct {
	Name        string   `json:"name"`                   // short identifier for logs and lookup
	Column      string   `json:"column"`                 // survey variable the chart reads
	Title       string   `json:"title"`                  // chart title
	XLabel      string   `json:"x_label,omitempty"`      // x-axis caption, empty for none
	YLabel      string   `json:"y_label"`                // y-axis caption
	Codes       []int    `json:"codes"`                  // declared category codes, display order
	Ticks       []string `json:"ticks"`                  // x-axis tick text per code
	Labels      []string `json:"labels"`                 // legend entry per code
	Colors      []string `json:"colors"`                 // fill color name per code
	LegendRight bool     `json:"legend_right,omitempty"` // anchor legend top-right instead of top-left
	Filename    string   `json:"filename"`               // output image name
}

// Validate checks the spec is internally consistent before rendering
func (s Spec) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("chart name must be set")
	}
	if s.Column == "" {
		return fmt.Errorf("chart %s: survey column must be set", s.Name)
	}
	if s.Title == "" {
		return fmt.Errorf("chart %s: title must be set", s.Name)
	}
	if s.YLabel == "" {
		return fmt.Errorf("chart %s: y-axis label must be set", s.Name)
	}
	if s.Filename == "" {
		return fmt.Errorf("chart %s: output filename must be set", s.Name)
	}
	if len(s.Codes) == 0 {
		return fmt.Errorf("chart %s: at least one category code is required", s.Name)
	}
	if len(s.Ticks) != len(s.Codes) {
		return fmt.Errorf("chart %s: %d ticks for %d codes", s.Name, len(s.Ticks), len(s.Codes))
	}
	if len(s.Labels) != len(s.Codes) {
		return fmt.Errorf("chart %s: %d labels for %d codes", s.Name, len(s.Labels), len(s.Codes))
	}
	if len(s.Colors) != len(s.Codes) {
		return fmt.Errorf("chart %s: %d colors for %d codes", s.Name, len(s.Colors), len(s.Codes))
	}

	seen := make(map[int]bool)
	for _, code := range s.Codes {
		if seen[code] {
			return fmt.Errorf("chart %s: duplicate category code %d", s.Name, code)
		}
		seen[code] = true
	}

	return nil
}
