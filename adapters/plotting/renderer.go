package plotting

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"surveycharts/domain/charts"
	"surveycharts/domain/survey"
	"surveycharts/internal/config"
)

// BarChartRenderer draws category-count bar charts and saves them as JPEG
// files. Each render owns a fresh drawing canvas until its file is closed,
// so a renderer must not be shared between goroutines.
type BarChartRenderer struct {
	cfg config.ChartConfig
}

// NewBarChartRenderer creates a renderer writing into cfg.OutputDir
func NewBarChartRenderer(cfg config.ChartConfig) *BarChartRenderer {
	return &BarChartRenderer{cfg: cfg}
}

// Render counts the spec's categories in the table, draws one bar per
// declared code and writes the chart under the configured output directory,
// overwriting any previous file. Returns the path of the written file.
func (r *BarChartRenderer) Render(ctx context.Context, table *survey.Table, spec charts.Spec) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := spec.Validate(); err != nil {
		return "", err
	}

	start := time.Now()

	counts, err := survey.CountCategories(table, spec.Column, spec.Codes)
	if err != nil {
		return "", err
	}

	p, err := r.draw(spec, counts)
	if err != nil {
		return "", err
	}

	outputPath, err := r.save(p, spec.Filename)
	if err != nil {
		return "", err
	}

	log.Printf("[BarChartRenderer] %s rendered in %.2fms (%d bars, %d participants)",
		spec.Name, float64(time.Since(start).Nanoseconds())/1e6, len(counts), survey.TotalCount(counts))

	return outputPath, nil
}

// draw builds the plot for one chart spec from the reindexed counts
func (r *BarChartRenderer) draw(spec charts.Spec, counts []survey.CategoryCount) (*plot.Plot, error) {
	p := plot.New()

	p.Title.Text = spec.Title
	p.Title.TextStyle.Font.Size = vg.Points(r.cfg.TitleFontSize)
	p.X.Label.Text = spec.XLabel
	p.X.Label.TextStyle.Font.Size = vg.Points(r.cfg.AxisFontSize)
	p.Y.Label.Text = spec.YLabel
	p.Y.Label.TextStyle.Font.Size = vg.Points(r.cfg.AxisFontSize)
	p.Legend.Top = true
	p.Legend.Left = !spec.LegendRight
	p.Legend.TextStyle.Font.Size = vg.Points(r.cfg.LegendFontSize)

	// Bars fill half of their slot across the drawable width
	slot := vg.Length(r.cfg.WidthInches) * vg.Inch / vg.Length(len(counts)+1)
	barWidth := slot / 2

	// One bar chart per category keeps per-bar fill colors and legend
	// entries; zero counts still occupy their axis position.
	for i, count := range counts {
		values := make(plotter.Values, len(counts))
		values[i] = float64(count.Count)

		bars, err := plotter.NewBarChart(values, barWidth)
		if err != nil {
			return nil, fmt.Errorf("failed to create bars for %s: %w", spec.Name, err)
		}
		bars.Color = FillColor(spec.Colors[i])
		bars.LineStyle.Width = 0

		p.Add(bars)
		p.Legend.Add(spec.Labels[i], bars)
	}

	if err := r.annotate(p, counts); err != nil {
		return nil, fmt.Errorf("failed to annotate %s: %w", spec.Name, err)
	}

	p.NominalX(spec.Ticks...)
	p.Y.Min = 0
	if p.Y.Max <= p.Y.Min {
		p.Y.Max = 1
	}
	p.Y.Max *= 1.05 // headroom for the count labels

	return p, nil
}

// annotate places each bar's count directly above it
func (r *BarChartRenderer) annotate(p *plot.Plot, counts []survey.CategoryCount) error {
	pts := make(plotter.XYs, len(counts))
	notes := make([]string, len(counts))
	for i, count := range counts {
		pts[i] = plotter.XY{X: float64(i), Y: float64(count.Count)}
		notes[i] = strconv.Itoa(count.Count)
	}

	labels, err := plotter.NewLabels(plotter.XYLabels{XYs: pts, Labels: notes})
	if err != nil {
		return err
	}
	for i := range labels.TextStyle {
		labels.TextStyle[i].XAlign = text.XCenter
		labels.TextStyle[i].YAlign = text.YBottom
	}
	labels.Offset = vg.Point{Y: vg.Points(2)}

	p.Add(labels)
	return nil
}

// save writes the finished plot as a JPEG at the configured size and DPI
func (r *BarChartRenderer) save(p *plot.Plot, filename string) (string, error) {
	if err := os.MkdirAll(r.cfg.OutputDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}
	outputPath := filepath.Join(r.cfg.OutputDir, filename)

	canvas := vgimg.NewWith(
		vgimg.UseWH(vg.Length(r.cfg.WidthInches)*vg.Inch, vg.Length(r.cfg.HeightInches)*vg.Inch),
		vgimg.UseDPI(r.cfg.DPI),
	)
	p.Draw(draw.New(canvas))

	f, err := os.Create(outputPath)
	if err != nil {
		return "", fmt.Errorf("failed to create %s: %w", outputPath, err)
	}
	defer f.Close()

	jc := vgimg.JpegCanvas{Canvas: canvas}
	if _, err := jc.WriteTo(f); err != nil {
		return "", fmt.Errorf("failed to encode %s: %w", outputPath, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("failed to flush %s: %w", outputPath, err)
	}

	return outputPath, nil
}
