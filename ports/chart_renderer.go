package ports

import (
	"context"

	"surveycharts/domain/charts"
	"surveycharts/domain/survey"
)

// ChartRendererPort turns a survey table and a chart spec into one saved
// image file, returning the path written. Renderers are not safe for
// concurrent use; callers must finish one chart before starting the next.
type ChartRendererPort interface {
	Render(ctx context.Context, table *survey.Table, spec charts.Spec) (string, error)
}
