package ports

import (
	"context"

	"surveycharts/domain/survey"
)

// TableReaderPort loads the survey dataset into an in-memory table
type TableReaderPort interface {
	ReadTable(ctx context.Context) (*survey.Table, error)
}
