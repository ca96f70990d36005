package database

import "context"

// Counts holds the aggregate numbers backing the stats endpoint.
type Counts struct {
	Total               int64
	Failed              int64
	Success             int64
	AverageProcessingMs float64
}

// Counter aggregates lifecycle outcomes across all image records.
type Counter interface {
	Counts(ctx context.Context) (Counts, error)
}
