package abstraction

import (
	"context"

	"pixline/internal/domain/dto"
)

type StatsReporter interface {
	GetStats(ctx context.Context) (dto.StatsResponse, int, error)
}
