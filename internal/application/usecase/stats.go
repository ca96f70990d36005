package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"pixline/internal/domain/dto"
	databaseRepository "pixline/internal/domain/repository/database"
)

// StatsReporter aggregates lifecycle outcomes into the stats view.
type StatsReporter struct {
	counter databaseRepository.Counter
}

func NewStatsReporter(counter databaseRepository.Counter) *StatsReporter {
	return &StatsReporter{counter: counter}
}

func (s *StatsReporter) GetStats(ctx context.Context) (dto.StatsResponse, int, error) {
	counts, err := s.counter.Counts(ctx)
	if err != nil {
		return dto.StatsResponse{}, http.StatusInternalServerError, errors.New("failed to aggregate stats")
	}

	rate := 0.0
	if counts.Total > 0 {
		rate = float64(counts.Success) / float64(counts.Total) * 100
	}

	return dto.StatsResponse{
		Total:                        counts.Total,
		Failed:                       counts.Failed,
		SuccessRate:                  fmt.Sprintf("%.2f%%", rate),
		AverageProcessingTimeSeconds: counts.AverageProcessingMs / 1000.0,
	}, http.StatusOK, nil
}
