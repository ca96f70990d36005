package handler

import (
	"github.com/labstack/echo/v4"

	"pixline/internal/application/usecase/abstraction"
)

type StatsHandler struct {
	stats abstraction.StatsReporter
}

func NewStatsHandler(stats abstraction.StatsReporter) *StatsHandler {
	return &StatsHandler{
		stats: stats,
	}
}

// HandleStats handles GET /api/stats requests.
func (h *StatsHandler) HandleStats(c echo.Context) error {
	response, status, err := h.stats.GetStats(c.Request().Context())
	if err != nil {
		return c.JSON(status, map[string]string{"error": err.Error()})
	}

	return c.JSON(status, response)
}
