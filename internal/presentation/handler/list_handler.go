package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"pixline/internal/application/usecase/abstraction"
)

type ListHandler struct {
	lister abstraction.Lister
}

func NewListHandler(lister abstraction.Lister) *ListHandler {
	return &ListHandler{
		lister: lister,
	}
}

// HandleList handles GET /api/images requests.
func (h *ListHandler) HandleList(c echo.Context) error {
	envelopes, status, err := h.lister.ListImages(c.Request().Context())
	if err != nil {
		return c.JSON(status, map[string]string{"error": err.Error()})
	}

	return c.JSON(http.StatusOK, envelopes)
}
