package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"pixline/internal/application/usecase/abstraction"
	"pixline/internal/presentation"
)

type GetHandler struct {
	getter abstraction.Getter
}

func NewGetHandler(getter abstraction.Getter) *GetHandler {
	return &GetHandler{
		getter: getter,
	}
}

// HandleGet handles GET /api/images/:id requests.
func (h *GetHandler) HandleGet(c echo.Context) error {
	id := c.Param(presentation.IDParam)
	if id == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "missing image id"})
	}

	envelope, status, err := h.getter.GetImage(c.Request().Context(), id)
	if err != nil {
		return c.JSON(status, map[string]string{"error": err.Error()})
	}

	return c.JSON(status, envelope)
}
