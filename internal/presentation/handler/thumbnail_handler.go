package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"pixline/internal/application/usecase/abstraction"
	"pixline/internal/presentation"
)

type ThumbnailHandler struct {
	thumbnails abstraction.ThumbnailGetter
}

func NewThumbnailHandler(thumbnails abstraction.ThumbnailGetter) *ThumbnailHandler {
	return &ThumbnailHandler{
		thumbnails: thumbnails,
	}
}

// HandleThumbnail handles GET /api/images/:id/thumbnails/:size requests.
// Variants are always stored as JPEG, whatever the original encoding was.
func (h *ThumbnailHandler) HandleThumbnail(c echo.Context) error {
	id := c.Param(presentation.IDParam)
	size := c.Param(presentation.SizeParam)

	reader, status, err := h.thumbnails.GetThumbnail(c.Request().Context(), id, size)
	if err != nil {
		return c.JSON(status, map[string]string{"error": err.Error()})
	}
	defer reader.Close()

	return c.Stream(http.StatusOK, "image/jpeg", reader)
}
