package handler

import (
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"pixline/internal/application/usecase/abstraction"
)

type UploadHandler struct {
	uploader abstraction.Uploader
}

func NewUploadHandler(uploader abstraction.Uploader) *UploadHandler {
	return &UploadHandler{
		uploader: uploader,
	}
}

// Handle handles POST /api/images requests with a multipart "file" field.
func (h *UploadHandler) Handle(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "missing 'file' form field",
		})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "couldn't open uploaded file",
		})
	}
	defer file.Close()

	payload, err := io.ReadAll(file)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "couldn't read uploaded file",
		})
	}

	contentType := fileHeader.Header.Get(echo.HeaderContentType)

	result, status, err := h.uploader.Upload(c.Request().Context(), payload, contentType, fileHeader.Filename)
	if err != nil {
		return c.JSON(status, map[string]string{"error": err.Error()})
	}

	return c.JSON(status, result)
}
