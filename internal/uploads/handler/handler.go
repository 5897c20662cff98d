package handler

//go:generate go run go.uber.org/mock/mockgen@latest -source=handler.go -destination=mocks_test.go -package=handler

import (
	"context"
	"io"
	"net/http"

	"voice-crm/internal/observability"
	"voice-crm/internal/uploads/processor"

	"github.com/gin-gonic/gin"
)

const (
	formField        = "audio"
	errAudioRequired = "audio file is required"
)

// Uploader stores audio files
type Uploader interface {
	Upload(ctx context.Context, filename, contentType string, r io.Reader) (processor.UploadResult, error)
}

type Handler struct {
	uploader Uploader
	logger   *observability.Logger
}

func New(uploader Uploader, logger *observability.Logger) Handler {
	return Handler{
		uploader: uploader,
		logger:   logger,
	}
}

// UploadResponse is returned by /upload-audio
type UploadResponse struct {
	Success bool `json:"success"`
	processor.UploadResult
	Error string `json:"error,omitempty"`
}

// HandleUploadAudio handles POST /upload-audio. Failures are reported with
// success false and a 200.
func (h *Handler) HandleUploadAudio(c *gin.Context) {
	ctx := c.Request.Context()

	header, err := c.FormFile(formField)
	if err != nil {
		h.logger.Warn(observability.WithFields(ctx, observability.Field{Key: "error", Value: err.Error()}), "audio file missing from form")
		c.JSON(http.StatusOK, UploadResponse{Success: false, Error: errAudioRequired})
		return
	}

	file, err := header.Open()
	if err != nil {
		h.logger.Error(ctx, "failed to open uploaded audio", err)
		c.JSON(http.StatusOK, UploadResponse{Success: false, Error: err.Error()})
		return
	}
	defer file.Close()

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "filename", Value: header.Filename},
		observability.Field{Key: "size", Value: header.Size},
	)

	result, err := h.uploader.Upload(ctx, header.Filename, header.Header.Get("Content-Type"), file)
	if err != nil {
		h.logger.Error(ctx, "failed to upload audio", err)
		c.JSON(http.StatusOK, UploadResponse{Success: false, Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, UploadResponse{Success: true, UploadResult: result})
}
