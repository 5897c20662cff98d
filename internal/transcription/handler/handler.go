package handler

//go:generate go run go.uber.org/mock/mockgen@latest -source=handler.go -destination=mocks_test.go -package=handler

import (
	"context"
	"errors"
	"net/http"

	"voice-crm/internal/apierrors"
	"voice-crm/internal/observability"
	"voice-crm/internal/transcription/processor"

	"github.com/gin-gonic/gin"
)

// Transcriber turns stored audio into text
type Transcriber interface {
	TranscribeURL(ctx context.Context, audioURL string) (processor.Result, error)
}

type Handler struct {
	transcriber Transcriber
	logger      *observability.Logger
}

func New(transcriber Transcriber, logger *observability.Logger) Handler {
	return Handler{
		transcriber: transcriber,
		logger:      logger,
	}
}

type TranscriptRequest struct {
	AudioURL string `json:"audio_url" binding:"required"`
}

type TranscriptResponse struct {
	Transcription string `json:"transcription"`
	Success       bool   `json:"success"`
}

// HandleAudioToTranscript handles POST /audio_to_transcript. Always a 200,
// success is false for bad input, recognizer failures and low confidence.
func (h *Handler) HandleAudioToTranscript(c *gin.Context) {
	ctx := c.Request.Context()

	var req TranscriptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn(observability.WithFields(ctx, observability.Field{Key: "error", Value: err.Error()}), "invalid transcription request")
		c.JSON(http.StatusOK, TranscriptResponse{Transcription: apierrors.BindingMessage(err), Success: false})
		return
	}

	result, err := h.transcriber.TranscribeURL(ctx, req.AudioURL)
	if err != nil {
		if errors.Is(err, processor.ErrAudioURLRequired) || errors.Is(err, processor.ErrUnsupportedAudioURL) {
			h.logger.Warn(observability.WithFields(ctx, observability.Field{Key: "error", Value: err.Error()}), "rejected audio url")
		} else {
			h.logger.Error(ctx, "failed to transcribe audio", err)
		}
		c.JSON(http.StatusOK, TranscriptResponse{Transcription: err.Error(), Success: false})
		return
	}

	c.JSON(http.StatusOK, TranscriptResponse{Transcription: result.Text, Success: result.Success})
}
