package handler

//go:generate go run go.uber.org/mock/mockgen@latest -source=handler.go -destination=mocks_test.go -package=handler

import (
	"context"
	"net/http"

	"voice-crm/internal/apierrors"
	"voice-crm/internal/intent/processor"
	"voice-crm/internal/observability"

	"github.com/gin-gonic/gin"
)

// IntentService runs transcripts against the CRM or summarizes them
type IntentService interface {
	Dispatch(ctx context.Context, transcript string) (processor.DispatchResult, error)
	Synthesize(ctx context.Context, transcript string) (string, error)
}

type Handler struct {
	service IntentService
	logger  *observability.Logger
}

func New(service IntentService, logger *observability.Logger) Handler {
	return Handler{
		service: service,
		logger:  logger,
	}
}

// TranscriptRequest is the body of /synthesis and /hubspot_commands
type TranscriptRequest struct {
	Transcript string `json:"transcript" binding:"required"`
}

// CommandsResponse is returned by /hubspot_commands
type CommandsResponse struct {
	Result  string             `json:"result"`
	Success bool               `json:"success"`
	Actions []processor.Action `json:"actions"`
}

// SynthesisResponse is returned by /synthesis
type SynthesisResponse struct {
	Result  string `json:"result"`
	Success bool   `json:"success"`
}

// HandleCommands handles POST /hubspot_commands. Every outcome is a 200
// and success carries the result.
func (h *Handler) HandleCommands(c *gin.Context) {
	ctx := c.Request.Context()

	var req TranscriptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn(observability.WithFields(ctx, observability.Field{Key: "error", Value: err.Error()}), "invalid commands request")
		c.JSON(http.StatusOK, CommandsResponse{
			Result:  apierrors.BindingMessage(err),
			Success: false,
			Actions: []processor.Action{},
		})
		return
	}

	result, err := h.service.Dispatch(ctx, req.Transcript)
	if err != nil {
		h.logger.Error(ctx, "failed to run crm commands", err)
		c.JSON(http.StatusOK, CommandsResponse{
			Result:  err.Error(),
			Success: false,
			Actions: processor.Actions(result.Executions),
		})
		return
	}

	c.JSON(http.StatusOK, CommandsResponse{
		Result:  result.Message,
		Success: true,
		Actions: processor.Actions(result.Executions),
	})
}

// HandleSynthesis handles POST /synthesis
func (h *Handler) HandleSynthesis(c *gin.Context) {
	ctx := c.Request.Context()

	var req TranscriptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn(observability.WithFields(ctx, observability.Field{Key: "error", Value: err.Error()}), "invalid synthesis request")
		c.JSON(http.StatusOK, SynthesisResponse{Result: apierrors.BindingMessage(err), Success: false})
		return
	}

	summary, err := h.service.Synthesize(ctx, req.Transcript)
	if err != nil {
		h.logger.Error(ctx, "failed to summarize transcript", err)
		c.JSON(http.StatusOK, SynthesisResponse{Result: err.Error(), Success: false})
		return
	}

	c.JSON(http.StatusOK, SynthesisResponse{Result: summary, Success: true})
}
