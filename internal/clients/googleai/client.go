package googleai

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"voice-crm/internal/observability"

	"google.golang.org/genai"
)

const (
	DefaultModel = "gemini-2.5-flash"

	roleUser  = "user"
	roleModel = "model"
)

var ErrEmptyResponse = errors.New("gemini returned no candidates")

type contentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// Config configures the Gemini client
type Config struct {
	APIKey string
	Model  string
}

// Client calls Gemini for intent classification, confirmations and summaries
type Client struct {
	models contentGenerator
	model  string
	logger *observability.Logger
	now    func() time.Time
}

// NewClient creates a Gemini client for the Developer API
func NewClient(ctx context.Context, cfg Config, logger *observability.Logger) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini api key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Google AI client: %w", err)
	}

	return newClient(client.Models, cfg.Model, logger), nil
}

func newClient(models contentGenerator, model string, logger *observability.Logger) *Client {
	if model == "" {
		model = DefaultModel
	}
	return &Client{
		models: models,
		model:  model,
		logger: logger,
		now:    time.Now,
	}
}

func (c *Client) generate(ctx context.Context, operation string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "gemini_model", Value: c.model},
		observability.Field{Key: "gemini_operation", Value: operation},
	)

	start := time.Now()
	resp, err := c.models.GenerateContent(ctx, c.model, contents, config)
	ctx = observability.WithFields(ctx, observability.Field{Key: "gemini_latency_ms", Value: time.Since(start).Milliseconds()})
	if err != nil {
		c.logger.Error(ctx, "gemini request failed", err)
		return nil, fmt.Errorf("gemini %s: %w", operation, err)
	}
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		c.logger.Warn(ctx, "gemini returned an empty response")
		return nil, fmt.Errorf("gemini %s: %w", operation, ErrEmptyResponse)
	}

	c.logger.Debug(ctx, "gemini request succeeded")
	return resp, nil
}

func userText(text string) *genai.Content {
	return &genai.Content{Role: roleUser, Parts: []*genai.Part{{Text: text}}}
}

// responseText joins the text parts of the first candidate
func responseText(resp *genai.GenerateContentResponse) string {
	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if part != nil && part.Text != "" {
			b.WriteString(part.Text)
		}
	}
	return strings.TrimSpace(b.String())
}
