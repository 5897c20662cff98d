package speech

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"voice-crm/internal/observability"

	"google.golang.org/api/option"
	speechapi "google.golang.org/api/speech/v1"
)

var (
	ErrOperationFailed   = errors.New("speech recognition operation failed")
	ErrOperationTimeout  = errors.New("speech recognition did not finish in time")
	ErrUnsupportedFormat = errors.New("audio format is not supported, use webm, ogg, wav or flac")
)

// Config holds the fixed recognition settings
type Config struct {
	LanguageCode        string
	Model               string
	OpusSampleRateHertz int64
	PollInterval        time.Duration
	MaxWait             time.Duration
	CredentialsFile     string
}

// Alternative is one candidate transcript of one audio segment
type Alternative struct {
	Transcript string
	Confidence float64
}

// Client wraps Cloud Speech-to-Text v1
type Client struct {
	svc    *speechapi.Service
	cfg    Config
	logger *observability.Logger
}

// NewClient creates a Speech-to-Text client. Extra options are appended to
// the credentials option.
func NewClient(ctx context.Context, cfg Config, logger *observability.Logger, opts ...option.ClientOption) (*Client, error) {
	if cfg.LanguageCode == "" {
		cfg.LanguageCode = "pt-BR"
	}
	if cfg.Model == "" {
		cfg.Model = "latest_long"
	}
	if cfg.OpusSampleRateHertz <= 0 {
		cfg.OpusSampleRateHertz = defaultOpusSampleRate
	}
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = 2 * time.Second
	}
	if cfg.MaxWait <= 0 {
		cfg.MaxWait = 30 * time.Minute
	}

	if cfg.CredentialsFile != "" {
		opts = append([]option.ClientOption{option.WithCredentialsFile(cfg.CredentialsFile)}, opts...)
	}

	svc, err := speechapi.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create speech service: %w", err)
	}

	return &Client{svc: svc, cfg: cfg, logger: logger}, nil
}

func (c *Client) recognitionConfig(enc Encoding) *speechapi.RecognitionConfig {
	return &speechapi.RecognitionConfig{
		LanguageCode:               c.cfg.LanguageCode,
		Model:                      c.cfg.Model,
		Encoding:                   enc.Name,
		SampleRateHertz:            enc.SampleRateHertz,
		EnableAutomaticPunctuation: true,
		EnableWordConfidence:       true,
	}
}

// RecognizeURI runs long-running recognition on a gs:// object and waits for
// it. The encoding follows the object's extension.
func (c *Client) RecognizeURI(ctx context.Context, uri string) ([]Alternative, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "audio_uri", Value: uri})

	enc, err := EncodingForName(uri, c.cfg.OpusSampleRateHertz)
	if err != nil {
		return nil, err
	}

	op, err := c.svc.Speech.Longrunningrecognize(&speechapi.LongRunningRecognizeRequest{
		Audio:  &speechapi.RecognitionAudio{Uri: uri},
		Config: c.recognitionConfig(enc),
	}).Context(ctx).Do()
	if err != nil {
		c.logger.Error(ctx, "failed to start long running recognition", err)
		return nil, fmt.Errorf("failed to start recognition: %w", err)
	}

	ctx = observability.WithFields(ctx, observability.Field{Key: "operation", Value: op.Name})
	op, err = c.wait(ctx, op)
	if err != nil {
		return nil, err
	}

	var resp speechapi.LongRunningRecognizeResponse
	if len(op.Response) > 0 {
		if err := json.Unmarshal(op.Response, &resp); err != nil {
			return nil, fmt.Errorf("failed to decode recognition response: %w", err)
		}
	}

	c.logger.Info(ctx, "long running recognition finished")
	return flatten(resp.Results), nil
}

// RecognizeContent runs synchronous recognition on inline audio, sniffing the
// container from its first bytes
func (c *Client) RecognizeContent(ctx context.Context, audio []byte) ([]Alternative, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "audio_bytes", Value: len(audio)})

	enc, err := EncodingForContent(audio, c.cfg.OpusSampleRateHertz)
	if err != nil {
		return nil, err
	}

	resp, err := c.svc.Speech.Recognize(&speechapi.RecognizeRequest{
		Audio:  &speechapi.RecognitionAudio{Content: base64.StdEncoding.EncodeToString(audio)},
		Config: c.recognitionConfig(enc),
	}).Context(ctx).Do()
	if err != nil {
		c.logger.Error(ctx, "synchronous recognition failed", err)
		return nil, fmt.Errorf("failed to recognize audio: %w", err)
	}

	return flatten(resp.Results), nil
}

func (c *Client) wait(ctx context.Context, op *speechapi.Operation) (*speechapi.Operation, error) {
	ctx, cancel := context.WithTimeout(ctx, c.cfg.MaxWait)
	defer cancel()

	ticker := time.NewTicker(c.cfg.PollInterval)
	defer ticker.Stop()

	for !op.Done {
		select {
		case <-ctx.Done():
			if errors.Is(ctx.Err(), context.DeadlineExceeded) {
				return nil, fmt.Errorf("%w: %s", ErrOperationTimeout, op.Name)
			}
			return nil, ctx.Err()
		case <-ticker.C:
		}

		next, err := c.svc.Operations.Get(op.Name).Context(ctx).Do()
		if err != nil {
			c.logger.Error(ctx, "failed to poll recognition operation", err)
			return nil, fmt.Errorf("failed to poll operation %s: %w", op.Name, err)
		}
		op = next
	}

	if op.Error != nil {
		err := fmt.Errorf("%w: %s (code %d)", ErrOperationFailed, op.Error.Message, op.Error.Code)
		c.logger.Error(ctx, "recognition operation returned an error", err)
		return nil, err
	}
	return op, nil
}

func flatten(results []*speechapi.SpeechRecognitionResult) []Alternative {
	var out []Alternative
	for _, r := range results {
		if r == nil {
			continue
		}
		for _, a := range r.Alternatives {
			if a == nil {
				continue
			}
			out = append(out, Alternative{Transcript: a.Transcript, Confidence: a.Confidence})
		}
	}
	return out
}
