package bootstrap

import (
	"context"
	"fmt"

	"voice-crm/internal/config"
	"voice-crm/internal/observability"

	"voice-crm/internal/clients/googleai"
	"voice-crm/internal/clients/hubspot"
	kafkaClient "voice-crm/internal/clients/kafka"
	redisClient "voice-crm/internal/clients/redis"
	"voice-crm/internal/clients/speech"
	"voice-crm/internal/clients/storage"
	crmHandler "voice-crm/internal/crm/handler"
	crmProcessor "voice-crm/internal/crm/processor"
	intentHandler "voice-crm/internal/intent/handler"
	intentProcessor "voice-crm/internal/intent/processor"
	"voice-crm/internal/ratelimit"
	transcriptionHandler "voice-crm/internal/transcription/handler"
	transcriptionProcessor "voice-crm/internal/transcription/processor"
	uploadsHandler "voice-crm/internal/uploads/handler"
	uploadsProcessor "voice-crm/internal/uploads/processor"
)

// Dependencies holds all initialized application dependencies
type Dependencies struct {
	Logger *observability.Logger

	// Processors, shared with the CLI pipeline
	CRMProcessor           *crmProcessor.CRMProcessor
	IntentProcessor        *intentProcessor.IntentProcessor
	TranscriptionProcessor *transcriptionProcessor.TranscriptionProcessor

	// Handlers
	CRMHandler           crmHandler.Handler
	IntentHandler        intentHandler.Handler
	TranscriptionHandler transcriptionHandler.Handler
	UploadsHandler       uploadsHandler.Handler

	// Per-client limit on the voice routes, nil when disabled
	RateLimiter *ratelimit.Service

	// Clients (for cleanup)
	KafkaProducer *kafkaClient.Producer
	RedisClient   *redisClient.Client
	StorageClient *storage.Client
}

// Initialize sets up all application dependencies
func Initialize(ctx context.Context, cfg *config.Config, logger *observability.Logger) (*Dependencies, error) {
	deps := &Dependencies{
		Logger: logger,
	}

	// Initialize clients
	hubspotClient, err := hubspot.NewClient(hubspot.Config{
		BaseURL:     cfg.HubSpot.BaseURL,
		AccessToken: cfg.HubSpot.AccessToken,
		Timeout:     cfg.HubSpot.Timeout,
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create hubspot client: %w", err)
	}

	geminiClient, err := googleai.NewClient(ctx, googleai.Config{
		APIKey: cfg.Google.AIAPIKey,
		Model:  cfg.Google.Model,
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	speechClient, err := speech.NewClient(ctx, speech.Config{
		LanguageCode:        cfg.Speech.LanguageCode,
		Model:               cfg.Speech.Model,
		OpusSampleRateHertz: cfg.Speech.OpusSampleRate,
		PollInterval:        cfg.Speech.PollInterval,
		MaxWait:             cfg.Speech.MaxWait,
		CredentialsFile:     cfg.Speech.CredentialsFile,
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create speech client: %w", err)
	}

	deps.StorageClient, err = storage.NewClient(ctx, storage.Config{
		Bucket:          cfg.Storage.Bucket,
		SignedURLTTL:    cfg.Storage.SignedURLTTL,
		CredentialsFile: cfg.Storage.CredentialsFile,
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}

	// Contact lock and rate window: Redis when configured, in-process otherwise
	var locker crmProcessor.Locker
	deps.RedisClient, err = redisClient.NewClient(cfg.Redis, logger)
	if err != nil {
		deps.Cleanup()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	var window ratelimit.WindowStore
	if deps.RedisClient != nil {
		locker = deps.RedisClient
		window = deps.RedisClient
	}
	deps.RateLimiter = ratelimit.NewService(window, cfg.RateLimit.RequestsPerMinute, logger)

	// CRM events
	var events crmProcessor.EventPublisher
	if cfg.Kafka.Enabled() {
		deps.KafkaProducer = kafkaClient.NewProducer(kafkaClient.ProducerConfig{
			Brokers: cfg.Kafka.Brokers,
			Topic:   cfg.Kafka.Topic,
		}, logger)
		events = deps.KafkaProducer
	}

	// Initialize CRM processor and handler
	crmProc := crmProcessor.New(hubspotClient, locker, events, logger)
	deps.CRMProcessor = &crmProc
	deps.CRMHandler = crmHandler.New(deps.CRMProcessor, logger)

	// Initialize intent processor and handler
	intentProc := intentProcessor.New(geminiClient, geminiClient, deps.CRMProcessor, logger)
	deps.IntentProcessor = &intentProc
	deps.IntentHandler = intentHandler.New(deps.IntentProcessor, logger)

	// Initialize transcription processor and handler
	transcriptionProc := transcriptionProcessor.New(speechClient, cfg.Speech.MinConfidence, logger)
	deps.TranscriptionProcessor = &transcriptionProc
	deps.TranscriptionHandler = transcriptionHandler.New(deps.TranscriptionProcessor, logger)

	// Initialize upload processor and handler
	uploadsProc := uploadsProcessor.New(deps.StorageClient, logger)
	deps.UploadsHandler = uploadsHandler.New(&uploadsProc, logger)

	return deps, nil
}

// Cleanup closes all resources that need cleanup
func (d *Dependencies) Cleanup() {
	ctx := context.Background()
	if d.KafkaProducer != nil {
		if err := d.KafkaProducer.Close(); err != nil {
			d.Logger.Error(ctx, "failed to close kafka producer", err)
		}
	}
	if d.RedisClient != nil {
		if err := d.RedisClient.Close(); err != nil {
			d.Logger.Error(ctx, "failed to close redis client", err)
		}
	}
	if d.StorageClient != nil {
		if err := d.StorageClient.Close(); err != nil {
			d.Logger.Error(ctx, "failed to close storage client", err)
		}
	}
}
