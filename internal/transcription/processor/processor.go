package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=processor

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"voice-crm/internal/clients/speech"
	"voice-crm/internal/observability"
)

// RepeatText is returned in place of a transcript the recognizer was not sure about
const RepeatText = "Repeat"

// DefaultMinConfidence is the lowest accepted confidence, inclusive
const DefaultMinConfidence = 0.50

var (
	ErrAudioURLRequired    = errors.New("audio url is required")
	ErrUnsupportedAudioURL = errors.New("audio url must be gs:// or a storage.googleapis.com object url")
	ErrEmptyAudio          = errors.New("audio content is empty")
)

// Recognizer is the speech-to-text backend
type Recognizer interface {
	RecognizeURI(ctx context.Context, uri string) ([]speech.Alternative, error)
	RecognizeContent(ctx context.Context, audio []byte) ([]speech.Alternative, error)
}

// Result is the outcome of a transcription attempt. Success is false when the
// best alternative fell under the confidence threshold.
type Result struct {
	Success    bool
	Text       string
	Confidence float64
}

type TranscriptionProcessor struct {
	recognizer    Recognizer
	minConfidence float64
	logger        *observability.Logger
}

// New builds a processor. A non-positive minConfidence means DefaultMinConfidence;
// config.Load rejects such values before they get here.
func New(recognizer Recognizer, minConfidence float64, logger *observability.Logger) TranscriptionProcessor {
	if minConfidence <= 0 {
		minConfidence = DefaultMinConfidence
	}
	return TranscriptionProcessor{
		recognizer:    recognizer,
		minConfidence: minConfidence,
		logger:        logger,
	}
}

// TranscribeURL transcribes audio stored in Cloud Storage
func (p *TranscriptionProcessor) TranscribeURL(ctx context.Context, audioURL string) (Result, error) {
	audioURL = strings.TrimSpace(audioURL)
	if audioURL == "" {
		return Result{}, ErrAudioURLRequired
	}
	uri, err := GCSURI(audioURL)
	if err != nil {
		return Result{}, err
	}

	ctx = observability.WithFields(ctx, observability.Field{Key: "audio_uri", Value: uri})
	p.logger.Info(ctx, "transcribing audio")

	alternatives, err := p.recognizer.RecognizeURI(ctx, uri)
	if err != nil {
		observability.TranscriptionOutcomes.WithLabelValues("error").Inc()
		p.logger.Error(ctx, "failed to transcribe audio", err)
		return Result{}, fmt.Errorf("failed to transcribe %s: %w", uri, err)
	}
	return p.decide(ctx, alternatives), nil
}

// TranscribeAudio transcribes inline audio bytes
func (p *TranscriptionProcessor) TranscribeAudio(ctx context.Context, audio []byte) (Result, error) {
	if len(audio) == 0 {
		return Result{}, ErrEmptyAudio
	}

	alternatives, err := p.recognizer.RecognizeContent(ctx, audio)
	if err != nil {
		observability.TranscriptionOutcomes.WithLabelValues("error").Inc()
		p.logger.Error(ctx, "failed to transcribe inline audio", err)
		return Result{}, fmt.Errorf("failed to transcribe audio: %w", err)
	}
	return p.decide(ctx, alternatives), nil
}

func (p *TranscriptionProcessor) decide(ctx context.Context, alternatives []speech.Alternative) Result {
	best, ok := Best(alternatives)
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "alternatives", Value: len(alternatives)},
		observability.Field{Key: "confidence", Value: best.Confidence},
	)

	if !ok || best.Confidence < p.minConfidence {
		observability.TranscriptionOutcomes.WithLabelValues("rejected").Inc()
		p.logger.Warn(ctx, "transcription confidence below threshold")
		return Result{Success: false, Text: RepeatText, Confidence: best.Confidence}
	}

	observability.TranscriptionOutcomes.WithLabelValues("accepted").Inc()
	p.logger.Info(ctx, "transcription accepted")
	return Result{Success: true, Text: strings.TrimSpace(best.Transcript), Confidence: best.Confidence}
}

// Best returns the highest-confidence alternative. Ties keep the earliest.
func Best(alternatives []speech.Alternative) (speech.Alternative, bool) {
	if len(alternatives) == 0 {
		return speech.Alternative{}, false
	}
	best := alternatives[0]
	for _, a := range alternatives[1:] {
		if a.Confidence > best.Confidence {
			best = a
		}
	}
	return best, true
}

// GCSURI normalizes an audio reference to a gs:// URI. Object URLs on
// storage.googleapis.com, signed or not, are converted.
func GCSURI(audioURL string) (string, error) {
	u, err := url.Parse(audioURL)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnsupportedAudioURL, err)
	}

	switch u.Scheme {
	case "gs":
		if u.Host == "" || strings.Trim(u.Path, "/") == "" {
			return "", fmt.Errorf("%w: %s", ErrUnsupportedAudioURL, audioURL)
		}
		return "gs://" + u.Host + u.Path, nil
	case "https", "http":
		if u.Host != "storage.googleapis.com" {
			return "", fmt.Errorf("%w: %s", ErrUnsupportedAudioURL, audioURL)
		}
		bucket, object, found := strings.Cut(strings.TrimPrefix(u.Path, "/"), "/")
		if !found || bucket == "" || object == "" {
			return "", fmt.Errorf("%w: %s", ErrUnsupportedAudioURL, audioURL)
		}
		return "gs://" + bucket + "/" + object, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedAudioURL, audioURL)
	}
}
