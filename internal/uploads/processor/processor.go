package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=processor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"voice-crm/internal/observability"

	"github.com/google/uuid"
)

const (
	objectPrefix       = "audio-uploads/"
	defaultFilename    = "audio.webm"
	defaultContentType = "application/octet-stream"
)

var ErrFileRequired = errors.New("audio file is required")

// ObjectStore persists uploaded audio and signs read URLs for it
type ObjectStore interface {
	Bucket() string
	Upload(ctx context.Context, object, contentType string, r io.Reader) error
	SignedURL(object string) (string, error)
}

// UploadResult describes a stored audio object
type UploadResult struct {
	Bucket    string `json:"bucket"`
	Object    string `json:"object"`
	GSURI     string `json:"gs_uri"`
	SignedURL string `json:"signed_url"`
}

type UploadProcessor struct {
	store  ObjectStore
	logger *observability.Logger
	now    func() time.Time
	suffix func() string
}

func New(store ObjectStore, logger *observability.Logger) UploadProcessor {
	return UploadProcessor{
		store:  store,
		logger: logger,
		now:    time.Now,
		suffix: func() string { return strings.ReplaceAll(uuid.NewString(), "-", "")[:8] },
	}
}

// Upload stores the audio under a unique, sanitized object name and returns
// its gs:// URI with a signed URL
func (p *UploadProcessor) Upload(ctx context.Context, filename, contentType string, r io.Reader) (UploadResult, error) {
	if r == nil {
		return UploadResult{}, ErrFileRequired
	}
	if contentType == "" {
		contentType = defaultContentType
	}

	object := p.ObjectName(filename)
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "object", Value: object},
		observability.Field{Key: "content_type", Value: contentType},
	)

	if err := p.store.Upload(ctx, object, contentType, r); err != nil {
		p.logger.Error(ctx, "failed to upload audio", err)
		return UploadResult{}, fmt.Errorf("failed to upload audio: %w", err)
	}

	signed, err := p.store.SignedURL(object)
	if err != nil {
		p.logger.Error(ctx, "failed to sign audio url", err)
		return UploadResult{}, fmt.Errorf("failed to sign audio url: %w", err)
	}

	bucket := p.store.Bucket()
	p.logger.Info(ctx, "audio uploaded")
	return UploadResult{
		Bucket:    bucket,
		Object:    object,
		GSURI:     fmt.Sprintf("gs://%s/%s", bucket, object),
		SignedURL: signed,
	}, nil
}

// ObjectName builds audio-uploads/<unix>-<8 hex>-<sanitized name>
func (p *UploadProcessor) ObjectName(filename string) string {
	name := SecureFilename(filename)
	if name == "" {
		name = defaultFilename
	}
	return fmt.Sprintf("%s%d-%s-%s", objectPrefix, p.now().Unix(), p.suffix(), name)
}
