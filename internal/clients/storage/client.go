package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"voice-crm/internal/observability"

	gcs "cloud.google.com/go/storage"
	"google.golang.org/api/option"
)

var ErrBucketRequired = errors.New("storage bucket is required")

// Config holds the upload bucket and signing settings. GoogleAccessID and
// PrivateKey are optional and only needed when the ambient credentials cannot
// sign URLs themselves.
type Config struct {
	Bucket          string
	SignedURLTTL    time.Duration
	CredentialsFile string
	GoogleAccessID  string
	PrivateKey      []byte
}

// Client uploads audio objects to a single Cloud Storage bucket
type Client struct {
	gcs    *gcs.Client
	bucket *gcs.BucketHandle
	cfg    Config
	logger *observability.Logger
	now    func() time.Time
}

func NewClient(ctx context.Context, cfg Config, logger *observability.Logger, opts ...option.ClientOption) (*Client, error) {
	if cfg.Bucket == "" {
		return nil, ErrBucketRequired
	}
	if cfg.SignedURLTTL <= 0 {
		cfg.SignedURLTTL = 15 * time.Minute
	}
	if cfg.CredentialsFile != "" {
		opts = append([]option.ClientOption{option.WithCredentialsFile(cfg.CredentialsFile)}, opts...)
	}

	client, err := gcs.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}

	return &Client{
		gcs:    client,
		bucket: client.Bucket(cfg.Bucket),
		cfg:    cfg,
		logger: logger,
		now:    time.Now,
	}, nil
}

// Bucket returns the configured bucket name
func (c *Client) Bucket() string {
	return c.cfg.Bucket
}

// Upload streams r into the named object. A read failure aborts the upload
// without committing a partial object.
func (c *Client) Upload(ctx context.Context, object, contentType string, r io.Reader) error {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "bucket", Value: c.cfg.Bucket},
		observability.Field{Key: "object", Value: object},
	)

	writeCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	w := c.bucket.Object(object).NewWriter(writeCtx)
	w.ContentType = contentType

	if _, err := io.Copy(w, r); err != nil {
		cancel()
		_ = w.Close()
		c.logger.Error(ctx, "failed to write object", err)
		return fmt.Errorf("failed to write object %s: %w", object, err)
	}
	if err := w.Close(); err != nil {
		c.logger.Error(ctx, "failed to finalize object", err)
		return fmt.Errorf("failed to finalize object %s: %w", object, err)
	}

	c.logger.Info(ctx, "uploaded object")
	return nil
}

// SignedURL returns a V4 GET URL for the object, valid for the configured TTL
func (c *Client) SignedURL(object string) (string, error) {
	opts := &gcs.SignedURLOptions{
		Scheme:         gcs.SigningSchemeV4,
		Method:         http.MethodGet,
		Expires:        c.now().Add(c.cfg.SignedURLTTL),
		GoogleAccessID: c.cfg.GoogleAccessID,
		PrivateKey:     c.cfg.PrivateKey,
	}

	url, err := c.bucket.SignedURL(object, opts)
	if err != nil {
		return "", fmt.Errorf("failed to sign url for %s: %w", object, err)
	}
	return url, nil
}

func (c *Client) Close() error {
	return c.gcs.Close()
}
