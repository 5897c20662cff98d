package observability

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/gin-gonic/gin"
)

// SentryOptions configures error reporting. An empty DSN disables it.
type SentryOptions struct {
	DSN              string
	Environment      string
	Release          string
	TracesSampleRate float64
}

// InitSentry initializes the global sentry hub. It returns false when no DSN is configured.
func InitSentry(opts SentryOptions) (bool, error) {
	if opts.DSN == "" {
		return false, nil
	}
	err := sentry.Init(sentry.ClientOptions{
		Dsn:              opts.DSN,
		Environment:      opts.Environment,
		Release:          opts.Release,
		TracesSampleRate: opts.TracesSampleRate,
	})
	if err != nil {
		return false, fmt.Errorf("sentry initialization failed: %w", err)
	}
	return true, nil
}

// FlushSentry waits for buffered events before the program terminates.
func FlushSentry() {
	sentry.Flush(2 * time.Second)
}

// CaptureException reports err together with the observability fields in ctx.
// It is a no-op when sentry has not been initialized.
func CaptureException(ctx context.Context, err error) {
	hub := sentry.GetHubFromContext(ctx)
	if hub == nil {
		hub = sentry.CurrentHub()
	}
	if hub == nil || hub.Client() == nil {
		return
	}
	hub.WithScope(func(scope *sentry.Scope) {
		for _, f := range getObservabilityFields(ctx) {
			scope.SetExtra(f.Key, f.Value)
		}
		hub.CaptureException(err)
	})
}

// SentryMiddleware starts a transaction per request and binds a hub to the request context.
func SentryMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		hub := sentry.CurrentHub()
		if hub == nil || hub.Client() == nil {
			c.Next()
			return
		}
		hub = hub.Clone()

		transactionName := fmt.Sprintf("%s %s", c.Request.Method, c.Request.URL.Path)
		ctx := sentry.SetHubOnContext(c.Request.Context(), hub)
		transaction := sentry.StartTransaction(ctx,
			transactionName,
			sentry.ContinueFromRequest(c.Request),
		)
		defer func() {
			transaction.Status = sentry.HTTPtoSpanStatus(c.Writer.Status())
			transaction.Finish()
		}()

		hub.ConfigureScope(func(scope *sentry.Scope) {
			scope.SetContext("Request", map[string]interface{}{
				"Method":  c.Request.Method,
				"URL":     c.Request.URL.String(),
				"Headers": safeHeaders(c.Request.Header),
			})
			scope.SetTag("http.method", c.Request.Method)
			scope.SetTag("http.route", c.FullPath())
		})

		c.Request = c.Request.WithContext(transaction.Context())
		c.Next()
	}
}

func safeHeaders(h http.Header) map[string]interface{} {
	safe := make(map[string]interface{})
	for k, v := range h {
		if strings.EqualFold(k, "Authorization") || strings.EqualFold(k, "Cookie") {
			safe[k] = "[FILTERED]"
		} else {
			safe[k] = v
		}
	}
	return safe
}
