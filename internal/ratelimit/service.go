package ratelimit

//go:generate go run go.uber.org/mock/mockgen@latest -source=service.go -destination=mocks_test.go -package=ratelimit

import (
	"context"
	"sync"
	"time"

	"voice-crm/internal/clients/redis"
	"voice-crm/internal/observability"
)

const defaultWindow = time.Minute

// Result is the outcome of a rate limit check
type Result struct {
	Allowed      bool      `json:"allowed"`
	Limit        int       `json:"limit"`
	Remaining    int       `json:"remaining"`
	ResetAt      time.Time `json:"reset_at"`
	RetryAfterMs int       `json:"retry_after_ms,omitempty"`
}

// WindowStore is a sliding window shared by every replica
type WindowStore interface {
	WindowHit(ctx context.Context, key string, limit int, window time.Duration, now time.Time) (redis.WindowResult, error)
}

// Service limits voice pipeline calls per client
type Service struct {
	store  WindowStore
	local  *memoryWindow
	limit  int
	window time.Duration
	logger *observability.Logger
	now    func() time.Time
}

// NewService creates a limiter allowing limit calls per minute per key. A nil
// store keeps the window in process memory. Returns nil when limit is not positive.
func NewService(store WindowStore, limit int, logger *observability.Logger) *Service {
	if limit <= 0 {
		return nil
	}
	return &Service{
		store:  store,
		local:  newMemoryWindow(),
		limit:  limit,
		window: defaultWindow,
		logger: logger,
		now:    time.Now,
	}
}

// CheckRateLimit records a call for key and reports whether it is allowed.
// Uses the shared store when configured, falls back to process memory.
func (s *Service) CheckRateLimit(ctx context.Context, key string) Result {
	now := s.now()
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "rate_limit_key", Value: key},
		observability.Field{Key: "rate_limit", Value: s.limit},
	)

	if s.store != nil {
		res, err := s.store.WindowHit(ctx, key, s.limit, s.window, now)
		if err == nil {
			return s.result(res, now)
		}
		s.logger.Error(ctx, "shared rate limit check failed, falling back to memory", err)
	}
	return s.result(s.local.hit(key, s.limit, s.window, now), now)
}

func (s *Service) result(res redis.WindowResult, now time.Time) Result {
	if res.Recorded {
		return Result{
			Allowed:   true,
			Limit:     s.limit,
			Remaining: max(0, s.limit-res.Count),
			ResetAt:   now.Add(s.window),
		}
	}

	resetAt := now.Add(s.window)
	if !res.Oldest.IsZero() {
		resetAt = res.Oldest.Add(s.window)
	}
	retryAfter := resetAt.Sub(now)
	if retryAfter < 0 {
		retryAfter = 0
	}
	return Result{
		Allowed:      false,
		Limit:        s.limit,
		Remaining:    0,
		ResetAt:      resetAt,
		RetryAfterMs: int(retryAfter.Milliseconds()),
	}
}

// memoryWindow is the per-process sliding window. Keys idle for a whole
// window are swept at most once per window.
type memoryWindow struct {
	mu        sync.Mutex
	hits      map[string][]time.Time
	lastSweep time.Time
}

func newMemoryWindow() *memoryWindow {
	return &memoryWindow{hits: make(map[string][]time.Time)}
}

func (m *memoryWindow) hit(key string, limit int, window time.Duration, now time.Time) redis.WindowResult {
	m.mu.Lock()
	defer m.mu.Unlock()

	cutoff := now.Add(-window)
	if now.Sub(m.lastSweep) >= window {
		m.sweep(cutoff)
		m.lastSweep = now
	}

	kept := m.hits[key][:0]
	for _, t := range m.hits[key] {
		if t.After(cutoff) {
			kept = append(kept, t)
		}
	}

	if len(kept) >= limit {
		m.hits[key] = kept
		return redis.WindowResult{Recorded: false, Count: len(kept), Oldest: kept[0]}
	}

	kept = append(kept, now)
	m.hits[key] = kept
	return redis.WindowResult{Recorded: true, Count: len(kept)}
}

func (m *memoryWindow) sweep(cutoff time.Time) {
	for key, hits := range m.hits {
		if len(hits) == 0 || !hits[len(hits)-1].After(cutoff) {
			delete(m.hits, key)
		}
	}
}
