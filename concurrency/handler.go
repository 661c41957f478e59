// concurrency/handler.go
/* Package concurrency bounds how many logical requests a client runs at once and tags each
of them with a request ID for log correlation. */
package concurrency

import (
	"context"
	"sync"
	"time"

	"github.com/deploymenttheory/go-api-sdk-planningcenter/logger"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ConcurrencyHandler controls the number of concurrent logical requests.
type ConcurrencyHandler struct {
	sem     chan struct{}
	logger  logger.Logger
	Metrics *ConcurrencyMetrics
}

// ConcurrencyMetrics counts what the client has done since construction.
type ConcurrencyMetrics struct {
	TotalRequests        int64         // logical requests started
	TotalAttempts        int64         // physical HTTP attempts sent
	TotalRetries         int64         // retries of any kind
	TotalRateLimitErrors int64         // 429 responses received
	TotalTokenRefreshes  int64         // successful refresh exchanges
	PermitWaitTime       time.Duration // total time spent waiting for a permit
	Lock                 sync.Mutex
}

// RequestIDKey is the context key under which the request uuid is stored.
type RequestIDKey struct{}

// NewConcurrencyHandler allows at most limit requests in flight. limit < 1 is treated as 1.
func NewConcurrencyHandler(limit int, log logger.Logger, metrics *ConcurrencyMetrics) *ConcurrencyHandler {
	if limit < 1 {
		limit = 1
	}
	if metrics == nil {
		metrics = &ConcurrencyMetrics{}
	}
	return &ConcurrencyHandler{
		sem:     make(chan struct{}, limit),
		logger:  log,
		Metrics: metrics,
	}
}

// AcquireConcurrencyPermit blocks until a slot is free or ctx is done. On success the
// returned context carries a fresh request ID.
func (ch *ConcurrencyHandler) AcquireConcurrencyPermit(ctx context.Context) (context.Context, uuid.UUID, error) {
	start := time.Now()
	requestID := uuid.New()

	select {
	case ch.sem <- struct{}{}:
		waited := time.Since(start)
		ch.Metrics.Lock.Lock()
		ch.Metrics.PermitWaitTime += waited
		ch.Metrics.TotalRequests++
		ch.Metrics.Lock.Unlock()

		ch.logger.Debug("Acquired concurrency permit",
			zap.String(logger.FieldRequestID, requestID.String()),
			zap.Duration("acquisition_time", waited),
			zap.Int("in_flight", len(ch.sem)),
			zap.Int("capacity", cap(ch.sem)),
		)
		return context.WithValue(ctx, RequestIDKey{}, requestID), requestID, nil

	case <-ctx.Done():
		ch.logger.Warn("Failed to acquire concurrency permit", zap.Error(ctx.Err()))
		return ctx, requestID, ctx.Err()
	}
}

// ReleaseConcurrencyPermit frees the slot taken by AcquireConcurrencyPermit.
func (ch *ConcurrencyHandler) ReleaseConcurrencyPermit(requestID uuid.UUID) {
	<-ch.sem
	ch.logger.Debug("Released concurrency permit",
		zap.String(logger.FieldRequestID, requestID.String()),
		zap.Int("in_flight", len(ch.sem)),
	)
}

// InFlight returns the number of permits currently held.
func (ch *ConcurrencyHandler) InFlight() int {
	return len(ch.sem)
}

// RequestIDFromContext returns the request ID stored by AcquireConcurrencyPermit.
func RequestIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(RequestIDKey{}).(uuid.UUID)
	return id, ok
}
