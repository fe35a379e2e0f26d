package calendar

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jrdxnra/eventflow-service/internal/domain"
)

// Syncer pushes an event to the external calendar and returns the opaque
// identifier the calendar assigned.
type Syncer interface {
	CreateEvent(ctx context.Context, job *domain.SyncJob) (string, error)
}

// StubClient simulates the calendar integration: it always succeeds after a
// fixed delay and returns a generated identifier. The real integration is
// out of scope for now.
type StubClient struct {
	delay time.Duration
	log   *zap.Logger
}

// NewStubClient creates a stub calendar client.
func NewStubClient(log *zap.Logger) *StubClient {
	return &StubClient{
		delay: 300 * time.Millisecond,
		log:   log,
	}
}

// CreateEvent simulates creating a calendar entry.
func (c *StubClient) CreateEvent(ctx context.Context, job *domain.SyncJob) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case <-time.After(c.delay):
	}

	calendarID := uuid.NewString()
	c.log.Info("Calendar entry created",
		zap.String("event_id", job.EventID),
		zap.String("calendar_id", calendarID),
		zap.String("title", job.Title),
		zap.Int("attendees", len(job.Attendees)))

	return calendarID, nil
}
