package syncer

import (
	"context"

	"go.uber.org/zap"

	"github.com/jrdxnra/eventflow-service/internal/calendar"
)

// Dispatcher delivers sync jobs to the calendar one at a time. Calendar
// delivery is per-job, so unlike a storage writer there is nothing to batch:
// each envelope is acked on successful delivery and nacked for redelivery on
// failure.
type Dispatcher struct {
	syncer calendar.Syncer
	log    *zap.Logger
}

// NewDispatcher creates a new dispatcher
func NewDispatcher(syncer calendar.Syncer, log *zap.Logger) *Dispatcher {
	return &Dispatcher{
		syncer: syncer,
		log:    log,
	}
}

// Start begins delivering envelopes to the calendar
func (d *Dispatcher) Start(ctx context.Context, in <-chan *Envelope) {
	for {
		select {
		case <-ctx.Done():
			d.log.Info("Dispatcher shutting down")
			return
		case envelope, ok := <-in:
			if !ok {
				d.log.Info("Dispatcher input channel closed")
				return
			}
			d.deliver(ctx, envelope)
		}
	}
}

func (d *Dispatcher) deliver(ctx context.Context, envelope *Envelope) {
	calendarID, err := d.syncer.CreateEvent(ctx, envelope.Job)
	if err != nil {
		d.log.Error("Failed to deliver sync job",
			zap.String("event_id", envelope.Job.EventID),
			zap.Error(err))
		if err := envelope.Nack(ctx); err != nil {
			d.log.Error("Failed to nack envelope", zap.Error(err))
		}
		return
	}

	d.log.Info("Sync job delivered",
		zap.String("event_id", envelope.Job.EventID),
		zap.String("calendar_id", calendarID))

	if err := envelope.Ack(ctx); err != nil {
		d.log.Error("Failed to ack envelope",
			zap.String("event_id", envelope.Job.EventID),
			zap.Error(err))
	}
}
