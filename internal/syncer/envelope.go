package syncer

import (
	"context"

	"github.com/jrdxnra/eventflow-service/internal/domain"
)

// Envelope wraps a sync job with acknowledgment callbacks
type Envelope struct {
	Job  *domain.SyncJob
	ack  func(context.Context) error
	nack func(context.Context) error
}

// NewEnvelope creates a new job envelope
func NewEnvelope(job *domain.SyncJob, ack, nack func(context.Context) error) *Envelope {
	return &Envelope{
		Job:  job,
		ack:  ack,
		nack: nack,
	}
}

// Ack acknowledges successful delivery
func (e *Envelope) Ack(ctx context.Context) error {
	if e.ack != nil {
		return e.ack(ctx)
	}
	return nil
}

// Nack negatively acknowledges delivery
func (e *Envelope) Nack(ctx context.Context) error {
	if e.nack != nil {
		return e.nack(ctx)
	}
	return nil
}
