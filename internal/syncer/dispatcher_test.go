package syncer

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/jrdxnra/eventflow-service/internal/domain"
)

// MockCalendarSyncer is a mock implementation of calendar.Syncer
type MockCalendarSyncer struct {
	mock.Mock
}

func (m *MockCalendarSyncer) CreateEvent(ctx context.Context, job *domain.SyncJob) (string, error) {
	args := m.Called(ctx, job)
	return args.String(0), args.Error(1)
}

func TestDispatcher_Start_DeliversAndAcks(t *testing.T) {
	mockCalendar := new(MockCalendarSyncer)
	log := zap.NewNop()

	dispatcher := NewDispatcher(mockCalendar, log)

	job := &domain.SyncJob{EventID: "evt-1", Title: "Spring Fitness Kickoff"}
	mockCalendar.On("CreateEvent", mock.Anything, job).Return("cal-123", nil)

	acked := false
	nacked := false
	envelope := NewEnvelope(job,
		func(ctx context.Context) error {
			acked = true
			return nil
		},
		func(ctx context.Context) error {
			nacked = true
			return nil
		})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	in := make(chan *Envelope, 1)
	in <- envelope
	close(in)

	dispatcher.Start(ctx, in)

	assert.True(t, acked, "Envelope should be acked after successful delivery")
	assert.False(t, nacked, "Envelope should not be nacked after successful delivery")
	mockCalendar.AssertExpectations(t)
}

func TestDispatcher_Start_NacksOnDeliveryFailure(t *testing.T) {
	mockCalendar := new(MockCalendarSyncer)
	log := zap.NewNop()

	dispatcher := NewDispatcher(mockCalendar, log)

	job := &domain.SyncJob{EventID: "evt-1", Title: "Spring Fitness Kickoff"}
	deliveryErr := errors.New("calendar unavailable")
	mockCalendar.On("CreateEvent", mock.Anything, job).Return("", deliveryErr)

	acked := false
	nacked := false
	envelope := NewEnvelope(job,
		func(ctx context.Context) error {
			acked = true
			return nil
		},
		func(ctx context.Context) error {
			nacked = true
			return nil
		})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	in := make(chan *Envelope, 1)
	in <- envelope
	close(in)

	dispatcher.Start(ctx, in)

	assert.False(t, acked, "Envelope should not be acked after failed delivery")
	assert.True(t, nacked, "Envelope should be nacked after failed delivery")
	mockCalendar.AssertExpectations(t)
}

func TestDispatcher_Start_ContextCancellation(t *testing.T) {
	mockCalendar := new(MockCalendarSyncer)
	log := zap.NewNop()

	dispatcher := NewDispatcher(mockCalendar, log)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	in := make(chan *Envelope)

	done := make(chan struct{})
	go func() {
		dispatcher.Start(ctx, in)
		close(done)
	}()

	select {
	case <-done:
		// Dispatcher exited on cancellation
	case <-time.After(100 * time.Millisecond):
		t.Fatal("Dispatcher did not shut down on context cancellation")
	}

	mockCalendar.AssertNotCalled(t, "CreateEvent", mock.Anything, mock.Anything)
}
