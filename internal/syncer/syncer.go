package syncer

import (
	"context"
	"sync"

	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
	"go.uber.org/zap"

	"github.com/jrdxnra/eventflow-service/internal/calendar"
	"github.com/jrdxnra/eventflow-service/internal/config"
	"github.com/jrdxnra/eventflow-service/internal/queue"
)

// Syncer orchestrates a pipeline of stages that move sync jobs from the
// queue to the calendar: receive → parse → dispatch.
type Syncer struct {
	receiver   *Receiver
	parser     *ParserStage
	dispatcher *Dispatcher
	bufferSize int
}

// NewSyncer creates a new syncer with a pipeline architecture
func NewSyncer(cfg *config.Config, queueConsumer queue.QueueConsumer, cal calendar.Syncer, log *zap.Logger) *Syncer {
	receiver := NewReceiver(queueConsumer, ReceiverConfig{
		MaxMessages:     10,
		WaitTimeSeconds: 20,
		BufferSize:      cfg.Worker.BufferSize,
	}, log)

	parser := NewParserStage(queueConsumer, NewJSONJobParser(), log)

	dispatcher := NewDispatcher(cal, log)

	return &Syncer{
		receiver:   receiver,
		parser:     parser,
		dispatcher: dispatcher,
		bufferSize: cfg.Worker.BufferSize,
	}
}

// Start begins the syncer pipeline
func (s *Syncer) Start(ctx context.Context) error {
	messageChan := make(chan types.Message, s.bufferSize)
	envelopeChan := make(chan *Envelope, s.bufferSize)

	var wg sync.WaitGroup

	wg.Add(3)

	// Stage 1: Receive messages from SQS
	go func() {
		defer wg.Done()
		s.receiver.Start(ctx, messageChan)
	}()

	// Stage 2: Parse messages into envelopes
	go func() {
		defer wg.Done()
		s.parser.Start(ctx, messageChan, envelopeChan)
	}()

	// Stage 3: Deliver jobs to the calendar
	go func() {
		defer wg.Done()
		s.dispatcher.Start(ctx, envelopeChan)
	}()

	wg.Wait()
	return nil
}
