package queue

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/sqs"

	"github.com/jrdxnra/eventflow-service/internal/domain"
)

// QueuePublisher defines the interface for publishing sync jobs to a queue
type QueuePublisher interface {
	PublishSyncJob(ctx context.Context, job *domain.SyncJob) error
}

// QueueConsumer defines the interface for consuming messages from a queue
type QueueConsumer interface {
	ReceiveMessages(ctx context.Context, input *sqs.ReceiveMessageInput) (*sqs.ReceiveMessageOutput, error)
	DeleteMessage(ctx context.Context, input *sqs.DeleteMessageInput) (*sqs.DeleteMessageOutput, error)
	QueueURL() string
}
