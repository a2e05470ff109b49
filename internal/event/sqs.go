package event

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"

	"github.com/accountability-atlas/user-service/internal/logger"
	"github.com/accountability-atlas/user-service/internal/model"
)

// SQSClient is the slice of the SQS API the publisher needs.
type SQSClient interface {
	SendMessage(ctx context.Context, params *sqs.SendMessageInput, optFns ...func(*sqs.Options)) (*sqs.SendMessageOutput, error)
}

// SQSPublisher delivers events to an SQS queue. The message body is the
// bare event JSON with no producer-side type attribute: consumers bind the
// payload to their own event types, so identically-shaped events can be
// defined independently on both sides.
type SQSPublisher struct {
	client   SQSClient
	queueURL string
	logger   *logger.Logger
}

var _ model.EventPublisher = (*SQSPublisher)(nil)

func NewSQSPublisher(client SQSClient, queueURL string, logger *logger.Logger) *SQSPublisher {
	return &SQSPublisher{client: client, queueURL: queueURL, logger: logger}
}

func (p *SQSPublisher) Publish(ctx context.Context, event model.DomainEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	_, err = p.client.SendMessage(ctx, &sqs.SendMessageInput{
		QueueUrl:    aws.String(p.queueURL),
		MessageBody: aws.String(string(body)),
	})
	if err != nil {
		p.logger.Error("SQS publisher: failed to publish event",
			"type", event.EventType(),
			"error", err.Error())
		return fmt.Errorf("failed to publish %s event: %w", event.EventType(), err)
	}

	p.logger.Debug("SQS publisher: event published", "type", event.EventType())
	return nil
}
