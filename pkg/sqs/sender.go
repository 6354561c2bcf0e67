package sqs

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
)

// SQSClient defines the interface for SQS operations
type SQSClient interface {
	GetQueueUrl(ctx context.Context, params *sqs.GetQueueUrlInput, optFns ...func(*sqs.Options)) (*sqs.GetQueueUrlOutput, error)
	SendMessage(ctx context.Context, params *sqs.SendMessageInput, optFns ...func(*sqs.Options)) (*sqs.SendMessageOutput, error)
}

// Sender handles sending messages to SQS queues
type Sender struct {
	sqsClient SQSClient
	queueURLs sync.Map
}

// NewSender creates and returns a new Sender
func NewSender(sqsClient SQSClient) *Sender {
	return &Sender{
		sqsClient: sqsClient,
	}
}

// SendMessage serializes the provided body to JSON and sends it to the specified queue.
// Attributes are sent as String message attributes.
func (s *Sender) SendMessage(ctx context.Context, queueName string, body any, attributes map[string]string) (string, error) {
	queueURL, err := s.QueueURL(ctx, queueName)
	if err != nil {
		return "", fmt.Errorf("failed to get queue URL for %s: %w", queueName, err)
	}

	jsonBody, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("failed to serialize message body to JSON: %w", err)
	}

	messageBody := string(jsonBody)
	output, err := s.sqsClient.SendMessage(ctx, &sqs.SendMessageInput{
		QueueUrl:          &queueURL,
		MessageBody:       &messageBody,
		MessageAttributes: stringAttributes(attributes),
	})
	if err != nil {
		return "", fmt.Errorf("failed to send message to queue %s: %w", queueName, err)
	}

	if output.MessageId == nil {
		return "", nil
	}
	return *output.MessageId, nil
}

// QueueURL resolves the URL for the specified queue name, caching successful lookups
func (s *Sender) QueueURL(ctx context.Context, queueName string) (string, error) {
	if cached, ok := s.queueURLs.Load(queueName); ok {
		return cached.(string), nil
	}

	result, err := s.sqsClient.GetQueueUrl(ctx, &sqs.GetQueueUrlInput{
		QueueName: &queueName,
	})
	if err != nil {
		return "", err
	}
	if result.QueueUrl == nil {
		return "", fmt.Errorf("queue URL is nil for queue %s", queueName)
	}

	s.queueURLs.Store(queueName, *result.QueueUrl)
	return *result.QueueUrl, nil
}

func stringAttributes(attributes map[string]string) map[string]types.MessageAttributeValue {
	if len(attributes) == 0 {
		return nil
	}
	values := make(map[string]types.MessageAttributeValue, len(attributes))
	for name, value := range attributes {
		values[name] = types.MessageAttributeValue{
			DataType:    stringPtr("String"),
			StringValue: stringPtr(value),
		}
	}
	return values
}

func stringPtr(value string) *string {
	return &value
}
