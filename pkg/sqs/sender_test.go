package sqs

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/sqs"
)

type fakeClient struct {
	urlCalls int
	urlErr   error
	sent     []*sqs.SendMessageInput
}

func (f *fakeClient) GetQueueUrl(_ context.Context, params *sqs.GetQueueUrlInput, _ ...func(*sqs.Options)) (*sqs.GetQueueUrlOutput, error) {
	f.urlCalls++
	if f.urlErr != nil {
		return nil, f.urlErr
	}
	url := "http://localhost:4566/000000000000/" + *params.QueueName
	return &sqs.GetQueueUrlOutput{QueueUrl: &url}, nil
}

func (f *fakeClient) SendMessage(_ context.Context, params *sqs.SendMessageInput, _ ...func(*sqs.Options)) (*sqs.SendMessageOutput, error) {
	f.sent = append(f.sent, params)
	id := "msg-1"
	return &sqs.SendMessageOutput{MessageId: &id}, nil
}

func TestSendMessage(t *testing.T) {
	client := &fakeClient{}
	sender := NewSender(client)

	id, err := sender.SendMessage(context.Background(), "todo-events", map[string]string{"type": "todo.created"}, map[string]string{"eventType": "todo.created"})
	if err != nil {
		t.Fatal(err)
	}
	if id != "msg-1" {
		t.Errorf("message id: got %q", id)
	}

	if len(client.sent) != 1 {
		t.Fatalf("expected one message, got %d", len(client.sent))
	}
	input := client.sent[0]
	if *input.QueueUrl != "http://localhost:4566/000000000000/todo-events" {
		t.Errorf("queue url: got %q", *input.QueueUrl)
	}

	var body map[string]string
	if err := json.Unmarshal([]byte(*input.MessageBody), &body); err != nil {
		t.Fatal(err)
	}
	if body["type"] != "todo.created" {
		t.Errorf("body: got %v", body)
	}
	if attr := input.MessageAttributes["eventType"]; *attr.StringValue != "todo.created" || *attr.DataType != "String" {
		t.Errorf("attribute: got %+v", attr)
	}
}

func TestQueueURLIsCached(t *testing.T) {
	client := &fakeClient{}
	sender := NewSender(client)

	for range 3 {
		if _, err := sender.QueueURL(context.Background(), "todo-events"); err != nil {
			t.Fatal(err)
		}
	}
	if client.urlCalls != 1 {
		t.Errorf("expected one lookup, got %d", client.urlCalls)
	}
}

func TestSendMessageQueueLookupFails(t *testing.T) {
	client := &fakeClient{urlErr: errors.New("queue does not exist")}
	sender := NewSender(client)

	if _, err := sender.SendMessage(context.Background(), "missing", "x", nil); err == nil {
		t.Fatal("expected error")
	}
	if len(client.sent) != 0 {
		t.Error("nothing must be sent when the queue cannot be resolved")
	}
	// failures are not cached
	if _, err := sender.QueueURL(context.Background(), "missing"); err == nil || client.urlCalls != 2 {
		t.Errorf("expected a second lookup, calls = %d", client.urlCalls)
	}
}
