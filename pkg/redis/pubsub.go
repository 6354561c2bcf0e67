package redis

import (
	"context"
	"encoding/json"
	"fmt"
)

// PubSubConfig defines the configuration options for Redis pub/sub
type PubSubConfig struct {
	// ChannelNamespace is the namespace for organizing channels
	ChannelNamespace string
}

// NewPubSubConfig creates a new pub/sub configuration with default values
func NewPubSubConfig() *PubSubConfig {
	return &PubSubConfig{}
}

// WithChannelNamespace sets the namespace for organizing channels
func (psc *PubSubConfig) WithChannelNamespace(namespace string) *PubSubConfig {
	psc.ChannelNamespace = namespace
	return psc
}

// Publisher handles Redis publishing operations
type Publisher struct {
	client *Client
	config *PubSubConfig
}

// NewPublisher creates a new publisher
func NewPublisher(client *Client, config *PubSubConfig) *Publisher {
	if config == nil {
		config = NewPubSubConfig()
	}
	return &Publisher{
		client: client,
		config: config,
	}
}

// ChannelName constructs the full channel name using ChannelNamespace::channelName format
func (p *Publisher) ChannelName(channel string) string {
	if p.config.ChannelNamespace != "" {
		return p.config.ChannelNamespace + "::" + channel
	}
	return channel
}

// Publish publishes a raw message to a channel and returns the receiver count
func (p *Publisher) Publish(ctx context.Context, channel string, message any) (int64, error) {
	return p.client.rdb.Publish(ctx, p.ChannelName(channel), message).Result()
}

// PublishJSON publishes a JSON message to a channel and returns the receiver count
func (p *Publisher) PublishJSON(ctx context.Context, channel string, message any) (int64, error) {
	jsonData, err := json.Marshal(message)
	if err != nil {
		return 0, fmt.Errorf("failed to marshal message to JSON: %w", err)
	}
	return p.Publish(ctx, channel, jsonData)
}
