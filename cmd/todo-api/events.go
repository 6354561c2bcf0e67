package main

import (
	"context"

	"todo-api/configs"
	"todo-api/internal/domain/gateway/queue"
	"todo-api/internal/infra/aws"
	redisadapter "todo-api/internal/infra/redis"
	"todo-api/pkg/log"
	"todo-api/pkg/msg"
	"todo-api/pkg/redis"
)

func newEventPublisher(ctx context.Context, env *configs.EnvConfig) (queue.EventPublisher, error) {
	switch env.Events.Driver {
	case "redis":
		client, err := redis.NewClient(redis.NewRedisConfig().
			WithHost(env.Events.RedisHost).
			WithPort(env.Events.RedisPort).
			WithPassword(env.Events.RedisPassword).
			WithDatabase(env.Events.RedisDatabase))
		if err != nil {
			return nil, err
		}
		log.Info(msg.GetMessage("events.enabled", "redis"))
		return redisadapter.NewPublisherAdapter(client, env.Events.RedisNamespace, env.Events.RedisChannel), nil

	case "sqs":
		awsConfig, err := aws.LoadConfig(ctx, aws.Config{
			Region:          env.Cloud.AWSRegion,
			AccessKeyID:     env.Cloud.AWSAccessKeyID,
			SecretAccessKey: env.Cloud.AWSSecretAccessKey,
		})
		if err != nil {
			return nil, err
		}
		log.Info(msg.GetMessage("events.enabled", "sqs"))
		client := aws.NewSqsClient(awsConfig, env.Cloud.AWSEndpoint)
		return aws.NewSQSPublisherAdapter(client, env.Events.SQSQueueName), nil

	default:
		log.Info(msg.GetMessage("events.disabled"))
		return queue.NewNoopEventPublisher(), nil
	}
}
