package configs

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"slices"
	"time"

	"todo-api/pkg/resource"
	"todo-api/pkg/util/numberutils"
)

//go:embed application.yml
var applicationYml []byte

var (
	supportedDBDrivers     = []string{"mongo", "postgres", "sqlite"}
	supportedEventsDrivers = []string{"none", "redis", "sqs"}
)

type EnvConfig struct {
	ApplicationName string
	LogLevel        string
	Server          ServerConfig
	CORSOrigins     []string
	DB              DBConfig
	Storage         StorageConfig
	CategorySeed    []string
	Events          EventsConfig
	Cloud           CloudConfig
}

type ServerConfig struct {
	Port            int
	ContextPath     string
	PublicDir       string
	ShutdownTimeout time.Duration
}

type DBConfig struct {
	Driver         string
	URL            string
	Name           string
	ConnectTimeout time.Duration
}

type StorageConfig struct {
	ImagesDir  string
	PublicPath string
	// MaxSize is the request body limit, e.g. "10MB"
	MaxSize      string
	MaxSizeBytes uint
}

type EventsConfig struct {
	Driver         string
	RedisHost      string
	RedisPort      int
	RedisPassword  string
	RedisDatabase  int
	RedisNamespace string
	RedisChannel   string
	SQSQueueName   string
}

type CloudConfig struct {
	AWSRegion          string
	AWSEndpoint        string
	AWSAccessKeyID     string
	AWSSecretAccessKey string
}

// Load reads application properties (PROPERTIES_FILE_PATH or the embedded
// application.yml) and returns the validated configuration.
func Load() (*EnvConfig, error) {
	var err error
	if path, ok := os.LookupEnv("PROPERTIES_FILE_PATH"); ok {
		err = resource.Init(path)
	} else {
		err = resource.InitFromBytes(applicationYml)
	}
	if err != nil {
		return nil, err
	}

	env := &EnvConfig{
		ApplicationName: resource.GetString("app.name"),
		LogLevel:        resource.GetStringOrDefault("app.log.level", "info"),
		Server: ServerConfig{
			Port:            numberutils.ToIntWithDefault(resource.GetString("app.server.port"), 0),
			ContextPath:     resource.GetString("app.server.context-path"),
			PublicDir:       resource.GetStringOrDefault("app.server.public-dir", "public"),
			ShutdownTimeout: durationOrDefault("app.server.shutdown-timeout", 10*time.Second),
		},
		CORSOrigins: resource.GetCommaSeparated("app.cors.origins"),
		DB: DBConfig{
			Driver:         resource.GetStringOrDefault("app.db.driver", "mongo"),
			URL:            resource.GetString("app.db.url"),
			Name:           resource.GetString("app.db.name"),
			ConnectTimeout: durationOrDefault("app.db.connect-timeout", 10*time.Second),
		},
		Storage: StorageConfig{
			ImagesDir:    resource.GetStringOrDefault("app.storage.images-dir", "public/images"),
			PublicPath:   resource.GetStringOrDefault("app.storage.public-path", "/images"),
			MaxSize:      resource.GetStringOrDefault("app.storage.max-size", "10MB"),
			MaxSizeBytes: sizeOrDefault("app.storage.max-size", 10<<20),
		},
		CategorySeed: resource.GetCommaSeparated("app.categories.seed"),
		Events: EventsConfig{
			Driver:         resource.GetStringOrDefault("app.events.driver", "none"),
			RedisHost:      resource.GetString("app.events.redis.host"),
			RedisPort:      numberutils.ToIntWithDefault(resource.GetString("app.events.redis.port"), 6379),
			RedisPassword:  resource.GetString("app.events.redis.password"),
			RedisDatabase:  numberutils.ToIntWithDefault(resource.GetString("app.events.redis.database"), 0),
			RedisNamespace: resource.GetString("app.events.redis.namespace"),
			RedisChannel:   resource.GetStringOrDefault("app.events.redis.channel", "todos"),
			SQSQueueName:   resource.GetString("app.events.sqs.queue-name"),
		},
		Cloud: CloudConfig{
			AWSRegion:          resource.GetString("app.cloud.aws-region"),
			AWSEndpoint:        resource.GetString("app.cloud.aws-endpoint"),
			AWSAccessKeyID:     resource.GetString("app.cloud.aws-access-key-id"),
			AWSSecretAccessKey: resource.GetString("app.cloud.aws-secret-access-key"),
		},
	}

	return env, env.Validate()
}

// Validate reports every missing or invalid required setting at once.
func (env *EnvConfig) Validate() error {
	var errs []error

	if env.DB.URL == "" {
		errs = append(errs, errors.New("DB_URL (app.db.url) is required"))
	}
	if env.DB.Name == "" {
		errs = append(errs, errors.New("DB_NAME (app.db.name) is required"))
	}
	if env.Server.Port == 0 {
		errs = append(errs, errors.New("PORT (app.server.port) is required"))
	} else if !numberutils.IsIntInRange(env.Server.Port, 1, 65535) {
		errs = append(errs, fmt.Errorf("PORT (app.server.port) must be between 1 and 65535, got %d", env.Server.Port))
	}
	if !slices.Contains(supportedDBDrivers, env.DB.Driver) {
		errs = append(errs, fmt.Errorf("DB_DRIVER (app.db.driver) must be one of %v, got %q", supportedDBDrivers, env.DB.Driver))
	}
	if !slices.Contains(supportedEventsDrivers, env.Events.Driver) {
		errs = append(errs, fmt.Errorf("EVENTS_DRIVER (app.events.driver) must be one of %v, got %q", supportedEventsDrivers, env.Events.Driver))
	}
	if env.Storage.MaxSize != "" && env.Storage.MaxSizeBytes == 0 {
		errs = append(errs, fmt.Errorf("IMAGES_MAX_SIZE (app.storage.max-size) must be a size such as 10MB, got %q", env.Storage.MaxSize))
	}
	if env.Events.Driver == "sqs" && env.Events.SQSQueueName == "" {
		errs = append(errs, errors.New("SQS_QUEUE_NAME (app.events.sqs.queue-name) is required for the sqs events driver"))
	}

	return errors.Join(errs...)
}

func durationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := resource.GetDuration(key); value > 0 {
		return value
	}
	return defaultValue
}

func sizeOrDefault(key string, defaultValue uint) uint {
	if resource.GetString(key) == "" {
		return defaultValue
	}
	return resource.GetSizeInBytes(key)
}
