package resource

import (
	"bytes"
	"fmt"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/spf13/viper"
)

var properties map[string]any
var envPattern = regexp.MustCompile(`\$\{([^:}]+)(?::([^}]*))?}`)

// Init loads application properties from a YAML file
func Init(filepath string) error {
	viper.SetConfigFile(filepath)
	viper.SetConfigType("yml")

	if err := viper.ReadInConfig(); err != nil {
		return fmt.Errorf("fail to read properties %s: %w", filepath, err)
	}

	return merge()
}

// InitFromBytes loads application properties from YAML content already in memory
func InitFromBytes(content []byte) error {
	viper.SetConfigType("yml")

	if err := viper.ReadConfig(bytes.NewReader(content)); err != nil {
		return fmt.Errorf("fail to read properties: %w", err)
	}

	return merge()
}

func merge() error {
	properties = make(map[string]any)
	parsePropertiesMap("", viper.AllSettings(), properties)

	if err := viper.MergeConfigMap(properties); err != nil {
		return fmt.Errorf("fail to merge properties: %w", err)
	}
	return nil
}

// parsePropertiesMap reads recursively the YAML file
func parsePropertiesMap(prefix string, data map[string]any, result map[string]any) {
	for key, value := range data {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}

		switch v := value.(type) {
		case string:
			result[fullKey] = resolveEnvVariable(v)
		case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64, bool:
			result[fullKey] = v
		case []any:
			result[fullKey] = v
		case map[string]any:
			parsePropertiesMap(fullKey, v, result)
		}
	}
}

// resolveEnvVariable replaces ${NAME:default} with the environment value, the default, or an empty string
func resolveEnvVariable(value string) string {
	matches := envPattern.FindStringSubmatch(value)
	if len(matches) == 0 {
		return value
	}

	envName := matches[1]
	if envValue, exists := os.LookupEnv(envName); exists {
		return strings.Replace(value, matches[0], envValue, 1)
	}
	return strings.Replace(value, matches[0], matches[2], 1)
}

func GetString(key string) string {
	return viper.GetString(key)
}

// GetStringOrDefault returns the property or defaultValue when it is empty
func GetStringOrDefault(key, defaultValue string) string {
	value := viper.GetString(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetDuration(key string) time.Duration {
	return viper.GetDuration(key)
}

// GetSizeInBytes parses sizes such as "512KB" or "10MB"; unparsable values are 0
func GetSizeInBytes(key string) uint {
	return viper.GetSizeInBytes(key)
}

// GetCommaSeparated splits a comma separated property, dropping blank items
func GetCommaSeparated(key string) []string {
	raw := viper.Get(key)
	var items []string

	switch v := raw.(type) {
	case []any:
		for _, item := range v {
			items = append(items, fmt.Sprint(item))
		}
	case string:
		items = strings.Split(v, ",")
	}

	result := make([]string, 0, len(items))
	for _, item := range items {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
