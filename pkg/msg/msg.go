package msg

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"reflect"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

//go:embed messages.yml
var defaultMessages []byte

var messages map[string]string

// init loads the embedded catalog, or MESSAGES_FILE_PATH when it is set
func init() {
	if value, ok := os.LookupEnv("MESSAGES_FILE_PATH"); ok {
		if err := Init(value); err != nil {
			log.Fatalf("Fail to read messages: %v", err)
		}
		return
	}

	if err := load(bytes.NewReader(defaultMessages)); err != nil {
		log.Fatalf("Fail to read messages: %v", err)
	}
}

// Init loads messages from a YAML file, overriding keys already loaded
func Init(filepath string) error {
	content, err := os.ReadFile(filepath)
	if err != nil {
		return err
	}
	return load(bytes.NewReader(content))
}

func load(content *bytes.Reader) error {
	v := viper.New()
	v.SetConfigType("yml")

	if err := v.ReadConfig(content); err != nil {
		return err
	}

	if messages == nil {
		messages = make(map[string]string)
	}
	parseMessageMap("", v.AllSettings(), messages)
	return nil
}

// parseMessageMap read recursively the yml archive
func parseMessageMap(prefix string, data map[string]interface{}, result map[string]string) {
	for key, value := range data {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}

		switch v := value.(type) {
		case string:
			result[fullKey] = v
		case map[string]interface{}:
			parseMessageMap(fullKey, v, result)
		default:
			log.Printf("Ignoring key '%s' with unsupported type.", fullKey)
		}
	}
}

// GetMessage returns a msg and format
func GetMessage(key string, args ...interface{}) string {
	msg, exists := messages[key]
	if !exists {
		return fmt.Sprintf("Message not found: %s", key)
	}

	for i, arg := range args {
		placeholder := fmt.Sprintf("{%d}", i)
		var argStr string

		if arg == nil {
			argStr = ""
		} else if isPrimitive(arg) {
			argStr = primitiveToString(arg)
		} else if err, ok := arg.(error); ok {
			argStr = err.Error()
		} else {
			jsonBytes, err := json.Marshal(arg)
			if err != nil {
				argStr = fmt.Sprintf("%v", arg)
			} else {
				argStr = string(jsonBytes)
			}
		}

		msg = strings.ReplaceAll(msg, placeholder, argStr)
	}

	return msg
}

// isPrimitive checks if the provided value is of a primitive type (bool, int, uint, float, or string).
func isPrimitive(value interface{}) bool {
	switch reflect.TypeOf(value).Kind() {
	case reflect.Bool, reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64, reflect.String:
		return true
	default:
		return false
	}
}

// primitiveToString converts a primitive value to string using strconv
func primitiveToString(value interface{}) string {
	switch v := value.(type) {
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case uint:
		return strconv.FormatUint(uint64(v), 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", value)
	}
}
