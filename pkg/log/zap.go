package log

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	level  = zap.NewAtomicLevelAt(zap.InfoLevel)
	logger *zap.Logger
	Logger *zap.SugaredLogger
)

func init() {
	build(zapcore.AddSync(os.Stdout))
}

func build(out zapcore.WriteSyncer) {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.MessageKey = "msg"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.TimeKey = "@timestamp"
	encoderConfig.CallerKey = "logger_name"

	core := zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig), out, level)

	logger = zap.New(core,
		zap.Fields(zap.String("logName", os.Getenv("APPLICATION_NAME"))),
		zap.AddCaller(),
		zap.AddCallerSkip(1))

	Logger = logger.Sugar()
}

// SetLevel changes the minimum enabled level ("debug", "info", "warn", "error").
// Unknown names leave the level untouched and return the parse error.
func SetLevel(name string) error {
	return level.UnmarshalText([]byte(name))
}

// SetOutput redirects every log entry to out.
func SetOutput(out zapcore.WriteSyncer) {
	build(out)
}

// Sync flushes any buffered log entries.
func Sync() error {
	return logger.Sync()
}

// Info logs a message at InfoLevel. The message includes any fields passed at the log site, as well as any fields accumulated on the logger.
func Info(message string, fields ...zap.Field) {
	logger.Info(message, fields...)
}

// Infof formats the message according to the format specifier and logs it at InfoLevel.
func Infof(message string, args ...interface{}) {
	Logger.Infof(message, args...)
}

// Debug logs a message at DebugLevel. The message includes any fields passed at the log site, as well as any fields accumulated on the logger.
func Debug(message string, fields ...zap.Field) {
	logger.Debug(message, fields...)
}

// Warn logs a message at WarnLevel.
func Warn(message string, fields ...zap.Field) {
	logger.Warn(message, fields...)
}

// Error logs a message at ErrorLevel. The message includes any fields passed at the log site, as well as any fields accumulated on the logger.
func Error(message string, fields ...zap.Field) {
	logger.Error(message, fields...)
}

// Errorf formats the message according to the format specifier and logs it at ErrorLevel.
func Errorf(message string, args ...interface{}) {
	Logger.Errorf(message, args...)
}

// Fatal logs a message at FatalLevel, then calls os.Exit.
func Fatal(message string, fields ...zap.Field) {
	logger.Fatal(message, fields...)
}
