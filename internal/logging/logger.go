package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var logger *zap.Logger

// LogLevelEnvVar is the environment variable that controls logging verbosity.
// When unset or empty, logging is silent (no zap output).
// Valid values: "debug", "info", "warn", "error"
const LogLevelEnvVar = "KVPAIRS_LOG_LEVEL"

// LogFileEnvVar is the environment variable naming the log file
const LogFileEnvVar = "KVPAIRS_LOG_FILE"

// DefaultLogFile is used when a level is set but no file is given
const DefaultLogFile = "kvpairs.log"

// Initialize creates a new logger with the specified level writing to path.
// Empty arguments fall back to KVPAIRS_LOG_LEVEL and KVPAIRS_LOG_FILE.
// If no level is set at all, logging is disabled (silent mode).
func Initialize(level, path string) error {
	if level == "" {
		level = os.Getenv(LogLevelEnvVar)
	}
	if level == "" {
		logger = zap.NewNop()
		return nil
	}

	if path == "" {
		path = os.Getenv(LogFileEnvVar)
	}
	if strings.TrimSpace(path) == "" {
		path = DefaultLogFile
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(ParseLevel(level)),
		Development:      false,
		Encoding:         "console",
		EncoderConfig:    zap.NewDevelopmentEncoderConfig(),
		OutputPaths:      []string{path},
		ErrorOutputPaths: []string{path},
	}
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.EncodeCaller = zapcore.ShortCallerEncoder

	var err error
	logger, err = config.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	return nil
}

// ParseLevel maps a level name to a zap level.
// Unknown names map to info.
func ParseLevel(level string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return zapcore.DebugLevel
	case "info":
		return zapcore.InfoLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// SetLogger replaces the global logger. Intended for tests.
func SetLogger(l *zap.Logger) {
	logger = l
}

// GetLogger returns the global logger instance
func GetLogger() *zap.Logger {
	if logger == nil {
		// Silent until initialized so nothing leaks onto the TUI
		logger = zap.NewNop()
	}
	return logger
}

// Info logs an info message
func Info(msg string, fields ...zap.Field) {
	GetLogger().Info(msg, fields...)
}

// Debug logs a debug message
func Debug(msg string, fields ...zap.Field) {
	GetLogger().Debug(msg, fields...)
}

// Warn logs a warning message
func Warn(msg string, fields ...zap.Field) {
	GetLogger().Warn(msg, fields...)
}

// Error logs an error message
func Error(msg string, fields ...zap.Field) {
	GetLogger().Error(msg, fields...)
}

// LogTransition logs a screen change caused by an event
func LogTransition(from, to, event string) {
	Info("Screen transition",
		zap.String("from", from),
		zap.String("to", to),
		zap.String("event", event),
	)
}

// LogCommit logs a pair being committed to the collection.
// Values are not logged.
func LogCommit(key string, overwritten bool, total int) {
	Info("Pair committed",
		zap.String("key", key),
		zap.Bool("overwritten", overwritten),
		zap.Int("total", total),
	)
}

// LogIgnored logs an event that has no meaning on the current screen
func LogIgnored(screen, event string) {
	Debug("Event ignored",
		zap.String("screen", screen),
		zap.String("event", event),
	)
}

// LogEmit logs the result of writing the pair collection
func LogEmit(format string, pairs int, bytes int, err error) {
	if err != nil {
		Error("Output emission failed",
			zap.String("format", format),
			zap.Int("pairs", pairs),
			zap.Error(err),
		)
		return
	}
	Info("Output emitted",
		zap.String("format", format),
		zap.Int("pairs", pairs),
		zap.Int("bytes", bytes),
	)
}

// Sync flushes any buffered log entries
func Sync() {
	if logger != nil {
		_ = logger.Sync()
	}
}
