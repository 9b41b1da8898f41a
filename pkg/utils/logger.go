package utils

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// LogLevel represents log levels
type LogLevel string

const (
	LogLevelTrace LogLevel = "trace"
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
	LogLevelFatal LogLevel = "fatal"
	LogLevelPanic LogLevel = "panic"
)

// LogFormat represents log output formats
type LogFormat string

const (
	LogFormatJSON LogFormat = "json"
	LogFormatText LogFormat = "text"
)

// LogConfig represents logger configuration
type LogConfig struct {
	Level      LogLevel  `json:"level" yaml:"level"`
	Format     LogFormat `json:"format" yaml:"format"`
	Output     string    `json:"output" yaml:"output"` // stdout, stderr, file path
	MaxSize    int       `json:"max_size" yaml:"max_size"`
	MaxAge     int       `json:"max_age" yaml:"max_age"`
	MaxBackups int       `json:"max_backups" yaml:"max_backups"`
	Compress   bool      `json:"compress" yaml:"compress"`
}

// DefaultLogConfig returns default logger configuration
func DefaultLogConfig() *LogConfig {
	return &LogConfig{
		Level:      LogLevelInfo,
		Format:     LogFormatJSON,
		Output:     "stdout",
		MaxSize:    100,
		MaxAge:     30,
		MaxBackups: 5,
		Compress:   true,
	}
}

// Logger wraps logrus.Logger with additional functionality
type Logger struct {
	*logrus.Logger
	config *LogConfig
}

// NewLogger creates a new logger with the given configuration
func NewLogger(config *LogConfig) (*Logger, error) {
	if config == nil {
		config = DefaultLogConfig()
	}

	logger := logrus.New()

	level, err := logrus.ParseLevel(string(config.Level))
	if err != nil {
		return nil, fmt.Errorf("invalid log level %s: %w", config.Level, err)
	}
	logger.SetLevel(level)

	switch config.Format {
	case LogFormatJSON:
		logger.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: time.RFC3339,
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyTime:  "timestamp",
				logrus.FieldKeyLevel: "level",
				logrus.FieldKeyMsg:   "message",
			},
		})
	case LogFormatText:
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: time.RFC3339,
		})
	default:
		return nil, fmt.Errorf("invalid log format: %s", config.Format)
	}

	output, err := getLogOutput(config)
	if err != nil {
		return nil, fmt.Errorf("failed to setup log output: %w", err)
	}
	logger.SetOutput(output)

	return &Logger{Logger: logger, config: config}, nil
}

func getLogOutput(config *LogConfig) (io.Writer, error) {
	switch strings.ToLower(config.Output) {
	case "stdout", "":
		return os.Stdout, nil
	case "stderr":
		return os.Stderr, nil
	default:
		if err := os.MkdirAll(filepath.Dir(config.Output), 0755); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}
		return &lumberjack.Logger{
			Filename:   config.Output,
			MaxSize:    config.MaxSize,
			MaxAge:     config.MaxAge,
			MaxBackups: config.MaxBackups,
			Compress:   config.Compress,
		}, nil
	}
}

// WithComponent creates a logger with a component field
func (l *Logger) WithComponent(component string) *logrus.Entry {
	return l.WithField("component", component)
}

// WithRequestID creates a logger with a request ID field
func (l *Logger) WithRequestID(requestID string) *logrus.Entry {
	return l.WithField("request_id", requestID)
}

// SetLevel changes the logger level
func (l *Logger) SetLevel(level LogLevel) error {
	logrusLevel, err := logrus.ParseLevel(string(level))
	if err != nil {
		return fmt.Errorf("invalid log level %s: %w", level, err)
	}
	l.Logger.SetLevel(logrusLevel)
	l.config.Level = level
	return nil
}

// LogStartup logs application startup information
func (l *Logger) LogStartup(appName, version string, port int) {
	l.WithFields(logrus.Fields{
		"app_name": appName,
		"version":  version,
		"port":     port,
		"type":     "startup",
	}).Info("application starting")
}

// LogShutdown logs application shutdown information
func (l *Logger) LogShutdown(appName string, reason string) {
	l.WithFields(logrus.Fields{
		"app_name": appName,
		"reason":   reason,
		"type":     "shutdown",
	}).Info("application shutting down")
}
