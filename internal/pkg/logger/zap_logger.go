package logger

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/altostack/tenantdesk/internal/pkg/models"
)

// ZapLogger is the application logger. It wraps zap with JSON encoding
// and optional file output.
type ZapLogger struct {
	*zap.Logger
	file *os.File
}

// InitZapLoggerFromConfig creates a logger from application config and
// installs it as the package-level global.
func InitZapLoggerFromConfig(cfg *models.Config) (*ZapLogger, error) {
	logger, err := NewZapLogger(cfg.Logger)
	if err != nil {
		return nil, err
	}
	SetGlobalLogger(logger)
	return logger, nil
}

// NewZapLogger creates a new Zap application logger
func NewZapLogger(config models.LoggerConfig) (*ZapLogger, error) {
	// Parse log level
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(config.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	// Create encoder config for structured JSON logging
	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        "timestamp",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "message",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.RFC3339TimeEncoder,
		EncodeDuration: zapcore.SecondsDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}

	encoder := zapcore.NewJSONEncoder(encoderConfig)

	cores := []zapcore.Core{
		zapcore.NewCore(encoder, zapcore.AddSync(os.Stdout), level),
	}

	var file *os.File
	if config.Type == "file" && config.FilePath != "" {
		if err := os.MkdirAll(filepath.Dir(config.FilePath), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}
		f, err := os.OpenFile(config.FilePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		file = f
		cores = append(cores, zapcore.NewCore(encoder, zapcore.AddSync(f), level))
	}

	zl := zap.New(zapcore.NewTee(cores...), zap.AddCaller(), zap.AddCallerSkip(1))

	return &ZapLogger{Logger: zl, file: file}, nil
}

// Close flushes buffered entries and releases the log file, if any.
func (l *ZapLogger) Close() {
	_ = l.Logger.Sync()
	if l.file != nil {
		_ = l.file.Close()
	}
}
