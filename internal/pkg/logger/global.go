package logger

import (
	"sync"

	"go.uber.org/zap"
)

var (
	globalLogger *ZapLogger
	globalMu     sync.RWMutex
)

// SetGlobalLogger installs the process-wide logger used by the
// package-level helpers.
func SetGlobalLogger(logger *ZapLogger) {
	globalMu.Lock()
	defer globalMu.Unlock()
	globalLogger = logger
}

// GetGlobalLogger returns the installed global logger, or a no-op
// logger when none was configured (tests, early startup).
func GetGlobalLogger() *ZapLogger {
	globalMu.RLock()
	defer globalMu.RUnlock()
	if globalLogger == nil {
		return &ZapLogger{Logger: zap.NewNop()}
	}
	return globalLogger
}

func Info(msg string, fields ...Field) {
	GetGlobalLogger().Info(msg, fields...)
}

func Warn(msg string, fields ...Field) {
	GetGlobalLogger().Warn(msg, fields...)
}

func Debug(msg string, fields ...Field) {
	GetGlobalLogger().Debug(msg, fields...)
}

func Error(msg string, fields ...Field) {
	GetGlobalLogger().Error(msg, fields...)
}

func Fatal(msg string, fields ...Field) {
	GetGlobalLogger().Fatal(msg, fields...)
}
