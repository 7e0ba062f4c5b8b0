package util

import (
	"os"
	"sync"
)

var (
	globalLogger LoggerInterface
	loggerOnce   sync.Once
)

// InitLogger initializes the global logger. Debug entries go to stderr in
// text format; when logFile is non-empty a JSON file output is added too.
func InitLogger(logLevel, logFile string) {
	loggerOnce.Do(func() {
		outputs := []Output{NewConsoleOutput(os.Stderr, FormatText)}
		if logFile != "" {
			if fileOut, err := NewFileOutput(logFile, FormatJSON); err == nil {
				outputs = append(outputs, fileOut)
			}
		}
		globalLogger = NewLogger(ParseLogLevel(logLevel), outputs...)
	})
}

// SetLogger replaces the global logger, mainly for tests.
func SetLogger(l LoggerInterface) {
	globalLogger = l
}

// LogDebug convenience functions for logging
func LogDebug(msg string) {
	if globalLogger != nil {
		globalLogger.Debug(msg)
	}
}

func LogDebugf(format string, args ...interface{}) {
	if globalLogger != nil {
		globalLogger.Debugf(format, args...)
	}
}

func LogInfo(msg string) {
	if globalLogger != nil {
		globalLogger.Info(msg)
	}
}

func LogInfof(format string, args ...interface{}) {
	if globalLogger != nil {
		globalLogger.Infof(format, args...)
	}
}

func LogWarn(msg string) {
	if globalLogger != nil {
		globalLogger.Warn(msg)
	}
}

func LogWarnf(format string, args ...interface{}) {
	if globalLogger != nil {
		globalLogger.Warnf(format, args...)
	}
}

func LogError(msg string) {
	if globalLogger != nil {
		globalLogger.Error(msg)
	}
}

func LogErrorf(format string, args ...interface{}) {
	if globalLogger != nil {
		globalLogger.Errorf(format, args...)
	}
}
