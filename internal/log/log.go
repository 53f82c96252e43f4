// Copyright 2016 Aleksandr Demakin. All rights reserved.

// Package log provides the process-wide diagnostic logger.
//
// Until InitLogger is called every call is a no-op.
package log

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var logger = zap.NewNop().Sugar()

// Level is the verbose representation of log level.
type Level string

// Enums for Level
const (
	NopLevel   Level = "nop"
	DebugLevel Level = "debug"
	InfoLevel  Level = "info"
	WarnLevel  Level = "warn"
	ErrorLevel Level = "error"
)

// ToZapLevel converts Level to a zap level. Unknown levels are treated as warn.
func (l Level) ToZapLevel() zapcore.Level {
	switch l {
	default:
		return zapcore.WarnLevel
	case DebugLevel:
		return zapcore.DebugLevel
	case InfoLevel:
		return zapcore.InfoLevel
	case ErrorLevel:
		return zapcore.ErrorLevel
	}
}

// InitLogger replaces the global logger with a console logger writing to w.
// Entries carry no timestamps or callers, only level and message.
func InitLogger(w io.Writer, logLevel Level) {
	if logLevel == NopLevel {
		logger = zap.NewNop().Sugar()
		return
	}
	logger = NewConsoleLogger(w, logLevel).Sugar()
}

// NewConsoleLogger returns a logger writing human-readable lines to w.
func NewConsoleLogger(w io.Writer, logLevel Level) *zap.Logger {
	config := zap.NewProductionEncoderConfig()
	config.TimeKey = ""
	config.CallerKey = ""
	config.StacktraceKey = ""
	config.EncodeLevel = zapcore.LowercaseLevelEncoder
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(config),
		zapcore.AddSync(w),
		zap.NewAtomicLevelAt(logLevel.ToZapLevel()),
	)
	return zap.New(core)
}

// ReplaceLogger sets l as the global logger and returns a func restoring the previous one.
func ReplaceLogger(l *zap.Logger) func() {
	prev := logger
	logger = l.Sugar()
	return func() {
		logger = prev
	}
}

// Sync flushes buffered log entries.
func Sync() {
	_ = logger.Sync()
}

// Debugf uses fmt.Sprintf to log a templated message.
func Debugf(template string, args ...interface{}) {
	logger.Debugf(template, args...)
}

// Infof uses fmt.Sprintf to log a templated message.
func Infof(template string, args ...interface{}) {
	logger.Infof(template, args...)
}

// Warnf uses fmt.Sprintf to log a templated message.
func Warnf(template string, args ...interface{}) {
	logger.Warnf(template, args...)
}

// Errorf uses fmt.Sprintf to log a templated message.
func Errorf(template string, args ...interface{}) {
	logger.Errorf(template, args...)
}
