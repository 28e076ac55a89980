// Package logging builds the zap loggers used for operational output
// (startup, access log, recovered panics).
package logging

import (
	"io"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	// TextFormat renders tab separated "TIMESTAMP level message {fields}".
	TextFormat = "text"
	// JSONFormat renders one JSON object per record.
	JSONFormat = "json"
)

func encoderConfig() zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		TimeKey:        "ts",
		LevelKey:       "level",
		NameKey:        "logger",
		MessageKey:     "msg",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeName:     zapcore.FullNameEncoder,
	}
}

// NewLogger creates a logger writing to w in the given format.
// Unknown formats fall back to TextFormat.
func NewLogger(w io.Writer, level zapcore.Level, format string) *zap.Logger {
	var enc zapcore.Encoder
	if strings.EqualFold(format, JSONFormat) {
		enc = zapcore.NewJSONEncoder(encoderConfig())
	} else {
		enc = zapcore.NewConsoleEncoder(encoderConfig())
	}
	core := zapcore.NewCore(enc, zapcore.Lock(zapcore.AddSync(w)), level)
	return zap.New(core)
}

// NewDiscardLogger creates a logger that drops everything.
func NewDiscardLogger() *zap.Logger {
	return zap.NewNop()
}

// LevelFromString converts debug, info, warn or error (any case) to a
// zap level. Anything else is info.
func LevelFromString(s string) zapcore.Level {
	switch strings.ToLower(s) {
	case "debug":
		return zapcore.DebugLevel
	case "info":
		return zapcore.InfoLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}
