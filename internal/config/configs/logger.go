package configs

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger defines configuration options for the structured logger. The
// Level controls the minimum level emitted by the logger. Valid values
// include "debug", "info", "warn" and "error". Format determines the
// output encoding and may be "text" (default) or "json". An unknown
// format falls back to "text".
type Logger struct {
	Level  string `env:"LEVEL" envDefault:"info"`
	Format string `env:"FORMAT" envDefault:"text"`
}

// ZapLevel converts the textual level into a zapcore.Level. Unknown levels
// default to info.
func (c Logger) ZapLevel() zapcore.Level {
	switch strings.ToLower(c.Level) {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error", "err":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// Encoding maps Format to a zap encoding name.
func (c Logger) Encoding() string {
	switch strings.ToLower(c.Format) {
	case "json":
		return "json"
	default:
		return "console"
	}
}

// Build constructs a zap logger writing to stdout.
func (c Logger) Build() (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if c.Encoding() == "console" {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(c.ZapLevel())
	cfg.Encoding = c.Encoding()
	cfg.OutputPaths = []string{"stdout"}
	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	return cfg.Build()
}
