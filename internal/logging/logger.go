// Package logging builds the zap logger shared by every command.
package logging

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const defaultLevel = "info"

// Options selects level, encoding and destination
type Options struct {
	Level   string // debug, info, warn, error; empty reads LOG_LEVEL
	Format  string // console or json
	Verbose bool   // forces debug
	Output  string // zap sink, stderr by default
}

// New constructs the logger. Diagnostics go to stderr so stdout stays free
// for command output.
func New(opts Options) (*zap.Logger, error) {
	levelText := opts.Level
	if levelText == "" {
		levelText = os.Getenv("LOG_LEVEL")
	}
	if opts.Verbose {
		levelText = "debug"
	}
	level := zap.NewAtomicLevel()
	if err := level.UnmarshalText([]byte(strings.ToLower(strings.TrimSpace(levelText)))); err != nil || levelText == "" {
		_ = level.UnmarshalText([]byte(defaultLevel))
	}

	encoderCfg := zapcore.EncoderConfig{
		MessageKey: "message",
		TimeKey:    "timestamp",
		LevelKey:   "severity",
		EncodeTime: zapcore.RFC3339NanoTimeEncoder,
		EncodeLevel: func(level zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
			enc.AppendString(strings.ToUpper(level.String()))
		},
		EncodeDuration: zapcore.StringDurationEncoder,
		StacktraceKey:  "stacktrace",
	}

	encoding := "console"
	switch strings.ToLower(opts.Format) {
	case "", "console":
		encoderCfg.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		encoderCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	case "json":
		encoding = "json"
	default:
		return nil, fmt.Errorf("unknown log format %q", opts.Format)
	}

	output := opts.Output
	if output == "" {
		output = "stderr"
	}

	cfg := zap.Config{
		Level:             level,
		Encoding:          encoding,
		EncoderConfig:     encoderCfg,
		OutputPaths:       []string{output},
		ErrorOutputPaths:  []string{"stderr"},
		DisableCaller:     true,
		DisableStacktrace: true,
	}
	return cfg.Build()
}
