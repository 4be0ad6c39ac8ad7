// Package logging builds the process logger.
//
// The TUI owns the terminal, so logs are written to a file and are off unless
// SAVANNA_LOG asks for them.
package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	EnvLog      = "SAVANNA_LOG"
	EnvLogLevel = "SAVANNA_LOG_LEVEL"

	DefaultFileName = "savanna.log"
)

// Options controls where logs go. Zero values fall back to the environment.
type Options struct {
	// Target is "", "0", "1", "true", "debug" or a file path.
	Target string
	// Level is debug|info|warn|error.
	Level string
	// Dir holds the default log file.
	Dir string
}

func FromEnv(dir string) Options {
	return Options{
		Target: strings.TrimSpace(os.Getenv(EnvLog)),
		Level:  strings.TrimSpace(os.Getenv(EnvLogLevel)),
		Dir:    dir,
	}
}

// Path reports the file the logger will write to, or "" when disabled.
func (o Options) Path() string {
	switch strings.ToLower(o.Target) {
	case "", "0", "false", "off", "no":
		return ""
	case "1", "true", "on", "yes", "debug":
		if o.Dir == "" {
			return ""
		}
		return filepath.Join(o.Dir, DefaultFileName)
	default:
		return o.Target
	}
}

func (o Options) level() (zapcore.Level, error) {
	lvl := strings.ToLower(o.Level)
	if lvl == "" {
		if strings.EqualFold(o.Target, "debug") {
			return zapcore.DebugLevel, nil
		}
		return zapcore.InfoLevel, nil
	}
	var l zapcore.Level
	if err := l.UnmarshalText([]byte(lvl)); err != nil {
		return 0, fmt.Errorf("invalid log level %q", o.Level)
	}
	return l, nil
}

// New returns a JSON file logger, or a no-op logger when logging is off.
func New(o Options) (*zap.Logger, error) {
	path := o.Path()
	if path == "" {
		return zap.NewNop(), nil
	}
	lvl, err := o.level()
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("log dir: %w", err)
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.Sampling = nil

	l, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return l.With(zap.Int("pid", os.Getpid())), nil
}
