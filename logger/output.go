package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"
)

// DebugLogPath is where --debug sends logs so they stay off the UI terminal
var DebugLogPath = filepath.Join("logs", "wheel-of-names.log")

// Rotation configures size-based rotation of a file output
type Rotation struct {
	MaxSize    int  `mapstructure:"max_size"` // megabytes
	MaxAge     int  `mapstructure:"max_age"`  // days
	MaxBackups int  `mapstructure:"max_backups"`
	LocalTime  bool `mapstructure:"local_time"`
	Compress   bool `mapstructure:"compress"`
}

// Config is the log section of the application config
type Config struct {
	Output   string    `mapstructure:"output"`
	Level    string    `mapstructure:"level"`
	Format   string    `mapstructure:"format"`
	Rotation *Rotation `mapstructure:"rotation"`
}

// Build returns a Logger for cfg and a closer for any file it opened. Output
// "none", "null" or "" discards; "stdout" and "stderr" write to the stream;
// anything else is a file path.
func Build(name string, cfg Config) (Logger, io.Closer, error) {
	var (
		out    io.Writer
		closer io.Closer = nopCloser{}
	)

	switch cfg.Output {
	case "none", "null", "":
		return Nop(), closer, nil
	case "stdout":
		out = os.Stdout
	case "stderr":
		out = os.Stderr
	default:
		if err := os.MkdirAll(filepath.Dir(cfg.Output), 0755); err != nil {
			return nil, nil, fmt.Errorf("create log directory: %w", err)
		}
		if cfg.Rotation != nil {
			lj := &lumberjack.Logger{
				Filename:   cfg.Output,
				MaxSize:    cfg.Rotation.MaxSize,
				MaxAge:     cfg.Rotation.MaxAge,
				MaxBackups: cfg.Rotation.MaxBackups,
				LocalTime:  cfg.Rotation.LocalTime,
				Compress:   cfg.Rotation.Compress,
			}
			out, closer = lj, lj
		} else {
			f, err := os.OpenFile(cfg.Output, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
			if err != nil {
				return nil, nil, fmt.Errorf("open log file: %w", err)
			}
			out, closer = f, f
		}
	}

	l := NewLogger(
		NameOption(name),
		OutputOption(out),
		FormatOption(LogFormat(cfg.Format)),
		LevelOption(LogLevel(cfg.Level)),
	)
	return l, closer, nil
}

// DebugConfig rewrites cfg for --debug: debug level, and a rotated file under
// logs/ unless a file output is already configured
func DebugConfig(cfg Config) Config {
	cfg.Level = string(DebugLevel)
	switch cfg.Output {
	case "none", "null", "", "stdout", "stderr":
		cfg.Output = DebugLogPath
	}
	if cfg.Rotation == nil {
		cfg.Rotation = &Rotation{MaxSize: 10, MaxBackups: 3}
	}
	if cfg.Format == "" {
		cfg.Format = string(TextFormat)
	}
	return cfg
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
