// Package logger builds the process logger and writes JSON dumps of
// generation results.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/lmittmann/tint"
	"gopkg.in/natefinch/lumberjack.v2"

	"yuragi/internal/config"
)

const logFileName = "yuragi.log"

// New builds a tint logger on stdout. When cfg.Dir is set it also writes
// to a rotating file there. The logger becomes the slog default.
func New(cfg config.LogConfig) (*slog.Logger, error) {
	return NewWithWriter(os.Stdout, cfg)
}

// NewWithWriter is New with a custom console writer.
func NewWithWriter(w io.Writer, cfg config.LogConfig) (*slog.Logger, error) {
	level := ParseLevel(cfg.Level)
	dir := strings.TrimSpace(cfg.Dir)
	if dir == "" {
		l := newLogger(w, level, false)
		slog.SetDefault(l)
		return l, nil
	}

	if cfg.MaxSizeMB <= 0 || cfg.MaxBackups <= 0 || cfg.MaxAgeDays <= 0 {
		return nil, fmt.Errorf(
			"invalid log config: size=%d backups=%d age_days=%d",
			cfg.MaxSizeMB,
			cfg.MaxBackups,
			cfg.MaxAgeDays,
		)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create log dir failed: %w", err)
	}

	file := &lumberjack.Logger{
		Filename:   filepath.Join(dir, logFileName),
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays,
		Compress:   cfg.Compress,
	}
	l := newLogger(io.MultiWriter(w, file), level, true)
	slog.SetDefault(l)
	l.Debug("file_logging_enabled", slog.String("path", file.Filename))
	return l, nil
}

func newLogger(w io.Writer, level slog.Level, noColor bool) *slog.Logger {
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.RFC3339,
		NoColor:    noColor,
	}))
}

// ParseLevel maps debug, warn and error; anything else is info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// InitLogs creates path if needed and clears the .json dumps in it.
func InitLogs(path string) error {
	if err := os.MkdirAll(path, 0o755); err != nil {
		return fmt.Errorf("create dump dir: %w", err)
	}
	files, err := os.ReadDir(path)
	if err != nil {
		return err
	}
	for _, f := range files {
		if !f.IsDir() && strings.HasSuffix(f.Name(), ".json") {
			_ = os.Remove(filepath.Join(path, f.Name()))
		}
	}
	return nil
}

// LogJSON writes data as indented JSON to path/id.json. The file is
// replaced atomically.
func LogJSON(path, id string, data any) error {
	bytes, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", id, err)
	}
	file := filepath.Join(path, id+".json")
	tmp := file + ".tmp"
	if err := os.WriteFile(tmp, bytes, 0o644); err != nil {
		return err
	}
	if err := os.Rename(tmp, file); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return nil
}
