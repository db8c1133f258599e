package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

type LogLevel string

const (
	DebugLevel LogLevel = "debug"
	InfoLevel  LogLevel = "info"
	WarnLevel  LogLevel = "warn"
	ErrorLevel LogLevel = "error"
)

// Config captures logging configuration options.
type Config struct {
	Level      string
	Dir        string
	Filename   string
	ErrorFile  string
	MaxSizeKB  int
	MaxBackups int
}

// Logger writes levelled text to the console and JSON lines to a
// size-rotated log file. Errors additionally go to a dedicated error file.
type Logger struct {
	cfg        Config
	textLogger *slog.Logger
	mu         sync.Mutex
	logFile    *rotatingFile
	errFile    *rotatingFile
	jsonLogger *slog.Logger
}

var colorForLevel = map[slog.Level]string{
	slog.LevelDebug: "\x1b[36m",
	slog.LevelInfo:  "\x1b[32m",
	slog.LevelWarn:  "\x1b[33m",
	slog.LevelError: "\x1b[31m",
}

const (
	colorReset = "\x1b[0m"
	colorTime  = "\x1b[90m"
)

// consoleHandler renders compact coloured lines for interactive use.
type consoleHandler struct {
	writer io.Writer
	level  slog.Level
	mu     sync.Mutex
}

func (h *consoleHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level
}

func (h *consoleHandler) Handle(_ context.Context, r slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	levelColor, ok := colorForLevel[r.Level]
	if !ok {
		levelColor = colorReset
	}

	output := fmt.Sprintf("%s[%s]%s %s[%s]%s %s",
		colorTime, r.Time.Format("2006-01-02 15:04:05.000"), colorReset,
		levelColor, strings.ToUpper(r.Level.String()), colorReset,
		r.Message)

	if r.NumAttrs() > 0 {
		output += " {"
		r.Attrs(func(a slog.Attr) bool {
			output += fmt.Sprintf(" %s=%v", a.Key, a.Value)
			return true
		})
		output += " }"
	}
	output += "\n"

	_, err := h.writer.Write([]byte(output))
	return err
}

func (h *consoleHandler) WithAttrs(_ []slog.Attr) slog.Handler { return h }
func (h *consoleHandler) WithGroup(_ string) slog.Handler      { return h }

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// New creates a Logger writing to cfg.Dir/cfg.Filename.
func New(cfg Config) (*Logger, error) {
	if cfg.Filename == "" {
		cfg.Filename = "app.log"
	}
	if cfg.ErrorFile == "" {
		cfg.ErrorFile = "error.log"
	}
	if cfg.MaxSizeKB <= 0 {
		cfg.MaxSizeKB = 1024
	}
	if cfg.MaxBackups <= 0 {
		cfg.MaxBackups = 5
	}

	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	logFile, err := newRotatingFile(filepath.Join(cfg.Dir, cfg.Filename), cfg.MaxSizeKB*1024, cfg.MaxBackups)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	errFile, err := newRotatingFile(filepath.Join(cfg.Dir, cfg.ErrorFile), cfg.MaxSizeKB*1024, cfg.MaxBackups)
	if err != nil {
		logFile.Close()
		return nil, fmt.Errorf("failed to open error log file: %w", err)
	}

	level := parseLevel(cfg.Level)

	logger := &Logger{
		cfg:     cfg,
		logFile: logFile,
		errFile: errFile,
		jsonLogger: slog.New(slog.NewJSONHandler(logFile, &slog.HandlerOptions{
			Level: level,
		})),
		textLogger: slog.New(&consoleHandler{
			writer: os.Stdout,
			level:  level,
		}),
	}

	return logger, nil
}

// Slog exposes the structured file logger for integrations that want
// attribute-based logging.
func (l *Logger) Slog() *slog.Logger {
	return l.jsonLogger
}

func (l *Logger) log(level slog.Level, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	ctx := context.Background()
	l.textLogger.Log(ctx, level, msg)
	l.jsonLogger.Log(ctx, level, msg)
	if level >= slog.LevelError {
		line := fmt.Sprintf("%s [ERROR] %s\n", time.Now().Format(time.RFC3339), msg)
		l.mu.Lock()
		_, _ = l.errFile.Write([]byte(line))
		l.mu.Unlock()
	}
}

func (l *Logger) Debug(format string, args ...interface{}) {
	l.log(slog.LevelDebug, format, args...)
}

func (l *Logger) Info(format string, args ...interface{}) {
	l.log(slog.LevelInfo, format, args...)
}

func (l *Logger) Warn(format string, args ...interface{}) {
	l.log(slog.LevelWarn, format, args...)
}

func (l *Logger) Error(format string, args ...interface{}) {
	l.log(slog.LevelError, format, args...)
}

// InfoTag prefixes the message with a module tag, e.g. [HTTP].
func (l *Logger) InfoTag(tag, format string, args ...interface{}) {
	l.Info("["+tag+"] "+format, args...)
}

func (l *Logger) WarnTag(tag, format string, args ...interface{}) {
	l.Warn("["+tag+"] "+format, args...)
}

func (l *Logger) ErrorTag(tag, format string, args ...interface{}) {
	l.Error("["+tag+"] "+format, args...)
}

// Close flushes and closes the underlying log files.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	errClose := l.logFile.Close()
	if err := l.errFile.Close(); errClose == nil {
		errClose = err
	}
	return errClose
}
