// ABOUTME: Structured logger implementation backed by logrus
// ABOUTME: Supports text or JSON output and optional rotating log files via lumberjack

package structured

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Config controls logger output
type Config struct {
	// Level is one of debug, info, warn or error
	Level string

	// Format is "text" or "json"
	Format string

	// File enables rotation into the given path in addition to stdout
	File string

	// MaxSizeMB, MaxBackups and MaxAgeDays tune file rotation
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

// Logger implements the core Logger interface using logrus
type Logger struct {
	entry *logrus.Logger
	file  io.Closer
}

// NewLogger creates a logger writing to stdout and, when configured, a rotated file
func NewLogger(cfg Config) *Logger {
	return newLogger(cfg, os.Stdout)
}

func newLogger(cfg Config, out io.Writer) *Logger {
	log := logrus.New()
	log.SetLevel(parseLevel(cfg.Level))

	if strings.EqualFold(cfg.Format, "json") {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	l := &Logger{entry: log}

	if cfg.File != "" {
		rotating := &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    orDefault(cfg.MaxSizeMB, 500),
			MaxBackups: orDefault(cfg.MaxBackups, 3),
			MaxAge:     orDefault(cfg.MaxAgeDays, 28),
			Compress:   true,
		}
		l.file = rotating
		out = io.MultiWriter(out, rotating)
	}
	log.SetOutput(out)

	return l
}

// Debug logs a debug message
func (l *Logger) Debug(msg string, fields map[string]interface{}) {
	l.entry.WithFields(fields).Debug(msg)
}

// Info logs an info message
func (l *Logger) Info(msg string, fields map[string]interface{}) {
	l.entry.WithFields(fields).Info(msg)
}

// Warn logs a warning message
func (l *Logger) Warn(msg string, fields map[string]interface{}) {
	l.entry.WithFields(fields).Warn(msg)
}

// Error logs an error message
func (l *Logger) Error(msg string, fields map[string]interface{}) {
	l.entry.WithFields(fields).Error(msg)
}

// Close releases the rotating file, if any
func (l *Logger) Close() error {
	if l.file != nil {
		return l.file.Close()
	}
	return nil
}

func parseLevel(level string) logrus.Level {
	parsed, err := logrus.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		return logrus.InfoLevel
	}
	return parsed
}

func orDefault(value, fallback int) int {
	if value > 0 {
		return value
	}
	return fallback
}
