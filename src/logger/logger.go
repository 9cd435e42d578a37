package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
)

// -----------------------------------------------------------------------------

// Level orders log severities. Messages below the logger's level are dropped.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarning
	LevelError
	LevelCritical
)

var levelNames = map[Level]string{
	LevelDebug:    "DEBUG",
	LevelInfo:     "INFO",
	LevelWarning:  "WARNING",
	LevelError:    "ERROR",
	LevelCritical: "CRITICAL",
}

// ParseLevel maps a config value to a Level. Unknown values fall back to INFO.
func ParseLevel(s string) Level {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return LevelDebug
	case "WARNING", "WARN":
		return LevelWarning
	case "ERROR":
		return LevelError
	case "CRITICAL":
		return LevelCritical
	}
	return LevelInfo
}

// ValidLevel reports whether s names a known level.
func ValidLevel(s string) bool {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG", "INFO", "WARNING", "WARN", "ERROR", "CRITICAL":
		return true
	}
	return false
}

// -----------------------------------------------------------------------------

// Logger provides named, leveled logging
type Logger struct {
	name   string
	level  Level
	logger *log.Logger
	exit   func(int)
}

// -----------------------------------------------------------------------------

// NewLogger creates a new Logger writing to stdout
func NewLogger(level string, name string) *Logger {
	return NewLoggerWithWriter(os.Stdout, level, name)
}

// NewLoggerWithWriter creates a Logger writing to w
func NewLoggerWithWriter(w io.Writer, level string, name string) *Logger {
	return &Logger{
		name:   name,
		level:  ParseLevel(level),
		logger: log.New(w, "", log.LstdFlags),
		exit:   os.Exit,
	}
}

// Named returns a logger sharing this one's output and level under another name.
func (l *Logger) Named(name string) *Logger {
	return &Logger{name: name, level: l.level, logger: l.logger, exit: l.exit}
}

// Discard returns a logger that drops everything. Used by tests.
func Discard() *Logger {
	return NewLoggerWithWriter(io.Discard, "CRITICAL", "discard")
}

// -----------------------------------------------------------------------------

func (l *Logger) printf(level Level, format string, args ...interface{}) {
	if l == nil || level < l.level {
		return
	}
	msg := fmt.Sprintf(format, args...)
	l.logger.Printf("[%s] %s: %s", l.name, levelNames[level], msg)
}

// -----------------------------------------------------------------------------

// Debug logs diagnostic messages
func (l *Logger) Debug(format string, args ...interface{}) {
	l.printf(LevelDebug, format, args...)
}

// -----------------------------------------------------------------------------

// Info logs informational messages
func (l *Logger) Info(format string, args ...interface{}) {
	l.printf(LevelInfo, format, args...)
}

// -----------------------------------------------------------------------------

// Warning logs recoverable problems
func (l *Logger) Warning(format string, args ...interface{}) {
	l.printf(LevelWarning, format, args...)
}

// -----------------------------------------------------------------------------

// Error logs error messages
func (l *Logger) Error(format string, args ...interface{}) {
	l.printf(LevelError, format, args...)
}

// -----------------------------------------------------------------------------

// Critical logs critical errors and exits the application
func (l *Logger) Critical(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	l.logger.Printf("[%s] CRITICAL: %s", l.name, msg)
	l.exit(1)
}
