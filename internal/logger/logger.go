// Package logger is the small logging surface shared by the store, the
// tracker and the CLI. Debug output is off unless TALLY_DEBUG is set.
package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync"
)

// DebugEnv is the environment variable that enables debug output.
const DebugEnv = "TALLY_DEBUG"

// Logger takes printf-style messages at four levels.
type Logger interface {
	Debug(format string, args ...any)
	Info(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
}

// envLogger writes through a *log.Logger, or the standard logger when out is
// nil.
type envLogger struct {
	prefix string
	out    *log.Logger
}

// NewEnvLogger logs to the standard logger with prefix before every line,
// e.g. "[tally]".
func NewEnvLogger(prefix string) Logger {
	return &envLogger{prefix: prefix}
}

// NewWriterLogger is NewEnvLogger writing to w. The CLI uses it for
// --log-file so lines never land on the board's alt screen.
func NewWriterLogger(w io.Writer, prefix string) Logger {
	return &envLogger{prefix: prefix, out: log.New(w, "", log.LstdFlags)}
}

func debugEnabled() bool {
	v := strings.TrimSpace(os.Getenv(DebugEnv))
	return v != "" && v != "0" && !strings.EqualFold(v, "false")
}

func (l *envLogger) write(tag, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if l.prefix != "" {
		msg = l.prefix + " " + tag + msg
	} else {
		msg = tag + msg
	}
	if l.out != nil {
		l.out.Print(msg)
		return
	}
	log.Print(msg)
}

func (l *envLogger) Debug(format string, args ...any) {
	if debugEnabled() {
		l.write("", format, args...)
	}
}

func (l *envLogger) Info(format string, args ...any)  { l.write("", format, args...) }
func (l *envLogger) Warn(format string, args ...any)  { l.write("WARN: ", format, args...) }
func (l *envLogger) Error(format string, args ...any) { l.write("ERROR: ", format, args...) }

type noopLogger struct{}

// Noop returns a logger that discards everything.
func Noop() Logger {
	return noopLogger{}
}

func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}

// named prefixes each message with a component name.
type named struct {
	name string
	next Logger
}

// Named returns a logger that tags messages with "name: " before passing
// them to l. A nil l means the process-wide Default.
func Named(l Logger, name string) Logger {
	if l == nil {
		l = Default()
	}
	if _, ok := l.(noopLogger); ok {
		return l
	}
	return &named{name: name, next: l}
}

func (n *named) Debug(format string, args ...any) { n.next.Debug(n.name+": "+format, args...) }
func (n *named) Info(format string, args ...any)  { n.next.Info(n.name+": "+format, args...) }
func (n *named) Warn(format string, args ...any)  { n.next.Warn(n.name+": "+format, args...) }
func (n *named) Error(format string, args ...any) { n.next.Error(n.name+": "+format, args...) }

// LogMessage is one captured line.
type LogMessage struct {
	Level   string
	Message string
}

// BufferLogger captures messages for tests. Safe for concurrent use.
type BufferLogger struct {
	mu       sync.Mutex
	messages []LogMessage
}

// NewBufferLogger returns an empty BufferLogger.
func NewBufferLogger() *BufferLogger {
	return &BufferLogger{}
}

func (l *BufferLogger) add(level, format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.messages = append(l.messages, LogMessage{Level: level, Message: fmt.Sprintf(format, args...)})
}

func (l *BufferLogger) Debug(format string, args ...any) { l.add("debug", format, args...) }
func (l *BufferLogger) Info(format string, args ...any)  { l.add("info", format, args...) }
func (l *BufferLogger) Warn(format string, args ...any)  { l.add("warn", format, args...) }
func (l *BufferLogger) Error(format string, args ...any) { l.add("error", format, args...) }

// Messages returns a copy of everything captured so far.
func (l *BufferLogger) Messages() []LogMessage {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]LogMessage(nil), l.messages...)
}

// HasLevel reports whether anything was logged at level.
func (l *BufferLogger) HasLevel(level string) bool {
	_, ok := l.Find(level, "")
	return ok
}

// Find returns the first message at level containing substr.
func (l *BufferLogger) Find(level, substr string) (LogMessage, bool) {
	for _, m := range l.Messages() {
		if m.Level == level && strings.Contains(m.Message, substr) {
			return m, true
		}
	}
	return LogMessage{}, false
}

// Clear drops all captured messages.
func (l *BufferLogger) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.messages = nil
}

var (
	defaultMu     sync.RWMutex
	defaultLogger = NewEnvLogger("")
)

// Default returns the process-wide logger.
func Default() Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

// SetDefault replaces the process-wide logger.
func SetDefault(l Logger) {
	if l == nil {
		l = Noop()
	}
	defaultMu.Lock()
	defaultLogger = l
	defaultMu.Unlock()
}
