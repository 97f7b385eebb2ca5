package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// Logger writes records to an output stream and keeps a copy of every line in memory.
// When a log file is set, each line is also appended to it prefixed with [timestamp].
// The GL driver may deliver debug messages from its own thread, so all methods are safe
// for concurrent use.
type Logger struct {
	mu    sync.Mutex
	out   io.Writer
	path  string
	lines []string
}

// New returns a Logger writing to out. A nil out keeps lines in memory only.
func New(out io.Writer) *Logger {
	return &Logger{out: out, lines: make([]string, 0)}
}

// SetFile mirrors every following line to the file at path, creating its directory.
// An empty path turns mirroring off.
func (l *Logger) SetFile(path string) error {
	if path != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return err
		}
	}
	l.mu.Lock()
	l.path = path
	l.mu.Unlock()
	return nil
}

// Log writes line followed by a newline. Multi-line records are stored line by line.
func (l *Logger) Log(line string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.lines = append(l.lines, strings.Split(line, "\n")...)
	if l.out != nil {
		_, _ = io.WriteString(l.out, line+"\n")
	}
	if l.path == "" {
		return
	}
	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return
	}
	ts := time.Now().Format("2006-01-02 15:04:05")
	_, _ = f.WriteString("[" + ts + "] " + line + "\n")
	_ = f.Close()
}

// Logf formats according to a format specifier and logs the result.
func (l *Logger) Logf(format string, args ...any) {
	l.Log(fmt.Sprintf(format, args...))
}

// Lines returns a copy of all stored lines.
func (l *Logger) Lines() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, len(l.lines))
	copy(out, l.lines)
	return out
}
