package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// LogFilePath is the default log file, relative to the working directory.
const LogFilePath = "logs/globe.txt"

// maxLines bounds the in-memory history shown by the console; the file keeps everything.
const maxLines = 500

// Logger keeps recent lines in memory and appends every line to a file on disk.
// It is safe for concurrent use; texture decoders log from their own goroutines.
type Logger struct {
	mu    sync.Mutex
	path  string
	lines []string
	now   func() time.Time
}

// New returns a Logger writing to path and ensures its directory exists.
// An empty path keeps lines in memory only.
func New(path string) *Logger {
	if path != "" {
		_ = os.MkdirAll(filepath.Dir(path), 0755)
	}
	return &Logger{path: path, now: time.Now}
}

// Log records line prefixed with [timestamp] and appends it to the log file.
// File errors are dropped; the in-memory copy is always kept.
func (l *Logger) Log(line string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	stamped := "[" + l.now().Format("2006-01-02 15:04:05") + "] " + line
	l.lines = append(l.lines, stamped)
	if len(l.lines) > maxLines {
		l.lines = append(l.lines[:0], l.lines[len(l.lines)-maxLines:]...)
	}

	if l.path == "" {
		return
	}
	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return
	}
	_, _ = f.WriteString(stamped + "\n")
	_ = f.Close()
}

// Logf formats and logs a line.
func (l *Logger) Logf(format string, args ...any) {
	l.Log(fmt.Sprintf(format, args...))
}

// Lines returns a copy of the retained lines, oldest first.
func (l *Logger) Lines() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, len(l.lines))
	copy(out, l.lines)
	return out
}
