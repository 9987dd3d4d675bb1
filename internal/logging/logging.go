// Package logging provides a JSON-lines diagnostic event logger.
//
// Every degraded path in the scheduling core (storage failures, rejected
// drop targets, malformed stored data) reports here instead of failing the
// session.
package logging

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Logger writes structured events to a file. The zero value and Nop() are
// safe no-op loggers.
type Logger struct {
	mu   sync.Mutex
	file *os.File
	seq  int
}

// Nop returns a disabled logger.
func Nop() *Logger {
	return &Logger{}
}

// Open creates a logger writing to path. The parent directory is created
// if missing.
func Open(path string) (*Logger, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	return &Logger{file: f}, nil
}

// Close closes the underlying file, if any.
func (l *Logger) Close() error {
	if l == nil || l.file == nil {
		return nil
	}
	return l.file.Close()
}

// Event writes one structured entry.
func (l *Logger) Event(event string, fields map[string]any) {
	if l == nil || l.file == nil {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.seq++
	entry := map[string]any{
		"seq":   l.seq,
		"ts":    time.Now().Format(time.RFC3339),
		"event": event,
	}
	for k, v := range fields {
		entry[k] = v
	}

	b, _ := json.Marshal(entry)
	_, _ = fmt.Fprintf(l.file, "%s\n", b)
}

// Error records a failure with its context.
func (l *Logger) Error(context string, err error) {
	if err == nil {
		return
	}
	l.Event("ERROR", map[string]any{
		"context": context,
		"error":   err.Error(),
	})
}
