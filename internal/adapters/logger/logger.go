// Package logger implements ports.Logger on top of log/slog.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"strings"
	"sync"

	"go.trai.ch/dataloader/internal/core/domain"
	"go.trai.ch/dataloader/internal/ui/style"
)

// chainLink is an error that reports its own message and metadata without the chain,
// which is what zerr.Error provides.
type chainLink interface {
	Message() string
	Metadata() map[string]any
	Unwrap() error
}

// Logger implements ports.Logger using log/slog.
type Logger struct {
	logger   *slog.Logger
	mu       sync.RWMutex
	jsonMode bool
	output   io.Writer
}

// New creates a Logger writing pretty output to stderr.
func New() *Logger {
	l := &Logger{output: os.Stderr}
	l.logger = slog.New(l.handler())
	return l
}

// SetOutput changes the destination and keeps the current format. A nil writer means stderr.
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if w == nil {
		w = os.Stderr
	}
	l.output = w
	l.logger = slog.New(l.handler())
}

// SetJSON switches between JSON and pretty output.
func (l *Logger) SetJSON(enable bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.jsonMode = enable
	l.logger = slog.New(l.handler())
}

// SetFormat applies a resolved log format. Auto leaves the current format untouched.
func (l *Logger) SetFormat(format domain.LogFormat) {
	switch format {
	case domain.LogFormatJSON:
		l.SetJSON(true)
	case domain.LogFormatPretty:
		l.SetJSON(false)
	}
}

// handler must be called with mu held.
func (l *Logger) handler() slog.Handler {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	if l.jsonMode {
		return slog.NewJSONHandler(l.output, opts)
	}
	return NewPrettyHandler(l.output, opts)
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Info(msg)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Warn(msg)
}

// Error logs err with its cause chain. Nil errors are ignored.
func (l *Logger) Error(err error) {
	if err == nil {
		return
	}

	l.mu.RLock()
	defer l.mu.RUnlock()

	if l.jsonMode {
		l.logger.Error("operation failed", "error", err)
		return
	}
	l.logger.Error(formatErrorEntries(collectErrorEntries(err)))
}

// errorEntry is one printed level of an error chain.
type errorEntry struct {
	message string
	fields  []string
}

// collectErrorEntries walks the chain while links report their own message.
// Metadata from links with an empty message is carried to the next printed entry.
func collectErrorEntries(err error) []errorEntry {
	var entries []errorEntry
	var pending []string

	for current := err; current != nil; {
		link, ok := current.(chainLink)
		if !ok {
			entries = append(entries, errorEntry{message: current.Error(), fields: pending})
			pending = nil
			break
		}

		pending = append(pending, metadataFields(link.Metadata())...)
		if link.Message() != "" {
			entries = append(entries, errorEntry{message: link.Message(), fields: pending})
			pending = nil
		}
		current = link.Unwrap()
	}

	if len(pending) > 0 && len(entries) > 0 {
		last := &entries[len(entries)-1]
		last.fields = append(last.fields, pending...)
	}
	return entries
}

func metadataFields(meta map[string]any) []string {
	keys := make([]string, 0, len(meta))
	for k := range meta {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	fields := make([]string, 0, len(keys))
	for _, k := range keys {
		fields = append(fields, fmt.Sprintf("%s=%v", k, meta[k]))
	}
	return fields
}

// formatErrorEntries renders the first entry as the error and the rest as causes.
func formatErrorEntries(entries []errorEntry) string {
	var lines []string

	for i, entry := range entries {
		msgLines := strings.Split(entry.message, "\n")
		if len(entry.fields) > 0 {
			msgLines[0] += " (" + strings.Join(entry.fields, ", ") + ")"
		}

		if i == 0 {
			lines = append(lines, "Error: "+msgLines[0])
			for _, line := range msgLines[1:] {
				lines = append(lines, "       "+line)
			}
			continue
		}

		if i == 1 {
			lines = append(lines, "", "  Caused by:")
		}
		lines = append(lines, "    "+style.Arrow+" "+msgLines[0])
		for _, line := range msgLines[1:] {
			lines = append(lines, "      "+line)
		}
	}

	return strings.Join(lines, "\n")
}
