// Package logging defines the error-sink interface the playback controller
// reports through. The library stays standalone: hosts plug in their own
// logger, tests use NoOp, and the default writes to stderr.
package logging

import (
	"fmt"
	"log"
	"os"
	"sort"
)

// Fields carries structured context for a log entry.
type Fields map[string]any

// Logger is the minimal sink the library expects.
type Logger interface {
	Info(msg string, fields ...Fields)
	Warn(msg string, fields ...Fields)
	Error(err error, msg string, fields ...Fields)
}

// NewDefaultLogger returns a Logger writing to stderr.
func NewDefaultLogger() Logger {
	return &defaultLogger{out: log.New(os.Stderr, "", log.LstdFlags)}
}

type defaultLogger struct {
	out *log.Logger
}

func (l *defaultLogger) Info(msg string, fields ...Fields) {
	l.out.Printf("INFO %s%s", msg, formatFields(fields))
}

func (l *defaultLogger) Warn(msg string, fields ...Fields) {
	l.out.Printf("WARN %s%s", msg, formatFields(fields))
}

func (l *defaultLogger) Error(err error, msg string, fields ...Fields) {
	if err != nil {
		l.out.Printf("ERROR %s: %v%s", msg, err, formatFields(fields))
		return
	}
	l.out.Printf("ERROR %s%s", msg, formatFields(fields))
}

// NoOp discards all log entries.
type NoOp struct{}

func (NoOp) Info(msg string, fields ...Fields)             {}
func (NoOp) Warn(msg string, fields ...Fields)             {}
func (NoOp) Error(err error, msg string, fields ...Fields) {}

func formatFields(fields []Fields) string {
	merged := Fields{}
	for _, f := range fields {
		for k, v := range f {
			merged[k] = v
		}
	}
	if len(merged) == 0 {
		return ""
	}

	keys := make([]string, 0, len(merged))
	for k := range merged {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := ""
	for _, k := range keys {
		out += fmt.Sprintf(" %s=%v", k, merged[k])
	}
	return out
}
