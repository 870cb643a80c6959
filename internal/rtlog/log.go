// Copyright (c) 2026 The igra-converter Authors
//
// Use of this source code is governed by a license that can be
// found in the LICENSE file.

// Package rtlog provides the elapsed-time-prefixed logger used by the
// cmd/igra-converter binary. Library packages never import this; they
// report findings as values, not log lines.
package rtlog

import (
	"fmt"
	"log"
	"time"
)

// Log wraps a stdlib logger, prefixing each line with the time elapsed
// since the logger was created.
type Log struct {
	start  time.Time
	logger *log.Logger
}

// New creates a Log that starts its elapsed-time clock now.
func New() *Log {
	return &Log{start: time.Now(), logger: log.Default()}
}

// Print logs msg prefixed with the elapsed time.
func (l *Log) Print(msg string) {
	now := time.Now()
	t := uint64(now.Sub(l.start).Seconds())
	l.logger.Printf("[t=%4d:%02d] %s\n", t/60, t%60, msg)
}

// Printf formats and logs a message prefixed with the elapsed time.
func (l *Log) Printf(format string, v ...any) {
	l.Print(fmt.Sprintf(format, v...))
}
