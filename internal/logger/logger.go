// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger wraps zerolog for the catalog server.
//
// *Logger embeds zerolog.Logger, so Debug, Info, Err and the rest are called
// on it directly. Request handling code never keeps its own logger: it reads
// the request-scoped one, which carries the trace id, with FromRequest or
// FromContext.
package logger

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	roleField    = "role"
	traceIDField = "trace_id"
)

type Logger struct {
	zerolog.Logger
}

// NewLogger returns a JSON logger writing to os.Stdout. See New.
func NewLogger(role string) *Logger {
	return New(os.Stdout, role)
}

// New returns a logger writing JSON entries to w. Each entry carries the
// role, a timestamp and the calling function under "func". The global level
// is reset to Debug; SetLevel raises it once configuration is loaded.
func New(w io.Writer, role string) *Logger {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	zerolog.CallerFieldName = "func"
	zerolog.CallerMarshalFunc = func(pc uintptr, _ string, _ int) string {
		return runtime.FuncForPC(pc).Name()
	}

	return &Logger{zerolog.New(w).With().
		Str(roleField, role).
		Timestamp().
		Caller().
		Logger()}
}

// SetLevel sets the global level by name. An empty name keeps the current one.
func SetLevel(name string) error {
	if name == "" {
		return nil
	}

	level, err := zerolog.ParseLevel(name)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", name, err)
	}
	zerolog.SetGlobalLevel(level)

	return nil
}

func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger copies the receiver so fields added to the child stay local.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// WithTraceID returns a child logger tagged with the request trace id.
func (l *Logger) WithTraceID(traceID string) *Logger {
	return &Logger{l.With().Str(traceIDField, traceID).Logger()}
}

// FromRequest returns the logger stored in the request context.
func FromRequest(r *http.Request) *Logger {
	return FromContext(r.Context())
}

// FromContext returns the logger stored in ctx, or zerolog's default
// context logger when there is none. It never returns nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
