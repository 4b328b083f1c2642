// Package compat adapts alog writers to third-party logger interfaces.
package compat

import (
	"fmt"
	"os"

	"github.com/panjf2000/gnet/v2/pkg/logging"

	"github.com/varkala/alog"
)

// Interface satisfaction check
var _ logging.Logger = (*GnetAdapter)(nil)

// GnetAdapter implements the gnet logging.Logger interface on top of
// one-shot alog writers, one record per call.
type GnetAdapter struct {
	tag          string
	fatalHandler func(msg string) // Customizable fatal behavior
}

// NewGnetAdapter creates a new gnet-compatible logger adapter
func NewGnetAdapter(opts ...GnetOption) *GnetAdapter {
	adapter := &GnetAdapter{
		tag: "gnet",
		fatalHandler: func(msg string) {
			os.Exit(1) // Default behavior matches gnet expectations
		},
	}

	for _, opt := range opts {
		opt(adapter)
	}

	return adapter
}

// GnetOption allows customizing adapter behavior
type GnetOption func(*GnetAdapter)

// WithGnetTag sets the tag records are delivered under
func WithGnetTag(tag string) GnetOption {
	return func(a *GnetAdapter) {
		a.tag = tag
	}
}

// WithFatalHandler sets a custom fatal handler
func WithFatalHandler(handler func(string)) GnetOption {
	return func(a *GnetAdapter) {
		a.fatalHandler = handler
	}
}

func (a *GnetAdapter) logf(prio alog.Priority, format string, args ...any) {
	w := alog.NewWriter(a.tag, prio)
	fmt.Fprintf(w, format, args...)
	_ = w.Close()
}

// Debugf logs at DEBUG priority with printf-style formatting
func (a *GnetAdapter) Debugf(format string, args ...any) {
	a.logf(alog.PriorityDebug, format, args...)
}

// Infof logs at INFO priority with printf-style formatting
func (a *GnetAdapter) Infof(format string, args ...any) {
	a.logf(alog.PriorityInfo, format, args...)
}

// Warnf logs at WARN priority with printf-style formatting
func (a *GnetAdapter) Warnf(format string, args ...any) {
	a.logf(alog.PriorityWarn, format, args...)
}

// Errorf logs at ERROR priority with printf-style formatting
func (a *GnetAdapter) Errorf(format string, args ...any) {
	a.logf(alog.PriorityError, format, args...)
}

// Fatalf logs at FATAL priority and triggers the fatal handler.
// The record is flushed by the one-shot writer before the handler runs.
func (a *GnetAdapter) Fatalf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	a.logf(alog.PriorityFatal, "%s", msg)

	if a.fatalHandler != nil {
		a.fatalHandler(msg)
	}
}
