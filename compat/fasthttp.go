package compat

import (
	"fmt"
	"strings"

	"github.com/valyala/fasthttp"

	"github.com/varkala/alog"
)

// Interface satisfaction check
var _ fasthttp.Logger = (*FastHTTPAdapter)(nil)

// FastHTTPAdapter implements the fasthttp Logger interface on top of
// one-shot alog writers
type FastHTTPAdapter struct {
	tag              string
	defaultPriority  alog.Priority
	priorityDetector func(string) alog.Priority // Function to detect priority from message
}

// NewFastHTTPAdapter creates a new fasthttp-compatible logger adapter
func NewFastHTTPAdapter(opts ...FastHTTPOption) *FastHTTPAdapter {
	adapter := &FastHTTPAdapter{
		tag:              "fasthttp",
		defaultPriority:  alog.PriorityInfo,
		priorityDetector: DetectPriority, // Default priority detection
	}

	for _, opt := range opts {
		opt(adapter)
	}

	return adapter
}

// FastHTTPOption allows customizing adapter behavior
type FastHTTPOption func(*FastHTTPAdapter)

// WithFastHTTPTag sets the tag records are delivered under
func WithFastHTTPTag(tag string) FastHTTPOption {
	return func(a *FastHTTPAdapter) {
		a.tag = tag
	}
}

// WithDefaultPriority sets the default priority for Printf calls
func WithDefaultPriority(prio alog.Priority) FastHTTPOption {
	return func(a *FastHTTPAdapter) {
		a.defaultPriority = prio
	}
}

// WithPriorityDetector sets a custom function to detect priority from message content
func WithPriorityDetector(detector func(string) alog.Priority) FastHTTPOption {
	return func(a *FastHTTPAdapter) {
		a.priorityDetector = detector
	}
}

// Printf implements fasthttp's Logger interface
func (a *FastHTTPAdapter) Printf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)

	// Detect priority from message content
	prio := a.defaultPriority
	if a.priorityDetector != nil {
		if detected := a.priorityDetector(msg); detected != alog.PriorityUnknown {
			prio = detected
		}
	}

	w := alog.NewWriter(a.tag, prio)
	_, _ = w.WriteString(msg)
	_ = w.Close()
}

// DetectPriority attempts to detect a log priority from message content.
// Returns PriorityUnknown when nothing matches so callers can fall back.
func DetectPriority(msg string) alog.Priority {
	msgLower := strings.ToLower(msg)

	// Check for error indicators
	if strings.Contains(msgLower, "error") ||
		strings.Contains(msgLower, "failed") ||
		strings.Contains(msgLower, "fatal") ||
		strings.Contains(msgLower, "panic") {
		return alog.PriorityError
	}

	// Check for warning indicators
	if strings.Contains(msgLower, "warn") ||
		strings.Contains(msgLower, "warning") ||
		strings.Contains(msgLower, "deprecated") {
		return alog.PriorityWarn
	}

	// Check for debug indicators
	if strings.Contains(msgLower, "debug") ||
		strings.Contains(msgLower, "trace") {
		return alog.PriorityDebug
	}

	return alog.PriorityUnknown
}
