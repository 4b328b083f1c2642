package alog

import (
	"fmt"
	"io"
	"sync/atomic"
)

// Sink delivers one priority-tagged record to the logging backend.
//
// tag and msg are NUL-terminated byte slices reused by the caller
// immediately after the call returns; implementations must not retain
// them. The returned status code is ignored by Writer. Sinks are invoked
// from whichever goroutine owns the writer and must tolerate concurrent
// calls from distinct writers.
type Sink func(prio Priority, tag, msg []byte) int32

// Process-wide default, captured by writers at construction.
var defaultSink atomic.Value // stores Sink

func init() {
	defaultSink.Store(Sink(platformSink))
}

// SetDefaultSink replaces the sink new writers capture. Existing writers
// keep the sink they were built with.
func SetDefaultSink(s Sink) error {
	if s == nil {
		return fmtErrorf("sink cannot be nil")
	}
	defaultSink.Store(s)
	return nil
}

// DefaultSink returns the sink new writers capture.
func DefaultSink() Sink {
	return defaultSink.Load().(Sink)
}

// writerSink adapts an io.Writer into a Sink emitting logcat-style lines,
// e.g. "W/NetStack: handshake failed".
func writerSink(w io.Writer) Sink {
	return func(prio Priority, tag, msg []byte) int32 {
		if _, err := fmt.Fprintf(w, "%c/%s: %s\n", prio.letter(), cstr(tag), cstr(msg)); err != nil {
			return -1
		}
		return 0
	}
}

// discardSink drops every record.
func discardSink(Priority, []byte, []byte) int32 {
	return 0
}
