package alog

import "os"

// Builder provides a fluent API for constructing writers.
// Errors from string conversions are accumulated and surfaced by Build.
type Builder struct {
	tag  string
	prio Priority
	sink Sink
	err  error // Accumulate errors for deferred handling
}

// NewBuilder creates a new writer builder with default values.
func NewBuilder() *Builder {
	return &Builder{
		tag:  DefaultTag,
		prio: PriorityInfo,
	}
}

// Tag sets the record tag.
func (b *Builder) Tag(tag string) *Builder {
	b.tag = tag
	return b
}

// Priority sets the record priority.
func (b *Builder) Priority(prio Priority) *Builder {
	if b.err != nil {
		return b
	}
	if !prio.valid() {
		b.err = fmtErrorf("priority out of range: %d", int32(prio))
		return b
	}
	b.prio = prio
	return b
}

// PriorityString sets the record priority from a name.
func (b *Builder) PriorityString(prio string) *Builder {
	if b.err != nil {
		return b
	}
	p, err := ParsePriority(prio)
	if err != nil {
		b.err = err
		return b
	}
	b.prio = p
	return b
}

// Sink sets a per-writer sink, overriding the process-wide default.
func (b *Builder) Sink(s Sink) *Builder {
	if b.err != nil {
		return b
	}
	if s == nil {
		b.err = fmtErrorf("sink cannot be nil")
		return b
	}
	b.sink = s
	return b
}

// FromConfig applies a configuration to the builder. On platforms without
// the native logger the config's fallback target selects the sink; where
// liblog exists the fallback setting is ignored.
func (b *Builder) FromConfig(cfg *Config) *Builder {
	if b.err != nil {
		return b
	}
	if cfg == nil {
		b.err = fmtErrorf("configuration cannot be nil")
		return b
	}
	if err := cfg.validate(); err != nil {
		b.err = err
		return b
	}

	b.tag = cfg.Tag
	b.prio, _ = ParsePriority(cfg.Priority) // validated above

	if !platformHasLogger {
		switch cfg.Fallback {
		case "stdout":
			b.sink = writerSink(os.Stdout)
		case "discard":
			b.sink = discardSink
		default:
			b.sink = writerSink(os.Stderr)
		}
	}

	return b
}

// Build creates a new Writer with the accumulated settings.
func (b *Builder) Build() (*Writer, error) {
	if b.err != nil {
		return nil, b.err
	}

	w := NewWriter(b.tag, b.prio)
	if b.sink != nil {
		w.sink = b.sink
	}
	return w, nil
}

// NewWriterFromConfig constructs a writer directly from a configuration.
func NewWriterFromConfig(cfg *Config) (*Writer, error) {
	return NewBuilder().FromConfig(cfg).Build()
}

// Example usage:
// w, err := alog.NewBuilder().
//
//	Tag("NetStack").
//	PriorityString("warn").
//	Build()
//
// if err == nil {
//
//	 defer w.Close()
//	 fmt.Fprintf(w, "handshake with %s failed", peer)
//
// }
