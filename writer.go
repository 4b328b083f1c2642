// Package alog buffers fragmented text into single records for the Android
// log facility. A Writer accumulates writes in a fixed-size buffer and hands
// complete records to the platform sink, keeping memory bounded and sink
// calls to a minimum.
package alog

// Tag and buffer limits imposed by the platform logger. The kernel ring
// accepts a little over 4000 bytes per entry once logcat framing is
// accounted for, hence the conservative capacity.
const (
	// TagMaxLen is the number of usable tag bytes, terminator excluded.
	TagMaxLen = 23
	// BufferCapacity is the number of usable message bytes, terminator excluded.
	BufferCapacity = 4000
	// DefaultTag is the tag used by NewWriterDefault and the one-shot helpers.
	DefaultTag = "Alog"
)

// Writer accumulates one logical log record in a fixed-size buffer and
// delivers it to the sink when the buffer fills, on Flush, or on Close.
//
// A Writer belongs to a single goroutine and must not be copied after first
// use: a copy would duplicate the pending-flush responsibility. The same
// instance can be reused for further records after each flush. Writer never
// allocates on the write or flush path.
//
// Callers must Close the writer on every exit path; buffered bytes are
// otherwise lost.
type Writer struct {
	tag  [TagMaxLen + 1]byte
	prio Priority
	sink Sink
	buf  [BufferCapacity + 1]byte
	n    int // resident bytes, 0..BufferCapacity
}

// NewWriter returns a writer delivering records under the given tag and
// priority. Tags longer than TagMaxLen bytes are silently truncated; no
// encoding validation is performed.
func NewWriter(tag string, prio Priority) *Writer {
	w := &Writer{prio: prio, sink: DefaultSink()}
	n := min(len(tag), TagMaxLen)
	copy(w.tag[:n], tag)
	w.tag[n] = 0
	return w
}

// NewWriterDefault returns a writer using DefaultTag.
func NewWriterDefault(prio Priority) *Writer {
	return NewWriter(DefaultTag, prio)
}

// NewWriterRawTag returns a writer using the tag buffer verbatim.
//
// The buffer must contain a NUL terminator within its TagMaxLen+1 bytes.
// This is a caller contract, not a runtime check: an unterminated tag
// reaches the sink as an unbounded C string, which on the platform binding
// is undefined behavior.
func NewWriterRawTag(tag [TagMaxLen + 1]byte, prio Priority) *Writer {
	return &Writer{tag: tag, prio: prio, sink: DefaultSink()}
}

// Tag returns the stored tag as a string, terminator excluded.
func (w *Writer) Tag() string {
	return string(cstr(w.tag[:]))
}

// Priority returns the priority every record of this writer carries.
func (w *Writer) Priority() Priority {
	return w.prio
}

// Buffer returns the currently resident bytes. The view is read-only,
// invalidated by the next Write, Flush or Close, and intended for
// diagnostics; it never triggers delivery.
func (w *Writer) Buffer() []byte {
	return w.buf[:w.n]
}

// copyData copies the front of p into the remaining buffer space and
// returns the part that did not fit.
func (w *Writer) copyData(p []byte) []byte {
	c := min(BufferCapacity-w.n, len(p))
	copy(w.buf[w.n:], p[:c])
	w.n += c
	return p[c:]
}

// Write appends p to the pending record, flushing a full buffer to the sink
// as often as needed. Any length is accepted, including zero and lengths
// beyond the whole buffer capacity; at most ceil(len(p)/BufferCapacity)
// sink calls result. The returned error is always nil.
func (w *Writer) Write(p []byte) (int, error) {
	total := len(p)
	for {
		p = w.copyData(p)
		if len(p) == 0 {
			return total, nil
		}
		w.Flush()
	}
}

// WriteString appends s to the pending record. Behaves like Write without
// converting s to a byte slice.
func (w *Writer) WriteString(s string) (int, error) {
	total := len(s)
	for {
		c := min(BufferCapacity-w.n, len(s))
		copy(w.buf[w.n:], s[:c])
		w.n += c
		s = s[c:]
		if len(s) == 0 {
			return total, nil
		}
		w.Flush()
	}
}

// Flush delivers the resident bytes to the sink as one record and resets
// the buffer. An empty buffer is a no-op, so no blank records are emitted.
// The sink's status code is discarded; delivery is best effort.
func (w *Writer) Flush() {
	if w.n > 0 {
		w.innerFlush()
	}
}

// innerFlush terminates the resident bytes and performs the sink call.
// The terminator lives at buf[n] only for the duration of the call and
// never counts against capacity.
func (w *Writer) innerFlush() {
	w.buf[w.n] = 0
	s := w.sink
	if s == nil {
		s = DefaultSink()
	}
	s(w.prio, w.tag[:], w.buf[:w.n+1])
	w.n = 0
}

// Close flushes any resident bytes and retires the writer. It always
// returns nil; it exists so the guaranteed final flush can ride on defer
// and on io.Closer plumbing.
func (w *Writer) Close() error {
	w.Flush()
	return nil
}
