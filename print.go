package alog

import (
	"fmt"

	"github.com/davecgh/go-spew/spew"
)

// One-shot helpers: each call builds a writer, formats into it, and closes
// it, producing a single logical record. The fmt machinery may emit many
// small fragments; the writer coalesces them.

// Println writes its space-separated arguments at INFO priority under
// DefaultTag. With no arguments a single space is written so a line still
// appears.
func Println(args ...any) {
	w := NewWriterDefault(PriorityInfo)
	_, _ = w.WriteString(sprintln(args))
	_ = w.Close()
}

// Printf writes a formatted record at INFO priority under DefaultTag.
func Printf(format string, args ...any) {
	w := NewWriterDefault(PriorityInfo)
	fmt.Fprintf(w, format, args...)
	_ = w.Close()
}

// Eprintln writes its space-separated arguments at ERROR priority under
// DefaultTag. With no arguments a single space is written so a line still
// appears.
func Eprintln(args ...any) {
	w := NewWriterDefault(PriorityError)
	_, _ = w.WriteString(sprintln(args))
	_ = w.Close()
}

// Eprintf writes a formatted record at ERROR priority under DefaultTag.
func Eprintf(format string, args ...any) {
	w := NewWriterDefault(PriorityError)
	fmt.Fprintf(w, format, args...)
	_ = w.Close()
}

// Logf writes a formatted record under an explicit tag and priority.
func Logf(prio Priority, tag string, format string, args ...any) {
	w := NewWriter(tag, prio)
	fmt.Fprintf(w, format, args...)
	_ = w.Close()
}

// sprintln renders args the way fmt.Println would, without the trailing
// newline the log record does not want.
func sprintln(args []any) string {
	if len(args) == 0 {
		return " "
	}
	s := fmt.Sprintln(args...)
	return s[:len(s)-1]
}

// Dump writes a spew rendering of its arguments at DEBUG priority under
// DefaultTag, with type and size information for structs, maps and
// pointers. Intended for debugging, not production logging.
func Dump(args ...any) {
	w := NewWriterDefault(PriorityDebug)
	spew.Fdump(w, args...)
	_ = w.Close()
}
