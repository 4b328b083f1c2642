package alog

import (
	"bytes"
	"fmt"
	"strings"
)

// fmtErrorf wrapper
func fmtErrorf(format string, args ...any) error {
	if !strings.HasPrefix(format, "alog: ") {
		format = "alog: " + format
	}
	return fmt.Errorf(format, args...)
}

// cstr returns b up to but excluding its first NUL, or all of b when no
// terminator is present.
func cstr(b []byte) []byte {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		return b[:i]
	}
	return b
}
