//go:build !android

package alog

import "os"

const platformHasLogger = false

var stderrSink = writerSink(os.Stderr)

// platformSink emulates logcat output on stderr for builds without the
// platform logger, so the library stays usable in tests and host tools.
func platformSink(prio Priority, tag, msg []byte) int32 {
	return stderrSink(prio, tag, msg)
}
