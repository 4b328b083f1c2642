//go:build android

package alog

/*
#cgo LDFLAGS: -llog
#include <android/log.h>
*/
import "C"

import "unsafe"

const platformHasLogger = true

// platformSink hands the record to liblog. tag and msg are NUL-terminated
// by the writer, satisfying the C string contract; the pointers are not
// retained past the call.
func platformSink(prio Priority, tag, msg []byte) int32 {
	return int32(C.__android_log_write(
		C.int(prio),
		(*C.char)(unsafe.Pointer(&tag[0])),
		(*C.char)(unsafe.Pointer(&msg[0])),
	))
}
