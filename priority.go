package alog

import (
	"fmt"
	"strings"
)

// Priority is the severity attached to every record a writer delivers.
// The numeric values match the android_LogPriority enum consumed by
// __android_log_write.
type Priority int32

// Log priority constants
const (
	PriorityUnknown Priority = iota // For internal use only
	PriorityDefault                 // The default priority, for internal use only
	PriorityVerbose
	PriorityDebug
	PriorityInfo
	PriorityWarn  // For use with recoverable failures
	PriorityError // For use with unrecoverable failures
	PriorityFatal // For use when aborting
	PrioritySilent
)

// String returns the conventional upper-case name of the priority.
func (p Priority) String() string {
	switch p {
	case PriorityUnknown:
		return "UNKNOWN"
	case PriorityDefault:
		return "DEFAULT"
	case PriorityVerbose:
		return "VERBOSE"
	case PriorityDebug:
		return "DEBUG"
	case PriorityInfo:
		return "INFO"
	case PriorityWarn:
		return "WARN"
	case PriorityError:
		return "ERROR"
	case PriorityFatal:
		return "FATAL"
	case PrioritySilent:
		return "SILENT"
	default:
		return fmt.Sprintf("PRIORITY(%d)", int32(p))
	}
}

// letter returns the single-character logcat marker for the priority,
// used by the fallback sink's line format.
func (p Priority) letter() byte {
	switch p {
	case PriorityVerbose:
		return 'V'
	case PriorityDebug:
		return 'D'
	case PriorityInfo:
		return 'I'
	case PriorityWarn:
		return 'W'
	case PriorityError:
		return 'E'
	case PriorityFatal:
		return 'F'
	case PrioritySilent:
		return 'S'
	default:
		return '?'
	}
}

// valid reports whether the priority is within the enumerated range.
func (p Priority) valid() bool {
	return p >= PriorityUnknown && p <= PrioritySilent
}

// ParsePriority converts a priority name to its numeric constant.
func ParsePriority(s string) (Priority, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "unknown":
		return PriorityUnknown, nil
	case "default":
		return PriorityDefault, nil
	case "verbose":
		return PriorityVerbose, nil
	case "debug":
		return PriorityDebug, nil
	case "info":
		return PriorityInfo, nil
	case "warn":
		return PriorityWarn, nil
	case "error":
		return PriorityError, nil
	case "fatal":
		return PriorityFatal, nil
	case "silent":
		return PrioritySilent, nil
	default:
		return 0, fmtErrorf("invalid priority string: '%s' (use verbose, debug, info, warn, error, fatal, or silent)", s)
	}
}
