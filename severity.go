package actlog

import (
	"os"
	"strings"
)

// Severity is the level at which a formatted message is handed to the
// Backend. The core never branches on it; filtering and interpretation
// belong to the backend collaborator.
type Severity int8

const (
	// TraceSeverity marks messages below DebugSeverity.
	TraceSeverity Severity = iota - 2
	// DebugSeverity marks diagnostic messages.
	DebugSeverity
	// InfoSeverity is the zero value and the module-wide default for
	// Event, Start, and End.
	InfoSeverity
	// WarnSeverity marks warning messages.
	WarnSeverity
	// ErrorSeverity marks error messages.
	ErrorSeverity
	// FatalSeverity marks fatal messages. Whether a fatal emission
	// terminates the process is up to the backend.
	FatalSeverity
)

// ParseSeverity converts a textual severity into a Severity value. It
// accepts "trace", "debug", "info", "warn", "warning", "error", "fatal"
// (case insensitive). The boolean reports whether the input was
// recognised; unrecognised input yields InfoSeverity.
func ParseSeverity(value string) (Severity, bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "trace":
		return TraceSeverity, true
	case "debug":
		return DebugSeverity, true
	case "info":
		return InfoSeverity, true
	case "warn", "warning":
		return WarnSeverity, true
	case "error":
		return ErrorSeverity, true
	case "fatal":
		return FatalSeverity, true
	default:
		return InfoSeverity, false
	}
}

// SeverityString returns the canonical string representation of a
// Severity.
func SeverityString(sev Severity) string {
	switch sev {
	case TraceSeverity:
		return "trace"
	case DebugSeverity:
		return "debug"
	case InfoSeverity:
		return "info"
	case WarnSeverity:
		return "warn"
	case ErrorSeverity:
		return "error"
	case FatalSeverity:
		return "fatal"
	default:
		return "info"
	}
}

// SeverityFromEnv looks up key in the environment and parses it into a
// Severity.
func SeverityFromEnv(key string) (Severity, bool) {
	if key == "" {
		return InfoSeverity, false
	}
	value, ok := os.LookupEnv(key)
	if !ok {
		return InfoSeverity, false
	}
	return ParseSeverity(value)
}
