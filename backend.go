package actlog

import (
	"io"
	"log"
	"os"
)

// Backend receives fully formatted messages at a severity. It owns
// level filtering, handler dispatch, and output; the formatting core
// never writes to a transport directly. Implementations must be safe
// for concurrent use if the formatter is shared across goroutines —
// the core adds no synchronization of its own.
type Backend interface {
	Emit(sev Severity, msg string)
}

// NopBackend discards every emission.
type NopBackend struct{}

// Emit implements Backend.
func (NopBackend) Emit(Severity, string) {}

// WriterBackendOptions controls a WriterBackend.
type WriterBackendOptions struct {
	// MinSeverity is the lowest severity the backend will write. The
	// zero value is InfoSeverity.
	MinSeverity Severity

	// NoColor forces colour escape codes off regardless of terminal
	// detection. Setting the NO_COLOR environment variable disables
	// colour auto-detection too, but not ForceColor.
	NoColor bool

	// ForceColor bypasses terminal detection and colours the severity
	// tag even when the destination is not a TTY.
	ForceColor bool
}

// WriterBackend writes each message to an io.Writer as a single line
// prefixed with a three-letter severity tag. The tag is coloured when
// the writer is a terminal. It does not manage the writer's lifecycle.
type WriterBackend struct {
	w     io.Writer
	min   Severity
	color bool
}

// NewWriterBackend returns a WriterBackend with default options.
func NewWriterBackend(w io.Writer) *WriterBackend {
	return NewWriterBackendWithOptions(w, WriterBackendOptions{})
}

// NewWriterBackendWithOptions returns a WriterBackend with explicit
// settings. A nil writer discards all output.
func NewWriterBackendWithOptions(w io.Writer, opts WriterBackendOptions) *WriterBackend {
	if w == nil {
		w = io.Discard
	}
	color := !opts.NoColor && (opts.ForceColor || (os.Getenv("NO_COLOR") == "" && isTerminal(w)))
	return &WriterBackend{w: w, min: opts.MinSeverity, color: color}
}

// Emit implements Backend. Emissions below the minimum severity are
// dropped; everything else is written as one Write call so lines stay
// intact under concurrent use when the writer is line-atomic.
func (b *WriterBackend) Emit(sev Severity, msg string) {
	if sev < b.min {
		return
	}
	tag := severityTag(sev)
	buf := make([]byte, 0, len(tag)+len(msg)+12)
	if b.color {
		buf = append(buf, severityColor(sev)...)
		buf = append(buf, tag...)
		buf = append(buf, ansiReset...)
	} else {
		buf = append(buf, tag...)
	}
	buf = append(buf, ' ')
	buf = append(buf, msg...)
	buf = append(buf, '\n')
	_, _ = b.w.Write(buf)
}

func severityTag(sev Severity) string {
	switch sev {
	case TraceSeverity:
		return "TRC"
	case DebugSeverity:
		return "DBG"
	case InfoSeverity:
		return "INF"
	case WarnSeverity:
		return "WRN"
	case ErrorSeverity:
		return "ERR"
	case FatalSeverity:
		return "FTL"
	default:
		return "INF"
	}
}

const ansiReset = "\x1b[0m"

func severityColor(sev Severity) string {
	switch sev {
	case TraceSeverity:
		return "\x1b[35m"
	case DebugSeverity:
		return "\x1b[33m"
	case WarnSeverity:
		return "\x1b[31m"
	case ErrorSeverity, FatalSeverity:
		return "\x1b[1m\x1b[31m"
	default:
		return "\x1b[32m"
	}
}

// LogBackend bridges to the standard library by emitting each message
// through a *log.Logger as "[severity] message", so downstream line
// classifiers can recover the level.
type LogBackend struct {
	logger *log.Logger
}

// NewLogBackend wraps logger into a Backend. A nil logger yields a
// backend writing to the stdlib default logger.
func NewLogBackend(logger *log.Logger) *LogBackend {
	if logger == nil {
		logger = log.Default()
	}
	return &LogBackend{logger: logger}
}

// Emit implements Backend.
func (b *LogBackend) Emit(sev Severity, msg string) {
	b.logger.Printf("[%s] %s", SeverityString(sev), msg)
}
