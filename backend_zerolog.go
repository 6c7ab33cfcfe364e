package actlog

import (
	"github.com/rs/zerolog"
)

// ZerologBackend adapts a zerolog.Logger into a Backend. Level
// filtering stays with zerolog; fatal emissions go through WithLevel
// and therefore do not terminate the process.
type ZerologBackend struct {
	logger zerolog.Logger
}

// NewZerologBackend wraps logger into a Backend.
func NewZerologBackend(logger zerolog.Logger) *ZerologBackend {
	return &ZerologBackend{logger: logger}
}

// Emit implements Backend.
func (b *ZerologBackend) Emit(sev Severity, msg string) {
	b.logger.WithLevel(zerologLevel(sev)).Msg(msg)
}

func zerologLevel(sev Severity) zerolog.Level {
	switch sev {
	case TraceSeverity:
		return zerolog.TraceLevel
	case DebugSeverity:
		return zerolog.DebugLevel
	case InfoSeverity:
		return zerolog.InfoLevel
	case WarnSeverity:
		return zerolog.WarnLevel
	case ErrorSeverity:
		return zerolog.ErrorLevel
	case FatalSeverity:
		return zerolog.FatalLevel
	default:
		return zerolog.InfoLevel
	}
}
