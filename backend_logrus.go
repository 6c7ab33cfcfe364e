package actlog

import (
	"github.com/sirupsen/logrus"
)

// LogrusBackend adapts a logrus.Logger into a Backend. Level filtering
// stays with logrus; fatal emissions go through Logger.Log and
// therefore do not invoke logrus's exit handling.
type LogrusBackend struct {
	logger *logrus.Logger
}

// NewLogrusBackend wraps logger into a Backend. A nil logger yields a
// backend over logrus.StandardLogger.
func NewLogrusBackend(logger *logrus.Logger) *LogrusBackend {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &LogrusBackend{logger: logger}
}

// Emit implements Backend.
func (b *LogrusBackend) Emit(sev Severity, msg string) {
	b.logger.Log(logrusLevel(sev), msg)
}

func logrusLevel(sev Severity) logrus.Level {
	switch sev {
	case TraceSeverity:
		return logrus.TraceLevel
	case DebugSeverity:
		return logrus.DebugLevel
	case InfoSeverity:
		return logrus.InfoLevel
	case WarnSeverity:
		return logrus.WarnLevel
	case ErrorSeverity:
		return logrus.ErrorLevel
	case FatalSeverity:
		return logrus.FatalLevel
	default:
		return logrus.InfoLevel
	}
}
