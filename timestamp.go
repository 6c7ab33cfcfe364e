package actlog

import (
	"time"
)

// Timestamp is an opaque wall-clock instant returned by Event and Start.
// The caller holds it for the lifetime of an activity and hands it back
// to End; the core never stores one beyond the call that produced it.
// The zero Timestamp means "no start handle" and makes End skip duration
// computation.
type Timestamp struct {
	t time.Time
}

// Time returns the underlying wall-clock time.
func (ts Timestamp) Time() time.Time { return ts.t }

// IsZero reports whether ts is the zero Timestamp.
func (ts Timestamp) IsZero() bool { return ts.t.IsZero() }

// formatTimestamp renders t as ISO-8601 local time with a microsecond
// fraction. The fraction is omitted when it is exactly zero, matching
// the historical display format.
func formatTimestamp(t time.Time) string {
	prefix := isoPrefixCache.prefix(t)
	micro := t.Nanosecond() / 1e3
	if micro == 0 {
		return prefix
	}
	buf := make([]byte, 0, len(prefix)+7)
	buf = append(buf, prefix...)
	buf = append(buf, '.')
	buf = appendSixDigits(buf, micro)
	return string(buf)
}

// appendISOSeconds renders the seconds-resolution prefix
// (2006-01-02T15:04:05) of t in its own location.
func appendISOSeconds(buf []byte, t time.Time) []byte {
	year, month, day := t.Date()
	hour, min, sec := t.Clock()
	buf = appendFourDigits(buf, year)
	buf = append(buf, '-')
	buf = appendTwoDigits(buf, int(month))
	buf = append(buf, '-')
	buf = appendTwoDigits(buf, day)
	buf = append(buf, 'T')
	buf = appendTwoDigits(buf, hour)
	buf = append(buf, ':')
	buf = appendTwoDigits(buf, min)
	buf = append(buf, ':')
	buf = appendTwoDigits(buf, sec)
	return buf
}

func appendTwoDigits(buf []byte, v int) []byte {
	return append(buf, byte('0'+v/10), byte('0'+v%10))
}

func appendFourDigits(buf []byte, v int) []byte {
	buf = appendTwoDigits(buf, v/100)
	return appendTwoDigits(buf, v%100)
}

func appendSixDigits(buf []byte, v int) []byte {
	buf = appendTwoDigits(buf, v/10000)
	v %= 10000
	buf = appendTwoDigits(buf, v/100)
	return appendTwoDigits(buf, v%100)
}
