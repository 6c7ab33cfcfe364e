package actlog

import (
	"strconv"
	"time"
)

// Elapsed returns end minus start as seconds with exactly six fractional
// digits. Negative spans clamp to zero; the duration of an activity is
// never reported as negative.
func Elapsed(start, end Timestamp) string {
	d := end.t.Sub(start.t)
	if d < 0 {
		d = 0
	}
	return formatSeconds(d)
}

func formatSeconds(d time.Duration) string {
	return strconv.FormatFloat(d.Seconds(), 'f', 6, 64)
}
