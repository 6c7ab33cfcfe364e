package actlog

import (
	"sync/atomic"
	"time"
)

// secondCache memoises the seconds-resolution timestamp prefix. The
// microsecond fraction changes on every call, so there is nothing to
// gain from a background refresher; instead the cache is validated by
// unix second on each read and republished when it goes stale.
type secondCache struct {
	value atomic.Pointer[cachedPrefix]
}

type cachedPrefix struct {
	unix   int64
	offset int
	str    string
}

var isoPrefixCache secondCache

func (c *secondCache) prefix(t time.Time) string {
	unix := t.Unix()
	_, offset := t.Zone()
	if cached := c.value.Load(); cached != nil && cached.unix == unix && cached.offset == offset {
		return cached.str
	}
	str := formatSecondsPrefix(t)
	c.value.Store(&cachedPrefix{unix: unix, offset: offset, str: str})
	return str
}

func formatSecondsPrefix(t time.Time) string {
	if year := t.Year(); year < 0 || year > 9999 {
		return t.Format("2006-01-02T15:04:05")
	}
	buf := make([]byte, 0, 19)
	buf = appendISOSeconds(buf, t)
	return string(buf)
}
