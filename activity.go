package actlog

import (
	"github.com/google/uuid"
)

// Activity brackets a span of work with the entry and exit records of
// its Formatter. It is an immutable descriptor: the name, severity, and
// attribute set are fixed up front, and the derivation methods return
// copies. The timing handle itself still travels through the caller (or
// through Do), never through the Activity.
type Activity struct {
	f           *Formatter
	name        string
	attrs       []Attr
	logFailures bool
}

// Activity returns a descriptor for a named span of work carrying attrs
// on both its entry and exit records. The name must be supplied
// explicitly; use CurrentFn to derive one from the calling function.
func (f *Formatter) Activity(name string, attrs ...Attr) *Activity {
	return &Activity{f: f, name: name, attrs: attrs}
}

// WithID returns an activity that additionally carries a generated
// activity_id attribute on its entry and exit records, making
// concurrent same-name activities distinguishable in the log.
func (a *Activity) WithID() *Activity {
	clone := *a
	clone.attrs = append(cloneAttrs(a.attrs), String("activity_id", uuid.NewString()))
	return &clone
}

// LogFailures returns an activity that emits an exit record with status
// code 1 and an error attribute when the wrapped callable fails. By
// default a failed invocation produces no exit record at all.
func (a *Activity) LogFailures() *Activity {
	clone := *a
	clone.logFailures = true
	return &clone
}

// Start emits the activity's entry record and returns the timing handle.
func (a *Activity) Start() Timestamp {
	return a.f.Start(a.name, a.attrs...)
}

// End emits the activity's exit record with status code 0.
func (a *Activity) End(start Timestamp) {
	a.f.End(a.name, start, a.attrs...)
}

// EndStatus emits the activity's exit record with an explicit status
// code.
func (a *Activity) EndStatus(start Timestamp, status int) {
	a.f.EndStatus(a.name, start, status, a.attrs...)
}

// Do brackets fn with the activity's entry and exit records and returns
// fn's error unchanged. When fn fails the exit record is skipped (unless
// LogFailures was set) and the error propagates as-is. Panics are not
// recovered; a panicking fn produces no exit record.
func (a *Activity) Do(fn func() error) error {
	start := a.Start()
	if err := fn(); err != nil {
		a.fail(start, err)
		return err
	}
	a.End(start)
	return nil
}

// Call brackets fn like Activity.Do and returns fn's result unchanged.
func Call[T any](a *Activity, fn func() (T, error)) (T, error) {
	start := a.Start()
	value, err := fn()
	if err != nil {
		a.fail(start, err)
		return value, err
	}
	a.End(start)
	return value, nil
}

func (a *Activity) fail(start Timestamp, err error) {
	if !a.logFailures {
		return
	}
	attrs := append(cloneAttrs(a.attrs), String("error", err.Error()))
	a.f.EndStatus(a.name, start, 1, attrs...)
}

func cloneAttrs(attrs []Attr) []Attr {
	if len(attrs) == 0 {
		return nil
	}
	dst := make([]Attr, len(attrs), len(attrs)+1)
	copy(dst, attrs)
	return dst
}
