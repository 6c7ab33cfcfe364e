package actlog

import (
	"strconv"
	"strings"
	"time"
)

// Options controls how a Formatter renders and emits records.
type Options struct {
	// Backend receives every formatted message. When nil the formatter
	// emits into a NopBackend.
	Backend Backend

	// Severity is the level every record is emitted at. The zero value
	// is InfoSeverity. Use Formatter.At for per-call overrides.
	Severity Severity

	// OmitTimestamp selects the template family without an embedded
	// timestamp. Useful when the backend already stamps its output.
	OmitTimestamp bool

	// Templates overrides the default template family and is used
	// as-is; SectionSeparator is ignored. OmitTimestamp still controls
	// whether {timestamp} expands to a value or to the empty string.
	Templates *TemplateSet

	// PairSeparator and KeyValueSeparator configure the key=value
	// encoder. Empty values mean "," and "=".
	PairSeparator     string
	KeyValueSeparator string

	// SectionSeparator sits between the message prefix and the encoded
	// attribute fragment. Empty means " ; ".
	SectionSeparator string

	// TimestampFunc overrides the clock, mainly for tests. Nil means
	// time.Now.
	TimestampFunc func() time.Time
}

// Formatter composes the key=value encoder, the template set, and the
// clock into final message strings and hands them to the Backend at a
// fixed severity. A Formatter is immutable after construction and safe
// for concurrent use; the derivation methods At and With return copies
// and leave the receiver untouched.
type Formatter struct {
	backend   Backend
	sev       Severity
	omitTS    bool
	templates TemplateSet
	enc       Encoder
	now       func() time.Time
	attrs     []Attr
}

// New returns a Formatter with default options emitting into backend.
func New(backend Backend) *Formatter {
	return NewWithOptions(Options{Backend: backend})
}

// NewWithOptions builds a Formatter with explicit settings.
func NewWithOptions(opts Options) *Formatter {
	backend := opts.Backend
	if backend == nil {
		backend = NopBackend{}
	}
	sectionSep := opts.SectionSeparator
	if sectionSep == "" {
		sectionSep = DefaultSectionSeparator
	}
	var templates TemplateSet
	if opts.Templates != nil {
		templates = *opts.Templates
	} else {
		templates = TemplatesWithSeparator(!opts.OmitTimestamp, sectionSep)
	}
	now := opts.TimestampFunc
	if now == nil {
		now = time.Now
	}
	return &Formatter{
		backend:   backend,
		sev:       opts.Severity,
		omitTS:    opts.OmitTimestamp,
		templates: templates,
		enc: Encoder{
			PairSeparator:     opts.PairSeparator,
			KeyValueSeparator: opts.KeyValueSeparator,
		},
		now: now,
	}
}

// At returns a formatter that emits at sev. The receiver is not
// modified.
func (f *Formatter) At(sev Severity) *Formatter {
	clone := *f
	clone.sev = sev
	return &clone
}

// With returns a formatter that includes attrs on every subsequent
// record, before the per-call attributes. The receiver is not modified.
func (f *Formatter) With(attrs ...Attr) *Formatter {
	if len(attrs) == 0 {
		return f
	}
	clone := *f
	merged := make([]Attr, 0, len(f.attrs)+len(attrs))
	merged = append(merged, f.attrs...)
	merged = append(merged, attrs...)
	clone.attrs = merged
	return &clone
}

// Event emits a standalone event record using the current timestamp and
// returns that timestamp, so a caller may chain timing off a plain event
// if desired.
func (f *Formatter) Event(name string, attrs ...Attr) Timestamp {
	t := f.now()
	f.emit(ShapeEvent, name, t, "", 0, attrs)
	return Timestamp{t: t}
}

// Start emits the entry record of an activity and returns the activity
// handle. The caller must retain the handle and pass it to End to get a
// duration; the formatter itself keeps no per-activity state, so nested
// or concurrent activities under the same name pair up only through
// their own handles.
func (f *Formatter) Start(name string, attrs ...Attr) Timestamp {
	t := f.now()
	f.emit(ShapeEntry, name, t, "", 0, attrs)
	return Timestamp{t: t}
}

// End emits the exit record of an activity with status code 0. When
// start is the zero Timestamp no duration is computed and the record
// uses the duration-free exit shape; this is the intended way to log an
// end where timing was not tracked.
func (f *Formatter) End(name string, start Timestamp, attrs ...Attr) {
	f.EndStatus(name, start, 0, attrs...)
}

// EndStatus is End with an explicit status code. The status is carried
// as opaque payload for the reader of the log; the formatter never
// interprets it. The default templates do not place it, but custom
// templates may via the {status} placeholder.
func (f *Formatter) EndStatus(name string, start Timestamp, status int, attrs ...Attr) {
	t := f.now()
	if start.IsZero() {
		f.emit(ShapeExitNoDur, name, t, "", status, attrs)
		return
	}
	f.emit(ShapeExit, name, t, Elapsed(start, Timestamp{t: t}), status, attrs)
}

func (f *Formatter) emit(shape Shape, name string, t time.Time, dur string, status int, attrs []Attr) {
	all := attrs
	if len(f.attrs) > 0 {
		all = make([]Attr, 0, len(f.attrs)+len(attrs))
		all = append(all, f.attrs...)
		all = append(all, attrs...)
	}
	var ts string
	if !f.omitTS {
		ts = formatTimestamp(t)
	}
	msg := strings.NewReplacer(
		"{timestamp}", ts,
		"{func_name}", name,
		"{dur}", dur,
		"{status}", strconv.Itoa(status),
		"{kvp}", f.enc.Encode(all),
	).Replace(f.templates.For(shape))
	f.backend.Emit(f.sev, msg)
}
