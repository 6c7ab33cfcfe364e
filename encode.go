package actlog

import (
	"strings"
)

const (
	defaultPairSeparator     = ","
	defaultKeyValueSeparator = "="
)

// Encoder serialises an attribute set into a single escaped key=value
// fragment. The zero value uses the default separators ("," between
// pairs, "=" between key and value). Encoding is a pure function of its
// input.
type Encoder struct {
	// PairSeparator joins one key=value pair to the next. Empty means ",".
	PairSeparator string
	// KeyValueSeparator joins a key to its value. Empty means "=".
	KeyValueSeparator string
}

// Encode renders attrs as key=value pairs joined by the pair separator,
// or the empty string when attrs is empty.
//
// String values containing the pair separator are escaped by inserting a
// backslash before every literal comma in the value. Note the asymmetry:
// the containment check honours the configured pair separator while the
// escape always targets the comma character. This matches the historical
// behaviour exactly; with non-default separators the escaping outcome is
// unspecified and callers should not rely on it. Empty string values
// render as two single quotes ('') so emptiness is distinguishable from
// a missing attribute. Keys are emitted verbatim; callers must keep
// them free of the separator characters.
func (e Encoder) Encode(attrs []Attr) string {
	if len(attrs) == 0 {
		return ""
	}
	pairSep := e.PairSeparator
	if pairSep == "" {
		pairSep = defaultPairSeparator
	}
	kvSep := e.KeyValueSeparator
	if kvSep == "" {
		kvSep = defaultKeyValueSeparator
	}
	var b strings.Builder
	for i, attr := range attrs {
		if i > 0 {
			b.WriteString(pairSep)
		}
		b.WriteString(attr.Key)
		b.WriteString(kvSep)
		b.WriteString(encodeValue(attr.Value, pairSep))
	}
	return b.String()
}

func encodeValue(v Value, pairSep string) string {
	if v.Kind() != KindString {
		return v.Text()
	}
	s := v.Text()
	if strings.Contains(s, pairSep) {
		return strings.ReplaceAll(s, ",", `\,`)
	}
	if s == "" {
		return "''"
	}
	return s
}
