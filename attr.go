package actlog

import (
	"fmt"
	"strconv"
)

// Kind identifies the type of value stored in a Value.
type Kind int

const (
	// KindNull is the null value.
	KindNull Kind = iota
	// KindString is a string value.
	KindString
	// KindInt64 is a signed integer value.
	KindInt64
	// KindFloat64 is a floating-point value.
	KindFloat64
	// KindBool is a boolean value.
	KindBool
)

// Value is a tagged union over the attribute value types the encoder
// understands: integer, float, boolean, string, and null.
type Value struct {
	kind Kind
	str  string
	i    int64
	f    float64
	b    bool
}

// Kind returns the kind of the value.
func (v Value) Kind() Kind { return v.kind }

// Text returns the value's natural string representation without any
// encoder escaping applied.
func (v Value) Text() string {
	switch v.kind {
	case KindString:
		return v.str
	case KindInt64:
		return strconv.FormatInt(v.i, 10)
	case KindFloat64:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case KindBool:
		return strconv.FormatBool(v.b)
	default:
		return "null"
	}
}

// Attr is a single named datum attached to an event or activity record.
// A slice of Attr is the ordered attribute set handed to the encoder;
// keys are expected to be unique within one record and free of the
// separator characters.
type Attr struct {
	Key   string
	Value Value
}

// String returns a string-valued attribute.
func String(key, value string) Attr {
	return Attr{Key: key, Value: Value{kind: KindString, str: value}}
}

// Int returns an integer-valued attribute.
func Int(key string, value int) Attr {
	return Int64(key, int64(value))
}

// Int64 returns an integer-valued attribute from an int64.
func Int64(key string, value int64) Attr {
	return Attr{Key: key, Value: Value{kind: KindInt64, i: value}}
}

// Float returns a float-valued attribute.
func Float(key string, value float64) Attr {
	return Attr{Key: key, Value: Value{kind: KindFloat64, f: value}}
}

// Bool returns a boolean-valued attribute.
func Bool(key string, value bool) Attr {
	return Attr{Key: key, Value: Value{kind: KindBool, b: value}}
}

// Null returns a null-valued attribute.
func Null(key string) Attr {
	return Attr{Key: key, Value: Value{kind: KindNull}}
}

// Pairs converts a variadic key/value list into an attribute slice. It
// mirrors the loose keyvals calling convention: even positions are keys,
// odd positions are values. Non-string keys and values outside the
// supported kinds are coerced through their fmt representation. A
// trailing key without a value is paired with null.
func Pairs(keyvals ...any) []Attr {
	if len(keyvals) == 0 {
		return nil
	}
	attrs := make([]Attr, 0, (len(keyvals)+1)/2)
	for i := 0; i < len(keyvals); i += 2 {
		key, ok := keyvals[i].(string)
		if !ok {
			key = fmt.Sprint(keyvals[i])
		}
		if i+1 >= len(keyvals) {
			attrs = append(attrs, Null(key))
			break
		}
		attrs = append(attrs, anyAttr(key, keyvals[i+1]))
	}
	return attrs
}

func anyAttr(key string, value any) Attr {
	switch v := value.(type) {
	case nil:
		return Null(key)
	case string:
		return String(key, v)
	case bool:
		return Bool(key, v)
	case int:
		return Int(key, v)
	case int8:
		return Int64(key, int64(v))
	case int16:
		return Int64(key, int64(v))
	case int32:
		return Int64(key, int64(v))
	case int64:
		return Int64(key, v)
	case uint:
		return Int64(key, int64(v))
	case uint8:
		return Int64(key, int64(v))
	case uint16:
		return Int64(key, int64(v))
	case uint32:
		return Int64(key, int64(v))
	case float32:
		return Float(key, float64(v))
	case float64:
		return Float(key, v)
	case error:
		return String(key, v.Error())
	case fmt.Stringer:
		return String(key, v.String())
	default:
		return String(key, fmt.Sprint(v))
	}
}
