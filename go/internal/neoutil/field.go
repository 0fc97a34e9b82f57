package neoutil

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Field is a request body value that remembers whether its key was sent.
// The zero value is an absent field.
type Field struct {
	present bool
	value   any
}

// Value returns a present field holding v. A nil v is an explicit null.
func Value(v any) Field {
	return Field{present: true, value: v}
}

// UnmarshalJSON is also invoked for an explicit null, which marks the field
// present with a nil value.
func (f *Field) UnmarshalJSON(data []byte) error {
	f.present = true
	f.value = nil

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	return dec.Decode(&f.value)
}

// Present reports whether the key appeared in the request body.
func (f Field) Present() bool {
	return f.present
}

// Blank reports whether the field is absent, null or whitespace only.
func (f Field) Blank() bool {
	return strings.TrimSpace(f.Text()) == ""
}

// Text returns the value as a string; null and absent become "".
func (f Field) Text() string {
	switch v := f.value.(type) {
	case nil:
		return ""
	case string:
		return v
	case json.Number:
		return v.String()
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		return fmt.Sprint(v)
	}
}

// Int64 parses the value as an integer, truncating fractions.
func (f Field) Int64() (int64, bool) {
	var n float64
	switch v := f.value.(type) {
	case nil:
		return 0, false
	case json.Number:
		if i, err := v.Int64(); err == nil {
			return i, true
		}
		parsed, err := v.Float64()
		if err != nil {
			return 0, false
		}
		n = parsed
	case float64:
		n = v
	case int:
		return int64(v), true
	case int64:
		return v, true
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return 0, false
		}
		parsed, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		n = parsed
	default:
		return 0, false
	}

	return floatToInt64(n)
}

// floatToInt64 truncates n, rejecting values int64 cannot hold.
func floatToInt64(n float64) (int64, bool) {
	if math.IsNaN(n) || n < math.MinInt64 || n >= math.MaxInt64 {
		return 0, false
	}
	return int64(n), true
}

// IntParam converts f to a query parameter for an integer property.
// Null, empty and non-numeric values clear the property.
func IntParam(f Field) any {
	if n, ok := f.Int64(); ok {
		return n
	}
	return nil
}

// StringParam converts f to a query parameter for a text property.
// Null and empty values clear the property.
func StringParam(f Field) any {
	s := f.Text()
	if s == "" {
		return nil
	}
	return s
}

// DateParam converts f to a query parameter for a date property. Dates are
// stored as sent.
func DateParam(f Field) any {
	return StringParam(f)
}

// TrimmedParam is StringParam with surrounding whitespace removed.
func TrimmedParam(f Field) any {
	s := strings.TrimSpace(f.Text())
	if s == "" {
		return nil
	}
	return s
}

// Props collects the properties of a partial update.
type Props map[string]any

// Set records key only when f was sent, so absent fields stay untouched.
func (p Props) Set(key string, f Field, conv func(Field) any) {
	if f.Present() {
		p[key] = conv(f)
	}
}
