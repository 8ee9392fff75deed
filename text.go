package reportengine

import (
	"encoding/json"
	"strconv"
)

// Text is a string field that tolerates malformed documents. Legacy records
// occasionally carry a number, a nested object, or null where a string is
// expected; decoding substitutes a usable value instead of failing the build.
//
// Strings decode as-is, numbers and booleans are formatted, everything else
// (objects, arrays, null) decodes to the empty string.
type Text string

func (t *Text) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*t = Text(s)
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err == nil {
		if f == float64(int64(f)) {
			*t = Text(strconv.FormatInt(int64(f), 10))
		} else {
			*t = Text(strconv.FormatFloat(f, 'f', -1, 64))
		}
		return nil
	}
	var b bool
	if err := json.Unmarshal(data, &b); err == nil {
		*t = Text(strconv.FormatBool(b))
		return nil
	}
	*t = ""
	return nil
}

// String returns the field value as a plain string.
func (t Text) String() string { return string(t) }

// Or returns the field value, or fallback when the field is empty.
func (t Text) Or(fallback string) string {
	if t == "" {
		return fallback
	}
	return string(t)
}
