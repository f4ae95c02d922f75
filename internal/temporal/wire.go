// Package temporal converts instants across boundaries that cannot carry a
// native time value: the JSON wire (tagged objects) and the on-device
// SQLite store (integer milliseconds).
package temporal

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// Marker is the field name of the tagged wire wrapper.
const Marker = "__date"

// ISOLayout renders instants in UTC with millisecond precision.
const ISOLayout = "2006-01-02T15:04:05.000Z07:00"

// ErrMalformed is matched by every decoding failure.
var ErrMalformed = errors.New("malformed date")

// FormatError reports a tagged value that could not be decoded.
type FormatError struct {
	Value string
	Err   error
}

func (e *FormatError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("temporal: malformed date %q: %v", e.Value, e.Err)
	}
	return fmt.Sprintf("temporal: malformed date %q", e.Value)
}

// Unwrap exposes ErrMalformed and, when present, the parse failure.
func (e *FormatError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrMalformed}
	}
	return []error{ErrMalformed, e.Err}
}

// Tagged is the wire form of an instant: {"__date": "<ISO-8601>"}.
type Tagged struct {
	Date string `json:"__date"`
}

// Encode wraps t into its tagged wire form.
func Encode(t time.Time) Tagged {
	return Tagged{Date: t.UTC().Format(ISOLayout)}
}

// Decode parses the tagged payload.
func (tg Tagged) Decode() (time.Time, error) {
	return parseISO(tg.Date)
}

// Wrap converts v into its tagged form. An already tagged value is returned
// unchanged, so wrapping twice equals wrapping once.
func Wrap(v any) (Tagged, error) {
	switch x := v.(type) {
	case Tagged:
		return x, nil
	case *Tagged:
		if x == nil {
			return Tagged{}, &FormatError{Value: "<nil>"}
		}
		return *x, nil
	case time.Time:
		return Encode(x), nil
	case Time:
		return Encode(x.Time), nil
	}
	return Tagged{}, &FormatError{Value: fmt.Sprintf("%T", v)}
}

// Unwrap converts v into an instant. A time.Time is returned unchanged, so
// unwrapping twice equals unwrapping once. Generic JSON objects carrying the
// marker field are accepted as well.
func Unwrap(v any) (time.Time, error) {
	switch x := v.(type) {
	case time.Time:
		return x, nil
	case Time:
		return x.Time, nil
	case Tagged:
		return x.Decode()
	case *Tagged:
		if x == nil {
			return time.Time{}, &FormatError{Value: "<nil>"}
		}
		return x.Decode()
	case map[string]any:
		raw, ok := x[Marker]
		if !ok {
			return time.Time{}, &FormatError{Value: fmt.Sprint(x), Err: errors.New("missing " + Marker)}
		}
		s, ok := raw.(string)
		if !ok {
			return time.Time{}, &FormatError{Value: fmt.Sprint(raw), Err: errors.New("marker is not a string")}
		}
		return parseISO(s)
	}
	return time.Time{}, &FormatError{Value: fmt.Sprintf("%T", v)}
}

// Time is a time.Time that crosses JSON in tagged form. Use *Time for
// optional fields: JSON null leaves the pointer nil.
type Time struct {
	time.Time
}

// NewTime wraps t.
func NewTime(t time.Time) Time {
	return Time{Time: t}
}

// Ptr wraps an optional instant.
func Ptr(t *time.Time) *Time {
	if t == nil {
		return nil
	}
	return &Time{Time: *t}
}

// Std returns the optional instant held by t.
func (t *Time) Std() *time.Time {
	if t == nil {
		return nil
	}
	v := t.Time
	return &v
}

func (t Time) MarshalJSON() ([]byte, error) {
	tg, err := Wrap(t)
	if err != nil {
		return nil, err
	}
	return json.Marshal(tg)
}

func (t *Time) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || data[0] != '{' {
		return &FormatError{Value: string(data), Err: errors.New("expected tagged object")}
	}

	var obj map[string]any
	if err := json.Unmarshal(data, &obj); err != nil {
		return &FormatError{Value: string(data), Err: err}
	}

	parsed, err := Unwrap(obj)
	if err != nil {
		return err
	}
	t.Time = parsed
	return nil
}

func parseISO(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, &FormatError{Value: s, Err: errors.New("empty")}
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		// Date-only values mean UTC midnight.
		d, dErr := time.Parse(time.DateOnly, s)
		if dErr != nil {
			return time.Time{}, &FormatError{Value: s, Err: err}
		}
		t = d
	}
	return t.UTC(), nil
}
