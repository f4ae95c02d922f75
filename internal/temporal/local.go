package temporal

import (
	"database/sql/driver"
	"fmt"
	"strconv"
	"time"
)

// LocalFields lists the record fields revived as instants on the device
// store. Every other column is passed through untouched.
var LocalFields = []string{"due", "created", "updated", "last_review"}

// Millis stores an instant as INTEGER Unix milliseconds. Valid is false for
// SQL NULL, which is how an absent last_review is kept.
type Millis struct {
	Time  time.Time
	Valid bool
}

// NewMillis returns a valid Millis for t.
func NewMillis(t time.Time) Millis {
	return Millis{Time: t, Valid: true}
}

// MillisPtr returns a Millis that is NULL when t is nil.
func MillisPtr(t *time.Time) Millis {
	if t == nil {
		return Millis{}
	}
	return NewMillis(*t)
}

// Ptr returns nil for NULL.
func (m Millis) Ptr() *time.Time {
	if !m.Valid {
		return nil
	}
	t := m.Time
	return &t
}

// Value implements driver.Valuer.
func (m Millis) Value() (driver.Value, error) {
	if !m.Valid {
		return nil, nil
	}
	return m.Time.UnixMilli(), nil
}

// Scan implements sql.Scanner. Besides integer milliseconds it accepts an
// already decoded time.Time and ISO or numeric text, so scanning a value
// produced by any earlier encoding yields the same instant.
func (m *Millis) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*m = Millis{}
		return nil
	case int64:
		*m = NewMillis(time.UnixMilli(v).UTC())
		return nil
	case float64:
		*m = NewMillis(time.UnixMilli(int64(v)).UTC())
		return nil
	case time.Time:
		*m = NewMillis(v)
		return nil
	case []byte:
		return m.scanText(string(v))
	case string:
		return m.scanText(v)
	}
	return &FormatError{Value: fmt.Sprintf("%T", src)}
}

func (m *Millis) scanText(s string) error {
	if ms, err := strconv.ParseInt(s, 10, 64); err == nil {
		*m = NewMillis(time.UnixMilli(ms).UTC())
		return nil
	}
	t, err := parseISO(s)
	if err != nil {
		return err
	}
	*m = NewMillis(t)
	return nil
}
