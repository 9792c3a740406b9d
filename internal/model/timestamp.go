package model

import (
	"encoding/json"
	"time"
)

// timestampKind tags which representation a Timestamp holds.
type timestampKind uint8

const (
	timestampUnset timestampKind = iota
	timestampNative
	timestampISO
)

// DisplayLayout is the format used by Timestamp.Display.
const DisplayLayout = "January 2, 2006 at 03:04 PM"

// Timestamp is either a native time written by the store or an ISO-8601
// string left behind by older rows. Stores convert into a Timestamp at the
// data access boundary; callers only use Time and Display.
type Timestamp struct {
	kind timestampKind
	t    time.Time
	iso  string
}

// NativeTimestamp wraps a store-native time value.
func NativeTimestamp(t time.Time) Timestamp {
	if t.IsZero() {
		return Timestamp{}
	}
	return Timestamp{kind: timestampNative, t: t}
}

// ISOTimestamp wraps a string timestamp as stored.
func ISOTimestamp(s string) Timestamp {
	if s == "" {
		return Timestamp{}
	}
	return Timestamp{kind: timestampISO, iso: s}
}

// Now returns a native timestamp for the current UTC time.
func Now() Timestamp {
	return NativeTimestamp(time.Now().UTC())
}

// IsZero reports whether the timestamp is unset.
func (ts Timestamp) IsZero() bool { return ts.kind == timestampUnset }

// IsNative reports whether the timestamp came from a native store value.
func (ts Timestamp) IsNative() bool { return ts.kind == timestampNative }

// Time converts the timestamp to a time.Time. ok is false when the value is
// unset or the ISO string cannot be parsed.
func (ts Timestamp) Time() (time.Time, bool) {
	switch ts.kind {
	case timestampNative:
		return ts.t, true
	case timestampISO:
		for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02T15:04:05.000Z", "2006-01-02"} {
			if t, err := time.Parse(layout, ts.iso); err == nil {
				return t, true
			}
		}
	}
	return time.Time{}, false
}

// Display renders the timestamp for people.
func (ts Timestamp) Display() string {
	if ts.IsZero() {
		return "Unknown Date"
	}
	t, ok := ts.Time()
	if !ok {
		return ts.iso
	}
	return t.Format(DisplayLayout)
}

// Before orders timestamps; values without a usable time sort last.
func (ts Timestamp) Before(other Timestamp) bool {
	a, aok := ts.Time()
	b, bok := other.Time()
	switch {
	case aok && bok:
		return a.Before(b)
	case aok:
		return false
	default:
		return bok
	}
}

func (ts Timestamp) String() string {
	switch ts.kind {
	case timestampNative:
		return ts.t.Format(time.RFC3339Nano)
	case timestampISO:
		return ts.iso
	}
	return ""
}

func (ts Timestamp) MarshalJSON() ([]byte, error) {
	if ts.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(ts.String())
}

// UnmarshalJSON keeps parsable RFC 3339 values native and anything else as
// the raw string.
func (ts *Timestamp) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*ts = Timestamp{}
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		*ts = NativeTimestamp(t)
		return nil
	}
	*ts = ISOTimestamp(s)
	return nil
}
