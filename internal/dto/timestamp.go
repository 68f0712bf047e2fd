package dto

import (
	"encoding/json"
	"fmt"
	"time"
)

// TimestampLayout is the wire format: ISO-8601 without zone, second precision.
const TimestampLayout = "2006-01-02T15:04:05"

// Timestamp serializes a time as a naive ISO-8601 string truncated to seconds.
type Timestamp time.Time

// NewTimestamp converts t, dropping sub-second precision.
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp(t.Truncate(time.Second))
}

// Time returns the underlying time.
func (t Timestamp) Time() time.Time {
	return time.Time(t)
}

// MarshalJSON implements json.Marshaler
func (t Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Time(t).Format(TimestampLayout))
}

// UnmarshalJSON implements json.Unmarshaler
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := time.Parse(TimestampLayout, s)
	if err != nil {
		return fmt.Errorf("invalid timestamp %q: %w", s, err)
	}
	*t = Timestamp(parsed)
	return nil
}
