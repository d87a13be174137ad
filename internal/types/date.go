package types

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

const dateOnly = "2006-01-02"

// Date accepts either an RFC 3339 timestamp or a bare YYYY-MM-DD day.
// A bare day carries no zone and is placed in the server's zone by In.
type Date struct {
	time.Time
	DayOnly bool
}

// ParseDate parses the two accepted layouts
func ParseDate(raw string) (Date, error) {
	raw = strings.TrimSpace(raw)
	if t, err := time.Parse(dateOnly, raw); err == nil {
		return Date{Time: t, DayOnly: true}, nil
	}
	if t, err := time.Parse(time.RFC3339Nano, raw); err == nil {
		return Date{Time: t}, nil
	}
	return Date{}, fmt.Errorf("invalid date %q: use YYYY-MM-DD or RFC 3339", raw)
}

func (d *Date) UnmarshalJSON(b []byte) error {
	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		return fmt.Errorf("date must be a string")
	}
	parsed, err := ParseDate(raw)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.DayOnly {
		return json.Marshal(d.Time.Format(dateOnly))
	}
	return json.Marshal(d.Time)
}

// In resolves d to an instant, reading a bare day as midnight in loc
func (d Date) In(loc *time.Location) time.Time {
	if d.DayOnly {
		y, m, day := d.Time.Date()
		return time.Date(y, m, day, 0, 0, 0, 0, loc)
	}
	return d.Time.In(loc)
}
