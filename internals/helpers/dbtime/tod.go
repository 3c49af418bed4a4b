// Package dbtime maps Postgres TIME columns onto a date-free wall-clock
// value. Backing it with seconds since midnight keeps ordering and the
// hour-window check free of calendar math.
package dbtime

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Tod is a time of day in [00:00:00, 24:00:00).
type Tod struct {
	secs int
}

// From keeps only the clock reading of t, dropping date and zone.
func From(t time.Time) Tod {
	return Tod{secs: t.Hour()*3600 + t.Minute()*60 + t.Second()}
}

// Parse builds a Tod from "HH:mm[:ss]".
func Parse(s string) (Tod, error) {
	var t Tod
	return t, t.parse(s)
}

func (t *Tod) parse(s string) error {
	s = strings.TrimSpace(s)
	if len(s) == 5 { // "HH:MM"
		s += ":00"
	}
	parsed, err := time.Parse("15:04:05", s)
	if err != nil {
		return err
	}
	*t = From(parsed)
	return nil
}

// Hour is the truncated "HH" component window checks compare; minutes and
// seconds are kept for storage and display.
func (t Tod) Hour() int { return t.secs / 3600 }

func (t Tod) Minute() int { return t.secs / 60 % 60 }

func (t Tod) Second() int { return t.secs % 60 }

func (t Tod) Before(u Tod) bool { return t.secs < u.secs }

// String renders the canonical "HH:MM:SS" form responses and SQL share.
func (t Tod) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", t.Hour(), t.Minute(), t.Second())
}

// Scan accepts time.Time or a "HH:MM[:SS]" string.
func (t *Tod) Scan(v any) error {
	switch x := v.(type) {
	case time.Time:
		*t = From(x)
		return nil
	case []byte:
		return t.parse(string(x))
	case string:
		return t.parse(x)
	case nil:
		*t = Tod{}
		return nil
	default:
		return fmt.Errorf("tod: unsupported Scan type %T", v)
	}
}

// Value sends "HH:MM:SS" so Postgres TIME understands it.
func (t Tod) Value() (driver.Value, error) {
	return t.String(), nil
}

func (t Tod) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *Tod) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	return t.parse(s)
}
