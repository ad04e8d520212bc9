package model

import (
	"database/sql/driver"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// Money fields go over the wire as raw JSON numbers, not quoted strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// Fecha is a date-only column serialized as "2006-01-02" in JSON.
type Fecha struct {
	time.Time
}

// ParseFecha parses a "YYYY-MM-DD" string.
func ParseFecha(s string) (Fecha, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return Fecha{}, fmt.Errorf("fecha %q: %w", s, err)
	}
	return Fecha{Time: t}, nil
}

func (f Fecha) MarshalJSON() ([]byte, error) {
	return []byte(`"` + f.Format("2006-01-02") + `"`), nil
}

func (f *Fecha) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		return nil
	}
	parsed, err := ParseFecha(unquote(b))
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

func (f Fecha) Value() (driver.Value, error) { return f.Time, nil }

func (f *Fecha) Scan(src interface{}) error {
	switch v := src.(type) {
	case time.Time:
		f.Time = v
		return nil
	case []byte:
		return f.scanString(string(v))
	case string:
		return f.scanString(v)
	default:
		return fmt.Errorf("cannot scan %T into Fecha", src)
	}
}

func (f *Fecha) scanString(s string) error {
	// Drivers may return a full timestamp for date columns.
	for _, layout := range []string{"2006-01-02", time.RFC3339, "2006-01-02 15:04:05.999999999-07:00", "2006-01-02 15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			f.Time = t
			return nil
		}
	}
	return fmt.Errorf("cannot parse %q as Fecha", s)
}

// Hora is a time-of-day column. It is persisted as a timestamp composed onto
// the fixed epoch date 1970-01-01 and serialized as "15:04:05" in JSON.
type Hora struct {
	time.Time
}

// ParseHora parses a "HH:MM:SS" (or "HH:MM") string and composes it onto the
// epoch date.
func ParseHora(s string) (Hora, error) {
	for _, layout := range []string{"15:04:05", "15:04"} {
		if t, err := time.Parse(layout, s); err == nil {
			return Hora{Time: time.Date(1970, 1, 1, t.Hour(), t.Minute(), t.Second(), 0, time.UTC)}, nil
		}
	}
	return Hora{}, fmt.Errorf("cannot parse %q as Hora", s)
}

func (h Hora) MarshalJSON() ([]byte, error) {
	return []byte(`"` + h.Format("15:04:05") + `"`), nil
}

func (h *Hora) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		return nil
	}
	parsed, err := ParseHora(unquote(b))
	if err != nil {
		return err
	}
	*h = parsed
	return nil
}

func (h Hora) Value() (driver.Value, error) { return h.Time, nil }

func (h *Hora) Scan(src interface{}) error {
	switch v := src.(type) {
	case time.Time:
		h.Time = time.Date(1970, 1, 1, v.Hour(), v.Minute(), v.Second(), 0, time.UTC)
		return nil
	case []byte:
		return h.scanString(string(v))
	case string:
		return h.scanString(v)
	default:
		return fmt.Errorf("cannot scan %T into Hora", src)
	}
}

func (h *Hora) scanString(s string) error {
	for _, layout := range []string{"15:04:05", time.RFC3339, "2006-01-02 15:04:05.999999999-07:00", "2006-01-02 15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			h.Time = time.Date(1970, 1, 1, t.Hour(), t.Minute(), t.Second(), 0, time.UTC)
			return nil
		}
	}
	return fmt.Errorf("cannot parse %q as Hora", s)
}

func unquote(b []byte) string {
	s := string(b)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return s[1 : len(s)-1]
	}
	return s
}
