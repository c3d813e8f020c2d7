package entity

import (
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// Date fecha de calendario sin componente horario. El backend a veces
// devuelve datetime completo ("2024-01-05T00:00:00"); al deserializar se
// trunca a los primeros diez caracteres.
type Date struct {
	time.Time
}

// NewDate construye una fecha de calendario.
func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// Today fecha de hoy en UTC.
func Today() Date {
	now := time.Now().UTC()
	return NewDate(now.Year(), now.Month(), now.Day())
}

// ParseDate parsea "YYYY-MM-DD" (o un datetime, truncándolo).
func ParseDate(s string) (Date, error) {
	if len(s) > len(dateLayout) {
		s = s[:len(dateLayout)]
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, err
	}
	return Date{Time: t}, nil
}

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(dateLayout)
}

// MarshalJSON serializa siempre como "YYYY-MM-DD".
func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + d.Format(dateLayout) + `"`), nil
}

// UnmarshalJSON acepta "YYYY-MM-DD", un datetime ISO o null.
func (d *Date) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		d.Time = time.Time{}
		return nil
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	d.Time = parsed.Time
	return nil
}

// Before orden entre fechas de calendario.
func (d Date) Before(other Date) bool {
	return d.Time.Before(other.Time)
}

// After orden entre fechas de calendario.
func (d Date) After(other Date) bool {
	return d.Time.After(other.Time)
}

// Equal igualdad entre fechas de calendario.
func (d Date) Equal(other Date) bool {
	return d.Time.Equal(other.Time)
}
