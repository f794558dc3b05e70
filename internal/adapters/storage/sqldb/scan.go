package sqldb

import (
	"fmt"
	"strings"
	"time"
)

// dbTime acepta time.Time (pgx) o texto (sqlite guarda fechas como TEXT).
type dbTime struct {
	Time time.Time
}

var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999-07:00",
	// time.Time.String(): formato por defecto de modernc sin _time_format
	"2006-01-02 15:04:05.999999999 -0700 MST",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func (t *dbTime) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		t.Time = time.Time{}
		return nil
	case time.Time:
		t.Time = v.UTC()
		return nil
	case []byte:
		return t.parse(string(v))
	case string:
		return t.parse(v)
	default:
		return fmt.Errorf("sqldb: cannot scan %T into time", src)
	}
}

func (t *dbTime) parse(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		t.Time = time.Time{}
		return nil
	}
	// modernc agrega " m=+0.000" cuando el time.Time tenía reloj monotónico
	if i := strings.Index(s, " m="); i > 0 {
		s = s[:i]
	}
	for _, layout := range timeLayouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			t.Time = parsed.UTC()
			return nil
		}
	}
	return fmt.Errorf("sqldb: unrecognized time %q", s)
}

// dateArg guarda solo el día (birthday) como yyyy-MM-dd.
func dateArg(t time.Time) any {
	if t.IsZero() {
		return nil
	}
	return t.Format("2006-01-02")
}

// timeArg normaliza a UTC sin reloj monotónico.
func timeArg(t time.Time) any {
	return t.UTC().Round(0)
}

func birthday(t dbTime) time.Time {
	if t.Time.IsZero() {
		return time.Time{}
	}
	y, m, d := t.Time.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
