package sqldb

import (
	"testing"
	"time"
)

func TestDBTime_ScanTextFormats(t *testing.T) {
	want := time.Date(2025, 12, 22, 10, 0, 0, 0, time.UTC)

	cases := []struct {
		name string
		src  any
		want time.Time
	}{
		{"time value", want.In(time.FixedZone("ART", -3*3600)), want},
		{"rfc3339", "2025-12-22T10:00:00Z", want},
		{"sqlite time format", "2025-12-22 10:00:00+00:00", want},
		{"sqlite time format with nanos", "2025-12-22 10:00:00.5-03:00", want.Add(3*time.Hour + 500*time.Millisecond)},
		{"go string format", "2025-12-22 10:00:00 +0000 UTC", want},
		{"go string format with monotonic", []byte("2025-12-22 10:00:00.25 +0000 UTC m=+0.001"), want.Add(250 * time.Millisecond)},
		{"date only", "2025-12-22", time.Date(2025, 12, 22, 0, 0, 0, 0, time.UTC)},
		{"null", nil, time.Time{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var got dbTime
			if err := got.Scan(tc.src); err != nil {
				t.Fatalf("scan %v: %v", tc.src, err)
			}
			if !got.Time.Equal(tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, got.Time)
			}
		})
	}
}

func TestDBTime_RoundTripsTimeArgString(t *testing.T) {
	at := time.Now()

	// texto que escribe modernc para un time.Time sin _time_format
	text := timeArg(at).(time.Time).String()

	var got dbTime
	if err := got.Scan(text); err != nil {
		t.Fatalf("scan %q: %v", text, err)
	}
	if !got.Time.Equal(at.UTC().Round(0)) {
		t.Fatalf("expected %v, got %v", at.UTC(), got.Time)
	}
}

func TestDBTime_RejectsGarbage(t *testing.T) {
	var got dbTime
	if err := got.Scan("not a time"); err == nil {
		t.Fatalf("expected error, got %v", got.Time)
	}
}
