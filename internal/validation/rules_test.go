package validation

import (
	"testing"
	"time"
)

func TestNameRules(t *testing.T) {
	cases := []struct {
		in   string
		want []Violation
	}{
		{"Rex", nil},
		{"   ", []Violation{Whitespace, OnlyLetters}},
		{"", []Violation{Whitespace}},
		{"Rex2", []Violation{OnlyLetters}},
		{"Big Rex", []Violation{OnlyLetters}},
		{"Ñandú", []Violation{OnlyLetters}},
	}

	for _, tc := range cases {
		var got []Violation
		for _, r := range NameRules {
			if v := r(tc.in); v != Valid {
				got = append(got, v)
			}
		}
		if len(got) != len(tc.want) {
			t.Fatalf("%q: expected %v, got %v", tc.in, tc.want, got)
		}
		for i := range got {
			if got[i] != tc.want[i] {
				t.Fatalf("%q: expected %v, got %v", tc.in, tc.want, got)
			}
		}
	}
}

func TestLettersOnly_EmptyPasses(t *testing.T) {
	if v := LettersOnly(""); v != Valid {
		t.Fatalf("empty string must pass letters-only, got %q", v)
	}
}

func TestNotAfterToday(t *testing.T) {
	now := time.Date(2025, 12, 22, 10, 0, 0, 0, time.UTC)
	rule := NotAfterToday(func() time.Time { return now })

	cases := []struct {
		name string
		in   time.Time
		want Violation
	}{
		{"yesterday", time.Date(2025, 12, 21, 0, 0, 0, 0, time.UTC), Valid},
		{"today", time.Date(2025, 12, 22, 0, 0, 0, 0, time.UTC), Valid},
		{"tomorrow", time.Date(2025, 12, 23, 0, 0, 0, 0, time.UTC), DateInFuture},
		{"unset", time.Time{}, Valid},
	}
	for _, tc := range cases {
		if got := rule(tc.in); got != tc.want {
			t.Fatalf("%s: expected %q, got %q", tc.name, tc.want, got)
		}
	}
}

func TestNotAfterToday_UsesNowsCalendar(t *testing.T) {
	// 23:30 en UTC-3 ya es "mañana" en UTC; la fecha de hoy local debe pasar igual.
	loc := time.FixedZone("UTC-3", -3*60*60)
	now := time.Date(2025, 12, 22, 23, 30, 0, 0, loc)
	rule := NotAfterToday(func() time.Time { return now })

	if got := rule(time.Date(2025, 12, 22, 0, 0, 0, 0, time.UTC)); got != Valid {
		t.Fatalf("today in local calendar must pass, got %q", got)
	}
}

func TestNotBeforeToday(t *testing.T) {
	now := time.Date(2025, 12, 22, 10, 0, 0, 0, time.UTC)
	rule := NotBeforeToday(func() time.Time { return now })

	if got := rule(time.Date(2025, 12, 22, 0, 0, 0, 0, time.UTC)); got != Valid {
		t.Fatalf("today must pass, got %q", got)
	}
	if got := rule(time.Date(2025, 12, 21, 0, 0, 0, 0, time.UTC)); got != DateInPast {
		t.Fatalf("yesterday must fail, got %q", got)
	}
}

func TestForm_CollectsPerField(t *testing.T) {
	now := func() time.Time { return time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC) }

	err := NewForm().
		String("name", "Rex2", NameRules...).
		String("gender", "", NotEmpty, OneOf("male", "female")).
		Date("birthday", time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC), DateSet, NotAfterToday(now)).
		Err()

	verr, ok := err.(*Error)
	if !ok {
		t.Fatalf("expected *Error, got %T", err)
	}
	if !verr.Has("name", OnlyLetters) || !verr.Has("gender", Required) || !verr.Has("birthday", DateInFuture) {
		t.Fatalf("unexpected violations: %v", verr.Fields)
	}
	if got := verr.Error(); got != "validation failed: birthday: dateInPastOrToday; gender: required,invalidOption; name: onlyLetters" {
		t.Fatalf("unexpected message %q", got)
	}

	if err := NewForm().String("name", "Rex", NameRules...).Err(); err != nil {
		t.Fatalf("expected valid form, got %v", err)
	}
}
