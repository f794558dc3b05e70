package wire

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"wolfpack/internal/domain/packs"
	"wolfpack/internal/domain/wolves"
)

func TestToPack_MapsCoordinatesAndTimestamps(t *testing.T) {
	raw := `{
		"id": 12,
		"name": "Seeonee",
		"lat": 21.1,
		"lng": 79.2,
		"created_at": "2025-03-01T10:00:00Z",
		"updated_at": "2025-03-02T11:30:00Z",
		"wolves": [
			{"id": 1, "name": "Akela", "gender": "male", "birthday": "2019-04-01"},
			{"id": 2, "name": "Raksha", "gender": "female", "birthday": "2020-01-15T00:00:00Z"},
			{"id": 1, "name": "Akela", "gender": "male", "birthday": "2019-04-01"}
		]
	}`

	var rec PackRecord
	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	got, err := ToPack(rec)
	if err != nil {
		t.Fatalf("ToPack: %v", err)
	}

	want := packs.Pack{
		ID:        12,
		Name:      "Seeonee",
		Latitude:  21.1,
		Longitude: 79.2,
		CreatedAt: time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC),
		UpdatedAt: time.Date(2025, 3, 2, 11, 30, 0, 0, time.UTC),
		Wolves: []wolves.Wolf{
			{ID: 1, Name: "Akela", Gender: wolves.GenderMale, Birthday: time.Date(2019, 4, 1, 0, 0, 0, 0, time.UTC)},
			{ID: 2, Name: "Raksha", Gender: wolves.GenderFemale, Birthday: time.Date(2020, 1, 15, 0, 0, 0, 0, time.UTC)},
		},
		WolvesLoaded: true,
	}
	if diff := cmp.Diff(want, got, cmpopts.EquateApproxTime(0)); diff != "" {
		t.Fatalf("ToPack mismatch (-want +got):\n%s", diff)
	}
}

func TestToPacks_IgnoresMembers(t *testing.T) {
	members := []WolfRecord{{ID: 1, Name: "Akela", Gender: "male", Birthday: "2019-04-01"}}
	got, err := ToPacks([]PackRecord{
		{ID: 1, Name: "Seeonee", Wolves: &members},
		{ID: 2, Name: "Waingunga"},
	})
	if err != nil {
		t.Fatalf("ToPacks: %v", err)
	}
	for _, p := range got {
		if p.WolvesLoaded || p.Wolves != nil {
			t.Fatalf("list entries must not carry members: %+v", p)
		}
	}
}

func TestToPack_EmptyMembershipIsLoaded(t *testing.T) {
	var rec PackRecord
	if err := json.Unmarshal([]byte(`{"id":3,"name":"Empty","lat":0,"lng":0,"wolves":[]}`), &rec); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	p, err := ToPack(rec)
	if err != nil {
		t.Fatalf("ToPack: %v", err)
	}
	if !p.WolvesLoaded || len(p.Wolves) != 0 {
		t.Fatalf("expected loaded empty membership, got %+v", p)
	}
}

func TestToWolf_BadBirthday(t *testing.T) {
	if _, err := ToWolf(WolfRecord{ID: 9, Name: "Rex", Gender: "male", Birthday: "01/02/2019"}); err == nil {
		t.Fatalf("expected error for malformed birthday")
	}
}

func TestToWolf_KeepsUnknownGender(t *testing.T) {
	w, err := ToWolf(WolfRecord{ID: 9, Name: "Rex", Gender: " other ", Birthday: "2019-01-02"})
	if err != nil {
		t.Fatalf("ToWolf: %v", err)
	}
	if w.Gender != "other" {
		t.Fatalf("expected raw gender to survive, got %q", w.Gender)
	}
}

func TestNewWolfPayload_DateOnly(t *testing.T) {
	loc := time.FixedZone("UTC+9", 9*60*60)
	w := wolves.Wolf{
		ID:       4,
		Name:     "Rex",
		Gender:   wolves.GenderMale,
		Birthday: time.Date(2019, 1, 2, 23, 59, 0, 0, loc),
	}

	b, err := json.Marshal(NewWolfPayload(w))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"name":"Rex","gender":"male","birthday":"2019-01-02"}`
	if diff := cmp.Diff(want, string(b)); diff != "" {
		t.Fatalf("payload mismatch (-want +got):\n%s", diff)
	}
}

func TestFromPack_WolvesFieldPresence(t *testing.T) {
	p := packs.Pack{ID: 1, Name: "Seeonee", Latitude: 1.5, Longitude: -2.5}

	list, _ := json.Marshal(FromPack(p, false))
	var m map[string]any
	_ = json.Unmarshal(list, &m)
	if _, ok := m["wolves"]; ok {
		t.Fatalf("wolves must be omitted, got %s", list)
	}
	if m["lat"] != 1.5 || m["lng"] != -2.5 {
		t.Fatalf("expected lat/lng keys, got %s", list)
	}

	detail, _ := json.Marshal(FromPack(p, true))
	m = nil
	_ = json.Unmarshal(detail, &m)
	if got, ok := m["wolves"].([]any); !ok || len(got) != 0 {
		t.Fatalf("expected empty wolves array, got %s", detail)
	}
}

func TestParseDate(t *testing.T) {
	cases := []struct {
		in      string
		want    time.Time
		wantErr bool
	}{
		{"", time.Time{}, false},
		{"2024-02-29", time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), false},
		{"2024-02-29T22:10:00Z", time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), false},
		{"2024-02-30", time.Time{}, true},
		{"yesterday", time.Time{}, true},
	}
	for _, tc := range cases {
		got, err := ParseDate(tc.in)
		if (err != nil) != tc.wantErr {
			t.Fatalf("%q: unexpected error state %v", tc.in, err)
		}
		if !got.Equal(tc.want) {
			t.Fatalf("%q: expected %v, got %v", tc.in, tc.want, got)
		}
	}
}
