package model

import (
	"testing"
	"time"
)

func day(s string) time.Time {
	t, _ := time.ParseInLocation(DateLayout, s, time.UTC)
	return t
}

func TestParseDate(t *testing.T) {
	cases := []struct {
		raw  string
		ok   bool
		want string
	}{
		{"2024-01-05", true, "2024-01-05"},
		{" 2024-01-05 ", true, "2024-01-05"},
		{"", false, ""},
		{"–", false, ""},
		{"-", false, ""},
		{"nan", false, ""},
		{"None", false, ""},
		{"05/01/2024", false, ""},
		{"2024-13-40", false, ""},
	}
	for _, c := range cases {
		got, ok := ParseDate(c.raw)
		if ok != c.ok {
			t.Errorf("ParseDate(%q) ok = %v, want %v", c.raw, ok, c.ok)
		}
		if FormatDate(got) != c.want {
			t.Errorf("ParseDate(%q) = %q, want %q", c.raw, FormatDate(got), c.want)
		}
	}
}

func TestDisplayDate(t *testing.T) {
	if got := DisplayDate(time.Time{}); got != "TBD" {
		t.Errorf("DisplayDate(zero) = %q, want TBD", got)
	}
	d, _ := ParseDate("2024-01-05")
	if got := DisplayDate(d); got != "2024-01-05" {
		t.Errorf("DisplayDate = %q", got)
	}
}

func TestParseList(t *testing.T) {
	if got := ParseList("Mapping, Thermal , ,LiDAR"); len(got) != 3 {
		t.Fatalf("expected 3 items, got %v", got)
	}
	for _, raw := range []string{"", "–", "-", "nan", "None", "  "} {
		if got := ParseList(raw); got != nil {
			t.Errorf("ParseList(%q) = %v, want nil", raw, got)
		}
	}
}

func TestPilotFromRecord_Lenient(t *testing.T) {
	p := PilotFromRecord(map[string]string{
		"pilot_id":           " P001 ",
		"name":               "Arjun",
		"skills":             "Mapping, Thermal",
		"certifications":     "–",
		"location":           "Bangalore",
		"status":             "",
		"current_assignment": "-",
		"available_from":     "not-a-date",
	})
	if p.ID != "P001" || p.Name != "Arjun" {
		t.Fatalf("unexpected identity fields: %+v", p)
	}
	if p.Status != PilotAvailable {
		t.Errorf("empty status should default to Available, got %q", p.Status)
	}
	if p.CurrentAssignment != "" {
		t.Errorf("empty marker assignment should clear, got %q", p.CurrentAssignment)
	}
	if !p.AvailableFrom.IsZero() {
		t.Errorf("bad date should degrade to zero, got %v", p.AvailableFrom)
	}
	if len(p.Certifications) != 0 {
		t.Errorf("empty marker certs should be nil, got %v", p.Certifications)
	}
}

func TestMissionOverlap(t *testing.T) {
	m1 := Mission{ID: "PRJ001", StartDate: day("2024-01-01"), EndDate: day("2024-01-10")}
	m2 := Mission{ID: "PRJ002", StartDate: day("2024-01-05"), EndDate: day("2024-01-15")}
	m3 := Mission{ID: "PRJ003", StartDate: day("2024-02-01"), EndDate: day("2024-02-05")}
	if !m1.OverlapsWith(m2) || !m2.OverlapsWith(m1) {
		t.Error("expected m1 and m2 to overlap")
	}
	if m1.OverlapsWith(m3) {
		t.Error("expected m1 and m3 not to overlap")
	}
	// Shared boundary day counts as overlap.
	m4 := Mission{ID: "PRJ004", StartDate: day("2024-01-10"), EndDate: day("2024-01-12")}
	if !m1.OverlapsWith(m4) {
		t.Error("expected boundary day to overlap")
	}
	// Missing dates are excluded from overlap checks entirely.
	open := Mission{ID: "PRJ005", StartDate: day("2024-01-01")}
	if open.OverlapsWith(m1) || m1.OverlapsWith(open) {
		t.Error("missions with missing dates must not report overlaps")
	}
}

func TestPriorityRank(t *testing.T) {
	order := []Priority{PriorityUrgent, PriorityHigh, PriorityStandard, PriorityLow}
	for i, p := range order {
		if p.Rank() != i+1 {
			t.Errorf("%s rank = %d, want %d", p, p.Rank(), i+1)
		}
	}
	if Priority("Whatever").Rank() != PriorityStandard.Rank() {
		t.Error("unknown priority should rank as Standard")
	}
}

func TestRecordRoundTrip(t *testing.T) {
	m := Mission{
		ID:             "PRJ010",
		Client:         "AgriCo",
		Location:       "Pune",
		RequiredSkills: []string{"Mapping"},
		StartDate:      day("2024-03-01"),
		EndDate:        day("2024-03-04"),
		Priority:       PriorityHigh,
		AssignedPilot:  "P002",
	}
	got := MissionFromRecord(m.Record())
	if got.ID != m.ID || got.Priority != m.Priority || got.AssignedPilot != m.AssignedPilot {
		t.Fatalf("round trip mismatch: %+v", got)
	}
	if !got.StartDate.Equal(m.StartDate) || !got.EndDate.Equal(m.EndDate) {
		t.Fatalf("date round trip mismatch: %+v", got)
	}
}
