package types

import (
	"encoding/json"
	"testing"
	"time"
)

func TestDateJSON(t *testing.T) {
	d := NewDate(2026, time.March, 4)

	raw, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(raw) != `"2026-03-04"` {
		t.Errorf("marshal = %s", raw)
	}

	var parsed Date
	if err := json.Unmarshal([]byte(`"2026-03-04"`), &parsed); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !parsed.Equal(d.Time) {
		t.Errorf("round trip = %v, want %v", parsed, d)
	}
}

func TestDateUnmarshalRejectsBadInput(t *testing.T) {
	var d Date
	if err := json.Unmarshal([]byte(`"04/03/2026"`), &d); err == nil {
		t.Error("expected error for non ISO date")
	}
}

func TestDateScanTruncatesTimestamps(t *testing.T) {
	var d Date
	if err := d.Scan(time.Date(2026, time.March, 4, 17, 30, 0, 0, time.UTC)); err != nil {
		t.Fatalf("scan: %v", err)
	}
	if d.String() != "2026-03-04" {
		t.Errorf("scan = %s", d)
	}

	if err := d.Scan("2026-03-05 00:00:00+00:00"); err != nil {
		t.Fatalf("scan string: %v", err)
	}
	if d.String() != "2026-03-05" {
		t.Errorf("scan string = %s", d)
	}
}
