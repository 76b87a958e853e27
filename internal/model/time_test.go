package model

import (
	"encoding/json"
	"testing"
	"time"
)

func TestAPITime_BothWireFormats(t *testing.T) {
	t.Parallel()

	want := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	for _, s := range []string{`"2024-03-01T10:00:00.000Z"`, `"2024-03-01T10:00:00Z"`} {
		var got APITime
		if err := json.Unmarshal([]byte(s), &got); err != nil {
			t.Fatalf("unmarshal %s: %v", s, err)
		}
		if !got.Equal(want) {
			t.Fatalf("%s decoded to %v, want %v", s, got.Time, want)
		}
	}
}

func TestAPITime_RejectsDateOnly(t *testing.T) {
	t.Parallel()

	var got APITime
	if err := json.Unmarshal([]byte(`"2024-03-01"`), &got); err == nil {
		t.Fatalf("date-only string must fail to decode as a timestamp")
	}
}

func TestAPITime_RejectsNonString(t *testing.T) {
	t.Parallel()

	var got APITime
	if err := json.Unmarshal([]byte(`1709287200`), &got); err == nil {
		t.Fatalf("numeric timestamp must fail")
	}
}

func TestAPITime_MarshalUsesFractionalFormat(t *testing.T) {
	t.Parallel()

	at := NewAPITime(time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC))
	b, err := json.Marshal(at)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != `"2024-03-01T10:00:00.000Z"` {
		t.Fatalf("got %s", b)
	}
}

func TestAPITime_NonUTCInputNormalized(t *testing.T) {
	t.Parallel()

	loc := time.FixedZone("plus3", 3*3600)
	at := NewAPITime(time.Date(2024, 3, 1, 13, 0, 0, 0, loc))
	b, _ := json.Marshal(at)
	if string(b) != `"2024-03-01T10:00:00.000Z"` {
		t.Fatalf("got %s", b)
	}
}
