package models

import (
	"encoding/json"
	"testing"
	"time"
)

func TestNormalizeTicker(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"aapl", "AAPL"},
		{" AAPL ", "AAPL"},
		{"googl\t", "GOOGL"},
		{"", ""},
		{"   ", ""},
	}

	for _, tt := range tests {
		if got := NormalizeTicker(tt.input); got != tt.expected {
			t.Errorf("NormalizeTicker(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestDay_MarshalJSON(t *testing.T) {
	d := Day(time.Date(2026, 8, 14, 15, 30, 0, 0, time.UTC))
	data, err := json.Marshal(d)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `"2026-08-14"` {
		t.Errorf("marshaled Day = %s, want %q", data, "2026-08-14")
	}
}

func TestDay_UnmarshalJSON(t *testing.T) {
	var d Day
	if err := json.Unmarshal([]byte(`"2026-08-14"`), &d); err != nil {
		t.Fatal(err)
	}
	if got := d.Time(); !got.Equal(time.Date(2026, 8, 14, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("unmarshaled Day = %v, want 2026-08-14", got)
	}
}

func TestPriceBar_SerializesDateAsDay(t *testing.T) {
	bar := PriceBar{
		Date:   Day(time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)),
		Open:   10, High: 12, Low: 9, Close: 11,
		Volume: 1000,
	}
	data, err := json.Marshal(bar)
	if err != nil {
		t.Fatal(err)
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatal(err)
	}
	if decoded["date"] != "2026-01-02" {
		t.Errorf("date field = %v, want %q", decoded["date"], "2026-01-02")
	}
}
