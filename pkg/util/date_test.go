package util

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	got, ok := ParseDate("2024-10-10")
	if !ok {
		t.Fatalf("expected ok")
	}
	want := time.Date(2024, 10, 10, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("unexpected date %v", got)
	}
}

func TestParseDateInvalid(t *testing.T) {
	if _, ok := ParseDate("10/10/2024"); ok {
		t.Fatalf("expected not ok")
	}
	if _, ok := ParseDate(""); ok {
		t.Fatalf("expected not ok for empty")
	}
}

func TestParseDateDefault(t *testing.T) {
	def := Day(2024, time.October, 10)
	got := ParseDateDefault("", def)
	if !got.Equal(def) {
		t.Fatalf("expected default")
	}
}

func TestFormatDateRoundTrip(t *testing.T) {
	d := Day(2025, time.January, 2)
	got, ok := ParseDate(FormatDate(d))
	if !ok || !got.Equal(d) {
		t.Fatalf("round trip failed: %v", got)
	}
}
