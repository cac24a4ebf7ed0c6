package locale

import (
	"testing"
	"time"
)

func TestGroupThousands(t *testing.T) {
	l := Default()
	cases := map[string]string{
		"1":         "1",
		"12":        "12",
		"123":       "123",
		"1234":      "1,234",
		"1234567":   "1,234,567",
		"-1234":     "-1,234",
		"-12345678": "-12,345,678",
	}
	for in, want := range cases {
		if got := l.GroupThousands(in); got != want {
			t.Errorf("GroupThousands(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestMonth(t *testing.T) {
	l := Default()
	tm := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	if got := l.Month(tm); got != "Mar" {
		t.Errorf("Month(March) = %q, want Mar", got)
	}
}
