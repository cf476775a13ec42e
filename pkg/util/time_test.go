package util

import (
	"testing"
	"time"
)

func TestFormatDuration(t *testing.T) {
	cases := []struct {
		in   time.Duration
		want string
	}{
		{0, "00:00:00.000"},
		{1500 * time.Millisecond, "00:00:01.500"},
		{90 * time.Second, "00:01:30.000"},
		{time.Hour + 2*time.Minute + 3*time.Second, "01:02:03.000"},
	}

	for _, tc := range cases {
		if got := FormatDuration(tc.in); got != tc.want {
			t.Errorf("FormatDuration(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestParseFrameRate(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"30/1", 30},
		{"30000/1001", 29.97002997002997},
		{"0/0", 0},
		{"bogus", 0},
		{"25", 0},
	}

	for _, tc := range cases {
		if got := ParseFrameRate(tc.in); got != tc.want {
			t.Errorf("ParseFrameRate(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestFrameConversions(t *testing.T) {
	if got := FrameToSeconds(100, 25); got != 4.0 {
		t.Errorf("FrameToSeconds(100, 25) = %v, want 4", got)
	}
	if got := FrameToSeconds(100, 0); got != 0 {
		t.Errorf("FrameToSeconds with zero fps = %v, want 0", got)
	}
	if got := FrameToDuration(50, 25); got != 2*time.Second {
		t.Errorf("FrameToDuration(50, 25) = %v, want 2s", got)
	}
	if got := FrameToDuration(50, -1); got != 0 {
		t.Errorf("FrameToDuration with negative fps = %v, want 0", got)
	}
}
