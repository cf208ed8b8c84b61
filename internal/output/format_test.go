package output

import "testing"

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		seconds int64
		want    string
	}{
		{0, "0s"},
		{30, "30s"},
		{59, "59s"},
		{60, "1m"},
		{2700, "45m"},
		{3600, "1h 0m"},
		{6000, "1h 40m"},
		{86400, "24h 0m"},
	}

	for _, tc := range tests {
		if got := FormatDuration(tc.seconds); got != tc.want {
			t.Errorf("FormatDuration(%d) = %q, want %q", tc.seconds, got, tc.want)
		}
	}
}

func TestFormatHours(t *testing.T) {
	tests := []struct {
		seconds int64
		want    string
	}{
		{0, "0h"},
		{1800, "0h"},
		{3600, "1h"},
		{365000, "101h"},
	}

	for _, tc := range tests {
		if got := FormatHours(tc.seconds); got != tc.want {
			t.Errorf("FormatHours(%d) = %q, want %q", tc.seconds, got, tc.want)
		}
	}
}
