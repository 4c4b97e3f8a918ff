package mask

import "testing"

func TestFormatSegmentsDayMonthYear(t *testing.T) {
	tests := []struct {
		name  string
		segs  []string
		force bool
		want  string
	}{
		{"empty", nil, false, ""},
		{"single low digit stays open", []string{"1"}, false, "1"},
		{"single high digit auto-pads", []string{"4"}, false, "04."},
		{"boundary digit stays open", []string{"3"}, false, "3"},
		{"forced single digit pads", []string{"1"}, true, "01."},
		{"full day emits separator", []string{"31"}, false, "31."},
		{"zero day kept", []string{"00"}, false, "00."},
		{"overflow day keeps last digit", []string{"32"}, false, "2"},
		{"overflow day 99 keeps last digit", []string{"99"}, false, "9"},
		{"month in progress", []string{"01", "1"}, false, "01.1"},
		{"month high digit auto-pads", []string{"01", "4"}, false, "01.04."},
		{"month overflow keeps last digit", []string{"01", "13"}, false, "01.3"},
		{"month forced pads", []string{"01", "1"}, true, "01.01."},
		{"force consumed by day not month", []string{"1", "1"}, true, "01.1"},
		{"partial year left as typed", []string{"01", "02", "20"}, false, "01.02.20"},
		{"complete date", []string{"01", "02", "2020"}, false, "01.02.2020"},
		{"complete date force is no-op", []string{"01", "02", "2020"}, true, "01.02.2020"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatSegments(DayMonthYear, ".", tt.segs, tt.force)
			if got != tt.want {
				t.Errorf("FormatSegments(%v, force=%v) = %q, want %q", tt.segs, tt.force, got, tt.want)
			}
		})
	}
}

func TestFormatSegmentsMonthDayYear(t *testing.T) {
	tests := []struct {
		name  string
		segs  []string
		force bool
		want  string
	}{
		{"month first", []string{"12"}, false, "12/"},
		{"month overflow", []string{"13"}, false, "3"},
		{"month then day", []string{"12", "31"}, false, "12/31/"},
		{"day overflow keeps last", []string{"12", "32"}, false, "12/2"},
		{"high month digit pads", []string{"2"}, false, "02/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatSegments(MonthDayYear, "/", tt.segs, tt.force)
			if got != tt.want {
				t.Errorf("FormatSegments(%v, force=%v) = %q, want %q", tt.segs, tt.force, got, tt.want)
			}
		})
	}
}

func TestFormatSegmentsMonthYear(t *testing.T) {
	tests := []struct {
		name  string
		segs  []string
		force bool
		want  string
	}{
		{"complete", []string{"02", "2020"}, false, "02.2020"},
		{"month overflow", []string{"13"}, false, "3"},
		{"partial year kept", []string{"12", "20"}, false, "12.20"},
		{"forced month", []string{"1"}, true, "01."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatSegments(MonthYear, ".", tt.segs, tt.force)
			if got != tt.want {
				t.Errorf("FormatSegments(%v, force=%v) = %q, want %q", tt.segs, tt.force, got, tt.want)
			}
		})
	}
}

func TestFormatSegmentsHourMinute(t *testing.T) {
	tests := []struct {
		name  string
		segs  []string
		force bool
		want  string
	}{
		{"hour in progress", []string{"1"}, false, "1"},
		{"high hour digit pads", []string{"9"}, false, "09:"},
		{"boundary hour digit stays open", []string{"2"}, false, "2"},
		{"forced hour pads", []string{"2"}, true, "02:"},
		{"hour overflow clamps to cap", []string{"99"}, false, "23:"},
		{"hour 24 clamps", []string{"24"}, false, "23:"},
		{"hour 23 kept", []string{"23"}, false, "23:"},
		{"complete time", []string{"09", "30"}, false, "09:30"},
		{"minute passes through unvalidated", []string{"23", "99"}, false, "23:99"},
		{"partial minute", []string{"09", "3"}, false, "09:3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatSegments(HourMinute, ":", tt.segs, tt.force)
			if got != tt.want {
				t.Errorf("FormatSegments(%v, force=%v) = %q, want %q", tt.segs, tt.force, got, tt.want)
			}
		})
	}
}

func TestFormatSegmentsEmptySeparator(t *testing.T) {
	got := FormatSegments(DayMonthYear, "", []string{"01", "02", "2020"}, false)
	if got != "01022020" {
		t.Errorf("FormatSegments with empty separator = %q, want %q", got, "01022020")
	}

	// In-progress segments behave the same, just without the separator.
	got = FormatSegments(DayMonthYear, "", []string{"4"}, false)
	if got != "04" {
		t.Errorf("FormatSegments(%v) with empty separator = %q, want %q", []string{"4"}, got, "04")
	}
}

func TestFormatSegmentsQuoteStripping(t *testing.T) {
	// Whatever the input, no template quote characters may leak into the
	// output.
	cases := [][]string{nil, {"1"}, {"31"}, {"01", "02", "2020"}, {"9"}}
	for _, segs := range cases {
		got := FormatSegments(DayMonthYear, ".", segs, false)
		for _, r := range got {
			if r == '\'' {
				t.Errorf("FormatSegments(%v) = %q contains a quote character", segs, got)
			}
		}
	}
}
