package mask

// Format selects one of the supported date/time layouts.
type Format int

const (
	// MonthYear is a month and four-digit year, e.g. "02.2020".
	MonthYear Format = iota

	// DayMonthYear is day, month, four-digit year, e.g. "01.02.2020".
	DayMonthYear

	// MonthDayYear is month, day, four-digit year, e.g. "02.01.2020".
	MonthDayYear

	// HourMinute is a 24-hour time, e.g. "09:30".
	HourMinute
)

// overflowPolicy decides what happens to a full-width segment whose value
// exceeds the field cap.
type overflowPolicy int

const (
	// overflowKeepLast drops all but the last typed digit and suppresses
	// the trailing separator, letting the user continue from a valid
	// leading digit.
	overflowKeepLast overflowPolicy = iota

	// overflowClamp replaces the segment with the cap value and emits the
	// separator.
	overflowClamp
)

// fieldSpec describes one segment of a format.
type fieldSpec struct {
	name        string
	placeholder string

	// width is the maximum digit count for the segment.
	width int

	// cap is the largest accepted numeric value. Zero marks a
	// pass-through field (year, minute) that is inserted verbatim.
	cap int

	// pivot is the largest leading digit that still admits a second
	// digit without exceeding cap. A lone digit above the pivot is
	// complete and auto-pads.
	pivot byte

	// overflow selects the recovery strategy for over-cap values.
	overflow overflowPolicy

	// marker is the separator-gate symbol following this field in the
	// template, or "" for the trailing field.
	marker string
}

// formatSpec carries the data for one Format value.
type formatSpec struct {
	name string

	// template contains field placeholders and quoted separator markers.
	// Quote characters delimit the marker symbols and are stripped from
	// the final output.
	template string

	fields []fieldSpec

	// maxDigits is the total digit capacity; edits producing more digits
	// are rejected outright. Always equals the sum of field widths.
	maxDigits int

	// defaultSep is the separator used when none is configured.
	defaultSep string

	// layout is the reference-time layout with markers still in place.
	layout string
}

var (
	dayField    = fieldSpec{name: "day", placeholder: "DD", width: 2, cap: 31, pivot: '3', overflow: overflowKeepLast}
	monthField  = fieldSpec{name: "month", placeholder: "MM", width: 2, cap: 12, pivot: '1', overflow: overflowKeepLast}
	yearField   = fieldSpec{name: "year", placeholder: "YYYY", width: 4}
	hourField   = fieldSpec{name: "hour", placeholder: "HH", width: 2, cap: 23, pivot: '2', overflow: overflowClamp}
	minuteField = fieldSpec{name: "minute", placeholder: "MM", width: 2}
)

func withMarker(f fieldSpec, marker string) fieldSpec {
	f.marker = marker
	return f
}

var formatSpecs = [...]formatSpec{
	MonthYear: {
		name:       "monthYear",
		template:   "MM'$'YYYY",
		fields:     []fieldSpec{withMarker(monthField, "$"), yearField},
		maxDigits:  6,
		defaultSep: ".",
		layout:     "01'$'2006",
	},
	DayMonthYear: {
		name:       "dayMonthYear",
		template:   "DD'*'MM'$'YYYY",
		fields:     []fieldSpec{withMarker(dayField, "*"), withMarker(monthField, "$"), yearField},
		maxDigits:  8,
		defaultSep: ".",
		layout:     "02'*'01'$'2006",
	},
	MonthDayYear: {
		name:       "monthDayYear",
		template:   "MM'*'DD'$'YYYY",
		fields:     []fieldSpec{withMarker(monthField, "*"), withMarker(dayField, "$"), yearField},
		maxDigits:  8,
		defaultSep: ".",
		layout:     "01'*'02'$'2006",
	},
	HourMinute: {
		name:       "hourMinute",
		template:   "HH'$'MM",
		fields:     []fieldSpec{withMarker(hourField, "$"), minuteField},
		maxDigits:  4,
		defaultSep: ":",
		layout:     "15'$'04",
	},
}

func (f Format) valid() bool {
	return f >= MonthYear && f <= HourMinute
}

func (f Format) spec() formatSpec {
	if !f.valid() {
		return formatSpecs[DayMonthYear]
	}
	return formatSpecs[f]
}

// String returns the format name.
func (f Format) String() string {
	return f.spec().name
}

// Widths returns the width plan: maximum digit count per segment in order.
func (f Format) Widths() []int {
	fields := f.spec().fields
	widths := make([]int, len(fields))
	for i, fs := range fields {
		widths[i] = fs.width
	}
	return widths
}

// MaxDigits returns the total digit capacity of the format.
func (f Format) MaxDigits() int {
	return f.spec().maxDigits
}

// FieldNames returns the segment names in display order.
func (f Format) FieldNames() []string {
	fields := f.spec().fields
	names := make([]string, len(fields))
	for i, fs := range fields {
		names[i] = fs.name
	}
	return names
}

// DefaultSeparator returns the separator used when none is configured:
// "." for the date formats, ":" for HourMinute.
func (f Format) DefaultSeparator() string {
	return f.spec().defaultSep
}

// ParseFormat resolves a format name as used in configuration files.
func ParseFormat(name string) (Format, bool) {
	for f, spec := range formatSpecs {
		if spec.name == name {
			return Format(f), true
		}
	}
	return DayMonthYear, false
}
