package mask

import (
	"strings"
	"time"
)

// Layout returns the time reference layout for a format and separator,
// e.g. "02.01.2006" for DayMonthYear with ".".
func Layout(f Format, sep string) string {
	return resolveMarkers(f.spec().layout, f, sep)
}

// Hint returns the empty-field placeholder text for a format and separator,
// e.g. "DD.MM.YYYY".
func Hint(f Format, sep string) string {
	return resolveMarkers(f.spec().template, f, sep)
}

// resolveMarkers substitutes the separator into the marker positions of a
// template-shaped string and strips the quote delimiters.
func resolveMarkers(tmpl string, f Format, sep string) string {
	out := tmpl
	for _, fs := range f.spec().fields {
		if fs.marker != "" {
			out = strings.Replace(out, "'"+fs.marker+"'", sep, 1)
		}
	}
	return strings.ReplaceAll(out, "'", "")
}

// ParseDate converts a fully-formed mask string to a date. The second
// return value is false when the text does not match the format's layout;
// an incomplete mask is not an error, just not yet a date.
func ParseDate(text string, f Format, sep string) (time.Time, bool) {
	if text == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(Layout(f, sep), text)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// RenderDate produces the mask text for a date under the given format and
// separator.
func RenderDate(t time.Time, f Format, sep string) string {
	return t.Format(Layout(f, sep))
}
