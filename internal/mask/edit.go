package mask

import (
	"strings"
	"unicode/utf16"
)

// Span is a character range in UTF-16 code units, as host text widgets
// report edit ranges. End is exclusive.
type Span struct {
	Start int
	End   int
}

// Edit is one requested text change: replace Range in the current text
// with Replacement. An empty Replacement is a deletion.
type Edit struct {
	Range       Span
	Replacement string
}

// State is the engine state threaded through edit handling. The displayed
// text is the only state; every edit derives a fresh mask from it.
type State struct {
	Text string
}

// Verdict is the engine's decision on a requested edit.
type Verdict int

const (
	// VerdictRewrite means the engine produced the authoritative text
	// itself; the host must suppress its native edit.
	VerdictRewrite Verdict = iota

	// VerdictNative means the host should apply its native edit
	// unchanged (deletions pass through).
	VerdictNative

	// VerdictReject means the edit was refused and the text is
	// unchanged.
	VerdictReject
)

// ApplyEdit processes one edit event against the current state and returns
// the resulting state. It is a pure function of (format, separator, state,
// edit).
//
// Deletions pass through: the returned state reflects the native deletion
// and the verdict is VerdictNative. Any other edit is spliced, sanitized,
// and re-masked; if the digit count would exceed the format's capacity the
// edit is rejected and the state returned unchanged.
func ApplyEdit(f Format, sep string, st State, ev Edit) (State, Verdict) {
	start, end := byteRange(st.Text, ev.Range)

	if ev.Replacement == "" {
		return State{Text: st.Text[:start] + st.Text[end:]}, VerdictNative
	}

	candidate := st.Text[:start] + ev.Replacement + st.Text[end:]
	digits := Sanitize(candidate)
	if len(digits) > f.MaxDigits() {
		return st, VerdictReject
	}

	force := sep != "" && strings.HasSuffix(ev.Replacement, sep)
	segs := SplitSegments(digits, f.Widths())
	return State{Text: FormatSegments(f, sep, segs, force)}, VerdictRewrite
}

// byteRange converts a UTF-16 span to byte offsets in s. Offsets are
// clamped to the text bounds; an offset landing inside a surrogate pair
// snaps forward to the following rune boundary.
func byteRange(s string, sp Span) (int, int) {
	if sp.Start < 0 {
		sp.Start = 0
	}
	if sp.End < sp.Start {
		sp.End = sp.Start
	}

	start, end := -1, -1
	units := 0
	for i, r := range s {
		if start < 0 && units >= sp.Start {
			start = i
		}
		if end < 0 && units >= sp.End {
			end = i
		}
		units += len(utf16.Encode([]rune{r}))
	}
	if start < 0 {
		start = len(s)
	}
	if end < 0 {
		end = len(s)
	}
	return start, end
}

// UTF16Len reports the length of s in UTF-16 code units.
func UTF16Len(s string) int {
	n := 0
	for _, r := range s {
		n += len(utf16.Encode([]rune{r}))
	}
	return n
}
