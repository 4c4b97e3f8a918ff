package mask

import (
	"strconv"
	"strings"
)

// FormatSegments rebuilds the display text from raw digit segments.
//
// Each validated field (day, month, hour) is checked against its cap and
// padded or coerced per its policy; the separator after a field is emitted
// only when the field is complete. Pass-through fields (year, minute) are
// substituted verbatim. force marks that the replacement text ended on the
// separator, closing the first in-progress field it reaches; it applies to
// at most one field per edit.
//
// Substitution is literal: placeholders are replaced in field order, each
// separator marker becomes the configured separator or the empty string,
// and the quote characters delimiting markers in the template are stripped
// last.
func FormatSegments(f Format, sep string, segs []string, force bool) string {
	spec := f.spec()
	out := spec.template

	for i, fs := range spec.fields {
		seg := ""
		if i < len(segs) {
			seg = segs[i]
		}

		text := seg
		emitSep := false
		if fs.cap > 0 {
			text, emitSep = formatField(fs, seg, &force)
		}

		out = strings.Replace(out, fs.placeholder, text, 1)
		if fs.marker != "" {
			gate := ""
			if emitSep {
				gate = sep
			}
			out = strings.Replace(out, "'"+fs.marker+"'", gate, 1)
		}
	}

	return strings.ReplaceAll(out, "'", "")
}

// formatField applies the per-segment decision procedure for a validated
// field. It returns the digits to display and whether the trailing
// separator should be emitted. force is consumed (cleared) when it closes
// this field.
func formatField(fs fieldSpec, seg string, force *bool) (string, bool) {
	switch {
	case len(seg) >= 2:
		v, err := strconv.Atoi(seg)
		if err == nil && v <= fs.cap {
			return seg, true
		}
		if fs.overflow == overflowClamp {
			return strconv.Itoa(fs.cap), true
		}
		// Keep only the last typed digit so the user can recover from
		// an over-cap value without the field getting stuck.
		return seg[len(seg)-1:], false

	case len(seg) == 1:
		if seg[0] > fs.pivot {
			// No second digit could keep the value in range; the
			// field is already complete.
			return "0" + seg, true
		}
		if *force {
			*force = false
			return "0" + seg, true
		}
		return seg, false

	default:
		return "", false
	}
}
