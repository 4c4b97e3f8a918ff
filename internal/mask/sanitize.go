package mask

import (
	"strings"

	"github.com/rivo/uniseg"
)

// Symbol and pictograph ranges removed before digit filtering. These cover
// musical notation, letterlike symbols, arrows, dingbats, emoji, and the
// ornamental dingbat extensions that paste buffers commonly carry.
func isSymbolRune(r rune) bool {
	return (r >= 0x2100 && r <= 0x26FF) || (r >= 0x1D000 && r <= 0x1F77F)
}

// Sanitize reduces a proposed post-edit string to its ASCII digits.
//
// The input is walked by grapheme cluster so that multi-code-unit symbols
// (emoji with modifiers, ZWJ sequences) are dropped whole rather than split
// into stray code units. Any cluster containing a symbol/pictograph rune is
// removed first; everything that is not an ASCII digit goes next. Sanitize
// is total and idempotent.
func Sanitize(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	gr := uniseg.NewGraphemes(s)
	for gr.Next() {
		runes := gr.Runes()
		if clusterHasSymbol(runes) {
			continue
		}
		for _, r := range runes {
			if r >= '0' && r <= '9' {
				b.WriteRune(r)
			}
		}
	}
	return b.String()
}

func clusterHasSymbol(runes []rune) bool {
	for _, r := range runes {
		if isSymbolRune(r) {
			return true
		}
	}
	return false
}
