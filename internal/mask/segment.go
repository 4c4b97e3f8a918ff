package mask

// SplitSegments splits a digit string into consecutive chunks per the width
// plan. Each chunk takes the next widths[i] digits, or whatever remains if
// fewer are left; splitting stops once the digits are exhausted, so the
// result may be shorter than the plan. A chunk never exceeds its declared
// width. The caller bounds the total digit count before segmenting.
func SplitSegments(digits string, widths []int) []string {
	segs := make([]string, 0, len(widths))
	for _, w := range widths {
		if digits == "" {
			break
		}
		n := w
		if n > len(digits) {
			n = len(digits)
		}
		segs = append(segs, digits[:n])
		digits = digits[n:]
	}
	return segs
}
