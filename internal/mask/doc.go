// Package mask implements the incremental date/time text-masking engine.
//
// The engine reconstructs a partially or fully formed date or time string
// from raw edit events against a text field. Each edit (replace a UTF-16
// character range with a replacement string) is processed through four
// stages:
//
//   - Sanitize: strip symbol/pictograph characters and non-digits from the
//     proposed post-edit text.
//   - SplitSegments: greedily split the remaining digits into segments per
//     the active format's width plan.
//   - FormatSegments: rebuild the display string, applying per-segment caps,
//     zero-padding, and separator insertion.
//   - ParseDate/RenderDate: convert between the masked text and a time.Time
//     for the date accessor.
//
// There is no persistent parse state between edits: the current text is the
// state, and every edit derives a fresh mask from it. An Engine wraps the
// pure functions with format/separator configuration and synchronous change
// notification; all Engine methods must be called from the single goroutine
// that owns the associated text field.
package mask
