// Package key provides the key event types consumed by masked fields.
//
// It defines:
//
//   - Key: identifies a keyboard key (special keys or runes)
//   - Modifier: represents modifier keys (Ctrl, Alt, Shift, Meta)
//   - Event: a single key press with modifiers
//
// The set of special keys is deliberately small: a single-line masked
// field only reacts to editing and cursor-movement keys. Translation from
// terminal backend events lives in the field package.
package key
