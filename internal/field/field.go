// Package field implements a single-line masked text field for tcell
// screens. The field owns a mask.Engine and translates key events into
// edit requests; the engine decides the resulting text and the field
// honors its verdict, so the displayed text is always a well-formed mask.
package field

import (
	"strings"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/dshills/maskfield/internal/input/key"
	"github.com/dshills/maskfield/internal/mask"
)

// Field is a single-line masked input widget.
type Field struct {
	engine *mask.Engine
	label  string

	// cursor is the caret position in UTF-16 code units. Mask text is
	// ASCII, so units, runes, and bytes coincide; the unit form matches
	// the spans the engine consumes.
	cursor  int
	focused bool

	// placeholder, when non-zero, replaces the template letters in the
	// drawn hint.
	placeholder rune

	labelStyle tcell.Style
	textStyle  tcell.Style
	hintStyle  tcell.Style
	focusStyle tcell.Style
}

// Option configures a Field.
type Option func(*Field)

// WithLabelStyle sets the label style.
func WithLabelStyle(s tcell.Style) Option {
	return func(f *Field) { f.labelStyle = s }
}

// WithTextStyle sets the entered-text style.
func WithTextStyle(s tcell.Style) Option {
	return func(f *Field) { f.textStyle = s }
}

// WithHintStyle sets the style of the untyped placeholder remainder.
func WithHintStyle(s tcell.Style) Option {
	return func(f *Field) { f.hintStyle = s }
}

// WithFocusStyle sets the label style while the field has focus.
func WithFocusStyle(s tcell.Style) Option {
	return func(f *Field) { f.focusStyle = s }
}

// WithPlaceholderRune draws r instead of the template letters in the
// untyped hint, e.g. '_' turns "DD.MM.YYYY" into "__.__.____".
func WithPlaceholderRune(r rune) Option {
	return func(f *Field) { f.placeholder = r }
}

// New creates a field around an engine.
func New(label string, engine *mask.Engine, opts ...Option) *Field {
	f := &Field{
		engine:     engine,
		label:      label,
		labelStyle: tcell.StyleDefault,
		textStyle:  tcell.StyleDefault.Bold(true),
		hintStyle:  tcell.StyleDefault.Dim(true),
		focusStyle: tcell.StyleDefault.Underline(true),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Engine returns the field's mask engine.
func (f *Field) Engine() *mask.Engine {
	return f.engine
}

// Label returns the field label.
func (f *Field) Label() string {
	return f.label
}

// Text returns the current masked text.
func (f *Field) Text() string {
	return f.engine.Text()
}

// SetFocused sets the focus flag. A newly focused field places its caret
// at the end of the text.
func (f *Field) SetFocused(focused bool) {
	f.focused = focused
	if focused {
		f.cursor = mask.UTF16Len(f.engine.Text())
	}
}

// Focused reports whether the field has focus.
func (f *Field) Focused() bool {
	return f.focused
}

// Cursor returns the caret position in UTF-16 code units.
func (f *Field) Cursor() int {
	return f.cursor
}

// HandleKey processes one key event. It returns true when the event was
// consumed by the field.
func (f *Field) HandleKey(ev key.Event) bool {
	switch {
	case ev.IsRune() && !ev.IsModified():
		f.insert(string(ev.Rune))
		return true

	case ev.IsBackspace():
		if f.cursor > 0 {
			f.requestEdit(mask.Span{Start: f.cursor - 1, End: f.cursor}, "")
			f.cursor--
		}
		return true

	case ev.IsDelete():
		if f.cursor < mask.UTF16Len(f.engine.Text()) {
			f.requestEdit(mask.Span{Start: f.cursor, End: f.cursor + 1}, "")
		}
		return true

	case ev.Key == key.KeyLeft && ev.Modifiers.IsEmpty():
		if f.cursor > 0 {
			f.cursor--
		}
		return true

	case ev.Key == key.KeyRight && ev.Modifiers.IsEmpty():
		if f.cursor < mask.UTF16Len(f.engine.Text()) {
			f.cursor++
		}
		return true

	case ev.Key == key.KeyHome && ev.Modifiers.IsEmpty():
		f.cursor = 0
		return true

	case ev.Key == key.KeyEnd && ev.Modifiers.IsEmpty():
		f.cursor = mask.UTF16Len(f.engine.Text())
		return true
	}

	return false
}

// HandlePaste inserts pasted text as a single bulk edit at the caret.
func (f *Field) HandlePaste(text string) {
	if text != "" {
		f.insert(text)
	}
}

// insert requests an insertion at the caret. When the engine rewrites the
// text the caret moves to the end of the rewritten mask; a rejected edit
// leaves text and caret untouched.
func (f *Field) insert(s string) {
	before := f.engine.Text()
	f.requestEdit(mask.Span{Start: f.cursor, End: f.cursor}, s)
	if f.engine.Text() != before {
		f.cursor = mask.UTF16Len(f.engine.Text())
	}
}

func (f *Field) requestEdit(rng mask.Span, replacement string) {
	f.clampCursor()
	f.engine.OnEditRequested(f.engine.Text(), rng, replacement)
}

func (f *Field) clampCursor() {
	max := mask.UTF16Len(f.engine.Text())
	if f.cursor > max {
		f.cursor = max
	}
	if f.cursor < 0 {
		f.cursor = 0
	}
}

// Draw renders the field at (x, y) and returns the screen column of the
// caret. The untyped remainder of the mask shows as a dim hint, e.g.
// "31.12.YYYY" while the year is incomplete.
func (f *Field) Draw(s tcell.Screen, x, y int) int {
	col := x

	labelStyle := f.labelStyle
	if f.focused {
		labelStyle = f.focusStyle
	}
	for _, r := range f.label {
		s.SetContent(col, y, r, nil, labelStyle)
		col += runewidth.RuneWidth(r)
	}

	text := f.engine.Text()
	start := col
	for _, r := range text {
		s.SetContent(col, y, r, nil, f.textStyle)
		col += runewidth.RuneWidth(r)
	}

	for _, r := range hintRemainder(f.hint(), text) {
		s.SetContent(col, y, r, nil, f.hintStyle)
		col += runewidth.RuneWidth(r)
	}

	return start + f.cursor
}

// Width returns the total drawn width of the field in screen cells.
func (f *Field) Width() int {
	text := f.engine.Text()
	return runewidth.StringWidth(f.label) +
		runewidth.StringWidth(text) +
		runewidth.StringWidth(hintRemainder(f.hint(), text))
}

// hint returns the mask hint with the placeholder rune, if configured,
// substituted for the template letters.
func (f *Field) hint() string {
	h := mask.Hint(f.engine.Format(), f.engine.Separator())
	if f.placeholder == 0 {
		return h
	}
	return strings.Map(func(r rune) rune {
		if r >= 'A' && r <= 'Z' {
			return f.placeholder
		}
		return r
	}, h)
}

// hintRemainder returns the untyped tail of the hint. Each text rune
// covers one hint slot (a digit over a template letter, the separator
// over itself), so the tail starts at the text's rune count; byte
// offsets would land inside a multibyte separator.
func hintRemainder(hint, text string) string {
	runes := []rune(hint)
	n := utf8.RuneCountInString(text)
	if n >= len(runes) {
		return ""
	}
	return string(runes[n:])
}
