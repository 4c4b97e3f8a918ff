package mask

import (
	"time"

	"github.com/dshills/maskfield/internal/notify"
)

// Engine owns the masked text of one field together with its format and
// separator configuration. It is not safe for concurrent use; all methods
// must be called from the goroutine that owns the associated text field.
type Engine struct {
	format Format
	sep    string
	state  State

	// formatLocked pins the format for time-only engines.
	formatLocked bool

	notifier *notify.Notifier
}

// Option configures an Engine.
type Option func(*Engine)

// WithSeparator sets the separator string. The empty string is legal and
// produces an unseparated mask.
func WithSeparator(sep string) Option {
	return func(e *Engine) {
		e.sep = sep
	}
}

// WithText sets the initial field text.
func WithText(text string) Option {
	return func(e *Engine) {
		e.state = State{Text: text}
	}
}

// New creates an engine for the given format. The separator defaults to
// the format's own ("." for dates, ":" for times).
func New(f Format, opts ...Option) *Engine {
	e := &Engine{
		format:   f,
		sep:      f.DefaultSeparator(),
		notifier: notify.New(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// NewTimeEngine creates an engine permanently pinned to HourMinute.
// SetFormat calls on the returned engine are ignored.
func NewTimeEngine(opts ...Option) *Engine {
	e := New(HourMinute, opts...)
	e.formatLocked = true
	return e
}

// Text returns the current field text.
func (e *Engine) Text() string {
	return e.state.Text
}

// Format returns the active format.
func (e *Engine) Format() Format {
	return e.format
}

// SetFormat changes the active format. Time-only engines ignore the call.
// The current text is left as typed.
func (e *Engine) SetFormat(f Format) {
	if e.formatLocked || !f.valid() {
		return
	}
	e.format = f
}

// Separator returns the configured separator.
func (e *Engine) Separator() string {
	return e.sep
}

// SetSeparator changes the separator used for masking and date conversion.
func (e *Engine) SetSeparator(sep string) {
	e.sep = sep
}

// OnEditRequested decides one edit event from the host widget.
//
// It returns true when the host should apply its native edit unchanged
// (deletions), and false otherwise: either the engine rewrote the text
// itself (read it back via Text) or the edit was rejected because it would
// exceed the format's digit capacity. A change notification fires for every
// processed edit, including pass-through deletions; rejected edits do not
// notify.
func (e *Engine) OnEditRequested(currentText string, rng Span, replacement string) bool {
	st, verdict := ApplyEdit(e.format, e.sep, State{Text: currentText}, Edit{Range: rng, Replacement: replacement})
	if verdict == VerdictReject {
		return false
	}

	e.state = st
	e.notifyChange()
	return verdict == VerdictNative
}

// Date parses the current text. The second return value is false while the
// text is not yet a complete, layout-matching date.
func (e *Engine) Date() (time.Time, bool) {
	return ParseDate(e.state.Text, e.format, e.sep)
}

// SetDate renders a date into the field text. A nil date clears the text.
func (e *Engine) SetDate(t *time.Time) {
	if t == nil {
		e.state = State{}
	} else {
		e.state = State{Text: RenderDate(*t, e.format, e.sep)}
	}
	e.notifyChange()
}

// OnChange subscribes to change notifications for this engine.
func (e *Engine) OnChange(observer notify.Observer) *notify.Subscription {
	return e.notifier.Subscribe(observer)
}

func (e *Engine) notifyChange() {
	date, ok := e.Date()
	e.notifier.Notify(notify.Change{Source: e, Text: e.state.Text, Date: date, OK: ok})
}
