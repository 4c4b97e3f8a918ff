// Package app wires the maskfield demo together: configuration, the
// terminal screen, three masked fields, and the main event loop.
package app

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/maskfield/internal/config"
	"github.com/dshills/maskfield/internal/field"
	"github.com/dshills/maskfield/internal/mask"
	"github.com/dshills/maskfield/internal/notify"
)

// Options configures the application.
type Options struct {
	// ConfigPath is the path to the configuration file. Empty uses the
	// default location.
	ConfigPath string

	// Format overrides the configured mask format for the date field.
	Format string

	// Separator overrides the configured separator. SeparatorSet marks
	// the override as present, since the empty separator is legal.
	Separator    string
	SeparatorSet bool

	// Debug enables debug logging to a file.
	Debug bool

	// LogLevel sets the logging verbosity.
	LogLevel string
}

// Validate checks option values that cannot be verified later.
func (o Options) Validate() error {
	if o.Format != "" {
		if _, ok := mask.ParseFormat(o.Format); !ok {
			return fmt.Errorf("unknown format %q: %w", o.Format, config.ErrUnknownFormat)
		}
	}
	switch o.LogLevel {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level %q: %w", o.LogLevel, config.ErrInvalidLogLevel)
	}
	return nil
}

// Application owns the demo UI: a date field configured from settings, a
// month/year field, and a pinned time field. It is single-threaded: Run
// and all other methods must be called from the same goroutine.
type Application struct {
	screen   tcell.Screen
	settings *config.Settings
	logger   *Logger
	logFile  *os.File

	fields []*field.Field
	focus  int
	status string

	opts Options
}

// New creates an application from options, loading configuration and
// constructing the fields. The screen is attached separately via SetScreen.
func New(opts Options) (*Application, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	path := opts.ConfigPath
	if path == "" {
		path = config.DefaultPath()
	}
	settings, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	if opts.Format != "" {
		f, _ := mask.ParseFormat(opts.Format)
		settings.Format = f
		settings.Separator = f.DefaultSeparator()
	}
	if opts.SeparatorSet {
		settings.Separator = opts.Separator
	}
	if opts.LogLevel != "" {
		settings.LogLevel = opts.LogLevel
	}
	if opts.Debug {
		settings.Debug = true
	}

	a := &Application{
		settings: settings,
		logger:   NewDisabledLogger(),
		opts:     opts,
	}

	if settings.Debug {
		if err := a.openLog(); err != nil {
			return nil, err
		}
	}

	a.buildFields()
	a.logger.Info("initialized: format=%s separator=%q", settings.Format, settings.Separator)
	return a, nil
}

// openLog attaches the logger to a file in the cache directory.
func (a *Application) openLog() error {
	dir, err := os.UserCacheDir()
	if err != nil {
		dir = os.TempDir()
	}
	path := filepath.Join(dir, "maskfield.log")
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open log %s: %w", path, err)
	}
	a.logFile = f
	a.logger = NewLogger(ParseLogLevel(a.settings.LogLevel), f)
	return nil
}

// buildFields constructs the demo fields and subscribes to their engines.
func (a *Application) buildFields() {
	date := mask.New(a.settings.Format, mask.WithSeparator(a.settings.Separator))
	monthYear := mask.New(mask.MonthYear)
	clock := mask.NewTimeEngine()

	opts := a.fieldOptions()
	a.fields = []*field.Field{
		field.New("Date:       ", date, opts...),
		field.New("Month/Year: ", monthYear, opts...),
		field.New("Time:       ", clock, opts...),
	}
	a.fields[0].SetFocused(true)

	for _, f := range a.fields {
		f.Engine().OnChange(func(c notify.Change) {
			a.onEngineChange(f, c)
		})
	}
}

// fieldOptions translates the placeholder and theme settings into widget
// options. Unset values keep the widget's built-in styles.
func (a *Application) fieldOptions() []field.Option {
	var opts []field.Option
	if r := a.settings.PlaceholderRune; r != 0 {
		opts = append(opts, field.WithPlaceholderRune(r))
	}

	th := a.settings.Theme
	if th.Label != "" {
		opts = append(opts, field.WithLabelStyle(tcell.StyleDefault.Foreground(tcell.GetColor(th.Label))))
	}
	if th.Text != "" {
		opts = append(opts, field.WithTextStyle(tcell.StyleDefault.Foreground(tcell.GetColor(th.Text)).Bold(true)))
	}
	if th.Hint != "" {
		opts = append(opts, field.WithHintStyle(tcell.StyleDefault.Foreground(tcell.GetColor(th.Hint)).Dim(true)))
	}
	if th.Focus != "" {
		opts = append(opts, field.WithFocusStyle(tcell.StyleDefault.Foreground(tcell.GetColor(th.Focus)).Underline(true)))
	}
	return opts
}

// onEngineChange refreshes the status line whenever any engine processes
// an edit.
func (a *Application) onEngineChange(f *field.Field, c notify.Change) {
	format := f.Engine().Format()
	if c.OK {
		a.status = fmt.Sprintf("parsed %s: %s", format, c.Date.Format("Mon, 02 Jan 2006 15:04"))
	} else {
		a.status = fmt.Sprintf("incomplete %s: %q", format, c.Text)
	}
	a.logger.Debug("change: %s", a.status)
}

// SetScreen attaches a terminal screen. Tests may pass a simulation screen.
func (a *Application) SetScreen(screen tcell.Screen) {
	a.screen = screen
}

// Fields returns the demo fields in focus order.
func (a *Application) Fields() []*field.Field {
	return a.fields
}

// Settings returns the effective settings.
func (a *Application) Settings() *config.Settings {
	return a.settings
}

// Run executes the event loop until the user quits or the screen closes.
func (a *Application) Run() error {
	if a.screen == nil {
		return fmt.Errorf("no screen attached")
	}
	if err := a.screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer a.screen.Fini()
	a.screen.EnablePaste()

	a.draw()
	for {
		ev := a.screen.PollEvent()
		if ev == nil {
			return nil
		}

		switch tev := ev.(type) {
		case *tcell.EventKey:
			if err := a.handleKey(tev); err != nil {
				return err
			}
		case *tcell.EventPaste:
			// Bracketed paste content arrives as rune events between
			// the start and end markers; nothing to do here.
		case *tcell.EventResize:
			a.screen.Sync()
		}

		a.draw()
	}
}

// Shutdown releases resources. Safe to call after Run returns.
func (a *Application) Shutdown() {
	if a.logFile != nil {
		a.logger.Info("shutting down")
		_ = a.logFile.Close()
		a.logFile = nil
	}
}

// handleKey routes one key event: global keys first, then the focused
// field.
func (a *Application) handleKey(tev *tcell.EventKey) error {
	if tev.Key() == tcell.KeyCtrlC {
		return ErrQuit
	}

	ev := field.FromBackend(tev)
	switch {
	case ev.IsEscape():
		return ErrQuit
	case ev.IsTab():
		a.cycleFocus()
		return nil
	}

	if a.focused().HandleKey(ev) {
		return nil
	}
	a.logger.Debug("unhandled key: %s", ev)
	return nil
}

func (a *Application) focused() *field.Field {
	return a.fields[a.focus]
}

func (a *Application) cycleFocus() {
	a.focused().SetFocused(false)
	a.focus = (a.focus + 1) % len(a.fields)
	a.focused().SetFocused(true)
}

// draw renders the fields, help line, and status line.
func (a *Application) draw() {
	a.screen.Clear()

	cursorX, cursorY := 0, 0
	for i, f := range a.fields {
		y := 1 + i*2
		x := f.Draw(a.screen, 2, y)
		if f.Focused() {
			cursorX, cursorY = x, y
		}
	}

	drawText(a.screen, 2, 1+len(a.fields)*2, tcell.StyleDefault.Dim(true),
		"Tab: next field   Esc: quit")
	drawText(a.screen, 2, 2+len(a.fields)*2, tcell.StyleDefault, a.status)

	a.screen.ShowCursor(cursorX, cursorY)
	a.screen.Show()
}

func drawText(s tcell.Screen, x, y int, style tcell.Style, text string) {
	for i, r := range text {
		s.SetContent(x+i, y, r, nil, style)
	}
}
