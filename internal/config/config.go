// Package config loads and persists maskfield settings.
//
// Settings live in a single JSON file. Individual values are read with
// gjson paths so a partial file is fine: anything absent falls back to a
// default. Saving rewrites only the known paths via sjson, preserving
// unrelated keys a user may have added.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gdamore/tcell/v2"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/dshills/maskfield/internal/mask"
)

// Settings holds the demo application configuration.
type Settings struct {
	// Format is the mask layout for the main date field.
	Format mask.Format

	// Separator is the segment separator. May be empty.
	Separator string

	// PlaceholderRune, when set, replaces the template letters in the
	// field hint, e.g. "__.__.____" instead of "DD.MM.YYYY". Zero keeps
	// the letters.
	PlaceholderRune rune

	// Theme holds optional widget color overrides.
	Theme Theme

	// LogLevel sets logging verbosity (debug, info, warn, error).
	LogLevel string

	// Debug enables debug logging to a file.
	Debug bool
}

// Theme names the colors of the field widget's parts. Values are tcell
// color names ("gray", "darkcyan") or #rrggbb hex; empty keeps the
// widget's built-in style.
type Theme struct {
	Label string
	Text  string
	Hint  string
	Focus string
}

// Default returns the settings used when no config file exists.
func Default() *Settings {
	return &Settings{
		Format:    mask.DayMonthYear,
		Separator: mask.DayMonthYear.DefaultSeparator(),
		LogLevel:  "info",
	}
}

// DefaultPath returns the conventional config file location.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "maskfield", "config.json")
}

// Load reads settings from path. A missing file yields Default(); a file
// that exists but cannot be read or contains invalid values is an error.
func Load(path string) (*Settings, error) {
	s := Default()
	if path == "" {
		return s, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("config: %s: %w", path, ErrInvalidJSON)
	}

	if v := gjson.GetBytes(data, "field.format"); v.Exists() {
		f, ok := mask.ParseFormat(v.String())
		if !ok {
			return nil, fmt.Errorf("config: field.format %q: %w", v.String(), ErrUnknownFormat)
		}
		s.Format = f
		s.Separator = f.DefaultSeparator()
	}

	if v := gjson.GetBytes(data, "field.separator"); v.Exists() {
		s.Separator = v.String()
	}

	if v := gjson.GetBytes(data, "field.placeholderRune"); v.Exists() && v.String() != "" {
		runes := []rune(v.String())
		if len(runes) != 1 {
			return nil, fmt.Errorf("config: field.placeholderRune %q: %w", v.String(), ErrInvalidPlaceholder)
		}
		s.PlaceholderRune = runes[0]
	}

	colors := []struct {
		path string
		dst  *string
	}{
		{"theme.label", &s.Theme.Label},
		{"theme.text", &s.Theme.Text},
		{"theme.hint", &s.Theme.Hint},
		{"theme.focus", &s.Theme.Focus},
	}
	for _, c := range colors {
		v := gjson.GetBytes(data, c.path)
		if !v.Exists() || v.String() == "" {
			continue
		}
		if !validColor(v.String()) {
			return nil, fmt.Errorf("config: %s %q: %w", c.path, v.String(), ErrUnknownColor)
		}
		*c.dst = v.String()
	}

	if v := gjson.GetBytes(data, "log.level"); v.Exists() {
		switch v.String() {
		case "debug", "info", "warn", "error":
			s.LogLevel = v.String()
		default:
			return nil, fmt.Errorf("config: log.level %q: %w", v.String(), ErrInvalidLogLevel)
		}
	}

	if v := gjson.GetBytes(data, "log.debug"); v.Exists() {
		s.Debug = v.Bool()
	}

	return s, nil
}

// validColor reports whether name is a tcell color name or #rrggbb hex.
func validColor(name string) bool {
	if _, ok := tcell.ColorNames[name]; ok {
		return true
	}
	return len(name) == 7 && name[0] == '#' && tcell.GetColor(name) != tcell.ColorDefault
}

// Save writes the settings to path, creating parent directories as needed.
// Keys outside the known paths are preserved if the file already exists.
func (s *Settings) Save(path string) error {
	if path == "" {
		return ErrNoPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("config: read %s: %w", path, err)
		}
		data = []byte("{}")
	}

	type setting struct {
		path  string
		value any
	}
	sets := []setting{
		{"field.format", s.Format.String()},
		{"field.separator", s.Separator},
		{"log.level", s.LogLevel},
		{"log.debug", s.Debug},
	}
	if s.PlaceholderRune != 0 {
		sets = append(sets, setting{"field.placeholderRune", string(s.PlaceholderRune)})
	}
	themes := []setting{
		{"theme.label", s.Theme.Label},
		{"theme.text", s.Theme.Text},
		{"theme.hint", s.Theme.Hint},
		{"theme.focus", s.Theme.Focus},
	}
	for _, th := range themes {
		if th.value != "" {
			sets = append(sets, th)
		}
	}
	for _, set := range sets {
		data, err = sjson.SetBytes(data, set.path, set.value)
		if err != nil {
			return fmt.Errorf("config: set %s: %w", set.path, err)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("config: create dir for %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("config: write %s: %w", path, err)
	}
	return nil
}
