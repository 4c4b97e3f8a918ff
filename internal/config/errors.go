package config

import "errors"

var (
	// ErrInvalidJSON indicates the config file is not valid JSON.
	ErrInvalidJSON = errors.New("invalid JSON")

	// ErrUnknownFormat indicates field.format names no known mask format.
	ErrUnknownFormat = errors.New("unknown mask format")

	// ErrInvalidPlaceholder indicates field.placeholderRune is not a
	// single rune.
	ErrInvalidPlaceholder = errors.New("placeholder must be a single rune")

	// ErrUnknownColor indicates a theme value is neither a tcell color
	// name nor #rrggbb hex.
	ErrUnknownColor = errors.New("unknown color")

	// ErrInvalidLogLevel indicates log.level is not a recognized level.
	ErrInvalidLogLevel = errors.New("invalid log level")

	// ErrNoPath indicates a save was requested without a file path.
	ErrNoPath = errors.New("no config path")
)
