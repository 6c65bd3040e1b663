package csvdoc

import "github.com/pkg/errors"

var (
	// ErrEmptyInput is returned when there is no text to parse.
	ErrEmptyInput = errors.New("csvdoc: empty input")
	// ErrInvalidSeparator is returned when an explicit separator is not exactly one character.
	ErrInvalidSeparator = errors.New("csvdoc: separator must be a single character")
)
