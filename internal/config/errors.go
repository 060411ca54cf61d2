package config

import (
	"errors"
)

var (
	// ErrNoCharacterSource error if neither a charset, a pattern, nor any
	// predefined class was selected.
	ErrNoCharacterSource = errors.New("you must specify a character set or pattern")

	// ErrConflictingLengths error if a fixed length is combined with a
	// non-default min/max range.
	ErrConflictingLengths = errors.New("use either --length OR --min-length/--max-length, not both")

	// ErrMinAboveMax error if min-length exceeds max-length.
	ErrMinAboveMax = errors.New("min-length cannot be greater than max-length")

	// ErrMinBelowOne error if min-length is below 1.
	ErrMinBelowOne = errors.New("min-length must be at least 1")

	// ErrNoOutput error if no output file path was given for generation.
	ErrNoOutput = errors.New("an output file path is required")
)
