package wordlist

import (
	"errors"
)

var (
	// ErrTooManyCombinations error if the combination count overflows uint64.
	ErrTooManyCombinations = errors.New("combination count does not fit in 64 bits")
)
