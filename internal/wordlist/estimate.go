package wordlist

import (
	"math"
)

// EstimateRange returns the total number of words a range-mode run produces:
// the sum of charsetSize^L for every L from minLen through maxLen.
func EstimateRange(charsetSize, minLen, maxLen int) (uint64, error) {
	base := uint64(charsetSize)
	if base == 0 {
		return 0, nil
	}

	var total uint64

	for length := minLen; length <= maxLen; length++ {
		power, err := pow(base, length)
		if err != nil {
			return 0, err
		}

		if total > math.MaxUint64-power {
			return 0, ErrTooManyCombinations
		}

		total += power
	}

	return total, nil
}

// EstimatePattern returns the total number of words a pattern-mode run
// produces: charsetSize^wildcards, with zero wildcards yielding the literal
// pattern once and an empty charset yielding the empty product.
func EstimatePattern(charsetSize, wildcards int) (uint64, error) {
	if wildcards == 0 {
		return 1, nil
	}

	if charsetSize == 0 {
		return 0, nil
	}

	return pow(uint64(charsetSize), wildcards)
}

func pow(base uint64, exp int) (uint64, error) {
	power := uint64(1)

	for i := 0; i < exp; i++ {
		if power > math.MaxUint64/base {
			return 0, ErrTooManyCombinations
		}

		power *= base
	}

	return power, nil
}
