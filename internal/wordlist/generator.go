// Package wordlist enumerates candidate words and streams them to a file.
package wordlist

// Wildcard is the pattern character replaced per combination.
const Wildcard = '?'

// Sequence is a lazy, finite, forward-only enumerator of candidate words.
// It is not restartable. Positions advance like an odometer over the charset,
// with the leftmost position varying slowest, so output is in increasing
// lexicographic order over charset indices.
type Sequence struct {
	charset []rune

	// pattern mode
	pattern []rune // nil in range mode
	slots   []int  // wildcard positions within pattern

	// range mode
	length int // current word length
	maxLen int

	idx     []int // odometer digits, one per generated position
	started bool
	done    bool
}

// NewRange enumerates every word of length minLen through maxLen drawn, with
// repetition, from charset.
func NewRange(charset string, minLen, maxLen int) *Sequence {
	return &Sequence{
		charset: []rune(charset),
		length:  minLen,
		maxLen:  maxLen,
	}
}

// NewPattern enumerates every substitution of charset characters into the
// wildcard positions of pattern, left to right, first occurrence first.
// Without wildcards the literal pattern is produced exactly once.
func NewPattern(pattern, charset string) *Sequence {
	patternRunes := []rune(pattern)

	var slots []int

	for i, r := range patternRunes {
		if r == Wildcard {
			slots = append(slots, i)
		}
	}

	return &Sequence{
		charset: []rune(charset),
		pattern: patternRunes,
		slots:   slots,
	}
}

// Next produces the following word. It reports false once the sequence is
// exhausted; after that every call reports false.
func (s *Sequence) Next() (string, bool) {
	if s.done {
		return "", false
	}

	if !s.started {
		s.started = true

		if !s.start() {
			s.done = true
			return "", false
		}

		return s.current(), true
	}

	for i := len(s.idx) - 1; i >= 0; i-- {
		s.idx[i]++
		if s.idx[i] < len(s.charset) {
			return s.current(), true
		}

		s.idx[i] = 0
	}

	// the odometer wrapped past its leftmost position
	if s.pattern != nil || s.length == s.maxLen {
		s.done = true
		return "", false
	}

	s.length++
	s.idx = make([]int, s.length)

	return s.current(), true
}

// start positions the odometer on the first word. It reports false when the
// sequence is empty: an empty charset with at least one position to fill, or
// an empty length range.
func (s *Sequence) start() bool {
	positions := s.length
	if s.pattern != nil {
		positions = len(s.slots)
	}

	if positions > 0 && len(s.charset) == 0 {
		return false
	}

	if s.pattern == nil && s.length > s.maxLen {
		return false
	}

	s.idx = make([]int, positions)

	return true
}

func (s *Sequence) current() string {
	if s.pattern != nil {
		word := make([]rune, len(s.pattern))
		copy(word, s.pattern)

		for k, pos := range s.slots {
			word[pos] = s.charset[s.idx[k]]
		}

		return string(word)
	}

	word := make([]rune, s.length)
	for i, digit := range s.idx {
		word[i] = s.charset[digit]
	}

	return string(word)
}
