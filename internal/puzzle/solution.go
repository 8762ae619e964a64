package puzzle

import "strconv"

// Solution holds the answer to one part of a puzzle. Answers are either
// numeric or textual; either way they are submitted as text.
type Solution struct {
	text string
}

// FromInt wraps an int answer.
func FromInt(n int) Solution {
	return Solution{text: strconv.Itoa(n)}
}

// FromInt64 wraps an int64 answer.
func FromInt64(n int64) Solution {
	return Solution{text: strconv.FormatInt(n, 10)}
}

// FromUint64 wraps a uint64 answer.
func FromUint64(n uint64) Solution {
	return Solution{text: strconv.FormatUint(n, 10)}
}

// FromString wraps a textual answer.
func FromString(s string) Solution {
	return Solution{text: s}
}

// String returns the answer as it would be submitted.
func (s Solution) String() string {
	return s.text
}
