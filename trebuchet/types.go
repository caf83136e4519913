package trebuchet

import "errors"

// ErrNoDigit is returned when a line carries no digit at all.
var ErrNoDigit = errors.New("trebuchet: line has no digit")

// Option configures calibration decoding.
type Option func(*Options)

// Options holds decoding switches.
type Options struct {
	// SpelledDigits makes "one".."nine" (and "zero") count as digits.
	SpelledDigits bool
}

// DefaultOptions returns Options that accept only ASCII digits.
func DefaultOptions() Options {
	return Options{}
}

// WithSpelledDigits enables spelled-out digit words.
func WithSpelledDigits() Option {
	return func(o *Options) {
		o.SpelledDigits = true
	}
}

// words lists the spelled digits indexed by value.
var words = [...]string{"zero", "one", "two", "three", "four", "five", "six", "seven", "eight", "nine"}
