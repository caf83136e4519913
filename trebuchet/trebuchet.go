package trebuchet

import (
	"fmt"
	"strings"
)

// Value returns 10*first + last for the digits found on line.
// Returns ErrNoDigit when none is found.
func Value(line string, opts ...Option) (int, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	first, last := -1, -1
	for i := 0; i < len(line); i++ {
		d, ok := digitAt(line, i, o.SpelledDigits)
		if !ok {
			continue
		}
		if first < 0 {
			first = d
		}
		last = d
	}
	if first < 0 {
		return 0, fmt.Errorf("%w: %q", ErrNoDigit, line)
	}
	return 10*first + last, nil
}

// Sum adds up the calibration values of all lines.
func Sum(lines []string, opts ...Option) (int, error) {
	total := 0
	for n, line := range lines {
		v, err := Value(line, opts...)
		if err != nil {
			return 0, fmt.Errorf("line %d: %w", n+1, err)
		}
		total += v
	}
	return total, nil
}

// digitAt reports the digit starting at position i, if any.
func digitAt(line string, i int, spelled bool) (int, bool) {
	if c := line[i]; c >= '0' && c <= '9' {
		return int(c - '0'), true
	}
	if !spelled {
		return 0, false
	}
	rest := line[i:]
	for v, w := range words {
		if strings.HasPrefix(rest, w) {
			return v, true
		}
	}
	return 0, false
}
