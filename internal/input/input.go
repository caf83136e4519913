// Package input reads puzzle input files and splits them into lines,
// blank-line separated blocks, and integer fields.
package input

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// ErrEmpty is returned when an input holds no non-blank content.
var ErrEmpty = errors.New("input: empty input")

// ReadFile loads path and normalises line endings to "\n".
func ReadFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("input: read %s: %w", path, err)
	}
	return strings.ReplaceAll(string(data), "\r\n", "\n"), nil
}

// Lines splits s into lines, dropping trailing blank lines.
// Interior blank lines are kept.
func Lines(s string) []string {
	s = strings.TrimRight(s, "\n ")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

// NonEmptyLines returns the lines of s that hold something besides spaces.
func NonEmptyLines(s string) []string {
	var out []string
	for _, l := range strings.Split(s, "\n") {
		if strings.TrimSpace(l) != "" {
			out = append(out, strings.TrimRight(l, " "))
		}
	}
	return out
}

// Blocks splits s on blank lines. Each block is returned as its lines.
func Blocks(s string) [][]string {
	var (
		out [][]string
		cur []string
	)
	for _, l := range strings.Split(s, "\n") {
		if strings.TrimSpace(l) == "" {
			if len(cur) > 0 {
				out = append(out, cur)
				cur = nil
			}
			continue
		}
		cur = append(cur, l)
	}
	if len(cur) > 0 {
		out = append(out, cur)
	}
	return out
}

// Ints parses every whitespace-separated field of s as a base-10 integer.
func Ints(s string) ([]int, error) {
	fields := strings.Fields(s)
	out := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("input: field %q: %w", f, err)
		}
		out = append(out, n)
	}
	return out, nil
}
