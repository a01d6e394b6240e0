// Package lsystem expands Lindenmayer systems by string rewriting and
// interprets the result as turtle graphics, producing connected polylines.
package lsystem

import (
	"errors"
	"strings"
)

// Rules maps a symbol to its replacement string. A symbol without a rule
// is copied unchanged, so bracket symbols or markers pass straight
// through rewriting.
type Rules map[rune]string

// ErrNegativeLevel is returned for expansion levels below zero.
var ErrNegativeLevel = errors.New("negative expansion level")

// Expand rewrites axiom level+1 times and returns the expanded string.
// Each pass replaces every symbol of the previous pass's output at once;
// a symbol produced during a pass is only expanded on the next pass.
// Level 0 therefore already performs one full pass. The extra pass keeps
// expansion depths interchangeable with the classic preset levels.
func Expand(level int, axiom string, rules Rules) (string, error) {
	if level < 0 {
		return "", ErrNegativeLevel
	}
	state := axiom
	for pass := 0; pass <= level; pass++ {
		var next strings.Builder
		next.Grow(2 * len(state))
		for _, sym := range state {
			if repl, ok := rules[sym]; ok {
				next.WriteString(repl)
			} else {
				next.WriteRune(sym)
			}
		}
		state = next.String()
	}
	return state, nil
}

// drawing alphabet: forward, turn clockwise, turn counter-clockwise
const drawable = "F+-"

// FilterDrawable strips every symbol outside the drawing alphabet
// {F, +, -}, keeping the rest in order. Filtering is idempotent.
func FilterDrawable(s string) string {
	var out strings.Builder
	out.Grow(len(s))
	for _, sym := range s {
		if strings.ContainsRune(drawable, sym) {
			out.WriteRune(sym)
		}
	}
	return out.String()
}
