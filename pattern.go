// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/verex

package verex

import (
	"fmt"
	"strings"
)

// resolved is regex source produced for one fragment.
type resolved struct {
	// source is the regex source contribution.
	source string
	// flags are flags the fragment asks the assembler to merge.
	flags Flags
}

// Multiple matches zero or more repetitions of f as a whole unit.
func Multiple(f Fragment) Repetition {
	return Repetition{Kind: RepeatZeroOrMore, Of: f}
}

// OneOrMore matches one or more repetitions of f as a whole unit.
func OneOrMore(f Fragment) Repetition {
	return Repetition{Kind: RepeatOneOrMore, Of: f}
}

// Maybe matches f zero times or once.
func Maybe(f Fragment) Repetition {
	return Repetition{Kind: RepeatOptional, Of: f}
}

// resolve converts one fragment into regex source.
//
// Resolution is pure: the result depends only on the fragment itself, never
// on its position in the assembled sequence.
func resolve(f Fragment) (resolved, error) {
	switch f := f.(type) {
	case Raw:
		return resolved{source: string(f)}, nil
	case Pattern:
		return resolved{source: f.Source, flags: f.Flags}, nil
	case *Expression:
		if f == nil {
			return resolved{}, fmt.Errorf("%w: nil expression", ErrUnsupportedFragment)
		}

		return resolved{source: f.source, flags: f.flags}, nil
	case Constant:
		if f.name == "" {
			return resolved{}, fmt.Errorf("%w: zero constant", ErrUnsupportedFragment)
		}

		return resolved{source: f.source}, nil
	case Repetition:
		return resolveRepetition(f)
	case Literal:
		return resolved{source: Escape(string(f))}, nil
	case Alternation:
		return resolved{source: alternationSource(f.Options)}, nil
	case nil:
		return resolved{}, fmt.Errorf("%w: nil", ErrUnsupportedFragment)
	default:
		return resolved{}, fmt.Errorf("%w: %T", ErrUnsupportedFragment, f)
	}
}

// resolveRepetition wraps the nested fragment into a non-capturing group so
// the quantifier applies to the whole unit, not just its last token.
func resolveRepetition(r Repetition) (resolved, error) {
	quant, ok := r.Kind.quantifier()
	if !ok {
		return resolved{}, fmt.Errorf("%w: repetition kind %d", ErrUnsupportedFragment, r.Kind)
	}

	if r.Of == nil {
		return resolved{}, fmt.Errorf("%w: repetition of nil", ErrUnsupportedFragment)
	}

	inner, err := resolve(r.Of)
	if err != nil {
		return resolved{}, fmt.Errorf("repetition: %w", err)
	}

	var b strings.Builder
	b.Grow(len(inner.source) + 6)
	b.WriteString("(?:")
	b.WriteString(inner.source)
	b.WriteByte(')')
	b.WriteString(quant)

	return resolved{source: b.String(), flags: inner.flags}, nil
}
