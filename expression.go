// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/verex

package verex

import (
	"fmt"
	"strings"
)

// Expression is a compiled fragment sequence. It is immutable and safe for
// concurrent use.
//
// An Expression is also a Fragment: passing it to another assembly embeds its
// source and merges its flags.
type Expression struct {
	// matcher is the engine-compiled pattern.
	matcher Matcher
	// source is the concatenated fragment source without flags.
	source string
	// flags are the merged flags the source was compiled with.
	flags Flags
}

// Compile assembles fragments with default options.
func Compile(fragments ...Fragment) (*Expression, error) {
	return New(fragments, Options{})
}

// MustCompile is like Compile but panics if assembly fails.
func MustCompile(fragments ...Fragment) *Expression {
	e, err := Compile(fragments...)
	if err != nil {
		panic("verex: Compile: " + err.Error())
	}

	return e
}

// New resolves fragments in order, concatenates their sources and compiles
// the result.
//
// No reordering, grouping or deduplication happens across fragment
// boundaries. Engine errors are wrapped with ErrCompile and stay reachable
// through errors.As.
func New(fragments []Fragment, opts Options) (*Expression, error) {
	opts.applyDefaults()

	flags := opts.Flags
	if err := flags.Validate(); err != nil {
		return nil, fmt.Errorf("options flags: %w", err)
	}

	var b strings.Builder
	for i, f := range fragments {
		r, err := resolve(f)
		if err != nil {
			return nil, fmt.Errorf("fragment %d: %w", i, err)
		}

		if !r.flags.IsZero() {
			flags, err = flags.Union(r.flags)
			if err != nil {
				return nil, fmt.Errorf("fragment %d: %w", i, err)
			}
		}

		b.WriteString(r.source)
	}

	source := b.String()
	m, err := opts.Engine.Compile(flags.inline() + source)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCompile, err)
	}

	return &Expression{
		matcher: m,
		source:  source,
		flags:   flags,
	}, nil
}

// Test reports whether subject contains a match.
func (e *Expression) Test(subject string) bool {
	return e.matcher.MatchString(subject)
}

// Source returns the assembled pattern source without flags.
func (e *Expression) Source() string {
	return e.source
}

// Flags returns the merged flags the expression was compiled with.
func (e *Expression) Flags() Flags {
	return e.flags
}

// String returns the pattern source with flags scoped to it.
//
// The result is valid Raw input for another assembly and behaves as the
// original expression.
func (e *Expression) String() string {
	return e.flags.group(e.source)
}
