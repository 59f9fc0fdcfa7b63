// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/verex

package verex

import "regexp"

// Fragment is one caller-supplied unit of an expression.
//
// The set of implementations is closed: Literal, Raw, Pattern, Constant,
// Repetition, Alternation and *Expression.
type Fragment interface {
	isFragment()
}

// Literal is text matched verbatim; regex meta-characters are escaped.
type Literal string

// Raw is regex source inserted into the expression unchanged.
type Raw string

// Pattern is a pre-built pattern with its own flags.
//
// Flags are merged into the assembled expression flags, see Options.Flags.
type Pattern struct {
	// Source is regex source inserted unchanged.
	Source string `json:"source" yaml:"source"`
	// Flags are surfaced to the assembler.
	Flags Flags `json:"flags" yaml:"flags"`
}

// Constant is a named token with fixed regex source.
type Constant struct {
	name   string
	source string
}

// RepeatKind selects the quantifier appended by a Repetition.
type RepeatKind uint8

const (
	// RepeatUnknown is unset/invalid kind placeholder.
	RepeatUnknown RepeatKind = iota
	// RepeatZeroOrMore appends "*".
	RepeatZeroOrMore
	// RepeatOneOrMore appends "+".
	RepeatOneOrMore
	// RepeatOptional appends "?".
	RepeatOptional
)

// Repetition repeats one nested fragment as a whole unit.
type Repetition struct {
	// Of is the repeated fragment.
	Of Fragment
	// Kind is the repetition quantifier.
	Kind RepeatKind
}

// Alternation matches exactly one of several literal texts.
type Alternation struct {
	// Options are literal alternatives, tried in order.
	Options []string
}

// Options controls expression assembly.
type Options struct {
	// Engine compiles the assembled source. Nil means StdlibEngine.
	Engine Engine
	// Flags seed the expression flag set before fragment flags are merged.
	Flags Flags
}

func (Literal) isFragment()     {}
func (Raw) isFragment()         {}
func (Pattern) isFragment()     {}
func (Constant) isFragment()    {}
func (Repetition) isFragment()  {}
func (Alternation) isFragment() {}
func (*Expression) isFragment() {}

// FromRegexp converts a compiled stdlib regexp into a Pattern fragment.
//
// Inline flags stay part of the source, so the returned pattern has no Flags.
func FromRegexp(re *regexp.Regexp) Pattern {
	if re == nil {
		return Pattern{}
	}

	return Pattern{Source: re.String()}
}

// Name returns the catalogue name of the constant.
func (c Constant) Name() string {
	return c.name
}

// Source returns the fixed regex source of the constant.
func (c Constant) Source() string {
	return c.source
}

// String returns the constant name.
func (c Constant) String() string {
	return c.name
}

// quantifier returns the regex quantifier for kind.
func (k RepeatKind) quantifier() (string, bool) {
	switch k {
	case RepeatZeroOrMore:
		return "*", true
	case RepeatOneOrMore:
		return "+", true
	case RepeatOptional:
		return "?", true
	default:
		return "", false
	}
}

// applyDefaults fills zero-valued options with defaults.
func (opts *Options) applyDefaults() {
	if opts.Engine == nil {
		opts.Engine = StdlibEngine
	}
}
