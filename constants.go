// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/verex

package verex

import "sort"

// whitespaceClass covers ASCII control whitespace, Unicode space separators,
// line/paragraph separators and the byte order mark.
const whitespaceClass = `[\t\n\v\f\r \x{a0}\x{1680}\x{2000}-\x{200a}\x{2028}\x{2029}\x{202f}\x{205f}\x{3000}\x{feff}]`

// Constant catalogue.
var (
	// StartOfLine anchors at the start of input (of line with FlagMultiLine).
	StartOfLine = Constant{name: "startOfLine", source: `^`}
	// EndOfLine anchors at the end of input (of line with FlagMultiLine).
	EndOfLine = Constant{name: "endOfLine", source: `$`}
	// Digit matches one ASCII digit 0-9.
	Digit = Constant{name: "digit", source: `\d`}
	// WordCharacter matches one of [0-9A-Za-z_].
	WordCharacter = Constant{name: "wordCharacter", source: `\w`}
	// WhitespaceCharacter matches one whitespace character, Unicode spaces included.
	WhitespaceCharacter = Constant{name: "whitespaceCharacter", source: whitespaceClass}
	// WordBoundary asserts an ASCII word boundary.
	WordBoundary = Constant{name: "wordBoundary", source: `\b`}
	// NonWordBoundary asserts the absence of an ASCII word boundary.
	NonWordBoundary = Constant{name: "nonWordBoundary", source: `\B`}
	// AnyCharacter matches any character except "\n".
	AnyCharacter = Constant{name: "anyCharacter", source: `.`}
	// Anything matches any run of characters, the empty one included.
	Anything = Constant{name: "anything", source: `.*`}
	// Something matches a run of at least one character.
	Something = Constant{name: "something", source: `.+`}
	// Tab matches "\t".
	Tab = Constant{name: "tab", source: `\t`}
	// LineBreak matches "\r\n", "\r" or "\n".
	LineBreak = Constant{name: "lineBreak", source: `(?:\r\n|\r|\n)`}
)

// constantsByName is the read-only lookup table for LookupConstant.
var constantsByName = func() map[string]Constant {
	all := []Constant{
		StartOfLine,
		EndOfLine,
		Digit,
		WordCharacter,
		WhitespaceCharacter,
		WordBoundary,
		NonWordBoundary,
		AnyCharacter,
		Anything,
		Something,
		Tab,
		LineBreak,
	}

	m := make(map[string]Constant, len(all))
	for _, c := range all {
		m[c.name] = c
	}

	return m
}()

// LookupConstant returns catalogue constant by name.
func LookupConstant(name string) (Constant, bool) {
	c, ok := constantsByName[name]
	return c, ok
}

// Constants returns every catalogue constant sorted by name.
func Constants() []Constant {
	out := make([]Constant, 0, len(constantsByName))
	for _, c := range constantsByName {
		out = append(out, c)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].name < out[j].name })
	return out
}
