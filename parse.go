// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/verex

package verex

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Fragment kinds accepted by ParseFragment.
const (
	kindLiteral   = "literal"
	kindRaw       = "raw"
	kindConst     = "const"
	kindAnyOf     = "anyof"
	kindMultiple  = "multiple"
	kindOneOrMore = "oneOrMore"
	kindMaybe     = "maybe"
)

// ParseFragments parses one fragment per line from reader.
//
// Semantics:
// - blank lines and "#" comments are ignored
// - kind and value are separated by the first space or tab
// - "literal <text>" keeps text verbatim up to trailing spaces, "\ " keeps one
// - "raw <source>" inserts source unchanged
// - "const <name>" looks name up in the constant catalogue
// - "anyof <a> <b> ..." builds an alternation of space separated literals
// - "multiple|oneOrMore|maybe <line>" repeats the nested fragment line
func ParseFragments(r io.Reader) ([]Fragment, error) {
	s := bufio.NewScanner(r)
	fragments := make([]Fragment, 0, 16)

	lineNo := 0
	for s.Scan() {
		lineNo++

		line := strings.TrimRight(s.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		if strings.HasPrefix(strings.TrimLeft(line, " \t"), "#") {
			continue
		}

		f, err := ParseFragment(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}

		fragments = append(fragments, f)
	}

	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("scan fragments: %w", err)
	}

	return fragments, nil
}

// ParseFragmentsString parses fragments from string input.
func ParseFragmentsString(src string) ([]Fragment, error) {
	return ParseFragments(strings.NewReader(src))
}

// ParseFragment parses one fragment line.
func ParseFragment(line string) (Fragment, error) {
	line = strings.TrimLeft(line, " \t")
	kind, value := splitKind(line)
	value = trimTrailingSpaces(value)

	switch kind {
	case kindLiteral:
		return Literal(value), nil
	case kindRaw:
		if value == "" {
			return nil, fmt.Errorf("%w: raw without source", ErrInvalidRecipe)
		}

		return Raw(value), nil
	case kindConst:
		name := strings.TrimSpace(value)
		c, ok := LookupConstant(name)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownConstant, name)
		}

		return c, nil
	case kindAnyOf:
		alts := strings.Fields(value)
		if len(alts) == 0 {
			return nil, fmt.Errorf("%w: anyof without alternatives", ErrInvalidRecipe)
		}

		return AnyOf(alts...), nil
	case kindMultiple, kindOneOrMore, kindMaybe:
		if strings.TrimSpace(value) == "" {
			return nil, fmt.Errorf("%w: %s without fragment", ErrInvalidRecipe, kind)
		}

		inner, err := ParseFragment(value)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", kind, err)
		}

		return repetitionOf(kind, inner), nil
	case "":
		return nil, fmt.Errorf("%w: empty line", ErrInvalidRecipe)
	default:
		return nil, fmt.Errorf("%w: unsupported kind %q", ErrInvalidRecipe, kind)
	}
}

// repetitionOf maps a repetition keyword to its combinator.
func repetitionOf(kind string, inner Fragment) Repetition {
	switch kind {
	case kindOneOrMore:
		return OneOrMore(inner)
	case kindMaybe:
		return Maybe(inner)
	default:
		return Multiple(inner)
	}
}

// splitKind splits line at the first space or tab into kind and value.
func splitKind(line string) (string, string) {
	i := strings.IndexAny(line, " \t")
	if i < 0 {
		return line, ""
	}

	return line[:i], line[i+1:]
}

// trimTrailingSpaces removes trailing spaces unless escaped by "\".
func trimTrailingSpaces(s string) string {
	for len(s) > 0 && (s[len(s)-1] == ' ' || s[len(s)-1] == '\t') {
		if len(s) >= 2 && s[len(s)-2] == '\\' {
			s = s[:len(s)-2] + s[len(s)-1:]
			break
		}

		s = s[:len(s)-1]
	}

	return s
}
