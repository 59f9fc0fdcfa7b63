// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/verex

package verex

import (
	"errors"
	"strings"
	"testing"
)

func TestResolveDispatch(t *testing.T) {
	t.Parallel()

	inner := MustCompile(Literal("x"))
	flagged, err := New([]Fragment{Literal("y")}, Options{Flags: MustParseFlags("i")})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	cases := []struct {
		in        Fragment
		name      string
		want      string
		wantFlags string
	}{
		{name: "literal", in: Literal("a+b"), want: `a\+b`},
		{name: "empty literal", in: Literal(""), want: ""},
		{name: "raw", in: Raw(`a+b`), want: `a+b`},
		{name: "pattern", in: Pattern{Source: `\d+`, Flags: MustParseFlags("m")}, want: `\d+`, wantFlags: "m"},
		{name: "expression", in: inner, want: "x"},
		{name: "flagged expression", in: flagged, want: "y", wantFlags: "i"},
		{name: "constant", in: Digit, want: `\d`},
		{name: "multiple literal", in: Multiple(Literal("a.b")), want: `(?:a\.b)*`},
		{name: "multiple raw", in: Multiple(Raw(`a|b`)), want: `(?:a|b)*`},
		{name: "one or more", in: OneOrMore(Digit), want: `(?:\d)+`},
		{name: "maybe", in: Maybe(Literal("s")), want: `(?:s)?`},
		{name: "repetition flags", in: Multiple(flagged), want: `(?:y)*`, wantFlags: "i"},
		{name: "anyof", in: AnyOf("a", "b.c"), want: `(?:a|b\.c)`},
		{name: "from regexp", in: FromRegexp(nil), want: ""},
	}

	for _, tc := range cases {
		got, err := resolve(tc.in)
		if err != nil {
			t.Fatalf("%s: resolve: %v", tc.name, err)
		}

		if got.source != tc.want {
			t.Fatalf("%s: source=%q, want %q", tc.name, got.source, tc.want)
		}

		if got.flags.String() != tc.wantFlags {
			t.Fatalf("%s: flags=%q, want %q", tc.name, got.flags.String(), tc.wantFlags)
		}
	}
}

func TestResolveIsPure(t *testing.T) {
	t.Parallel()

	fragments := []Fragment{Literal("a.b"), Multiple(Literal("xy")), WhitespaceCharacter, AnyOf("p", "q")}
	for _, f := range fragments {
		first, err := resolve(f)
		if err != nil {
			t.Fatalf("resolve(%v): %v", f, err)
		}

		second, err := resolve(f)
		if err != nil {
			t.Fatalf("resolve(%v): %v", f, err)
		}

		if first != second {
			t.Fatalf("resolve(%v) not deterministic: %+v vs %+v", f, first, second)
		}
	}
}

func TestResolveUnsupported(t *testing.T) {
	t.Parallel()

	var nilExpr *Expression
	cases := []Fragment{
		nil,
		nilExpr,
		Constant{},
		Repetition{Of: Literal("a")},
		Multiple(nil),
		Maybe(Multiple(nil)),
	}

	for i, f := range cases {
		if _, err := resolve(f); !errors.Is(err, ErrUnsupportedFragment) {
			t.Fatalf("case %d: err=%v, want ErrUnsupportedFragment", i, err)
		}
	}
}

func TestMultipleMatchesZeroRepetitions(t *testing.T) {
	t.Parallel()

	compileEach(t, []Fragment{Raw("^"), Multiple(Literal("foo")), Raw("$")}, func(t *testing.T, e *Expression) {
		expectMatches(t, e, true, "")
	})
}

func TestMultipleMatchesAnyRepetitionCount(t *testing.T) {
	t.Parallel()

	compileEach(t, []Fragment{Raw("^"), Multiple(Literal("foo")), Raw("$")}, func(t *testing.T, e *Expression) {
		for i := 0; i <= 20; i++ {
			expectMatches(t, e, true, strings.Repeat("foo", i))
		}

		expectMatches(t, e, false, "fo", "foof", "foooo", "foofoo!")
	})
}

func TestMultipleRepeatsWholeUnit(t *testing.T) {
	t.Parallel()

	compileEach(t, []Fragment{StartOfLine, Multiple(Literal("a.")), EndOfLine}, func(t *testing.T, e *Expression) {
		expectMatches(t, e, true, "", "a.", "a.a.a.")
		expectMatches(t, e, false, "a..", "ab", "a")
	})
}

func TestOneOrMoreAndMaybe(t *testing.T) {
	t.Parallel()

	fragments := []Fragment{
		StartOfLine,
		Literal("v"),
		OneOrMore(Digit),
		Maybe(Literal(".0")),
		EndOfLine,
	}

	compileEach(t, fragments, func(t *testing.T, e *Expression) {
		expectMatches(t, e, true, "v1", "v42", "v42.0")
		expectMatches(t, e, false, "v", "v.0", "v1.1", "v1.0.0")
	})
}
