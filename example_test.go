// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/verex

package verex_test

import (
	"fmt"

	"github.com/woozymasta/verex"
)

func ExampleCompile() {
	re, err := verex.Compile(
		verex.StartOfLine,
		verex.Literal("v"),
		verex.OneOrMore(verex.Digit),
		verex.Maybe(verex.Literal(".0")),
		verex.EndOfLine,
	)
	if err != nil {
		panic(err)
	}

	fmt.Println(re)
	fmt.Println(re.Test("v12.0"), re.Test("v1.2"))
	// Output:
	// ^v(?:\d)+(?:\.0)?$
	// true false
}

func ExampleMultiple() {
	re := verex.MustCompile(verex.StartOfLine, verex.Multiple(verex.Literal("ab")), verex.EndOfLine)

	fmt.Println(re.Test(""), re.Test("abab"), re.Test("aba"))
	// Output:
	// true true false
}

func ExampleNew() {
	word, err := verex.New(
		[]verex.Fragment{verex.Literal("hello")},
		verex.Options{Flags: verex.MustParseFlags("i"), Engine: verex.StdlibEngine},
	)
	if err != nil {
		panic(err)
	}

	re := verex.MustCompile(verex.WordBoundary, word, verex.WordBoundary)
	fmt.Println(re)
	fmt.Println(re.Test("say HELLO there"))
	// Output:
	// (?i:\bhello\b)
	// true
}

func ExampleParseFragmentsString() {
	fragments, err := verex.ParseFragmentsString(`
const wordBoundary
anyof cat dog
const wordBoundary
`)
	if err != nil {
		panic(err)
	}

	re := verex.MustCompile(fragments...)
	fmt.Println(re.Source())
	fmt.Println(re.Test("hot dog stand"), re.Test("catalog"))
	// Output:
	// \b(?:cat|dog)\b
	// true false
}
