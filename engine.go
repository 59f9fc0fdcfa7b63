// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/verex

package verex

import (
	"fmt"
	"regexp"
	"sort"

	"github.com/coregx/coregex"
	re2 "github.com/wasilibs/go-re2"
)

// Matcher reflects regexp match operations needed by Expression.
type Matcher interface {
	MatchString(s string) bool
}

// Engine compiles assembled regex source into a Matcher.
//
// Source uses RE2 syntax; flags are passed inline as a "(?flags)" prefix.
type Engine interface {
	Compile(expr string) (Matcher, error)
}

// EngineFunc adapts a plain function to Engine.
type EngineFunc func(expr string) (Matcher, error)

// Compile calls f(expr).
func (f EngineFunc) Compile(expr string) (Matcher, error) {
	return f(expr)
}

// Engine names accepted by EngineByName.
const (
	EngineCoregex = "coregex"
	EngineStdlib  = "stdlib"
	EngineRE2     = "re2"
)

var (
	// CoregexEngine compiles with github.com/coregx/coregex.
	//
	// Known deviations: "$" followed by more content ("$bar") still matches, and
	// "(?im)" drops case folding around line anchors.
	CoregexEngine Engine = EngineFunc(func(expr string) (Matcher, error) {
		re, err := coregex.Compile(expr)
		if err != nil {
			return nil, err
		}

		return re, nil
	})

	// StdlibEngine compiles with the standard library regexp package. It is the default engine.
	StdlibEngine Engine = EngineFunc(func(expr string) (Matcher, error) {
		re, err := regexp.Compile(expr)
		if err != nil {
			return nil, err
		}

		return re, nil
	})

	// RE2Engine compiles with github.com/wasilibs/go-re2 (RE2 via WebAssembly).
	RE2Engine Engine = EngineFunc(func(expr string) (Matcher, error) {
		re, err := re2.Compile(expr)
		if err != nil {
			return nil, err
		}

		return re, nil
	})
)

// enginesByName is the read-only registry behind EngineByName.
var enginesByName = map[string]Engine{
	EngineCoregex: CoregexEngine,
	EngineStdlib:  StdlibEngine,
	EngineRE2:     RE2Engine,
}

// EngineByName returns a built-in engine. Empty name selects the default engine.
func EngineByName(name string) (Engine, error) {
	if name == "" {
		return StdlibEngine, nil
	}

	e, ok := enginesByName[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEngine, name)
	}

	return e, nil
}

// EngineNames returns built-in engine names in sorted order.
func EngineNames() []string {
	names := make([]string, 0, len(enginesByName))
	for name := range enginesByName {
		names = append(names, name)
	}

	sort.Strings(names)
	return names
}
