// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/verex

package verex

import (
	"errors"
	"reflect"
	"testing"
)

// testEngines lists every built-in engine; behavior tests run against each.
var testEngines = []struct {
	engine Engine
	name   string
}{
	{name: EngineCoregex, engine: CoregexEngine},
	{name: EngineStdlib, engine: StdlibEngine},
	{name: EngineRE2, engine: RE2Engine},
}

// coregexAnchorDeviation explains skips for cases coregex gets wrong.
const coregexAnchorDeviation = "coregex matches \"$\" followed by content and drops (?i) around multi-line anchors"

// compileEach assembles fragments with every engine and runs check on each result.
func compileEach(t *testing.T, fragments []Fragment, check func(t *testing.T, e *Expression)) {
	t.Helper()
	compileEachSkipping(t, fragments, nil, check)
}

// compileEachSkipping is compileEach with per-engine skip reasons.
func compileEachSkipping(t *testing.T, fragments []Fragment, skip map[string]string, check func(t *testing.T, e *Expression)) {
	t.Helper()

	for _, te := range testEngines {
		t.Run(te.name, func(t *testing.T) {
			if reason, ok := skip[te.name]; ok {
				t.Skip(reason)
			}

			e, err := New(fragments, Options{Engine: te.engine})
			if err != nil {
				t.Fatalf("New: %v", err)
			}

			check(t, e)
		})
	}
}

// expectMatches asserts Test results for subjects.
func expectMatches(t *testing.T, e *Expression, want bool, subjects ...string) {
	t.Helper()

	for _, s := range subjects {
		if got := e.Test(s); got != want {
			t.Fatalf("Test(%q) on %q = %v, want %v", s, e.String(), got, want)
		}
	}
}

func TestEngineByName(t *testing.T) {
	t.Parallel()

	def, err := EngineByName("")
	if err != nil {
		t.Fatalf("EngineByName(\"\"): %v", err)
	}

	// Default engine rejects "$" followed by content.
	m, err := def.Compile("$bar")
	if err != nil {
		t.Fatalf("default Compile: %v", err)
	}

	if m.MatchString("foobar") {
		t.Fatalf("default engine must not match \"$bar\" in foobar")
	}

	for _, name := range []string{"", EngineCoregex, EngineStdlib, EngineRE2} {
		e, err := EngineByName(name)
		if err != nil {
			t.Fatalf("EngineByName(%q): %v", name, err)
		}

		m, err := e.Compile(`^a\d$`)
		if err != nil {
			t.Fatalf("%q Compile: %v", name, err)
		}

		if !m.MatchString("a1") || m.MatchString("ab") {
			t.Fatalf("%q matcher misbehaves", name)
		}
	}

	if _, err := EngineByName("pcre"); !errors.Is(err, ErrUnknownEngine) {
		t.Fatalf("EngineByName(pcre) err=%v, want ErrUnknownEngine", err)
	}
}

func TestEngineNames(t *testing.T) {
	t.Parallel()

	want := []string{EngineCoregex, EngineRE2, EngineStdlib}
	if got := EngineNames(); !reflect.DeepEqual(got, want) {
		t.Fatalf("EngineNames()=%v, want %v", got, want)
	}
}

func TestEngineFunc(t *testing.T) {
	t.Parallel()

	var seen string
	engine := EngineFunc(func(expr string) (Matcher, error) {
		seen = expr
		return StdlibEngine.Compile(expr)
	})

	e, err := New([]Fragment{Literal("a.b")}, Options{
		Engine: engine,
		Flags:  MustParseFlags("i"),
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if seen != `(?i)a\.b` {
		t.Fatalf("engine got %q, want %q", seen, `(?i)a\.b`)
	}

	if !e.Test("A.B") {
		t.Fatalf("A.B must match case-insensitively")
	}
}
