// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/verex

/*
Package verex builds regular expressions from semantically named fragments.

Instead of writing regex syntax by hand, callers pass an ordered list of
fragments and get back one compiled expression:

	re, err := verex.Compile(
		verex.StartOfLine,
		verex.Literal("v"),
		verex.OneOrMore(verex.Digit),
		verex.Maybe(verex.Literal(".0")),
		verex.EndOfLine,
	)

Fragment kinds:
  - `Literal` text is escaped and matched verbatim
  - `Raw` source is inserted unchanged
  - `Pattern` and `*Expression` are pre-built patterns, their flags are merged
  - `Constant` values come from a fixed catalogue (`Digit`, `WordBoundary`, ...)
  - `Multiple` / `OneOrMore` / `Maybe` wrap one fragment in a repeated group
  - `AnyOf` matches one of several literal alternatives

Fragments are concatenated strictly in argument order. Anchors only anchor
when placed where their meaning requires; misplaced anchors compile fine and
simply never match.

Matching is delegated to an `Engine`. The default engine is the standard
library regexp package; `RE2Engine` and `CoregexEngine` are available through
`Options`. CoregexEngine lets an anchor placed before other content match and
loses case folding next to multi-line anchors, so it is opt-in only.

Fragment sequences can also be written as text (`ParseFragments`) or stored as
named recipes in TOML files (`LoadRecipesFile`).
*/
package verex
