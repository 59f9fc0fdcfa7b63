// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/verex

package verex

import "strings"

// AnyOf matches exactly one of the given literal texts.
//
// Empty values are skipped, order is preserved: with the leftmost-first
// semantics of the engines an earlier alternative wins over a later one.
func AnyOf(texts ...string) Alternation {
	opts := make([]string, 0, len(texts))
	for _, text := range texts {
		if text == "" {
			continue
		}

		opts = append(opts, text)
	}

	return Alternation{Options: opts}
}

// alternationSource escapes each alternative and joins them in one group.
func alternationSource(options []string) string {
	n := 0
	for _, opt := range options {
		if opt != "" {
			n++
		}
	}

	if n == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("(?:")

	written := 0
	for _, opt := range options {
		if opt == "" {
			continue
		}

		if written > 0 {
			b.WriteByte('|')
		}
		b.WriteString(Escape(opt))
		written++
	}

	b.WriteByte(')')
	return b.String()
}
