// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/verex

package verex

import "strings"

// Escape returns text with every regex meta-character prefixed by "\".
//
// Escaped characters: \ ^ $ . | ? * + ( ) [ ] { }
// Text without meta-characters is returned as is.
func Escape(text string) string {
	first := -1
	for i := 0; i < len(text); i++ {
		if isMetaByte(text[i]) {
			first = i
			break
		}
	}

	if first < 0 {
		return text
	}

	var b strings.Builder
	b.Grow(len(text) + 8)
	b.WriteString(text[:first])

	for i := first; i < len(text); i++ {
		c := text[i]
		if isMetaByte(c) {
			b.WriteByte('\\')
		}
		b.WriteByte(c)
	}

	return b.String()
}

// isMetaByte reports whether c has special meaning outside a char class.
//
// All meta-characters are ASCII, so scanning bytes is safe for UTF-8 input.
func isMetaByte(c byte) bool {
	switch c {
	case '\\', '^', '$', '.', '|', '?', '*', '+', '(', ')', '[', ']', '{', '}':
		return true
	default:
		return false
	}
}
