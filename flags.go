// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/verex

package verex

import (
	"fmt"
	"strings"
)

// Flag is one inline regexp flag bit.
type Flag uint8

const (
	// FlagCaseInsensitive is "i".
	FlagCaseInsensitive Flag = 1 << iota
	// FlagMultiLine is "m": "^" and "$" match at line boundaries.
	FlagMultiLine
	// FlagDotAll is "s": "." matches "\n".
	FlagDotAll
	// FlagUngreedy is "U": swaps meaning of greedy and lazy quantifiers.
	FlagUngreedy

	// flagMask covers every supported flag bit.
	flagMask = FlagCaseInsensitive | FlagMultiLine | FlagDotAll | FlagUngreedy
)

// flagLetters lists supported flags in canonical output order.
var flagLetters = [...]struct {
	flag   Flag
	letter byte
}{
	{FlagCaseInsensitive, 'i'},
	{FlagMultiLine, 'm'},
	{FlagDotAll, 's'},
	{FlagUngreedy, 'U'},
}

// Flags is a set of explicitly enabled and explicitly disabled flags.
//
// A flag absent from both sets is left at engine default.
type Flags struct {
	// On lists flags explicitly enabled.
	On Flag `json:"on,omitempty" yaml:"on,omitempty"`
	// Off lists flags explicitly disabled.
	Off Flag `json:"off,omitempty" yaml:"off,omitempty"`
}

// ParseFlags parses Go inline flag notation without the surrounding "(?)".
//
// Accepted forms: "", "i", "ims", "i-s", "-m".
func ParseFlags(s string) (Flags, error) {
	var f Flags
	negated := false

	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '-' {
			if negated {
				return Flags{}, fmt.Errorf("%w: repeated '-' in %q", ErrInvalidFlags, s)
			}

			negated = true
			continue
		}

		flag, ok := flagFromLetter(c)
		if !ok {
			return Flags{}, fmt.Errorf("%w: unsupported flag %q in %q", ErrInvalidFlags, c, s)
		}

		if negated {
			f.Off |= flag
		} else {
			f.On |= flag
		}
	}

	if negated && f.Off == 0 {
		return Flags{}, fmt.Errorf("%w: '-' without flags in %q", ErrInvalidFlags, s)
	}

	if f.On&f.Off != 0 {
		return Flags{}, fmt.Errorf("%w: %q enables and disables the same flag", ErrFlagConflict, s)
	}

	return f, nil
}

// MustParseFlags is like ParseFlags but panics on error.
func MustParseFlags(s string) Flags {
	f, err := ParseFlags(s)
	if err != nil {
		panic(err)
	}

	return f
}

// IsZero reports whether no flag is set either way.
func (f Flags) IsZero() bool {
	return f.On == 0 && f.Off == 0
}

// String returns flags in ParseFlags notation, e.g. "im-s".
func (f Flags) String() string {
	if f.IsZero() {
		return ""
	}

	var b strings.Builder
	for _, fl := range flagLetters {
		if f.On&fl.flag != 0 {
			b.WriteByte(fl.letter)
		}
	}

	if f.Off != 0 {
		b.WriteByte('-')
		for _, fl := range flagLetters {
			if f.Off&fl.flag != 0 {
				b.WriteByte(fl.letter)
			}
		}
	}

	return b.String()
}

// Validate reports unknown flag bits and flags both enabled and disabled.
func (f Flags) Validate() error {
	if unknown := (f.On | f.Off) &^ flagMask; unknown != 0 {
		return fmt.Errorf("%w: unknown flag bits %#x", ErrInvalidFlags, uint8(unknown))
	}

	if f.On&f.Off != 0 {
		return fmt.Errorf("%w: %q enables and disables the same flag", ErrFlagConflict, f.String())
	}

	return nil
}

// Union merges two flag sets.
//
// Both sets must be valid; a flag enabled on one side and disabled on the
// other is a conflict.
func (f Flags) Union(other Flags) (Flags, error) {
	if err := f.Validate(); err != nil {
		return Flags{}, err
	}

	if err := other.Validate(); err != nil {
		return Flags{}, err
	}

	if clash := (f.On & other.Off) | (f.Off & other.On); clash != 0 {
		return Flags{}, fmt.Errorf("%w: %q vs %q", ErrFlagConflict, f.String(), other.String())
	}

	return Flags{
		On:  f.On | other.On,
		Off: f.Off | other.Off,
	}, nil
}

// inline returns the "(?flags)" prefix, or "" for zero flags.
func (f Flags) inline() string {
	if f.IsZero() {
		return ""
	}

	return "(?" + f.String() + ")"
}

// group wraps source in a flag-scoped non-capturing group.
func (f Flags) group(source string) string {
	if f.IsZero() {
		return source
	}

	return "(?" + f.String() + ":" + source + ")"
}

// flagFromLetter maps one flag letter to its bit.
func flagFromLetter(c byte) (Flag, bool) {
	for _, fl := range flagLetters {
		if fl.letter == c {
			return fl.flag, true
		}
	}

	return 0, false
}
