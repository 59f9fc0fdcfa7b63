// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/verex

package verex

import "errors"

// Sentinel errors for verex operations.
var (
	// ErrUnsupportedFragment indicates nil or otherwise unusable fragment input.
	ErrUnsupportedFragment = errors.New("unsupported fragment")
	// ErrFlagConflict indicates fragments requesting incompatible flags.
	ErrFlagConflict = errors.New("conflicting flags")
	// ErrInvalidFlags indicates malformed flags notation.
	ErrInvalidFlags = errors.New("invalid flags")
	// ErrCompile indicates the engine rejected the assembled pattern source.
	ErrCompile = errors.New("compile pattern")
	// ErrUnknownEngine indicates an unregistered engine name.
	ErrUnknownEngine = errors.New("unknown engine")
	// ErrUnknownConstant indicates a constant name missing from the catalogue.
	ErrUnknownConstant = errors.New("unknown constant")
	// ErrInvalidRecipe indicates malformed recipe input.
	ErrInvalidRecipe = errors.New("invalid recipe")
	// ErrRecipeNotFound indicates a recipe name absent from a recipe set.
	ErrRecipeNotFound = errors.New("recipe not found")
)
