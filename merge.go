// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/verex

package verex

import "fmt"

// MergeRecipes merges recipe slices preserving input order.
//
// Duplicate names are kept; FindRecipe resolves them with last-wins policy.
func MergeRecipes(recipeSets ...[]Recipe) []Recipe {
	total := 0
	for _, set := range recipeSets {
		total += len(set)
	}

	out := make([]Recipe, 0, total)
	for _, set := range recipeSets {
		out = append(out, set...)
	}

	return out
}

// FindRecipe returns the last recipe named name.
func FindRecipe(recipes []Recipe, name string) (Recipe, error) {
	for i := len(recipes) - 1; i >= 0; i-- {
		if recipes[i].Name == name {
			return recipes[i], nil
		}
	}

	return Recipe{}, fmt.Errorf("%w: %q", ErrRecipeNotFound, name)
}
