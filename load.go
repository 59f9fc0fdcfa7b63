// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/verex

package verex

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

// Recipe is one named fragment sequence stored in a recipes file.
type Recipe struct {
	// Name identifies the recipe inside a recipe set.
	Name string `toml:"name" json:"name" yaml:"name"`
	// Flags is optional flags notation, see ParseFlags.
	Flags string `toml:"flags,omitempty" json:"flags,omitempty" yaml:"flags,omitempty"`
	// Fragments are fragment lines, see ParseFragment.
	Fragments []string `toml:"fragments" json:"fragments" yaml:"fragments"`
}

// recipesFile is the TOML document layout.
type recipesFile struct {
	Recipes []Recipe `toml:"recipe"`
}

// LoadFragmentsFile reads and parses fragment lines from a file.
func LoadFragmentsFile(path string) ([]Fragment, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open fragments file: %w", err)
	}
	defer func() { _ = f.Close() }()

	fragments, err := ParseFragments(f)
	if err != nil {
		return nil, fmt.Errorf("parse fragments file: %w", err)
	}

	return fragments, nil
}

// LoadRecipesFile reads recipes from a TOML file.
//
// Every recipe must have a name; unknown keys are rejected.
func LoadRecipesFile(path string) ([]Recipe, error) {
	var doc recipesFile
	meta, err := toml.DecodeFile(path, &doc)
	if err != nil {
		return nil, fmt.Errorf("%s: decode recipes: %w", path, err)
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("%w: %s: unknown key %q", ErrInvalidRecipe, path, undecoded[0].String())
	}

	for i := range doc.Recipes {
		doc.Recipes[i].Name = strings.TrimSpace(doc.Recipes[i].Name)
		if doc.Recipes[i].Name == "" {
			return nil, fmt.Errorf("%w: %s: recipe %d has no name", ErrInvalidRecipe, path, i)
		}
	}

	return doc.Recipes, nil
}

// LoadRecipesFiles reads and merges recipes from files in the given order.
func LoadRecipesFiles(paths ...string) ([]Recipe, error) {
	sets := make([][]Recipe, 0, len(paths))
	for _, path := range paths {
		recipes, err := LoadRecipesFile(path)
		if err != nil {
			return nil, err
		}

		sets = append(sets, recipes)
	}

	return MergeRecipes(sets...), nil
}

// Parse converts recipe lines and flags into fragments and options flags.
func (r Recipe) Parse() ([]Fragment, Flags, error) {
	flags, err := ParseFlags(r.Flags)
	if err != nil {
		return nil, Flags{}, fmt.Errorf("recipe %q: %w", r.Name, err)
	}

	fragments := make([]Fragment, 0, len(r.Fragments))
	for i, line := range r.Fragments {
		f, err := ParseFragment(line)
		if err != nil {
			return nil, Flags{}, fmt.Errorf("recipe %q fragment %d: %w", r.Name, i, err)
		}

		fragments = append(fragments, f)
	}

	return fragments, flags, nil
}

// Compile assembles the recipe with engine. Nil engine selects the default.
func (r Recipe) Compile(engine Engine) (*Expression, error) {
	fragments, flags, err := r.Parse()
	if err != nil {
		return nil, err
	}

	e, err := New(fragments, Options{Engine: engine, Flags: flags})
	if err != nil {
		return nil, fmt.Errorf("recipe %q: %w", r.Name, err)
	}

	return e, nil
}
