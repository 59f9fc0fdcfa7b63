// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/verex

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/woozymasta/verex"
)

// inputOptions collects fragment sources shared by show and test.
type inputOptions struct {
	fragments    []string
	recipesFiles []string
	file         string
	recipe       string
	flags        string
	engine       string
}

func (o *inputOptions) register(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringArrayVarP(&o.fragments, "fragment", "f", nil, `fragment line, repeatable (e.g. -f "const digit")`)
	f.StringVar(&o.file, "file", "", "fragments file, one fragment per line")
	f.StringArrayVar(&o.recipesFiles, "recipes", nil, "TOML recipes file, repeatable")
	f.StringVar(&o.recipe, "recipe", "", "recipe name from --recipes files")
	f.StringVar(&o.flags, "flags", "", "expression flags (e.g. i, ims, i-s)")
	f.StringVar(&o.engine, "engine", verex.EngineStdlib, "regex engine ("+strings.Join(verex.EngineNames(), "|")+")")
}

// build assembles recipe, file and command-line fragments in that order.
func (o *inputOptions) build() (*verex.Expression, error) {
	engine, err := verex.EngineByName(o.engine)
	if err != nil {
		return nil, err
	}

	flags, err := verex.ParseFlags(o.flags)
	if err != nil {
		return nil, fmt.Errorf("--flags: %w", err)
	}

	var fragments []verex.Fragment

	if o.recipe != "" {
		if len(o.recipesFiles) == 0 {
			return nil, fmt.Errorf("--recipe %q requires --recipes", o.recipe)
		}

		recipes, err := verex.LoadRecipesFiles(o.recipesFiles...)
		if err != nil {
			return nil, err
		}

		recipe, err := verex.FindRecipe(recipes, o.recipe)
		if err != nil {
			return nil, err
		}

		recipeFragments, recipeFlags, err := recipe.Parse()
		if err != nil {
			return nil, err
		}

		flags, err = flags.Union(recipeFlags)
		if err != nil {
			return nil, fmt.Errorf("recipe %q: %w", recipe.Name, err)
		}

		fragments = append(fragments, recipeFragments...)
	}

	if o.file != "" {
		fileFragments, err := verex.LoadFragmentsFile(o.file)
		if err != nil {
			return nil, err
		}

		fragments = append(fragments, fileFragments...)
	}

	for i, line := range o.fragments {
		f, err := verex.ParseFragment(line)
		if err != nil {
			return nil, fmt.Errorf("--fragment %d: %w", i, err)
		}

		fragments = append(fragments, f)
	}

	return verex.New(fragments, verex.Options{Engine: engine, Flags: flags})
}
