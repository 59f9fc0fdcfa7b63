// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/verex

package main

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/woozymasta/verex"
)

var errCheckFailed = errors.New("recipe check failed")

var okColor = color.New(color.FgGreen, color.Bold)

// checkResult is the outcome of compiling one recipe.
type checkResult struct {
	err     error
	file    string
	name    string
	pattern string
}

func newCheckCmd() *cobra.Command {
	var engineName string

	cmd := &cobra.Command{
		Use:   "check <recipes.toml>...",
		Short: "Compile every recipe in TOML files and report failures",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := verex.EngineByName(engineName)
			if err != nil {
				return err
			}

			results, err := checkRecipes(args, engine)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			failed := 0
			for _, r := range results {
				if r.err != nil {
					failed++
					_, _ = errorColor.Fprint(out, "FAIL")
					_, _ = fmt.Fprintf(out, " %s: %s: %v\n", r.file, r.name, r.err)
					continue
				}

				_, _ = okColor.Fprint(out, "ok  ")
				_, _ = fmt.Fprintf(out, " %s: %s: %s\n", r.file, r.name, r.pattern)
			}

			if failed > 0 {
				return fmt.Errorf("%w: %d of %d recipes", errCheckFailed, failed, len(results))
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&engineName, "engine", verex.EngineStdlib, "regex engine used for compilation")
	return cmd
}

// checkRecipes compiles all recipes from files concurrently.
//
// Results keep file order and recipe order inside each file. Load errors abort
// the check; compile errors are reported per recipe.
func checkRecipes(paths []string, engine verex.Engine) ([]checkResult, error) {
	var results []checkResult
	var recipes []verex.Recipe

	for _, path := range paths {
		loaded, err := verex.LoadRecipesFile(path)
		if err != nil {
			return nil, err
		}

		for _, r := range loaded {
			results = append(results, checkResult{file: path, name: r.Name})
		}

		recipes = append(recipes, loaded...)
	}

	// Per-recipe failures land in results; Wait only joins the workers.
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i := range recipes {
		g.Go(func() error {
			e, err := recipes[i].Compile(engine)
			if err != nil {
				results[i].err = err
				return nil
			}

			results[i].pattern = e.String()
			return nil
		})
	}

	_ = g.Wait()
	return results, nil
}
