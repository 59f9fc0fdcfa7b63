// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/verex

// Command verex assembles regular expressions from fragment recipes and
// tests subjects against them.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var errorColor = color.New(color.FgRed, color.Bold)

func main() {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		_, _ = errorColor.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// newRootCmd builds the command tree; every call returns independent flag state.
func newRootCmd() *cobra.Command {
	var colorMode string

	root := &cobra.Command{
		Use:           "verex",
		Short:         "Build regular expressions from named fragments",
		Long:          "verex assembles regular expressions from literal, raw, constant and repetition fragments.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return applyColorMode(colorMode)
		},
	}

	root.PersistentFlags().StringVar(&colorMode, "color", "auto", "colorize output (auto|on|off)")

	root.AddCommand(newShowCmd())
	root.AddCommand(newTestCmd())
	root.AddCommand(newCheckCmd())
	root.AddCommand(newConstantsCmd())

	return root
}

// applyColorMode configures fatih/color output globally.
func applyColorMode(mode string) error {
	switch strings.ToLower(mode) {
	case "auto", "":
		color.NoColor = !isTerminal(os.Stdout)
	case "on":
		color.NoColor = false
	case "off":
		color.NoColor = true
	default:
		return fmt.Errorf("unsupported --color value %q (auto|on|off)", mode)
	}

	return nil
}

// isTerminal reports whether f is attached to a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
