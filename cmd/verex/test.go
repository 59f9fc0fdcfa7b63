// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/verex

package main

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var errNoMatch = errors.New("some subjects did not match")

var (
	matchColor   = color.New(color.FgGreen)
	noMatchColor = color.New(color.FgRed)
)

func newTestCmd() *cobra.Command {
	var (
		in     inputOptions
		strict bool
	)

	cmd := &cobra.Command{
		Use:   "test [subject...]",
		Short: "Test subjects against the assembled pattern",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := in.build()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			missed := 0
			for _, subject := range args {
				if e.Test(subject) {
					_, _ = matchColor.Fprint(out, "match   ")
				} else {
					missed++
					_, _ = noMatchColor.Fprint(out, "no match")
				}

				_, _ = fmt.Fprintf(out, " %q\n", subject)
			}

			if strict && missed > 0 {
				return fmt.Errorf("%w: %d of %d", errNoMatch, missed, len(args))
			}

			return nil
		},
	}

	in.register(cmd)
	cmd.Flags().BoolVar(&strict, "strict", false, "fail when any subject does not match")
	return cmd
}
