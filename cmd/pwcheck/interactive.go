package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hasbyte1/go-password-strength/internal/logging"
)

const banner = `==================================================
PASSWORD STRENGTH ANALYZER
==================================================

This tool evaluates password security without storing
or transmitting your password anywhere.

`

func newInteractiveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "interactive",
		Short: "Analyze passwords in a prompt loop",
		Long: `Interactive prompts for passwords until "quit" (any case) is entered or
input ends. Empty input is rejected and the prompt repeats.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.interactive(cmd)
		},
	}
}

func (a *app) interactive(cmd *cobra.Command) error {
	out := cmd.OutOrStdout()
	pr := newPasswordReader(cmd, a.stdin)
	fmt.Fprint(out, banner)

	for n := 0; ; {
		pw, err := pr.read("Enter password to analyze (or 'quit' to exit): ")
		if errors.Is(err, io.EOF) {
			logging.Debugf("input closed after %d passwords", n)
			return nil
		}
		if err != nil {
			return err
		}

		if strings.EqualFold(pw, "quit") {
			fmt.Fprintln(out, "\nThank you for using Password Strength Analyzer!")
			return nil
		}
		if pw == "" {
			fmt.Fprint(out, "Password cannot be empty. Please try again.\n\n")
			continue
		}

		n++
		if err := a.render.Report(out, a.analyzer.Analyze(pw)); err != nil {
			return err
		}
		fmt.Fprintln(out)
	}
}
