package main

import (
	"errors"
	"io"

	"github.com/spf13/cobra"

	"github.com/hasbyte1/go-password-strength/internal/logging"
)

var errNoPassword = errors.New("no password given")

func newAnalyzeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "analyze",
		Short: "Analyze a single password",
		Long: `Analyze reads one password, hidden if stdin is a terminal or as the
first line of standard input otherwise, and prints its strength report.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			pw, err := newPasswordReader(cmd, a.stdin).read("Password: ")
			if errors.Is(err, io.EOF) || (err == nil && pw == "") {
				return errNoPassword
			}
			if err != nil {
				return err
			}
			r := a.analyzer.Analyze(pw)
			logging.Infof("analyzed password: length=%d score=%d label=%s", r.Length, r.Score, r.Label)
			return a.render.Report(cmd.OutOrStdout(), r)
		},
	}
}
