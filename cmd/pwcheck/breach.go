package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/hasbyte1/go-password-strength/breach"
	"github.com/hasbyte1/go-password-strength/internal/logging"
)

func newBreachKeyCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "breach-key",
		Short: "Print the hash prefix for a k-anonymity breach lookup",
		Long: `Breach-key hashes the password with the configured driver and prints
only the leading hex characters. Send that prefix to a range API such as
Pwned Passwords (sha1) and check the response with breach-match.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			k, err := a.deriveKey(cmd)
			if err != nil {
				return err
			}
			return a.render.BreachKey(cmd.OutOrStdout(), k)
		},
	}
}

func newBreachMatchCmd(a *app) *cobra.Command {
	var rangeFile string
	cmd := &cobra.Command{
		Use:   "breach-match",
		Short: "Check a password against a saved range-query response",
		Long: `Breach-match reads a range response body (lines of SUFFIX:COUNT) that
was fetched for the password's prefix and reports how often the password
appears in it.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := os.Open(rangeFile)
			if err != nil {
				return fmt.Errorf("opening range file: %w", err)
			}
			defer f.Close()

			k, err := a.deriveKey(cmd)
			if err != nil {
				return err
			}
			count, err := k.Lookup(f)
			if err != nil {
				return err
			}
			logging.Infof("range lookup for prefix %s: count=%d", k.Prefix(), count)
			return a.render.BreachMatch(cmd.OutOrStdout(), k, count)
		},
	}
	cmd.Flags().StringVar(&rangeFile, "range-file", "", "file holding the range response body")
	_ = cmd.MarkFlagRequired("range-file")
	return cmd
}

func (a *app) deriveKey(cmd *cobra.Command) (breach.Key, error) {
	pw, err := newPasswordReader(cmd, a.stdin).read("Password: ")
	if errors.Is(err, io.EOF) || (err == nil && pw == "") {
		return breach.Key{}, errNoPassword
	}
	if err != nil {
		return breach.Key{}, err
	}
	k, err := a.breaches.Derive(pw)
	if err != nil {
		return breach.Key{}, err
	}
	logging.Debugf("derived %s lookup prefix %s", k.Driver(), k.Prefix())
	return k, nil
}
