package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// passwordReader reads one password per call, hidden when stdin is a
// terminal and line by line otherwise.
type passwordReader struct {
	prompt io.Writer
	fd     int
	term   bool
	lines  *bufio.Reader
}

func newPasswordReader(cmd *cobra.Command, forceStdin bool) *passwordReader {
	pr := &passwordReader{prompt: cmd.ErrOrStderr()}
	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok && !forceStdin && term.IsTerminal(int(f.Fd())) {
		pr.term, pr.fd = true, int(f.Fd())
		return pr
	}
	pr.lines = bufio.NewReader(in)
	return pr
}

// read shows label and returns the next password without its line ending.
// It returns io.EOF once input is exhausted.
func (pr *passwordReader) read(label string) (string, error) {
	fmt.Fprint(pr.prompt, label)
	if pr.term {
		b, err := term.ReadPassword(pr.fd)
		fmt.Fprintln(pr.prompt)
		if err != nil {
			return "", fmt.Errorf("reading password: %w", err)
		}
		return string(b), nil
	}

	line, err := pr.lines.ReadString('\n')
	if errors.Is(err, io.EOF) && line == "" {
		return "", io.EOF
	}
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("reading password: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}
