// Package logging holds the CLI's package-level logger.
//
// Never pass a password, a full digest, or a lookup suffix to these
// helpers.  Length, score, label and the public lookup prefix are fine.
package logging

import (
	"fmt"
	"io"
	"os"

	clog "github.com/charmbracelet/log"
)

// L is the package-level logger.  Tests may swap it for a buffer-backed
// logger and restore it afterwards.
var L = clog.NewWithOptions(os.Stderr, clog.Options{
	Prefix: "pwcheck",
	Level:  clog.WarnLevel,
})

// SetLevel parses level ("debug", "info", "warn", "error") and applies it
// to L.
func SetLevel(level string) error {
	lvl, err := clog.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("logging: %w", err)
	}
	L.SetLevel(lvl)
	return nil
}

// SetOutput redirects L.
func SetOutput(w io.Writer) {
	L.SetOutput(w)
}

// Debugf logs a debug-level formatted message.
func Debugf(format string, v ...any) {
	L.Debug(fmt.Sprintf(format, v...))
}

// Infof logs an info-level formatted message.
func Infof(format string, v ...any) {
	L.Info(fmt.Sprintf(format, v...))
}

// Warnf logs a warning-level formatted message.
func Warnf(format string, v ...any) {
	L.Warn(fmt.Sprintf(format, v...))
}

// Errorf logs an error-level formatted message.
func Errorf(format string, v ...any) {
	L.Error(fmt.Sprintf(format, v...))
}
