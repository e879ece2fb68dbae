package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hasbyte1/go-password-strength/breach"
	"github.com/hasbyte1/go-password-strength/internal/config"
	"github.com/hasbyte1/go-password-strength/internal/logging"
	"github.com/hasbyte1/go-password-strength/internal/render"
	"github.com/hasbyte1/go-password-strength/strength"
)

// app holds what every subcommand needs once configuration is resolved.
type app struct {
	cfgFile  string
	stdin    bool
	cfg      config.Config
	analyzer *strength.Analyzer
	breaches *breach.Manager
	render   *render.Renderer
}

// newRootCmd builds a fresh command tree.  Tests call it once per case.
func newRootCmd() *cobra.Command {
	a := &app{}
	cmd := &cobra.Command{
		Use:   "pwcheck",
		Short: "Evaluate password strength offline.",
		Long: `pwcheck scores a password by character-class coverage, length,
common-password membership and repeated or sequential patterns, and
prints the strength label with concrete advice.

The password is never stored, logged or transmitted. breach-key derives
the short hash prefix used by k-anonymity breach APIs so the lookup can
be done without revealing the password.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "config file (default: pwcheck.yaml in the user config dir or .)")
	pf.StringP("output", "o", config.OutputText, "output format: text, json or yaml")
	pf.String("log-level", "warn", "log level: debug, info, warn or error")
	pf.Bool("no-color", false, "disable styled text output")
	pf.String("denylist", "", "common-password file, one per line (default: built-in list)")
	pf.String("denylist-mode", config.DenylistExact, "denylist matching: exact or bloom")
	pf.Float64("bloom-fp-rate", strength.DefaultFalsePositiveRate, "false-positive rate for the bloom denylist")
	pf.String("breach-driver", string(breach.DriverSHA1), "digest for breach lookup keys: sha1, sha256, blake2b or sha3")
	pf.Int("prefix-length", breach.DefaultPrefixLen, "hex characters in the breach lookup prefix")
	pf.BoolVar(&a.stdin, "stdin", false, "read passwords from standard input instead of the terminal")

	cmd.AddCommand(
		newAnalyzeCmd(a),
		newInteractiveCmd(a),
		newBreachKeyCmd(a),
		newBreachMatchCmd(a),
		newConfigCmd(a),
		newVersionCmd(),
	)
	return cmd
}

// setup resolves configuration and builds the analyzer, the breach manager
// and the renderer.
func (a *app) setup(cmd *cobra.Command) error {
	logging.SetOutput(cmd.ErrOrStderr())

	cfg, err := config.Load(cmd.Flags(), a.cfgFile)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := logging.SetLevel(cfg.LogLevel); err != nil {
		return err
	}
	a.cfg = cfg

	dl, err := loadDenylist(cfg.Denylist)
	if err != nil {
		return err
	}
	a.analyzer, err = strength.NewAnalyzer(strength.Options{
		Denylist: dl,
		Motifs:   strength.DefaultMotifs,
	})
	if err != nil {
		return err
	}

	a.breaches, err = newBreachManager(cfg.Breach)
	if err != nil {
		return err
	}

	format, err := render.ParseFormat(cfg.Output)
	if err != nil {
		return err
	}
	a.render = render.New(format, !cfg.NoColor)
	return nil
}

// newBreachManager registers only the configured driver so the prefix
// length is checked against that digest alone.
func newBreachManager(c config.BreachConfig) (*breach.Manager, error) {
	driver, err := breach.ParseDriverName(c.Driver)
	if err != nil {
		return nil, err
	}
	d, err := breach.NewDigestDeriver(driver, breach.Options{PrefixLen: c.PrefixLength})
	if err != nil {
		return nil, err
	}
	m := breach.NewManager(driver)
	if err := m.RegisterDriver(driver, d); err != nil {
		return nil, err
	}
	return m, nil
}

// loadDenylist returns the embedded list unless a file is configured.
func loadDenylist(c config.DenylistConfig) (strength.Denylist, error) {
	if c.File == "" {
		logging.Debugf("using built-in denylist")
		return strength.DefaultDenylist(), nil
	}

	f, err := os.Open(c.File)
	if err != nil {
		return nil, fmt.Errorf("opening denylist: %w", err)
	}
	defer f.Close()

	var dl strength.Denylist
	if c.Mode == config.DenylistBloom {
		dl, err = strength.LoadBloomDenylist(f, c.FalsePositiveRate)
	} else {
		dl, err = strength.LoadSetDenylist(f)
	}
	if err != nil {
		return nil, fmt.Errorf("loading denylist %s: %w", c.File, err)
	}
	if c.Mode == config.DenylistBloom {
		logging.Warnf("bloom denylist may flag about %g of uncommon passwords as common", c.FalsePositiveRate)
	}
	logging.Infof("loaded %d denylist entries from %s (%s)", dl.Len(), c.File, c.Mode)
	return dl, nil
}
