package main

import (
	"fmt"
	"runtime/debug"

	"github.com/spf13/cobra"
)

const modulePath = "github.com/hasbyte1/go-password-strength"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the pwcheck version",
		Args:  cobra.NoArgs,
		// Needs no configuration.
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		Run: func(cmd *cobra.Command, _ []string) {
			info, _ := debug.ReadBuildInfo()
			fmt.Fprintf(cmd.OutOrStdout(), "pwcheck %s\n", resolveVersion(info))
		},
	}
}

// resolveVersion prefers the linker-set version, then the module version
// recorded in the build info, then the VCS revision.
func resolveVersion(info *debug.BuildInfo) string {
	if version != "dev" || info == nil {
		return version
	}
	if v := info.Main.Version; info.Main.Path == modulePath && v != "" && v != "(devel)" {
		return v
	}
	for _, s := range info.Settings {
		if s.Key == "vcs.revision" && s.Value != "" {
			return s.Value
		}
	}
	return version
}
