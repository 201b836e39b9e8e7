// Package cli wires the bmcar commands.
package cli

import (
	"github.com/spf13/cobra"
)

var (
	version = "v0.1.0"
	commit  = ""
	date    = ""
)

type rootOptions struct {
	configPath   string
	dataDir      string
	locationFile string
	units        string
	locale       string
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		return 1
	}
	return 0
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "bmcar",
		Short:         "Browse map bookmarks on a small display",
		SilenceErrors: false,
		SilenceUsage:  true,
		Version:       buildVersion(),
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBrowse(cmd, opts, "")
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "Override config file path (default: ~/.config/bmcar/config.json)")
	flags.StringVar(&opts.dataDir, "data", "", "Override data directory (default: ~/.config/bmcar)")
	flags.StringVar(&opts.locationFile, "location", "", "JSON fix file to follow for the current location")
	flags.StringVar(&opts.units, "units", "", "Distance units: metric or imperial (default from config)")
	flags.StringVar(&opts.locale, "locale", "", "Label language, e.g. en, de, fr (default from config)")

	cmd.AddCommand(
		newOpenCmd(opts),
		newShowCmd(opts),
		newImportCmd(opts),
		newExportCmd(opts),
	)

	return cmd
}

func buildVersion() string {
	v := version
	if commit != "" {
		v += " (" + commit + ")"
	}
	if date != "" {
		v += " " + date
	}
	return v
}
