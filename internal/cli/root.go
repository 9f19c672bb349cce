package cli

import (
	"fmt"

	"github.com/coordination-oru/demolauncher/internal/branding"
	"github.com/coordination-oru/demolauncher/internal/buildinfo"
	"github.com/coordination-oru/demolauncher/internal/config"
	"github.com/coordination-oru/demolauncher/internal/launcher"
	"github.com/coordination-oru/demolauncher/internal/logging"
	"github.com/coordination-oru/demolauncher/internal/manifest"
	"github.com/coordination-oru/demolauncher/internal/registry"
	"github.com/spf13/cobra"
)

// newRootCmd builds the root command over the given registry.
func newRootCmd(reg *registry.Registry) *cobra.Command {
	return &cobra.Command{
		Use:   branding.CLIName() + " [demo [nRobots planner map constrained no_hotspots exp]]",
		Short: branding.Description(),
		Long: branding.DisplayName() + ` lists the demos registered under ` + branding.Namespace() + `
and runs the one named by the first argument. Run it without arguments to see
the catalog.`,
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if config.Banner() {
				m, err := manifest.Load()
				if err == nil && m.Banner != "" {
					fmt.Fprintf(cmd.ErrOrStderr(), "%s %s\n", m.Banner, buildinfo.Version())
				}
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := manifest.Load()
			if err != nil {
				return err
			}

			l := &launcher.Launcher{
				Dispatcher: launcher.Dispatcher{
					Registry:  reg,
					Namespace: branding.Namespace(),
				},
				Manifest:   m,
				Stdout:     cmd.OutOrStdout(),
				Stderr:     cmd.ErrOrStderr(),
				Logger:     logging.New(cmd.ErrOrStderr(), config.LogLevel()),
				StrictExit: config.StrictExit(),
			}
			return l.Run(cmd.Context(), args)
		},
	}
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildinfo.Set(version, commit, date)
	config.Load()
	return newRootCmd(registry.Default).Execute()
}
