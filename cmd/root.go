// Package cmd defines the CLI commands for installbridge.
package cmd

import (
	"go.uber.org/zap"

	"github.com/spf13/cobra"
)

var verbose bool

// rootCmd is the base command for the installbridge CLI.
var rootCmd = &cobra.Command{
	Use:   "installbridge",
	Short: "Platform-aware install badges and redirect links",
	Long: `Installbridge validates a small per-project configuration describing
platform installers, renders an SVG install badge, emits README embed
snippets, and serves a redirect endpoint that sends each visitor to the
installer matching their operating system.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		initLogger()
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
}

// initLogger installs a console zap logger for CLI commands.  The serve
// command replaces it with the rotating file logger before listening.
func initLogger() {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	cfg.Encoding = "console"
	z, err := cfg.Build()
	if err != nil {
		return
	}
	zap.ReplaceGlobals(z)
}
