package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/installbridge/installbridge/internal/badge"
	"github.com/installbridge/installbridge/internal/config"
)

var badgeOut string

var badgeCmd = &cobra.Command{
	Use:   "badge",
	Short: "Render the install badge SVG",
	Long: `Render the project's install badge from install-bridge.json and write
it next to the config (install-badge.svg by default).`,
	RunE: runBadge,
}

func init() {
	badgeCmd.Flags().StringVarP(&badgeOut, "out", "o", "", "output file (default install-badge.svg)")
	rootCmd.AddCommand(badgeCmd)
}

func runBadge(_ *cobra.Command, _ []string) error {
	res, err := loadProjectConfig(configFileName())
	if err != nil {
		return err
	}
	if !res.Success {
		return fmt.Errorf("config is invalid, run `installbridge check` for details")
	}

	out := badgeOut
	if out == "" {
		out = badgeFileName()
	}

	svg := badge.Render(*res.Config)
	if err := os.WriteFile(out, []byte(svg), 0o644); err != nil {
		return err
	}

	fmt.Printf("wrote %s\n", out)
	return nil
}

func badgeFileName() string {
	if c := config.Get(); c != nil {
		return c.Project.BadgeFile
	}
	return "install-badge.svg"
}
