package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/installbridge/installbridge/internal/bridge"
	"github.com/installbridge/installbridge/internal/config"
)

var initForce bool

var initCmd = &cobra.Command{
	Use:   "init [app-name]",
	Short: "Write a starter install-bridge.json",
	Long: `Create a ready-to-edit install-bridge.json in the current directory,
populated with one example installer URL per platform.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

func init() {
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "overwrite an existing config")
	rootCmd.AddCommand(initCmd)
}

func runInit(_ *cobra.Command, args []string) error {
	appName := ""
	if len(args) == 1 {
		appName = args[0]
	}

	path := configFileName()
	if _, err := os.Stat(path); err == nil && !initForce {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}

	cfg := bridge.Template(appName)
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return err
	}

	fmt.Printf("wrote %s for %q\n", path, cfg.Name)
	return nil
}

// configFileName returns the conventional config filename, honoring the
// host config when one is loaded.
func configFileName() string {
	if c := config.Get(); c != nil {
		return c.Project.ConfigFile
	}
	return "install-bridge.json"
}
