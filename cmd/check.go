package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/installbridge/installbridge/internal/bridge"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the project's install-bridge.json",
	Long: `Parse and validate install-bridge.json in the current directory,
printing every validation error. Exits non-zero when the config is
invalid.`,
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(_ *cobra.Command, _ []string) error {
	path := configFileName()
	res, err := loadProjectConfig(path)
	if err != nil {
		return err
	}
	if !res.Success {
		for _, e := range res.Errors {
			fmt.Fprintf(os.Stderr, "  - %s\n", e)
		}
		return fmt.Errorf("%s is invalid (%d error(s))", path, len(res.Errors))
	}

	fmt.Printf("%s is valid (%d installer(s))\n", path, len(res.Config.Installers))
	return nil
}

// loadProjectConfig reads and parses the project config file.  File I/O
// lives here in the CLI; the core parser only ever sees text.
func loadProjectConfig(path string) (bridge.ParseResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return bridge.ParseResult{}, fmt.Errorf("read %s: %w", path, err)
	}
	return bridge.Parse(string(data)), nil
}
