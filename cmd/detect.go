package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/installbridge/installbridge/internal/platform"
)

var detectCmd = &cobra.Command{
	Use:   "detect [user-agent]",
	Short: "Classify a user-agent string",
	Long: `Print the platform identifier (darwin, win32, linux, or unknown) for a
user-agent string given as an argument or piped on stdin.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDetect,
}

func init() {
	rootCmd.AddCommand(detectCmd)
}

func runDetect(_ *cobra.Command, args []string) error {
	raw := ""
	if len(args) == 1 {
		raw = args[0]
	} else {
		scanner := bufio.NewScanner(os.Stdin)
		if scanner.Scan() {
			raw = strings.TrimSpace(scanner.Text())
		}
		if err := scanner.Err(); err != nil {
			return err
		}
	}

	fmt.Println(platform.Detect(raw))
	return nil
}
