package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/installbridge/installbridge/internal/snippet"
)

var (
	snippetsBadgePath string
	snippetsURL       string
)

var snippetsCmd = &cobra.Command{
	Use:   "snippets",
	Short: "Print README embed snippets",
	Long: `Print the Markdown and HTML fragments that embed the install badge,
linked to the project's install target.`,
	RunE: runSnippets,
}

func init() {
	snippetsCmd.Flags().StringVar(&snippetsBadgePath, "badge-path", "", "badge image path used in the snippets")
	snippetsCmd.Flags().StringVar(&snippetsURL, "url", "", "explicit link target (overrides homepage/installers)")
	rootCmd.AddCommand(snippetsCmd)
}

func runSnippets(_ *cobra.Command, _ []string) error {
	res, err := loadProjectConfig(configFileName())
	if err != nil {
		return err
	}
	if !res.Success {
		return fmt.Errorf("config is invalid, run `installbridge check` for details")
	}

	snip := snippet.Generate(*res.Config, snippetsBadgePath, snippetsURL)
	fmt.Println("Markdown:")
	fmt.Println("  " + snip.Markdown)
	fmt.Println()
	fmt.Println("HTML:")
	fmt.Println("  " + snip.HTML)
	return nil
}
