package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/quill-cli/internal/logger"
)

var fetchShowMeta bool

var fetchCmd = &cobra.Command{
	Use:   "fetch [url]",
	Short: "Fetch a URL as markdown",
	Long: `Fetch an http or https URL and print its content. HTML pages are
converted to markdown, JSON responses are pretty-printed, and anything
else passes through unmodified.`,
	Args: cobra.ExactArgs(1),
	RunE: runFetch,
}

func init() {
	fetchCmd.Flags().BoolVar(&fetchShowMeta, "meta", false, "print status, final URL and length before the content")
	rootCmd.AddCommand(fetchCmd)
}

func runFetch(cmd *cobra.Command, args []string) error {
	if webService == nil {
		return errors.New("web service not configured")
	}

	doc, err := webService.Fetch(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("fetch failed: %w", err)
	}

	logger.Debug("fetched %s (%d bytes)", doc.FinalURL, doc.Length)

	if fetchShowMeta {
		cmd.Printf("Status: %d\n", doc.StatusCode)
		cmd.Printf("URL:    %s\n", doc.FinalURL)
		cmd.Printf("Length: %d\n", doc.Length)
		if doc.Title != "" {
			cmd.Printf("Title:  %s\n", doc.Title)
		}
		cmd.Println()
	}

	cmd.Println(doc.Content)
	return nil
}
