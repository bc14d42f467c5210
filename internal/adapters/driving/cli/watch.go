package cli

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/quill-cli/internal/logger"
)

var watchDebounce time.Duration

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Redeploy the site when posts change",
	Long: `Watch the posts directory and re-run the deploy command whenever a
markdown file changes. Rapid bursts of changes are coalesced into a
single deploy after a quiet period.`,
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().DurationVar(&watchDebounce, "debounce", 2*time.Second, "quiet period before redeploying")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, _ []string) error {
	if postService == nil {
		return errors.New("post service not configured")
	}

	postsDir := appSettings.PostsDir
	if !filepath.IsAbs(postsDir) {
		postsDir = filepath.Join(appSettings.SiteDir, postsDir)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close() //nolint:errcheck

	if err := watcher.Add(postsDir); err != nil {
		return fmt.Errorf("watching %s: %w", postsDir, err)
	}

	cmd.Printf("Watching %s for changes. Press Ctrl-C to stop.\n", postsDir)

	// Timer starts stopped; each qualifying event pushes the deploy
	// out by the debounce interval.
	timer := time.NewTimer(watchDebounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	ctx := cmd.Context()
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !isPostEvent(event) {
				continue
			}
			logger.Debug("change detected: %s %s", event.Op, event.Name)
			timer.Reset(watchDebounce)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error: %v", err)

		case <-timer.C:
			logger.Section("Deploy")
			output, err := postService.Deploy(ctx)
			if output != "" {
				cmd.Print(output)
			}
			if err != nil {
				cmd.PrintErrf("deploy failed: %v\n", err)
				continue
			}
			cmd.Println("Deploy complete.")
		}
	}
}

// isPostEvent reports whether the event concerns a markdown file in a
// way that warrants a redeploy. Temp files from atomic writes carry a
// .tmp extension and are ignored.
func isPostEvent(event fsnotify.Event) bool {
	if !strings.EqualFold(filepath.Ext(event.Name), ".md") {
		return false
	}
	return event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) != 0
}
