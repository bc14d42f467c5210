// Package cli implements the quill command-line interface.
package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/quill-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/quill-cli/internal/adapters/driven/deploy"
	"github.com/custodia-labs/quill-cli/internal/adapters/driven/httpclient"
	"github.com/custodia-labs/quill-cli/internal/adapters/driven/posts"
	"github.com/custodia-labs/quill-cli/internal/core/domain"
	"github.com/custodia-labs/quill-cli/internal/core/ports/driven"
	"github.com/custodia-labs/quill-cli/internal/core/ports/driving"
	"github.com/custodia-labs/quill-cli/internal/core/services"
	"github.com/custodia-labs/quill-cli/internal/logger"
)

// version is printed by the version command and reported to MCP clients.
const version = "0.1.0"

var (
	verboseFlag bool
	configDir   string
)

// Services the commands run against. Wired from configuration on first
// use; tests replace them directly.
var (
	postService driving.PostService
	webService  driving.WebService
	configStore driven.ConfigStore
	appSettings domain.Settings
)

var rootCmd = &cobra.Command{
	Use:   "quill",
	Short: "Blog authoring and web retrieval toolkit",
	Long: `Quill manages a directory of markdown blog posts and retrieves web
content as markdown, for use by AI assistants over MCP or directly from
the command line.`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		logger.SetVerbose(verboseFlag)
		return initServices()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "config directory (default ~/.quill)")
}

// initServices wires the default adapters from configuration.
// No-op when services are already set.
func initServices() error {
	if postService != nil && webService != nil {
		return nil
	}

	store, err := file.NewConfigStore(configDir)
	if err != nil {
		return fmt.Errorf("opening config: %w", err)
	}
	configStore = store
	appSettings = file.Settings(store)
	logger.Debug("config loaded from %s", store.Path())

	postsDir := appSettings.PostsDir
	if !filepath.IsAbs(postsDir) {
		postsDir = filepath.Join(appSettings.SiteDir, postsDir)
	}
	postStore, err := posts.NewStore(postsDir)
	if err != nil {
		return fmt.Errorf("opening posts directory: %w", err)
	}

	postService = services.NewPostService(postStore, deploy.NewRunner(), appSettings)
	webService = services.NewWebService(httpclient.New(), appSettings)
	return nil
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
