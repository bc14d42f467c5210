package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long:  `View and change quill configuration values.`,
	RunE:  runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Set a configuration value",
	Long: `Set a configuration value and persist it.

Known keys:
  site.dir                  root of the static site checkout
  site.posts_dir            posts directory, relative to site.dir
  site.deploy_command       shell command that builds and publishes the site
  web.fetch_timeout_seconds timeout for a single fetch
  web.max_redirects         redirect hop cap
  web.max_body_bytes        response body size cap
  web.search_base_url       HTML search endpoint`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the configuration file path",
	RunE:  runConfigPath,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configPathCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}

	cmd.Println("[Site]")
	cmd.Printf("  Dir:            %s\n", appSettings.SiteDir)
	cmd.Printf("  Posts dir:      %s\n", appSettings.PostsDir)
	cmd.Printf("  Deploy command: %s\n", appSettings.DeployCommand)
	cmd.Println()
	cmd.Println("[Web]")
	cmd.Printf("  Fetch timeout:   %s\n", appSettings.FetchTimeout)
	cmd.Printf("  Max redirects:   %d\n", appSettings.MaxRedirects)
	cmd.Printf("  Max body bytes:  %d\n", appSettings.MaxBodyBytes)
	cmd.Printf("  Search base URL: %s\n", appSettings.SearchBaseURL)

	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}

	key, value := args[0], args[1]
	if err := configStore.Set(key, coerceConfigValue(value)); err != nil {
		return fmt.Errorf("setting %s: %w", key, err)
	}
	if err := configStore.Save(); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	cmd.Printf("Set %s = %s\n", key, value)
	return nil
}

func runConfigPath(cmd *cobra.Command, _ []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}

	cmd.Println(configStore.Path())
	return nil
}

// coerceConfigValue stores numbers and booleans in their native TOML
// form so typed reads round-trip.
func coerceConfigValue(value string) any {
	if n, err := strconv.ParseInt(value, 10, 64); err == nil {
		return n
	}
	if b, err := strconv.ParseBool(value); err == nil {
		return b
	}
	return value
}
