package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var deployCmd = &cobra.Command{
	Use:   "deploy",
	Short: "Build and publish the site",
	Long:  `Run the configured deploy command from the site directory and print its output.`,
	RunE:  runDeploy,
}

func init() {
	rootCmd.AddCommand(deployCmd)
}

func runDeploy(cmd *cobra.Command, _ []string) error {
	if postService == nil {
		return errors.New("post service not configured")
	}

	output, err := postService.Deploy(cmd.Context())
	if output != "" {
		cmd.Print(output)
	}
	if err != nil {
		return fmt.Errorf("deploy failed: %w", err)
	}

	cmd.Println("Deploy complete.")
	return nil
}
