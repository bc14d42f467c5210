package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/quill-cli/internal/core/domain"
)

var (
	postWriteTitle      string
	postWriteDate       string
	postWriteTags       []string
	postWriteCategories []string
	postWriteBodyFile   string
)

var postCmd = &cobra.Command{
	Use:   "post",
	Short: "Manage blog posts",
	Long:  `List, read and write markdown posts in the configured posts directory.`,
}

var postListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all posts",
	RunE:  runPostList,
}

var postReadCmd = &cobra.Command{
	Use:   "read [filename]",
	Short: "Print a post's metadata and body",
	Args:  cobra.ExactArgs(1),
	RunE:  runPostRead,
}

var postWriteCmd = &cobra.Command{
	Use:   "write [filename]",
	Short: "Create or replace a post",
	Long: `Create or replace a post with the given metadata. The body is read
from --body-file, or from stdin when the flag is omitted.`,
	Args: cobra.ExactArgs(1),
	RunE: runPostWrite,
}

func init() {
	postWriteCmd.Flags().StringVar(&postWriteTitle, "title", "", "post title")
	postWriteCmd.Flags().StringVar(&postWriteDate, "date", "", "publication date")
	postWriteCmd.Flags().StringArrayVar(&postWriteTags, "tag", nil, "post tag (repeatable)")
	postWriteCmd.Flags().StringArrayVar(&postWriteCategories, "category", nil, "post category (repeatable)")
	postWriteCmd.Flags().StringVar(&postWriteBodyFile, "body-file", "", "file containing the markdown body (default stdin)")

	postCmd.AddCommand(postListCmd)
	postCmd.AddCommand(postReadCmd)
	postCmd.AddCommand(postWriteCmd)
	rootCmd.AddCommand(postCmd)
}

func runPostList(cmd *cobra.Command, _ []string) error {
	if postService == nil {
		return errors.New("post service not configured")
	}

	infos, err := postService.List(cmd.Context())
	if err != nil {
		return fmt.Errorf("listing posts: %w", err)
	}

	if len(infos) == 0 {
		cmd.Println("No posts found.")
		return nil
	}

	for i := range infos {
		cmd.Printf("%s\n", infos[i].Filename)
		if infos[i].Title != "" {
			cmd.Printf("  Title: %s\n", infos[i].Title)
		}
		if infos[i].Date != "" {
			cmd.Printf("  Date:  %s\n", infos[i].Date)
		}
		if len(infos[i].Tags) > 0 {
			cmd.Printf("  Tags:  %s\n", strings.Join(infos[i].Tags, ", "))
		}
	}

	return nil
}

func runPostRead(cmd *cobra.Command, args []string) error {
	if postService == nil {
		return errors.New("post service not configured")
	}

	doc, err := postService.Read(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("reading post: %w", err)
	}

	meta := doc.Metadata
	cmd.Printf("Title: %s\n", meta.Title)
	cmd.Printf("Date:  %s\n", meta.Date)
	if len(meta.Tags) > 0 {
		cmd.Printf("Tags:  %s\n", strings.Join(meta.Tags, ", "))
	}
	if len(meta.Categories) > 0 {
		cmd.Printf("Categories: %s\n", strings.Join(meta.Categories, ", "))
	}
	cmd.Println()
	cmd.Println(doc.Body)

	return nil
}

func runPostWrite(cmd *cobra.Command, args []string) error {
	if postService == nil {
		return errors.New("post service not configured")
	}

	body, err := readPostBody(cmd)
	if err != nil {
		return err
	}

	meta := domain.NewPostMetadata()
	meta.Title = postWriteTitle
	meta.Date = postWriteDate
	if postWriteTags != nil {
		meta.Tags = postWriteTags
	}
	if postWriteCategories != nil {
		meta.Categories = postWriteCategories
	}

	if err := postService.Write(cmd.Context(), args[0], meta, body); err != nil {
		return fmt.Errorf("writing post: %w", err)
	}

	cmd.Printf("Wrote %s\n", args[0])
	return nil
}

func readPostBody(cmd *cobra.Command) (string, error) {
	if postWriteBodyFile != "" {
		data, err := os.ReadFile(postWriteBodyFile)
		if err != nil {
			return "", fmt.Errorf("reading body file: %w", err)
		}
		return string(data), nil
	}

	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("reading body from stdin: %w", err)
	}
	return string(data), nil
}
