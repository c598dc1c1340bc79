package main

import (
	"fmt"

	"github.com/jonathan/portfolio-site/internal/content"
	"github.com/spf13/cobra"
)

var validateDataDir string

var validateContentCmd = &cobra.Command{
	Use:   "validate-content",
	Short: "Validate every content document against its schema",
	Long:  "Loads all collections concurrently, checks each against its JSON Schema and for duplicate ids, and reports per-collection record counts.",
	Args:  cobra.NoArgs,
	RunE:  runValidateContent,
}

func init() {
	validateContentCmd.Flags().StringVar(&validateDataDir, "data-dir", "data", "Directory holding the content documents")
	rootCmd.AddCommand(validateContentCmd)
}

//nolint:errcheck // writing to stdout; errors are not recoverable
func runValidateContent(cmd *cobra.Command, _ []string) error {
	dir, err := resolveDataDir(cmd, validateDataDir)
	if err != nil {
		return err
	}

	counts, err := content.NewDirStore(dir).Preload(cmd.Context())
	if err != nil {
		return fmt.Errorf("content validation failed: %w", err)
	}

	out := cmd.OutOrStdout()
	for _, name := range content.Names() {
		fmt.Fprintf(out, "✓ %-15s %d records\n", name, counts[name])
	}
	fmt.Fprintf(out, "All %d collections valid\n", len(counts))
	return nil
}
