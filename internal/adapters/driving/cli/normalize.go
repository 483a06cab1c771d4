package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/templar-labs/templar-cli/internal/core/ports/driving"
)

var (
	normalizeTemplate string
	normalizeOutput   string
)

var normalizeCmd = &cobra.Command{
	Use:   "normalize [file]",
	Short: "Normalise a document against a template",
	Long: `Run the full normalisation pipeline on a document.

The template may be a stored template name (see 'templar template list') or a
path to a template file; an existing file takes precedence over a stored name.
With --output the result is also rendered to a file, with the format chosen
from the output path's extension (.txt, .md, .html, .docx, .pdf).`,
	Args: cobra.ExactArgs(1),
	RunE: runNormalize,
}

func init() {
	normalizeCmd.Flags().StringVarP(&normalizeTemplate, "template", "t", "", "Template name or file path (required)")
	normalizeCmd.Flags().StringVarP(&normalizeOutput, "output", "o", "", "Output file path")
	_ = normalizeCmd.MarkFlagRequired("template")

	rootCmd.AddCommand(normalizeCmd)
}

func runNormalize(cmd *cobra.Command, args []string) error {
	if documentService == nil {
		return errors.New("document service not configured")
	}

	doc, err := documentService.Normalize(cmd.Context(), driving.NormalizeRequest{
		DocumentPath: args[0],
		TemplateName: normalizeTemplate,
		OutputPath:   normalizeOutput,
	})
	if err != nil {
		return fmt.Errorf("normalisation failed: %w", err)
	}

	cmd.Printf("Document normalised: %s\n\n", doc.ID)
	cmd.Printf("  File:       %s\n", doc.FileName)
	cmd.Printf("  Status:     %s\n", doc.Status)
	if doc.NormalizedAt != nil {
		cmd.Printf("  Completed:  %s\n", doc.NormalizedAt.Format("2006-01-02 15:04:05"))
	}
	if normalizeOutput != "" {
		cmd.Printf("  Output:     %s\n", normalizeOutput)
	}
	cmd.Println()
	cmd.Println(doc.NormalizedContent)
	return nil
}
