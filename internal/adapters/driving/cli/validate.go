package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"

	"github.com/templar-labs/templar-cli/internal/core/domain"
)

var (
	validateOriginal  string
	validateTemplate  string
	validateGenerated string
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Grade a generated document against its sources",
	Long: `Ask the LLM to grade a generated document against the original document and
the template it was normalised with. The grading is best-effort: read or
parse failures produce a zero-confidence report instead of an error.`,
	RunE: runValidate,
}

var validateBatchCmd = &cobra.Command{
	Use:   "batch [manifest]",
	Short: "Grade a batch of documents from a TOML manifest",
	Long: `Grade every entry of a TOML manifest concurrently. The manifest lists the
three artifacts per document:

  [[documents]]
  original = "input/report.txt"
  template = "templates/report.txt"
  generated = "output/report.txt"

Results are reported in manifest order.`,
	Args: cobra.ExactArgs(1),
	RunE: runValidateBatch,
}

func init() {
	validateCmd.Flags().StringVar(&validateOriginal, "original", "", "Original document path (required)")
	validateCmd.Flags().StringVar(&validateTemplate, "template", "", "Template file path (required)")
	validateCmd.Flags().StringVar(&validateGenerated, "generated", "", "Generated document path (required)")
	_ = validateCmd.MarkFlagRequired("original")
	_ = validateCmd.MarkFlagRequired("template")
	_ = validateCmd.MarkFlagRequired("generated")

	validateCmd.AddCommand(validateBatchCmd)
	rootCmd.AddCommand(validateCmd)
}

// batchManifest is the TOML format for validate batch.
type batchManifest struct {
	Documents []struct {
		Original  string `toml:"original"`
		Template  string `toml:"template"`
		Generated string `toml:"generated"`
	} `toml:"documents"`
}

func runValidate(cmd *cobra.Command, _ []string) error {
	if outputValidator == nil {
		return errors.New("output validator not configured")
	}

	result := outputValidator.ValidateOutput(cmd.Context(), validateOriginal, validateTemplate, validateGenerated)
	printValidationResult(cmd, result)
	return nil
}

func runValidateBatch(cmd *cobra.Command, args []string) error {
	if outputValidator == nil {
		return errors.New("output validator not configured")
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read manifest: %w", err)
	}

	var manifest batchManifest
	if err := toml.Unmarshal(data, &manifest); err != nil {
		return fmt.Errorf("failed to parse manifest: %w", err)
	}
	if len(manifest.Documents) == 0 {
		return errors.New("manifest lists no documents")
	}

	requests := make([]domain.ValidationRequest, len(manifest.Documents))
	for i, doc := range manifest.Documents {
		requests[i] = domain.ValidationRequest{
			OriginalPath:  doc.Original,
			TemplatePath:  doc.Template,
			GeneratedPath: doc.Generated,
		}
	}

	batch := outputValidator.ValidateBatch(cmd.Context(), requests)

	cmd.Printf("Batch validation: %d documents\n\n", batch.TotalDocuments)
	for i := range batch.Results {
		r := &batch.Results[i]
		verdict := "INVALID"
		if r.Result.IsValid {
			verdict = "valid"
		}
		cmd.Printf("  %-40s %s (%.2f)\n", r.DocumentPath, verdict, r.Result.ConfidenceScore)
		if r.Result.Summary != "" {
			cmd.Printf("    %s\n", r.Result.Summary)
		}
	}
	cmd.Println()
	cmd.Printf("Valid:   %d\n", batch.ValidDocuments)
	cmd.Printf("Invalid: %d\n", batch.InvalidDocuments)
	cmd.Printf("Average confidence: %.2f\n", batch.AverageConfidenceScore)
	return nil
}

func printValidationResult(cmd *cobra.Command, result *domain.ValidationResult) {
	verdict := "INVALID"
	if result.IsValid {
		verdict = "valid"
	}
	cmd.Printf("Validation: %s (confidence %.2f)\n\n", verdict, result.ConfidenceScore)
	if result.Summary != "" {
		cmd.Printf("  Summary: %s\n", result.Summary)
	}

	if len(result.Issues) > 0 {
		cmd.Println("\n  Issues:")
		for _, issue := range result.Issues {
			cmd.Printf("    [%s/%s] %s: %s\n", issue.Type, issue.Severity, issue.Field, issue.Description)
		}
	}

	if len(result.ExtractedFields) > 0 {
		cmd.Println("\n  Extracted fields:")
		for k, v := range result.ExtractedFields {
			cmd.Printf("    %s: %s\n", k, v)
		}
	}

	if result.Recommendation != "" {
		cmd.Printf("\n  Recommendation: %s\n", result.Recommendation)
	}
}
