package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var documentCmd = &cobra.Command{
	Use:   "document",
	Short: "Manage normalised documents",
	Long:  `List, view, or summarise documents produced by the normalisation pipeline.`,
}

var documentListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored documents",
	RunE:  runDocumentList,
}

var documentGetCmd = &cobra.Command{
	Use:   "get [doc-id]",
	Short: "Show document info",
	Args:  cobra.ExactArgs(1),
	RunE:  runDocumentGet,
}

var documentContentCmd = &cobra.Command{
	Use:   "content [doc-id]",
	Short: "Print normalised document content",
	Args:  cobra.ExactArgs(1),
	RunE:  runDocumentContent,
}

var documentSummarizeCmd = &cobra.Command{
	Use:   "summarize [doc-id]",
	Short: "Extract key information from a document",
	Long:  `Builds a structured summary of the stored original content: document type, purpose, key sections, dates and parties.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runDocumentSummarize,
}

func init() {
	documentCmd.AddCommand(documentListCmd)
	documentCmd.AddCommand(documentGetCmd)
	documentCmd.AddCommand(documentContentCmd)
	documentCmd.AddCommand(documentSummarizeCmd)
	rootCmd.AddCommand(documentCmd)
}

func runDocumentList(cmd *cobra.Command, _ []string) error {
	if documentService == nil {
		return errors.New("document service not configured")
	}

	docs, err := documentService.List(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to list documents: %w", err)
	}

	if len(docs) == 0 {
		cmd.Println("No documents stored.")
		return nil
	}

	cmd.Println("Documents:")
	cmd.Println()
	for i := range docs {
		cmd.Printf("  %s\n", docs[i].ID)
		cmd.Printf("    File:    %s\n", docs[i].FileName)
		cmd.Printf("    Status:  %s\n", docs[i].Status)
		cmd.Printf("    Created: %s\n", docs[i].CreatedAt.Format("2006-01-02 15:04:05"))
		cmd.Println()
	}

	cmd.Printf("Total: %d documents\n", len(docs))
	return nil
}

func runDocumentGet(cmd *cobra.Command, args []string) error {
	if documentService == nil {
		return errors.New("document service not configured")
	}

	doc, err := documentService.Get(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("failed to get document: %w", err)
	}

	cmd.Printf("Document: %s\n\n", doc.ID)
	cmd.Printf("  File:     %s\n", doc.FileName)
	cmd.Printf("  Status:   %s\n", doc.Status)
	cmd.Printf("  Created:  %s\n", doc.CreatedAt.Format("2006-01-02 15:04:05"))
	if doc.NormalizedAt != nil {
		cmd.Printf("  Normalised: %s\n", doc.NormalizedAt.Format("2006-01-02 15:04:05"))
	}
	return nil
}

func runDocumentContent(cmd *cobra.Command, args []string) error {
	if documentService == nil {
		return errors.New("document service not configured")
	}

	doc, err := documentService.Get(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("failed to get document: %w", err)
	}

	if doc.NormalizedContent == "" {
		cmd.Println(doc.OriginalContent)
		return nil
	}
	cmd.Println(doc.NormalizedContent)
	return nil
}

func runDocumentSummarize(cmd *cobra.Command, args []string) error {
	if documentService == nil {
		return errors.New("document service not configured")
	}

	summary, err := documentService.Summarize(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("failed to summarize document: %w", err)
	}

	cmd.Println(summary)
	return nil
}
