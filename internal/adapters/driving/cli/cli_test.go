package cli

import (
	"bytes"
	"context"

	"github.com/templar-labs/templar-cli/internal/adapters/driven/storage/memory"
	"github.com/templar-labs/templar-cli/internal/core/ports/driven"
	"github.com/templar-labs/templar-cli/internal/core/services"
	"github.com/templar-labs/templar-cli/internal/readers"
	"github.com/templar-labs/templar-cli/internal/writers"
)

// stubCompletion is a canned completion service for command tests.
type stubCompletion struct {
	response string
}

func (s *stubCompletion) Complete(_ context.Context, _ string, _ driven.CompletionOptions) (string, error) {
	return s.response, nil
}

func (s *stubCompletion) ModelName() string            { return "stub" }
func (s *stubCompletion) Ping(_ context.Context) error { return nil }
func (s *stubCompletion) Close() error                 { return nil }

// setupTestServices wires the command vars with in-memory services and
// returns a cleanup function restoring the previous wiring.
func setupTestServices() func() {
	prevDocuments := documentService
	prevTemplates := templateService
	prevValidator := outputValidator
	prevStore := templateStore

	completion := &stubCompletion{response: "NORMALISED OUTPUT"}
	docs := memory.NewDocumentStore()
	templates := memory.NewTemplateStore()
	reader := readers.Default()
	writer := writers.Default()
	normalizer := services.NewNormalizer(completion, nil)

	documentService = services.NewDocumentService(docs, templates, normalizer, reader, writer, services.PipelineOptions{
		MaxFileSizeBytes: 1024 * 1024,
	})
	templateService = services.NewTemplateService(templates)
	outputValidator = services.NewOutputValidator(completion, reader, nil)
	templateStore = templates

	return func() {
		documentService = prevDocuments
		templateService = prevTemplates
		outputValidator = prevValidator
		templateStore = prevStore
	}
}

// execute runs the root command with args and captures output.
func execute(args ...string) (string, error) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()
	return buf.String(), err
}
