// Package cli provides the templar command-line interface.
//
// Commands are declared as package-level vars and registered in init().
// Services are injected as package-level vars by Execute, which keeps the
// command handlers testable with stub services.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	configfile "github.com/templar-labs/templar-cli/internal/adapters/driven/config/file"
	"github.com/templar-labs/templar-cli/internal/adapters/driven/llm/ollama"
	"github.com/templar-labs/templar-cli/internal/adapters/driven/llm/openai"
	"github.com/templar-labs/templar-cli/internal/adapters/driven/storage/memory"
	"github.com/templar-labs/templar-cli/internal/adapters/driven/storage/sqlite"
	"github.com/templar-labs/templar-cli/internal/adapters/driven/templatedir"
	"github.com/templar-labs/templar-cli/internal/core/ports/driven"
	"github.com/templar-labs/templar-cli/internal/core/ports/driving"
	"github.com/templar-labs/templar-cli/internal/core/services"
	"github.com/templar-labs/templar-cli/internal/logger"
	"github.com/templar-labs/templar-cli/internal/readers"
	"github.com/templar-labs/templar-cli/internal/writers"
)

// version is set at build time via -ldflags.
var version = "dev"

// Injected services. Set by Execute; tests replace them with stubs.
var (
	documentService driving.DocumentService
	templateService driving.TemplateService
	outputValidator driving.OutputValidator
	templateStore   driven.TemplateStore
	configStore     *configfile.ConfigStore
	appConfig       configfile.Config
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "templar",
	Short: "Normalise documents against reusable templates",
	Long: `templar reshapes unstructured documents into template-driven output.

It validates input files, extracts their text, reconciles the content with a
{{placeholder}} template through an LLM, and persists the result. Generated
outputs can be independently graded against their sources.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
}

// Execute wires the adapters into the core services and runs the CLI.
func Execute(ctx context.Context) error {
	closeFn, err := wireServices(ctx)
	if err != nil {
		return fmt.Errorf("initialising services: %w", err)
	}
	defer closeFn()

	return rootCmd.ExecuteContext(ctx)
}

// wireServices builds the adapter stack from configuration and injects the
// services the commands use. Returns a cleanup function.
func wireServices(ctx context.Context) (func(), error) {
	cleanup := func() {}

	store, err := configfile.NewConfigStore("")
	if err != nil {
		return cleanup, fmt.Errorf("opening config store: %w", err)
	}
	configStore = store
	appConfig = configfile.LoadConfig(store)

	prompts, err := configfile.NewPromptStore(appConfig.PromptDir)
	if err != nil {
		return cleanup, fmt.Errorf("opening prompt store: %w", err)
	}

	var docs driven.DocumentStore
	switch appConfig.StorageBackend {
	case "sqlite":
		db, err := sqlite.NewStore(appConfig.StorageDir)
		if err != nil {
			return cleanup, fmt.Errorf("opening sqlite store: %w", err)
		}
		cleanup = func() {
			if err := db.Close(); err != nil {
				logger.Warn("closing sqlite store: %v", err)
			}
		}
		docs = db.DocumentStore()
		templateStore = db.TemplateStore()
	default:
		docs = memory.NewDocumentStore()
		templateStore = memory.NewTemplateStore()
	}

	if appConfig.TemplateDir != "" {
		loaded, err := templatedir.LoadDir(ctx, appConfig.TemplateDir, templateStore)
		if err != nil {
			logger.Warn("loading template directory: %v", err)
		} else if loaded > 0 {
			logger.Debug("loaded %d templates from %s", loaded, appConfig.TemplateDir)
		}
	}

	completion := buildCompletionService()

	reader := readers.Default()
	writer := writers.Default()
	normalizer := services.NewNormalizer(completion, prompts)

	documentService = services.NewDocumentService(docs, templateStore, normalizer, reader, writer, services.PipelineOptions{
		MaxFileSizeBytes:  appConfig.MaxFileSizeBytes(),
		AllowedExtensions: appConfig.AllowedExtensions,
		CheckContent:      appConfig.CheckContent,
		PersistFailures:   appConfig.PersistFailures,
	})
	templateService = services.NewTemplateService(templateStore)
	outputValidator = services.NewOutputValidator(completion, reader, prompts)

	return cleanup, nil
}

// buildCompletionService constructs the configured LLM client.
// Returns a nil interface when no provider can be built, which downgrades
// LLM-backed operations to their unavailable error path.
func buildCompletionService() driven.CompletionService {
	switch appConfig.LLMProvider {
	case "ollama":
		return ollama.NewCompletionService(ollama.Config{
			BaseURL: appConfig.LLMBaseURL,
			Model:   appConfig.LLMModel,
		})
	case "openai":
		if appConfig.LLMAPIKey == "" {
			logger.Warn("no API key configured; run 'templar config set-key' to enable normalisation")
			return nil
		}
		svc, err := openai.NewCompletionService(openai.Config{
			APIKey:            appConfig.LLMAPIKey,
			BaseURL:           appConfig.LLMBaseURL,
			Model:             appConfig.LLMModel,
			RequestsPerMinute: appConfig.LLMRequestsPerMinute,
		})
		if err != nil {
			logger.Warn("configuring openai client: %v", err)
			return nil
		}
		return svc
	default:
		logger.Warn("unknown llm provider %q", appConfig.LLMProvider)
		return nil
	}
}

// ExitOnError prints the error and exits. Used by main.
func ExitOnError(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "templar: %v\n", err)
		os.Exit(1)
	}
}
