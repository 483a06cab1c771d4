package cli

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	configfile "github.com/templar-labs/templar-cli/internal/adapters/driven/config/file"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long:  `View and change templar configuration. Settings persist in the config file under your home directory.`,
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
	Long: `Set a configuration value by its dot-notation key, e.g.

  templar config set llm.provider ollama
  templar config set storage.backend sqlite
  templar config set validation.max_file_size_mb 25`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

var configSetKeyCmd = &cobra.Command{
	Use:   "set-key",
	Short: "Set the LLM API key",
	Long:  `Prompt for the LLM API key without echoing it, and store it in the config file.`,
	RunE:  runConfigSetKey,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configSetKeyCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}

	cfg := configfile.LoadConfig(configStore)

	cmd.Println("Current Configuration")
	cmd.Println("=====================")
	cmd.Println()

	cmd.Println("[Validation]")
	cmd.Printf("  Max file size:      %d MB\n", cfg.MaxFileSizeMB)
	if len(cfg.AllowedExtensions) > 0 {
		cmd.Printf("  Allowed extensions: %s\n", strings.Join(cfg.AllowedExtensions, ", "))
	} else {
		cmd.Printf("  Allowed extensions: (any non-dangerous)\n")
	}
	cmd.Printf("  Content checking:   %t\n", cfg.CheckContent)
	cmd.Println()

	cmd.Println("[Pipeline]")
	cmd.Printf("  Persist failures:   %t\n", cfg.PersistFailures)
	cmd.Println()

	cmd.Println("[Storage]")
	cmd.Printf("  Backend:            %s\n", cfg.StorageBackend)
	if cfg.StorageDir != "" {
		cmd.Printf("  Data directory:     %s\n", cfg.StorageDir)
	}
	if cfg.TemplateDir != "" {
		cmd.Printf("  Template directory: %s\n", cfg.TemplateDir)
	}
	cmd.Println()

	cmd.Println("[LLM]")
	cmd.Printf("  Provider:           %s\n", cfg.LLMProvider)
	if cfg.LLMModel != "" {
		cmd.Printf("  Model:              %s\n", cfg.LLMModel)
	}
	if cfg.LLMBaseURL != "" {
		cmd.Printf("  Base URL:           %s\n", cfg.LLMBaseURL)
	}
	if cfg.LLMAPIKey != "" {
		cmd.Printf("  API Key:            %s\n", maskAPIKey(cfg.LLMAPIKey))
	} else {
		cmd.Printf("  API Key:            (not set)\n")
	}
	cmd.Println()

	cmd.Printf("Config file: %s\n", configStore.Path())
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}

	key := args[0]
	value, err := configfile.ParseValue(key, args[1])
	if err != nil {
		return err
	}

	if err := configStore.Set(key, value); err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}

	cmd.Printf("Set %s.\n", key)
	return nil
}

func runConfigSetKey(cmd *cobra.Command, _ []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}

	cmd.Print("API key: ")
	key := readPassword()
	cmd.Println()

	if key == "" {
		return errors.New("no API key entered")
	}

	if err := configStore.Set(configfile.KeyLLMAPIKey, key); err != nil {
		return fmt.Errorf("failed to store API key: %w", err)
	}

	cmd.Printf("API key stored (%s).\n", maskAPIKey(key))
	return nil
}

//nolint:errcheck // CLI helper, error ignored for UX
func readPassword() string {
	// Try to read password without echo
	if term.IsTerminal(int(os.Stdin.Fd())) {
		password, err := term.ReadPassword(int(os.Stdin.Fd()))
		if err == nil {
			return string(password)
		}
	}
	// Fallback to regular input
	reader := bufio.NewReader(os.Stdin)
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

func maskAPIKey(key string) string {
	if len(key) <= 8 {
		return "****"
	}
	return key[:4] + "..." + key[len(key)-4:]
}
