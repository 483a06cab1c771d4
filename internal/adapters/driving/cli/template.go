package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/templar-labs/templar-cli/internal/adapters/driven/templatedir"
	"github.com/templar-labs/templar-cli/internal/core/domain"
)

var templateCmd = &cobra.Command{
	Use:   "template",
	Short: "Manage reusable templates",
	Long:  `List, view, add, or delete templates. Template names are unique, compared case-insensitively.`,
}

var templateListCmd = &cobra.Command{
	Use:   "list",
	Short: "List available templates",
	RunE:  runTemplateList,
}

var templateShowCmd = &cobra.Command{
	Use:   "show [name]",
	Short: "Print a template's content",
	Args:  cobra.ExactArgs(1),
	RunE:  runTemplateShow,
}

var templateAddCmd = &cobra.Command{
	Use:   "add [name] [file]",
	Short: "Add a template from a file",
	Args:  cobra.ExactArgs(2),
	RunE:  runTemplateAdd,
}

var templateDeleteCmd = &cobra.Command{
	Use:   "delete [name]",
	Short: "Delete a template",
	Args:  cobra.ExactArgs(1),
	RunE:  runTemplateDelete,
}

var templateWatchCmd = &cobra.Command{
	Use:   "watch [dir]",
	Short: "Sync a directory of template files into the store",
	Long: `Load every .txt and .md file from the directory as a template, then keep
watching: file creates and writes upsert the matching template, removes and
renames delete it. Runs until interrupted.`,
	Args: cobra.ExactArgs(1),
	RunE: runTemplateWatch,
}

var (
	templateDescription string
	templateType        string
)

func init() {
	templateAddCmd.Flags().StringVarP(&templateDescription, "description", "d", "", "Template description")
	templateAddCmd.Flags().StringVarP(&templateType, "type", "T", string(domain.TemplateGeneral), "Template type (legal, medical, business, technical, general)")

	templateCmd.AddCommand(templateListCmd)
	templateCmd.AddCommand(templateShowCmd)
	templateCmd.AddCommand(templateAddCmd)
	templateCmd.AddCommand(templateDeleteCmd)
	templateCmd.AddCommand(templateWatchCmd)
	rootCmd.AddCommand(templateCmd)
}

func runTemplateList(cmd *cobra.Command, _ []string) error {
	if templateService == nil {
		return errors.New("template service not configured")
	}

	templates, err := templateService.List(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to list templates: %w", err)
	}

	if len(templates) == 0 {
		cmd.Println("No templates available.")
		return nil
	}

	cmd.Println("Templates:")
	cmd.Println()
	for i := range templates {
		placeholders := domain.ExtractPlaceholders(templates[i].Content)
		cmd.Printf("  %s (%s)\n", templates[i].Name, templates[i].Type)
		if templates[i].Description != "" {
			cmd.Printf("    %s\n", templates[i].Description)
		}
		cmd.Printf("    Placeholders: %d\n", len(placeholders))
		cmd.Println()
	}

	cmd.Printf("Total: %d templates\n", len(templates))
	return nil
}

func runTemplateShow(cmd *cobra.Command, args []string) error {
	if templateService == nil {
		return errors.New("template service not configured")
	}

	tpl, err := templateService.GetByName(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("failed to get template: %w", err)
	}

	cmd.Printf("Template: %s (%s)\n", tpl.Name, tpl.Type)
	if tpl.Description != "" {
		cmd.Printf("Description: %s\n", tpl.Description)
	}
	cmd.Println()
	cmd.Println(tpl.Content)
	return nil
}

func runTemplateAdd(cmd *cobra.Command, args []string) error {
	if templateService == nil {
		return errors.New("template service not configured")
	}

	name := args[0]
	data, err := os.ReadFile(args[1])
	if err != nil {
		return fmt.Errorf("failed to read template file: %w", err)
	}

	tpl, err := templateService.Add(cmd.Context(), name, string(data), templateDescription, domain.TemplateType(templateType))
	if err != nil {
		return fmt.Errorf("failed to add template: %w", err)
	}

	cmd.Printf("Template %q added (%d placeholders).\n", tpl.Name, len(domain.ExtractPlaceholders(tpl.Content)))
	return nil
}

func runTemplateDelete(cmd *cobra.Command, args []string) error {
	if templateService == nil {
		return errors.New("template service not configured")
	}

	tpl, err := templateService.GetByName(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("failed to get template: %w", err)
	}

	if err := templateService.Delete(cmd.Context(), tpl.ID); err != nil {
		return fmt.Errorf("failed to delete template: %w", err)
	}

	cmd.Printf("Template %q deleted.\n", tpl.Name)
	return nil
}

func runTemplateWatch(cmd *cobra.Command, args []string) error {
	if templateStore == nil {
		return errors.New("template store not configured")
	}

	dir := args[0]
	ctx := cmd.Context()

	loaded, err := templatedir.LoadDir(ctx, dir, templateStore)
	if err != nil {
		return fmt.Errorf("failed to load template directory: %w", err)
	}
	cmd.Printf("Loaded %d templates from %s, watching for changes...\n", loaded, dir)

	watcher, err := templatedir.NewWatcher(dir, templateStore)
	if err != nil {
		return fmt.Errorf("failed to watch template directory: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("template watcher stopped: %w", err)
	}
	return nil
}
