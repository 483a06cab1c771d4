package file

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/templar-labs/templar-cli/internal/core/ports/driven"
)

// Ensure PromptStore implements the interface.
var _ driven.PromptStore = (*PromptStore)(nil)

// PromptStore loads LLM prompts from user-editable files on disk.
// Prompts are loaded from a configurable directory with fallback to embedded defaults.
//
// The store uses lazy initialisation - files are only created when first accessed,
// not in the constructor. This makes testing easier and avoids unexpected I/O.
type PromptStore struct {
	mu        sync.RWMutex
	promptDir string
	cache     map[string]string
	initOnce  sync.Once
	initErr   error
}

// defaultPrompts contains embedded default prompts.
// These are used when user files don't exist and as the initial content for new files.
//
//nolint:lll // Prompt content is intentionally long and should not be wrapped.
var defaultPrompts = map[string]string{
	driven.PromptNormalizeDocument: `You are a document normalization expert. Your task is to transform the given document content to match the structure and format of the provided template.

IMPORTANT: The template contains placeholders in the format [[placeholder_name]]. You must:
1. Replace these placeholders with actual information extracted from the document
2. If information is not available in the document, use [TO BE PROVIDED] instead
3. When outputting the final document, convert [[placeholder]] back to the original format

TEMPLATE STRUCTURE:
%s

ORIGINAL DOCUMENT CONTENT:
%s

INSTRUCTIONS:
1. Analyze the template structure carefully
2. Extract relevant information from the original document
3. Fill in all [[placeholders]] with appropriate information from the document
4. Maintain the exact structure and formatting of the template
5. Ensure all sections from the template are present
6. Keep the language professional and consistent
7. Output ONLY the filled template, no explanations

Please provide the normalized document following the template structure exactly.`,

	driven.PromptValidateOutput: `You are a document validation expert. Your task is to validate if a generated document correctly follows a template and contains all the information from the original document.

IMPORTANT: Templates use [[placeholder]] format (shown as double brackets to avoid conflicts). These are NOT function calls.

ORIGINAL DOCUMENT (unformatted):
%s

TEMPLATE USED:
%s

GENERATED DOCUMENT:
%s

Please analyze and provide a JSON response with the following structure:
{
    "isValid": true/false,
    "confidenceScore": 0.0-1.0,
    "summary": "Brief summary of validation results",
    "issues": [
        {
            "type": "Missing|Incorrect|Formatting|Other",
            "field": "field name or section",
            "description": "what is wrong",
            "severity": "Low|Medium|High"
        }
    ],
    "extractedFields": {
        "fieldName": "value extracted from generated document"
    },
    "recommendation": "What should be improved"
}

Consider:
1. All information from the original document should be present
2. The template structure should be followed
3. Placeholders should be properly replaced
4. Formatting should be professional
5. No information should be invented or missing`,

	driven.PromptSummarizeDocument: `Extract and summarize the key information from the following document:

%s

Provide a structured summary including:
- Document type
- Main topic/purpose
- Key sections
- Important dates (if any)
- Parties involved (if applicable)
- Main points or requirements`,
}

// NewPromptStore creates a new file-based prompt store.
// If promptDir is empty, defaults to ~/.templar/prompts/.
//
// The constructor does not perform any I/O - directory creation and
// file writes happen lazily on first Load() call.
func NewPromptStore(promptDir string) (*PromptStore, error) {
	if promptDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("get home directory: %w", err)
		}
		promptDir = filepath.Join(home, ".templar", "prompts")
	}

	return &PromptStore{
		promptDir: promptDir,
		cache:     make(map[string]string),
	}, nil
}

// Load returns the prompt template for the given name.
// On first call, initialises the prompt directory and creates default files.
// Returns cached value if available, otherwise loads from file.
// Falls back to embedded default if file doesn't exist.
func (s *PromptStore) Load(name string) (string, error) {
	// Ensure directory and defaults exist (lazy init)
	s.initOnce.Do(s.initialise)
	if s.initErr != nil {
		// Fall back to embedded defaults if init failed
		if prompt, ok := defaultPrompts[name]; ok {
			return prompt, nil
		}
		return "", fmt.Errorf("prompt store init failed: %w", s.initErr)
	}

	// Check cache first (read lock)
	s.mu.RLock()
	if prompt, ok := s.cache[name]; ok {
		s.mu.RUnlock()
		return prompt, nil
	}
	s.mu.RUnlock()

	// Load from file (no lock held during I/O)
	prompt, err := s.loadFromFile(name)
	if err != nil {
		// Fall back to embedded default
		if defaultPrompt, ok := defaultPrompts[name]; ok {
			return defaultPrompt, nil
		}
		return "", fmt.Errorf("load prompt %q: %w", name, err)
	}

	// Cache the result (write lock)
	// Use double-check pattern to avoid overwriting concurrent loads
	s.mu.Lock()
	if _, ok := s.cache[name]; !ok {
		s.cache[name] = prompt
	} else {
		// Another goroutine loaded it first, use their value
		prompt = s.cache[name]
	}
	s.mu.Unlock()

	return prompt, nil
}

// Reload clears the prompt cache, forcing fresh loads from disk.
func (s *PromptStore) Reload() {
	s.mu.Lock()
	s.cache = make(map[string]string)
	s.mu.Unlock()
}

// Dir returns the prompt directory path.
func (s *PromptStore) Dir() string {
	return s.promptDir
}

// initialise creates the prompt directory and default files.
// Called once via sync.Once on first Load().
func (s *PromptStore) initialise() {
	// Create directory
	if err := os.MkdirAll(s.promptDir, 0700); err != nil {
		s.initErr = fmt.Errorf("create prompt directory: %w", err)
		return
	}

	// Create default prompt files (only if they don't exist)
	for name, content := range defaultPrompts {
		path := filepath.Join(s.promptDir, name+".txt")
		if _, err := os.Stat(path); os.IsNotExist(err) {
			if err := os.WriteFile(path, []byte(content), 0600); err != nil {
				s.initErr = fmt.Errorf("create default prompt %q: %w", name, err)
				return
			}
		}
	}

	// Create README
	if err := s.createReadme(); err != nil {
		s.initErr = err
	}
}

// loadFromFile reads a prompt from disk.
func (s *PromptStore) loadFromFile(name string) (string, error) {
	path := filepath.Join(s.promptDir, name+".txt")
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

// createReadme writes a README file explaining the prompts directory.
func (s *PromptStore) createReadme() error {
	path := filepath.Join(s.promptDir, "README.md")
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		return nil // Already exists or stat error (ignore)
	}

	content := `# Templar Prompts

This directory contains customisable prompts used by templar's LLM features.

## Files

- ` + "`normalize_document.txt`" + ` - Reshapes document content into a template
- ` + "`validate_output.txt`" + ` - Grades a generated document against its sources
- ` + "`summarize_document.txt`" + ` - Extracts key information from a document

## Customisation

Edit any file to customise LLM behaviour. Changes take effect on the next
command.

## Format Placeholders

Prompts use Go fmt placeholders:
- ` + "`%s`" + ` - String (e.g., the template or document content)

Ensure customised prompts maintain placeholders in the correct positions.
`
	return os.WriteFile(path, []byte(content), 0600)
}
