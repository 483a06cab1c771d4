package file

import (
	"fmt"
	"strconv"
	"strings"
)

// Configuration keys. Nested TOML tables flatten to these dot-notation keys.
const (
	KeyMaxFileSizeMB     = "validation.max_file_size_mb"
	KeyAllowedExtensions = "validation.allowed_extensions"
	KeyCheckContent      = "validation.check_content"
	KeyPersistFailures   = "pipeline.persist_failures"
	KeyStorageBackend    = "storage.backend"
	KeyStorageDir        = "storage.dir"
	KeyTemplateDir       = "templates.dir"
	KeyPromptDir         = "prompts.dir"
	KeyLLMProvider       = "llm.provider"
	KeyLLMModel          = "llm.model"
	KeyLLMBaseURL        = "llm.base_url"
	KeyLLMAPIKey         = "llm.api_key"
	KeyLLMRequestsPerMin = "llm.requests_per_minute"
)

// Keys holding non-string values. User input arrives as strings and must
// be coerced before storing, otherwise the typed getters return zero.
var (
	intKeys = map[string]bool{
		KeyMaxFileSizeMB:     true,
		KeyLLMRequestsPerMin: true,
	}

	boolKeys = map[string]bool{
		KeyCheckContent:    true,
		KeyPersistFailures: true,
	}
)

// ParseValue coerces a raw string value to the type the key expects.
// Unknown keys are stored as strings.
func ParseValue(key, raw string) (any, error) {
	switch {
	case intKeys[key]:
		v, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("%s expects an integer, got %q", key, raw)
		}
		return v, nil
	case boolKeys[key]:
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("%s expects true or false, got %q", key, raw)
		}
		return v, nil
	case key == KeyAllowedExtensions:
		parts := strings.Split(raw, ",")
		exts := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				exts = append(exts, p)
			}
		}
		return exts, nil
	default:
		return raw, nil
	}
}

// Default values applied when keys are absent.
const (
	DefaultMaxFileSizeMB  = 10
	DefaultStorageBackend = "memory"
	DefaultLLMProvider    = "openai"
)

// Config is the typed view of the configuration file with defaults applied.
type Config struct {
	// MaxFileSizeMB caps input file size in megabytes.
	MaxFileSizeMB int

	// AllowedExtensions restricts inputs to the listed extensions.
	// Empty means any extension outside the deny list is accepted.
	AllowedExtensions []string

	// CheckContent enables binary-content sniffing on text inputs.
	CheckContent bool

	// PersistFailures stores failed documents for audit instead of
	// discarding them.
	PersistFailures bool

	// StorageBackend selects "memory" or "sqlite".
	StorageBackend string

	// StorageDir is the sqlite data directory. Empty uses the default.
	StorageDir string

	// TemplateDir is an optional directory of template files loaded into
	// the template store at startup.
	TemplateDir string

	// PromptDir overrides the prompt file directory. Empty uses the default.
	PromptDir string

	// LLMProvider selects "openai" or "ollama".
	LLMProvider string

	// LLMModel overrides the provider's default model.
	LLMModel string

	// LLMBaseURL overrides the provider's default endpoint.
	LLMBaseURL string

	// LLMAPIKey authenticates against the provider, where required.
	LLMAPIKey string

	// LLMRequestsPerMinute throttles outgoing completion calls.
	LLMRequestsPerMinute int
}

// LoadConfig builds the typed configuration from the store, applying
// defaults for absent keys.
func LoadConfig(store *ConfigStore) Config {
	cfg := Config{
		MaxFileSizeMB:        DefaultMaxFileSizeMB,
		CheckContent:         true,
		StorageBackend:       DefaultStorageBackend,
		LLMProvider:          DefaultLLMProvider,
		AllowedExtensions:    store.GetStringSlice(KeyAllowedExtensions),
		PersistFailures:      store.GetBool(KeyPersistFailures),
		StorageDir:           store.GetString(KeyStorageDir),
		TemplateDir:          store.GetString(KeyTemplateDir),
		PromptDir:            store.GetString(KeyPromptDir),
		LLMModel:             store.GetString(KeyLLMModel),
		LLMBaseURL:           store.GetString(KeyLLMBaseURL),
		LLMAPIKey:            store.GetString(KeyLLMAPIKey),
		LLMRequestsPerMinute: store.GetInt(KeyLLMRequestsPerMin),
	}

	if v := store.GetInt(KeyMaxFileSizeMB); v > 0 {
		cfg.MaxFileSizeMB = v
	}
	if _, ok := store.Get(KeyCheckContent); ok {
		cfg.CheckContent = store.GetBool(KeyCheckContent)
	}
	if v := store.GetString(KeyStorageBackend); v != "" {
		cfg.StorageBackend = v
	}
	if v := store.GetString(KeyLLMProvider); v != "" {
		cfg.LLMProvider = v
	}

	return cfg
}

// MaxFileSizeBytes converts the configured megabyte cap to bytes.
func (c Config) MaxFileSizeBytes() int64 {
	return int64(c.MaxFileSizeMB) * 1024 * 1024
}
