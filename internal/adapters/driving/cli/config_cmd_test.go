package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	configfile "github.com/templar-labs/templar-cli/internal/adapters/driven/config/file"
)

// setupTestConfigStore points configStore at a temp directory and returns
// a cleanup function restoring the previous wiring.
func setupTestConfigStore(t *testing.T) func() {
	t.Helper()

	prev := configStore

	store, err := configfile.NewConfigStore(t.TempDir())
	require.NoError(t, err)
	configStore = store

	return func() { configStore = prev }
}

func TestConfigSetCmd_CoercesIntKey(t *testing.T) {
	defer setupTestConfigStore(t)()

	out, err := execute("config", "set", configfile.KeyMaxFileSizeMB, "25")
	require.NoError(t, err)
	assert.Contains(t, out, "Set "+configfile.KeyMaxFileSizeMB)

	cfg := configfile.LoadConfig(configStore)
	assert.Equal(t, 25, cfg.MaxFileSizeMB)
}

func TestConfigSetCmd_CoercesBoolKey(t *testing.T) {
	defer setupTestConfigStore(t)()

	_, err := execute("config", "set", configfile.KeyPersistFailures, "true")
	require.NoError(t, err)

	cfg := configfile.LoadConfig(configStore)
	assert.True(t, cfg.PersistFailures)
}

func TestConfigSetCmd_RejectsBadTypedValue(t *testing.T) {
	defer setupTestConfigStore(t)()

	_, err := execute("config", "set", configfile.KeyMaxFileSizeMB, "big")
	require.Error(t, err)
	assert.ErrorContains(t, err, configfile.KeyMaxFileSizeMB)

	cfg := configfile.LoadConfig(configStore)
	assert.Equal(t, configfile.DefaultMaxFileSizeMB, cfg.MaxFileSizeMB)
}

func TestConfigSetCmd_StoresStringKey(t *testing.T) {
	defer setupTestConfigStore(t)()

	_, err := execute("config", "set", configfile.KeyLLMProvider, "ollama")
	require.NoError(t, err)

	cfg := configfile.LoadConfig(configStore)
	assert.Equal(t, "ollama", cfg.LLMProvider)
}
