package templatedir

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/templar-labs/templar-cli/internal/adapters/driven/storage/memory"
)

func TestLoadDir_LoadsTemplateFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "nda.txt"), []byte("Between {{party_a}} and {{party_b}}"), 0600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "memo.md"), []byte("# Memo\n{{body}}"), 0600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.json"), []byte(`{"ignored": true}`), 0600))

	store := memory.NewEmptyTemplateStore()
	ctx := context.Background()

	loaded, err := LoadDir(ctx, dir, store)
	require.NoError(t, err)
	assert.Equal(t, 2, loaded)

	tpl, err := store.GetByName(ctx, "nda")
	require.NoError(t, err)
	assert.Contains(t, tpl.Content, "{{party_a}}")

	_, err = store.GetByName(ctx, "notes")
	assert.Error(t, err)
}

func TestLoadDir_UpsertsExistingTemplate(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nda.txt")
	require.NoError(t, os.WriteFile(path, []byte("v1 {{a}}"), 0600))

	store := memory.NewEmptyTemplateStore()
	ctx := context.Background()

	_, err := LoadDir(ctx, dir, store)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(path, []byte("v2 {{a}} {{b}}"), 0600))
	_, err = LoadDir(ctx, dir, store)
	require.NoError(t, err)

	tpl, err := store.GetByName(ctx, "nda")
	require.NoError(t, err)
	assert.Equal(t, "v2 {{a}} {{b}}", tpl.Content)

	all, err := store.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestLoadDir_SkipsEmptyFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "empty.txt"), []byte("  \n"), 0600))

	store := memory.NewEmptyTemplateStore()
	loaded, err := LoadDir(context.Background(), dir, store)
	require.NoError(t, err)
	assert.Zero(t, loaded)
}

func TestLoadDir_MissingDirectoryIsNotAnError(t *testing.T) {
	store := memory.NewEmptyTemplateStore()
	loaded, err := LoadDir(context.Background(), filepath.Join(t.TempDir(), "absent"), store)
	require.NoError(t, err)
	assert.Zero(t, loaded)
}
