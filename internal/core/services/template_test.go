package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/templar-labs/templar-cli/internal/adapters/driven/storage/memory"
	"github.com/templar-labs/templar-cli/internal/core/domain"
)

func TestTemplateService_Add(t *testing.T) {
	svc := NewTemplateService(memory.NewEmptyTemplateStore())
	ctx := context.Background()

	tpl, err := svc.Add(ctx, "report", "Title: {{title}}", "Report template", domain.TemplateTechnical)
	require.NoError(t, err)
	assert.NotEmpty(t, tpl.ID)

	got, err := svc.GetByName(ctx, "REPORT")
	require.NoError(t, err)
	assert.Equal(t, tpl.ID, got.ID)
}

func TestTemplateService_Add_DuplicateNameRejected(t *testing.T) {
	svc := NewTemplateService(memory.NewEmptyTemplateStore())
	ctx := context.Background()

	_, err := svc.Add(ctx, "report", "{{a}}", "", domain.TemplateGeneral)
	require.NoError(t, err)

	// Case-insensitive collision.
	_, err = svc.Add(ctx, "Report", "{{b}}", "", domain.TemplateGeneral)
	assert.ErrorIs(t, err, domain.ErrAlreadyExists)
}

func TestTemplateService_Add_RejectsBlankInput(t *testing.T) {
	svc := NewTemplateService(memory.NewEmptyTemplateStore())
	ctx := context.Background()

	_, err := svc.Add(ctx, "  ", "{{a}}", "", domain.TemplateGeneral)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = svc.Add(ctx, "name", "", "", domain.TemplateGeneral)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestTemplateService_Update(t *testing.T) {
	svc := NewTemplateService(memory.NewEmptyTemplateStore())
	ctx := context.Background()

	tpl, err := svc.Add(ctx, "report", "{{a}}", "v1", domain.TemplateGeneral)
	require.NoError(t, err)

	updated, err := svc.Update(ctx, tpl.ID, "report", "{{a}} {{b}}", "v2")
	require.NoError(t, err)
	assert.Equal(t, "{{a}} {{b}}", updated.Content)
	require.NotNil(t, updated.UpdatedAt)
}

func TestTemplateService_Update_RenameCollision(t *testing.T) {
	svc := NewTemplateService(memory.NewEmptyTemplateStore())
	ctx := context.Background()

	_, err := svc.Add(ctx, "first", "{{a}}", "", domain.TemplateGeneral)
	require.NoError(t, err)
	second, err := svc.Add(ctx, "second", "{{b}}", "", domain.TemplateGeneral)
	require.NoError(t, err)

	_, err = svc.Update(ctx, second.ID, "FIRST", "{{b}}", "")
	assert.ErrorIs(t, err, domain.ErrAlreadyExists)
}

func TestTemplateService_Delete(t *testing.T) {
	svc := NewTemplateService(memory.NewEmptyTemplateStore())
	ctx := context.Background()

	tpl, err := svc.Add(ctx, "temp", "{{a}}", "", domain.TemplateGeneral)
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, tpl.ID))
	assert.ErrorIs(t, svc.Delete(ctx, tpl.ID), domain.ErrNotFound)
}
