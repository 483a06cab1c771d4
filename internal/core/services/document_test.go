package services

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/templar-labs/templar-cli/internal/adapters/driven/storage/memory"
	"github.com/templar-labs/templar-cli/internal/core/domain"
	"github.com/templar-labs/templar-cli/internal/core/ports/driving"
)

// stubReader serves text content by path from a map. Paths not present in
// the map but existing on disk are read directly, so tests can mix real
// temp files with canned content.
type stubReader struct {
	files map[string]string
	err   error
}

func (r *stubReader) IsSupported(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".txt" || ext == ".md"
}

func (r *stubReader) Read(_ context.Context, path string) (string, error) {
	if r.err != nil {
		return "", r.err
	}
	if content, ok := r.files[path]; ok {
		return content, nil
	}
	return "", domain.ErrNotFound
}

// stubWriter records saves.
type stubWriter struct {
	saved map[string]string
	kinds map[string]domain.OutputKind
	err   error
}

func newStubWriter() *stubWriter {
	return &stubWriter{
		saved: make(map[string]string),
		kinds: make(map[string]domain.OutputKind),
	}
}

func (w *stubWriter) SupportsKind(domain.OutputKind) bool { return true }

func (w *stubWriter) Save(_ context.Context, content, path string, kind domain.OutputKind) error {
	if w.err != nil {
		return w.err
	}
	w.saved[path] = content
	w.kinds[path] = kind
	return nil
}

// pipelineFixture wires a document service against a real file on disk,
// memory stores and a deterministic completion stub.
type pipelineFixture struct {
	svc       *DocumentService
	docs      *memory.DocumentStore
	templates *memory.TemplateStore
	reader    *stubReader
	writer    *stubWriter
}

func newPipelineFixture(t *testing.T, completion *stubCompletion, opts PipelineOptions) (*pipelineFixture, string) {
	t.Helper()

	docPath := writeTempFile(t, "letter.txt", []byte("Dear Sir, payment due $500"))

	reader := &stubReader{files: map[string]string{
		docPath: "Dear Sir, payment due $500",
	}}
	writer := newStubWriter()
	docs := memory.NewDocumentStore()
	templates := memory.NewTemplateStore()

	if opts.MaxFileSizeBytes == 0 {
		opts.MaxFileSizeBytes = 1024 * 1024
	}

	svc := NewDocumentService(docs, templates, NewNormalizer(completion, nil), reader, writer, opts)
	return &pipelineFixture{
		svc:       svc,
		docs:      docs,
		templates: templates,
		reader:    reader,
		writer:    writer,
	}, docPath
}

func TestDocumentService_Normalize(t *testing.T) {
	completion := respondWith("Amount: $500\nParty: Sir")
	f, docPath := newPipelineFixture(t, completion, PipelineOptions{})
	ctx := context.Background()

	tpl := domain.NewTemplate("payment-notice", "Amount: {{amount}}\nParty: {{party}}", "", domain.TemplateBusiness)
	require.NoError(t, f.templates.Add(ctx, tpl))

	info, err := f.svc.Normalize(ctx, driving.NormalizeRequest{
		DocumentPath: docPath,
		TemplateName: "payment-notice",
	})
	require.NoError(t, err)

	assert.Equal(t, "letter.txt", info.FileName)
	assert.Equal(t, "Dear Sir, payment due $500", info.OriginalContent)
	assert.Equal(t, "Amount: $500\nParty: Sir", info.NormalizedContent)
	assert.Equal(t, string(domain.StatusNormalized), info.Status)
	require.NotNil(t, info.NormalizedAt)

	// Persisted even without an output path.
	saved, err := f.docs.Get(ctx, info.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusNormalized, saved.Status)
}

func TestDocumentService_Normalize_TemplateNameIsCaseInsensitive(t *testing.T) {
	completion := respondWith("filled")
	f, docPath := newPipelineFixture(t, completion, PipelineOptions{})
	ctx := context.Background()

	tpl := domain.NewTemplate("Legal-Contract", "Party: {{party}}", "", domain.TemplateLegal)
	require.NoError(t, f.templates.Add(ctx, tpl))

	_, err := f.svc.Normalize(ctx, driving.NormalizeRequest{
		DocumentPath: docPath,
		TemplateName: "legal-contract",
	})
	require.NoError(t, err)
}

func TestDocumentService_Normalize_TemplateFileBeatsStore(t *testing.T) {
	completion := respondWith("filled")
	f, docPath := newPipelineFixture(t, completion, PipelineOptions{})
	ctx := context.Background()

	tplPath := writeTempFile(t, "adhoc.txt", []byte("File: {{field}}"))
	f.reader.files[tplPath] = "File: {{field}}"

	_, err := f.svc.Normalize(ctx, driving.NormalizeRequest{
		DocumentPath: docPath,
		TemplateName: tplPath,
	})
	require.NoError(t, err)

	// The file content, not a stored template, reached the prompt.
	assert.Contains(t, completion.lastPrompt, "File: [[field]]")
}

func TestDocumentService_Normalize_TemplateNotFound(t *testing.T) {
	completion := respondWith("never called")
	f, docPath := newPipelineFixture(t, completion, PipelineOptions{})
	ctx := context.Background()

	_, err := f.svc.Normalize(ctx, driving.NormalizeRequest{
		DocumentPath: docPath,
		TemplateName: "no-such-template",
	})

	var notFound *domain.TemplateNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "no-such-template", notFound.Name)

	// Nothing persisted.
	docs, listErr := f.docs.List(ctx)
	require.NoError(t, listErr)
	assert.Empty(t, docs)
}

func TestDocumentService_Normalize_ValidationFailure(t *testing.T) {
	completion := respondWith("never called")
	f, _ := newPipelineFixture(t, completion, PipelineOptions{})

	_, err := f.svc.Normalize(context.Background(), driving.NormalizeRequest{
		DocumentPath: filepath.Join(t.TempDir(), "ghost.txt"),
		TemplateName: "invoice",
	})

	var vErr *domain.ValidationFailedError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, domain.CheckNotFound, vErr.Check)
}

func TestDocumentService_Normalize_UnsupportedFormat(t *testing.T) {
	completion := respondWith("never called")
	f, _ := newPipelineFixture(t, completion, PipelineOptions{})

	// Valid on disk but the reader does not support .csv.
	path := writeTempFile(t, "data.csv", []byte("a,b"))

	_, err := f.svc.Normalize(context.Background(), driving.NormalizeRequest{
		DocumentPath: path,
		TemplateName: "invoice",
	})

	var fmtErr *domain.UnsupportedFormatError
	require.ErrorAs(t, err, &fmtErr)
	assert.Equal(t, ".csv", fmtErr.Extension)
}

func TestDocumentService_Normalize_WritesOutput(t *testing.T) {
	completion := respondWith("Amount: $500")
	f, docPath := newPipelineFixture(t, completion, PipelineOptions{})
	ctx := context.Background()

	_, err := f.svc.Normalize(ctx, driving.NormalizeRequest{
		DocumentPath: docPath,
		TemplateName: "invoice",
		OutputPath:   "out/result.pdf",
	})
	require.NoError(t, err)

	assert.Equal(t, "Amount: $500", f.writer.saved["out/result.pdf"])
	assert.Equal(t, domain.OutputPDF, f.writer.kinds["out/result.pdf"])
}

func TestDocumentService_Normalize_WriterFailureWrapsProcessing(t *testing.T) {
	completion := respondWith("filled")
	f, docPath := newPipelineFixture(t, completion, PipelineOptions{})
	f.writer.err = errors.New("disk full")

	_, err := f.svc.Normalize(context.Background(), driving.NormalizeRequest{
		DocumentPath: docPath,
		TemplateName: "invoice",
		OutputPath:   "out.pdf",
	})

	var pErr *domain.ProcessingError
	require.ErrorAs(t, err, &pErr)
	assert.Equal(t, "write", pErr.Stage)
}

func TestDocumentService_Normalize_ReconciliationFailure_NoPersist(t *testing.T) {
	completion := &stubCompletion{respond: func(string) (string, error) {
		return "", errors.New("model overloaded")
	}}
	f, docPath := newPipelineFixture(t, completion, PipelineOptions{})
	ctx := context.Background()

	_, err := f.svc.Normalize(ctx, driving.NormalizeRequest{
		DocumentPath: docPath,
		TemplateName: "invoice",
	})

	var normErr *domain.NormalizationError
	require.ErrorAs(t, err, &normErr)

	docs, listErr := f.docs.List(ctx)
	require.NoError(t, listErr)
	assert.Empty(t, docs)
}

func TestDocumentService_Normalize_ReconciliationFailure_PersistFailures(t *testing.T) {
	completion := &stubCompletion{respond: func(string) (string, error) {
		return "", errors.New("model overloaded")
	}}
	f, docPath := newPipelineFixture(t, completion, PipelineOptions{PersistFailures: true})
	ctx := context.Background()

	_, err := f.svc.Normalize(ctx, driving.NormalizeRequest{
		DocumentPath: docPath,
		TemplateName: "invoice",
	})
	require.Error(t, err)

	docs, listErr := f.docs.List(ctx)
	require.NoError(t, listErr)
	require.Len(t, docs, 1)
	assert.Equal(t, domain.StatusFailed, docs[0].Status)
	assert.Empty(t, docs[0].NormalizedContent)
}

func TestDocumentService_Normalize_CancelledContextDoesNotPersist(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	// Cancel while the completion call is in flight.
	completion := &stubCompletion{respond: func(string) (string, error) {
		cancel()
		return "filled", nil
	}}
	f, docPath := newPipelineFixture(t, completion, PipelineOptions{})

	_, err := f.svc.Normalize(ctx, driving.NormalizeRequest{
		DocumentPath: docPath,
		TemplateName: "invoice",
	})
	require.Error(t, err)

	docs, listErr := f.docs.List(context.Background())
	require.NoError(t, listErr)
	assert.Empty(t, docs)
}

func TestDocumentService_GetAndList(t *testing.T) {
	completion := respondWith("filled")
	f, docPath := newPipelineFixture(t, completion, PipelineOptions{})
	ctx := context.Background()

	info, err := f.svc.Normalize(ctx, driving.NormalizeRequest{
		DocumentPath: docPath,
		TemplateName: "invoice",
	})
	require.NoError(t, err)

	got, err := f.svc.Get(ctx, info.ID)
	require.NoError(t, err)
	assert.Equal(t, info.ID, got.ID)

	_, err = f.svc.Get(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	list, err := f.svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, info.ID, list[0].ID)
}

func TestDocumentService_List_NewestFirst(t *testing.T) {
	f, _ := newPipelineFixture(t, respondWith("filled"), PipelineOptions{})
	ctx := context.Background()

	older := domain.NewDocument("old.txt", "old")
	older.CreatedAt = older.CreatedAt.Add(-time.Hour)
	require.NoError(t, f.docs.Save(ctx, older))

	newer := domain.NewDocument("new.txt", "new")
	require.NoError(t, f.docs.Save(ctx, newer))

	list, err := f.svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "new.txt", list[0].FileName)
	assert.Equal(t, "old.txt", list[1].FileName)
}

func TestDocumentService_Summarize(t *testing.T) {
	completion := respondWith("- Document type: letter")
	f, docPath := newPipelineFixture(t, completion, PipelineOptions{})
	ctx := context.Background()

	info, err := f.svc.Normalize(ctx, driving.NormalizeRequest{
		DocumentPath: docPath,
		TemplateName: "invoice",
	})
	require.NoError(t, err)

	summary, err := f.svc.Summarize(ctx, info.ID)
	require.NoError(t, err)
	assert.Equal(t, "- Document type: letter", summary)

	_, err = f.svc.Summarize(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
