package services

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/templar-labs/templar-cli/internal/core/domain"
	"github.com/templar-labs/templar-cli/internal/core/ports/driven"
	"github.com/templar-labs/templar-cli/internal/core/ports/driving"
	"github.com/templar-labs/templar-cli/internal/logger"
)

// Ensure DocumentService implements the interface.
var _ driving.DocumentService = (*DocumentService)(nil)

// PipelineOptions configures the normalisation pipeline.
type PipelineOptions struct {
	// MaxFileSizeBytes caps input file size during pre-flight checks.
	MaxFileSizeBytes int64

	// AllowedExtensions restricts input extensions when non-empty.
	AllowedExtensions []string

	// CheckContent enables the binary-content sniff on text inputs.
	CheckContent bool

	// PersistFailures stores a failed-status document record when
	// reconciliation fails, for audit trails.
	PersistFailures bool
}

// DocumentService orchestrates the normalisation pipeline:
// validate, read, resolve template, reconcile, write, persist.
type DocumentService struct {
	docs       driven.DocumentStore
	templates  driven.TemplateStore
	normalizer driving.NormalizationService
	reader     driven.DocumentReader
	writer     driven.DocumentWriter
	validator  *FileValidator
	opts       PipelineOptions
}

// NewDocumentService creates a new document service.
func NewDocumentService(
	docs driven.DocumentStore,
	templates driven.TemplateStore,
	normalizer driving.NormalizationService,
	reader driven.DocumentReader,
	writer driven.DocumentWriter,
	opts PipelineOptions,
) *DocumentService {
	return &DocumentService{
		docs:       docs,
		templates:  templates,
		normalizer: normalizer,
		reader:     reader,
		writer:     writer,
		validator:  NewFileValidator(),
		opts:       opts,
	}
}

// Normalize runs the full pipeline for one request.
// Pre-flight warnings are logged but non-fatal; any check failure, an
// unsupported format, or a missing template aborts before a document record
// is created.
func (s *DocumentService) Normalize(ctx context.Context, req driving.NormalizeRequest) (*driving.DocumentInfo, error) {
	logger.Section("normalize")
	logger.Info("normalizing %s with template %s", req.DocumentPath, req.TemplateName)

	summary := s.validator.ValidateDocument(req.DocumentPath, ValidationOptions{
		MaxFileSizeBytes:  s.opts.MaxFileSizeBytes,
		AllowedExtensions: s.opts.AllowedExtensions,
		CheckContent:      s.opts.CheckContent,
	})
	if !summary.IsValid {
		return nil, &domain.ValidationFailedError{Check: summary.Code, Reason: summary.Reason}
	}
	for _, w := range summary.Warnings {
		logger.Warn("validation warning for %s: %s", req.DocumentPath, w)
	}

	if !s.reader.IsSupported(req.DocumentPath) {
		return nil, &domain.UnsupportedFormatError{Extension: filepath.Ext(req.DocumentPath)}
	}

	content, err := s.reader.Read(ctx, req.DocumentPath)
	if err != nil {
		return nil, &domain.ProcessingError{Stage: "read", Err: err}
	}
	logger.Debug("read %d characters from %s", len(content), req.DocumentPath)

	templateContent, err := s.resolveTemplate(ctx, req.TemplateName)
	if err != nil {
		return nil, err
	}

	doc := domain.NewDocument(filepath.Base(req.DocumentPath), content)

	normalized, warnings, err := s.normalizer.NormalizeWithTemplate(ctx, content, templateContent)
	if err != nil {
		if s.opts.PersistFailures {
			if markErr := doc.MarkFailed(); markErr == nil {
				if saveErr := s.docs.Save(ctx, doc); saveErr != nil {
					logger.Warn("could not persist failed document record: %v", saveErr)
				}
			}
		}
		return nil, err
	}
	for _, w := range warnings {
		logger.Warn("reconciliation warning: %s", w)
	}

	if err := doc.SetNormalizedContent(normalized); err != nil {
		return nil, &domain.ProcessingError{Stage: "reconcile", Err: err}
	}

	if req.OutputPath != "" {
		kind := domain.OutputKindForPath(req.OutputPath)
		logger.Info("saving output to %s as %s", req.OutputPath, kind)
		if err := s.writer.Save(ctx, normalized, req.OutputPath, kind); err != nil {
			return nil, &domain.ProcessingError{Stage: "write", Err: err}
		}
	}

	// A cancellation that arrived mid-pipeline must not leave a
	// partially-normalised record behind.
	if err := ctx.Err(); err != nil {
		return nil, &domain.ProcessingError{Stage: "persist", Err: err}
	}
	if err := s.docs.Save(ctx, doc); err != nil {
		return nil, &domain.ProcessingError{Stage: "persist", Err: err}
	}

	logger.Info("document %s normalized", doc.ID)
	info := toInfo(doc)
	return &info, nil
}

// resolveTemplate treats an existing file path as template content first,
// then falls back to a stored template by case-insensitive name.
func (s *DocumentService) resolveTemplate(ctx context.Context, name string) (string, error) {
	if info, err := os.Stat(name); err == nil && !info.IsDir() {
		logger.Debug("reading template from file: %s", name)
		content, err := s.reader.Read(ctx, name)
		if err != nil {
			return "", &domain.ProcessingError{Stage: "template", Err: err}
		}
		return content, nil
	}

	tpl, err := s.templates.GetByName(ctx, name)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", &domain.TemplateNotFoundError{Name: name}
		}
		return "", &domain.ProcessingError{Stage: "template", Err: err}
	}
	return tpl.Content, nil
}

// Get retrieves a document by ID.
func (s *DocumentService) Get(ctx context.Context, id string) (*driving.DocumentInfo, error) {
	doc, err := s.docs.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	info := toInfo(doc)
	return &info, nil
}

// List returns all documents, newest first.
func (s *DocumentService) List(ctx context.Context) ([]driving.DocumentInfo, error) {
	docs, err := s.docs.List(ctx)
	if err != nil {
		return nil, err
	}

	sort.Slice(docs, func(i, j int) bool {
		return docs[i].CreatedAt.After(docs[j].CreatedAt)
	})

	infos := make([]driving.DocumentInfo, len(docs))
	for i := range docs {
		infos[i] = toInfo(&docs[i])
	}
	return infos, nil
}

// Summarize extracts key information from a stored document's original
// content.
func (s *DocumentService) Summarize(ctx context.Context, id string) (string, error) {
	doc, err := s.docs.Get(ctx, id)
	if err != nil {
		return "", err
	}

	summary, err := s.normalizer.ExtractDocumentInfo(ctx, doc.OriginalContent)
	if err != nil {
		return "", fmt.Errorf("summarize document %s: %w", id, err)
	}
	return summary, nil
}

func toInfo(doc *domain.Document) driving.DocumentInfo {
	return driving.DocumentInfo{
		ID:                doc.ID,
		FileName:          doc.FileName,
		OriginalContent:   doc.OriginalContent,
		NormalizedContent: doc.NormalizedContent,
		CreatedAt:         doc.CreatedAt,
		NormalizedAt:      doc.NormalizedAt,
		Status:            string(doc.Status),
	}
}
