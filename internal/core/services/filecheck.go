package services

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/templar-labs/templar-cli/internal/core/domain"
	"github.com/templar-labs/templar-cli/internal/logger"
)

// dangerousExtensions are always rejected, regardless of any allow-list.
var dangerousExtensions = map[string]struct{}{
	".exe": {}, ".dll": {}, ".bat": {}, ".cmd": {}, ".sh": {},
	".ps1": {}, ".vbs": {}, ".js": {}, ".jar": {},
}

// textExtensions are sniffed for binary content.
var textExtensions = map[string]struct{}{
	".txt": {}, ".md": {}, ".json": {}, ".xml": {},
	".html": {}, ".htm": {}, ".csv": {},
}

// contentSniffBytes is how much of the file the content check samples.
const contentSniffBytes = 1024

// ValidationOptions configures pre-flight document checks.
type ValidationOptions struct {
	// MaxFileSizeBytes caps the input file size.
	MaxFileSizeBytes int64

	// AllowedExtensions, when non-empty, restricts input extensions.
	// Compared case-insensitively.
	AllowedExtensions []string

	// CheckContent enables the binary-content sniff on text files.
	CheckContent bool
}

// FileValidator runs pre-flight checks on candidate input files.
// Expected failure modes are returned as typed results, never as errors.
type FileValidator struct{}

// NewFileValidator creates a file validator.
func NewFileValidator() *FileValidator {
	return &FileValidator{}
}

// ValidatePath checks that the path is non-blank, resolvable and exists.
func (v *FileValidator) ValidatePath(path string) domain.CheckResult {
	if strings.TrimSpace(path) == "" {
		return domain.CheckFailed(domain.CheckEmptyPath, "file path cannot be empty")
	}

	if _, err := filepath.Abs(path); err != nil {
		return domain.CheckFailed(domain.CheckInvalidPath, fmt.Sprintf("invalid file path: %v", err))
	}

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return domain.CheckFailed(domain.CheckNotFound, fmt.Sprintf("file not found: %s", path))
		}
		return domain.CheckFailed(domain.CheckInvalidPath, fmt.Sprintf("invalid file path: %v", err))
	}
	if info.IsDir() {
		return domain.CheckFailed(domain.CheckInvalidPath, fmt.Sprintf("path is a directory: %s", path))
	}

	return domain.CheckOK()
}

// ValidateSize checks the file size against a byte cap and rejects empty
// files.
func (v *FileValidator) ValidateSize(path string, maxBytes int64) domain.CheckResult {
	info, err := os.Stat(path)
	if err != nil {
		return domain.CheckFailed(domain.CheckInvalidPath, fmt.Sprintf("could not check file size: %v", err))
	}

	if info.Size() > maxBytes {
		sizeMB := float64(info.Size()) / (1024.0 * 1024.0)
		maxMB := float64(maxBytes) / (1024.0 * 1024.0)
		return domain.CheckFailed(domain.CheckTooLarge,
			fmt.Sprintf("file too large: %.2fMB (max: %.2fMB)", sizeMB, maxMB))
	}

	if info.Size() == 0 {
		return domain.CheckFailed(domain.CheckEmptyFile, "file is empty")
	}

	return domain.CheckOK()
}

// ValidateExtension rejects deny-listed extensions unconditionally, then
// enforces the allow-list when one is supplied.
func (v *FileValidator) ValidateExtension(path string, allowedExtensions []string) domain.CheckResult {
	ext := strings.ToLower(filepath.Ext(path))

	if _, dangerous := dangerousExtensions[ext]; dangerous {
		return domain.CheckFailed(domain.CheckDangerousExtension,
			fmt.Sprintf("file type not allowed for security reasons: %s", ext))
	}

	if len(allowedExtensions) > 0 {
		allowed := false
		for _, a := range allowedExtensions {
			if strings.ToLower(a) == ext {
				allowed = true
				break
			}
		}
		if !allowed {
			return domain.CheckFailed(domain.CheckExtensionNotAllowed,
				fmt.Sprintf("file type not supported: %s", ext))
		}
	}

	return domain.CheckOK()
}

// ValidateDocument composes path, size and extension checks in order,
// short-circuiting on the first failure, then sniffs the leading bytes for
// binary content. Warnings accumulate on the summary and are non-fatal.
func (v *FileValidator) ValidateDocument(path string, opts ValidationOptions) domain.ValidationSummary {
	summary := domain.ValidationSummary{FilePath: path}

	if res := v.ValidatePath(path); !res.OK {
		return failSummary(summary, res)
	}

	info, err := os.Stat(path)
	if err != nil {
		return failSummary(summary, domain.CheckFailed(domain.CheckInvalidPath,
			fmt.Sprintf("could not read file information: %v", err)))
	}
	summary.FileSizeBytes = info.Size()
	summary.FileExtension = strings.ToLower(filepath.Ext(path))

	if res := v.ValidateSize(path, opts.MaxFileSizeBytes); !res.OK {
		return failSummary(summary, res)
	}

	if res := v.ValidateExtension(path, opts.AllowedExtensions); !res.OK {
		return failSummary(summary, res)
	}

	if opts.CheckContent {
		v.sniffContent(&summary)
	}

	summary.IsValid = true
	logger.Debug("document validation passed for %s: size=%d warnings=%d",
		path, summary.FileSizeBytes, len(summary.Warnings))
	return summary
}

// sniffContent samples the leading bytes and flags binary content in files
// whose extension claims text. A failed read is itself only a warning.
func (v *FileValidator) sniffContent(summary *domain.ValidationSummary) {
	f, err := os.Open(summary.FilePath)
	if err != nil {
		summary.Warnings = append(summary.Warnings,
			fmt.Sprintf("could not verify file content: %v", err))
		return
	}
	defer f.Close()

	buf := make([]byte, contentSniffBytes)
	n, err := f.Read(buf)
	if err != nil && n == 0 {
		summary.Warnings = append(summary.Warnings,
			fmt.Sprintf("could not verify file content: %v", err))
		return
	}

	if _, isText := textExtensions[summary.FileExtension]; !isText {
		return
	}
	for _, b := range buf[:n] {
		if b == 0 {
			summary.Warnings = append(summary.Warnings, "text file contains binary content")
			return
		}
	}
}

func failSummary(summary domain.ValidationSummary, res domain.CheckResult) domain.ValidationSummary {
	summary.IsValid = false
	summary.Code = res.Code
	summary.Reason = res.Reason
	logger.Warn("document validation failed for %s: %s", summary.FilePath, res.Reason)
	return summary
}
